package accumulator

import "github.com/sirupsen/logrus"

// Logger is the package-level logger for the accumulator and prover state
// machines, wired from the root package the same way the teacher library
// wires its own revocation package's Logger. It is never given the secret
// scalar c to log: the Accumulator only ever logs cursor/index information.
var Logger = logrus.StandardLogger()
