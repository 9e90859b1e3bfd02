/*
Package ckaccum is a dynamic cryptographic accumulator over a prime-order
elliptic-curve group, following Camenisch, Kohlweiss and Soriente's "An
Accumulator Based on Bilinear Maps and Efficient Revocation for Anonymous
Credentials" (PKC 2009).

The mathematical core lives in the accumulator package and is parameterized
over a curve.Group and a hashing.Hasher, both external collaborators this
module only fixes interfaces for. This root package wires up a default
logger (shared with the accumulator package, the way the teacher library
wires its own revocation sub-package's logger from its root package) and
provides defaulted constructors over this module's own secp256k1/SHA-256
pairing for convenient construction.

	acc, err := ckaccum.NewDefault(nil) // c drawn at random
	update, err := acc.Add([]byte("alice"))

	prover := ckaccum.NewDefaultProver()
	_ = prover.Update(update)
	witness, err := prover.Prove([]byte("alice"))
	acc.Verify(*witness) // true
*/
package ckaccum
