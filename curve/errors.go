package curve

import "github.com/go-errors/errors"

// ErrZeroScalar is returned by Scalar.Inverse when called on the zero
// scalar, which has no multiplicative inverse.
var ErrZeroScalar = errors.New("curve: scalar has no inverse (zero)")
