// Package curve defines the group/scalar adapter the accumulator core consumes:
// a prime-order group G with fixed generator g and identity O, and its scalar
// field Z_n. The core never inspects coordinates or concrete types; it only
// calls through these interfaces, following the wrapper-over-library-type
// pattern used throughout crypto/signing adapters for third-party curve
// libraries (e.g. a kyber.Point wrapped behind a first-party Point interface).
//
// A single concrete implementation, Secp256k1, is provided in this package,
// backed by github.com/decred/dcrd/dcrec/secp256k1/v4. Hosts that need a
// different curve implement Group/Point/Scalar themselves; the accumulator
// package is agnostic to which one is plugged in.
package curve

import "math/big"

// Scalar is an element of Z_n, the scalar field of a Group of order n.
type Scalar interface {
	// Add returns s + other mod n.
	Add(other Scalar) Scalar
	// Sub returns s - other mod n.
	Sub(other Scalar) Scalar
	// Mul returns s * other mod n.
	Mul(other Scalar) Scalar
	// Inverse returns the multiplicative inverse of s mod n. It returns
	// ErrZeroScalar if s is zero, since zero has no inverse.
	Inverse() (Scalar, error)
	// Equal reports whether s and other represent the same element of Z_n.
	Equal(other Scalar) bool
	// IsZero reports whether s is the additive identity of Z_n.
	IsZero() bool
	// Bytes returns the big-endian, fixed-width encoding of s.
	Bytes() []byte
}

// Point is an element of a prime-order group G.
type Point interface {
	// Add returns the group sum of p and other.
	Add(other Point) Point
	// Mul returns p scaled by the scalar s, i.e. the point p added to
	// itself s times.
	Mul(s Scalar) Point
	// Equal reports whether p and other represent the same group element.
	Equal(other Point) bool
	// IsIdentity reports whether p is the group identity O.
	IsIdentity() bool
	// Bytes returns the compressed encoding of p.
	Bytes() []byte
}

// Group is a prime-order group together with its scalar field, as consumed
// by the accumulator core (spec ยง6.1).
type Group interface {
	// Generator returns the fixed generator g of the group.
	Generator() Point
	// Identity returns the group identity O.
	Identity() Point
	// Zero returns the additive identity of Z_n.
	Zero() Scalar
	// One returns the multiplicative identity of Z_n.
	One() Scalar
	// RandomScalar returns a scalar drawn uniformly from [1, n-1].
	RandomScalar() (Scalar, error)
	// ScalarFromBytes interprets b as a big-endian unsigned integer and
	// reduces it modulo n.
	ScalarFromBytes(b []byte) Scalar
	// PointFromBytes parses the compressed encoding produced by Point.Bytes
	// back into a Point. It returns an error if b does not encode a point
	// of this group.
	PointFromBytes(b []byte) (Point, error)
	// Order returns n, the order of the group.
	Order() *big.Int
}
