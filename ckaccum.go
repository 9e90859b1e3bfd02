package ckaccum

import (
	"github.com/finitefield/ckaccum/accumulator"
	"github.com/finitefield/ckaccum/curve"
	"github.com/finitefield/ckaccum/hashing"
)

// DefaultGroup is the curve.Group this module ships: secp256k1, backed by
// github.com/decred/dcrd/dcrec/secp256k1/v4.
func DefaultGroup() curve.Group { return curve.NewSecp256k1() }

// DefaultHasher is the hashing.Hasher this module ships: SHA-256, the
// digest spec ยง8's test vectors are fixed against.
func DefaultHasher() hashing.Hasher { return hashing.SHA256{} }

// NewDefault constructs an Accumulator over this module's default group and
// hasher. If c is nil, the secret scalar is drawn uniformly at random.
func NewDefault(c curve.Scalar) (*accumulator.Accumulator, error) {
	return accumulator.New(DefaultGroup(), DefaultHasher(), c)
}

// NewDefaultProver constructs a Prover over this module's default group and
// hasher, with empty state.
func NewDefaultProver() *accumulator.Prover {
	return accumulator.NewProver(DefaultGroup(), DefaultHasher())
}
