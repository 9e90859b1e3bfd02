package accumulator

import "github.com/finitefield/ckaccum/curve"

// WitnessUpdate is emitted by Accumulator.Add. It doubles as both the
// message the Prover needs to update its own state (via Update) and a
// freshly-valid membership Witness for d (it satisfies Witnesser, so
// Accumulator.Del accepts it directly), since v, w satisfy the unified
// verification equation described in Add's doc comment.
type WitnessUpdate struct {
	D    []byte
	Z    curve.Point
	V, W curve.Point
	Q    curve.Point
	I    *uint64 // nil represents โŠฅ (empty set)
}

// Update is emitted by Accumulator.Del. It carries no witness material for
// the deleted element (a deleted element's witness is meant to stop
// verifying), only what the Prover needs to advance its own state.
type Update struct {
	D []byte
	Z curve.Point
	Q curve.Point
	I *uint64
}

// Witness is a membership proof for D: a pair of points (V, W) such that a
// verification equation in e = H(D) and the current commitment holds iff D
// is a member. Produced by Accumulator.Prove and Prover.Prove.
type Witness struct {
	D    []byte
	V, W curve.Point
}

// Witnesser is satisfied by both Witness and WitnessUpdate, matching
// Accumulator.Del's documented contract of accepting either message type
// (spec ยง6.3).
type Witnesser interface {
	witnessParts() (d []byte, v, w curve.Point)
}

func (w Witness) witnessParts() ([]byte, curve.Point, curve.Point) { return w.D, w.V, w.W }
func (u WitnessUpdate) witnessParts() ([]byte, curve.Point, curve.Point) {
	return u.D, u.V, u.W
}

// Updater is satisfied by both Update and WitnessUpdate, matching
// Prover.Update's documented contract of accepting either message type.
type Updater interface {
	updateParts() (d []byte, z, q curve.Point, i *uint64)
}

func (u Update) updateParts() ([]byte, curve.Point, curve.Point, *uint64) {
	return u.D, u.Z, u.Q, u.I
}
func (u WitnessUpdate) updateParts() ([]byte, curve.Point, curve.Point, *uint64) {
	return u.D, u.Z, u.Q, u.I
}

func uintPtr(v uint64) *uint64 { return &v }
