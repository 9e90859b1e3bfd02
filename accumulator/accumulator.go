package accumulator

import (
	"github.com/finitefield/ckaccum/curve"
	"github.com/finitefield/ckaccum/hashing"
)

// Accumulator is the trusted party of the scheme. It holds a secret scalar
// c and the current commitment z, and mutates both on Add and Del. See the
// package doc for the overall protocol.
//
// The invariants below hold at all times, with A the multiset of elements
// currently accumulated (not tracked directly by this type, which observes
// only the group elements derived from A, not A itself):
//
//   - z = g ยท โˆ_{eโˆˆA} (e + c)
//   - if |A| = 0: Q = O and i = โŠฅ; else i = |A|-1 and Q = g ยท c^(|A|-1)
//   - c โˆˆ [1, n-1]
type Accumulator struct {
	group  curve.Group
	hasher hashing.Hasher

	c curve.Scalar
	z curve.Point
	q curve.Point
	i *uint64
}

// New constructs an Accumulator over the given group and hasher. If c is
// nil, a secret scalar is drawn uniformly from [1, n-1]; otherwise the
// supplied c is used (e.g. for deterministic tests).
func New(group curve.Group, hasher hashing.Hasher, c curve.Scalar) (*Accumulator, error) {
	if group == nil || hasher == nil {
		return nil, ErrInvalidArgument
	}
	if c == nil {
		var err error
		c, err = group.RandomScalar()
		if err != nil {
			return nil, err
		}
	} else if c.IsZero() {
		return nil, ErrInvalidArgument
	}

	Logger.WithField("identity", c != nil).Debug("accumulator: initialized")

	return &Accumulator{
		group:  group,
		hasher: hasher,
		c:      c,
		z:      group.Generator(),
		q:      group.Identity(),
		i:      nil,
	}, nil
}

// Z returns the current commitment.
func (a *Accumulator) Z() curve.Point { return a.z }

// Index returns the current cursor i, or nil when the accumulated set is
// empty.
func (a *Accumulator) Index() *uint64 { return a.i }

func (a *Accumulator) map_(d []byte) (curve.Scalar, error) {
	e, err := hashing.Map(a.group, a.hasher, d)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Add accumulates d, returning the WitnessUpdate the caller should both (a)
// hand to the element's owner as a fresh membership witness and (b)
// broadcast to every Prover so they can update their own state.
//
// Letting v := z (pre-update) and w := v ยท c (also pre-update), the returned
// record satisfies both v ยท (e+c) = z_new (the Accumulator's verification
// form) and v ยท e + w = z_new (the Prover's verification form), since
// v ยท e + w = v ยท e + v ยท c = v ยท (e+c) = z_new. This is the unified
// verification equation described in spec ยง4.2.3.
func (a *Accumulator) Add(d []byte) (*WitnessUpdate, error) {
	e, err := a.map_(d)
	if err != nil {
		return nil, err
	}

	v := a.z
	w := a.z.Mul(a.c)

	eAddC := e.Add(a.c)
	a.z = a.z.Mul(eAddC)

	if a.q.IsIdentity() {
		a.q = a.group.Generator()
	} else {
		a.q = a.q.Mul(a.c)
	}
	qOut := a.q.Mul(a.c)

	if a.i == nil {
		a.i = uintPtr(0)
	} else {
		a.i = uintPtr(*a.i + 1)
	}

	Logger.WithField("index", *a.i).Debug("accumulator: added element")

	return &WitnessUpdate{
		D: d,
		Z: a.z,
		V: v,
		W: w,
		Q: qOut,
		I: a.i,
	}, nil
}

// Del removes the element proven by w from the accumulated set, returning
// the Update callers must broadcast to every Prover. It fails with
// ErrNotAMember, leaving state unchanged, unless w currently verifies.
func (a *Accumulator) Del(w Witnesser) (*Update, error) {
	d, v, _ := w.witnessParts()
	if !a.verifyParts(d, v) {
		Logger.Warn("accumulator: rejected deletion of non-member witness")
		return nil, ErrNotAMember
	}

	e, err := a.map_(d)
	if err != nil {
		return nil, err
	}

	eAddC := e.Add(a.c)
	eAddCInv, err := eAddC.Inverse()
	if err != nil {
		// e+c is only zero with negligible probability for random c; if it
		// happens, the accumulator's core invariant is already broken.
		return nil, ErrArithmeticFailure
	}
	a.z = a.z.Mul(eAddCInv)

	qOut := a.q

	gen := a.group.Generator()
	if a.q.Equal(gen) {
		a.q = a.group.Identity()
	} else {
		cInv, err := a.c.Inverse()
		if err != nil {
			return nil, ErrArithmeticFailure
		}
		a.q = a.q.Mul(cInv)
	}

	if a.i != nil && *a.i == 0 {
		a.i = nil
	} else if a.i != nil {
		a.i = uintPtr(*a.i - 1)
	}

	Logger.Debug("accumulator: deleted element")

	return &Update{
		D: d,
		Z: a.z,
		Q: qOut,
		I: a.i,
	}, nil
}

// Verify reports whether w proves membership against the current
// commitment z, checking the multiplicative verification form
// v ยท (e+c) = z. The auxiliary W field is not consulted here; it is
// validated instead by Prover.Verify's additive form (spec ยง4.2.3).
func (a *Accumulator) Verify(w Witness) bool {
	return a.verifyParts(w.D, w.V)
}

func (a *Accumulator) verifyParts(d []byte, v curve.Point) bool {
	e, err := a.map_(d)
	if err != nil {
		return false
	}
	eAddC := e.Add(a.c)
	return v.Mul(eAddC).Equal(a.z)
}

// Prove computes a Witness for d using the secret c: v := z ยท (e+c)^-1 and
// w := z ยท e^-1. The returned witness verifies under Accumulator.Verify's
// multiplicative form v ยท (e+c) = z directly. It does not generally satisfy
// the additive form v ยท e + w = z that Prover.Verify checks -- the two forms
// only coincide when w = v ยท c (spec ยง4.2.3), which holds for witnesses this
// method produces only by coincidence, not by construction. Callers that
// need a witness verifiable by a Prover should obtain one from Prover.Prove
// instead.
func (a *Accumulator) Prove(d []byte) (*Witness, error) {
	e, err := a.map_(d)
	if err != nil {
		return nil, err
	}
	if e.IsZero() {
		return nil, ErrArithmeticFailure
	}

	eAddC := e.Add(a.c)
	eAddCInv, err := eAddC.Inverse()
	if err != nil {
		return nil, ErrArithmeticFailure
	}
	eInv, err := e.Inverse()
	if err != nil {
		return nil, ErrArithmeticFailure
	}

	return &Witness{
		D: d,
		V: a.z.Mul(eAddCInv),
		W: a.z.Mul(eInv),
	}, nil
}
