package accumulator

import (
	"github.com/finitefield/ckaccum/curve"
	"github.com/finitefield/ckaccum/hashing"
)

// Prover is the untrusted party of the scheme. It holds no secret; it
// tracks, purely from the public update messages it has observed, the
// multiset A of elements it believes are currently accumulated, the point
// sequence Q it has learned (Q[j] = g ยท c^j for 0 โ‰ค j โ‰ค i+1), the public
// cursor i, and the latest commitment z. From this it can recompute a
// membership witness for any element of A without ever learning c.
type Prover struct {
	group  curve.Group
	hasher hashing.Hasher

	a []curve.Scalar // the multiset A, in observation order
	q []curve.Point  // Q[0..i+1]; Q[0] = g, installed here and never overwritten
	i *uint64
	z curve.Point
}

// NewProver constructs a Prover with empty state, over the given group and
// hasher (which must match the Accumulator it will track).
func NewProver(group curve.Group, hasher hashing.Hasher) *Prover {
	return &Prover{
		group:  group,
		hasher: hasher,
		q:      []curve.Point{group.Generator()},
	}
}

// Index returns the Prover's current view of the cursor i, or nil when it
// believes the set is empty.
func (p *Prover) Index() *uint64 { return p.i }

// Z returns the Prover's current view of the commitment.
func (p *Prover) Z() curve.Point { return p.z }

func (p *Prover) map_(d []byte) (curve.Scalar, error) {
	return hashing.Map(p.group, p.hasher, d)
}

// Update folds an Accumulator.Add or Accumulator.Del message into the
// Prover's state. msg is an insertion when the Prover's own cursor is nil or
// msg's cursor is at or past it, whatever the message type; a message whose
// cursor is โŠฅ or strictly
// behind the Prover's own non-nil cursor is a deletion (spec
// ยง4.3). Updates must be applied in emission order; the spec leaves
// reordering, duplication or loss undefined.
func (p *Prover) Update(msg Updater) error {
	d, z, q, i := msg.updateParts()

	e, err := p.map_(d)
	if err != nil {
		return err
	}

	insertion := p.i == nil || (i != nil && *i >= *p.i)

	if insertion {
		p.a = append(p.a, e)
		Logger.Debug("prover: observed insertion")
	} else {
		idx := indexOfScalar(p.a, e)
		if idx < 0 {
			// Spec ยง9: behavior is undefined when the deleted element is
			// not present in A. This implementation logs and otherwise
			// proceeds, rather than panicking on a message it cannot
			// fully apply.
			Logger.Warn("prover: observed deletion of element not tracked in A")
		} else {
			p.a = append(p.a[:idx], p.a[idx+1:]...)
		}
		Logger.Debug("prover: observed deletion")
	}

	storeIdx := 1
	if i != nil {
		storeIdx = int(*i) + 1
	}
	for len(p.q) <= storeIdx {
		p.q = append(p.q, nil)
	}
	p.q[storeIdx] = q

	p.i = i
	p.z = z
	return nil
}

// Prove computes a Witness for d, using the elementary symmetric
// polynomials of A \ {H(d)} and the learned Q sequence (spec ยง4.3). It
// returns ErrUnknownElement if d is not currently believed to be
// accumulated, rather than silently returning a witness doomed to fail
// verification (spec ยง9's SHOULD).
func (p *Prover) Prove(d []byte) (*Witness, error) {
	e, err := p.map_(d)
	if err != nil {
		return nil, err
	}

	idx := indexOfScalar(p.a, e)
	if idx < 0 {
		return nil, ErrUnknownElement
	}

	aPrime := make([]curve.Scalar, 0, len(p.a)-1)
	aPrime = append(aPrime, p.a[:idx]...)
	aPrime = append(aPrime, p.a[idx+1:]...)

	sigma := elementarySymmetric(p.group, aPrime)

	iVal := int(*p.i)
	v := p.group.Identity()
	w := p.group.Identity()

	for j := 0; j <= iVal; j++ {
		sigmaJ := p.group.Zero()
		if j < len(sigma) {
			sigmaJ = sigma[j]
		}

		idxV := iVal - j
		idxW := idxV + 1
		if idxV < 0 || idxV >= len(p.q) || p.q[idxV] == nil {
			return nil, ErrArithmeticFailure
		}
		if idxW < 0 || idxW >= len(p.q) || p.q[idxW] == nil {
			return nil, ErrArithmeticFailure
		}

		v = v.Add(p.q[idxV].Mul(sigmaJ))
		w = w.Add(p.q[idxW].Mul(sigmaJ))
	}

	return &Witness{D: d, V: v, W: w}, nil
}

// Verify reports whether w proves membership against the Prover's current
// view of the commitment z, checking the additive verification form
// v ยท e + w = z (spec ยง4.2.3 and ยง4.3).
func (p *Prover) Verify(w Witness) bool {
	e, err := p.map_(w.D)
	if err != nil {
		return false
	}
	return w.V.Mul(e).Add(w.W).Equal(p.z)
}

func indexOfScalar(haystack []curve.Scalar, needle curve.Scalar) int {
	for idx, s := range haystack {
		if s.Equal(needle) {
			return idx
		}
	}
	return -1
}
