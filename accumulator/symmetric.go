package accumulator

import "github.com/finitefield/ckaccum/curve"

// elementarySymmetric computes ฯƒ_0(elements), ..., ฯƒ_k(elements), the
// elementary symmetric polynomials of the given scalar multiset, where
// k = len(elements). ฯƒ_0 = 1 by convention; ฯƒ_j for j > k is implicitly 0
// and is not included in the returned slice.
//
// This uses the incremental recurrence
// ฯƒ_j(Aโ€™ โˆช {x}) = ฯƒ_j(Aโ€™) + x ยท ฯƒ_{j-1}(Aโ€™), the spec's preferred O(k^2)
// approach (ยง4.4, ยง9) over naive 2^k subset enumeration: each new element is
// folded into the running polynomial in O(k) scalar operations, for O(k^2)
// total.
func elementarySymmetric(group curve.Group, elements []curve.Scalar) []curve.Scalar {
	sigma := make([]curve.Scalar, 1, len(elements)+1)
	sigma[0] = group.One()

	for _, x := range elements {
		next := make([]curve.Scalar, len(sigma)+1)
		next[0] = group.One()
		for j := 1; j < len(next); j++ {
			term := group.Zero()
			if j < len(sigma) {
				term = sigma[j]
			}
			if j-1 < len(sigma) {
				term = term.Add(x.Mul(sigma[j-1]))
			}
			next[j] = term
		}
		sigma = next
	}

	return sigma
}
