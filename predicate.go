package dynvec

import (
	"math"

	"github.com/hupe1980/dynvec/internal/kernel"
)

// Equal reports whether a and b have the same size and every pair of
// elements differs by at most tol. Identical values, NaNs and infinities
// included, always match. Invalid operands are never equal.
func Equal(a, b *Vector, tol float64) bool {
	if checkAll(a, b) != nil || a.size != b.size {
		return false
	}

	bd := b.data()
	for i, x := range a.data() {
		y := bd[i]
		if x == y || (math.IsNaN(x) && math.IsNaN(y)) {
			continue
		}
		if !(math.Abs(x-y) <= tol) {
			return false
		}
	}
	return true
}

// IsZero reports whether every element lies within tol of zero. An empty
// vector is zero; an invalid one is not.
func (v *Vector) IsZero(tol float64) bool {
	if check(v) != nil {
		return false
	}
	for _, x := range v.data() {
		if !(math.Abs(x) <= tol) {
			return false
		}
	}
	return true
}

// IsUnit reports whether |Σxᵢ² − 1| ≤ tol.
func (v *Vector) IsUnit(tol float64) bool {
	if check(v) != nil {
		return false
	}
	d := v.data()
	return math.Abs(kernel.Dot(d, d)-1) <= tol
}
