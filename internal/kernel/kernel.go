package kernel

import "math"

var (
	dotImpl       = dotUnrolled
	sumImpl       = sumUnrolled
	squaredL2Impl = squaredL2Unrolled

	addImpl    = addUnrolled
	subImpl    = subUnrolled
	mulImpl    = mulUnrolled
	divImpl    = divUnrolled
	scaleImpl  = scaleUnrolled
	negateImpl = negateUnrolled

	minImpl = minUnrolled
	maxImpl = maxUnrolled
	mapImpl = mapUnrolled
)

// Dot calculates the dot product of a and b with compensated summation.
//
// SAFETY: This function assumes len(a) == len(b).
func Dot(a, b []float64) float64 {
	return dotImpl(a, b)
}

// Sum returns the compensated sum of a.
func Sum(a []float64) float64 {
	return sumImpl(a)
}

// SquaredL2 calculates the squared Euclidean distance between a and b.
//
// SAFETY: This function assumes len(a) == len(b).
func SquaredL2(a, b []float64) float64 {
	return squaredL2Impl(a, b)
}

// Add stores a[i] + b[i] in dst[i].
func Add(dst, a, b []float64) {
	addImpl(dst, a, b)
}

// Sub stores a[i] - b[i] in dst[i].
func Sub(dst, a, b []float64) {
	subImpl(dst, a, b)
}

// Mul stores a[i] * b[i] in dst[i].
func Mul(dst, a, b []float64) {
	mulImpl(dst, a, b)
}

// Div stores a[i] / b[i] in dst[i]. Zero divisors are not checked here;
// see IndexOfZero.
func Div(dst, a, b []float64) {
	divImpl(dst, a, b)
}

// Scale stores a[i] * s in dst[i].
func Scale(dst, a []float64, s float64) {
	scaleImpl(dst, a, s)
}

// Negate stores -a[i] in dst[i].
func Negate(dst, a []float64) {
	negateImpl(dst, a)
}

// Axpby stores alpha*a[i] + beta*b[i] in dst[i].
func Axpby(dst []float64, alpha float64, a []float64, beta float64, b []float64) {
	if hasFMA {
		axpbyFMA(dst, alpha, a, beta, b)
		return
	}
	axpbyUnrolled(dst, alpha, a, beta, b)
}

// Min returns the smallest element of a, ignoring NaNs unless every element
// is NaN. a must not be empty.
func Min(a []float64) float64 {
	return minImpl(a)
}

// Max returns the largest element of a, ignoring NaNs unless every element
// is NaN. a must not be empty.
func Max(a []float64) float64 {
	return maxImpl(a)
}

// Abs replaces every element of v with its absolute value.
func Abs(v []float64) {
	mapImpl(v, math.Abs)
}

// Floor rounds every element of v down.
func Floor(v []float64) {
	mapImpl(v, math.Floor)
}

// Ceil rounds every element of v up.
func Ceil(v []float64) {
	mapImpl(v, math.Ceil)
}

// Round rounds every element of v to the nearest integer, half away from zero.
func Round(v []float64) {
	mapImpl(v, math.Round)
}

// IndexOfZero returns the index of the first element equal to 0, or -1.
func IndexOfZero(a []float64) int {
	for i, x := range a {
		if x == 0 {
			return i
		}
	}
	return -1
}

// fmin mirrors C fmin: a NaN operand yields the other operand.
func fmin(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	case y < x:
		return y
	default:
		return x
	}
}

// fmax mirrors C fmax.
func fmax(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	case y > x:
		return y
	default:
		return x
	}
}
