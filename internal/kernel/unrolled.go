package kernel

import "math"

// dotUnrolled is Kahan summation over the products, four at a time. The
// compensation term is carried across lanes so the result is bit-identical
// to dotGeneric.
func dotUnrolled(a, b []float64) float64 {
	n := len(a)
	b = b[:n]

	var sum, c float64
	i := 0
	for ; i+3 < n; i += 4 {
		y := a[i]*b[i] - c
		t := sum + y
		c = (t - sum) - y
		sum = t

		y = a[i+1]*b[i+1] - c
		t = sum + y
		c = (t - sum) - y
		sum = t

		y = a[i+2]*b[i+2] - c
		t = sum + y
		c = (t - sum) - y
		sum = t

		y = a[i+3]*b[i+3] - c
		t = sum + y
		c = (t - sum) - y
		sum = t
	}
	for ; i < n; i++ {
		y := a[i]*b[i] - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

func sumUnrolled(a []float64) float64 {
	n := len(a)

	var sum, c float64
	i := 0
	for ; i+3 < n; i += 4 {
		y := a[i] - c
		t := sum + y
		c = (t - sum) - y
		sum = t

		y = a[i+1] - c
		t = sum + y
		c = (t - sum) - y
		sum = t

		y = a[i+2] - c
		t = sum + y
		c = (t - sum) - y
		sum = t

		y = a[i+3] - c
		t = sum + y
		c = (t - sum) - y
		sum = t
	}
	for ; i < n; i++ {
		y := a[i] - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

func squaredL2Unrolled(a, b []float64) float64 {
	n := len(a)
	b = b[:n]

	var s0, s1, s2, s3 float64
	i := 0
	for ; i+3 < n; i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	for ; i < n; i++ {
		d := a[i] - b[i]
		s0 += d * d
	}
	return (s0 + s1) + (s2 + s3)
}

func addUnrolled(dst, a, b []float64) {
	n := len(a)
	b = b[:n]
	dst = dst[:n]

	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func subUnrolled(dst, a, b []float64) {
	n := len(a)
	b = b[:n]
	dst = dst[:n]

	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = a[i] - b[i]
		dst[i+1] = a[i+1] - b[i+1]
		dst[i+2] = a[i+2] - b[i+2]
		dst[i+3] = a[i+3] - b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

func mulUnrolled(dst, a, b []float64) {
	n := len(a)
	b = b[:n]
	dst = dst[:n]

	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func divUnrolled(dst, a, b []float64) {
	n := len(a)
	b = b[:n]
	dst = dst[:n]

	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = a[i] / b[i]
		dst[i+1] = a[i+1] / b[i+1]
		dst[i+2] = a[i+2] / b[i+2]
		dst[i+3] = a[i+3] / b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] / b[i]
	}
}

func scaleUnrolled(dst, a []float64, s float64) {
	n := len(a)
	dst = dst[:n]

	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = a[i] * s
		dst[i+1] = a[i+1] * s
		dst[i+2] = a[i+2] * s
		dst[i+3] = a[i+3] * s
	}
	for ; i < n; i++ {
		dst[i] = a[i] * s
	}
}

func negateUnrolled(dst, a []float64) {
	n := len(a)
	dst = dst[:n]

	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = -a[i]
		dst[i+1] = -a[i+1]
		dst[i+2] = -a[i+2]
		dst[i+3] = -a[i+3]
	}
	for ; i < n; i++ {
		dst[i] = -a[i]
	}
}

func axpbyUnrolled(dst []float64, alpha float64, a []float64, beta float64, b []float64) {
	n := len(a)
	b = b[:n]
	dst = dst[:n]

	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = alpha*a[i] + beta*b[i]
		dst[i+1] = alpha*a[i+1] + beta*b[i+1]
		dst[i+2] = alpha*a[i+2] + beta*b[i+2]
		dst[i+3] = alpha*a[i+3] + beta*b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = alpha*a[i] + beta*b[i]
	}
}

func axpbyFMA(dst []float64, alpha float64, a []float64, beta float64, b []float64) {
	n := len(a)
	b = b[:n]
	dst = dst[:n]

	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = math.FMA(alpha, a[i], beta*b[i])
		dst[i+1] = math.FMA(alpha, a[i+1], beta*b[i+1])
		dst[i+2] = math.FMA(alpha, a[i+2], beta*b[i+2])
		dst[i+3] = math.FMA(alpha, a[i+3], beta*b[i+3])
	}
	for ; i < n; i++ {
		dst[i] = math.FMA(alpha, a[i], beta*b[i])
	}
}

func minUnrolled(a []float64) float64 {
	n := len(a)
	m := a[0]
	i := 1
	for ; i+3 < n; i += 4 {
		m = fmin(m, a[i])
		m = fmin(m, a[i+1])
		m = fmin(m, a[i+2])
		m = fmin(m, a[i+3])
	}
	for ; i < n; i++ {
		m = fmin(m, a[i])
	}
	return m
}

func maxUnrolled(a []float64) float64 {
	n := len(a)
	m := a[0]
	i := 1
	for ; i+3 < n; i += 4 {
		m = fmax(m, a[i])
		m = fmax(m, a[i+1])
		m = fmax(m, a[i+2])
		m = fmax(m, a[i+3])
	}
	for ; i < n; i++ {
		m = fmax(m, a[i])
	}
	return m
}

func mapUnrolled(v []float64, f func(float64) float64) {
	n := len(v)
	i := 0
	for ; i+3 < n; i += 4 {
		v[i] = f(v[i])
		v[i+1] = f(v[i+1])
		v[i+2] = f(v[i+2])
		v[i+3] = f(v[i+3])
	}
	for ; i < n; i++ {
		v[i] = f(v[i])
	}
}
