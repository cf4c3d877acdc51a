package kernel

func dotGeneric(a, b []float64) float64 {
	var sum, c float64
	for i := range a {
		y := a[i]*b[i] - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

func sumGeneric(a []float64) float64 {
	var sum, c float64
	for _, x := range a {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

func squaredL2Generic(a, b []float64) float64 {
	var distance float64
	for i := range a {
		d := a[i] - b[i]
		distance += d * d
	}
	return distance
}

func addGeneric(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subGeneric(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulGeneric(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func divGeneric(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

func scaleGeneric(dst, a []float64, s float64) {
	for i := range a {
		dst[i] = a[i] * s
	}
}

func negateGeneric(dst, a []float64) {
	for i := range a {
		dst[i] = -a[i]
	}
}

func minGeneric(a []float64) float64 {
	m := a[0]
	for _, x := range a[1:] {
		m = fmin(m, x)
	}
	return m
}

func maxGeneric(a []float64) float64 {
	m := a[0]
	for _, x := range a[1:] {
		m = fmax(m, x)
	}
	return m
}

func mapGeneric(v []float64, f func(float64) float64) {
	for i := range v {
		v[i] = f(v[i])
	}
}
