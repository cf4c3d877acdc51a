package kernel

import "gonum.org/v1/gonum/floats"

// gonum/floats panics on length mismatch, which the callers already rule out.

func addGonum(dst, a, b []float64) {
	floats.AddTo(dst[:len(a)], a, b)
}

func subGonum(dst, a, b []float64) {
	floats.SubTo(dst[:len(a)], a, b)
}

func mulGonum(dst, a, b []float64) {
	floats.MulTo(dst[:len(a)], a, b)
}

func divGonum(dst, a, b []float64) {
	floats.DivTo(dst[:len(a)], a, b)
}

func scaleGonum(dst, a []float64, s float64) {
	floats.ScaleTo(dst[:len(a)], s, a)
}

func negateGonum(dst, a []float64) {
	floats.ScaleTo(dst[:len(a)], -1, a)
}
