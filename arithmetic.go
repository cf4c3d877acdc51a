package dynvec

import "github.com/hupe1980/dynvec/internal/kernel"

// The binary operations below require a, b and result to have equal sizes.
// result may be a or b: each output element depends only on the inputs at
// the same index.

// Add stores a + b in result.
func Add(a, b, result *Vector) error {
	if err := binaryOp("add", a, b, result); err != nil {
		return err
	}
	kernel.Add(result.data(), a.data(), b.data())
	return nil
}

// Sub stores a - b in result.
func Sub(a, b, result *Vector) error {
	if err := binaryOp("sub", a, b, result); err != nil {
		return err
	}
	kernel.Sub(result.data(), a.data(), b.data())
	return nil
}

// Mult stores the elementwise product of a and b in result.
func Mult(a, b, result *Vector) error {
	if err := binaryOp("mult", a, b, result); err != nil {
		return err
	}
	kernel.Mul(result.data(), a.data(), b.data())
	return nil
}

// Div stores the elementwise quotient a / b in result.
//
// Every divisor is checked before anything is written: if any element of b
// is exactly zero, Div returns a *DomainError naming the first such index
// and result is left untouched.
func Div(a, b, result *Vector) error {
	if err := binaryOp("div", a, b, result); err != nil {
		return err
	}
	if i := kernel.IndexOfZero(b.data()); i >= 0 {
		return &DomainError{Op: "div", Index: i, Reason: "division by zero"}
	}
	kernel.Div(result.data(), a.data(), b.data())
	return nil
}

// Scale stores a * s in result.
func Scale(a *Vector, s float64, result *Vector) error {
	if err := unaryOp("scale", a, result); err != nil {
		return err
	}
	kernel.Scale(result.data(), a.data(), s)
	return nil
}

// Negate stores -a in result.
func Negate(a, result *Vector) error {
	if err := unaryOp("negate", a, result); err != nil {
		return err
	}
	kernel.Negate(result.data(), a.data())
	return nil
}

func binaryOp(op string, a, b, result *Vector) error {
	if err := checkAll(a, b, result); err != nil {
		return err
	}
	return sameSize(op, a, b, result)
}

func unaryOp(op string, a, result *Vector) error {
	if err := checkAll(a, result); err != nil {
		return err
	}
	return sameSize(op, a, result)
}
