package dynvec

import (
	"fmt"

	"github.com/hupe1980/dynvec/internal/kernel"
)

// Min returns the smallest element. NaNs are skipped unless every element
// is NaN. An empty vector has no minimum.
func (v *Vector) Min() (float64, error) {
	if err := nonEmpty("min", v); err != nil {
		return 0, err
	}
	return kernel.Min(v.data()), nil
}

// Max returns the largest element, with the same NaN rule as Min.
func (v *Vector) Max() (float64, error) {
	if err := nonEmpty("max", v); err != nil {
		return 0, err
	}
	return kernel.Max(v.data()), nil
}

// Sum returns the compensated sum of the elements. The sum of an empty
// vector is 0.
func (v *Vector) Sum() (float64, error) {
	if err := check(v); err != nil {
		return 0, err
	}
	return kernel.Sum(v.data()), nil
}

// Mean returns the arithmetic mean of the elements.
func (v *Vector) Mean() (float64, error) {
	if err := nonEmpty("mean", v); err != nil {
		return 0, err
	}
	return kernel.Sum(v.data()) / float64(v.size), nil
}

// Abs replaces each element with its absolute value.
func (v *Vector) Abs() error {
	return v.apply(kernel.Abs)
}

// Floor rounds each element down.
func (v *Vector) Floor() error {
	return v.apply(kernel.Floor)
}

// Ceil rounds each element up.
func (v *Vector) Ceil() error {
	return v.apply(kernel.Ceil)
}

// Round rounds each element to the nearest integer, half away from zero.
func (v *Vector) Round() error {
	return v.apply(kernel.Round)
}

func (v *Vector) apply(fn func([]float64)) error {
	if err := check(v); err != nil {
		return err
	}
	fn(v.data())
	return nil
}

func nonEmpty(op string, v *Vector) error {
	if err := check(v); err != nil {
		return err
	}
	if v.size == 0 {
		return fmt.Errorf("%w: %s of empty vector", ErrSizeMismatch, op)
	}
	return nil
}
