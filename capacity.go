package dynvec

import "fmt"

// growth returns the capacity to allocate when a buffer of capacity cur must
// hold n elements.
func growth(cur, n int) int {
	if cur < MinCapacity {
		return max(MinCapacity, n)
	}
	if cur > MaxElements/GrowthFactor {
		return max(MaxElements, n)
	}
	return max(cur*GrowthFactor, n)
}

// charge reserves bytes for a move from oldCap to newCap elements.
func (v *Vector) charge(op string, oldCap, newCap int, bytes int64) error {
	o := v.options()
	if newCap > MaxElements {
		o.metrics.RecordAllocFailure(newCap)
		o.logger.LogRealloc(op, oldCap, newCap, ErrOutOfMemory)
		return fmt.Errorf("%w: %d elements exceeds the addressable limit", ErrOutOfMemory, newCap)
	}
	if err := o.controller.AcquireMemory(bytes); err != nil {
		o.metrics.RecordAllocFailure(newCap)
		o.logger.LogRealloc(op, oldCap, newCap, err)
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}
	return nil
}

func (v *Vector) recordResize(op string, oldCap, newCap int) {
	o := v.options()
	switch {
	case newCap > oldCap:
		o.metrics.RecordGrow(oldCap, newCap)
	case newCap < oldCap:
		o.metrics.RecordShrink(oldCap, newCap)
	default:
		return
	}
	o.logger.LogRealloc(op, oldCap, newCap, nil)
}

// realloc moves the live elements into a fresh buffer of newCap elements.
// Slots past the live elements are zero. On failure v is unchanged.
func (v *Vector) realloc(op string, newCap int) error {
	o := v.options()
	oldCap := len(v.elements)

	if delta := newCap - oldCap; delta > 0 {
		if err := v.charge(op, oldCap, newCap, int64(delta)*ElementSize); err != nil {
			return err
		}
	}

	var buf []float64
	if newCap > 0 {
		buf = make([]float64, newCap)
		copy(buf, v.elements[:min(v.size, newCap)])
	}
	v.elements = buf

	if newCap < oldCap {
		o.controller.ReleaseMemory(int64(oldCap-newCap) * ElementSize)
	}
	v.recordResize(op, oldCap, newCap)
	return nil
}

// Resize sets the logical size to n. Within the current capacity only the
// size changes and slots past the old size keep whatever they held. Beyond
// it the buffer grows by the amortized policy and [old size, n) is zeroed.
func (v *Vector) Resize(n int) error {
	if err := check(v); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n)
	}

	if n > len(v.elements) {
		if err := v.realloc("resize", growth(len(v.elements), n)); err != nil {
			return err
		}
	}
	v.size = n
	return nil
}

// ResizeZero is Resize that always zeroes the slots [old size, n).
func (v *Vector) ResizeZero(n int) error {
	if err := check(v); err != nil {
		return err
	}

	old := v.size
	if err := v.Resize(n); err != nil {
		return err
	}
	if n > old {
		clear(v.elements[old:n])
	}
	return nil
}

// Reserve grows the capacity to exactly minCap if it is smaller. The size
// does not change.
func (v *Vector) Reserve(minCap int) error {
	if err := check(v); err != nil {
		return err
	}
	if minCap < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, minCap)
	}
	if minCap <= len(v.elements) {
		return nil
	}
	return v.realloc("reserve", minCap)
}

// ShrinkToFit reduces the capacity to the size. An empty vector drops its
// buffer entirely.
func (v *Vector) ShrinkToFit() error {
	if err := check(v); err != nil {
		return err
	}
	if len(v.elements) == v.size {
		return nil
	}
	return v.realloc("shrink", v.size)
}

// Append adds values to the end of v, growing the buffer as needed.
func (v *Vector) Append(values ...float64) error {
	if err := check(v); err != nil {
		return err
	}
	if len(values) > MaxElements-v.size {
		return fmt.Errorf("%w: %d elements exceeds the addressable limit", ErrOutOfMemory, v.size+len(values))
	}

	n := v.size + len(values)
	if n > len(v.elements) {
		if err := v.realloc("append", growth(len(v.elements), n)); err != nil {
			return err
		}
	}
	copy(v.elements[v.size:n], values)
	v.size = n
	return nil
}

// Zero sets every element to 0.
func (v *Vector) Zero() error {
	if err := check(v); err != nil {
		return err
	}
	clear(v.data())
	return nil
}
