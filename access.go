package dynvec

// Get returns the element at index i.
func (v *Vector) Get(i int) (float64, error) {
	if err := check(v); err != nil {
		return 0, err
	}
	if i < 0 || i >= v.size {
		return 0, &IndexError{Index: i, Size: v.size}
	}
	return v.elements[i], nil
}

// Set stores x at index i.
func (v *Vector) Set(i int, x float64) error {
	if err := check(v); err != nil {
		return err
	}
	if i < 0 || i >= v.size {
		return &IndexError{Index: i, Size: v.size}
	}
	v.elements[i] = x
	return nil
}

// Data returns the live elements without copying. The slice must be treated
// as read-only.
//
// The slice aliases the vector's buffer and is left dangling by any later
// Resize, Reserve, ShrinkToFit, Append, Init or Release. Its capacity is
// clipped to the size, so appending to it never writes into the vector.
func (v *Vector) Data() ([]float64, error) {
	if err := check(v); err != nil {
		return nil, err
	}
	return v.elements[:v.size:v.size], nil
}

// MutableData is Data for callers that write through the slice. The same
// dangling-reference hazard applies.
func (v *Vector) MutableData() ([]float64, error) {
	return v.Data()
}

// Copy deep-copies src into dest, resizing dest to src's size. The
// capacity of dest is reused when it is large enough.
func Copy(src, dest *Vector) error {
	if err := checkAll(src, dest); err != nil {
		return err
	}
	if src == dest {
		return nil
	}

	if err := dest.Resize(src.size); err != nil {
		return err
	}
	copy(dest.elements, src.data())
	return nil
}
