package dynvec

import (
	"fmt"
	"math"
)

const (
	// MinCapacity is the smallest capacity a growing buffer jumps to.
	MinCapacity = 16

	// GrowthFactor multiplies the capacity on each amortized growth step.
	GrowthFactor = 2

	// ElementSize is the number of bytes charged per element.
	ElementSize = 8

	// MaxElements bounds the capacity so its byte size fits in an int.
	MaxElements = math.MaxInt / ElementSize
)

// Vector is an owned, growable buffer of float64 values.
//
// The zero value is a valid empty vector. A Vector is not safe for
// concurrent mutation; callers serialize access.
type Vector struct {
	elements []float64 // len(elements) is the capacity; nil iff capacity == 0
	size     int
	released bool
	opts     *options
}

// New allocates a vector of size zeroed elements with capacity == size.
// A size of 0 yields a valid vector without a buffer.
func New(size int, opts ...Option) (*Vector, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrInvalidArgument, size)
	}

	v := &Vector{opts: newOptions(opts)}
	if err := v.realloc("create", size); err != nil {
		return nil, err
	}
	v.size = size
	return v, nil
}

// NewZero allocates a zero-filled vector of the given size.
func NewZero(size int, opts ...Option) (*Vector, error) {
	return New(size, opts...)
}

// FromSlice returns a new vector holding a copy of values.
func FromSlice(values []float64, opts ...Option) (*Vector, error) {
	v, err := New(len(values), opts...)
	if err != nil {
		return nil, err
	}
	copy(v.elements, values)
	return v, nil
}

// Vec2 returns a new two-component vector.
func Vec2(x, y float64, opts ...Option) (*Vector, error) {
	return FromSlice([]float64{x, y}, opts...)
}

// Vec3 returns a new three-component vector.
func Vec3(x, y, z float64, opts ...Option) (*Vector, error) {
	return FromSlice([]float64{x, y, z}, opts...)
}

// Vec4 returns a new four-component vector.
func Vec4(x, y, z, w float64, opts ...Option) (*Vector, error) {
	return FromSlice([]float64{x, y, z, w}, opts...)
}

// Clone returns a deep copy of v sharing v's options. The copy's capacity
// equals v's size.
func (v *Vector) Clone() (*Vector, error) {
	if err := check(v); err != nil {
		return nil, err
	}

	c := &Vector{opts: v.opts}
	if err := c.realloc("clone", v.size); err != nil {
		return nil, err
	}
	c.size = v.size
	copy(c.elements, v.elements[:v.size])
	return c, nil
}

// Init discards the contents of v and reallocates it with size zeroed
// elements. It also revives a released vector. On failure v is unchanged.
func (v *Vector) Init(size int) error {
	if v == nil {
		return ErrNil
	}
	if size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidArgument, size)
	}

	o := v.options()
	oldCap := len(v.elements)
	if delta := size - oldCap; delta > 0 {
		if err := v.charge("init", oldCap, size, int64(delta)*ElementSize); err != nil {
			return err
		}
	}

	var buf []float64
	if size > 0 {
		buf = make([]float64, size)
	}
	if oldCap > size {
		o.controller.ReleaseMemory(int64(oldCap-size) * ElementSize)
	}

	v.elements = buf
	v.size = size
	v.released = false
	v.recordResize("init", oldCap, size)
	return nil
}

// Release drops the buffer and returns its memory to the controller.
// Every later operation except Init reports ErrNotInitialized.
func (v *Vector) Release() error {
	if err := check(v); err != nil {
		return err
	}

	o := v.options()
	capacity := len(v.elements)
	o.controller.ReleaseMemory(int64(capacity) * ElementSize)
	o.metrics.RecordRelease(capacity)
	o.logger.LogRelease(capacity)

	v.elements = nil
	v.size = 0
	v.released = true
	return nil
}

// Valid reports whether v can be passed to the operations of this package.
func (v *Vector) Valid() bool {
	return check(v) == nil
}

// Len returns the number of elements, or 0 for an invalid vector.
func (v *Vector) Len() int {
	if check(v) != nil {
		return 0
	}
	return v.size
}

// Cap returns the allocated capacity, or 0 for an invalid vector.
func (v *Vector) Cap() int {
	if check(v) != nil {
		return 0
	}
	return len(v.elements)
}

func (v *Vector) options() *options {
	if v.opts == nil {
		return defaultOptions
	}
	return v.opts
}

// data returns the live elements. v must be valid.
func (v *Vector) data() []float64 {
	return v.elements[:v.size]
}

func check(v *Vector) error {
	if v == nil {
		return ErrNil
	}
	if v.released || (v.size > 0 && v.elements == nil) {
		return ErrNotInitialized
	}
	return nil
}

// checkAll reports ErrNil for any nil operand before looking at validity.
func checkAll(vs ...*Vector) error {
	for _, v := range vs {
		if v == nil {
			return ErrNil
		}
	}
	for _, v := range vs {
		if err := check(v); err != nil {
			return err
		}
	}
	return nil
}

// sameSize requires every vector in others to have a's size.
func sameSize(op string, a *Vector, others ...*Vector) error {
	for _, o := range others {
		if o.size != a.size {
			return sizeError(op, a.size, o.size)
		}
	}
	return nil
}
