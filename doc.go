// Package dynvec provides a dynamic float64 vector with arithmetic,
// geometric and statistical operations.
//
// # Quick Start
//
//	a, _ := dynvec.Vec3(1, 0, 0)
//	b, _ := dynvec.Vec3(0, 1, 0)
//	c, _ := dynvec.New(3)
//	_ = dynvec.Cross(a, b, c) // c = [0, 0, 1]
//
//	v, _ := dynvec.FromSlice([]float64{3, 4})
//	m, _ := dynvec.Magnitude(v) // 5
//
// # Capacity
//
// A Vector separates its size from its allocated capacity. Growing past the
// capacity jumps to at least MinCapacity elements and then doubles, so
// repeated Append or Resize by one element costs O(1) amortized. Capacity
// never shrinks on its own; ShrinkToFit, Init and Release reduce it.
//
// # Aliasing
//
// Elementwise and projection-style operations accept a result vector that
// is also one of the operands:
//
//	_ = dynvec.Add(v, w, v) // v += w
//
// Copy always duplicates; two vectors never share a buffer. Data and
// MutableData expose the buffer directly and the returned slice dangles
// after any operation that reallocates.
//
// # Numerics
//
// Dot, Sum and everything derived from them (Magnitude, Normalize, Angle,
// Project, ...) use compensated summation. Div validates every divisor
// before writing any output.
//
// # Errors
//
// Every failure is returned, never panicked, and leaves outputs untouched.
// Errors wrap one of ErrNil, ErrNotInitialized, ErrSizeMismatch,
// ErrOutOfMemory, ErrMathDomain, ErrIndexOutOfRange or ErrInvalidArgument;
// KindOf classifies them.
//
// # Memory
//
// WithMemoryLimit or WithResourceController put buffers under a byte budget.
// A growth that would exceed it fails with ErrOutOfMemory and leaves the
// vector as it was.
//
// # Concurrency
//
// A Vector performs no locking. Concurrent mutation of one vector is a
// caller error.
package dynvec
