package dynvec

import (
	"errors"
	"fmt"
)

var (
	// ErrNil is returned when a required *Vector argument is nil.
	ErrNil = errors.New("dynvec: nil vector")

	// ErrNotInitialized is returned for a released vector, or one whose
	// buffer is missing while it reports a non-zero size.
	ErrNotInitialized = errors.New("dynvec: vector not initialized")

	// ErrSizeMismatch is returned when operand lengths are incompatible.
	ErrSizeMismatch = errors.New("dynvec: size mismatch")

	// ErrOutOfMemory is returned when an allocation is refused.
	ErrOutOfMemory = errors.New("dynvec: out of memory")

	// ErrMathDomain is returned for mathematically undefined requests
	// (zero divisor, zero-length normalization/projection/angle).
	ErrMathDomain = errors.New("dynvec: math domain error")

	// ErrIndexOutOfRange is returned when an index is not below the size.
	ErrIndexOutOfRange = errors.New("dynvec: index out of range")

	// ErrInvalidArgument is returned when a parameter is outside its domain.
	ErrInvalidArgument = errors.New("dynvec: invalid argument")
)

// SizeError reports the operand lengths of a failed operation.
//
// errors.Is(err, ErrSizeMismatch) holds for every *SizeError.
type SizeError struct {
	Op       string
	Expected int
	Actual   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("dynvec: %s: size mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
}

func (e *SizeError) Unwrap() error { return ErrSizeMismatch }

// IndexError reports an out-of-range element access.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dynvec: index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// DomainError reports which operation hit an undefined input. Index is the
// offending element for elementwise operations and -1 otherwise.
type DomainError struct {
	Op     string
	Index  int
	Reason string
}

func (e *DomainError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("dynvec: %s: %s at index %d", e.Op, e.Reason, e.Index)
	}
	return fmt.Sprintf("dynvec: %s: %s", e.Op, e.Reason)
}

func (e *DomainError) Unwrap() error { return ErrMathDomain }

// ErrorKind classifies an error returned by this package.
type ErrorKind int

const (
	KindOK ErrorKind = iota
	KindNull
	KindNotInitialized
	KindSizeMismatch
	KindOutOfMemory
	KindMathDomain
	KindIndexOutOfRange
	KindInvalidArgument
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindOK:
		return "Ok"
	case KindNull:
		return "Null"
	case KindNotInitialized:
		return "NotInitialized"
	case KindSizeMismatch:
		return "SizeMismatch"
	case KindOutOfMemory:
		return "OutOfMemory"
	case KindMathDomain:
		return "MathDomainError"
	case KindIndexOutOfRange:
		return "IndexOutOfRange"
	case KindInvalidArgument:
		return "InvalidArgument"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// KindOf maps err onto the package error taxonomy.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrNil):
		return KindNull
	case errors.Is(err, ErrNotInitialized):
		return KindNotInitialized
	case errors.Is(err, ErrSizeMismatch):
		return KindSizeMismatch
	case errors.Is(err, ErrOutOfMemory):
		return KindOutOfMemory
	case errors.Is(err, ErrMathDomain):
		return KindMathDomain
	case errors.Is(err, ErrIndexOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	default:
		return KindUnknown
	}
}

func sizeError(op string, expected, actual int) error {
	return &SizeError{Op: op, Expected: expected, Actual: actual}
}

func domainError(op, reason string) error {
	return &DomainError{Op: op, Index: -1, Reason: reason}
}
