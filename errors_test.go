package dynvec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{nil, KindOK},
		{ErrNil, KindNull},
		{ErrNotInitialized, KindNotInitialized},
		{&SizeError{Op: "add", Expected: 3, Actual: 2}, KindSizeMismatch},
		{fmt.Errorf("wrapped: %w", ErrOutOfMemory), KindOutOfMemory},
		{&DomainError{Op: "div", Index: 2, Reason: "division by zero"}, KindMathDomain},
		{&IndexError{Index: 5, Size: 3}, KindIndexOutOfRange},
		{ErrInvalidArgument, KindInvalidArgument},
		{errors.New("boom"), KindUnknown},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, KindOf(tc.err), "KindOf(%v)", tc.err)
	}
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "Ok", KindOK.String())
	assert.Equal(t, "MathDomainError", KindMathDomain.String())
	assert.Equal(t, "OutOfMemory", KindOutOfMemory.String())
	assert.Equal(t, "Unknown(42)", ErrorKind(42).String())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "dynvec: add: size mismatch: expected 3, got 2",
		(&SizeError{Op: "add", Expected: 3, Actual: 2}).Error())
	assert.Equal(t, "dynvec: index 5 out of range [0, 3)",
		(&IndexError{Index: 5, Size: 3}).Error())
	assert.Equal(t, "dynvec: div: division by zero at index 2",
		(&DomainError{Op: "div", Index: 2, Reason: "division by zero"}).Error())
	assert.Equal(t, "dynvec: normalize: zero-length vector",
		domainError("normalize", "zero-length vector").Error())
}
