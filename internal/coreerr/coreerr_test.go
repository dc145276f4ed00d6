package coreerr

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapNil(t *testing.T) {
	require.Nil(t, Wrap("op", nil))
}

func TestWrapPreservesCode(t *testing.T) {
	inner := New("inner", CodeShapeMismatch, "boom")
	wrapped := Wrap("outer", inner)
	require.Equal(t, CodeShapeMismatch, wrapped.Code)
	require.Equal(t, "outer", wrapped.Op)
}

func TestWrapMapsErrno(t *testing.T) {
	wrapped := Wrap("time_write", syscall.ENOSPC)
	require.Equal(t, CodeAllocFailure, wrapped.Code)
	require.Equal(t, syscall.ENOSPC, wrapped.Errno)
}

func TestIsCodeMatchesAcrossWrap(t *testing.T) {
	err := Wrap("time_read", New("time_read", CodeTooBig, "too big"))
	require.True(t, IsCode(err, CodeTooBig))
	require.False(t, IsCode(err, CodeInternal))
}

func TestErrorsIs(t *testing.T) {
	a := New("a", CodeBadArity, "x")
	b := New("b", CodeBadArity, "y")
	require.True(t, errors.Is(a, b))

	c := New("c", CodeInternal, "z")
	require.False(t, errors.Is(a, c))
}
