package flashbench

import (
	"errors"
	"syscall"

	"github.com/flashbench-go/flashbench/internal/coreerr"
)

// Error is a structured flashbench error with enough context to
// reconstruct the failing operator's frame for diagnostics.
type Error = coreerr.Error

// Code categorizes a failure: a bad operator argument mask, an
// unknown opcode, a shape or type conflict during aggregation, an
// unformattable value, or an underlying I/O error.
type Code = coreerr.Code

const (
	CodeIOError       = coreerr.CodeIOError
	CodeBadArity      = coreerr.CodeBadArity
	CodeUnknownOp     = coreerr.CodeUnknownOp
	CodeTypeMismatch  = coreerr.CodeTypeMismatch
	CodeShapeMismatch = coreerr.CodeShapeMismatch
	CodeUnformattable = coreerr.CodeUnformattable
	CodeEmptyRange    = coreerr.CodeEmptyRange
	CodeAllocFailure  = coreerr.CodeAllocFailure
	CodeSyntaxError   = coreerr.CodeSyntaxError
	CodeTooBig        = coreerr.CodeTooBig
	CodeInternal      = coreerr.CodeInternal
)

// NewError creates a structured error with no wrapped cause.
func NewError(op string, code Code, msg string) *Error {
	return coreerr.New(op, code, msg)
}

// NewErrorWithErrno creates a structured error carrying a syscall errno.
func NewErrorWithErrno(op string, code Code, errno syscall.Errno) *Error {
	return coreerr.WithErrno(op, code, errno)
}

// WrapError wraps an arbitrary error with operator context.
func WrapError(op string, inner error) *Error {
	return coreerr.Wrap(op, inner)
}

// IsCode reports whether err (or something it wraps) has the given Code.
func IsCode(err error, code Code) bool {
	return coreerr.IsCode(err, code)
}

// IsErrno reports whether err (or something it wraps) carries the
// given syscall errno.
func IsErrno(err error, errno syscall.Errno) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Errno == errno
	}
	return false
}
