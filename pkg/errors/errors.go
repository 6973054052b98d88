package errors

import (
	"errors"
	"fmt"
)

// Error is a typed operation error with a fixed user-facing message.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches an underlying cause to a taxonomy member without changing
// the surfaced message. Transport failures and non-OK statuses collapse
// into the same member per operation.
func Wrap(base *Error, err error) *Error {
	if base == nil {
		return &Error{Code: "UNKNOWN", Message: "operation failed", Err: err}
	}
	return &Error{Code: base.Code, Message: base.Message, Err: err}
}

// One taxonomy member per backend operation. Every failure mode of an
// operation maps onto its single member; callers see only the fixed string.
var (
	ErrFetchFailed  = New("FETCH_FAILED", "failed to load teacher records")
	ErrCreateFailed = New("CREATE_FAILED", "failed to create teacher record")
	ErrUpdateFailed = New("UPDATE_FAILED", "failed to update teacher record")
	ErrDeleteFailed = New("DELETE_FAILED", "failed to delete teacher record")
	ErrExportFailed = New("EXPORT_FAILED", "failed to export report")
)

// Is reports whether err belongs to the same taxonomy member as target.
func Is(err error, target *Error) bool {
	if err == nil || target == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code == target.Code
	}
	return false
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: "UNKNOWN", Message: "operation failed", Err: err}
}
