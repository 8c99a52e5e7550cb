package booking

import (
	"errors"
	"fmt"
)

// Error codes distinguish the failure classes callers react to differently.
const (
	CodeConflict    = "conflict"    // requested window is not bookable
	CodePermission  = "permission"  // actor may not perform this operation
	CodeNotFound    = "not_found"   // booking or attachment does not exist
	CodeValidation  = "validation"  // malformed input
	CodeUnavailable = "unavailable" // illegal lifecycle transition
)

// BookingError is the tagged error returned at the service boundary.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...interface{}) error {
	return &BookingError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...interface{}) error {
	return newError(CodeConflict, format, args...)
}

func NewPermissionError(format string, args ...interface{}) error {
	return newError(CodePermission, format, args...)
}

func NewNotFoundError(format string, args ...interface{}) error {
	return newError(CodeNotFound, format, args...)
}

func NewValidationError(format string, args ...interface{}) error {
	return newError(CodeValidation, format, args...)
}

func NewTransitionError(format string, args ...interface{}) error {
	return newError(CodeUnavailable, format, args...)
}

// ErrorCode extracts the booking error code, or "" for untagged errors.
func ErrorCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

func IsConflict(err error) bool   { return ErrorCode(err) == CodeConflict }
func IsPermission(err error) bool { return ErrorCode(err) == CodePermission }
func IsNotFound(err error) bool   { return ErrorCode(err) == CodeNotFound }
func IsValidation(err error) bool { return ErrorCode(err) == CodeValidation }
