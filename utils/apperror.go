package utils

import (
	"errors"
	"fmt"
)

// Error codes surfaced to clients in extensions.code.
const (
	CodeUnauthenticated     = "UNAUTHENTICATED"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeBadUserInput        = "BAD_USER_INPUT"
	CodeOTPExpired          = "OTP_EXPIRED"
	CodeTooManyAttempts     = "TOO_MANY_ATTEMPTS"
	CodeInvalidOTP          = "INVALID_OTP"
	CodeDuplicateEmail      = "DUPLICATE_EMAIL"
	CodeDuplicateDepartment = "DUPLICATE_DEPARTMENT"
	CodeDepartmentInUse     = "DEPARTMENT_IN_USE"
	CodeInternal            = "INTERNAL_SERVER_ERROR"
	CodeRateLimited         = "RATE_LIMITED"
)

// AppError is a failure whose message is safe to show to the caller.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Extensions is picked up by the GraphQL executor and rendered under
// errors[].extensions.
func (e *AppError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func NewAppError(code, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func BadUserInput(format string, args ...interface{}) *AppError {
	return NewAppError(CodeBadUserInput, format, args...)
}

func NotFound(format string, args ...interface{}) *AppError {
	return NewAppError(CodeNotFound, format, args...)
}

// Internal hides err behind a generic message.
func Internal(message string, err error) *AppError {
	return &AppError{Code: CodeInternal, Message: message, Err: err}
}

// AsAppError unwraps err to an *AppError when there is one in its chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// ErrorCode returns the code carried by err, or CodeInternal.
func ErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return CodeInternal
}
