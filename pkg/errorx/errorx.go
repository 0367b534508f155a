package errorx

import (
	"errors"
	"fmt"
)

// CodeError is an error carrying a business status code.
// It supports wrapping an underlying error and is recognized by
// errors.Is/errors.As through Unwrap.
type CodeError struct {
	Code  int
	Msg   string
	cause error
}

func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

func (e *CodeError) Unwrap() error {
	return e.cause
}

// New creates a CodeError with the given code and message.
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates a CodeError with a formatted message.
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a business code and message to an underlying error.
// Usage: errorx.Wrap(err, CodeNotFound, "group not found")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode extracts the business code from an error chain,
// falling back to CodeServerBusy for unknown errors.
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// Business status codes.
const (
	CodeSuccess      = 1000
	CodeInvalidParam = 1001 // malformed input (validation failure)
	CodeUserExist    = 1002
	CodeUserNotExist = 1003
	CodeInvalidAuth  = 1004 // bad credentials
	CodeServerBusy   = 1005
	CodeUnauthorized = 1006 // no resolved caller identity
	CodeForbidden    = 1007 // authorization gate failure
	CodeNotFound     = 1008 // entity absent
	CodeConflict     = 1009 // duplicate / already exists
	CodeDBError      = 1010
	CodeCacheError   = 1011
)

// Predefined instances, usable directly or with errors.Is.
var (
	ErrInvalidParam = New(CodeInvalidParam, "invalid request parameter")
	ErrServerBusy   = New(CodeServerBusy, "server busy")
)

// IsNotFound reports whether err is a "not found" error,
// including a wrapped gorm.ErrRecordNotFound.
func IsNotFound(err error) bool {
	var codeErr *CodeError
	if errors.As(err, &codeErr) && codeErr.Code == CodeNotFound {
		return true
	}
	return err != nil && err.Error() == "record not found"
}

// IsConflict reports whether err is a duplicate/already-exists error.
func IsConflict(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeConflict
}
