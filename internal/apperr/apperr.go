package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Code identifies one of the externally visible error categories. Handlers
// return these verbatim in response bodies so the frontend can render a
// targeted message per code.
type Code string

const (
	CodeFileRequired    Code = "FILE_REQUIRED"
	CodeInvalidFileType Code = "INVALID_FILE_TYPE"
	CodeFileTooLarge    Code = "FILE_TOO_LARGE"
	CodeStorageFailure  Code = "STORAGE_FAILURE"
	CodeFileNotFound    Code = "FILE_NOT_FOUND"
	CodeFileUnreadable  Code = "FILE_UNREADABLE"
	CodeUpstreamError   Code = "UPSTREAM_ERROR"
	CodeParseFailure    Code = "PARSE_FAILURE"
	CodeInvalidRequest  Code = "INVALID_REQUEST"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

// Error is a categorized application error. The Cause is kept for logs and
// wrapped messages; only Code and Message are meant for API responses.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error without an underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an Error around an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// From extracts an *Error from err's chain, or wraps err as CodeInternal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(CodeInternal, "internal server error", err)
}

// HTTPStatus maps each code to the status the API returns for it. Upstream
// LLM failures and unparsable model replies both report as bad gateway:
// callers cannot act on provider-specific causes.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeFileRequired, CodeInvalidRequest:
		return fiber.StatusBadRequest
	case CodeInvalidFileType:
		return fiber.StatusUnsupportedMediaType
	case CodeFileTooLarge:
		return fiber.StatusRequestEntityTooLarge
	case CodeFileNotFound, CodeNotFound:
		return fiber.StatusNotFound
	case CodeFileUnreadable:
		return fiber.StatusUnprocessableEntity
	case CodeUpstreamError, CodeParseFailure:
		return fiber.StatusBadGateway
	case CodeStorageFailure:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
