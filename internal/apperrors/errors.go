// Package apperrors defines coded domain errors and their HTTP status mapping.
package apperrors

import (
	"errors"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeValidation         Code = "VALIDATION"
	CodeDuplicateEmail     Code = "DUPLICATE_EMAIL"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeTokenMissing       Code = "TOKEN_MISSING"
	CodeTokenMalformed     Code = "TOKEN_MALFORMED"
	CodeTokenSignature     Code = "TOKEN_SIGNATURE"
	CodeTokenExpired       Code = "TOKEN_EXPIRED"
	CodeTokenInvalid       Code = "TOKEN_INVALID"
	CodeForbidden          Code = "FORBIDDEN"
	CodeNotFound           Code = "NOT_FOUND"
	CodeInternal           Code = "INTERNAL"
)

// HTTPStatus maps the code to the response status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation, CodeDuplicateEmail:
		return http.StatusBadRequest
	case CodeInvalidCredentials, CodeTokenMissing, CodeTokenMalformed,
		CodeTokenSignature, CodeTokenExpired, CodeTokenInvalid:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Unauthenticated reports whether the code is one of the 401 family.
func (c Code) Unauthenticated() bool {
	return c.HTTPStatus() == http.StatusUnauthorized
}

// Error is the domain error type.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Safe to show to clients
	Cause   error  // Wrapped underlying error, logged only
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// HTTPStatus maps any error to a response status. Uncoded errors are 500.
func HTTPStatus(err error) int {
	return CodeOf(err).HTTPStatus()
}

// PublicMessage returns the client-facing message for err. Internal and
// authentication failures collapse to fixed strings.
func PublicMessage(err error) string {
	code := CodeOf(err)
	switch {
	case code == CodeInternal:
		return "internal error"
	case code == CodeInvalidCredentials:
		return "invalid credentials"
	case code.Unauthenticated():
		return "unauthorized"
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}
