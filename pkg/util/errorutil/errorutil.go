package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes. Responders switch on these rather than on concrete error types.
const (
	CodeValidation       = "VALIDATION_FAILED"
	CodeBadRequest       = "BAD_REQUEST"
	CodeUnauthenticated  = "AUTHENTICATION_REQUIRED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeTooManyRequests  = "TOO_MANY_REQUESTS"
	CodeInternal         = "INTERNAL_ERROR"
	NotAuthorizedMessage = "Not authorized"
	UnexpectedMessage    = "An unexpected error occurred"
)

// FieldError is a single validation failure on one input field.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Fields     []FieldError
	RedirectTo string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidationError reports field level failures.
func NewValidationError(fields []FieldError) error {
	return &DomainError{
		Code:       CodeValidation,
		Message:    "validation failed",
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}

func NewBadRequest(message string) error {
	return NewDomainError(CodeBadRequest, message, http.StatusBadRequest)
}

// NewAuthenticationRequired asks the responder to redirect to the login page.
func NewAuthenticationRequired(redirectTo string) error {
	return &DomainError{
		Code:       CodeUnauthenticated,
		Message:    "authentication required",
		HTTPStatus: http.StatusFound,
		RedirectTo: redirectTo,
	}
}

// NewForbidden always carries the same message so callers learn nothing
// about the record they tried to write.
func NewForbidden() error {
	return NewDomainError(CodeForbidden, NotAuthorizedMessage, http.StatusForbidden)
}

func NewNotFound(resource string) error {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func NewConflict(message string) error {
	return NewDomainError(CodeConflict, message, http.StatusConflict)
}

func NewTooManyRequests(message string) error {
	return NewDomainError(CodeTooManyRequests, message, http.StatusTooManyRequests)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    UnexpectedMessage,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    UnexpectedMessage,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsCode reports whether err is a DomainError with the given code.
func IsCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}
