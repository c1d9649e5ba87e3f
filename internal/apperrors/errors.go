package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors used with errors.Is across services and repositories.
var (
	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")

	// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
	ErrDuplicate = errors.New("resource already exists")

	// ErrUnauthorized indicates a missing or invalid session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the authenticated user may not act on the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict indicates the operation conflicts with the current state of the resource.
	ErrConflict = errors.New("conflict")

	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = errors.New("internal error")
)

// Error codes surfaced to API clients. Handlers pass these through verbatim
// in the {status, code, message} error body.
const (
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeForbidden          = "FORBIDDEN"
	CodeTenantNotFound     = "TENANT_NOT_FOUND"
	CodeCompanyNotFound    = "COMPANY_NOT_FOUND"
	CodeDocumentNotFound   = "DOCUMENT_NOT_FOUND"
	CodeAlreadyPosted      = "ALREADY_POSTED"
	CodeDocumentVoided     = "DOCUMENT_VOIDED"
	CodePeriodClosed       = "PERIOD_CLOSED"
	CodeInsufficientFolios = "INSUFFICIENT_FOLIOS"
	CodeUnbalancedEntry    = "UNBALANCED_ENTRY"
	CodeConcurrentConflict = "CONCURRENT_CONFLICT"
	CodeValidation         = "VALIDATION_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError is the error shape the HTTP boundary understands. Status is the
// HTTP status the boundary should answer with, Code is the machine-readable
// taxonomy code, Message is safe to show to the caller.
type AppError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping an underlying cause.
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{Status: status, Code: code, Message: message, Err: err}
}

// NewInternalError wraps an unexpected failure as a 500 AppError.
func NewInternalError(message string, err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Code: CodeInternal, Message: message, Err: errors.Join(ErrInternal, err)}
}

// NewUnauthenticated builds the 401 error for requests without a valid session.
func NewUnauthenticated(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: CodeUnauthenticated, Message: message, Err: ErrUnauthorized}
}

// NewForbidden builds the 403 error for users outside the tenant.
func NewForbidden(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Code: CodeForbidden, Message: message, Err: ErrForbidden}
}

// NewNotFoundError builds a 404 AppError with the given taxonomy code.
func NewNotFoundError(code, message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: code, Message: message, Err: ErrNotFound}
}

// NewConflictError builds a 409 AppError with the given taxonomy code.
// ALREADY_POSTED, DOCUMENT_VOIDED, PERIOD_CLOSED, INSUFFICIENT_FOLIOS and
// CONCURRENT_CONFLICT all describe a state the caller can inspect and retry.
func NewConflictError(code, message string) *AppError {
	return &AppError{Status: http.StatusConflict, Code: code, Message: message, Err: ErrConflict}
}

// NewValidationError builds a 400 AppError.
func NewValidationError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: CodeValidation, Message: message, Err: ErrValidation}
}

// AsAppError extracts an AppError from an error chain. When the chain holds
// none, a generic internal AppError is returned so handlers always have a
// {status, code, message} triple to answer with.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError("unexpected error", err)
}
