package shared

import "errors"

// ErrorKind classifies a DomainError. Callers branch on the kind (or the code),
// never on the message text.
type ErrorKind string

const (
	KindAuth       ErrorKind = "AUTH"
	KindValidation ErrorKind = "VALIDATION"
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindConflict   ErrorKind = "CONFLICT"
	KindPayment    ErrorKind = "PAYMENT"
	KindProvider   ErrorKind = "PROVIDER"
)

// ProviderErrorPrefix starts the message of every error produced by WrapProviderError.
const ProviderErrorPrefix = "ProviderError: "

// DomainError represents a domain-level error
type DomainError struct {
	Kind    ErrorKind `json:"kind"`
	Code    string    `json:"code"`
	Message string    `json:"message"`

	cause error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap returns the underlying failure, if any
func (e *DomainError) Unwrap() error {
	return e.cause
}

// NewDomainError creates a new domain error of the given kind
func NewDomainError(kind ErrorKind, code, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// NewAuthError creates an authentication error
func NewAuthError(code, message string) *DomainError {
	return NewDomainError(KindAuth, code, message)
}

// NewValidationError creates a validation error
func NewValidationError(code, message string) *DomainError {
	return NewDomainError(KindValidation, code, message)
}

// NewNotFoundError creates a not-found error
func NewNotFoundError(code, message string) *DomainError {
	return NewDomainError(KindNotFound, code, message)
}

// NewConflictError creates a conflict error
func NewConflictError(code, message string) *DomainError {
	return NewDomainError(KindConflict, code, message)
}

// NewPaymentError creates a payment error
func NewPaymentError(code, message string) *DomainError {
	return NewDomainError(KindPayment, code, message)
}

// NewProviderError creates an error originating from a backing provider
func NewProviderError(code, message string) *DomainError {
	return NewDomainError(KindProvider, code, message)
}

// WrapProviderError translates a remote failure into a provider error.
// The message is "ProviderError: " followed by the failure text.
func WrapProviderError(code string, err error) *DomainError {
	msg := "<nil>"
	if err != nil {
		msg = err.Error()
	}
	return &DomainError{
		Kind:    KindProvider,
		Code:    code,
		Message: ProviderErrorPrefix + msg,
		cause:   err,
	}
}

// WithCause returns a copy of e that wraps cause, keeping kind, code and message
func (e *DomainError) WithCause(cause error) *DomainError {
	clone := *e
	clone.cause = cause
	return &clone
}

// KindOf returns the kind of the first DomainError in err's chain
func KindOf(err error) (ErrorKind, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind, true
	}
	return "", false
}

// CodeOf returns the code of the first DomainError in err's chain, or "" if none
func CodeOf(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsKind reports whether err carries a DomainError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
