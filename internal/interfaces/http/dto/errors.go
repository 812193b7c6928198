package dto

import (
	"net/http"

	"github.com/fredonbytes/backend/internal/domain/shared"
)

// Error codes raised by the HTTP layer itself. Provider and domain failures
// keep the code of their DomainError.
const (
	// ErrCodeInternal is used for failures that carry no DomainError
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeValidation is used when request binding fails field validation
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeInvalidJSON is used when the request body is not valid JSON
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeUnauthorized is used when a user-scoped route has no user id
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeUnavailable is used when a dependency health check fails
	ErrCodeUnavailable = "ERR_UNAVAILABLE"
	// ErrCodeRequestTooLarge is used when a body exceeds the configured limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// KindHTTPStatus maps every error kind to its HTTP status
var KindHTTPStatus = map[shared.ErrorKind]int{
	shared.KindAuth:       http.StatusUnauthorized,
	shared.KindValidation: http.StatusBadRequest,
	shared.KindNotFound:   http.StatusNotFound,
	shared.KindConflict:   http.StatusConflict,
	shared.KindPayment:    http.StatusPaymentRequired,
	shared.KindProvider:   http.StatusBadGateway,
}

// StatusForKind returns the HTTP status for an error kind.
// Unknown kinds map to 500 Internal Server Error.
func StatusForKind(kind shared.ErrorKind) int {
	if status, ok := KindHTTPStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}
