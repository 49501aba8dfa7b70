package dto

import "net/http"

// Error codes shared between the domain layer and HTTP responses.
// Domain errors carry these codes verbatim; the tables below decide
// the status line.
const (
	ErrCodeInternal     = "INTERNAL"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeRateLimited  = "RATE_LIMITED"

	ErrCodeFieldValidation = "FIELD_VALIDATION"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// Generic
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeRateLimited:  http.StatusTooManyRequests,

	// Identity
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	"ACCOUNT_BLOCKED":     http.StatusForbidden,
	"EMAIL_TAKEN":         http.StatusConflict,
	"USERNAME_TAKEN":      http.StatusConflict,
	"USER_NOT_FOUND":      http.StatusNotFound,
	"INVALID_PASSWORD":    http.StatusBadRequest,
	"INVALID_USERNAME":    http.StatusBadRequest,
	"INVALID_EMAIL":       http.StatusBadRequest,
	"ALREADY_ADMIN":       http.StatusConflict,
	"NOT_ADMIN":           http.StatusConflict,
	"ALREADY_BLOCKED":     http.StatusConflict,
	"NOT_BLOCKED":         http.StatusConflict,

	// Inventories and grants
	"INVALID_TITLE":     http.StatusBadRequest,
	"INVALID_CATEGORY":  http.StatusBadRequest,
	"INVALID_CREATOR":   http.StatusBadRequest,
	"INVALID_INVENTORY": http.StatusBadRequest,
	"INVALID_USER":      http.StatusBadRequest,
	"INVALID_GRANT":     http.StatusBadRequest,
	"DUPLICATE_GRANT":   http.StatusConflict,

	// Custom identifiers
	"DUPLICATE_CUSTOM_ID": http.StatusConflict,
	"INVALID_CUSTOM_ID":   http.StatusBadRequest,
	"INVALID_FORMAT":      http.StatusBadRequest,

	// Dynamic fields
	ErrCodeFieldValidation: http.StatusBadRequest,
	"INVALID_FIELD_TYPE":   http.StatusBadRequest,
	"FIELD_TYPE_LIMIT":     http.StatusBadRequest,
	"DUPLICATE_TITLE":      http.StatusConflict,
	"INVALID_ORDER":        http.StatusBadRequest,

	// Shared
	"ALREADY_EXISTS":       http.StatusConflict,
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting
// to 500 for unknown codes.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
