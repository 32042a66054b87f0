package dto

import "net/http"

// Transport-level error codes. Domain errors carry their own codes and
// are mapped to HTTP statuses by GetHTTPStatus.
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes absent from the map fall back to 422: they are business rule
// violations raised by the domain layer.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeInternal:     http.StatusInternalServerError,

	// Auth
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"EMAIL_TAKEN":         http.StatusConflict,

	// Lookups
	"NOT_FOUND":        http.StatusNotFound,
	"DEVICE_NOT_FOUND": http.StatusNotFound,

	// Conflicts
	"ALREADY_EXISTS":         http.StatusConflict,
	"BRAND_ALREADY_EXISTS":   http.StatusConflict,
	"DUPLICATE_DEVICE":       http.StatusConflict,
	"CONCURRENCY_CONFLICT":   http.StatusConflict,
	"OPTIMISTIC_LOCK_FAILED": http.StatusConflict,

	// Deletion guards
	"BRAND_HAS_MODELS":         http.StatusConflict,
	"SHOP_HAS_OUTSTANDING":     http.StatusConflict,
	"SUPPLIER_HAS_OUTSTANDING": http.StatusConflict,

	// Ledger integrity
	"LEDGER_INCONSISTENCY": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
