package dto

import "net/http"

// Transport-level error codes. Domain error codes pass through unchanged;
// these cover failures that never reach a service.
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeRateLimited  = "RATE_LIMITED"
	ErrCodeBodyTooLarge = "BODY_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Any code not
// listed here is treated as a 400 validation failure, which is what the
// remaining domain codes all are.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeRateLimited:  http.StatusTooManyRequests,
	ErrCodeBodyTooLarge: http.StatusRequestEntityTooLarge,

	// Auth flow
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,
	"EDITOR_NOT_FOUND":    http.StatusUnauthorized,

	// A failed password check on a board post is an expected outcome, not
	// an authentication problem. The visitor is not logged in to anything.
	"WRONG_PASSWORD": http.StatusForbidden,

	// Resources
	"ALREADY_EXISTS":  http.StatusConflict,
	"DUPLICATE_SLUG":  http.StatusConflict,
	"NOT_PUBLISHED":   http.StatusNotFound,
	"UNKNOWN_PROFILE": http.StatusNotFound,

	// State
	"INVALID_STATE": http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status for an error code. Unlisted codes
// are domain validation failures and map to 400.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}
