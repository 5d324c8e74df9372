package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"WRONG_PASSWORD", http.StatusForbidden},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"TOKEN_EXPIRED", http.StatusUnauthorized},
		{"DUPLICATE_SLUG", http.StatusConflict},
		{"NOT_PUBLISHED", http.StatusNotFound},
		{"RATE_LIMITED", http.StatusTooManyRequests},
		{"INTERNAL_ERROR", http.StatusInternalServerError},
		// Domain validation codes default to 400.
		{"EMPTY_TITLE", http.StatusBadRequest},
		{"SHORT_PASSWORD", http.StatusBadRequest},
		{"ANSWER_COUNT", http.StatusBadRequest},
		{"INVALID_PERCENT", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}
