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
		{"FORBIDDEN", http.StatusForbidden},
		{"DUPLICATE_CUSTOM_ID", http.StatusConflict},
		{"FIELD_VALIDATION", http.StatusBadRequest},
		{"FIELD_TYPE_LIMIT", http.StatusBadRequest},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"EMAIL_TAKEN", http.StatusConflict},
		{"ACCOUNT_BLOCKED", http.StatusForbidden},
		{"RATE_LIMITED", http.StatusTooManyRequests},
		{"SOMETHING_NEW", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewFieldValidationResponse(t *testing.T) {
	resp := NewFieldValidationResponse("One or more field values are invalid", "req-1", map[string]string{
		"Price": "must be a number",
	})

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeFieldValidation, resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)
	assert.Equal(t, "must be a number", resp.Error.Fields["Price"])
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a"}, 41, 2, 20)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(41), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
