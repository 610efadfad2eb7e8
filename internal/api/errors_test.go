package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conectone/platform/internal/storage"
)

func TestStorageErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "not found",
			err:      storage.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  "Booking not found",
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("get booking: %w", storage.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantMsg:  "Booking not found",
		},
		{
			name:     "duplicate",
			err:      storage.ErrDuplicate,
			wantCode: http.StatusConflict,
			wantMsg:  "Booking already exists",
		},
		{
			name:     "conflict",
			err:      storage.ErrConflict,
			wantCode: http.StatusConflict,
			wantMsg:  "Booking is in use",
		},
		{
			name:     "unavailable",
			err:      storage.ErrUnavailable,
			wantCode: http.StatusConflict,
			wantMsg:  "Dates not available",
		},
		{
			name:     "unknown error is a 500",
			err:      errors.New("disk on fire"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Failed to access Booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := storageError(tt.err, "Booking", "booking-123")
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestAPIErrorError(t *testing.T) {
	assert.Equal(t, "boom", (&APIError{Message: "boom"}).Error())
	assert.Equal(t, "boom: details", (&APIError{Message: "boom", Details: "details"}).Error())
}

func TestNotFoundErrorCarriesID(t *testing.T) {
	apiErr := NotFoundError("Property", "property-9")
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
	assert.Equal(t, "property-9", apiErr.Context["id"])
}
