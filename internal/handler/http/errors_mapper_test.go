package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-car-keeper/internal/service"
	"github.com/MKhiriev/go-car-keeper/internal/store"
	"github.com/MKhiriev/go-car-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"empty body", utils.ErrEmptyBody, http.StatusBadRequest},
		{"bad car id", fmt.Errorf("%w: %q", ErrInvalidCarID, "x"), http.StatusBadRequest},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"expired token", service.ErrTokenIsExpired, http.StatusUnauthorized},
		{"invalid token", service.ErrTokenIsInvalid, http.StatusUnauthorized},
		{"user not found", fmt.Errorf("lookup: %w", store.ErrNoUserWasFound), http.StatusNotFound},
		{"car not found", store.ErrCarNotFound, http.StatusNotFound},
		{"duplicate user name", store.ErrUserNameAlreadyExists, http.StatusConflict},
		{"transient", store.ErrTransientInfra, http.StatusServiceUnavailable},
		{"transient wins over query error", fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrTransientInfra), http.StatusServiceUnavailable},
		{"query error", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesServerErrors(t *testing.T) {
	rr := httptest.NewRecorder()
	status := writeError(rr, fmt.Errorf("%w: relation \"car\" does not exist", store.ErrExecutingQuery))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), strings.TrimSpace(rr.Body.String()))
}

func TestWriteError_UsesSentinelText(t *testing.T) {
	rr := httptest.NewRecorder()
	status := writeError(rr, fmt.Errorf("error getting car: %w", store.ErrCarNotFound))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "car not found", strings.TrimSpace(rr.Body.String()))
}
