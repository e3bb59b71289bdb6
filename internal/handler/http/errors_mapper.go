package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-car-keeper/internal/service"
	"github.com/MKhiriev/go-car-keeper/internal/store"
	"github.com/MKhiriev/go-car-keeper/internal/utils"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is matched in order: an infrastructure failure wrapped
// together with a query error must surface as 503, not 500.
var errorStatuses = []errorStatus{
	{store.ErrTransientInfra, http.StatusServiceUnavailable},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest},
	{utils.ErrEmptyBody, http.StatusBadRequest},
	{ErrInvalidCarID, http.StatusBadRequest},

	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized},
	{ErrInvalidAuthorization, http.StatusUnauthorized},
	{ErrNoClaimsInContext, http.StatusUnauthorized},

	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrCarNotFound, http.StatusNotFound},

	{store.ErrUserNameAlreadyExists, http.StatusConflict},

	{service.ErrPasscodeHashingFailed, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrConfiguringSession, http.StatusInternalServerError},
}

func matchError(err error) (errorStatus, bool) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e, true
		}
	}
	return errorStatus{}, false
}

func statusFromError(err error) int {
	if e, ok := matchError(err); ok {
		return e.status
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Client errors carry
// the text of the matched sentinel; server-side failures get the generic
// status text so internals never leak to the client.
func writeError(w http.ResponseWriter, err error) int {
	e, ok := matchError(err)
	if !ok || e.status >= http.StatusInternalServerError {
		status := http.StatusInternalServerError
		if ok {
			status = e.status
		}
		http.Error(w, http.StatusText(status), status)
		return status
	}

	http.Error(w, e.target.Error(), e.status)
	return e.status
}
