package http

import (
	"net/http"

	"github.com/MKhiriev/go-car-keeper/internal/utils"
)

// diagnostic answers a fixed payload; it is used to check that the API is up.
func (h *Handler) diagnostic(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetDiagnostic(r.Context()), http.StatusOK)
}
