// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/store"
)

// withConnection acquires one dedicated database connection per request,
// configures its session and attaches it to the request context, where
// repositories pick it up. The connection is returned to the pool when the
// request finishes, including when a downstream handler panics.
//
// Acquisition failure answers 503 Service Unavailable.
func (h *Handler) withConnection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.connections == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		conn, err := h.connections.Acquire(r.Context())
		if err != nil {
			log.Err(err).Msg("could not acquire database connection")
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		defer func() {
			if err := conn.Close(); err != nil {
				log.Err(err).Msg("error releasing database connection")
			}
		}()

		next.ServeHTTP(w, r.WithContext(store.WithConn(r.Context(), conn)))
	})
}
