// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler. A path that exists but does not accept the
// requested method answers 404 Not Found instead of chi's default 405, so
// callers cannot discover which methods a path supports.
//
// The router has already failed to find a handler for the method, so the
// request is never dispatched again.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod())
func CheckHTTPMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
