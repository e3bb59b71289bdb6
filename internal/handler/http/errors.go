// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP layer. Callers can match against them with
// [errors.Is].
var (
	// ErrInvalidAuthorization is returned by the auth gate when the
	// "Authorization" header is absent, does not use the Bearer scheme or
	// carries an empty token.
	ErrInvalidAuthorization = errors.New("invalid authorization")

	// ErrInvalidCarID is returned when the {id} route parameter is not a
	// positive integer.
	ErrInvalidCarID = errors.New("invalid car id")

	// ErrNoClaimsInContext means a private handler ran without the auth gate.
	ErrNoClaimsInContext = errors.New("no verified claims in request context")
)
