// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the car-keeper HTTP API.
//
// [ServerAdapter] wraps the JSON routes of the server: registration and
// authorization, which store the issued bearer token on the adapter, and
// the per-user car operations, which send it. Non-2xx responses are mapped
// to the sentinel errors in errors.go so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-car-keeper/models"
)

// ServerAdapter is a client of one car-keeper server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent car requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates the account described by user and stores the issued
	// token. The passcode travels in plain text; use TLS.
	Register(ctx context.Context, user models.User) (string, error)

	// Authorize checks the UserName and Passcode of user and stores the
	// issued token.
	Authorize(ctx context.Context, user models.User) (string, error)

	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)

	// ListCars returns every car owned by the token holder.
	ListCars(ctx context.Context) ([]models.Car, error)

	// GetCarMake returns the make of one car owned by the token holder.
	GetCarMake(ctx context.Context, carID int64) (models.CarMake, error)

	// CreateCar stores a new car for the token holder. car.ID and
	// car.UserID are ignored.
	CreateCar(ctx context.Context, car models.Car) (models.MutationResult, error)

	// UpdateCar changes the make of car.ID.
	UpdateCar(ctx context.Context, car models.Car) (models.MutationResult, error)

	// DeleteCar removes one car owned by the token holder.
	DeleteCar(ctx context.Context, carID int64) (models.MutationResult, error)
}
