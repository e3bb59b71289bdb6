// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-car-keeper/models"
)

type CarValidator struct{}

// NewCarValidator returns a Validator for [models.Car] records.
//
// Car fields other than the identifiers are stored as given.
func NewCarValidator() Validator {
	return &CarValidator{}
}

func (v *CarValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Car:
		return v.validateCar(ctx, value, fields...)
	case *models.Car:
		return v.validateCar(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CarValidator) validateCar(_ context.Context, car models.Car, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCarID, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldCarID:
			if car.ID <= 0 {
				return ErrInvalidCarID
			}
		case FieldUserID:
			if car.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
