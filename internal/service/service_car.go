// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/store"
	"github.com/MKhiriev/go-car-keeper/internal/validators"
	"github.com/MKhiriev/go-car-keeper/models"
)

type carService struct {
	carRepository store.CarRepository
	validator     validators.Validator

	logger *logger.Logger
}

func NewCarService(carRepository store.CarRepository, logger *logger.Logger) CarService {
	return &carService{
		carRepository: carRepository,
		validator:     validators.NewCarValidator(),
		logger:        logger,
	}
}

func (c *carService) ListCars(ctx context.Context, userID int64) ([]models.Car, error) {
	cars, err := c.carRepository.ListCars(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing cars: %w", err)
	}
	if cars == nil {
		cars = []models.Car{}
	}

	return cars, nil
}

// GetCarMake returns only the make of the requested car.
func (c *carService) GetCarMake(ctx context.Context, userID, carID int64) (models.CarMake, error) {
	car, err := c.carRepository.GetCar(ctx, userID, carID)
	if err != nil {
		return models.CarMake{}, fmt.Errorf("error getting car: %w", err)
	}

	return models.CarMake{Make: car.Make}, nil
}

func (c *carService) CreateCar(ctx context.Context, car models.Car) (models.MutationResult, error) {
	if err := c.validator.Validate(ctx, car, validators.FieldUserID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "carService.CreateCar").Msg("car without owner")
		return models.MutationResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.carRepository.CreateCar(ctx, car)
}

func (c *carService) UpdateCar(ctx context.Context, car models.Car) (models.MutationResult, error) {
	if err := c.validator.Validate(ctx, car); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "carService.UpdateCar").Msg("invalid car identifiers")
		return models.MutationResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.carRepository.UpdateCar(ctx, car)
}

func (c *carService) DeleteCar(ctx context.Context, userID, carID int64) (models.MutationResult, error) {
	return c.carRepository.DeleteCar(ctx, userID, carID)
}
