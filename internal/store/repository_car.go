// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/models"
	"github.com/georgysavva/scany/v2/sqlscan"
)

// carRepository is the PostgreSQL-backed implementation of [CarRepository]
// over the "car" table. Statements run on the request connection when one
// is attached to the context.
type carRepository struct {
	*DB
	logger *logger.Logger
}

// NewCarRepository constructs a [CarRepository] backed by db.
func NewCarRepository(db *DB, logger *logger.Logger) CarRepository {
	logger.Debug().Msg("creating car repository")
	return &carRepository{
		DB:     db,
		logger: logger,
	}
}

// ListCars returns every car owned by userID ordered by id. The result is
// never nil.
func (c *carRepository) ListCars(ctx context.Context, userID int64) ([]models.Car, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCarsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "carRepository.ListCars").Int64("user_id", userID).Msg("failed to create query")
		return nil, err
	}

	cars := make([]models.Car, 0)
	if err = sqlscan.Select(ctx, c.runner(ctx), &cars, query, args...); err != nil {
		log.Err(err).
			Str("func", "carRepository.ListCars").
			Int64("user_id", userID).
			Msg("failed to select cars")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, c.classify(err))
	}
	if cars == nil {
		cars = make([]models.Car, 0)
	}

	return cars, nil
}

// GetCar returns the car carID when it belongs to userID, otherwise
// [ErrCarNotFound].
func (c *carRepository) GetCar(ctx context.Context, userID, carID int64) (models.Car, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCarQuery(userID, carID)
	if err != nil {
		log.Err(err).Str("func", "carRepository.GetCar").Msg("failed to create query")
		return models.Car{}, err
	}

	var car models.Car
	if err = sqlscan.Get(ctx, c.runner(ctx), &car, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return models.Car{}, ErrCarNotFound
		}

		log.Err(err).
			Str("func", "carRepository.GetCar").
			Int64("user_id", userID).
			Int64("car_id", carID).
			Msg("failed to select car")
		return models.Car{}, fmt.Errorf("%w: %w", ErrExecutingQuery, c.classify(err))
	}

	return car, nil
}

// CreateCar inserts car and reports the generated id.
func (c *carRepository) CreateCar(ctx context.Context, car models.Car) (models.MutationResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCarQuery(car)
	if err != nil {
		log.Err(err).Str("func", "carRepository.CreateCar").Msg("failed to create query")
		return models.MutationResult{}, err
	}

	var insertID int64
	if err = c.runner(ctx).QueryRowContext(ctx, query, args...).Scan(&insertID); err != nil {
		log.Err(err).
			Str("func", "carRepository.CreateCar").
			Int64("user_id", car.UserID).
			Msg("failed to insert car")
		return models.MutationResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, c.classify(err))
	}

	log.Debug().Str("func", "carRepository.CreateCar").Int64("car_id", insertID).Msg("car created")

	return models.MutationResult{InsertID: insertID, AffectedRows: 1}, nil
}

// UpdateCar changes the make of car.ID when it belongs to car.UserID.
// Zero affected rows yields [ErrCarNotFound].
func (c *carRepository) UpdateCar(ctx context.Context, car models.Car) (models.MutationResult, error) {
	query, args, err := buildUpdateCarQuery(car)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "carRepository.UpdateCar").Msg("failed to create query")
		return models.MutationResult{}, err
	}

	return c.exec(ctx, "carRepository.UpdateCar", query, args...)
}

// DeleteCar removes carID when it belongs to userID. Zero affected rows
// yields [ErrCarNotFound].
func (c *carRepository) DeleteCar(ctx context.Context, userID, carID int64) (models.MutationResult, error) {
	query, args, err := buildDeleteCarQuery(userID, carID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "carRepository.DeleteCar").Msg("failed to create query")
		return models.MutationResult{}, err
	}

	return c.exec(ctx, "carRepository.DeleteCar", query, args...)
}

func (c *carRepository) exec(ctx context.Context, funcName, query string, args ...any) (models.MutationResult, error) {
	log := logger.FromContext(ctx)

	result, err := c.runner(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return models.MutationResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, c.classify(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return models.MutationResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Debug().Str("func", funcName).Msg("no car matched")
		return models.MutationResult{}, ErrCarNotFound
	}

	return models.MutationResult{AffectedRows: affected}, nil
}
