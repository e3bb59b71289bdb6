package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-car-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the generated UserID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUserName returns the stored user, including the passcode
	// digest, or [ErrNoUserWasFound].
	FindUserByUserName(ctx context.Context, userName string) (models.User, error)
}

// CarRepository performs CRUD on cars. Every method is scoped to the owner
// passed in, so a user can never see or change another user's car.
type CarRepository interface {
	ListCars(ctx context.Context, userID int64) ([]models.Car, error)
	GetCar(ctx context.Context, userID, carID int64) (models.Car, error)
	CreateCar(ctx context.Context, car models.Car) (models.MutationResult, error)
	UpdateCar(ctx context.Context, car models.Car) (models.MutationResult, error)
	DeleteCar(ctx context.Context, userID, carID int64) (models.MutationResult, error)
}

// ConnectionProvider hands out a dedicated, session-configured connection
// for the lifetime of one request. The caller must Close it.
type ConnectionProvider interface {
	Acquire(ctx context.Context) (*sql.Conn, error)
}
