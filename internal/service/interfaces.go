package service

import (
	"context"

	"github.com/MKhiriev/go-car-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CarService exposes the car operations of one authenticated user. The
// userID arguments always come from verified token claims.
type CarService interface {
	ListCars(ctx context.Context, userID int64) ([]models.Car, error)
	GetCarMake(ctx context.Context, userID, carID int64) (models.CarMake, error)
	CreateCar(ctx context.Context, car models.Car) (models.MutationResult, error)
	UpdateCar(ctx context.Context, car models.Car) (models.MutationResult, error)
	DeleteCar(ctx context.Context, userID, carID int64) (models.MutationResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetDiagnostic(ctx context.Context) models.Diagnostic
}
