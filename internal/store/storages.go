package store

import "github.com/MKhiriev/go-car-keeper/internal/logger"

// Storages groups the repositories and the connection provider built on
// top of a single [DB].
type Storages struct {
	UserRepository     UserRepository
	CarRepository      CarRepository
	ConnectionProvider ConnectionProvider
}

// NewStorages wires every repository to db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		CarRepository:      NewCarRepository(db, logger),
		ConnectionProvider: db,
	}
}
