package store

import "github.com/MKhiriev/zephyr-centrum/internal/logger"

// Storages groups the repositories built on one connection.
type Storages struct {
	UserRepository UserRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}
}
