// Package storage provides the keyed collection persistence layer. Each
// collection is stored as one JSON document under its storage key, mirroring
// the way the browser build kept collections in localStorage.
package storage

import (
	"fmt"

	"dubhub/internal/shared/config"
)

// Collection storage keys. These match the keys the browser build used, so
// an exported localStorage dump can be imported unchanged.
const (
	KeyTickets     = "dubhub-tickets"
	KeyDealerships = "dubhub-dealerships"
	KeyResources   = "dubhub-resources"
	KeyTasks       = "dubhub-tasks"
)

// Driver loads and saves raw collection documents by key. Load reports
// whether the key existed so callers can distinguish "never saved" from an
// empty collection.
type Driver interface {
	Load(key string) (data []byte, ok bool, err error)
	Save(key string, data []byte) error
	Close() error
}

// New builds the driver selected by the storage configuration.
func New(cfg *config.StorageConfig) (Driver, error) {
	switch cfg.Driver {
	case config.StorageDriverSQLite:
		return NewSQLiteDriver(cfg.Path)
	case config.StorageDriverFile:
		return NewFileDriver(cfg.Path)
	case config.StorageDriverMemory:
		return NewMemoryDriver(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
