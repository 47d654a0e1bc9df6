package state

import (
	"database/sql"

	"github.com/llehouerou/vidpeek/internal/snapshot"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SaveSnapshot(r snapshot.Record) error
	GetSnapshot(key string) (*snapshot.Record, error)
	DeleteSnapshot(key string) error
	SetFavorite(account, path string, favorite bool) error
	IsFavorite(account, path string) (bool, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)

// Verify Manager implements snapshot.Store at compile time.
var _ snapshot.Store = (*Manager)(nil)
