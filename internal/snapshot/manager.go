package snapshot

import (
	"errors"
	"fmt"

	"github.com/llehouerou/vidpeek/internal/media"
)

// ErrNoSnapshot is returned by Load when nothing was saved for a key.
var ErrNoSnapshot = errors.New("no snapshot")

// Record is the stored form of a snapshot.
type Record struct {
	Key    string
	Fields map[string]any
}

// Store persists records.
type Store interface {
	SaveSnapshot(r Record) error
	GetSnapshot(key string) (*Record, error)
	DeleteSnapshot(key string) error
}

// Manager saves and restores snapshots through a Store.
type Manager struct {
	store  Store
	lookup func(path string) (media.Item, error)
}

// NewManager creates a manager. lookup resolves stored paths to items;
// nil uses media.Stat.
func NewManager(store Store, lookup func(path string) (media.Item, error)) *Manager {
	if lookup == nil {
		lookup = media.Stat
	}
	return &Manager{store: store, lookup: lookup}
}

// Save stores s under its key.
func (m *Manager) Save(s Snapshot) error {
	if err := m.store.SaveSnapshot(Record{Key: s.Key(), Fields: s.Fields()}); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load returns the snapshot saved under key.
func (m *Manager) Load(key string) (Snapshot, error) {
	r, err := m.store.GetSnapshot(key)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	if r == nil {
		return Snapshot{}, ErrNoSnapshot
	}
	return FromFields(r.Fields, m.lookup)
}

// Discard removes the snapshot saved under key.
func (m *Manager) Discard(key string) error {
	return m.store.DeleteSnapshot(key)
}

// KeyFor returns the key a snapshot of item for account is saved under.
func KeyFor(item media.Item, account media.Account) string {
	return Snapshot{Item: item, Account: account}.Key()
}
