package state

import (
	"database/sql"

	"github.com/llehouerou/vidpeek/internal/snapshot"
)

// Mock is a test double for Manager.
type Mock struct {
	snapshots map[string]snapshot.Record
	favorites map[string]bool
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{
		snapshots: make(map[string]snapshot.Record),
		favorites: make(map[string]bool),
	}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveSnapshot(r snapshot.Record) error {
	m.snapshots[r.Key] = r
	return nil
}

func (m *Mock) GetSnapshot(key string) (*snapshot.Record, error) {
	r, ok := m.snapshots[key]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	return &r, nil
}

func (m *Mock) DeleteSnapshot(key string) error {
	delete(m.snapshots, key)
	return nil
}

func (m *Mock) SetFavorite(account, path string, favorite bool) error {
	m.favorites[account+":"+path] = favorite
	return nil
}

func (m *Mock) IsFavorite(account, path string) (bool, error) {
	return m.favorites[account+":"+path], nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
