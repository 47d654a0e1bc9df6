// Package state persists preview snapshots and favorites in SQLite.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/vidpeek/internal/snapshot"
)

const (
	appName      = "vidpeek"
	dbFileName   = "vidpeek.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]snapshot.Record
}

// Open opens the database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the database at dbPath, creating it if needed.
func OpenPath(dbPath string) (*Manager, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, pending: make(map[string]snapshot.Record)}, nil
}

func (m *Manager) Close() error {
	m.Flush()
	return m.db.Close()
}

// Flush writes pending snapshots immediately.
func (m *Manager) Flush() {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	pending := m.pending
	m.pending = make(map[string]snapshot.Record)
	m.saveMu.Unlock()

	for _, r := range pending {
		_ = saveSnapshot(m.db, r)
	}
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// SaveSnapshot queues r for writing. Saves are coalesced per key and
// written after a short delay, or on Flush/Close.
func (m *Manager) SaveSnapshot(r snapshot.Record) error {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending[r.Key] = r

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, m.Flush)
	return nil
}

// GetSnapshot returns the snapshot saved under key, or nil if none.
func (m *Manager) GetSnapshot(key string) (*snapshot.Record, error) {
	m.saveMu.Lock()
	if r, ok := m.pending[key]; ok {
		m.saveMu.Unlock()
		return &r, nil
	}
	m.saveMu.Unlock()

	return getSnapshot(m.db, key)
}

// DeleteSnapshot removes the snapshot saved under key.
func (m *Manager) DeleteSnapshot(key string) error {
	m.saveMu.Lock()
	delete(m.pending, key)
	m.saveMu.Unlock()

	return deleteSnapshot(m.db, key)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
