// Package transfers tracks download and upload jobs for account files. The
// transfer engine itself runs elsewhere; this package records requests and
// exposes their progress.
package transfers

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/vidpeek/internal/db"
)

// Status constants for transfer states.
const (
	StatusPending     = "pending"
	StatusDownloading = "downloading"
	StatusUploading   = "uploading"
	StatusCompleted   = "completed"
	StatusFailed      = "failed"
)

// Direction constants.
const (
	DirectionDownload = "download"
	DirectionUpload   = "upload"
)

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("transfer not found")

// Transfer is one file moving between the device and an account.
type Transfer struct {
	ID         int64
	Account    string
	Path       string
	RemotePath string
	Direction  string
	Status     string
	Size       int64
	BytesDone  int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InProgress reports whether the transfer is queued or running.
func (t *Transfer) InProgress() bool {
	switch t.Status {
	case StatusPending, StatusDownloading, StatusUploading:
		return true
	default:
		return false
	}
}

// Progress returns the completion percentage.
func (t *Transfer) Progress() float64 {
	if t.Size <= 0 {
		if t.Status == StatusCompleted {
			return 100
		}
		return 0
	}
	return float64(t.BytesDone) / float64(t.Size) * 100
}

// Manager provides database operations for transfers.
type Manager struct {
	db *sql.DB
}

// New creates a new Manager instance.
func New(db *sql.DB) *Manager {
	return &Manager{db: db}
}

// Create records a pending transfer and returns its ID.
func (m *Manager) Create(t Transfer) (int64, error) {
	now := time.Now().Unix()
	if t.Direction == "" {
		t.Direction = DirectionDownload
	}

	var id int64
	err := dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		// One open transfer per file and direction.
		var existing int64
		err := tx.QueryRow(`
			SELECT id FROM transfers
			WHERE account = ? AND path = ? AND direction = ? AND status IN (?, ?, ?)
		`, t.Account, t.Path, t.Direction, StatusPending, StatusDownloading, StatusUploading).Scan(&existing)
		if err == nil {
			id = existing
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		result, err := tx.Exec(`
			INSERT INTO transfers (
				account, path, remote_path, direction, status, size, bytes_done, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?)
		`, t.Account, t.Path, dbutil.NullString(t.RemotePath), t.Direction, StatusPending, t.Size, now, now)
		if err != nil {
			return err
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateProgress sets the status and transferred bytes of a transfer.
func (m *Manager) UpdateProgress(id int64, status string, bytesDone int64) error {
	_, err := m.db.Exec(`
		UPDATE transfers
		SET status = ?, bytes_done = ?, updated_at = ?
		WHERE id = ?
	`, status, bytesDone, time.Now().Unix(), id)
	return err
}

// Get returns a transfer by its ID.
func (m *Manager) Get(id int64) (*Transfer, error) {
	row := m.db.QueryRow(`
		SELECT id, account, path, remote_path, direction, status, size, bytes_done, created_at, updated_at
		FROM transfers
		WHERE id = ?
	`, id)

	t, err := scanTransfer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return t, err
}

// List returns all transfers ordered by creation date (newest first).
func (m *Manager) List() ([]Transfer, error) {
	rows, err := m.db.Query(`
		SELECT id, account, path, remote_path, direction, status, size, bytes_done, created_at, updated_at
		FROM transfers
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, *t)
	}
	return transfers, rows.Err()
}

// InProgress reports whether any transfer of path for account is queued or
// running.
func (m *Manager) InProgress(account, path string) (bool, error) {
	var count int
	err := m.db.QueryRow(`
		SELECT COUNT(*) FROM transfers
		WHERE account = ? AND path = ? AND status IN (?, ?, ?)
	`, account, path, StatusPending, StatusDownloading, StatusUploading).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a transfer.
func (m *Manager) Delete(id int64) error {
	_, err := m.db.Exec(`DELETE FROM transfers WHERE id = ?`, id)
	return err
}

// DeleteFinished removes completed and failed transfers.
func (m *Manager) DeleteFinished() error {
	_, err := m.db.Exec(`DELETE FROM transfers WHERE status IN (?, ?)`, StatusCompleted, StatusFailed)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransfer(s scanner) (*Transfer, error) {
	var t Transfer
	var remotePath sql.NullString
	var createdAt, updatedAt int64

	if err := s.Scan(
		&t.ID, &t.Account, &t.Path, &remotePath, &t.Direction, &t.Status,
		&t.Size, &t.BytesDone, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	t.RemotePath = dbutil.NullStringValue(remotePath)
	t.CreatedAt = time.Unix(createdAt, 0)
	t.UpdatedAt = time.Unix(updatedAt, 0)
	return &t, nil
}
