package transfers

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

// setupTestDB creates a temporary SQLite database with the transfers table.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Use temp file to avoid in-memory database connection issues
	tmpFile := t.TempDir() + "/test.db"
	db, err := sql.Open("sqlite", tmpFile)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE transfers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		account TEXT NOT NULL,
		path TEXT NOT NULL,
		remote_path TEXT,
		direction TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		size INTEGER NOT NULL DEFAULT 0,
		bytes_done INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return db
}

func TestTransferProgress(t *testing.T) {
	tests := []struct {
		name string
		tr   Transfer
		want float64
	}{
		{"unknown size pending", Transfer{Status: StatusPending}, 0},
		{"unknown size completed", Transfer{Status: StatusCompleted}, 100},
		{"half", Transfer{Size: 200, BytesDone: 100, Status: StatusDownloading}, 50},
		{"done", Transfer{Size: 10, BytesDone: 10, Status: StatusCompleted}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.Progress(); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransferInProgress(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusPending, true},
		{StatusDownloading, true},
		{StatusUploading, true},
		{StatusCompleted, false},
		{StatusFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			tr := Transfer{Status: tt.status}
			if got := tr.InProgress(); got != tt.want {
				t.Errorf("InProgress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestManager_CreateAndGet(t *testing.T) {
	m := New(setupTestDB(t))

	id, err := m.Create(Transfer{
		Account:    "alice",
		Path:       "/data/clip.mp4",
		RemotePath: "/Videos/clip.mp4",
		Size:       1024,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := m.Get(id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != StatusPending {
		t.Errorf("Status = %q, want pending", got.Status)
	}
	if got.Direction != DirectionDownload {
		t.Errorf("Direction = %q, want download", got.Direction)
	}
	if got.RemotePath != "/Videos/clip.mp4" {
		t.Errorf("RemotePath = %q", got.RemotePath)
	}
	if got.Size != 1024 {
		t.Errorf("Size = %d, want 1024", got.Size)
	}
}

func TestManager_CreateReusesOpenTransfer(t *testing.T) {
	m := New(setupTestDB(t))
	tr := Transfer{Account: "alice", Path: "/data/clip.mp4"}

	first, err := m.Create(tr)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, err := m.Create(tr)
	if err != nil {
		t.Fatalf("second Create() error = %v", err)
	}
	if first != second {
		t.Errorf("open transfer should be reused: %d != %d", first, second)
	}

	if err := m.UpdateProgress(first, StatusCompleted, 0); err != nil {
		t.Fatalf("UpdateProgress() error = %v", err)
	}
	third, err := m.Create(tr)
	if err != nil {
		t.Fatalf("third Create() error = %v", err)
	}
	if third == first {
		t.Error("finished transfer should not be reused")
	}
}

func TestManager_InProgress(t *testing.T) {
	m := New(setupTestDB(t))

	busy, err := m.InProgress("alice", "/data/clip.mp4")
	if err != nil {
		t.Fatalf("InProgress() error = %v", err)
	}
	if busy {
		t.Error("no transfer should mean idle")
	}

	id, _ := m.Create(Transfer{Account: "alice", Path: "/data/clip.mp4"})

	busy, _ = m.InProgress("alice", "/data/clip.mp4")
	if !busy {
		t.Error("pending transfer should be in progress")
	}
	busy, _ = m.InProgress("bob", "/data/clip.mp4")
	if busy {
		t.Error("other account should be idle")
	}

	_ = m.UpdateProgress(id, StatusDownloading, 10)
	busy, _ = m.InProgress("alice", "/data/clip.mp4")
	if !busy {
		t.Error("downloading transfer should be in progress")
	}

	_ = m.UpdateProgress(id, StatusFailed, 10)
	busy, _ = m.InProgress("alice", "/data/clip.mp4")
	if busy {
		t.Error("failed transfer should be idle")
	}
}

func TestManager_ListAndDelete(t *testing.T) {
	m := New(setupTestDB(t))
	a, _ := m.Create(Transfer{Account: "alice", Path: "/a.mp4"})
	b, _ := m.Create(Transfer{Account: "alice", Path: "/b.mp4"})
	_ = m.UpdateProgress(a, StatusCompleted, 0)

	list, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(list))
	}
	if list[0].ID != b {
		t.Errorf("newest first: got %d, want %d", list[0].ID, b)
	}

	if err := m.DeleteFinished(); err != nil {
		t.Fatalf("DeleteFinished() error = %v", err)
	}
	if _, err := m.Get(a); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(finished) error = %v, want ErrNotFound", err)
	}

	if err := m.Delete(b); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	list, _ = m.List()
	if len(list) != 0 {
		t.Errorf("len(List()) = %d, want 0", len(list))
	}
}
