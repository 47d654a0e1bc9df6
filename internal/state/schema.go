package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS preview_snapshots (
			key TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			account TEXT NOT NULL,
			position_ms INTEGER NOT NULL DEFAULT 0,
			playing INTEGER NOT NULL DEFAULT 0,
			saved_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS favorites (
			account TEXT NOT NULL,
			path TEXT NOT NULL,
			added_at INTEGER NOT NULL,
			PRIMARY KEY (account, path)
		);

		CREATE TABLE IF NOT EXISTS transfers (
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
		);

		CREATE INDEX IF NOT EXISTS idx_transfers_file ON transfers(account, path, status);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: add remote_path column if missing
	_, _ = db.Exec(`ALTER TABLE transfers ADD COLUMN remote_path TEXT`)

	return nil
}
