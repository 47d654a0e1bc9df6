package state

import (
	"database/sql"
	"errors"
	"time"

	"github.com/llehouerou/vidpeek/internal/snapshot"
)

func getSnapshot(db *sql.DB, key string) (*snapshot.Record, error) {
	row := db.QueryRow(`
		SELECT path, account, position_ms, playing
		FROM preview_snapshots WHERE key = ?
	`, key)

	var path, account string
	var position int
	var playing bool

	err := row.Scan(&path, &account, &position, &playing)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved snapshot is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &snapshot.Record{
		Key: key,
		Fields: map[string]any{
			snapshot.FieldFile:     path,
			snapshot.FieldAccount:  account,
			snapshot.FieldPosition: position,
			snapshot.FieldPlaying:  playing,
		},
	}, nil
}

func saveSnapshot(db *sql.DB, r snapshot.Record) error {
	path, _ := r.Fields[snapshot.FieldFile].(string)
	account, _ := r.Fields[snapshot.FieldAccount].(string)
	position, _ := r.Fields[snapshot.FieldPosition].(int)
	playing, _ := r.Fields[snapshot.FieldPlaying].(bool)

	_, err := db.Exec(`
		INSERT INTO preview_snapshots (key, path, account, position_ms, playing, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			path = excluded.path,
			account = excluded.account,
			position_ms = excluded.position_ms,
			playing = excluded.playing,
			saved_at = excluded.saved_at
	`, r.Key, path, account, position, playing, time.Now().Unix())
	return err
}

func deleteSnapshot(db *sql.DB, key string) error {
	_, err := db.Exec(`DELETE FROM preview_snapshots WHERE key = ?`, key)
	return err
}
