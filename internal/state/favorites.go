package state

import "time"

// SetFavorite marks or unmarks path as a favorite of account.
func (m *Manager) SetFavorite(account, path string, favorite bool) error {
	if !favorite {
		_, err := m.db.Exec(`DELETE FROM favorites WHERE account = ? AND path = ?`, account, path)
		return err
	}
	_, err := m.db.Exec(`
		INSERT INTO favorites (account, path, added_at) VALUES (?, ?, ?)
		ON CONFLICT(account, path) DO NOTHING
	`, account, path, time.Now().Unix())
	return err
}

// IsFavorite reports whether path is a favorite of account.
func (m *Manager) IsFavorite(account, path string) (bool, error) {
	var count int
	err := m.db.QueryRow(`
		SELECT COUNT(*) FROM favorites WHERE account = ? AND path = ?
	`, account, path).Scan(&count)
	return count > 0, err
}
