package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLite keeps every slot as a row in a single key-value table, the closest
// server-side analog of a browser's local storage area.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database file and ensures the slot table
// exists.
func NewSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite storage: database path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite storage: create slots table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(slot string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM slots WHERE name = ?`, slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("sqlite storage: load slot %q: %w", slot, err)
	}
	return payload, true, nil
}

func (s *SQLite) Save(slot string, data []byte) error {
	_, err := s.db.Exec(`INSERT INTO slots (name, payload) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`, slot, data)
	if err != nil {
		return fmt.Errorf("sqlite storage: save slot %q: %w", slot, err)
	}
	return nil
}

func (s *SQLite) Delete(slot string) error {
	if _, err := s.db.Exec(`DELETE FROM slots WHERE name = ?`, slot); err != nil {
		return fmt.Errorf("sqlite storage: delete slot %q: %w", slot, err)
	}
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }
