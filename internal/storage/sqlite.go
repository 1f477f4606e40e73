package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLite is the durable KV backed by a single-table sqlite database. It is
// the server-side stand-in for the browser's localStorage: single user, no
// expiry, concurrent writers resolve as last write wins.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the kv database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open kv store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping kv store: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		"key" TEXT PRIMARY KEY,
		"value" TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		// sql.ErrNoRows and any read failure both degrade to "absent".
		return "", false
	}
	return value, true
}

func (s *SQLite) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// GetBool implements KV.
func (s *SQLite) GetBool(key string) bool {
	value, ok := s.get(key)
	return ok && value == "true"
}

// SetBool implements KV.
func (s *SQLite) SetBool(key string, value bool) error {
	if value {
		return s.set(key, "true")
	}
	return s.set(key, "false")
}

// GetJSON implements KV.
func (s *SQLite) GetJSON(key string, out any) bool {
	raw, ok := s.get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

// SetJSON implements KV.
func (s *SQLite) SetJSON(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.set(key, string(raw))
}

// Delete implements KV.
func (s *SQLite) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

var _ KV = (*SQLite)(nil)
