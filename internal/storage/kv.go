package storage

import (
	"database/sql"
	"fmt"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// KV is the durable Store implementation backed by a single-table sqlite
// database.
type KV struct {
	conn *sql.DB
}

// NewKV opens the database at path and runs migrations.
func NewKV(path string) (*KV, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage, open error: %v", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("storage, ping error: %v", err)
	}

	kv := &KV{conn: conn}
	if err = kv.migrate(); err != nil {
		return nil, err
	}
	return kv, nil
}

func (kv *KV) migrate() error {
	query := `CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := kv.conn.Exec(query); err != nil {
		return fmt.Errorf("storage, migrate error: %v", err)
	}
	return nil
}

// Get returns the value stored under key, or ErrNotFound.
func (kv *KV) Get(key string) (string, error) {
	var value string
	err := kv.conn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage, get error: %v", err)
	}
	return value, nil
}

// Set writes value under key, overwriting any previous value.
func (kv *KV) Set(key, value string) error {
	query := `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := kv.conn.Exec(query, key, value); err != nil {
		return fmt.Errorf("storage, set error: %v", err)
	}
	return nil
}

// Close closes the underlying database.
func (kv *KV) Close() error {
	return kv.conn.Close()
}
