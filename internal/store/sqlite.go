package store

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// sqliteStore keeps every key in a single kv table.
type sqliteStore struct {
	db  *sql.DB
	log *zap.Logger
}

func openSQLite(cfg Config, log *zap.Logger) (Store, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, errors.New("store path is required for sqlite driver")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite prefers a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	_, _ = db.Exec("PRAGMA busy_timeout = 5000")
	_, _ = db.Exec("PRAGMA journal_mode = WAL")

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &sqliteStore{db: db, log: log}, nil
}

func (s *sqliteStore) Load(key string) ([]byte, bool) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		s.log.Warn("store read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return value, true
}

func (s *sqliteStore) Save(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		s.log.Warn("store write failed", zap.String("key", key), zap.Error(err))
	}
	return err
}

func (s *sqliteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
