// Package store persists site content as JSON blobs in a local
// key-value store, one key per collection. Two drivers are available:
// a dependency-free file backend (one file per key) and a SQLite
// backend (modernc.org/sqlite).
package store

import (
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// Keys under which site state is persisted. The vmac_ prefix keeps the
// content keys apart from anything else sharing the store.
const (
	KeyNotices   = "vmac_notices"
	KeyAbout     = "vmac_about"
	KeyGallery   = "vmac_gallery"
	KeyCommittee = "vmac_committee"
	KeyArticles  = "vmac_articles"
	KeyPassword  = "vmac_admin_password"
)

// Store is the minimal persistence API used by the content repositories
// and the admin session.
type Store interface {
	// Load returns the bytes stored at key, or ok=false when the key
	// is absent or unreadable.
	Load(key string) (value []byte, ok bool)
	// Save writes value at key. Failures are best-effort: the driver
	// logs them and callers may ignore the returned error.
	Save(key string, value []byte) error
	Close() error
}

// Config selects and configures a driver.
//
// Driver values:
//   - "file" (or empty): one <key>.json file per key under Path
//   - "sqlite": a kv table in the SQLite database file at Path
type Config struct {
	Driver string
	Path   string
}

// Open initializes the configured store. A nil logger is replaced with
// a nop logger.
func Open(cfg Config, log *zap.Logger) (Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	switch driver {
	case "", "file":
		return openFile(cfg, log)
	case "sqlite", "sqlite3":
		return openSQLite(cfg, log)
	default:
		return nil, errors.New("unknown store driver: " + driver)
	}
}

// LoadJSON decodes the value at key into a T. It reports ok=false when
// the key is absent or the stored bytes fail to parse, so the caller
// can fall back to its seed defaults.
func LoadJSON[T any](s Store, key string) (T, bool) {
	var v T
	raw, ok := s.Load(key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false
	}
	return v, true
}

// SaveJSON encodes v and writes it at key. Best-effort: a marshal or
// write failure is returned but must never crash the mutation path.
func SaveJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Save(key, raw)
}
