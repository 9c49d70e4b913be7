package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// fileStore keeps one <key>.json file per key inside a directory.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a half-written value behind.
type fileStore struct {
	dir string
	log *zap.Logger
}

func openFile(cfg Config, log *zap.Logger) (Store, error) {
	dir := strings.TrimSpace(cfg.Path)
	if dir == "" {
		return nil, errors.New("store path is required for file driver")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fileStore{dir: dir, log: log}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *fileStore) Load(key string) ([]byte, bool) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (s *fileStore) Save(key string, value []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		s.log.Warn("store write failed", zap.String("key", key), zap.Error(err))
		return err
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		s.log.Warn("store rename failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (s *fileStore) Close() error { return nil }
