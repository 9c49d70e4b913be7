package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type payload struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func openTestStores(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	file, err := Open(Config{Driver: "file", Path: filepath.Join(dir, "data")}, nil)
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	sqlite, err := Open(Config{Driver: "sqlite", Path: filepath.Join(dir, "vmac.db")}, nil)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() {
		_ = file.Close()
		_ = sqlite.Close()
	})
	return map[string]Store{"file": file, "sqlite": sqlite}
}

func TestRoundTrip(t *testing.T) {
	for name, s := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			want := []payload{{ID: "1", Text: "hello"}, {ID: "2", Text: "world"}}
			if err := SaveJSON(s, KeyNotices, want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, ok := LoadJSON[[]payload](s, KeyNotices)
			if !ok {
				t.Fatalf("expected value at %s", KeyNotices)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadMissingKey(t *testing.T) {
	for name, s := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok := s.Load("vmac_nothing_here"); ok {
				t.Fatalf("expected missing key to report absent")
			}
			if _, ok := LoadJSON[[]payload](s, "vmac_nothing_here"); ok {
				t.Fatalf("expected missing key to report absent via LoadJSON")
			}
		})
	}
}

func TestLoadCorruptValue(t *testing.T) {
	for name, s := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Save(KeyGallery, []byte("{not json")); err != nil {
				t.Fatalf("save raw: %v", err)
			}
			if _, ok := LoadJSON[[]payload](s, KeyGallery); ok {
				t.Fatalf("expected corrupt value to report absent")
			}
		})
	}
}

func TestOverwrite(t *testing.T) {
	for name, s := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Save(KeyPassword, []byte("first")); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := s.Save(KeyPassword, []byte("second")); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, ok := s.Load(KeyPassword)
			if !ok || string(got) != "second" {
				t.Fatalf("expected last write to win, got %q ok=%v", got, ok)
			}
		})
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := Open(Config{Driver: "file", Path: dir}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Save(KeyAbout, []byte(`{"image":"x","text":"y"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(Config{Driver: "redis", Path: t.TempDir()}, nil); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
