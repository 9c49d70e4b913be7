package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsInline(t *testing.T) {
	if !IsInline("data:image/png;base64,AAAA") {
		t.Fatalf("data URI should be inline")
	}
	if IsInline("https://example.com/a.png") {
		t.Fatalf("URL should not be inline")
	}
	if IsInline("") {
		t.Fatalf("empty value should not be inline")
	}
}

func TestResolveImageUploadWins(t *testing.T) {
	if got := ResolveImage("data:image/png;base64,AAAA", "https://example.com/a.png"); !IsInline(got) {
		t.Fatalf("upload must take precedence, got %q", got)
	}
	if got := ResolveImage("", "https://example.com/a.png"); got != "https://example.com/a.png" {
		t.Fatalf("URL should be used without an upload, got %q", got)
	}
	if got := ResolveImage("", ""); got != "" {
		t.Fatalf("neither input should resolve empty, got %q", got)
	}
}

func TestEncodeImageFile(t *testing.T) {
	// Minimal PNG header is enough for content-type sniffing.
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(path, png, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := EncodeImageFile(path)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Fatalf("expected png data URI, got %q", got)
	}
	if !IsInline(got) {
		t.Fatalf("encoded value must read as inline")
	}
}

func TestEncodeImageFileMissing(t *testing.T) {
	if _, err := EncodeImageFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
