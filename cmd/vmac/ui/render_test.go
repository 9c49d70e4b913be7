package ui

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateKeepsRunesIntact(t *testing.T) {
	bangla := "ভেটেরিনারি মেডিসিন অ্যান্ড অ্যানিমেল ওয়েলফেয়ার ক্লাব"

	got := truncate(bangla, 20)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got)
	}
	if n := utf8.RuneCountInString(got); n > 20 {
		t.Fatalf("expected at most 20 runes, got %d", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}

	if got := truncate("short", 60); got != "short" {
		t.Errorf("short strings must pass through, got %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc" {
		t.Errorf("tiny budgets skip the ellipsis, got %q", got)
	}
}
