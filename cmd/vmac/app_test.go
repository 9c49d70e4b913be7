package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"vmac/cmd/vmac/ui"
	"vmac/internal/nav"
	"vmac/internal/store"
)

func testApp(t *testing.T) *App {
	t.Helper()
	s, err := store.Open(store.Config{Driver: "file", Path: t.TempDir()}, zap.NewNop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	app := NewApp(s, ui.DefaultStyles(), zap.NewNop())
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runTick executes a navigation command and returns the transition
// message it produces once the delay has elapsed.
func runTick(t *testing.T, cmd tea.Cmd) transitionMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a scheduled transition")
	}
	raw := cmd()
	msg, ok := raw.(transitionMsg)
	if !ok {
		t.Fatalf("expected transitionMsg, got %T", raw)
	}
	return msg
}

func TestNavigationSwapsAfterDelay(t *testing.T) {
	app := testApp(t)

	_, cmd := app.Update(key("g"))
	if !app.navigator.Transitioning() {
		t.Fatal("expected a pending transition")
	}
	if !strings.Contains(app.View(), "Loading V-MAC...") {
		t.Error("expected the loading overlay while transitioning")
	}

	app.Update(runTick(t, cmd))
	if got := app.navigator.Current(); got != nav.ViewGalleryAll {
		t.Fatalf("expected gallery view, got %s", got)
	}
	if !strings.Contains(app.View(), "Full Gallery") {
		t.Error("expected gallery page after the swap")
	}
}

func TestRapidNavigationKeepsLatestTarget(t *testing.T) {
	app := testApp(t)

	_, first := app.Update(key("g"))
	_, second := app.Update(key("c"))

	firstMsg := runTick(t, first)
	secondMsg := runTick(t, second)

	// The stale ticket lands first and must be ignored.
	app.Update(firstMsg)
	if got := app.navigator.Current(); got != nav.ViewHome {
		t.Fatalf("stale transition must not swap, got %s", got)
	}
	app.Update(secondMsg)
	if got := app.navigator.Current(); got != nav.ViewCommitteeAll {
		t.Fatalf("expected committee view, got %s", got)
	}
}

func TestNavigateToCurrentViewIsNoOp(t *testing.T) {
	app := testApp(t)

	_, cmd := app.Update(key("h"))
	if cmd != nil {
		t.Error("navigating home while home should schedule nothing")
	}
	if app.navigator.Transitioning() {
		t.Error("no transition expected")
	}
}

func TestAdminViewMountsLocked(t *testing.T) {
	app := testApp(t)

	// Unlock once, leave, and come back: the gate must be up again.
	_, cmd := app.Update(key("a"))
	app.Update(runTick(t, cmd))
	if err := app.session.Login("Chayon@1810695017"); err != nil {
		t.Fatalf("login: %v", err)
	}

	_, cmd = app.Update(key("h"))
	app.Update(runTick(t, cmd))
	_, cmd = app.Update(key("a"))
	app.Update(runTick(t, cmd))

	if app.session.Unlocked() {
		t.Fatal("admin view must mount locked")
	}
	if !strings.Contains(app.View(), "Admin Access") {
		t.Error("expected the password gate")
	}
}

func TestLockedAdminGateEscapesHome(t *testing.T) {
	app := testApp(t)

	_, cmd := app.Update(key("a"))
	app.Update(runTick(t, cmd))
	if got := app.navigator.Current(); got != nav.ViewAdmin {
		t.Fatalf("expected admin view, got %s", got)
	}

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc at the locked gate must produce a command")
	}
	_, cmd = app.Update(cmd())
	app.Update(runTick(t, cmd))

	if got := app.navigator.Current(); got != nav.ViewHome {
		t.Fatalf("esc must lead back home, got %s", got)
	}
}

func TestContentChangeRefreshesPages(t *testing.T) {
	app := testApp(t)

	if _, err := app.site.Gallery.AddPost("https://example.org/p.jpg", "Winter camp"); err != nil {
		t.Fatalf("add post: %v", err)
	}
	app.Update(ui.ContentChangedMsg{})

	_, cmd := app.Update(key("g"))
	app.Update(runTick(t, cmd))
	if !strings.Contains(app.View(), "Winter camp") {
		t.Error("expected new post on the gallery page")
	}
}

func TestQuitDisabledWhileFormCaptures(t *testing.T) {
	app := testApp(t)

	// Open the contact form, then "q" must be typed, not quit.
	app.Update(key("m"))
	_, cmd := app.Update(key("q"))
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatal("q inside a form must not quit")
		}
	}
}
