package nav

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNavigateToCurrentIsNoOp(t *testing.T) {
	n := New()
	if _, ok := n.Start(ViewHome); ok {
		t.Fatalf("navigating to the current view must not start a transition")
	}
	if n.Transitioning() {
		t.Fatalf("navigator should stay idle")
	}
}

func TestTransitionSwapsAfterCompletion(t *testing.T) {
	n := New()

	ticket, ok := n.Start(ViewGalleryAll)
	if !ok {
		t.Fatalf("expected a transition ticket")
	}
	if ticket.Delay != TransitionDelay {
		t.Fatalf("ticket delay = %v, want %v", ticket.Delay, TransitionDelay)
	}
	if !n.Transitioning() {
		t.Fatalf("navigator should report transitioning")
	}
	if n.Current() != ViewHome {
		t.Fatalf("previous view must stay current until the delay elapses")
	}

	if !n.Complete(ticket) {
		t.Fatalf("completion of the newest ticket must swap")
	}
	if n.Current() != ViewGalleryAll || n.Transitioning() {
		t.Fatalf("expected GALLERY_ALL and idle, got %s transitioning=%v", n.Current(), n.Transitioning())
	}
}

func TestRapidNavigationSupersedes(t *testing.T) {
	n := New()

	first, _ := n.Start(ViewGalleryAll)
	second, ok := n.Start(ViewAdmin)
	if !ok {
		t.Fatalf("mid-transition navigation must produce a new ticket")
	}

	if n.Complete(first) {
		t.Fatalf("superseded ticket must be ignored")
	}
	if n.Current() != ViewHome {
		t.Fatalf("stale completion must not swap, current = %s", n.Current())
	}

	if !n.Complete(second) {
		t.Fatalf("newest ticket must win")
	}
	if n.Current() != ViewAdmin {
		t.Fatalf("expected ADMIN, got %s", n.Current())
	}
}

func TestSupersedeBackToCurrent(t *testing.T) {
	// HOME -> GALLERY_ALL, then back to HOME mid-flight: the newest
	// intent wins and the navigator settles on HOME.
	n := New()
	stale, _ := n.Start(ViewGalleryAll)
	back, ok := n.Start(ViewHome)
	if !ok {
		t.Fatalf("returning to the origin mid-transition must supersede")
	}

	n.Complete(stale)
	if !n.Complete(back) {
		t.Fatalf("newest ticket must complete")
	}
	if n.Current() != ViewHome || n.Transitioning() {
		t.Fatalf("expected HOME and idle, got %s transitioning=%v", n.Current(), n.Transitioning())
	}
}

func TestCompletedTicketCannotReplay(t *testing.T) {
	n := New()
	ticket, _ := n.Start(ViewAdmin)
	if !n.Complete(ticket) {
		t.Fatalf("first completion must swap")
	}
	if n.Complete(ticket) {
		t.Fatalf("a completed ticket must not replay")
	}
}
