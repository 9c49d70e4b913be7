// Package nav is the view-navigation state machine: four flat named
// views, a single "current" (no history stack), and a fixed-delay
// transition during which the outgoing view stays mounted behind a
// loading overlay.
package nav

import "time"

// View is a named top-level view.
type View string

const (
	ViewHome         View = "HOME"
	ViewGalleryAll   View = "GALLERY_ALL"
	ViewCommitteeAll View = "COMMITTEE_ALL"
	ViewAdmin        View = "ADMIN"
)

// TransitionDelay is the fixed, non-cancelable delay between a
// navigation request and the view swap.
const TransitionDelay = 600 * time.Millisecond

// Transition is the ticket for a pending view swap. The caller
// schedules it (a timer message in the UI) and hands it back to
// Complete once the delay has elapsed.
type Transition struct {
	Target View
	Delay  time.Duration

	seq uint64
}

// Navigator tracks the current view and at most one pending
// transition. Navigation requests issued mid-transition supersede the
// pending one: each Start bumps a sequence number, and Complete
// ignores tickets that are no longer the newest.
type Navigator struct {
	current       View
	transitioning bool
	seq           uint64
}

// New returns a navigator showing the home view.
func New() *Navigator {
	return &Navigator{current: ViewHome}
}

// Current returns the mounted view.
func (n *Navigator) Current() View { return n.current }

// Transitioning reports whether a swap is pending.
func (n *Navigator) Transitioning() bool { return n.transitioning }

// Start requests navigation to target. Navigating to the current view
// while idle is a no-op (ok=false). Otherwise it returns the ticket
// for the pending swap; any previously pending ticket is superseded.
func (n *Navigator) Start(target View) (Transition, bool) {
	if target == n.current && !n.transitioning {
		return Transition{}, false
	}
	n.transitioning = true
	n.seq++
	return Transition{Target: target, Delay: TransitionDelay, seq: n.seq}, true
}

// Complete applies an elapsed transition. Stale tickets, superseded by
// a newer Start, are ignored so the newest one still decides the
// outcome. Reports whether the view actually swapped.
func (n *Navigator) Complete(t Transition) bool {
	if !n.transitioning || t.seq != n.seq {
		return false
	}
	n.current = t.Target
	n.transitioning = false
	return true
}
