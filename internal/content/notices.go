package content

import (
	"strconv"
	"time"

	"vmac/internal/store"
)

// newID derives an entity id from the current time. Two creations
// within the same millisecond would collide; accepted, not guarded.
func newID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Notices is the notice-board collection.
type Notices struct {
	store store.Store
	now   func() time.Time
	items []Notice
}

// LoadNotices hydrates the collection from the store, seeding defaults
// when the slot is empty or unparsable.
func LoadNotices(s store.Store) *Notices {
	n := &Notices{store: s, now: time.Now}
	items, ok := store.LoadJSON[[]Notice](s, store.KeyNotices)
	if !ok {
		items = DefaultNotices()
	}
	n.items = items
	return n
}

// All returns the notices in display order.
func (n *Notices) All() []Notice {
	out := make([]Notice, len(n.items))
	copy(out, n.items)
	return out
}

// Add appends a notice and flushes. Empty text is ignored.
func (n *Notices) Add(text string) (Notice, bool) {
	if text == "" {
		return Notice{}, false
	}
	notice := Notice{ID: newID(n.now()), Text: text}
	n.items = append(n.items, notice)
	n.flush()
	return notice, true
}

// Remove deletes the notice with the given id. Unknown ids are a
// no-op and do not rewrite the stored bytes.
func (n *Notices) Remove(id string) {
	for i, item := range n.items {
		if item.ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			n.flush()
			return
		}
	}
}

func (n *Notices) flush() {
	// Best-effort; the store logs failures.
	_ = store.SaveJSON(n.store, store.KeyNotices, n.items)
}
