package content

import (
	"sort"
	"time"

	"vmac/internal/store"
)

// Gallery is the photo-post collection.
type Gallery struct {
	store store.Store
	now   func() time.Time
	items []GalleryItem
}

// LoadGallery hydrates the collection from the store, seeding defaults
// when the slot is empty or unparsable.
func LoadGallery(s store.Store) *Gallery {
	g := &Gallery{store: s, now: time.Now}
	items, ok := store.LoadJSON[[]GalleryItem](s, store.KeyGallery)
	if !ok {
		items = DefaultGallery(g.now())
	}
	g.items = items
	return g
}

// All returns the posts in array order.
func (g *Gallery) All() []GalleryItem {
	out := make([]GalleryItem, len(g.items))
	copy(out, g.items)
	return out
}

// Sorted returns the posts newest first.
func (g *Gallery) Sorted() []GalleryItem {
	out := g.All()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out
}

// AddPost prepends a post stamped at the current time and flushes.
// Image and caption are both required.
func (g *Gallery) AddPost(image, caption string) (GalleryItem, error) {
	var missing []string
	if image == "" {
		missing = append(missing, "image")
	}
	if caption == "" {
		missing = append(missing, "caption")
	}
	if len(missing) > 0 {
		return GalleryItem{}, &ValidationError{Message: MsgGalleryFields, Missing: missing}
	}

	now := g.now()
	item := GalleryItem{
		ID:        newID(now),
		Image:     image,
		Caption:   caption,
		Timestamp: now.UnixMilli(),
	}
	g.items = append([]GalleryItem{item}, g.items...)
	g.flush()
	return item, nil
}

// Remove deletes the post with the given id. Unknown ids are a no-op.
func (g *Gallery) Remove(id string) {
	for i, item := range g.items {
		if item.ID == id {
			g.items = append(g.items[:i], g.items[i+1:]...)
			g.flush()
			return
		}
	}
}

func (g *Gallery) flush() {
	_ = store.SaveJSON(g.store, store.KeyGallery, g.items)
}
