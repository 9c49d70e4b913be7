package content

import (
	"sort"
	"time"

	"vmac/internal/store"
)

// Articles is the published-articles feed.
type Articles struct {
	store store.Store
	now   func() time.Time
	items []Article
}

// LoadArticles hydrates the feed from the store, seeding defaults when
// the slot is empty or unparsable.
func LoadArticles(s store.Store) *Articles {
	a := &Articles{store: s, now: time.Now}
	items, ok := store.LoadJSON[[]Article](s, store.KeyArticles)
	if !ok {
		items = DefaultArticles(a.now())
	}
	a.items = items
	return a
}

// All returns the articles in array order.
func (a *Articles) All() []Article {
	out := make([]Article, len(a.items))
	copy(out, a.items)
	return out
}

// Sorted returns the articles newest first.
func (a *Articles) Sorted() []Article {
	out := a.All()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out
}

// Publish prepends an article stamped with the current time and a
// display date, then flushes. Title, author, content and image are all
// required.
func (a *Articles) Publish(title, author, content, image string) (Article, error) {
	var missing []string
	if title == "" {
		missing = append(missing, "title")
	}
	if author == "" {
		missing = append(missing, "author")
	}
	if image == "" {
		missing = append(missing, "image")
	}
	if content == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return Article{}, &ValidationError{Message: MsgArticleFields, Missing: missing}
	}

	now := a.now()
	art := Article{
		ID:        newID(now),
		Title:     title,
		Author:    author,
		Content:   content,
		Image:     image,
		Date:      FormatDate(now),
		Timestamp: now.UnixMilli(),
	}
	a.items = append([]Article{art}, a.items...)
	a.flush()
	return art, nil
}

// Remove deletes the article with the given id. Unknown ids are a
// no-op.
func (a *Articles) Remove(id string) {
	for i, art := range a.items {
		if art.ID == id {
			a.items = append(a.items[:i], a.items[i+1:]...)
			a.flush()
			return
		}
	}
}

func (a *Articles) flush() {
	_ = store.SaveJSON(a.store, store.KeyArticles, a.items)
}
