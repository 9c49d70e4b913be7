package content

import "vmac/internal/store"

// Site bundles the five collections behind a single handle for the
// application root to own and inject into the views.
type Site struct {
	Notices   *Notices
	About     *About
	Gallery   *Gallery
	Committee *Committee
	Articles  *Articles
}

// LoadSite hydrates every collection. Each collection reads its own
// key, so a corrupt slot only affects that one collection.
func LoadSite(s store.Store) *Site {
	return &Site{
		Notices:   LoadNotices(s),
		About:     LoadAbout(s),
		Gallery:   LoadGallery(s),
		Committee: LoadCommittee(s),
		Articles:  LoadArticles(s),
	}
}
