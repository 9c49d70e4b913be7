package content

import "vmac/internal/store"

// About is the singleton about-section record.
type About struct {
	store store.Store
	data  AboutData
}

// LoadAbout hydrates the record from the store, seeding the default
// when the slot is empty or unparsable.
func LoadAbout(s store.Store) *About {
	a := &About{store: s}
	data, ok := store.LoadJSON[AboutData](s, store.KeyAbout)
	if !ok {
		data = DefaultAbout()
	}
	a.data = data
	return a
}

// Get returns the current about section.
func (a *About) Get() AboutData { return a.data }

// Replace overwrites the whole record and flushes.
func (a *About) Replace(data AboutData) {
	a.data = data
	_ = store.SaveJSON(a.store, store.KeyAbout, a.data)
}
