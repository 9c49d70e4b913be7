package content

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vmac/internal/store"
)

// memStore records writes so tests can assert what got persisted and
// how often.
type memStore struct {
	data  map[string][]byte
	saves int
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Load(key string) ([]byte, bool) {
	raw, ok := m.data[key]
	return raw, ok
}

func (m *memStore) Save(key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	m.saves++
	return nil
}

func (m *memStore) Close() error { return nil }

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestSeedDefaultsOnEmptyStore(t *testing.T) {
	s := newMemStore()
	site := LoadSite(s)

	if diff := cmp.Diff(DefaultNotices(), site.Notices.All()); diff != "" {
		t.Fatalf("notices seed mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultAbout(), site.About.Get()); diff != "" {
		t.Fatalf("about seed mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultCommittee(), site.Committee.All()); diff != "" {
		t.Fatalf("committee seed mismatch (-want +got):\n%s", diff)
	}
	if len(site.Gallery.All()) != 2 || len(site.Articles.All()) != 1 {
		t.Fatalf("expected seeded gallery and articles")
	}
}

func TestCorruptSlotOnlyAffectsItsCollection(t *testing.T) {
	s := newMemStore()
	_ = s.Save(store.KeyNotices, []byte("{definitely not json"))
	_ = s.Save(store.KeyCommittee, []byte(`[{"id":"x","name":"Kept","image":"i","designation":"d","position":5}]`))

	site := LoadSite(s)

	// Corrupt slot falls back to its seed.
	if diff := cmp.Diff(DefaultNotices(), site.Notices.All()); diff != "" {
		t.Fatalf("corrupt notices should seed (-want +got):\n%s", diff)
	}
	// The healthy slot is untouched by the neighbour's corruption.
	members := site.Committee.All()
	if len(members) != 1 || members[0].Name != "Kept" {
		t.Fatalf("expected persisted committee to survive, got %+v", members)
	}
}

func TestNoticesAddRemove(t *testing.T) {
	s := newMemStore()
	n := LoadNotices(s)
	n.now = fixedClock(1700000000000)

	added, ok := n.Add("Bake sale on Friday")
	require.True(t, ok)
	assert.Equal(t, "1700000000000", added.ID)
	assert.Len(t, n.All(), 3)

	// Persisted immediately.
	persisted, ok := store.LoadJSON[[]Notice](s, store.KeyNotices)
	require.True(t, ok)
	assert.Equal(t, n.All(), persisted)

	n.Remove(added.ID)
	assert.Len(t, n.All(), 2)

	_, ok = n.Add("")
	assert.False(t, ok, "empty text must not add")
	assert.Len(t, n.All(), 2)
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	s := newMemStore()
	site := LoadSite(s)
	before := s.saves

	site.Notices.Remove("nope")
	site.Gallery.Remove("nope")
	site.Committee.Remove("nope")
	site.Articles.Remove("nope")

	if s.saves != before {
		t.Fatalf("removing unknown ids must not rewrite the store (saves %d -> %d)", before, s.saves)
	}
	if len(site.Notices.All()) != 2 || len(site.Gallery.All()) != 2 {
		t.Fatalf("collections changed by unknown-id remove")
	}
}

func TestGalleryAddPost(t *testing.T) {
	s := newMemStore()
	g := LoadGallery(s)
	g.now = fixedClock(1700000000000)

	_, err := g.AddPost("", "a caption")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgGalleryFields, verr.Message)
	assert.Equal(t, []string{"image"}, verr.Missing)

	item, err := g.AddPost("https://example.com/p.jpg", "Cleanup drive")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), item.Timestamp)
	// Prepended.
	assert.Equal(t, item.ID, g.All()[0].ID)
}

func TestGalleryOrdering(t *testing.T) {
	s := newMemStore()
	g := LoadGallery(s)
	g.items = []GalleryItem{
		{ID: "a", Timestamp: 100},
		{ID: "b", Timestamp: 300},
		{ID: "c", Timestamp: 200},
	}

	got := g.Sorted()
	want := []int64{300, 200, 100}
	for i, ts := range want {
		if got[i].Timestamp != ts {
			t.Fatalf("position %d: want timestamp %d, got %d", i, ts, got[i].Timestamp)
		}
	}
}

func TestCommitteeSortAscendingStable(t *testing.T) {
	s := newMemStore()
	c := LoadCommittee(s)
	c.members = []CommitteeMember{
		{ID: "a", Name: "Third", Position: 3},
		{ID: "b", Name: "First", Position: 1},
		{ID: "c", Name: "Second", Position: 2},
		{ID: "d", Name: "TieOne", Position: 2},
	}

	got := c.Sorted()
	names := []string{"First", "Second", "TieOne", "Third"}
	for i, want := range names {
		if got[i].Name != want {
			t.Fatalf("position %d: want %s, got %s", i, want, got[i].Name)
		}
	}
}

func TestCommitteeAddMember(t *testing.T) {
	s := newMemStore()
	c := LoadCommittee(s)
	c.now = fixedClock(1700000000001)

	_, err := c.AddMember("", "", "President", "1")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgCommitteeFields, verr.Message)
	assert.Equal(t, []string{"name", "image"}, verr.Missing)

	m, err := c.AddMember("Rahim Uddin", "https://example.com/r.jpg", "", "")
	require.NoError(t, err)
	assert.Equal(t, unpositioned, m.Position, "missing position sorts last")
	assert.Equal(t, m.ID, c.All()[len(c.All())-1].ID, "appended, not prepended")
}

func TestParsePosition(t *testing.T) {
	cases := map[string]int{
		"1":   1,
		" 7 ": 7,
		"":    99,
		"abc": 99,
		"0":   99,
	}
	for raw, want := range cases {
		if got := ParsePosition(raw); got != want {
			t.Fatalf("ParsePosition(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestArticlesPublish(t *testing.T) {
	s := newMemStore()
	a := LoadArticles(s)
	a.now = fixedClock(1700000000002)

	cases := []struct {
		name                          string
		title, author, content, image string
		missing                       []string
	}{
		{"no title", "", "A", "body", "img", []string{"title"}},
		{"no author", "T", "", "body", "img", []string{"author"}},
		{"no image", "T", "A", "body", "", []string{"image"}},
		{"no content", "T", "A", "", "img", []string{"content"}},
		{"nothing", "", "", "", "", []string{"title", "author", "image", "content"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := len(a.All())
			_, err := a.Publish(tc.title, tc.author, tc.content, tc.image)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, MsgArticleFields, verr.Message)
			assert.Equal(t, tc.missing, verr.Missing)
			assert.Len(t, a.All(), before, "refused publish must not mutate")
		})
	}

	art, err := a.Publish("Adoption Day", "Admin", "Full story...", "https://example.com/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "1700000000002", art.ID)
	assert.Equal(t, int64(1700000000002), art.Timestamp)
	assert.Equal(t, FormatDate(time.UnixMilli(1700000000002)), art.Date)
	assert.Equal(t, art.ID, a.All()[0].ID, "prepended")

	persisted, ok := store.LoadJSON[[]Article](s, store.KeyArticles)
	require.True(t, ok)
	assert.Equal(t, a.All(), persisted, "persisted immediately")
}

func TestArticlesOrdering(t *testing.T) {
	s := newMemStore()
	a := LoadArticles(s)
	a.items = []Article{
		{ID: "a", Timestamp: 100},
		{ID: "b", Timestamp: 300},
		{ID: "c", Timestamp: 200},
	}
	got := a.Sorted()
	if got[0].Timestamp != 300 || got[1].Timestamp != 200 || got[2].Timestamp != 100 {
		t.Fatalf("expected descending feed, got %+v", got)
	}
}

func TestAboutReplace(t *testing.T) {
	s := newMemStore()
	ab := LoadAbout(s)

	next := AboutData{Image: "data:image/png;base64,AAAA", Text: "Updated"}
	ab.Replace(next)
	assert.Equal(t, next, ab.Get())

	persisted, ok := store.LoadJSON[AboutData](s, store.KeyAbout)
	require.True(t, ok)
	assert.Equal(t, next, persisted)
}
