// Package content holds the site's entity collections: notices, the
// about section, the photo gallery, the committee roster and the
// articles feed. Each collection is a repository that hydrates from the
// store at startup (falling back to seed defaults) and flushes after
// every mutation.
package content

// Notice is one rotating notice-board entry. Display order is array
// order.
type Notice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// AboutData is the singleton about section.
type AboutData struct {
	Image string `json:"image"`
	Text  string `json:"text"`
}

// GalleryItem is one photo post. Display order is descending Timestamp.
type GalleryItem struct {
	ID        string `json:"id"`
	Image     string `json:"image"`
	Caption   string `json:"caption"`
	Timestamp int64  `json:"timestamp"`
}

// CommitteeMember is one roster entry. Display order is ascending
// Position; duplicate positions keep array order.
type CommitteeMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Designation string `json:"designation"`
	Position    int    `json:"position"`
}

// Article is one published article. Date is a pre-formatted display
// string; Timestamp drives the descending feed order.
type Article struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
}
