package contact

import "vmac/internal/content"

// SiteURL is what gets shared; without a router there is no deep link
// to a single article, so the site link plus the article title is the
// shareable unit.
const SiteURL = "https://vmac-gb.example.org/"

// Sharer is a system share sheet. It may be declined by the user,
// which is a no-op, not an error.
type Sharer interface {
	Share(title, text, url string) error
}

// ShareText renders the share-sheet text for an article.
func ShareText(a content.Article) (title, text string) {
	title = "V-MAC Article: " + a.Title
	text = "Read this article on the V-MAC website: " + a.Title + " by " + a.Author
	return title, text
}

// ShareArticle prefers the system share sheet and degrades to copying
// the site link. copied reports whether the clipboard path ran; a
// declined system share returns (false, nil).
func ShareArticle(s Sharer, copyToClipboard func(string) error, a content.Article) (copied bool, err error) {
	title, text := ShareText(a)
	if s != nil {
		// Declines surface as errors from share sheets; treat them
		// as a no-op either way.
		_ = s.Share(title, text, SiteURL)
		return false, nil
	}
	if copyToClipboard == nil {
		return false, nil
	}
	if err := copyToClipboard(SiteURL); err != nil {
		return false, err
	}
	return true, nil
}
