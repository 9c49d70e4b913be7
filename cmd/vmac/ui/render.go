package ui

import (
	"time"

	"vmac/internal/content"
)

// imageLabel renders an image reference for the terminal: URLs are
// shown as-is, inline-encoded uploads are summarized instead of
// dumping base64 into the view.
func imageLabel(image string) string {
	if content.IsInline(image) {
		return "[uploaded photo]"
	}
	return truncate(image, 60)
}

// truncate shortens s to at most max runes. Slicing by runes keeps
// multibyte text (Bangla captions, for one) valid at the cut point.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// postDate renders a gallery timestamp the way the site does.
func postDate(ms int64) string {
	return content.FormatDate(time.UnixMilli(ms))
}
