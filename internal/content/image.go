package content

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// inlinePrefix marks an image value embedded as encoded binary rather
// than referenced by URL. The UI treats both forms identically.
const inlinePrefix = "data:"

// IsInline reports whether the image value is an inline-encoded data
// URI as opposed to an external URL.
func IsInline(image string) bool {
	return len(image) >= len(inlinePrefix) && image[:len(inlinePrefix)] == inlinePrefix
}

// ResolveImage applies the upload-wins policy used by every add form:
// an inline-encoded upload takes precedence over any URL typed in the
// adjacent field. The result may be empty, which the add operations
// reject per their required-field rules.
func ResolveImage(uploaded, url string) string {
	if uploaded != "" {
		return uploaded
	}
	return url
}

// EncodeImageFile reads a local image file and returns it as an inline
// data URI, the terminal stand-in for the browser file picker.
func EncodeImageFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	mime := http.DetectContentType(raw)
	return inlinePrefix + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
