package content

// ValidationError is a refused admin-form submission. Message is the
// user-facing text shown in the panel; Missing names the fields that
// were required but absent.
type ValidationError struct {
	Message string
	Missing []string
}

func (e *ValidationError) Error() string { return e.Message }

// Form messages, verbatim from the admin panel.
const (
	MsgArticleFields   = "Please fill all fields and upload an image."
	MsgGalleryFields   = "Please provide an image (upload or URL) and a caption."
	MsgCommitteeFields = "Please provide a name and an image (upload or URL)."
)
