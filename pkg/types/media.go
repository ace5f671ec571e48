package types

// Media item types, derived from the MIME prefix of the uploaded file.
// Anything that does not sniff as an image is stored as video.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// MediaItem is an uploaded file reference in the media library.
type MediaItem struct {
	// ID is unique within the collection; batch uploads assign base+index.
	ID int `json:"id"`

	// Name is the original file name.
	Name string `json:"name"`

	// Type is one of the MediaType constants.
	Type string `json:"type"`

	// URL is a session-scoped reference valid only for the current run.
	URL string `json:"url"`

	// PersistentURL is a self-contained data URL that survives restarts.
	PersistentURL string `json:"persistentUrl"`

	// Size is a human-readable size string with one decimal place, in MB.
	Size string `json:"size"`

	// Date is the calendar day of upload, ISO date only (YYYY-MM-DD).
	Date string `json:"date"`
}
