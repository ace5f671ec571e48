package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/postdeck/postdeck/pkg/types"
)

// sessionURLScheme prefixes the per-run media references. They are handed
// out fresh on every upload and are not meaningful across restarts; the
// PersistentURL carries the durable payload.
const sessionURLScheme = "session://"

// Media returns the full media collection in storage order, which is
// newest-uploaded-first by construction.
func (l *Library) Media() ([]types.MediaItem, error) {
	return loadCollection[types.MediaItem](l, types.KeyMedia)
}

// UploadMedia ingests the given files into the media library. Files are
// processed one at a time, in order, to bound memory use; a single
// unreadable file aborts the whole batch and nothing is stored. Ids are
// assigned as base+index where base is one past the highest existing id.
// The new batch is prepended to the collection in its original order, and
// only the newly created items are returned.
func (l *Library) UploadMedia(paths []string) ([]types.MediaItem, error) {
	media, err := loadCollection[types.MediaItem](l, types.KeyMedia)
	if err != nil {
		return nil, err
	}
	base := nextID(mediaIDs(media))

	newItems := make([]types.MediaItem, 0, len(paths))
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		mediaType := types.MediaTypeVideo
		if strings.HasPrefix(sniffMIME(data), "image/") {
			mediaType = types.MediaTypeImage
		}

		newItems = append(newItems, types.MediaItem{
			ID:            base + i,
			Name:          filepath.Base(path),
			Type:          mediaType,
			URL:           sessionURLScheme + uuid.NewString(),
			PersistentURL: encodeDataURL(data),
			Size:          formatSize(len(data)),
			Date:          l.now().Format("2006-01-02"),
		})
	}

	updated := make([]types.MediaItem, 0, len(newItems)+len(media))
	updated = append(updated, newItems...)
	updated = append(updated, media...)
	if err := saveCollection(l, types.KeyMedia, updated); err != nil {
		return nil, err
	}
	return newItems, nil
}

// DeleteMedia removes the media item with the given id and persists the
// remainder. Removing an absent id is a no-op that still succeeds. Posts
// hold their own copies of attached payloads, so deleting library media
// never breaks a post.
func (l *Library) DeleteMedia(id int) error {
	media, err := loadCollection[types.MediaItem](l, types.KeyMedia)
	if err != nil {
		return err
	}

	remaining := make([]types.MediaItem, 0, len(media))
	for _, m := range media {
		if m.ID != id {
			remaining = append(remaining, m)
		}
	}
	return saveCollection(l, types.KeyMedia, remaining)
}

// formatSize renders a byte count as megabytes with one decimal place.
func formatSize(n int) string {
	return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
}

func mediaIDs(media []types.MediaItem) []int {
	ids := make([]int, len(media))
	for i, m := range media {
		ids[i] = m.ID
	}
	return ids
}
