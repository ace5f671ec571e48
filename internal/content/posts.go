package content

import (
	"fmt"
	"time"

	"github.com/postdeck/postdeck/pkg/types"
)

// PostInput carries the caller-supplied fields for creating or updating a
// post. Media entries are either data URLs (stored as-is) or file paths
// (read and encoded before storing). Content validation is the caller's
// responsibility; the repository stores what it is given.
type PostInput struct {
	Content     string
	Platforms   []string
	Type        string
	ScheduledAt time.Time
	Media       []string
}

// ListPosts returns the posts whose type matches, preserving storage order.
// An absent or malformed collection yields an empty result, not an error.
func (l *Library) ListPosts(postType string) ([]types.Post, error) {
	posts, err := loadCollection[types.Post](l, types.KeyPosts)
	if err != nil {
		return nil, err
	}

	matched := make([]types.Post, 0, len(posts))
	for _, p := range posts {
		if p.Type == postType {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// AllPosts returns the full post collection in storage order.
func (l *Library) AllPosts() ([]types.Post, error) {
	return loadCollection[types.Post](l, types.KeyPosts)
}

// PostByID returns the post with the given id, or nil (with a nil error)
// when no such post exists.
func (l *Library) PostByID(id int) (*types.Post, error) {
	posts, err := loadCollection[types.Post](l, types.KeyPosts)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, nil
}

// CreatePost assigns a new id, shapes the record for its type, converts any
// raw media attachments to data URLs, appends the post to the collection,
// and persists it. The input is not mutated. A single failed media
// conversion aborts the whole operation.
func (l *Library) CreatePost(in PostInput) (*types.Post, error) {
	posts, err := loadCollection[types.Post](l, types.KeyPosts)
	if err != nil {
		return nil, err
	}

	mediaURLs, err := encodeMediaRefs(in.Media)
	if err != nil {
		return nil, fmt.Errorf("encode media: %w", err)
	}

	post := types.Post{
		ID:        nextID(postIDs(posts)),
		Content:   in.Content,
		Platforms: copyPlatforms(in.Platforms),
		Type:      in.Type,
		CreatedAt: l.now(),
	}
	l.shapeForType(&post, in.ScheduledAt)
	if len(mediaURLs) > 0 {
		post.MediaURLs = mediaURLs
	}

	posts = append(posts, post)
	if err := saveCollection(l, types.KeyPosts, posts); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost rebuilds the post with the given id from the input, preserving
// only its id and creation time. Returns ErrPostNotFound, leaving the
// collection untouched, when the id does not exist. New media replaces the
// stored attachments; when no media is supplied the existing attachments are
// kept.
func (l *Library) UpdatePost(id int, in PostInput) (*types.Post, error) {
	posts, err := loadCollection[types.Post](l, types.KeyPosts)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range posts {
		if posts[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, types.ErrPostNotFound
	}

	mediaURLs := posts[idx].MediaURLs
	if len(in.Media) > 0 {
		mediaURLs, err = encodeMediaRefs(in.Media)
		if err != nil {
			return nil, fmt.Errorf("encode media: %w", err)
		}
	}

	updated := types.Post{
		ID:        posts[idx].ID,
		Content:   in.Content,
		Platforms: copyPlatforms(in.Platforms),
		Type:      in.Type,
		CreatedAt: posts[idx].CreatedAt,
	}
	l.shapeForType(&updated, in.ScheduledAt)
	if len(mediaURLs) > 0 {
		updated.MediaURLs = mediaURLs
	}

	posts[idx] = updated
	if err := saveCollection(l, types.KeyPosts, posts); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePost removes the post with the given id and persists the remainder.
// Deleting an absent id is a no-op that still succeeds.
func (l *Library) DeletePost(id int) error {
	posts, err := loadCollection[types.Post](l, types.KeyPosts)
	if err != nil {
		return err
	}

	remaining := make([]types.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	return saveCollection(l, types.KeyPosts, remaining)
}

// shapeForType sets exactly the optional timestamp fields the post type
// mandates: the supplied schedule time for scheduled posts, the current time
// for published ones, neither for drafts.
func (l *Library) shapeForType(post *types.Post, scheduledAt time.Time) {
	switch post.Type {
	case types.PostTypeScheduled:
		at := scheduledAt
		post.Date = &at
	case types.PostTypePublish:
		at := l.now()
		post.PublishedAt = &at
	}
}

// copyPlatforms returns a non-nil copy so the stored record never aliases
// the caller's slice and always serializes as an array.
func copyPlatforms(platforms []string) []string {
	out := make([]string, len(platforms))
	copy(out, platforms)
	return out
}

func postIDs(posts []types.Post) []int {
	ids := make([]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}
