package types

import (
	"errors"
	"time"
)

// Post lifecycle types. All three are mutually reachable via update; there is
// no enforced one-way transition between them.
const (
	PostTypeDraft     = "draft"
	PostTypeScheduled = "scheduled"
	PostTypePublish   = "publish"
)

// validPostTypes is the set of recognized post type values.
var validPostTypes = map[string]bool{
	PostTypeDraft:     true,
	PostTypeScheduled: true,
	PostTypePublish:   true,
}

// PostTypes lists all post types for enumeration and CLI help.
var PostTypes = []string{PostTypeDraft, PostTypeScheduled, PostTypePublish}

// Post operation errors.
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrInvalidPostType = errors.New("invalid post type")
	ErrContentEmpty    = errors.New("content must not be empty")
)

// ValidPostType reports whether t is a recognized post type.
func ValidPostType(t string) bool {
	return validPostTypes[t]
}

// Post represents one piece of content in one of three lifecycle states.
// A post carries exactly the optional fields its type mandates: Date only
// when scheduled, PublishedAt only when published, MediaURLs only when at
// least one media item is attached. The JSON field names are the persisted
// wire format and must stay stable.
type Post struct {
	// ID is unique within the collection, assigned on creation.
	ID int `json:"id"`

	// Content is the text body.
	Content string `json:"content"`

	// Platforms holds the display names (not ids) of the target accounts.
	Platforms []string `json:"platforms"`

	// Type is one of the PostType constants.
	Type string `json:"type"`

	// CreatedAt is set once at creation and never mutated.
	CreatedAt time.Time `json:"createdAt"`

	// Date is the intended future publish time; present only when
	// Type is "scheduled".
	Date *time.Time `json:"date,omitempty"`

	// PublishedAt is the time the post was marked published; present only
	// when Type is "publish".
	PublishedAt *time.Time `json:"publishedAt,omitempty"`

	// MediaURLs holds self-contained data URLs, not references into the
	// media library.
	MediaURLs []string `json:"mediaUrls,omitempty"`
}

// IsDraft reports whether the post is a draft.
func (p *Post) IsDraft() bool { return p.Type == PostTypeDraft }

// IsScheduled reports whether the post is scheduled.
func (p *Post) IsScheduled() bool { return p.Type == PostTypeScheduled }

// IsPublished reports whether the post is published.
func (p *Post) IsPublished() bool { return p.Type == PostTypePublish }
