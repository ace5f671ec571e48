package types

import "errors"

// Supported social platforms for connected accounts.
const (
	PlatformTwitter   = "twitter"
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformLinkedIn  = "linkedin"
)

// validPlatforms is the set of recognized platform values.
var validPlatforms = map[string]bool{
	PlatformTwitter:   true,
	PlatformFacebook:  true,
	PlatformInstagram: true,
	PlatformLinkedIn:  true,
}

// Platforms lists all supported platforms for enumeration and CLI help.
var Platforms = []string{
	PlatformTwitter,
	PlatformFacebook,
	PlatformInstagram,
	PlatformLinkedIn,
}

// ErrInvalidPlatform is returned when a platform value is not recognized.
var ErrInvalidPlatform = errors.New("invalid platform")

// ValidPlatform reports whether p is a supported platform.
func ValidPlatform(p string) bool {
	return validPlatforms[p]
}

// Account is a connected social identity. Accounts are only created and
// removed; there is no update operation. Posts reference accounts by display
// name, not by id, and deleting an account does not cascade to posts.
type Account struct {
	// ID is unique within the collection, assigned on creation.
	ID int `json:"id"`

	// Name is the display name posts reference in their Platforms field.
	Name string `json:"name"`

	// Platform is one of the Platform constants.
	Platform string `json:"platform"`

	// Username is the handle on the platform.
	Username string `json:"username"`

	// Connected is always true on creation.
	Connected bool `json:"connected"`
}
