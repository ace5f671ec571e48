package types

import "errors"

// Collection keys understood by every caller of the store. Each key maps to
// one serialized JSON array holding the whole collection.
const (
	KeyPosts    = "posts"
	KeyAccounts = "accounts"
	KeyMedia    = "media"
)

// CollectionKeys lists all collection keys for enumeration.
var CollectionKeys = []string{KeyPosts, KeyAccounts, KeyMedia}

// Store errors.
var ErrStoreClosed = errors.New("store is closed")

// Store is the persistence substrate for the content library: a key-value
// store where each value is one whole serialized collection. Absence of a
// key (ok=false from Load) is distinct from an explicit empty array and
// triggers first-run seeding in the library.
type Store interface {
	// Load returns the value stored under key. ok is false when the key
	// has never been written.
	Load(key string) (value []byte, ok bool, err error)

	// Save persists value under key, replacing any previous value.
	Save(key string, value []byte) error

	// Close releases the store. After Close, Load and Save return
	// ErrStoreClosed. Close is idempotent.
	Close() error
}
