// Package content implements the postdeck content library: post, account,
// and media repositories over a key-value storage substrate, plus derived
// statistics and calendar bucketing.
//
// Every operation is a whole-collection read-modify-write against the store.
// There is no transactional isolation: overlapping operations race and the
// later write wins, which is acceptable under the single-user model.
package content

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/postdeck/postdeck/pkg/types"
)

// Library owns the three persisted collections. The UI layer (CLI) calls it
// directly; nothing else mutates stored data.
type Library struct {
	store types.Store
	log   *slog.Logger

	// now is the clock used for createdAt/publishedAt/upload dates.
	// Overridable in tests.
	now func() time.Time
}

// New builds a Library over store. When seed is true, any collection key
// that has never been written is seeded with the built-in sample dataset so
// a first run is never empty; an explicit empty array is respected.
func New(store types.Store, logger *slog.Logger, seed bool) (*Library, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Library{
		store: store,
		log:   logger,
		now:   time.Now,
	}
	if seed {
		if err := l.seedAbsent(); err != nil {
			return nil, fmt.Errorf("seed collections: %w", err)
		}
	}
	return l, nil
}

// loadCollection reads and decodes the collection stored under key. An
// absent key yields an empty collection. A malformed value (anything that is
// not a JSON array of T) is logged and substituted with an empty collection
// rather than surfaced as an error. Substrate failures are returned.
func loadCollection[T any](l *Library, key string) ([]T, error) {
	data, ok, err := l.store.Load(key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		l.log.Warn("malformed collection, treating as empty", "key", key, "error", err)
		return nil, nil
	}
	return items, nil
}

// saveCollection serializes the whole collection and persists it under key.
// A nil slice is written as an explicit empty array, never as null.
func saveCollection[T any](l *Library, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := l.store.Save(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// nextID returns one more than the maximum id present, or 1 for an empty
// collection. An id freed by deleting the highest-numbered record can be
// handed out again.
func nextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
