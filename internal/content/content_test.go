package content

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postdeck/postdeck/internal/memstore"
	"github.com/postdeck/postdeck/pkg/types"
)

// testClock is the fixed time used by libraries under test.
var testClock = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newEmptyLibrary returns a Library over an in-memory store whose three
// collections are explicitly empty, plus the store for direct inspection.
func newEmptyLibrary(t *testing.T) (*Library, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	for _, key := range types.CollectionKeys {
		store.Set(key, "[]")
	}
	l, err := New(store, discardLogger(), true)
	require.NoError(t, err)
	l.now = func() time.Time { return testClock }
	return l, store
}

func TestMalformedCollectionTreatedAsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not JSON at all", "{{{"},
		{"JSON but not an array", `{"id":1}`},
		{"array of the wrong shape", `[["nested"]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, store := newEmptyLibrary(t)
			store.Set(types.KeyPosts, tt.value)

			posts, err := l.AllPosts()
			require.NoError(t, err, "malformed data is papered over, not an error")
			assert.Empty(t, posts)
		})
	}
}

func TestSubstrateFailuresPropagate(t *testing.T) {
	l, store := newEmptyLibrary(t)
	substrate := errors.New("disk on fire")

	store.LoadErr = substrate
	_, err := l.AllPosts()
	assert.ErrorIs(t, err, substrate)

	store.LoadErr = nil
	store.SaveErr = substrate
	_, err = l.CreatePost(PostInput{Content: "x", Type: types.PostTypeDraft})
	assert.ErrorIs(t, err, substrate)
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, nextID(nil))
	assert.Equal(t, 4, nextID([]int{1, 3}))
	assert.Equal(t, 8, nextID([]int{7, 2, 5}))
}
