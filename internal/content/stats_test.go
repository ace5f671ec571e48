package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postdeck/postdeck/pkg/types"
)

func TestStatsEmpty(t *testing.T) {
	l, _ := newEmptyLibrary(t)

	stats, err := l.Stats()
	require.NoError(t, err)
	assert.Equal(t, types.Stats{}, stats)
}

func TestStatsCountsLive(t *testing.T) {
	l, _ := newEmptyLibrary(t)

	for _, in := range []PostInput{
		{Content: "d1", Type: types.PostTypeDraft},
		{Content: "d2", Type: types.PostTypeDraft},
		{Content: "s1", Type: types.PostTypeScheduled, ScheduledAt: testClock},
		{Content: "p1", Type: types.PostTypePublish},
	} {
		_, err := l.CreatePost(in)
		require.NoError(t, err)
	}
	account, err := l.ConnectAccount(AccountInput{Name: "A", Platform: types.PlatformTwitter, Username: "@a"})
	require.NoError(t, err)

	stats, err := l.Stats()
	require.NoError(t, err)
	assert.Equal(t, types.Stats{
		TotalPosts:        4,
		Drafts:            2,
		Scheduled:         1,
		Published:         1,
		ConnectedAccounts: 1,
	}, stats)

	// Counts are recomputed on every call, never cached.
	require.NoError(t, l.DisconnectAccount(account.ID))
	stats, err = l.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.ConnectedAccounts)
}
