package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postdeck/postdeck/pkg/types"
)

func openStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(types.Config{DataDir: dir, Seed: true})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenRejectsEmptyDataDir(t *testing.T) {
	_, err := Open(types.Config{})
	require.ErrorIs(t, err, types.ErrDataDirEmpty)
}

func TestOpenCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := openStore(t, dir)

	assert.FileExists(t, filepath.Join(dir, DBFileName))
	require.NoError(t, s.Close())
}

func TestLoadMissingKey(t *testing.T) {
	s := openStore(t, t.TempDir())

	value, ok, err := s.Load(types.KeyPosts)
	require.NoError(t, err)
	assert.False(t, ok, "never-written key should report absent")
	assert.Nil(t, value)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openStore(t, t.TempDir())

	require.NoError(t, s.Save(types.KeyPosts, []byte(`[{"id":1}]`)))

	value, ok, err := s.Load(types.KeyPosts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(value))
}

func TestSaveReplacesValue(t *testing.T) {
	s := openStore(t, t.TempDir())

	require.NoError(t, s.Save(types.KeyMedia, []byte(`[1]`)))
	require.NoError(t, s.Save(types.KeyMedia, []byte(`[]`)))

	value, ok, err := s.Load(types.KeyMedia)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(value), "empty array must be preserved, not treated as absent")
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(types.Config{DataDir: dir, Seed: true})
	require.NoError(t, err)
	require.NoError(t, s.Save(types.KeyAccounts, []byte(`[{"id":7}]`)))
	require.NoError(t, s.Close())

	s2 := openStore(t, dir)
	value, ok, err := s2.Load(types.KeyAccounts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":7}]`, string(value))
}

func TestClosedStoreErrors(t *testing.T) {
	s := openStore(t, t.TempDir())
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "close is idempotent")

	_, _, err := s.Load(types.KeyPosts)
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	err = s.Save(types.KeyPosts, []byte(`[]`))
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}
