package memstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	s := New()

	_, ok, err := s.Load("posts")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save("posts", []byte("[]")))
	value, ok, err := s.Load("posts")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(value))
}

func TestSaveCopiesValue(t *testing.T) {
	s := New()
	buf := []byte("[1]")
	require.NoError(t, s.Save("posts", buf))
	buf[1] = '9'

	value, _, err := s.Load("posts")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(value))
}

func TestErrorInjection(t *testing.T) {
	s := New()
	boom := errors.New("boom")

	s.LoadErr = boom
	_, _, err := s.Load("posts")
	assert.ErrorIs(t, err, boom)

	s.SaveErr = boom
	assert.ErrorIs(t, s.Save("posts", nil), boom)
}
