package content

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes returns the PNG signature, enough for content sniffing.
func pngBytes() []byte {
	return []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
}

func TestSniffMIME(t *testing.T) {
	assert.Equal(t, "image/png", sniffMIME(pngBytes()))
	assert.Equal(t, "application/octet-stream", sniffMIME([]byte("plain text")))
	assert.Equal(t, "application/octet-stream", sniffMIME(nil))
}

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixel.png")
	require.NoError(t, os.WriteFile(path, pngBytes(), 0o644))

	url, err := encodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngBytes()), url)
}

func TestEncodeMediaRefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixel.png")
	require.NoError(t, os.WriteFile(path, pngBytes(), 0o644))

	urls, err := encodeMediaRefs([]string{"data:image/gif;base64,AA==", path})
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.Equal(t, "data:image/gif;base64,AA==", urls[0])
	assert.Contains(t, urls[1], ";base64,")
}

func TestEncodeMediaRefsEmpty(t *testing.T) {
	urls, err := encodeMediaRefs(nil)
	require.NoError(t, err)
	assert.Nil(t, urls)
}

func TestEncodeMediaRefsAbortsOnFirstFailure(t *testing.T) {
	_, err := encodeMediaRefs([]string{filepath.Join(t.TempDir(), "nope.png"), "data:image/png;base64,AA=="})
	require.Error(t, err)
}
