package content

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/h2non/filetype"
)

// dataURLPrefix marks a reference that is already a self-contained payload.
const dataURLPrefix = "data:"

// encodeMediaRefs converts media references to self-contained data URLs.
// References already in data URL form pass through unchanged; anything else
// is treated as a file path, read fully, and encoded. Files are processed
// one at a time, in order, and the first failure aborts the whole batch so
// an operation never stores a partial attachment list.
func encodeMediaRefs(refs []string) ([]string, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		if strings.HasPrefix(ref, dataURLPrefix) {
			urls = append(urls, ref)
			continue
		}
		url, err := encodeFile(ref)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// encodeFile reads the file at path and returns its contents as a base64
// data URL with a sniffed MIME type.
func encodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return encodeDataURL(data), nil
}

// encodeDataURL renders raw bytes as a data URL.
func encodeDataURL(data []byte) string {
	return dataURLPrefix + sniffMIME(data) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// sniffMIME detects the MIME type from file content, not the extension.
// Unrecognized content falls back to application/octet-stream.
func sniffMIME(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return "application/octet-stream"
	}
	return kind.MIME.Value
}
