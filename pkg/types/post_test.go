package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPostType(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		want bool
	}{
		{"draft is valid", PostTypeDraft, true},
		{"scheduled is valid", PostTypeScheduled, true},
		{"publish is valid", PostTypePublish, true},
		{"published is not a type value", "published", false},
		{"empty string is invalid", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPostType(tt.typ))
		})
	}
}

// TestPostSerializedShape verifies that the persisted form carries exactly
// the optional fields the post type mandates.
func TestPostSerializedShape(t *testing.T) {
	created := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	when := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		post       Post
		wantKeys   []string
		absentKeys []string
	}{
		{
			name: "draft has no schedule or publish fields",
			post: Post{ID: 1, Content: "hi", Platforms: []string{"A"}, Type: PostTypeDraft, CreatedAt: created},
			wantKeys:   []string{"id", "content", "platforms", "type", "createdAt"},
			absentKeys: []string{"date", "publishedAt", "mediaUrls"},
		},
		{
			name: "scheduled carries date only",
			post: Post{ID: 2, Content: "soon", Platforms: []string{"A"}, Type: PostTypeScheduled, CreatedAt: created, Date: &when},
			wantKeys:   []string{"date"},
			absentKeys: []string{"publishedAt", "mediaUrls"},
		},
		{
			name: "published carries publishedAt only",
			post: Post{ID: 3, Content: "done", Platforms: []string{"A"}, Type: PostTypePublish, CreatedAt: created, PublishedAt: &when},
			wantKeys:   []string{"publishedAt"},
			absentKeys: []string{"date"},
		},
		{
			name: "attached media appears as mediaUrls",
			post: Post{ID: 4, Content: "pic", Platforms: []string{"A"}, Type: PostTypeDraft, CreatedAt: created, MediaURLs: []string{"data:image/png;base64,AA=="}},
			wantKeys:   []string{"mediaUrls"},
			absentKeys: []string{"date", "publishedAt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.post)
			require.NoError(t, err)

			var raw map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(data, &raw))

			for _, k := range tt.wantKeys {
				assert.Contains(t, raw, k)
			}
			for _, k := range tt.absentKeys {
				assert.NotContains(t, raw, k)
			}
		})
	}
}

func TestPostTypePredicates(t *testing.T) {
	p := Post{Type: PostTypeScheduled}
	assert.True(t, p.IsScheduled())
	assert.False(t, p.IsDraft())
	assert.False(t, p.IsPublished())
}
