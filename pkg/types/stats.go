package types

// Stats holds live counts over the post and account collections.
// Computed on every query; never cached.
type Stats struct {
	TotalPosts        int `json:"totalPosts"`
	Drafts            int `json:"drafts"`
	Scheduled         int `json:"scheduled"`
	Published         int `json:"published"`
	ConnectedAccounts int `json:"connectedAccounts"`
}
