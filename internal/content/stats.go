package content

import "github.com/postdeck/postdeck/pkg/types"

// Stats computes live counts over the post and account collections. Nothing
// is cached; every call reads the store.
func (l *Library) Stats() (types.Stats, error) {
	posts, err := loadCollection[types.Post](l, types.KeyPosts)
	if err != nil {
		return types.Stats{}, err
	}
	accounts, err := loadCollection[types.Account](l, types.KeyAccounts)
	if err != nil {
		return types.Stats{}, err
	}

	stats := types.Stats{
		TotalPosts:        len(posts),
		ConnectedAccounts: len(accounts),
	}
	for _, p := range posts {
		switch p.Type {
		case types.PostTypeDraft:
			stats.Drafts++
		case types.PostTypeScheduled:
			stats.Scheduled++
		case types.PostTypePublish:
			stats.Published++
		}
	}
	return stats, nil
}
