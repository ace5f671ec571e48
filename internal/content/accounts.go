package content

import (
	"fmt"

	"github.com/postdeck/postdeck/pkg/types"
)

// AccountInput carries the caller-supplied fields for connecting an account.
type AccountInput struct {
	Name     string
	Platform string
	Username string
}

// Accounts returns the full account collection in storage order.
func (l *Library) Accounts() ([]types.Account, error) {
	return loadCollection[types.Account](l, types.KeyAccounts)
}

// ConnectAccount assigns a new id, marks the account connected, appends it to
// the collection, and persists it. The platform must be one of the supported
// values.
func (l *Library) ConnectAccount(in AccountInput) (*types.Account, error) {
	if !types.ValidPlatform(in.Platform) {
		return nil, fmt.Errorf("platform %q: %w", in.Platform, types.ErrInvalidPlatform)
	}

	accounts, err := loadCollection[types.Account](l, types.KeyAccounts)
	if err != nil {
		return nil, err
	}

	account := types.Account{
		ID:        nextID(accountIDs(accounts)),
		Name:      in.Name,
		Platform:  in.Platform,
		Username:  in.Username,
		Connected: true,
	}

	accounts = append(accounts, account)
	if err := saveCollection(l, types.KeyAccounts, accounts); err != nil {
		return nil, err
	}
	return &account, nil
}

// DisconnectAccount removes the account with the given id and persists the
// remainder. Removing an absent id is a no-op that still succeeds. Posts
// referencing the account's name keep the stale reference; there is no
// cascade.
func (l *Library) DisconnectAccount(id int) error {
	accounts, err := loadCollection[types.Account](l, types.KeyAccounts)
	if err != nil {
		return err
	}

	remaining := make([]types.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.ID != id {
			remaining = append(remaining, a)
		}
	}
	return saveCollection(l, types.KeyAccounts, remaining)
}

func accountIDs(accounts []types.Account) []int {
	ids := make([]int, len(accounts))
	for i, a := range accounts {
		ids[i] = a.ID
	}
	return ids
}
