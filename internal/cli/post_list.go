package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/postdeck/postdeck/internal/content"
	"github.com/postdeck/postdeck/pkg/types"
)

func newPostListCmd(flags *rootFlags) *cobra.Command {
	var listType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts",
		Long: `List fetches posts and displays them, optionally filtered by type.

Example:
  postdeck post list
  postdeck post list --type draft
  postdeck post list --type scheduled --json`,
		RunE: runE(flags, func(cmd *cobra.Command, args []string, l *content.Library) error {
			var (
				posts []types.Post
				err   error
			)
			if listType == "" {
				posts, err = l.AllPosts()
			} else {
				if !types.ValidPostType(listType) {
					return fmt.Errorf("type %q: %w (use %s)", listType, types.ErrInvalidPostType, strings.Join(types.PostTypes, ", "))
				}
				posts, err = l.ListPosts(listType)
			}
			if err != nil {
				return fmt.Errorf("list posts: %w", err)
			}

			if flags.jsonMode {
				if posts == nil {
					posts = []types.Post{}
				}
				return printJSON(cmd.OutOrStdout(), posts)
			}
			printPostTable(cmd, posts)
			return nil
		}),
	}

	cmd.Flags().StringVar(&listType, "type", "", "filter by type (draft, scheduled, publish)")
	return cmd
}
