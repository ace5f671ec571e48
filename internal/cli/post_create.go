package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/postdeck/postdeck/internal/content"
)

func newPostCreateCmd(flags *rootFlags) *cobra.Command {
	pf := &postFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new post",
		Long: `Create adds a new post to the local collection.

Example:
  postdeck post create --content "Launching soon!" --platform "Main Twitter"
  postdeck post create --content "Big news" --type scheduled --schedule 2026-09-01T10:00
  postdeck post create --content "Look at this" --media photo.png --type publish`,
		RunE: runE(flags, func(cmd *cobra.Command, args []string, l *content.Library) error {
			in, err := pf.toInput()
			if err != nil {
				return err
			}

			post, err := l.CreatePost(in)
			if err != nil {
				return fmt.Errorf("create post: %w", err)
			}

			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), post)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s post %d\n", post.Type, post.ID)
			return nil
		}),
	}

	pf.register(cmd)
	_ = cmd.MarkFlagRequired("content")
	return cmd
}
