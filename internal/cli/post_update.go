package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/postdeck/postdeck/internal/content"
	"github.com/postdeck/postdeck/pkg/types"
)

func newPostUpdateCmd(flags *rootFlags) *cobra.Command {
	pf := &postFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rewrite an existing post",
		Long: `Update rebuilds the post with the given id from the supplied flags,
keeping only its id and creation time. Supplying --media replaces the
stored attachments; omitting it keeps them.

Example:
  postdeck post update 4 --content "Final copy" --type publish
  postdeck post update 7 --content "Moved" --type scheduled --schedule 2026-10-01`,
		Args: cobra.ExactArgs(1),
		RunE: runE(flags, func(cmd *cobra.Command, args []string, l *content.Library) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			in, err := pf.toInput()
			if err != nil {
				return err
			}

			post, err := l.UpdatePost(id, in)
			if errors.Is(err, types.ErrPostNotFound) {
				return fmt.Errorf("no post with id %d", id)
			}
			if err != nil {
				return fmt.Errorf("update post: %w", err)
			}

			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), post)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated post %d (%s)\n", post.ID, post.Type)
			return nil
		}),
	}

	pf.register(cmd)
	_ = cmd.MarkFlagRequired("content")
	return cmd
}
