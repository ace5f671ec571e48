package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/postdeck/postdeck/internal/content"
)

func newPostDeleteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: runE(flags, func(cmd *cobra.Command, args []string, l *content.Library) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := l.DeletePost(id); err != nil {
				return fmt.Errorf("delete post: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted post %d\n", id)
			return nil
		}),
	}
}
