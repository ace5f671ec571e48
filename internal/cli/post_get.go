package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/postdeck/postdeck/internal/content"
)

func newPostGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: runE(flags, func(cmd *cobra.Command, args []string, l *content.Library) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			post, err := l.PostByID(id)
			if err != nil {
				return fmt.Errorf("get post: %w", err)
			}
			if post == nil {
				return fmt.Errorf("no post with id %d", id)
			}

			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), post)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:        %d\n", post.ID)
			fmt.Fprintf(out, "Type:      %s\n", post.Type)
			fmt.Fprintf(out, "Platforms: %s\n", strings.Join(post.Platforms, ", "))
			fmt.Fprintf(out, "Created:   %s\n", post.CreatedAt.Format("2006-01-02 15:04"))
			if post.Date != nil {
				fmt.Fprintf(out, "Scheduled: %s\n", post.Date.Format("2006-01-02 15:04"))
			}
			if post.PublishedAt != nil {
				fmt.Fprintf(out, "Published: %s\n", post.PublishedAt.Format("2006-01-02 15:04"))
			}
			if len(post.MediaURLs) > 0 {
				fmt.Fprintf(out, "Media:     %d attachment(s)\n", len(post.MediaURLs))
			}
			fmt.Fprintf(out, "\n%s\n", post.Content)
			return nil
		}),
	}
}
