package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/postdeck/postdeck/internal/content"
)

func newStatsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show library statistics",
		RunE: runE(flags, func(cmd *cobra.Command, args []string, l *content.Library) error {
			stats, err := l.Stats()
			if err != nil {
				return fmt.Errorf("compute stats: %w", err)
			}

			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), stats)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total posts:        %d\n", stats.TotalPosts)
			fmt.Fprintf(out, "Drafts:             %d\n", stats.Drafts)
			fmt.Fprintf(out, "Scheduled:          %d\n", stats.Scheduled)
			fmt.Fprintf(out, "Published:          %d\n", stats.Published)
			fmt.Fprintf(out, "Connected accounts: %d\n", stats.ConnectedAccounts)
			return nil
		}),
	}
}
