package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/postdeck/postdeck/internal/content"
)

const monthLayout = "2006-01"

func newCalendarCmd(flags *rootFlags) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show scheduled posts on a month grid",
		Long: `Calendar lists each day of the month with the posts scheduled for it.
Defaults to the current month.

Example:
  postdeck calendar --month 2026-09`,
		RunE: runE(flags, func(cmd *cobra.Command, args []string, l *content.Library) error {
			target := time.Now()
			if month != "" {
				parsed, err := time.Parse(monthLayout, month)
				if err != nil {
					return fmt.Errorf("invalid --month %q: want YYYY-MM", month)
				}
				target = parsed
			}

			days, err := l.Calendar(target.Year(), target.Month())
			if err != nil {
				return fmt.Errorf("build calendar: %w", err)
			}

			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), days)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d\n", target.Month(), target.Year())
			scheduled := 0
			for _, day := range days {
				if len(day.Posts) == 0 {
					continue
				}
				fmt.Fprintf(out, "%s\n", day.Date.Format("Mon Jan 02"))
				for _, p := range day.Posts {
					scheduled++
					when := ""
					if p.Date != nil {
						when = p.Date.Format("15:04")
					}
					fmt.Fprintf(out, "  %s  #%d %s\n", when, p.ID, truncate(p.Content, 60))
				}
			}
			if scheduled == 0 {
				fmt.Fprintln(out, "Nothing scheduled.")
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&month, "month", "", "month to show as YYYY-MM (default: current month)")
	return cmd
}
