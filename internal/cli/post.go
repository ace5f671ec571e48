package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/postdeck/postdeck/internal/content"
	"github.com/postdeck/postdeck/pkg/types"
)

func newPostCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Manage posts (drafts, scheduled, published)",
	}
	cmd.AddCommand(newPostCreateCmd(flags))
	cmd.AddCommand(newPostListCmd(flags))
	cmd.AddCommand(newPostGetCmd(flags))
	cmd.AddCommand(newPostUpdateCmd(flags))
	cmd.AddCommand(newPostDeleteCmd(flags))
	return cmd
}

// postFlags holds the shared create/update flag values.
type postFlags struct {
	content   string
	platforms []string
	postType  string
	schedule  string
	media     []string
}

// register binds the shared post flags to cmd.
func (pf *postFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pf.content, "content", "", "post text body (required)")
	cmd.Flags().StringArrayVar(&pf.platforms, "platform", nil, "target account display name (repeatable)")
	cmd.Flags().StringVar(&pf.postType, "type", types.PostTypeDraft, "post type: draft, scheduled, or publish")
	cmd.Flags().StringVar(&pf.schedule, "schedule", "", "publish time for scheduled posts (RFC 3339 or YYYY-MM-DD [HH:MM])")
	cmd.Flags().StringArrayVar(&pf.media, "media", nil, "media attachment: file path or data URL (repeatable)")
}

// toInput validates the flag values and builds the repository input. The
// repository itself stores what it is given; input validation lives here at
// the caller boundary.
func (pf *postFlags) toInput() (content.PostInput, error) {
	in := content.PostInput{
		Content:   pf.content,
		Platforms: pf.platforms,
		Type:      pf.postType,
		Media:     pf.media,
	}

	if strings.TrimSpace(pf.content) == "" {
		return in, types.ErrContentEmpty
	}
	if !types.ValidPostType(pf.postType) {
		return in, fmt.Errorf("type %q: %w (use %s)", pf.postType, types.ErrInvalidPostType, strings.Join(types.PostTypes, ", "))
	}

	if pf.postType == types.PostTypeScheduled {
		if pf.schedule == "" {
			return in, fmt.Errorf("scheduled posts require --schedule")
		}
		at, err := parseScheduleTime(pf.schedule)
		if err != nil {
			return in, err
		}
		in.ScheduledAt = at
	}

	return in, nil
}

// printPostTable prints posts in a human-readable table format.
func printPostTable(cmd *cobra.Command, posts []types.Post) {
	out := cmd.OutOrStdout()
	if len(posts) == 0 {
		fmt.Fprintln(out, "No posts found.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tPLATFORMS\tCONTENT\tWHEN")
	for _, p := range posts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.Type,
			strings.Join(p.Platforms, ","),
			truncate(p.Content, 50),
			postWhen(p),
		)
	}
	w.Flush()
	fmt.Fprintf(out, "Total: %d post(s)\n", len(posts))
}

// postWhen renders the timestamp most relevant to the post's type.
func postWhen(p types.Post) string {
	const layout = "2006-01-02 15:04"
	switch {
	case p.Date != nil:
		return "scheduled " + p.Date.Format(layout)
	case p.PublishedAt != nil:
		return "published " + p.PublishedAt.Format(layout)
	default:
		return "created " + p.CreatedAt.Format(layout)
	}
}
