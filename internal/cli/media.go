package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/postdeck/postdeck/internal/content"
	"github.com/postdeck/postdeck/pkg/types"
)

func newMediaCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage the media library",
	}
	cmd.AddCommand(newMediaUploadCmd(flags))
	cmd.AddCommand(newMediaListCmd(flags))
	cmd.AddCommand(newMediaDeleteCmd(flags))
	return cmd
}

func newMediaUploadCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file> [file...]",
		Short: "Upload files into the media library",
		Long: `Upload reads each file, detects its type from content, and stores it in
the media library. Newest uploads list first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runE(flags, func(cmd *cobra.Command, args []string, l *content.Library) error {
			items, err := l.UploadMedia(args)
			if err != nil {
				return fmt.Errorf("upload media: %w", err)
			}

			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), items)
			}
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s as %s %d (%s)\n", item.Name, item.Type, item.ID, item.Size)
			}
			return nil
		}),
	}
}

func newMediaListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List media items",
		RunE: runE(flags, func(cmd *cobra.Command, args []string, l *content.Library) error {
			items, err := l.Media()
			if err != nil {
				return fmt.Errorf("list media: %w", err)
			}

			if flags.jsonMode {
				if items == nil {
					items = []types.MediaItem{}
				}
				return printJSON(cmd.OutOrStdout(), items)
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No media in the library.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tSIZE\tDATE")
			for _, item := range items {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", item.ID, item.Name, item.Type, item.Size, item.Date)
			}
			w.Flush()
			fmt.Fprintf(out, "Total: %d item(s)\n", len(items))
			return nil
		}),
	}
}

func newMediaDeleteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a media item",
		Long: `Delete removes the media item with the given id. Posts that embedded the
item keep their copies.`,
		Args: cobra.ExactArgs(1),
		RunE: runE(flags, func(cmd *cobra.Command, args []string, l *content.Library) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := l.DeleteMedia(id); err != nil {
				return fmt.Errorf("delete media: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted media %d\n", id)
			return nil
		}),
	}
}
