// Package cli implements the postdeck command-line interface: the caller of
// the content library, covering posts, accounts, media, stats, and the
// scheduling calendar.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

// NewRootCmd creates the top-level "postdeck" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "postdeck",
		Short: "A local-first social media content manager",
		Long: `Postdeck manages social media drafts, scheduled posts, published posts,
connected accounts, and an uploaded media library, all stored locally.
Nothing is ever sent to a real platform.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(flags))
	root.AddCommand(newPostCmd(flags))
	root.AddCommand(newAccountCmd(flags))
	root.AddCommand(newMediaCmd(flags))
	root.AddCommand(newStatsCmd(flags))
	root.AddCommand(newCalendarCmd(flags))

	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
