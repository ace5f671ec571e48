package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the postdeck release version.
const Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the postdeck version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "postdeck", Version)
		},
	}
}
