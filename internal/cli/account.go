package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/postdeck/postdeck/internal/content"
	"github.com/postdeck/postdeck/pkg/types"
)

func newAccountCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage connected social accounts",
	}
	cmd.AddCommand(newAccountConnectCmd(flags))
	cmd.AddCommand(newAccountListCmd(flags))
	cmd.AddCommand(newAccountDisconnectCmd(flags))
	return cmd
}

func newAccountConnectCmd(flags *rootFlags) *cobra.Command {
	var (
		name     string
		platform string
		username string
	)

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect a social account",
		Long: `Connect registers a social account under a display name. Posts target
accounts by that display name.

Example:
  postdeck account connect --name "Main Twitter" --platform twitter --username @companyname`,
		RunE: runE(flags, func(cmd *cobra.Command, args []string, l *content.Library) error {
			account, err := l.ConnectAccount(content.AccountInput{
				Name:     name,
				Platform: platform,
				Username: username,
			})
			if err != nil {
				return fmt.Errorf("connect account: %w", err)
			}

			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), account)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Connected %s account %d (%s)\n", account.Platform, account.ID, account.Name)
			return nil
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&platform, "platform", "", "platform: "+strings.Join(types.Platforms, ", ")+" (required)")
	cmd.Flags().StringVar(&username, "username", "", "handle on the platform (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newAccountListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List connected accounts",
		RunE: runE(flags, func(cmd *cobra.Command, args []string, l *content.Library) error {
			accounts, err := l.Accounts()
			if err != nil {
				return fmt.Errorf("list accounts: %w", err)
			}

			if flags.jsonMode {
				if accounts == nil {
					accounts = []types.Account{}
				}
				return printJSON(cmd.OutOrStdout(), accounts)
			}

			out := cmd.OutOrStdout()
			if len(accounts) == 0 {
				fmt.Fprintln(out, "No accounts connected.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPLATFORM\tUSERNAME")
			for _, a := range accounts {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.ID, a.Name, a.Platform, a.Username)
			}
			w.Flush()
			fmt.Fprintf(out, "Total: %d account(s)\n", len(accounts))
			return nil
		}),
	}
}

func newAccountDisconnectCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <id>",
		Short: "Disconnect a social account",
		Long: `Disconnect removes the account with the given id. Posts that target the
account's display name keep the stale reference.`,
		Args: cobra.ExactArgs(1),
		RunE: runE(flags, func(cmd *cobra.Command, args []string, l *content.Library) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := l.DisconnectAccount(id); err != nil {
				return fmt.Errorf("disconnect account: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Disconnected account %d\n", id)
			return nil
		}),
	}
}
