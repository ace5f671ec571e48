package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/postdeck/postdeck/internal/content"
	"github.com/postdeck/postdeck/internal/paths"
	"github.com/postdeck/postdeck/internal/sqlite"
	"github.com/postdeck/postdeck/pkg/types"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	var noSeed bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the postdeck environment",
		Long: `Init creates the configuration and data directories, writes a default
config.yaml, opens the local database, and seeds absent collections with
sample content so the app is usable immediately. Running init again is
harmless: existing config and data are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}

			v, err := loadConfig(configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
			if err != nil {
				return fmt.Errorf("resolve data dir: %w", err)
			}

			seed := v.GetBool(cfgKeySeed) && !noSeed

			store, err := sqlite.Open(types.Config{DataDir: dataDir, Seed: seed})
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer store.Close()

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
			library, err := content.New(store, logger, seed)
			if err != nil {
				return err
			}

			stats, err := library.Stats()
			if err != nil {
				return fmt.Errorf("verify store: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config:   %s\n", filepath.Join(configDir, configFileExt))
			fmt.Fprintf(out, "Database: %s\n", filepath.Join(dataDir, sqlite.DBFileName))
			if seed {
				fmt.Fprintf(out, "Library:  %d post(s), %d connected account(s)\n", stats.TotalPosts, stats.ConnectedAccounts)
			}
			fmt.Fprintln(out, "Initialized.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "skip seeding sample content")
	return cmd
}
