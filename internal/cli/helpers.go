// Shared helpers for postdeck CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/postdeck/postdeck/internal/content"
	"github.com/postdeck/postdeck/internal/paths"
	"github.com/postdeck/postdeck/internal/sqlite"
	"github.com/postdeck/postdeck/pkg/types"
)

// openLibrary resolves configuration, opens the SQLite store, and builds the
// content library. The caller must invoke the returned cleanup when done.
func openLibrary(flags *rootFlags) (*content.Library, func(), error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := sqlite.Open(types.Config{DataDir: dataDir, Seed: v.GetBool(cfgKeySeed)})
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	library, err := content.New(store, logger, v.GetBool(cfgKeySeed))
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	return library, func() { store.Close() }, nil
}

// printJSON writes v as indented JSON to the command's output.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// parseID coerces a command argument to an integer id.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", arg)
	}
	return id, nil
}

// scheduleLayouts are the accepted formats for --schedule values.
var scheduleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseScheduleTime parses a schedule timestamp in any accepted layout.
func parseScheduleTime(value string) (time.Time, error) {
	for _, layout := range scheduleLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid schedule time %q: use RFC 3339 or YYYY-MM-DD [HH:MM]", value)
}

// truncate shortens s for table display.
func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// runE adapts a handler that needs an open library into a cobra RunE.
func runE(flags *rootFlags, fn func(cmd *cobra.Command, args []string, l *content.Library) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		library, cleanup, err := openLibrary(flags)
		if err != nil {
			return err
		}
		defer cleanup()
		return fn(cmd, args, library)
	}
}
