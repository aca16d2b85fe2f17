// Command unitctl is an interactive editor for systemd-style unit files.
// It creates, validates, and installs unit configurations together with
// their drop-in directories, and never talks to the service manager itself.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/axondata/go-unitfile"
	"github.com/axondata/go-unitfile/internal/menu"
)

var (
	unitDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "unitctl",
	Short: "Interactive systemd unit file editor",
	Long: `unitctl edits declarative unit configurations: structured files of
[Section] groups holding Key=Value directives.

A session owns one unit at a time. Units are validated before anything is
written; the unit file itself is installed atomically, and a drop-in
directory ({unit}.d/) is created next to it for override fragments.

unitctl never reloads or starts anything. After saving, run the
systemctl commands it prints.`,
	Version: unitfile.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store := unitfile.NewStore(unitDir)
		return menu.New(store, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&unitDir, "unit-dir", unitfile.DefaultUnitDir,
		"Directory holding unit files")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"Enable debug logging")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("unitctl {{.Version}}\n")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
