package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/auditlens-dev/auditlens/internal/buildinfo"
	"github.com/auditlens-dev/auditlens/internal/config"
)

// configFileName is the config file looked up in the working directory when
// no --config flag is given.
const configFileName = "auditlens.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "auditlens",
		Short:   "Normalize, classify, and reconcile messy financial statements",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newVarianceCommand())
	rootCmd.AddCommand(newLogCommand())

	return rootCmd
}

// loadConfig resolves the engine configuration: an explicit --config path,
// else auditlens.yaml in the working directory, else built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(configFileName); errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Load(configFileName)
}
