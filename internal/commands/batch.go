package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/auditlens-dev/auditlens/internal/config"
	"github.com/auditlens-dev/auditlens/internal/export"
	"github.com/auditlens-dev/auditlens/internal/grid"
	"github.com/auditlens-dev/auditlens/internal/pipeline"
	"github.com/auditlens-dev/auditlens/internal/runlog"
)

func newBatchCommand() *cobra.Command {
	var configPath string
	var logDir string

	cmd := &cobra.Command{
		Use:   "batch <dir | files...>",
		Short: "Process many statement files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runBatch(cmd, cfg, args, logDir)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to auditlens.yaml")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "directory for the run log (disabled when empty)")

	return cmd
}

func runBatch(cmd *cobra.Command, cfg *config.Config, args []string, logDir string) error {
	engine := pipeline.New(cfg)

	files, err := expandArgs(args, engine.Registry())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported statement files found")
	}

	paths := make([]string, len(files))
	for i, f := range files {
		slog.Debug("queued statement file", "file", f.Name, "bytes", f.Size)
		paths[i] = f.Path
	}

	outcomes := engine.ProcessFiles(cmd.Context(), paths)
	summary := pipeline.Summarize(outcomes)

	for _, out := range outcomes {
		fmt.Print(export.RenderOutcome(out))
	}
	fmt.Print(export.RenderBatch(summary))

	if logDir != "" {
		entries := make([]runlog.Entry, len(outcomes))
		now := time.Now().UTC()
		for i, out := range outcomes {
			entries[i] = runlog.Entry{
				Timestamp: now,
				RunID:     summary.RunID,
				File:      out.Source,
				Status:    string(out.Status),
				Reason:    out.Reason,
			}
		}
		if err := runlog.Append(logDir, entries); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write run log: %v\n", err)
		}
	}
	return nil
}

// expandArgs turns a single directory argument into its supported files;
// explicit file arguments pass through untouched. A file that cannot be
// statted is still queued, so it surfaces as a per-file failure instead of
// aborting the batch.
func expandArgs(args []string, registry *grid.Registry) ([]grid.FileInfo, error) {
	if len(args) == 1 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			return grid.Scan(args[0], registry)
		}
	}

	files := make([]grid.FileInfo, len(args))
	for i, arg := range args {
		files[i] = grid.FileInfo{Name: filepath.Base(arg), Path: arg}
		if info, err := os.Stat(arg); err == nil {
			files[i].Size = info.Size()
		}
	}
	return files, nil
}
