package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/auditlens-dev/auditlens/internal/config"
	"github.com/auditlens-dev/auditlens/internal/export"
	"github.com/auditlens-dev/auditlens/internal/pipeline"
)

func newAnalyzeCommand() *cobra.Command {
	var configPath string
	var strategy string
	var outDir string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Normalize and reconcile one statement file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if strategy != "" {
				cfg.Header.Strategy = config.HeaderStrategy(strategy)
			}
			return runAnalyze(cfg, args[0], outDir)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to auditlens.yaml")
	cmd.Flags().StringVar(&strategy, "strategy", "", "header strategy: first-threshold or best-of-window")
	cmd.Flags().StringVar(&outDir, "out", "", "directory for CSV exports")

	return cmd
}

func runAnalyze(cfg *config.Config, path, outDir string) error {
	engine := pipeline.New(cfg)
	out := engine.ProcessFile(path)

	fmt.Print(export.RenderOutcome(out))

	if out.Status == pipeline.StatusFailed {
		return fmt.Errorf("processing %s: %s", path, out.Reason)
	}
	if outDir == "" || !out.Usable() {
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	exports := []struct {
		suffix string
		write  func(f *os.File) error
	}{
		{"table", func(f *os.File) error { return export.WriteTable(f, out.Table) }},
		{"rows", func(f *os.File) error { return export.WriteRows(f, out.Rows) }},
		{"anomalies", func(f *os.File) error { return export.WriteAnomalies(f, out.Result.Anomalies) }},
		{"benford", func(f *os.File) error { return export.WriteBenford(f, out.Result.Benford) }},
	}

	for _, e := range exports {
		name := filepath.Join(outDir, fmt.Sprintf("%s-%s.csv", base, e.suffix))
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
		if err := e.write(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", name, err)
		}
		fmt.Printf("wrote %s\n", name)
	}
	return nil
}
