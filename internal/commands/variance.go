package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/auditlens-dev/auditlens/internal/export"
	"github.com/auditlens-dev/auditlens/internal/pipeline"
	"github.com/auditlens-dev/auditlens/internal/variance"
)

func newVarianceCommand() *cobra.Command {
	var configPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "variance <prior> <current>",
		Short: "Compare classified totals across two periods",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runVariance(pipeline.New(cfg), args[0], args[1], outPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to auditlens.yaml")
	cmd.Flags().StringVar(&outPath, "out", "", "write the variance table to a CSV file")

	return cmd
}

func runVariance(engine *pipeline.Engine, priorPath, currentPath, outPath string) error {
	prior := engine.ProcessFile(priorPath)
	if !prior.Usable() {
		return fmt.Errorf("prior period %s: %s", priorPath, prior.Reason)
	}
	current := engine.ProcessFile(currentPath)
	if !current.Usable() {
		return fmt.Errorf("current period %s: %s", currentPath, current.Reason)
	}

	rows := variance.Compare(prior.Rows, current.Rows)
	fmt.Print(export.RenderVariance(rows))

	if outPath == "" {
		return nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()
	if err := export.WriteVariance(f, rows); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
