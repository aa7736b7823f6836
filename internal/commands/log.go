package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/auditlens-dev/auditlens/internal/export"
	"github.com/auditlens-dev/auditlens/internal/runlog"
)

func newLogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "log <dir>",
		Short: "Show per-file outcomes recorded by past batch runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd.OutOrStdout(), args[0])
		},
	}
}

func runLog(w io.Writer, dir string) error {
	entries, err := runlog.Read(dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "no run log entries")
		return nil
	}
	fmt.Fprint(w, export.RenderRunLog(entries))
	return nil
}
