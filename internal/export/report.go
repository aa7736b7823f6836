package export

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/auditlens-dev/auditlens/internal/model"
	"github.com/auditlens-dev/auditlens/internal/pipeline"
	"github.com/auditlens-dev/auditlens/internal/runlog"
)

// RenderOutcome renders one file's result as terminal text.
func RenderOutcome(out pipeline.Outcome) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", out.Source)
	for _, w := range out.Warnings {
		fmt.Fprintf(&b, "  warning: %s\n", w)
	}

	switch out.Status {
	case pipeline.StatusUnusable:
		fmt.Fprintf(&b, "  unusable: %s\n", out.Reason)
		return b.String()
	case pipeline.StatusFailed:
		fmt.Fprintf(&b, "  failed: %s\n", out.Reason)
		return b.String()
	}

	res := out.Result
	fmt.Fprintf(&b, "  rows: %d (header at row %d)\n", len(out.Rows), out.Table.HeaderRow)
	fmt.Fprintf(&b, "  total debit:  %s\n", res.TotalDebit.StringFixed(2))
	fmt.Fprintf(&b, "  total credit: %s\n", res.TotalCredit.StringFixed(2))
	fmt.Fprintf(&b, "  difference:   %s\n", res.Difference.StringFixed(2))
	if res.IsBalanced {
		fmt.Fprintf(&b, "  balanced\n")
	} else {
		fmt.Fprintf(&b, "  NOT balanced\n")
	}

	for _, flag := range res.Anomalies {
		fmt.Fprintf(&b, "  [%s] %s\n", flag.Kind, flag.Detail)
	}
	return b.String()
}

// RenderBatch renders a batch summary.
func RenderBatch(s pipeline.BatchSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s: %d files (%d usable, %d unusable, %d failed)\n",
		s.RunID, s.Files, s.Usable, s.Unusable, s.Failed)
	fmt.Fprintf(&b, "  balanced files: %d/%d\n", s.Balanced, s.Usable)
	fmt.Fprintf(&b, "  total debit:  %s\n", s.TotalDebit.StringFixed(2))
	fmt.Fprintf(&b, "  total credit: %s\n", s.TotalCredit.StringFixed(2))
	return b.String()
}

// RenderRunLog renders recorded batch outcomes, oldest run first.
func RenderRunLog(entries []runlog.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %s  %-8s %s",
			e.Timestamp.Format(time.RFC3339), e.RunID, e.Status, e.File)
		if e.Reason != "" {
			fmt.Fprintf(&b, "  (%s)", e.Reason)
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}

// RenderVariance renders a cross-period variance table.
func RenderVariance(rows []model.VarianceRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %14s %14s %14s %10s\n", "category", "prior", "current", "absolute", "percent")
	for _, row := range rows {
		percent := "undefined"
		if !math.IsNaN(row.Percent) {
			percent = fmt.Sprintf("%.1f%%", row.Percent)
		}
		fmt.Fprintf(&b, "%-12s %14s %14s %14s %10s\n",
			row.Category,
			row.Prior.StringFixed(2),
			row.Current.StringFixed(2),
			row.Absolute.StringFixed(2),
			percent)
	}
	return b.String()
}
