package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// batchConcurrency bounds the number of files processed at once.
const batchConcurrency = 8

// BatchSummary is the read-only reduction over a batch's outcomes. Only
// usable files contribute to the totals.
type BatchSummary struct {
	RunID       string
	Files       int
	Usable      int
	Unusable    int
	Failed      int
	Balanced    int
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// ProcessFiles runs each file's pipeline in its own goroutine. Files share
// no mutable state, so the only coordination is the bounded group; per-file
// failures land in that file's Outcome and never cancel siblings. Results
// keep the input order.
func (e *Engine) ProcessFiles(ctx context.Context, paths []string) []Outcome {
	outcomes := make([]Outcome, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = Outcome{Source: path, Status: StatusFailed, Reason: err.Error()}
				return nil
			}
			outcomes[i] = e.ProcessFile(path)
			logOutcome(outcomes[i])
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// Summarize reduces a batch's outcomes into aggregate totals.
func Summarize(outcomes []Outcome) BatchSummary {
	s := BatchSummary{
		RunID:       uuid.NewString(),
		Files:       len(outcomes),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, out := range outcomes {
		switch out.Status {
		case StatusOK:
			s.Usable++
			s.TotalDebit = s.TotalDebit.Add(out.Result.TotalDebit)
			s.TotalCredit = s.TotalCredit.Add(out.Result.TotalCredit)
			if out.Result.IsBalanced {
				s.Balanced++
			}
		case StatusUnusable:
			s.Unusable++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

func logOutcome(out Outcome) {
	switch out.Status {
	case StatusOK:
		slog.Info("processed statement",
			slog.String("source", out.Source),
			slog.Int("rows", len(out.Rows)),
			slog.Bool("balanced", out.Result.IsBalanced),
			slog.Int("anomalies", len(out.Result.Anomalies)))
	case StatusUnusable:
		slog.Warn("statement unusable",
			slog.String("source", out.Source),
			slog.String("reason", out.Reason))
	case StatusFailed:
		slog.Error("statement failed",
			slog.String("source", out.Source),
			slog.String("reason", out.Reason))
	}
}
