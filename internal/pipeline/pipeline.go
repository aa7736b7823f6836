// Package pipeline wires the normalization stages into one parameterized
// run: locate header, build table, classify columns and rows, reconcile.
// Each stage produces a new immutable value; the run's outcome is a value
// too, carrying either a payload or a structured failure so batch callers
// never depend on control-flow errors.
package pipeline

import (
	"fmt"

	"github.com/auditlens-dev/auditlens/internal/classify"
	"github.com/auditlens-dev/auditlens/internal/config"
	"github.com/auditlens-dev/auditlens/internal/grid"
	"github.com/auditlens-dev/auditlens/internal/model"
	"github.com/auditlens-dev/auditlens/internal/reconcile"
)

// Status is the terminal state of one file's run.
type Status string

const (
	// StatusOK means the file produced a usable reconciliation.
	StatusOK Status = "ok"
	// StatusUnusable means the table had no column assignable to
	// Debit/Credit/Amount; the file is excluded from aggregates.
	StatusUnusable Status = "unusable"
	// StatusFailed means the file could not be processed at all.
	StatusFailed Status = "failed"
)

// Outcome is the result of running one source through the pipeline.
type Outcome struct {
	Source   string
	Status   Status
	Reason   string
	Warnings []string
	Table    model.NormalizedTable
	Columns  model.ColumnMap
	Rows     []model.ClassifiedRow
	Result   model.ReconciliationResult
}

// Usable reports whether the outcome contributes to aggregate totals.
func (o Outcome) Usable() bool { return o.Status == StatusOK }

// Engine runs the pipeline with one fixed configuration.
type Engine struct {
	cfg      *config.Config
	registry *grid.Registry
}

// New creates an Engine with the built-in readers.
func New(cfg *config.Config) *Engine {
	return &Engine{
		cfg:      cfg,
		registry: grid.DefaultRegistry(cfg.Header.Keywords),
	}
}

// Registry exposes the engine's reader registry.
func (e *Engine) Registry() *grid.Registry { return e.registry }

// ProcessGrid runs a captured grid through the full pipeline.
func (e *Engine) ProcessGrid(g model.RawGrid) Outcome {
	out := Outcome{Source: g.Source, Status: StatusOK}

	if g.NumRows() == 0 {
		out.Status = StatusUnusable
		out.Reason = "empty grid"
		return out
	}

	headerRow, found := grid.LocateHeader(g, e.cfg.Header)
	if !found {
		out.Warnings = append(out.Warnings,
			fmt.Sprintf("no header row matched %d keywords in the first %d rows, assuming no preamble",
				e.cfg.Header.MinMatches, e.cfg.Header.Window))
	}

	out.Table = grid.Build(g, headerRow)
	out.Columns = classify.Columns(out.Table.Labels, e.cfg.Roles)

	if !out.Columns.HasNumericColumns() {
		out.Status = StatusUnusable
		out.Reason = "no column assignable to debit, credit, or amount"
		return out
	}

	out.Rows = classify.Rows(out.Table, out.Columns, e.cfg.Categories)
	out.Result = reconcile.Run(out.Rows, reconcile.OptionsFrom(e.cfg.Reconcile))

	if e.cfg.Reconcile.CheckMissingHeight {
		out.Result.Anomalies = append(out.Result.Anomalies,
			reconcile.MissingHeight(out.Table, out.Columns)...)
	}
	return out
}

// ProcessFile captures a file's grid and runs the pipeline. Every failure is
// contained in the returned Outcome: one bad file never aborts its siblings.
func (e *Engine) ProcessFile(path string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{
				Source: path,
				Status: StatusFailed,
				Reason: fmt.Sprintf("panic: %v", r),
			}
		}
	}()

	g, err := e.registry.ReadFile(path)
	if err != nil {
		return Outcome{Source: path, Status: StatusFailed, Reason: err.Error()}
	}
	return e.ProcessGrid(g)
}
