// Package reconcile aggregates classified rows into a balance state and runs
// the forensic checks over them. Every finding is advisory: the engine flags
// and degrades, it never aborts.
package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/auditlens-dev/auditlens/internal/config"
	"github.com/auditlens-dev/auditlens/internal/model"
)

var nine = decimal.NewFromInt(9)

// Options holds the reconciliation thresholds.
type Options struct {
	Tolerance       decimal.Decimal
	ZScoreThreshold float64
}

// OptionsFrom converts the config thresholds into engine options.
func OptionsFrom(rc config.ReconcileConfig) Options {
	return Options{
		Tolerance:       decimal.NewFromFloat(rc.Tolerance),
		ZScoreThreshold: rc.ZScoreThreshold,
	}
}

// Run computes the balance state for a set of classified rows and attaches
// all forensic flags. Tolerance is absolute currency units: rounding error
// on a statement is sub-unit, not proportional.
func Run(rows []model.ClassifiedRow, opts Options) model.ReconciliationResult {
	res := model.ReconciliationResult{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, row := range rows {
		res.TotalDebit = res.TotalDebit.Add(row.Debit)
		res.TotalCredit = res.TotalCredit.Add(row.Credit)
	}
	res.Difference = res.TotalDebit.Sub(res.TotalCredit)
	res.IsBalanced = res.Difference.Abs().LessThan(opts.Tolerance)

	if !res.IsBalanced {
		if flag, ok := transpositionHint(res.Difference, opts.Tolerance); ok {
			res.Anomalies = append(res.Anomalies, flag)
		}
	}
	res.Anomalies = append(res.Anomalies, directionalAnomalies(rows)...)
	res.Anomalies = append(res.Anomalies, roundSumAnomalies(rows)...)
	res.Anomalies = append(res.Anomalies, duplicateAmounts(rows)...)
	res.Anomalies = append(res.Anomalies, statisticalOutliers(rows, opts.ZScoreThreshold)...)
	res.Benford = benford(rows)

	return res
}

// transpositionHint flags an unbalanced difference divisible by 9 within
// tolerance. Swapping two digits of a number always changes it by a multiple
// of 9, so such a difference suggests a transposition error.
func transpositionHint(diff, tolerance decimal.Decimal) (model.AnomalyFlag, bool) {
	rem := diff.Abs().Mod(nine)
	if rem.GreaterThan(tolerance) && nine.Sub(rem).GreaterThan(tolerance) {
		return model.AnomalyFlag{}, false
	}
	return model.AnomalyFlag{
		Kind:       model.AnomalyTransposition,
		Difference: diff,
		Detail:     "difference divisible by 9: possible digit transposition",
	}, true
}
