package reconcile

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/auditlens-dev/auditlens/internal/model"
	"github.com/auditlens-dev/auditlens/internal/numeric"
)

var (
	roundSumStep = decimal.NewFromInt(1000)
	roundSumMin  = decimal.NewFromInt(10000)
)

// directionalAnomalies flags Asset and Expense rows carrying a credit
// balance. Those categories normally carry debit balances; a credit-heavy
// entry is a contra-indication worth a look, not necessarily wrong.
func directionalAnomalies(rows []model.ClassifiedRow) []model.AnomalyFlag {
	var flags []model.AnomalyFlag
	for _, row := range rows {
		if row.Category != model.CategoryAsset && row.Category != model.CategoryExpense {
			continue
		}
		if row.Credit.GreaterThan(row.Debit) {
			flags = append(flags, model.AnomalyFlag{
				Kind:   model.AnomalyDirectional,
				Rows:   []int{row.Index},
				Detail: fmt.Sprintf("%s account %q carries a credit balance", row.Category, row.Description),
			})
		}
	}
	return flags
}

// roundSumAnomalies flags debits that are exact multiples of 1000 at or
// above 10000, a heuristic for manually entered round figures.
func roundSumAnomalies(rows []model.ClassifiedRow) []model.AnomalyFlag {
	var flags []model.AnomalyFlag
	for _, row := range rows {
		if !row.Debit.IsPositive() {
			continue
		}
		if row.Debit.GreaterThanOrEqual(roundSumMin) && row.Debit.Mod(roundSumStep).IsZero() {
			flags = append(flags, model.AnomalyFlag{
				Kind:   model.AnomalyRoundSum,
				Rows:   []int{row.Index},
				Detail: fmt.Sprintf("round debit %s on %q", row.Debit.StringFixed(2), row.Description),
			})
		}
	}
	return flags
}

// duplicateAmounts flags groups of rows sharing an identical nonzero
// absolute net amount.
func duplicateAmounts(rows []model.ClassifiedRow) []model.AnomalyFlag {
	byAmount := make(map[string][]int)
	for _, row := range rows {
		net := row.Net().Abs()
		if net.IsZero() {
			continue
		}
		key := net.String()
		byAmount[key] = append(byAmount[key], row.Index)
	}

	amounts := make([]string, 0, len(byAmount))
	for key, idxs := range byAmount {
		if len(idxs) > 1 {
			amounts = append(amounts, key)
		}
	}
	sort.Strings(amounts)

	var flags []model.AnomalyFlag
	for _, key := range amounts {
		flags = append(flags, model.AnomalyFlag{
			Kind:   model.AnomalyDuplicateAmount,
			Rows:   byAmount[key],
			Detail: fmt.Sprintf("%d rows share amount %s", len(byAmount[key]), key),
		})
	}
	return flags
}

// statisticalOutliers flags rows whose net amount deviates from the mean by
// more than threshold sigmas. Skipped entirely when there are fewer than two
// rows or the sample deviation is zero.
func statisticalOutliers(rows []model.ClassifiedRow, threshold float64) []model.AnomalyFlag {
	if len(rows) < 2 {
		return nil
	}

	values := make([]float64, len(rows))
	var sum float64
	for i, row := range rows {
		values[i] = row.Net().InexactFloat64()
		sum += values[i]
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	sigma := math.Sqrt(sq / float64(len(values)-1))
	if sigma == 0 {
		return nil
	}

	var flags []model.AnomalyFlag
	for i, v := range values {
		z := math.Abs(v-mean) / sigma
		if z > threshold {
			flags = append(flags, model.AnomalyFlag{
				Kind:   model.AnomalyOutlier,
				Rows:   []int{rows[i].Index},
				ZScore: z,
				Detail: fmt.Sprintf("net %.2f is %.2f sigmas from mean %.2f", v, z, mean),
			})
		}
	}
	return flags
}

// MissingHeight flags rows with coordinates but no height value. The check
// is independent of the financial reconciliation and only runs when enabled
// in configuration.
func MissingHeight(t model.NormalizedTable, cols model.ColumnMap) []model.AnomalyFlag {
	if cols.Latitude < 0 || cols.Longitude < 0 {
		return nil
	}

	var flags []model.AnomalyFlag
	for i, row := range t.Rows {
		lat := cellValue(row, cols.Latitude)
		lon := cellValue(row, cols.Longitude)
		if lat.IsZero() || lon.IsZero() {
			continue
		}
		if cols.Height < 0 || cellValue(row, cols.Height).IsZero() {
			flags = append(flags, model.AnomalyFlag{
				Kind:   model.AnomalyMissingHeight,
				Rows:   []int{i},
				Detail: "coordinates present but height missing",
			})
		}
	}
	return flags
}

func cellValue(row []string, col int) decimal.Decimal {
	if col < 0 || col >= len(row) {
		return decimal.Zero
	}
	return numeric.Parse(row[col])
}
