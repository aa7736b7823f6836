// Package variance compares classified totals across two periods.
package variance

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/auditlens-dev/auditlens/internal/model"
)

// Compare groups each period's rows by category, sums net amounts, and
// produces one row per category present in either period, in reporting
// order. A category absent from one side contributes zero. Percent variance
// is NaN when the prior value is zero; it never raises a division error.
func Compare(prior, current []model.ClassifiedRow) []model.VarianceRow {
	priorTotals := totalsByCategory(prior)
	currentTotals := totalsByCategory(current)

	var rows []model.VarianceRow
	for _, cat := range model.Categories() {
		p, inPrior := priorTotals[cat]
		c, inCurrent := currentTotals[cat]
		if !inPrior && !inCurrent {
			continue
		}

		abs := c.Sub(p)
		percent := math.NaN()
		if !p.IsZero() {
			percent = abs.Div(p).InexactFloat64() * 100
		}

		rows = append(rows, model.VarianceRow{
			Category: cat,
			Prior:    p,
			Current:  c,
			Absolute: abs,
			Percent:  percent,
		})
	}
	return rows
}

func totalsByCategory(rows []model.ClassifiedRow) map[model.Category]decimal.Decimal {
	totals := make(map[model.Category]decimal.Decimal)
	for _, row := range rows {
		totals[row.Category] = totals[row.Category].Add(row.Net())
	}
	return totals
}
