package classify

import (
	"strings"

	"github.com/auditlens-dev/auditlens/internal/config"
	"github.com/auditlens-dev/auditlens/internal/model"
	"github.com/auditlens-dev/auditlens/internal/numeric"
)

// Account maps a row's description to an accounting category. Rules are
// tested in configured order and the first keyword hit wins; no hit yields
// Other.
func Account(description string, rules []config.CategoryRule) model.Category {
	d := strings.ToLower(description)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(d, strings.ToLower(kw)) {
				return rule.Category
			}
		}
	}
	return model.CategoryOther
}

// Rows classifies every data row of a table: the description cell drives
// the category, and the debit/credit sides are summed across all columns
// holding those roles. A table with only an Amount column splits on sign:
// positive amounts are debits, negative amounts are credits.
func Rows(t model.NormalizedTable, cols model.ColumnMap, rules []config.CategoryRule) []model.ClassifiedRow {
	rows := make([]model.ClassifiedRow, 0, len(t.Rows))
	for i, raw := range t.Rows {
		row := model.ClassifiedRow{Index: i}

		if cols.Description >= 0 && cols.Description < len(raw) {
			row.Description = strings.TrimSpace(raw[cols.Description])
		}
		row.Category = Account(row.Description, rules)

		for _, c := range cols.Debit {
			if c < len(raw) {
				row.Debit = row.Debit.Add(numeric.Parse(raw[c]))
			}
		}
		for _, c := range cols.Credit {
			if c < len(raw) {
				row.Credit = row.Credit.Add(numeric.Parse(raw[c]))
			}
		}

		if len(cols.Debit) == 0 && len(cols.Credit) == 0 && cols.Amount >= 0 && cols.Amount < len(raw) {
			amt := numeric.Parse(raw[cols.Amount])
			if amt.IsNegative() {
				row.Credit = amt.Neg()
			} else {
				row.Debit = amt
			}
		}

		rows = append(rows, row)
	}
	return rows
}
