package model

import "github.com/shopspring/decimal"

// ClassifiedRow is one data row of a NormalizedTable with its derived
// accounting category and numeric sides. Debit and Credit are sums over all
// columns assigned those roles; rows with neither side fall back to the
// Amount column (positive = debit, negative = credit).
type ClassifiedRow struct {
	Index       int // 0-based position within the table
	Description string
	Category    Category
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// Net returns Debit minus Credit.
func (r ClassifiedRow) Net() decimal.Decimal {
	return r.Debit.Sub(r.Credit)
}
