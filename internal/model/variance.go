package model

import "github.com/shopspring/decimal"

// VarianceRow compares one category's net total across two periods.
// Percent is NaN when Prior is zero; callers must render it as undefined
// rather than dividing blindly.
type VarianceRow struct {
	Category Category
	Prior    decimal.Decimal
	Current  decimal.Decimal
	Absolute decimal.Decimal // Current - Prior
	Percent  float64
}
