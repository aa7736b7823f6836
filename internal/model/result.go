package model

import "github.com/shopspring/decimal"

// AnomalyKind identifies the forensic check that raised a flag.
type AnomalyKind string

const (
	AnomalyDirectional     AnomalyKind = "directional"
	AnomalyRoundSum        AnomalyKind = "round-sum"
	AnomalyDuplicateAmount AnomalyKind = "duplicate-amount"
	AnomalyOutlier         AnomalyKind = "statistical-outlier"
	AnomalyTransposition   AnomalyKind = "transposition-hint"
	AnomalyMissingHeight   AnomalyKind = "missing-height"
)

// AnomalyFlag is one forensic finding. Rows lists the involved row indexes
// (empty for table-level findings like a transposition hint). Flags are
// advisory: a flagged row is worth a look, not necessarily wrong.
type AnomalyFlag struct {
	Kind       AnomalyKind
	Rows       []int
	ZScore     float64         // set for statistical outliers
	Difference decimal.Decimal // set for transposition hints
	Detail     string
}

// BenfordDigit is the observed vs expected frequency of one leading digit
// (1-9) across a numeric column. Advisory only; no pass/fail.
type BenfordDigit struct {
	Digit    int
	Count    int
	Observed float64
	Expected float64
}

// ReconciliationResult is the per-table balance state plus forensic flags.
// Tolerance is absolute currency units, not a percentage.
type ReconciliationResult struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Difference  decimal.Decimal // TotalDebit - TotalCredit
	IsBalanced  bool
	Anomalies   []AnomalyFlag
	Benford     []BenfordDigit
}
