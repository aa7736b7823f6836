package reconcile

import (
	"math"

	"github.com/auditlens-dev/auditlens/internal/model"
)

// benford compares the leading-digit distribution of the nonzero net
// amounts against Benford's Law, P(d) = log10(1 + 1/d). The result is an
// advisory signal for visualization; there is no pass/fail.
func benford(rows []model.ClassifiedRow) []model.BenfordDigit {
	counts := make([]int, 10)
	total := 0
	for _, row := range rows {
		d := leadingDigit(math.Abs(row.Net().InexactFloat64()))
		if d == 0 {
			continue
		}
		counts[d]++
		total++
	}
	if total == 0 {
		return nil
	}

	dist := make([]model.BenfordDigit, 0, 9)
	for d := 1; d <= 9; d++ {
		dist = append(dist, model.BenfordDigit{
			Digit:    d,
			Count:    counts[d],
			Observed: float64(counts[d]) / float64(total),
			Expected: math.Log10(1 + 1/float64(d)),
		})
	}
	return dist
}

// leadingDigit returns the first significant decimal digit of v, or 0 when
// v has none (zero, NaN, Inf).
func leadingDigit(v float64) int {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	for v >= 10 {
		v /= 10
	}
	for v < 1 {
		v *= 10
	}
	return int(v)
}
