// Package numeric converts accounting-formatted cell text into exact signed
// amounts. Parsing is lossy but total: malformed cells resolve to zero so a
// single bad cell can never abort a bulk import.
package numeric

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyMarks are stripped before parsing. "Rs." must precede "Rs" so the
// dotted form is removed whole.
var currencyMarks = strings.NewReplacer("₹", "", "$", "", "Rs.", "", "Rs", "")

// numberRun matches one numeric run inside free text, including an optional
// leading minus and accounting-style parentheses.
var numberRun = regexp.MustCompile(`\(?-?\d[\d,]*(?:\.\d+)?\)?`)

// Parse converts a whole cell to a signed amount. Empty input, or input with
// no parseable number, yields zero. Parenthesized values are negative.
func Parse(cell string) decimal.Decimal {
	s := strings.TrimSpace(cell)
	if s == "" {
		return decimal.Zero
	}

	s = currencyMarks.Replace(s)
	s = strings.TrimSpace(s)

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) > 1 {
		neg = true
		s = s[1 : len(s)-1]
	}

	cleaned := cleanNumber(s)
	if cleaned == "" || cleaned == "-" || cleaned == "." || cleaned == "-." {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	if neg {
		d = d.Neg()
	}
	return d
}

// ParseFirst parses the first numeric run found in the cell. Useful when a
// label and its value share one cell and the value trails the keyword.
func ParseFirst(cell string) decimal.Decimal {
	runs := numberRun.FindAllString(currencyMarks.Replace(cell), -1)
	if len(runs) == 0 {
		return decimal.Zero
	}
	return Parse(runs[0])
}

// ParseLast parses the last numeric run found in the cell.
func ParseLast(cell string) decimal.Decimal {
	runs := numberRun.FindAllString(currencyMarks.Replace(cell), -1)
	if len(runs) == 0 {
		return decimal.Zero
	}
	return Parse(runs[len(runs)-1])
}

// Float returns the float64 view of a parsed cell, for statistics that do
// not need exact arithmetic.
func Float(cell string) float64 {
	return Parse(cell).InexactFloat64()
}

// cleanNumber keeps digits, a single decimal point, and a leading minus.
func cleanNumber(s string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
