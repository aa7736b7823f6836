// Package export renders pipeline results for collaborators: delimited
// UTF-8 text for downloads and a plain-text summary for the terminal.
// Numeric values are written with full precision and no thousands
// separators.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/auditlens-dev/auditlens/internal/model"
)

// WriteTable writes a normalized table: header row = column labels, one data
// row per record.
func WriteTable(w io.Writer, t model.NormalizedTable) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(t.Labels); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range t.Rows {
		record := make([]string, len(t.Labels))
		copy(record, row)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// WriteRows writes classified rows with their derived numeric sides.
func WriteRows(w io.Writer, rows []model.ClassifiedRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"row", "description", "category", "debit", "credit", "net"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Index),
			row.Description,
			string(row.Category),
			row.Debit.String(),
			row.Credit.String(),
			row.Net().String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", row.Index, err)
		}
	}
	return cw.Error()
}

// WriteAnomalies writes forensic flags, one per row.
func WriteAnomalies(w io.Writer, flags []model.AnomalyFlag) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"kind", "rows", "zscore", "difference", "detail"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, flag := range flags {
		record := []string{
			string(flag.Kind),
			joinInts(flag.Rows),
			formatFloat(flag.ZScore),
			flag.Difference.String(),
			flag.Detail,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing flag %d: %w", i, err)
		}
	}
	return cw.Error()
}

// WriteVariance writes cross-period variance rows. An undefined percent
// (prior value zero) is written as an empty field, never as a bogus number.
func WriteVariance(w io.Writer, rows []model.VarianceRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"category", "prior", "current", "absolute", "percent"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		percent := ""
		if !math.IsNaN(row.Percent) {
			percent = strconv.FormatFloat(row.Percent, 'f', -1, 64)
		}
		record := []string{
			string(row.Category),
			row.Prior.String(),
			row.Current.String(),
			row.Absolute.String(),
			percent,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// WriteBenford writes the leading-digit distribution.
func WriteBenford(w io.Writer, dist []model.BenfordDigit) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"digit", "count", "observed", "expected"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, d := range dist {
		record := []string{
			strconv.Itoa(d.Digit),
			strconv.Itoa(d.Count),
			strconv.FormatFloat(d.Observed, 'f', -1, 64),
			strconv.FormatFloat(d.Expected, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing digit %d: %w", d.Digit, err)
		}
	}
	return cw.Error()
}

func joinInts(values []int) string {
	s := ""
	for i, v := range values {
		if i > 0 {
			s += ";"
		}
		s += strconv.Itoa(v)
	}
	return s
}

func formatFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
