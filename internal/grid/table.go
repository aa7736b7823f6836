package grid

import (
	"fmt"
	"strings"

	"github.com/auditlens-dev/auditlens/internal/model"
)

// Build slices a grid below headerRow into a NormalizedTable, using the
// header row's cells as column labels. Duplicate labels get an incrementing
// suffix (Amount, Amount_1, ...) so labels are unique within the table;
// blank header cells become positional Column_N labels.
func Build(g model.RawGrid, headerRow int) model.NormalizedTable {
	t := model.NormalizedTable{Source: g.Source, HeaderRow: headerRow}
	if headerRow >= g.NumRows() {
		return t
	}

	t.Labels = dedupeLabels(g.Cells[headerRow])

	for _, row := range g.Cells[headerRow+1:] {
		if isBlankRow(row) {
			continue
		}
		copied := make([]string, len(row))
		copy(copied, row)
		t.Rows = append(t.Rows, copied)
	}
	return t
}

func dedupeLabels(header []string) []string {
	labels := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, cell := range header {
		label := strings.TrimSpace(cell)
		if label == "" {
			label = fmt.Sprintf("Column_%d", i)
		}
		if n, dup := seen[label]; dup {
			base := label
			// Advance past suffixes already claimed by literal header
			// cells, e.g. a real "Amount_1" column next to two "Amount"s.
			for {
				label = fmt.Sprintf("%s_%d", base, n)
				n++
				if _, taken := seen[label]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[label] = 1
		labels[i] = label
	}
	return labels
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
