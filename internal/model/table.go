package model

// ColumnRole is the semantic role inferred for one column of a table.
type ColumnRole string

const (
	RoleDescription ColumnRole = "description"
	RoleDebit       ColumnRole = "debit"
	RoleCredit      ColumnRole = "credit"
	RoleAmount      ColumnRole = "amount"
	RoleDate        ColumnRole = "date"
	RoleLatitude    ColumnRole = "latitude"
	RoleLongitude   ColumnRole = "longitude"
	RoleHeight      ColumnRole = "height"
	RoleUnassigned  ColumnRole = "unassigned"
)

// NormalizedTable is a RawGrid sliced below its chosen header row, with the
// header cells promoted to column labels. Labels are unique within a table:
// duplicates are disambiguated with an incrementing suffix at build time.
type NormalizedTable struct {
	Source    string
	HeaderRow int // index of the header row in the source grid
	Labels    []string
	Rows      [][]string
}

// NumRows returns the number of data rows.
func (t NormalizedTable) NumRows() int { return len(t.Rows) }

// ColumnIndex returns the position of a label, or -1 if absent.
func (t NormalizedTable) ColumnIndex(label string) int {
	for i, l := range t.Labels {
		if l == label {
			return i
		}
	}
	return -1
}

// Column returns all cell values for a label, in row order.
func (t NormalizedTable) Column(label string) ([]string, bool) {
	idx := t.ColumnIndex(label)
	if idx < 0 {
		return nil, false
	}
	col := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			col[i] = row[idx]
		}
	}
	return col, true
}

// ColumnMap records the role assignment for every column of a table. Debit
// and Credit may each map to several columns (statements split by
// sub-ledger); every other role maps to at most one column.
type ColumnMap struct {
	Description int // always valid; defaults to column 0
	Debit       []int
	Credit      []int
	Amount      int // -1 if absent
	Date        int
	Latitude    int
	Longitude   int
	Height      int
	Roles       []ColumnRole // role per column position
}

// HasNumericColumns reports whether the table has any column usable for
// amounts. A table with none is unusable for reconciliation.
func (m ColumnMap) HasNumericColumns() bool {
	return len(m.Debit) > 0 || len(m.Credit) > 0 || m.Amount >= 0
}
