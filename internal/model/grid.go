package model

// RawGrid is the cell grid captured from one uploaded source (spreadsheet,
// CSV, or OCR-reconstructed lines). It is rectangular: short rows are padded
// with empty cells at capture time, and the grid is never mutated afterwards.
type RawGrid struct {
	Source string
	Cells  [][]string
}

// NewRawGrid captures a grid, padding jagged rows to the longest row's width.
func NewRawGrid(source string, rows [][]string) RawGrid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		cells[i] = padded
	}
	return RawGrid{Source: source, Cells: cells}
}

// NumRows returns the number of rows in the grid.
func (g RawGrid) NumRows() int { return len(g.Cells) }

// NumCols returns the grid width (zero for an empty grid).
func (g RawGrid) NumCols() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// HeaderCandidate is a row hypothesis produced while hunting for the true
// column-header row: the row index plus the count of lexicon keywords found
// across its cells. Higher score is a stronger hypothesis.
type HeaderCandidate struct {
	Row   int
	Score int
}
