package grid

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/auditlens-dev/auditlens/internal/model"
)

// xlsxSheetWindow is how many leading rows of each sheet are inspected when
// hunting for the sheet that carries the statement table.
const xlsxSheetWindow = 10

// XLSXReader captures Excel workbooks. Statements rarely live on a
// predictable sheet, so the reader picks the first sheet whose leading rows
// contain at least two header keywords, falling back to the sheet with the
// most rows.
type XLSXReader struct {
	HeaderKeywords []string
}

// Extensions returns the extensions handled by this reader.
func (p *XLSXReader) Extensions() []string { return []string{".xlsx", ".xlsm"} }

// Read parses a workbook into a RawGrid.
func (p *XLSXReader) Read(r io.Reader, source string) (model.RawGrid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return model.RawGrid{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	var fallback [][]string
	fallbackRows := -1

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}
		if p.sheetLooksLikeStatement(rows) {
			slog.Debug("selected workbook sheet",
				slog.String("source", source),
				slog.String("sheet", name))
			return model.NewRawGrid(source, rows), nil
		}
		if len(rows) > fallbackRows {
			fallback = rows
			fallbackRows = len(rows)
		}
	}

	if fallback == nil {
		return model.RawGrid{}, fmt.Errorf("workbook has no readable sheet")
	}
	slog.Debug("no sheet matched header lexicon, using largest sheet",
		slog.String("source", source))
	return model.NewRawGrid(source, fallback), nil
}

func (p *XLSXReader) sheetLooksLikeStatement(rows [][]string) bool {
	limit := len(rows)
	if limit > xlsxSheetWindow {
		limit = xlsxSheetWindow
	}
	for _, row := range rows[:limit] {
		text := strings.ToLower(strings.Join(row, " "))
		matches := 0
		for _, kw := range p.HeaderKeywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				matches++
			}
		}
		if matches >= 2 {
			return true
		}
	}
	return false
}
