package grid

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/auditlens-dev/auditlens/internal/model"
)

// CSVReader captures delimited text files. Field counts vary freely because
// preamble rows rarely match the table width; short rows are padded at grid
// capture.
type CSVReader struct{}

// Extensions returns the extensions handled by this reader.
func (p *CSVReader) Extensions() []string { return []string{".csv"} }

// Read parses CSV content into a RawGrid.
func (p *CSVReader) Read(r io.Reader, source string) (model.RawGrid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return model.RawGrid{}, fmt.Errorf("reading CSV: %w", err)
	}
	return model.NewRawGrid(source, records), nil
}
