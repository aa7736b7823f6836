package grid

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/auditlens-dev/auditlens/internal/model"
)

// columnGap splits an OCR-reconstructed line on runs of two or more
// whitespace characters, the shape the OCR collaborator emits for detected
// column gaps.
var columnGap = regexp.MustCompile(`\s{2,}`)

// TextReader captures plain-text statement dumps, one line per row.
type TextReader struct{}

// Extensions returns the extensions handled by this reader.
func (p *TextReader) Extensions() []string { return []string{".txt"} }

// Read splits text lines into cells on column gaps.
func (p *TextReader) Read(r io.Reader, source string) (model.RawGrid, error) {
	var rows [][]string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, columnGap.Split(line, -1))
	}
	if err := scanner.Err(); err != nil {
		return model.RawGrid{}, fmt.Errorf("reading text: %w", err)
	}
	return model.NewRawGrid(source, rows), nil
}
