package grid

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVReader_VariableFieldCounts(t *testing.T) {
	input := "Trial Balance\nParticulars,Debit,Credit\nCash,5000,\n"
	g, err := (&CSVReader{}).Read(strings.NewReader(input), "tb.csv")
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumRows())
	assert.Equal(t, 3, g.NumCols())
	// Short preamble row is padded to the table width.
	assert.Equal(t, []string{"Trial Balance", "", ""}, g.Cells[0])
}

func TestTextReader_SplitsOnColumnGaps(t *testing.T) {
	input := "Particulars      Debit    Credit\nCash in Hand     5000\n\nSundry Creditors          5000\n"
	g, err := (&TextReader{}).Read(strings.NewReader(input), "scan.txt")
	require.NoError(t, err)

	require.Equal(t, 3, g.NumRows()) // blank line dropped
	assert.Equal(t, []string{"Particulars", "Debit", "Credit"}, g.Cells[0])
	assert.Equal(t, []string{"Cash in Hand", "5000", ""}, g.Cells[1])
	assert.Equal(t, []string{"Sundry Creditors", "5000", ""}, g.Cells[2])
}

func TestTextReader_SingleSpacesStayInOneCell(t *testing.T) {
	g, err := (&TextReader{}).Read(strings.NewReader("Cash in Hand  5000\n"), "t.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cash in Hand", "5000"}, g.Cells[0])
}

func TestRegistry_ForFile(t *testing.T) {
	r := DefaultRegistry([]string{"particulars", "debit"})

	assert.NotNil(t, r.ForFile("statement.csv"))
	assert.NotNil(t, r.ForFile("Statement.XLSX"))
	assert.NotNil(t, r.ForFile("scan.txt"))
	assert.Nil(t, r.ForFile("image.png"))
}

func TestReadFile_UnsupportedExtension(t *testing.T) {
	r := DefaultRegistry(nil)
	_, err := r.ReadFile("statement.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestScan_FiltersUnsupported(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.txt", "c.png", "d.CSV"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	files, err := Scan(dir, DefaultRegistry(nil))
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "a.csv", files[0].Name)
}
