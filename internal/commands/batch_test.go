package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditlens-dev/auditlens/internal/grid"
)

func TestExpandArgs_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tb.csv"), []byte("a,b\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.png"), []byte("x"), 0o644))

	files, err := expandArgs([]string{dir}, grid.DefaultRegistry(nil))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "tb.csv", files[0].Name)
	assert.Equal(t, int64(4), files[0].Size)
}

func TestExpandArgs_ExplicitFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o644))

	files, err := expandArgs([]string{path, "missing.csv"}, grid.DefaultRegistry(nil))
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "ledger.csv", files[0].Name)
	assert.Equal(t, int64(4), files[0].Size)

	// Missing files stay queued so the batch records a per-file failure.
	assert.Equal(t, "missing.csv", files[1].Name)
	assert.Zero(t, files[1].Size)
}
