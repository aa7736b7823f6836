package grid

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/auditlens-dev/auditlens/internal/model"
)

// Reader converts one input format into a RawGrid.
type Reader interface {
	Read(r io.Reader, source string) (model.RawGrid, error)
	// Extensions returns the lowercase file extensions this reader handles.
	Extensions() []string
}

// Registry holds readers keyed by file extension.
type Registry struct {
	readers map[string]Reader
}

// FileInfo describes a statement file found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate extension.
func (r *Registry) Register(reader Reader) {
	for _, ext := range reader.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.readers[key]; ok {
			panic("duplicate reader extension: " + key)
		}
		r.readers[key] = reader
	}
}

// ForFile returns the reader for a file path's extension, or nil.
func (r *Registry) ForFile(path string) Reader {
	return r.readers[strings.ToLower(filepath.Ext(path))]
}

// ReadFile opens a file and captures its grid with the matching reader.
// An unsupported extension is an error the caller records as a per-file
// failure; it never aborts a batch.
func (r *Registry) ReadFile(path string) (model.RawGrid, error) {
	reader := r.ForFile(path)
	if reader == nil {
		return model.RawGrid{}, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return model.RawGrid{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	g, err := reader.Read(f, filepath.Base(path))
	if err != nil {
		return model.RawGrid{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return g, nil
}

// DefaultRegistry returns a registry with all built-in readers. The header
// keywords steer sheet selection for workbook formats.
func DefaultRegistry(headerKeywords []string) *Registry {
	r := NewRegistry()
	r.Register(&CSVReader{})
	r.Register(&XLSXReader{HeaderKeywords: headerKeywords})
	r.Register(&TextReader{})
	return r
}

// Scan returns supported statement files in a directory, in name order.
func Scan(dir string, registry *Registry) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading dir %s: %w", dir, err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if registry.ForFile(e.Name()) == nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}
