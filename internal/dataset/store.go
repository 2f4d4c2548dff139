package dataset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"coplot/internal/figure"
)

// FileStore loads and saves tables beneath a root directory, dispatching on
// the file extension. Absolute paths bypass the root.
type FileStore struct {
	root string
}

// NewFileStore returns a store rooted at dir. An empty root leaves paths
// untouched.
func NewFileStore(dir string) *FileStore { return &FileStore{root: dir} }

// Load reads the table stored at path (.csv or .json).
func (s *FileStore) Load(path string) (figure.Table, error) {
	full := s.resolve(path)

	f, err := os.Open(full)
	if err != nil {
		return figure.Table{}, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(full), filepath.Ext(full))
	switch ext := strings.ToLower(filepath.Ext(full)); ext {
	case ".csv":
		return ReadCSV(f, name)
	case ".json":
		return ReadJSON(f, name)
	default:
		return figure.Table{}, fmt.Errorf("load table %s: unsupported extension %q", path, ext)
	}
}

// Save writes the table to path in the format named by its extension.
func (s *FileStore) Save(path string, t figure.Table) error {
	full := s.resolve(path)

	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(full)); ext {
	case ".csv":
		if err := WriteCSV(&buf, t); err != nil {
			return fmt.Errorf("encode table csv: %w", err)
		}
	case ".json":
		if err := WriteJSON(&buf, t); err != nil {
			return fmt.Errorf("encode table json: %w", err)
		}
	default:
		return fmt.Errorf("save table %s: unsupported extension %q", path, ext)
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return writeFile(full, buf.Bytes(), 0o644)
}

func (s *FileStore) resolve(path string) string {
	if s.root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.root, path)
}
