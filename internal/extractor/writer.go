package extractor

import (
	"fmt"
	"os"
	"path/filepath"
)

var _ Writer = (*DirWriter)(nil)

// DirWriter writes documents into a directory tree rooted at Root,
// creating subdirectories as needed.
type DirWriter struct {
	Root string
}

// NewDirWriter constructs a DirWriter rooted at dir.
func NewDirWriter(dir string) *DirWriter { return &DirWriter{Root: dir} }

// Write persists data at relPath under the root.
func (w *DirWriter) Write(relPath string, data []byte) error {
	path := filepath.Join(w.Root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory for %s: %w", relPath, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", relPath, err)
	}
	return nil
}
