// Package output writes formatted documents into a per-invocation
// timestamped directory.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spiffcs/ghdump/internal/model"
)

// Writer writes one text file per processed item into a single directory
// created at construction time.
type Writer struct {
	// Dir is the resolved output directory for this invocation.
	Dir string

	prefix string
}

// DirName returns the output directory name for an invocation starting at
// the given wall-clock time.
func DirName(start time.Time) string {
	return start.Format("output_2006_01_02_150405")
}

// NewWriter creates the timestamped output directory (under baseDir when
// set) and returns a writer bound to it.
func NewWriter(baseDir, prefix string, start time.Time) (*Writer, error) {
	dir := DirName(start)
	if baseDir != "" {
		dir = filepath.Join(baseDir, dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &Writer{Dir: dir, prefix: prefix}, nil
}

// Filename builds the per-item file name: <prefix>_<type>_<identifier>.txt.
func (w *Writer) Filename(kind model.ItemKind, id string) string {
	return fmt.Sprintf("%s_%s_%s.txt", w.prefix, kind, id)
}

// Write stores one formatted document verbatim and returns its full path.
func (w *Writer) Write(kind model.ItemKind, id, doc string) (string, error) {
	path := filepath.Join(w.Dir, w.Filename(kind, id))
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
