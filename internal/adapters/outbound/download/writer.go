// Package download persists exported documents to the local disk.
package download

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/facturo/facturo/internal/domain"
)

// Writer is a file-based implementation of domain.ArtifactWriter.
// Exports land in a single directory, creating it on first use.
type Writer struct {
	dir string
}

var _ domain.ArtifactWriter = (*Writer)(nil)

// NewWriter creates a writer targeting dir; an empty dir means the
// current working directory.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir}
}

// Save writes data under the sanitized name and returns the absolute
// path. An existing file with the same name is overwritten, matching
// how a re-export is expected to refresh the document.
func (w *Writer) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	path := filepath.Join(w.dir, sanitizeName(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// sanitizeName keeps file names to a safe character set so values
// coming from user-entered invoice numbers cannot escape the
// download directory.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "download"
	}
	return b.String()
}
