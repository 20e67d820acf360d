// Package fs provides filesystem persistence for emitted fragments.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/htmlchop"
)

// Ensure Writer implements the persistence interfaces at compile time.
var (
	_ htmlchop.FragmentWriter = (*Writer)(nil)
	_ htmlchop.AssetCopier    = (*Writer)(nil)
)

// Writer writes fragments as HTML files under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer rooted at baseDir. The directory is created
// lazily on the first write, so a run that emits nothing leaves no trace.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// BaseDir returns the output root directory.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// WriteFragment writes the fragment under the base directory, creating
// parent directories and overwriting any existing file.
func (w *Writer) WriteFragment(ctx context.Context, f *htmlchop.Fragment) error {
	if f == nil || f.Path == "" {
		return htmlchop.Errorf(htmlchop.EINVALID, "fragment path required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(f.Path))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(f.HTML), 0644)
}
