package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
)

// CopyAssets copies srcDir recursively to dstDir/<basename of srcDir>
// under the base directory, so relative references next to an emitted
// fragment keep resolving without rewriting. Existing files are
// overwritten.
func (w *Writer) CopyAssets(srcDir, dstDir string) error {
	dst := filepath.Join(w.baseDir, filepath.FromSlash(dstDir), filepath.Base(filepath.Clean(srcDir)))
	return copyDir(srcDir, dst)
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
}
