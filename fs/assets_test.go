package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/htmlchop/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_CopyAssets(t *testing.T) {
	t.Parallel()

	t.Run("copies the asset root recursively next to a fragment directory", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(src, "fonts"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(src, "style.css"), []byte("body{}"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(src, "fonts", "a.woff"), []byte("font"), 0644))

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		err := w.CopyAssets(src, "001_intro")

		require.NoError(t, err)
		dst := filepath.Join(baseDir, "001_intro", filepath.Base(src))
		content, err := os.ReadFile(filepath.Join(dst, "style.css"))
		require.NoError(t, err)
		assert.Equal(t, "body{}", string(content))
		_, err = os.Stat(filepath.Join(dst, "fonts", "a.woff"))
		assert.NoError(t, err)
	})

	t.Run("fails when the source does not exist", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.CopyAssets(filepath.Join(t.TempDir(), "missing"), "out")

		assert.Error(t, err)
	})
}
