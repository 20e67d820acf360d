package goquery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/htmlchop"
	"github.com/fwojciec/htmlchop/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("parses head and body", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, `<!DOCTYPE html>
<html>
<head><title>Compendium</title><link rel="stylesheet" href="style.css"></head>
<body><div id="section-intro"><p>hello</p></div></body>
</html>`)

		l := goquery.NewLoader()
		doc, err := l.Load(path)

		require.NoError(t, err)
		assert.Equal(t, path, doc.Path)
		assert.Contains(t, doc.Head, "<title>Compendium</title>")
		assert.Contains(t, doc.Head, `href="style.css"`)
		assert.Contains(t, doc.Body, `<div id="section-intro"><p>hello</p></div>`)
	})

	t.Run("missing head yields empty string", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, `<body><p>no head here</p></body>`)

		l := goquery.NewLoader()
		doc, err := l.Load(path)

		require.NoError(t, err)
		assert.Empty(t, doc.Head)
		assert.Contains(t, doc.Body, "<p>no head here</p>")
	})

	t.Run("missing file returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		l := goquery.NewLoader()
		_, err := l.Load(filepath.Join(t.TempDir(), "nope.html"))

		require.Error(t, err)
		assert.Equal(t, htmlchop.ENOTFOUND, htmlchop.ErrorCode(err))
	})

	t.Run("malformed markup yields best-effort tree", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, `<div><p>unclosed<div id="section-x">still here`)

		l := goquery.NewLoader()
		doc, err := l.Load(path)

		require.NoError(t, err)
		assert.Contains(t, doc.Body, "still here")
	})
}
