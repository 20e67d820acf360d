package split_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/htmlchop"
	"github.com/fwojciec/htmlchop/fs"
	"github.com/fwojciec/htmlchop/goquery"
	"github.com/fwojciec/htmlchop/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const compendiumInput = `<!DOCTYPE html>
<html>
<head><title>Compendium</title><link rel="stylesheet" href="css/style.css"></head>
<body>
<div id="section-intro">lead
<h2 id="h1" class="compendium-hr heading-anchor">A</h2>text1<h2 id="h2" class="compendium-hr heading-anchor">B</h2>text2</div>
<div id="section-outro"><p>closing notes</p></div>
</body>
</html>`

// newSplitter wires the real loader, segmenter, rewriter and writer.
func newSplitter(outDir string, cfg htmlchop.Config) *split.Splitter {
	return &split.Splitter{
		Loader:    goquery.NewLoader(),
		Segmenter: goquery.NewSegmenter(),
		Rewriter:  goquery.NewRewriter(),
		Writer:    fs.NewWriter(outDir),
		Assets:    fs.NewWriter(outDir),
		Config:    cfg,
	}
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSplitter_EndToEnd(t *testing.T) {
	t.Parallel()

	t.Run("splits the compendium fixture into the documented layout", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFixture(t, dir, "compendium.html", compendiumInput)
		assetRoot := filepath.Join(dir, "assets")
		writeFixture(t, assetRoot, "style.css", "body{}")
		outDir := filepath.Join(dir, "out")

		s := newSplitter(outDir, htmlchop.DefaultConfig())
		res, err := s.Run(context.Background(), input, outDir, assetRoot)

		require.NoError(t, err)
		assert.Equal(t, 2, res.Sections)
		assert.Equal(t, 2, res.Subsections)
		assert.Equal(t, 4, res.FilesWritten)
		assert.Empty(t, res.Warnings)

		intro, err := os.ReadFile(filepath.Join(outDir, "001_intro", "intro.html"))
		require.NoError(t, err)
		assert.Contains(t, string(intro), "text1")
		assert.Contains(t, string(intro), "text2")
		assert.NotContains(t, string(intro), "closing notes")

		sub1, err := os.ReadFile(filepath.Join(outDir, "001_intro", "subsections", "001_h1.html"))
		require.NoError(t, err)
		assert.Contains(t, string(sub1), ">A</h2>text1")
		assert.NotContains(t, string(sub1), "text2")

		sub2, err := os.ReadFile(filepath.Join(outDir, "001_intro", "subsections", "002_h2.html"))
		require.NoError(t, err)
		assert.Contains(t, string(sub2), ">B</h2>text2")
		assert.NotContains(t, string(sub2), "text1")

		outro, err := os.ReadFile(filepath.Join(outDir, "002_outro", "outro.html"))
		require.NoError(t, err)
		assert.Contains(t, string(outro), "closing notes")
		_, err = os.Stat(filepath.Join(outDir, "002_outro", "subsections"))
		assert.True(t, os.IsNotExist(err), "section without headings has no subsections dir")
	})

	t.Run("rewritten stylesheet reference resolves from each fragment", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFixture(t, dir, "compendium.html", compendiumInput)
		assetRoot := filepath.Join(dir, "assets")
		writeFixture(t, assetRoot, "style.css", "body{}")
		outDir := filepath.Join(dir, "out")

		s := newSplitter(outDir, htmlchop.DefaultConfig())
		_, err := s.Run(context.Background(), input, outDir, assetRoot)
		require.NoError(t, err)

		// Section file sits one level below the output root; subsections
		// sit two levels below. Each head must point at the same file.
		assert.Contains(t, readFile(t, outDir, "001_intro", "intro.html"),
			`href="../../assets/style.css"`)
		assert.Contains(t, readFile(t, outDir, "001_intro", "subsections", "001_h1.html"),
			`href="../../../assets/style.css"`)

		resolved := filepath.Join(outDir, "001_intro", "..", "..", "assets", "style.css")
		_, err = os.Stat(resolved)
		assert.NoError(t, err)
	})

	t.Run("two runs produce byte-identical output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFixture(t, dir, "compendium.html", compendiumInput)
		assetRoot := filepath.Join(dir, "assets")
		writeFixture(t, assetRoot, "style.css", "body{}")
		outDir := filepath.Join(dir, "out")

		s := newSplitter(outDir, htmlchop.DefaultConfig())
		_, err := s.Run(context.Background(), input, outDir, assetRoot)
		require.NoError(t, err)
		first := readFile(t, outDir, "001_intro", "subsections", "001_h1.html")

		_, err = s.Run(context.Background(), input, outDir, assetRoot)
		require.NoError(t, err)
		second := readFile(t, outDir, "001_intro", "subsections", "001_h1.html")

		assert.Equal(t, first, second)
	})

	t.Run("missing asset leaves the reference and warns once", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFixture(t, dir, "one.html",
			`<html><head></head><body><div id="section-s"><img src="img/ghost.png"></div></body></html>`)
		assetRoot := filepath.Join(dir, "assets")
		require.NoError(t, os.MkdirAll(assetRoot, 0755))
		outDir := filepath.Join(dir, "out")

		s := newSplitter(outDir, htmlchop.DefaultConfig())
		res, err := s.Run(context.Background(), input, outDir, assetRoot)

		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, htmlchop.WarnMissingAsset, res.Warnings[0].Code)
		assert.Contains(t, readFile(t, outDir, "001_s", "s.html"), `src="img/ghost.png"`)
	})

	t.Run("no sections creates no directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFixture(t, dir, "plain.html", `<html><body><p>nothing</p></body></html>`)
		outDir := filepath.Join(dir, "out")

		s := newSplitter(outDir, htmlchop.DefaultConfig())
		res, err := s.Run(context.Background(), input, outDir, "")

		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, htmlchop.WarnNoSections, res.Warnings[0].Code)
		_, err = os.Stat(outDir)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("copy-assets policy co-locates the asset root", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFixture(t, dir, "one.html",
			`<html><head><link rel="stylesheet" href="assets/style.css"></head><body><div id="section-s">x</div></body></html>`)
		assetRoot := filepath.Join(dir, "assets")
		writeFixture(t, assetRoot, "style.css", "body{}")
		outDir := filepath.Join(dir, "out")

		cfg := htmlchop.DefaultConfig()
		cfg.RewritePolicy = htmlchop.CopyAssets
		s := newSplitter(outDir, cfg)
		res, err := s.Run(context.Background(), input, outDir, assetRoot)

		require.NoError(t, err)
		assert.Empty(t, res.Warnings)
		// Original reference is untouched and resolves against the copy.
		assert.Contains(t, readFile(t, outDir, "001_s", "s.html"), `href="assets/style.css"`)
		assert.Equal(t, "body{}", readFile(t, outDir, "001_s", "assets", "style.css"))
	})
}

func readFile(t *testing.T, parts ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(parts...))
	require.NoError(t, err)
	return string(data)
}
