package htmlchop

import "context"

// Fragment is a self-contained HTML document derived from one boundary's
// captured content, ready to be written to disk.
type Fragment struct {
	Path string // target path relative to the output root
	HTML string // complete standalone document
}

// FragmentWriter persists fragments. Implementations create missing
// parent directories and overwrite existing files.
type FragmentWriter interface {
	WriteFragment(ctx context.Context, f *Fragment) error
}

// Rewriter adjusts asset references inside a piece of markup.
type Rewriter interface {
	// Rewrite returns the markup with stylesheet and image references
	// whose basename exists under assetRoot rewritten relative to outDir.
	// References that do not resolve are left untouched and reported in
	// missing as the original attribute values.
	Rewrite(markup, assetRoot, outDir string) (rewritten string, missing []string, err error)
}

// AssetCopier copies the asset root next to emitted fragments, for the
// copy-assets rewrite policy.
type AssetCopier interface {
	CopyAssets(srcDir, dstDir string) error
}
