package mock

import "github.com/fwojciec/htmlchop"

var _ htmlchop.Rewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of htmlchop.Rewriter.
type Rewriter struct {
	RewriteFn func(markup, assetRoot, outDir string) (string, []string, error)
}

func (r *Rewriter) Rewrite(markup, assetRoot, outDir string) (string, []string, error) {
	return r.RewriteFn(markup, assetRoot, outDir)
}
