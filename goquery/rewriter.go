package goquery

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/htmlchop"
)

// Ensure Rewriter implements htmlchop.Rewriter at compile time.
var _ htmlchop.Rewriter = (*Rewriter)(nil)

// Rewriter rewrites stylesheet and image references against an asset root.
type Rewriter struct{}

// NewRewriter creates a new Rewriter.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// assetTargets are the (selector, attribute) pairs subject to rewriting.
var assetTargets = []struct {
	selector string
	attr     string
}{
	{`link[rel="stylesheet"]`, "href"},
	{"img", "src"},
}

// Rewrite parses markup, rewrites every stylesheet href and image src
// whose basename exists under assetRoot to a forward-slash path relative
// to outDir, and returns the modified markup. Unresolved references are
// left untouched and returned in missing, in document order.
//
// The tolerant parser sorts fragment nodes into head and body; the result
// is the concatenation of both, so head fragments (link, meta, title) and
// body fragments both round-trip. Rewriting is idempotent: a reference
// already pointing at the asset root resolves to the same path again.
func (r *Rewriter) Rewrite(markup, assetRoot, outDir string) (string, []string, error) {
	if assetRoot == "" {
		return markup, nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", nil, htmlchop.Errorf(htmlchop.EINVALID, "failed to parse fragment: %v", err)
	}

	// Anchor both directories at the working directory so an absolute
	// asset root relates to a relative output directory and vice versa.
	absRoot, err := filepath.Abs(assetRoot)
	if err != nil {
		return "", nil, htmlchop.Errorf(htmlchop.EINVALID, "failed to resolve asset root %q: %v", assetRoot, err)
	}
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return "", nil, htmlchop.Errorf(htmlchop.EINVALID, "failed to resolve output directory %q: %v", outDir, err)
	}

	var missing []string
	for _, target := range assetTargets {
		doc.Find(target.selector).Each(func(_ int, sel *goquery.Selection) {
			ref, ok := sel.Attr(target.attr)
			if !ok || ref == "" {
				return
			}
			assetPath := filepath.Join(absRoot, refBasename(ref))
			if _, err := os.Stat(assetPath); err != nil {
				missing = append(missing, ref)
				return
			}
			rel, err := filepath.Rel(absOut, assetPath)
			if err != nil {
				// Unrelatable paths (e.g. different volumes) are treated
				// like missing assets: reference left untouched.
				missing = append(missing, ref)
				return
			}
			sel.SetAttr(target.attr, filepath.ToSlash(rel))
		})
	}

	headHTML, err := doc.Find("head").Html()
	if err != nil {
		return "", nil, htmlchop.Errorf(htmlchop.EINTERNAL, "failed to serialize fragment head: %v", err)
	}
	bodyHTML, err := doc.Find("body").Html()
	if err != nil {
		return "", nil, htmlchop.Errorf(htmlchop.EINTERNAL, "failed to serialize fragment body: %v", err)
	}

	return headHTML + bodyHTML, missing, nil
}

// refBasename extracts the file name from a reference, ignoring any query
// string or fragment so URLs like css/app.css?v=2 still resolve.
func refBasename(ref string) string {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	return path.Base(ref)
}
