package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/htmlchop"
	"golang.org/x/net/html"
)

// subsectionClass is the exact class pair carried by subsection boundary
// headings.
const subsectionClass = "compendium-hr heading-anchor"

// Ensure Segmenter implements htmlchop.Segmenter at compile time.
var _ htmlchop.Segmenter = (*Segmenter)(nil)

// Segmenter locates section and subsection boundaries using CSS queries
// and sibling-level node walks.
type Segmenter struct{}

// NewSegmenter creates a new Segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Segment scans the whole tree for elements whose id matches the section
// pattern, in document order, then scans each section's subtree for
// qualifying h2 headings. Nested or duplicate section ids are processed
// independently; a nested match produces a fragment that duplicates
// ancestor content.
func (s *Segmenter) Segment(doc *htmlchop.Document) ([]*htmlchop.Section, error) {
	if doc == nil {
		return nil, htmlchop.Errorf(htmlchop.EINVALID, "nil document")
	}

	tree, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Body))
	if err != nil {
		return nil, htmlchop.Errorf(htmlchop.EINVALID, "failed to parse document body: %v", err)
	}

	var sections []*htmlchop.Section
	var walkErr error
	tree.Find(`[id^="section-"]`).Each(func(_ int, sel *goquery.Selection) {
		if walkErr != nil {
			return
		}
		id, _ := sel.Attr("id")
		name, ok := htmlchop.SectionName(id)
		if !ok {
			return
		}
		outer, err := goquery.OuterHtml(sel)
		if err != nil {
			walkErr = err
			return
		}
		section := &htmlchop.Section{
			ID:      id,
			Name:    name,
			Ordinal: len(sections) + 1,
			HTML:    outer,
		}
		if err := segmentSubsections(sel, section); err != nil {
			walkErr = err
			return
		}
		sections = append(sections, section)
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return sections, nil
}

// segmentSubsections finds qualifying headings in the section's subtree
// and captures each heading's sibling content.
func segmentSubsections(section *goquery.Selection, out *htmlchop.Section) error {
	var capErr error
	section.Find("h2").Each(func(_ int, heading *goquery.Selection) {
		if capErr != nil {
			return
		}
		node := heading.Get(0)
		if !isSubsectionBoundary(node) {
			return
		}
		ordinal := len(out.Subsections) + 1
		id, ok := heading.Attr("id")
		synthesized := !ok || id == ""
		if synthesized {
			id = htmlchop.FallbackSubsectionID(out.Name, ordinal)
		}
		content, err := captureSiblings(node)
		if err != nil {
			capErr = err
			return
		}
		out.Subsections = append(out.Subsections, &htmlchop.Subsection{
			ID:          id,
			Synthesized: synthesized,
			Ordinal:     ordinal,
			HTML:        content,
		})
	})
	return capErr
}

// captureSiblings serializes the heading and every following sibling, text
// and element nodes alike, stopping strictly before the next qualifying
// heading or at the end of the parent's content. Only sibling-level nodes
// are scanned; capture never recurses into nested structures. Whitespace-
// only text siblings are preserved verbatim.
func captureSiblings(heading *html.Node) (string, error) {
	var b strings.Builder
	for n := heading; n != nil; n = n.NextSibling {
		if n != heading && isSubsectionBoundary(n) {
			break
		}
		switch n.Type {
		case html.TextNode, html.ElementNode:
			if err := html.Render(&b, n); err != nil {
				return "", err
			}
		}
	}
	return b.String(), nil
}

// isSubsectionBoundary reports whether n is an h2 element carrying exactly
// the qualifying class pair.
func isSubsectionBoundary(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode || n.Data != "h2" {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == "class" {
			return strings.Join(strings.Fields(a.Val), " ") == subsectionClass
		}
	}
	return false
}
