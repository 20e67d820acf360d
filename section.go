package htmlchop

import (
	"fmt"
	"regexp"
)

// SectionIDPattern matches element ids that mark a section boundary.
// The capture group is the derived output name.
var SectionIDPattern = regexp.MustCompile(`^section-([A-Za-z0-9-]+)$`)

// SectionName extracts the output name from a section boundary id.
// Returns false when the id does not mark a section boundary.
func SectionName(id string) (string, bool) {
	m := SectionIDPattern.FindStringSubmatch(id)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Section is a region of the document rooted at an element whose id
// matches SectionIDPattern.
type Section struct {
	ID          string // full element id, e.g. "section-intro"
	Name        string // id with the "section-" prefix removed
	Ordinal     int    // 1-based position in document order
	HTML        string // serialized subtree rooted at the boundary element
	Subsections []*Subsection
}

// Subsection is a region within a section delimited by a qualifying <h2>
// heading and the next such heading among its siblings.
type Subsection struct {
	ID          string // heading id, or a synthesized fallback
	Synthesized bool   // true when the heading carried no id attribute
	Ordinal     int    // 1-based position within the parent section
	HTML        string // the heading plus captured sibling content
}

// FallbackSubsectionID returns the id used when a subsection heading
// carries no id attribute. It depends only on the section name and the
// subsection's ordinal so repeated runs produce identical output.
func FallbackSubsectionID(sectionName string, ordinal int) string {
	return fmt.Sprintf("subsection-%s-%d", sectionName, ordinal)
}

// Segmenter locates section and subsection boundaries in a document.
type Segmenter interface {
	// Segment returns the document's sections in document order, each
	// with its subsections in document order. An input with no section
	// boundaries yields an empty slice and no error.
	Segment(doc *Document) ([]*Section, error)
}
