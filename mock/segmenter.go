package mock

import "github.com/fwojciec/htmlchop"

var _ htmlchop.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of htmlchop.Segmenter.
type Segmenter struct {
	SegmentFn func(doc *htmlchop.Document) ([]*htmlchop.Section, error)
}

func (s *Segmenter) Segment(doc *htmlchop.Document) ([]*htmlchop.Section, error) {
	return s.SegmentFn(doc)
}
