package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/htmlchop"
)

// Ensure LoggingSegmenter implements htmlchop.Segmenter.
var _ htmlchop.Segmenter = (*LoggingSegmenter)(nil)

// LoggingSegmenter wraps a Segmenter with per-document logging.
type LoggingSegmenter struct {
	next   htmlchop.Segmenter
	logger *slog.Logger
}

// NewLoggingSegmenter creates a new LoggingSegmenter.
func NewLoggingSegmenter(next htmlchop.Segmenter, logger *slog.Logger) *LoggingSegmenter {
	return &LoggingSegmenter{next: next, logger: logger}
}

// Segment delegates to the wrapped segmenter and logs the operation.
func (s *LoggingSegmenter) Segment(doc *htmlchop.Document) (sections []*htmlchop.Section, err error) {
	defer func(begin time.Time) {
		subsections := 0
		for _, section := range sections {
			subsections += len(section.Subsections)
		}
		s.logger.Info("segment",
			"input", doc.Path,
			"sections", len(sections),
			"subsections", subsections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Segment(doc)
}
