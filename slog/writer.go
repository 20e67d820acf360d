// Package slog provides logging decorators for htmlchop interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlchop"
)

// Ensure LoggingFragmentWriter implements htmlchop.FragmentWriter.
var _ htmlchop.FragmentWriter = (*LoggingFragmentWriter)(nil)

// LoggingFragmentWriter wraps a FragmentWriter with per-write logging.
type LoggingFragmentWriter struct {
	next   htmlchop.FragmentWriter
	logger *slog.Logger
}

// NewLoggingFragmentWriter creates a new LoggingFragmentWriter.
func NewLoggingFragmentWriter(next htmlchop.FragmentWriter, logger *slog.Logger) *LoggingFragmentWriter {
	return &LoggingFragmentWriter{next: next, logger: logger}
}

// WriteFragment delegates to the wrapped writer and logs the operation.
func (w *LoggingFragmentWriter) WriteFragment(ctx context.Context, f *htmlchop.Fragment) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write fragment",
			"path", f.Path,
			"bytes", len(f.HTML),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteFragment(ctx, f)
}
