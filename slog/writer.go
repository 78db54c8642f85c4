package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobscout"
)

// Ensure LoggingWriter implements jobscout.ListingWriter.
var _ jobscout.ListingWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a ListingWriter with debug logging.
type LoggingWriter struct {
	next   jobscout.ListingWriter
	path   string
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter. The path is only used for
// log output.
func NewLoggingWriter(next jobscout.ListingWriter, path string, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, path: path, logger: logger}
}

// WriteListings delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteListings(ctx context.Context, listings []jobscout.Listing) (n int, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write listings",
			"path", w.path,
			"rows", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteListings(ctx, listings)
}
