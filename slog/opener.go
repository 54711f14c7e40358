package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/instantdoc"
)

// Ensure LoggingOpener implements instantdoc.Opener.
var _ instantdoc.Opener = (*LoggingOpener)(nil)

// LoggingOpener wraps an Opener with logging.
type LoggingOpener struct {
	next   instantdoc.Opener
	logger *slog.Logger
}

// NewLoggingOpener creates a new LoggingOpener.
func NewLoggingOpener(next instantdoc.Opener, logger *slog.Logger) *LoggingOpener {
	return &LoggingOpener{next: next, logger: logger}
}

// Open delegates to the wrapped opener and logs the location.
func (o *LoggingOpener) Open(ctx context.Context, location string) (err error) {
	defer func(begin time.Time) {
		o.logger.Info("open",
			"location", location,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return o.next.Open(ctx, location)
}

// Ensure LoggingReader implements instantdoc.DocumentReader.
var _ instantdoc.DocumentReader = (*LoggingReader)(nil)

// LoggingReader wraps a DocumentReader with logging.
type LoggingReader struct {
	next   instantdoc.DocumentReader
	logger *slog.Logger
}

// NewLoggingReader creates a new LoggingReader.
func NewLoggingReader(next instantdoc.DocumentReader, logger *slog.Logger) *LoggingReader {
	return &LoggingReader{next: next, logger: logger}
}

// Read delegates to the wrapped reader and logs the rendered size.
func (r *LoggingReader) Read(ctx context.Context, id, location string) (doc *instantdoc.Document, err error) {
	defer func(begin time.Time) {
		size := 0
		if doc != nil {
			size = len(doc.Content)
		}
		r.logger.Info("read document",
			"id", id,
			"location", location,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Read(ctx, id, location)
}
