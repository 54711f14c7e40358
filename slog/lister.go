// Package slog provides log/slog decorators for instantdoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/instantdoc"
)

// Ensure LoggingLister implements instantdoc.FileLister.
var _ instantdoc.FileLister = (*LoggingLister)(nil)

// LoggingLister wraps a FileLister with logging.
type LoggingLister struct {
	next   instantdoc.FileLister
	logger *slog.Logger
}

// NewLoggingLister creates a new LoggingLister.
func NewLoggingLister(next instantdoc.FileLister, logger *slog.Logger) *LoggingLister {
	return &LoggingLister{next: next, logger: logger}
}

// ListFiles delegates to the wrapped lister and logs the operation.
func (l *LoggingLister) ListFiles(ctx context.Context, root string) (paths []string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("list files",
			"root", root,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.ListFiles(ctx, root)
}

// Ensure LoggingLocator implements instantdoc.RootLocator.
var _ instantdoc.RootLocator = (*LoggingLocator)(nil)

// LoggingLocator wraps a RootLocator with logging.
type LoggingLocator struct {
	next   instantdoc.RootLocator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next instantdoc.RootLocator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Locate delegates to the wrapped locator and logs the result.
func (l *LoggingLocator) Locate(ctx context.Context, installDir string) (root string, err error) {
	defer func() {
		l.logger.Info("locate documentation",
			"install", installDir,
			"root", root,
			"err", err,
		)
	}()
	return l.next.Locate(ctx, installDir)
}
