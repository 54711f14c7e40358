package slog

import (
	"log/slog"

	"github.com/fwojciec/instantdoc"
)

// Ensure LoggingSummarizer implements instantdoc.Summarizer.
var _ instantdoc.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer and logs failures at debug level.
type LoggingSummarizer struct {
	next   instantdoc.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next instantdoc.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer.
func (s *LoggingSummarizer) Summarize(html string) (summary string, err error) {
	summary, err = s.next.Summarize(html)
	if err != nil {
		s.logger.Debug("summarize", "bytes", len(html), "err", err)
	}
	return summary, err
}
