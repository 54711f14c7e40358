package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/instantdoc"
)

// Ensure LoggingScheduler implements instantdoc.Scheduler.
var _ instantdoc.Scheduler = (*LoggingScheduler)(nil)

// LoggingScheduler wraps a Scheduler and logs when a registration
// finishes its work, with the number of ticks it took.
type LoggingScheduler struct {
	next   instantdoc.Scheduler
	logger *slog.Logger
}

// NewLoggingScheduler creates a new LoggingScheduler.
func NewLoggingScheduler(next instantdoc.Scheduler, logger *slog.Logger) *LoggingScheduler {
	return &LoggingScheduler{next: next, logger: logger}
}

// Register delegates to the wrapped scheduler.
func (s *LoggingScheduler) Register(fn instantdoc.TickFunc) instantdoc.Ticket {
	begin := time.Now()
	ticks := 0
	return s.next.Register(func() bool {
		ticks++
		done := fn()
		if done {
			s.logger.Debug("tick work done",
				"ticks", ticks,
				"duration", time.Since(begin),
			)
		}
		return done
	})
}
