// Package loop provides a single-threaded cooperative scheduler for
// incremental work driven by a host loop.
package loop

import (
	"context"
	"time"

	"github.com/fwojciec/instantdoc"
)

// Compile-time interface verification.
var (
	_ instantdoc.Scheduler = (*Loop)(nil)
	_ instantdoc.Ticket    = (*Ticket)(nil)
)

// Loop runs registered tick functions once per Step, in registration order.
// A Loop is not safe for concurrent use: Register, Step and Cancel must be
// called from the goroutine that drives the loop.
type Loop struct {
	tickets []*Ticket
}

// New returns an empty Loop.
func New() *Loop {
	return &Loop{}
}

// Ticket is the registration handle of a tick function on a Loop.
type Ticket struct {
	fn     instantdoc.TickFunc
	active bool
}

// Cancel stops the tick function from being called again.
func (t *Ticket) Cancel() {
	t.active = false
}

// Active reports whether the tick function is still scheduled.
func (t *Ticket) Active() bool {
	return t.active
}

// Register schedules fn from the next Step on.
func (l *Loop) Register(fn instantdoc.TickFunc) instantdoc.Ticket {
	t := &Ticket{fn: fn, active: true}
	l.tickets = append(l.tickets, t)
	return t
}

// Len returns the number of scheduled tick functions.
func (l *Loop) Len() int {
	n := 0
	for _, t := range l.tickets {
		if t.active {
			n++
		}
	}
	return n
}

// Step calls every scheduled tick function once and deregisters those that
// report done. It returns the number still scheduled. A ticket cancelled
// during the step, including by an earlier tick function, is skipped.
func (l *Loop) Step() int {
	tickets := l.tickets
	for _, t := range tickets {
		if !t.active {
			continue
		}
		if t.fn() {
			t.active = false
		}
	}

	kept := l.tickets[:0]
	for _, t := range l.tickets {
		if t.active {
			kept = append(kept, t)
		}
	}
	clear(l.tickets[len(kept):])
	l.tickets = kept
	return len(kept)
}

// Run steps the loop every interval until nothing is scheduled or ctx is
// done. Tick functions run on the calling goroutine.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if l.Step() == 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if l.Step() == 0 {
				return nil
			}
		}
	}
}
