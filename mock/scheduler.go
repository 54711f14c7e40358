package mock

import "github.com/fwojciec/instantdoc"

// Compile-time interface verification.
var (
	_ instantdoc.Scheduler = (*Scheduler)(nil)
	_ instantdoc.Ticket    = (*Ticket)(nil)
)

// Scheduler is a mock implementation of instantdoc.Scheduler.
type Scheduler struct {
	RegisterFn func(fn instantdoc.TickFunc) instantdoc.Ticket
}

func (s *Scheduler) Register(fn instantdoc.TickFunc) instantdoc.Ticket {
	return s.RegisterFn(fn)
}

// Ticket is a mock implementation of instantdoc.Ticket.
type Ticket struct {
	CancelFn func()
	ActiveFn func() bool
}

func (t *Ticket) Cancel() {
	t.CancelFn()
}

func (t *Ticket) Active() bool {
	return t.ActiveFn()
}
