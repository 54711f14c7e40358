package instantdoc

// TickFunc performs one bounded unit of work and reports whether all work
// is done. Done functions are not called again.
type TickFunc func() (done bool)

// Scheduler runs registered TickFuncs cooperatively from a host loop,
// one call per registration per iteration.
type Scheduler interface {
	// Register schedules fn until it reports done or the ticket is cancelled.
	Register(fn TickFunc) Ticket
}

// Ticket is the registration handle returned by Scheduler.Register.
type Ticket interface {
	// Cancel deregisters the TickFunc. The function is never called again,
	// even within the iteration currently running. Cancel is idempotent.
	Cancel()

	// Active reports whether the TickFunc is still scheduled.
	Active() bool
}
