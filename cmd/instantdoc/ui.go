package main

import (
	"os"

	"github.com/fwojciec/instantdoc/tui"
)

// Run executes the ui command. Indexing runs inside the interface's event
// loop, so the window is usable before the index is complete.
func (c *UICmd) Run(deps *Dependencies) error {
	session, err := startIndexing(deps)
	if err != nil {
		return err
	}

	return tui.Run(deps.Ctx, tui.Config{
		Session: session,
		Loop:    deps.Loop,
		Opener:  deps.Browser,
		NoColor: c.NoColor || os.Getenv("NO_COLOR") != "",
	}, deps.Stdin, deps.Stdout)
}
