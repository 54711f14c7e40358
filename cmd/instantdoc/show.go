package main

import (
	"fmt"

	"github.com/fwojciec/instantdoc"
	"github.com/fwojciec/instantdoc/viewer"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	session, err := buildIndex(deps)
	if err != nil {
		return err
	}

	index, err := session.Index()
	if err != nil {
		return err
	}

	location, ok := lookup(index, c.Identifier)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: page %q not found. Use 'instantdoc search' to find page names.\n", c.Identifier)
		return instantdoc.Errorf(instantdoc.ENOTFOUND, "page %q not found", c.Identifier)
	}

	var opener instantdoc.Opener = viewer.NewTerminalOpener(deps.Reader, deps.Stdout)
	if c.Browser {
		opener = deps.Browser
	}
	if err := opener.Open(deps.Ctx, location); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", instantdoc.ErrorMessage(err))
		return err
	}
	return nil
}

// lookup finds a page by identifier or by display name, so both
// "AudioSource-Play" and "AudioSource.Play" resolve.
func lookup(index *instantdoc.DocumentIndex, name string) (string, bool) {
	if location, ok := index.Location(name); ok {
		return location, true
	}
	for _, id := range index.Identifiers() {
		if instantdoc.DisplayName(id) == name {
			return index.Location(id)
		}
	}
	return "", false
}
