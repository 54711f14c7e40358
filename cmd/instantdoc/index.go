package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/instantdoc"
	"github.com/schollz/progressbar/v3"
)

// tickInterval paces the indexing loop of the batch commands.
const tickInterval = time.Millisecond

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	session, err := buildIndex(deps)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d pages from %s\n", session.Progress().Total, session.Root())
	return nil
}

// resolveRoot returns the documentation root from --root, or locates it
// inside the --install directory.
func resolveRoot(deps *Dependencies) (string, error) {
	if deps.Root != "" {
		return deps.Root, nil
	}
	if deps.Install == "" {
		fmt.Fprintln(deps.Stderr, "error: no documentation directory. Set --root or INSTANTDOC_ROOT, or --install to search an installation.")
		return "", instantdoc.Errorf(instantdoc.EINVALID, "no documentation root configured")
	}

	root, err := deps.Locator.Locate(deps.Ctx, deps.Install)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", instantdoc.ErrorMessage(err))
		return "", err
	}
	return root, nil
}

// startIndexing resolves the root and lists its pages. An empty root is
// reported as ENOTFOUND.
func startIndexing(deps *Dependencies) (*instantdoc.IndexSession, error) {
	root, err := resolveRoot(deps)
	if err != nil {
		return nil, err
	}

	session, err := instantdoc.StartIndexing(deps.Ctx, deps.Lister, root)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", instantdoc.ErrorMessage(err))
		return nil, err
	}
	if session.Empty() {
		fmt.Fprintf(deps.Stderr, "No documentation found in %s.\n", root)
		return nil, instantdoc.Errorf(instantdoc.ENOTFOUND, "no documentation found in %s", root)
	}
	return session, nil
}

// buildIndex indexes the documentation root to completion on the loop,
// reporting progress on stderr.
func buildIndex(deps *Dependencies) (*instantdoc.IndexSession, error) {
	session, err := startIndexing(deps)
	if err != nil {
		return nil, err
	}

	scheduler := deps.Scheduler
	if scheduler == nil {
		scheduler = deps.Loop
	}
	scheduler.Register(session.Tick)

	if !deps.Quiet {
		bar := progressbar.NewOptions(session.Progress().Total,
			progressbar.OptionSetWriter(deps.Stderr),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("Indexing"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(deps.Stderr)
			}),
		)
		// Registered after the session so it observes each finished batch.
		scheduler.Register(func() bool {
			_ = bar.Set(session.Progress().Processed)
			if session.Done() {
				_ = bar.Finish()
				return true
			}
			return false
		})
	}

	if err := deps.Loop.Run(deps.Ctx, tickInterval); err != nil {
		return nil, err
	}
	return session, nil
}
