package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/instantdoc"
	"github.com/fwojciec/instantdoc/loop"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Lister  instantdoc.FileLister
	Locator instantdoc.RootLocator

	// Loop drives indexing. Scheduler, when set, wraps Loop and is used
	// for registrations made by the commands.
	Loop      *loop.Loop
	Scheduler instantdoc.Scheduler

	Reader     instantdoc.DocumentReader
	Summarizer instantdoc.Summarizer
	Browser    instantdoc.Opener

	// ReadFile loads raw pages for summaries.
	ReadFile func(path string) (string, error)

	// Root is the documentation directory. When empty, Install is searched
	// with Locator.
	Root    string
	Install string

	// Quiet disables the indexing progress bar.
	Quiet bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root    string `short:"r" env:"INSTANTDOC_ROOT" help:"Documentation directory holding the HTML pages"`
	Install string `short:"i" env:"INSTANTDOC_INSTALL" help:"Editor installation to locate the documentation in when --root is not set"`
	Lang    string `default:"en" help:"Preferred documentation language"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`
	Quiet   bool   `short:"q" help:"Hide the indexing progress bar"`

	Index  IndexCmd  `cmd:"" help:"Index the documentation and report the page count"`
	Search SearchCmd `cmd:"" help:"Search page names"`
	Show   ShowCmd   `cmd:"" help:"Render a page in the terminal"`
	UI     UICmd     `cmd:"" name:"ui" help:"Search interactively"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string `arg:"" help:"Search term, at least three characters"`
	Page     int    `short:"p" default:"1" help:"Result page to print, starting at 1"`
	Describe bool   `short:"d" help:"Print a one-line description of each result"`
	Open     int    `short:"o" help:"Open result number N in the browser"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Identifier string `arg:"" help:"Page identifier, e.g. AudioSource.Play"`
	Browser    bool   `short:"b" help:"Open the page in the browser instead"`
}

// UICmd is the "ui" subcommand.
type UICmd struct {
	NoColor bool `help:"Disable colors. Also set by the NO_COLOR environment variable"`
}
