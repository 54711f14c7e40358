package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/instantdoc"
	"github.com/fwojciec/instantdoc/fs"
	"github.com/fwojciec/instantdoc/goquery"
	"github.com/fwojciec/instantdoc/htmltomarkdown"
	"github.com/fwojciec/instantdoc/loop"
	"github.com/fwojciec/instantdoc/readability"
	"github.com/fwojciec/instantdoc/rod"
	idslog "github.com/fwojciec/instantdoc/slog"
	"github.com/fwojciec/instantdoc/trafilatura"
	"github.com/fwojciec/instantdoc/viewer"
	"github.com/mattn/go-isatty"
)

// summaryLength is the longest description printed by search --describe.
const summaryLength = 80

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()
	m.NoProgress = !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin feeds the interactive interface. Set before calling Run().
	Stdin io.Reader

	// NoProgress hides the indexing progress bar, as --quiet does.
	NoProgress bool

	// Services for end-to-end testing. Nil fields are wired with the
	// production implementations.
	Lister  instantdoc.FileLister
	Reader  instantdoc.DocumentReader
	Browser instantdoc.Opener
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("instantdoc"),
		kong.Description("Instant search over local HTML documentation."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'instantdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Root = cli.Root
	deps.Install = cli.Install
	deps.Quiet = cli.Quiet || m.NoProgress
	deps.Logger = newLogger(stderr, cli.Verbose)
	m.wire(deps, cli.Lang)

	return kongCtx.Run(deps)
}

// wire attaches the production services, each wrapped in its logging
// decorator.
func (m *Main) wire(deps *Dependencies, lang string) {
	logger := deps.Logger

	lister := m.Lister
	if lister == nil {
		lister = fs.NewLister(instantdoc.IgnorePattern)
	}
	deps.Lister = idslog.NewLoggingLister(lister, logger)
	deps.Locator = idslog.NewLoggingLocator(fs.NewLocator(lang), logger)

	deps.Loop = loop.New()
	deps.Scheduler = idslog.NewLoggingScheduler(deps.Loop, logger)

	reader := m.Reader
	if reader == nil {
		reader = &viewer.Reader{
			Extractor: trafilatura.NewExtractor(),
			Fallback:  readability.NewExtractor(),
			Converter: htmltomarkdown.NewConverter(),
		}
	}
	deps.Reader = idslog.NewLoggingReader(reader, logger)
	deps.Summarizer = idslog.NewLoggingSummarizer(goquery.NewSummarizer(summaryLength), logger)
	deps.ReadFile = fs.ReadFile

	browser := m.Browser
	if browser == nil {
		browser = rod.NewBrowserOpener()
	}
	deps.Browser = idslog.NewLoggingOpener(browser, logger)
}

// newLogger logs debug records to w when verbose, and nothing otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
