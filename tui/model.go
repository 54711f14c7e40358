// Package tui provides an interactive terminal front end that indexes a
// documentation root in the background of its event loop and searches it.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/instantdoc"
	"github.com/fwojciec/instantdoc/loop"
)

// DefaultTickInterval is the delay between two indexing steps.
const DefaultTickInterval = 16 * time.Millisecond

// TickMsg asks the model to step its loop once.
type TickMsg time.Time

// OpenedMsg reports the outcome of opening a result.
type OpenedMsg struct {
	ID  string
	Err error
}

// Config configures a Model.
type Config struct {
	Session  *instantdoc.IndexSession
	Loop     *loop.Loop
	Opener   instantdoc.Opener
	Interval time.Duration
	NoColor  bool
}

// Model is the bubbletea model of the search window.
type Model struct {
	ctx      context.Context
	session  *instantdoc.IndexSession
	loop     *loop.Loop
	ticket   instantdoc.Ticket
	opener   instantdoc.Opener
	interval time.Duration

	input    textinput.Model
	progress progress.Model
	styles   Styles

	lastQuery string
	pages     *instantdoc.Pagination
	cursor    int
	status    string
	err       error
	quitting  bool
}

// New creates a Model. Indexing starts when the program calls Init.
func New(ctx context.Context, cfg Config) *Model {
	input := textinput.New()
	input.Prompt = "Search : "
	input.Placeholder = fmt.Sprintf("at least %d characters", instantdoc.MinQueryLength)
	input.CharLimit = 128
	input.Focus()

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	styles := DefaultStyles()
	if cfg.NoColor {
		styles = NoColorStyles()
	}

	return &Model{
		ctx:      ctx,
		session:  cfg.Session,
		loop:     cfg.Loop,
		opener:   cfg.Opener,
		interval: interval,
		input:    input,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		styles:   styles,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.session.Done() {
		return textinput.Blink
	}
	m.ticket = m.loop.Register(m.session.Tick)
	return tea.Batch(textinput.Blink, m.tick())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.quitting || m.ticket == nil || !m.ticket.Active() {
			return m, nil
		}
		m.loop.Step()
		if m.ticket.Active() {
			return m, m.tick()
		}
		return m, nil

	case OpenedMsg:
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.err = nil
			m.status = "opened " + instantdoc.DisplayName(msg.ID)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = min(max(msg.Width-4, 10), 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Close()
			return m, tea.Quit
		case "enter":
			return m, m.submit()
		case "up":
			m.moveCursor(-1)
			return m, nil
		case "down":
			m.moveCursor(1)
			return m, nil
		case "pgdown", "tab":
			m.turnPage(1)
			return m, nil
		case "pgup", "shift+tab":
			m.turnPage(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Close cancels background indexing. It is safe to call more than once.
func (m *Model) Close() {
	m.quitting = true
	if m.ticket != nil {
		m.ticket.Cancel()
	}
}

// CanSearch reports whether the current input may be searched.
func (m *Model) CanSearch() bool {
	return m.session.Done() && instantdoc.ValidateQuery(m.input.Value()) == nil
}

// Results returns the current result view, or nil before the first search.
func (m *Model) Results() *instantdoc.Pagination {
	return m.pages
}

// Cursor returns the selected row on the current page.
func (m *Model) Cursor() int {
	return m.cursor
}

// submit searches a new query, or opens the selected result when the
// query has not changed since the last search.
func (m *Model) submit() tea.Cmd {
	query := strings.TrimSpace(m.input.Value())
	if m.pages != nil && query == m.lastQuery {
		return m.openSelected()
	}
	if !m.CanSearch() {
		return nil
	}

	results, err := m.session.Search(query)
	if err != nil {
		m.err = err
		return nil
	}
	pages := instantdoc.NewPagination(results)
	m.pages = &pages
	m.lastQuery = query
	m.cursor = 0
	m.err = nil
	m.status = fmt.Sprintf("%d results", len(results))
	return nil
}

func (m *Model) openSelected() tea.Cmd {
	items := m.pages.Items()
	if m.cursor >= len(items) || m.opener == nil {
		return nil
	}
	id := items[m.cursor]
	index, err := m.session.Index()
	if err != nil {
		m.err = err
		return nil
	}
	location, _ := index.Location(id)
	ctx, opener := m.ctx, m.opener
	return func() tea.Msg {
		return OpenedMsg{ID: id, Err: opener.Open(ctx, location)}
	}
}

func (m *Model) moveCursor(delta int) {
	if m.pages == nil {
		return
	}
	n := len(m.pages.Items())
	m.cursor = min(max(m.cursor+delta, 0), max(n-1, 0))
}

func (m *Model) turnPage(delta int) {
	if m.pages == nil {
		return
	}
	var (
		next instantdoc.Pagination
		err  error
	)
	if delta > 0 {
		next, err = m.pages.Next()
	} else {
		next, err = m.pages.Prev()
	}
	if err != nil {
		return
	}
	*m.pages = next
	m.cursor = 0
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Instant Doc"))
	b.WriteString("\n\n")

	if m.session.Empty() {
		b.WriteString(m.styles.Ghost.Render("Couldn't find any local documentation in " + m.session.Root() + "."))
		b.WriteString("\n")
		b.WriteString(m.styles.Ghost.Render("Install the documentation module, then restart. Press esc to quit."))
		b.WriteString("\n")
		return b.String()
	}

	if !m.session.Done() {
		p := m.session.Progress()
		b.WriteString(m.styles.Ghost.Render(fmt.Sprintf("Indexing documentation (%d/%d)", p.Processed, p.Total)))
		b.WriteString("\n")
		b.WriteString(m.progress.ViewAs(p.Fraction()))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.lastQuery != "" {
		b.WriteString("Search term : ")
		b.WriteString(m.styles.Term.Render(m.lastQuery))
		b.WriteString("\n\n")
	}

	if m.pages != nil {
		for i, id := range m.pages.Items() {
			name := instantdoc.DisplayName(id)
			if i == m.cursor {
				b.WriteString(m.styles.Selected.Render("> " + name))
			} else {
				b.WriteString(m.styles.Item.Render(name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Pager.Render(m.pagerLabel()))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("error: " + errorText(m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Ghost.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) pagerLabel() string {
	label := m.pages.Label()
	if m.pages.HasPrev() {
		label = "< " + label
	}
	if m.pages.HasNext() {
		label += " >"
	}
	return label
}

// errorText prefers the application message and falls back to the raw error.
func errorText(err error) string {
	if instantdoc.ErrorCode(err) == instantdoc.EINTERNAL {
		return err.Error()
	}
	return instantdoc.ErrorMessage(err)
}
