package ui

import (
	"reflect"

	"github.com/atomicstack/linepick/internal/logging/events"
	"github.com/atomicstack/linepick/internal/match"
	"github.com/atomicstack/linepick/internal/theme"
	uistate "github.com/atomicstack/linepick/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Outcome is the terminal state of a picker session.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeConfirmed
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "running"
	}
}

const (
	// DefaultHeight is the number of terminal rows the picker occupies.
	DefaultHeight = 12
	// MinHeight leaves room for the help line, the input box and one list row.
	MinHeight = helpRows + inputRows + 3

	defaultWidth  = 80
	defaultPrompt = "query"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a picker session.
type Options struct {
	// Height is the total number of rows to draw; values below MinHeight are
	// raised to it and zero selects DefaultHeight.
	Height int
	// Width fixes the render width. Zero follows the terminal.
	Width int
	// Prompt titles the input box.
	Prompt string
}

// Model implements the Bubble Tea model for one picker session. It owns the
// query buffer, the filter over the candidate set and the selection, and keeps
// the three in step: every query edit re-runs the filter and resets the
// selection to the first visible row.
type Model struct {
	buffer    *uistate.Buffer
	filter    *uistate.Filter
	selection *uistate.Selection
	dirty     bool

	outcome Outcome
	choice  string

	width      int
	height     int
	fixedWidth bool
	prompt     string

	keys  keyMap
	help  help.Model
	caret cursor.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel prepares a session over candidates. The candidate slice is shared
// with the filter and must not be modified while the session runs.
func NewModel(candidates []string, matcher match.Matcher, opts Options) *Model {
	m := &Model{
		buffer:    uistate.NewBuffer(""),
		filter:    uistate.NewFilter(matcher, candidates),
		selection: uistate.NewSelection(),
		dirty:     true,
		width:     defaultWidth,
		height:    DefaultHeight,
		prompt:    defaultPrompt,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	if opts.Height > 0 {
		m.height = opts.Height
	}
	if m.height < MinHeight {
		m.height = MinHeight
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Prompt != "" {
		m.prompt = opts.Prompt
	}
	m.help.Width = m.width
	if styles.HelpKey != nil {
		m.help.Styles.ShortKey = styles.HelpKey.Copy()
	}
	if styles.Help != nil {
		m.help.Styles.ShortDesc = styles.Help.Copy()
		m.help.Styles.ShortSeparator = styles.Help.Copy()
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Input != nil {
		c.TextStyle = styles.Input.Copy()
	}
	c.SetMode(cursor.CursorStatic)
	c.Focus()
	m.caret = c
	m.registerHandlers()
	m.refilter()
	m.syncViewport()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	}
	return m, m.finishUpdate(cmd)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate re-derives the visible list after query edits. Navigation
// leaves the flag clear, so the filter never runs for cursor or selection
// moves.
func (m *Model) finishUpdate(cmd tea.Cmd) tea.Cmd {
	if m.dirty {
		m.refilter()
	}
	m.syncViewport()
	return cmd
}

func (m *Model) refilter() {
	query := m.buffer.Text()
	items := m.filter.Recompute(query)
	m.selection.Reset(len(items))
	m.dirty = false
	events.Filter.Recompute(query, m.filter.Candidates(), len(items))
}

func (m *Model) syncViewport() {
	m.selection.EnsureVisible(listCapacity(m.height))
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth && resize.Width > 0 {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	return nil
}

// Query returns the current query text.
func (m *Model) Query() string {
	return m.buffer.Text()
}

// Cursor returns the rune offset of the query cursor.
func (m *Model) Cursor() int {
	return m.buffer.Cursor()
}

// Items returns the visible, ranked candidates.
func (m *Model) Items() []string {
	return m.filter.Items()
}

// Selected returns the index of the highlighted row, or false when the
// visible list is empty.
func (m *Model) Selected() (int, bool) {
	return m.selection.Index()
}

// Outcome reports whether the session is still running, confirmed or cancelled.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Result returns the confirmed candidate.
func (m *Model) Result() (string, bool) {
	if m.outcome != OutcomeConfirmed {
		return "", false
	}
	return m.choice, true
}
