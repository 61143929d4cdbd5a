package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	helpRows  = 1
	inputRows = 3 // border, query line, border

	minWidth        = 8
	selectionMarker = ">> "
	rowPadding      = "   "
)

// Snapshot is the session state the renderer reads.
type Snapshot struct {
	Query    string
	Cursor   int // rune offset into Query
	Items    []string
	Selected int // -1 when nothing is selected
	Offset   int // first visible row of Items
	Width    int
	Height   int
	Prompt   string
	Help     string
}

// Frame describes one paint of the picker: a help line, a bordered input box
// and a bordered list box, stacked top to bottom.
type Frame struct {
	Width int
	Help  string
	Input InputPane
	List  ListPane
}

// InputPane is the visible slice of the query around the cursor.
type InputPane struct {
	Title  string
	Text   string
	Cursor int // rune offset into Text
	Column int // display column of the cursor inside the box
}

// ListPane holds the rows visible in the list box.
type ListPane struct {
	Title string
	Rows  []ListRow
	// Height is the number of rows inside the border.
	Height int
	// Empty is shown when there are no rows.
	Empty string
}

// ListRow is one filtered candidate, numbered by its position in the full
// filtered list rather than in the visible window.
type ListRow struct {
	Index    int
	Text     string
	Selected bool
}

// listCapacity returns how many list rows fit in a frame of the given height.
func listCapacity(height int) int {
	rows := height - helpRows - inputRows - 2
	if rows < 1 {
		return 1
	}
	return rows
}

// BuildFrame lays out s without touching any session state.
func BuildFrame(s Snapshot) Frame {
	width := s.Width
	if width < minWidth {
		width = minWidth
	}
	innerW := width - 2
	capacity := listCapacity(s.Height)

	f := Frame{
		Width: width,
		Help:  s.Help,
		Input: inputPane(s.Prompt, s.Query, s.Cursor, innerW),
		List:  ListPane{Title: "items", Height: capacity},
	}

	offset := s.Offset
	if maxOffset := len(s.Items) - capacity; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + capacity
	if end > len(s.Items) {
		end = len(s.Items)
	}
	for i := offset; i < end; i++ {
		f.List.Rows = append(f.List.Rows, ListRow{
			Index:    i,
			Text:     displayText(s.Items[i]),
			Selected: i == s.Selected,
		})
	}
	if len(s.Items) == 0 {
		f.List.Empty = "(no entries)"
		if s.Query != "" {
			f.List.Empty = fmt.Sprintf("No matches for %q", s.Query)
		}
	}
	return f
}

// inputPane scrolls the query horizontally so the cursor cell stays inside a
// box interior of innerW columns. When text follows the cursor one more
// column is kept free so the cursor cell is never the one cut for the tail.
func inputPane(title, query string, pos, innerW int) InputPane {
	runes := []rune(query)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	reserve := 1
	if pos < len(runes) {
		if w := ansi.StringWidth(string(runes[pos])); w > reserve {
			reserve = w
		}
		if pos+1 < len(runes) {
			reserve++
		}
	}
	start := 0
	for start < pos && ansi.StringWidth(string(runes[start:pos]))+reserve > innerW {
		start++
	}
	return InputPane{
		Title:  title,
		Text:   string(runes[start:]),
		Cursor: pos - start,
		Column: ansi.StringWidth(string(runes[start:pos])),
	}
}

// Rows returns the number of terminal rows the frame occupies.
func (f Frame) Rows() int {
	return helpRows + inputRows + f.List.Height + 2
}

// Render draws the frame. caret supplies the cursor styling for the input box.
func (f Frame) Render(caret cursor.Model) string {
	innerW := f.Width - 2
	lines := make([]string, 0, f.Rows())
	lines = append(lines, fitWidth(f.Help, f.Width))
	lines = append(lines, box(f.Input.Title, []string{f.renderInput(caret, innerW)}, innerW)...)
	lines = append(lines, box(f.List.Title, f.renderList(innerW), innerW)...)
	return strings.Join(lines, "\n")
}

func (f Frame) renderInput(caret cursor.Model, innerW int) string {
	runes := []rune(f.Input.Text)
	pos := f.Input.Cursor
	under := " "
	var after string
	if pos < len(runes) {
		under = string(runes[pos])
		after = string(runes[pos+1:])
	}
	// Only the text after the cursor is cut, so the cursor cell always shows
	// the rune it sits on.
	room := innerW - f.Input.Column - ansi.StringWidth(under)
	after = truncateText(after, room)
	caret.SetChar(under)
	line := render(styles.Input, string(runes[:pos])) + caret.View() + render(styles.Input, after)
	return fitWidth(line, innerW)
}

func (f Frame) renderList(innerW int) []string {
	out := make([]string, 0, f.List.Height)
	if len(f.List.Rows) == 0 && f.List.Empty != "" {
		out = append(out, fitWidth(render(styles.Info, truncateText(f.List.Empty, innerW)), innerW))
	}
	for _, row := range f.List.Rows {
		if row.Selected {
			text := fmt.Sprintf("%s%d: %s", selectionMarker, row.Index, row.Text)
			out = append(out, render(styles.SelectedItem, padRight(truncateText(text, innerW), innerW)))
			continue
		}
		prefix := fmt.Sprintf("%s%d: ", rowPadding, row.Index)
		text := padRight(truncateText(prefix+row.Text, innerW), innerW)
		if !strings.HasPrefix(text, prefix) {
			out = append(out, render(styles.Item, text))
			continue
		}
		out = append(out, render(styles.ItemIndex, prefix)+render(styles.Item, text[len(prefix):]))
	}
	for len(out) < f.List.Height {
		out = append(out, strings.Repeat(" ", innerW))
	}
	return out[:f.List.Height]
}

// box wraps body in a rounded border with title set into the top edge.
func box(title string, body []string, innerW int) []string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	titleSeg := ""
	if title != "" {
		titleSeg = " " + title + " "
	}
	// tlc + hz + titleSeg + dashes + trc spans innerW+2 columns.
	dashes := innerW - 1 - ansi.StringWidth(titleSeg)
	if dashes < 0 {
		titleSeg = truncateText(titleSeg, innerW-1)
		dashes = innerW - 1 - ansi.StringWidth(titleSeg)
	}
	if dashes < 0 {
		dashes = 0
	}
	rows := make([]string, 0, len(body)+2)
	rows = append(rows, render(styles.Border, tlc+hz)+render(styles.Title, titleSeg)+render(styles.Border, strings.Repeat(hz, dashes)+trc))
	for _, line := range body {
		rows = append(rows, render(styles.Border, vt)+line+render(styles.Border, vt))
	}
	rows = append(rows, render(styles.Border, blc+strings.Repeat(hz, innerW)+brc))
	return rows
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

// fitWidth truncates or pads a possibly styled string to exactly width columns.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}

// displayText makes a candidate safe to draw on one row: tabs become spaces
// and other control characters are dropped. The candidate itself is emitted
// unchanged on confirmation.
func displayText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, s)
}
