package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/linepick/internal/match"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

var fruit = []string{"apple", "banana", "grape"}

// countingMatcher wraps a matcher and records how often it runs.
type countingMatcher struct {
	inner match.Matcher
	calls int
}

func (c *countingMatcher) Match(query string, candidates []string) []match.Result {
	c.calls++
	return c.inner.Match(query, candidates)
}

func newHarness(candidates []string) *Harness {
	return NewHarness(NewModel(candidates, match.Fuzzy{}, Options{}))
}

func assertSelected(t *testing.T, m *Model, want int) {
	t.Helper()
	idx, ok := m.Selected()
	if want < 0 {
		if ok {
			t.Fatalf("expected no selection, got %d", idx)
		}
		return
	}
	if !ok || idx != want {
		t.Fatalf("expected selection %d, got %d (ok=%v)", want, idx, ok)
	}
}

func TestEmptyQueryShowsEveryCandidate(t *testing.T) {
	h := newHarness(fruit)
	m := h.Model()
	if len(m.Items()) != 3 {
		t.Fatalf("expected 3 items, got %v", m.Items())
	}
	assertSelected(t, m, 0)
	if m.Outcome() != OutcomeRunning {
		t.Fatalf("expected running session, got %s", m.Outcome())
	}
}

func TestTypingFiltersAndResetsSelection(t *testing.T) {
	h := newHarness(fruit)
	h.Press(tea.KeyDown, tea.KeyDown)
	assertSelected(t, h.Model(), 2)

	h.Type("ap")
	m := h.Model()
	if m.Query() != "ap" || m.Cursor() != 2 {
		t.Fatalf("unexpected query state %q/%d", m.Query(), m.Cursor())
	}
	items := m.Items()
	if len(items) == 0 || items[0] != "apple" {
		t.Fatalf("expected apple first, got %v", items)
	}
	for _, item := range items {
		if item == "banana" {
			t.Fatalf("expected banana filtered out, got %v", items)
		}
	}
	assertSelected(t, m, 0)
}

func TestDownThenEnterConfirmsSecondRankedItem(t *testing.T) {
	h := newHarness(fruit)
	h.Type("ap")
	items := append([]string(nil), h.Model().Items()...)
	if len(items) < 2 {
		t.Fatalf("expected at least two matches for ap, got %v", items)
	}
	h.Press(tea.KeyDown, tea.KeyEnter)

	m := h.Model()
	if !h.Quit() {
		t.Fatalf("expected enter to quit the program")
	}
	got, ok := m.Result()
	if !ok {
		t.Fatalf("expected a confirmed result")
	}
	if got != items[1] || got == "apple" {
		t.Fatalf("expected second ranked item %q, got %q", items[1], got)
	}
	if m.Outcome() != OutcomeConfirmed {
		t.Fatalf("expected confirmed outcome, got %s", m.Outcome())
	}
	if h.View() != "" {
		t.Fatalf("expected empty view after confirmation")
	}
}

func TestEscapeCancelsAtAnyPoint(t *testing.T) {
	steps := map[string]func(h *Harness){
		"immediately":    func(h *Harness) {},
		"after typing":   func(h *Harness) { h.Type("gr") },
		"after moving":   func(h *Harness) { h.Press(tea.KeyDown, tea.KeyLeft) },
		"with no result": func(h *Harness) { h.Type("zzz") },
	}
	for name, before := range steps {
		t.Run(name, func(t *testing.T) {
			h := newHarness(fruit)
			before(h)
			h.Press(tea.KeyEsc)
			if !h.Quit() {
				t.Fatalf("expected escape to quit")
			}
			if _, ok := h.Model().Result(); ok {
				t.Fatalf("expected no result after escape")
			}
			if h.Model().Outcome() != OutcomeCancelled {
				t.Fatalf("expected cancelled outcome, got %s", h.Model().Outcome())
			}
		})
	}
}

func TestCtrlCCancels(t *testing.T) {
	h := newHarness(fruit)
	h.Press(tea.KeyCtrlC)
	if !h.Quit() || h.Model().Outcome() != OutcomeCancelled {
		t.Fatalf("expected ctrl+c to cancel")
	}
}

func TestNoCandidatesNeverConfirms(t *testing.T) {
	h := newHarness(nil)
	m := h.Model()
	assertSelected(t, m, -1)
	for _, step := range []string{"", "a", "b"} {
		h.Type(step)
		h.Press(tea.KeyEnter)
		if h.Quit() {
			t.Fatalf("expected enter to be ignored with query %q", m.Query())
		}
		if len(m.Items()) != 0 {
			t.Fatalf("expected empty list, got %v", m.Items())
		}
	}
	if _, ok := m.Result(); ok {
		t.Fatalf("expected no result")
	}
	if m.Outcome() != OutcomeRunning {
		t.Fatalf("expected session still running, got %s", m.Outcome())
	}
}

func TestEnterWithNoMatchesKeepsRunning(t *testing.T) {
	h := newHarness(fruit)
	h.Type("zzz")
	assertSelected(t, h.Model(), -1)
	h.Press(tea.KeyEnter)
	if h.Quit() {
		t.Fatalf("expected enter on an empty list to be ignored")
	}
	h.Press(tea.KeyBackspace, tea.KeyBackspace, tea.KeyBackspace)
	assertSelected(t, h.Model(), 0)
	h.Press(tea.KeyEnter)
	if got, ok := h.Model().Result(); !ok || got != "apple" {
		t.Fatalf("expected apple after clearing the query, got %q/%v", got, ok)
	}
}

func TestBackspaceRecomputesAndResetsSelection(t *testing.T) {
	h := newHarness([]string{"alpha", "alpine", "beta"})
	h.Type("alx")
	if len(h.Model().Items()) != 0 {
		t.Fatalf("expected no matches for alx, got %v", h.Model().Items())
	}
	h.Press(tea.KeyBackspace)
	m := h.Model()
	if m.Query() != "al" {
		t.Fatalf("expected query al, got %q", m.Query())
	}
	if len(m.Items()) != 2 {
		t.Fatalf("expected two matches, got %v", m.Items())
	}
	h.Press(tea.KeyDown)
	assertSelected(t, m, 1)
	h.Press(tea.KeyBackspace)
	assertSelected(t, m, 0)
}

func TestNavigationDoesNotRecompute(t *testing.T) {
	counter := &countingMatcher{inner: match.Fuzzy{}}
	h := NewHarness(NewModel(fruit, counter, Options{}))
	h.Type("a")
	before := counter.calls

	h.Press(tea.KeyDown, tea.KeyUp, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd, tea.KeyPgDown)
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 20})
	if counter.calls != before {
		t.Fatalf("expected no recompute on navigation, matcher ran %d extra times", counter.calls-before)
	}

	h.Type("p")
	if counter.calls != before+1 {
		t.Fatalf("expected exactly one recompute per edit, got %d", counter.calls-before)
	}
}

func TestSelectionSaturates(t *testing.T) {
	h := newHarness(fruit)
	h.Press(tea.KeyUp)
	assertSelected(t, h.Model(), 0)
	h.Press(tea.KeyDown, tea.KeyDown, tea.KeyDown, tea.KeyDown)
	assertSelected(t, h.Model(), 2)
	h.Press(tea.KeyPgUp)
	assertSelected(t, h.Model(), 0)
	h.Press(tea.KeyCtrlN)
	assertSelected(t, h.Model(), 1)
	h.Press(tea.KeyCtrlP)
	assertSelected(t, h.Model(), 0)
}

func TestFirstAndLastJumpSelection(t *testing.T) {
	h := newHarness(numbered(20))
	h.Type("item")
	h.Press(tea.KeyCtrlEnd)
	assertSelected(t, h.Model(), 19)
	if !strings.Contains(ansi.Strip(h.View()), ">> 19: item-") {
		t.Fatalf("expected last row visible and selected")
	}
	h.Press(tea.KeyCtrlHome)
	assertSelected(t, h.Model(), 0)

	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(">"), Alt: true})
	assertSelected(t, h.Model(), 19)
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("<"), Alt: true})
	assertSelected(t, h.Model(), 0)

	if h.Model().Query() != "item" || h.Model().Cursor() != 4 {
		t.Fatalf("expected query untouched, got %q/%d", h.Model().Query(), h.Model().Cursor())
	}
}

func TestCursorMovementEditsInPlace(t *testing.T) {
	h := newHarness(fruit)
	h.Type("grpe")
	h.Press(tea.KeyLeft, tea.KeyLeft)
	h.Type("a")
	m := h.Model()
	if m.Query() != "grape" || m.Cursor() != 3 {
		t.Fatalf("expected grape with cursor 3, got %q/%d", m.Query(), m.Cursor())
	}
	h.Press(tea.KeyHome, tea.KeyLeft)
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", m.Cursor())
	}
	h.Press(tea.KeyEnd, tea.KeyRight)
	if m.Cursor() != 5 {
		t.Fatalf("expected cursor clamped at 5, got %d", m.Cursor())
	}
	if !reflect.DeepEqual(m.Items(), []string{"grape"}) {
		t.Fatalf("expected only grape, got %v", m.Items())
	}
}

func TestWordEditingKeys(t *testing.T) {
	h := newHarness(fruit)
	h.Type("red apple")
	h.Press(tea.KeyCtrlW)
	m := h.Model()
	if m.Query() != "red " {
		t.Fatalf("expected trailing word removed, got %q", m.Query())
	}
	h.Press(tea.KeyCtrlU)
	if m.Query() != "" || len(m.Items()) != 3 {
		t.Fatalf("expected cleared query showing every item, got %q/%v", m.Query(), m.Items())
	}
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	h := newHarness(fruit)
	h.Type("ap")
	h.Press(tea.KeyTab, tea.KeyF1, tea.KeyDelete, tea.KeyCtrlK)
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	m := h.Model()
	if h.Quit() {
		t.Fatalf("expected unbound keys not to end the session")
	}
	if m.Query() != "ap" || m.Cursor() != 2 {
		t.Fatalf("expected query untouched, got %q/%d", m.Query(), m.Cursor())
	}
}

func TestPasteInsertsWholeRun(t *testing.T) {
	h := newHarness([]string{"naïve café", "plain"})
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("café"), Paste: true})
	m := h.Model()
	if m.Query() != "café" || m.Cursor() != 4 {
		t.Fatalf("expected pasted query with rune cursor, got %q/%d", m.Query(), m.Cursor())
	}
	if len(m.Items()) != 1 || m.Items()[0] != "naïve café" {
		t.Fatalf("expected accented match, got %v", m.Items())
	}
}

func TestKeysAfterQuitAreDropped(t *testing.T) {
	m := NewModel(fruit, match.Fuzzy{}, Options{})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	if m.Query() != "" {
		t.Fatalf("expected no edits after confirmation, got %q", m.Query())
	}
	if got, _ := m.Result(); got != "apple" {
		t.Fatalf("expected apple, got %q", got)
	}
}

func TestOptionsClampHeight(t *testing.T) {
	m := NewModel(fruit, match.Fuzzy{}, Options{Height: 2})
	if m.height != MinHeight {
		t.Fatalf("expected height raised to %d, got %d", MinHeight, m.height)
	}
	m = NewModel(fruit, match.Fuzzy{}, Options{})
	if m.height != DefaultHeight {
		t.Fatalf("expected default height %d, got %d", DefaultHeight, m.height)
	}
}

func TestWindowSizeUpdatesWidthUnlessFixed(t *testing.T) {
	m := NewModel(fruit, match.Fuzzy{}, Options{})
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 40})
	if m.width != 50 || m.height != DefaultHeight {
		t.Fatalf("expected width 50 and fixed height, got %d/%d", m.width, m.height)
	}
	fixed := NewModel(fruit, match.Fuzzy{}, Options{Width: 30})
	fixed.Update(tea.WindowSizeMsg{Width: 50, Height: 40})
	if fixed.width != 30 {
		t.Fatalf("expected fixed width 30, got %d", fixed.width)
	}
}
