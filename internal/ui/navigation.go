package ui

import (
	"github.com/atomicstack/linepick/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.outcome != OutcomeRunning {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		return m.handleCancelKey(keyMsg)
	case key.Matches(keyMsg, m.keys.Confirm):
		return m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.Up):
		m.moveSelection(m.selection.Previous)
		return nil
	case key.Matches(keyMsg, m.keys.Down):
		m.moveSelection(m.selection.Next)
		return nil
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveSelection(func() bool { return m.selection.PageUp(listCapacity(m.height)) })
		return nil
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveSelection(func() bool { return m.selection.PageDown(listCapacity(m.height)) })
		return nil
	case key.Matches(keyMsg, m.keys.First):
		m.moveSelection(m.selection.First)
		return nil
	case key.Matches(keyMsg, m.keys.Last):
		m.moveSelection(m.selection.Last)
		return nil
	}
	m.handleTextInput(keyMsg)
	return nil
}

// handleEnterKey confirms the highlighted candidate. With nothing visible the
// key is ignored and the session keeps running.
func (m *Model) handleEnterKey() tea.Cmd {
	choice, ok := m.selection.Confirm(m.filter.Items())
	if !ok {
		events.Session.EmptyConfirm(m.buffer.Text())
		return nil
	}
	idx, _ := m.selection.Index()
	m.outcome = OutcomeConfirmed
	m.choice = choice
	events.Session.Confirm(idx, choice)
	return tea.Quit
}

func (m *Model) handleCancelKey(msg tea.KeyMsg) tea.Cmd {
	reason := events.SessionReasonEscape
	if msg.Type == tea.KeyCtrlC {
		reason = events.SessionReasonInterrupt
	}
	m.outcome = OutcomeCancelled
	events.Session.Cancel(reason)
	return tea.Quit
}

func (m *Model) moveSelection(move func() bool) {
	if !move() {
		return
	}
	if idx, ok := m.selection.Index(); ok {
		events.Selection.Move(idx, m.selection.Len())
	}
}
