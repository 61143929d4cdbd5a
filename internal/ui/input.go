package ui

import (
	"unicode"

	"github.com/atomicstack/linepick/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleTextInput applies query edits and cursor motion. It reports whether
// the key was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Clear):
		if !m.buffer.Clear() {
			return false
		}
		m.dirty = true
		events.Filter.Cleared()
		return true
	case key.Matches(msg, m.keys.DeleteWord):
		if !m.buffer.DeleteWordBackward() {
			return false
		}
		m.dirty = true
		events.Filter.WordBackspace(m.buffer.Text())
		return true
	case key.Matches(msg, m.keys.Backspace):
		return m.removeQueryRune()
	case key.Matches(msg, m.keys.Left):
		return m.moveQueryCursor(m.buffer.MoveLeft)
	case key.Matches(msg, m.keys.Right):
		return m.moveQueryCursor(m.buffer.MoveRight)
	case key.Matches(msg, m.keys.Home):
		return m.moveQueryCursor(m.buffer.MoveStart)
	case key.Matches(msg, m.keys.End):
		return m.moveQueryCursor(m.buffer.MoveEnd)
	case key.Matches(msg, m.keys.WordLeft):
		if !m.buffer.MoveWordBackward() {
			return false
		}
		events.Filter.CursorWord(m.buffer.Cursor())
		return true
	case key.Matches(msg, m.keys.WordRight):
		if !m.buffer.MoveWordForward() {
			return false
		}
		events.Filter.CursorWord(m.buffer.Cursor())
		return true
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToQuery(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToQuery(" ")
	}
	return false
}

func (m *Model) appendToQuery(text string) bool {
	if !m.buffer.InsertText(text) {
		return false
	}
	m.dirty = true
	events.Filter.Append(m.buffer.Text())
	return true
}

func (m *Model) removeQueryRune() bool {
	if !m.buffer.DeleteBackward() {
		return false
	}
	m.dirty = true
	events.Filter.Backspace(m.buffer.Text())
	return true
}

func (m *Model) moveQueryCursor(move func() bool) bool {
	if !move() {
		return false
	}
	events.Filter.Cursor(m.buffer.Cursor())
	return true
}
