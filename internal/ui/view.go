package ui

// View implements tea.Model. Once the session ends the view is empty so the
// inline region is cleared before the result reaches stdout.
func (m *Model) View() string {
	if m.outcome != OutcomeRunning {
		return ""
	}
	return BuildFrame(m.snapshot()).Render(m.caret)
}

func (m *Model) snapshot() Snapshot {
	selected := -1
	if idx, ok := m.selection.Index(); ok {
		selected = idx
	}
	return Snapshot{
		Query:    m.buffer.Text(),
		Cursor:   m.buffer.Cursor(),
		Items:    m.filter.Items(),
		Selected: selected,
		Offset:   m.selection.Offset(),
		Width:    m.width,
		Height:   m.height,
		Prompt:   m.prompt,
		Help:     m.help.ShortHelpView(m.keys.ShortHelp()),
	}
}
