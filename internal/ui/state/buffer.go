package state

import "unicode"

// Buffer holds the query text together with a cursor measured in runes, so
// multi-byte characters are always inserted, deleted and skipped whole.
type Buffer struct {
	runes  []rune
	cursor int
}

// NewBuffer returns a buffer holding text with the cursor at its end.
func NewBuffer(text string) *Buffer {
	runes := []rune(text)
	return &Buffer{runes: runes, cursor: len(runes)}
}

// Text returns the current query.
func (b *Buffer) Text() string {
	return string(b.runes)
}

// Len returns the query length in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Cursor returns the rune offset of the cursor, clamped to [0, Len()].
func (b *Buffer) Cursor() int {
	if b.cursor < 0 {
		return 0
	}
	if b.cursor > len(b.runes) {
		return len(b.runes)
	}
	return b.cursor
}

// SetCursor moves the cursor to pos, clamping to the valid range. It reports
// whether the cursor moved.
func (b *Buffer) SetCursor(pos int) bool {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.runes) {
		pos = len(b.runes)
	}
	old := b.Cursor()
	b.cursor = pos
	return pos != old
}

// Insert places r at the cursor and advances the cursor past it.
func (b *Buffer) Insert(r rune) {
	b.InsertText(string(r))
}

// InsertText inserts text at the cursor position.
func (b *Buffer) InsertText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	pos := b.Cursor()
	updated := make([]rune, 0, len(b.runes)+len(insert))
	updated = append(updated, b.runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, b.runes[pos:]...)
	b.runes = updated
	b.cursor = pos + len(insert)
	return true
}

// DeleteBackward deletes the rune before the cursor.
func (b *Buffer) DeleteBackward() bool {
	pos := b.Cursor()
	if pos == 0 {
		return false
	}
	b.runes = append(b.runes[:pos-1:pos-1], b.runes[pos:]...)
	b.cursor = pos - 1
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (b *Buffer) DeleteWordBackward() bool {
	pos := b.Cursor()
	if pos == 0 {
		return false
	}
	i := b.wordStart(pos)
	b.runes = append(b.runes[:i:i], b.runes[pos:]...)
	b.cursor = i
	return true
}

// Clear empties the buffer.
func (b *Buffer) Clear() bool {
	if len(b.runes) == 0 {
		return false
	}
	b.runes = nil
	b.cursor = 0
	return true
}

// MoveLeft moves the cursor one rune backward.
func (b *Buffer) MoveLeft() bool {
	return b.SetCursor(b.Cursor() - 1)
}

// MoveRight moves the cursor one rune forward.
func (b *Buffer) MoveRight() bool {
	return b.SetCursor(b.Cursor() + 1)
}

// MoveStart moves the cursor to the start.
func (b *Buffer) MoveStart() bool {
	return b.SetCursor(0)
}

// MoveEnd moves the cursor to the end.
func (b *Buffer) MoveEnd() bool {
	return b.SetCursor(len(b.runes))
}

// MoveWordBackward moves the cursor to the start of the previous word.
func (b *Buffer) MoveWordBackward() bool {
	return b.SetCursor(b.wordStart(b.Cursor()))
}

// MoveWordForward moves the cursor past the next word and its trailing space.
func (b *Buffer) MoveWordForward() bool {
	i := b.Cursor()
	for i < len(b.runes) && !unicode.IsSpace(b.runes[i]) {
		i++
	}
	for i < len(b.runes) && unicode.IsSpace(b.runes[i]) {
		i++
	}
	return b.SetCursor(i)
}

func (b *Buffer) wordStart(pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(b.runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(b.runes[i-1]) {
		i--
	}
	return i
}
