package events

import "github.com/atomicstack/linepick/internal/logging"

type FilterTracer struct{}

type SelectionTracer struct{}

var (
	Filter    = FilterTracer{}
	Selection = SelectionTracer{}
)

func (FilterTracer) Recompute(query string, candidates, visible int) {
	logging.Trace("filter.recompute", map[string]interface{}{
		"query":      query,
		"candidates": candidates,
		"visible":    visible,
	})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (SelectionTracer) Move(index, total int) {
	logging.Trace("selection.move", map[string]interface{}{"index": index, "total": total})
}
