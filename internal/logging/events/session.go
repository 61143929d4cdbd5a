package events

import "github.com/atomicstack/linepick/internal/logging"

type SessionTracer struct{}

type sessionReason string

const (
	SessionReasonEscape    sessionReason = "escape"
	SessionReasonInterrupt sessionReason = "interrupt"
)

var Session = SessionTracer{}

func (SessionTracer) Confirm(index int, value string) {
	logging.Trace("session.confirm", map[string]interface{}{"index": index, "value": value})
}

// EmptyConfirm records an Enter press with nothing to select.
func (SessionTracer) EmptyConfirm(query string) {
	logging.Trace("session.confirm.empty", map[string]interface{}{"query": query})
}

func (SessionTracer) Cancel(reason sessionReason) {
	logging.Trace("session.cancel", map[string]interface{}{"reason": string(reason)})
}
