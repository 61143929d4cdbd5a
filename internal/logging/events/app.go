package events

import "github.com/atomicstack/linepick/internal/logging"

type AppTracer struct{}

type SourceTracer struct{}

var (
	App    = AppTracer{}
	Source = SourceTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Terminal(dedicated bool, profile int) {
	logging.Trace("app.terminal", map[string]interface{}{"tty": dedicated, "profile": profile})
}

func (SourceTracer) Read(lines, kept, dropped int) {
	logging.Trace("source.read", map[string]interface{}{"lines": lines, "kept": kept, "dropped": dropped})
}
