package events

import "github.com/atomicstack/custom-picker/internal/logging"

type NavTracer struct{}

type FormTracer struct{}

type ActionTracer struct{}

var (
	Nav    = NavTracer{}
	Form   = FormTracer{}
	Action = ActionTracer{}
)

func (NavTracer) Push(screen string, depth int) {
	logging.Trace("nav.push", map[string]interface{}{"screen": screen, "depth": depth})
}

func (NavTracer) Pop(screen, reason string, depth int) {
	logging.Trace("nav.pop", map[string]interface{}{"screen": screen, "reason": reason, "depth": depth})
}

func (NavTracer) Quit(screen string) {
	logging.Trace("nav.quit", map[string]interface{}{"screen": screen})
}

func (FormTracer) Cursor(screen string, cursor int) {
	logging.Trace("form.cursor", map[string]interface{}{"screen": screen, "cursor": cursor})
}

func (FormTracer) Activate(screen, row string) {
	logging.Trace("form.activate", map[string]interface{}{"screen": screen, "row": row})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}
