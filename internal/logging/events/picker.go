package events

import "github.com/atomicstack/custom-picker/internal/logging"

type PickerTracer struct{}

var Picker = PickerTracer{}

func (PickerTracer) Open(id string, options int) {
	logging.Trace("picker.open", map[string]interface{}{"picker": id, "options": options})
}

func (PickerTracer) Close(id, reason string) {
	logging.Trace("picker.close", map[string]interface{}{"picker": id, "reason": reason})
}

func (PickerTracer) Cursor(id string, cursor int) {
	logging.Trace("picker.cursor", map[string]interface{}{"picker": id, "cursor": cursor})
}

// Select records a tagged row writing its value through the binding.
func (PickerTracer) Select(id string, row int, tag string) {
	logging.Trace("picker.select", map[string]interface{}{"picker": id, "row": row, "tag": tag})
}

// Inert records an untagged row being activated; the selection is unchanged.
func (PickerTracer) Inert(id string, row int) {
	logging.Trace("picker.inert", map[string]interface{}{"picker": id, "row": row})
}
