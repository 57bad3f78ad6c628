// Package telemetry implements counter-only instrumentation for the
// engine, trimmed from the teacher's foundry/similarity/telemetry.go
// pattern (a package-level optional *System, EnableTelemetry/
// DisableTelemetry, emit* no-ops when disabled) but dropping the teacher's
// JSON-schema-validated event envelope: this module emits plain counters
// with string tags, nothing that needs schema validation, since there is
// no event stream here, only call-site counters.
package telemetry

import "sync"

// Counter is anything that can record a named, tagged count — satisfied by
// a host application's real metrics client. A host application plugs its
// own implementation in via Enable; nothing here assumes Prometheus,
// StatsD, or any specific backend.
type Counter interface {
	Add(name string, value float64, tags map[string]string)
}

var (
	mu      sync.RWMutex
	sink    Counter
	enabled bool
)

// Enable wires sink as the active counter destination. All emit calls are
// no-ops until this is called, matching the teacher's opt-in default.
func Enable(sink2 Counter) {
	mu.Lock()
	defer mu.Unlock()
	sink = sink2
	enabled = sink2 != nil
}

// Disable turns off telemetry emission.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	sink = nil
	enabled = false
}

// Emit records name/value/tags if telemetry is enabled; otherwise it is a
// no-op. Safe to call from hot paths unconditionally.
func Emit(name string, value float64, tags map[string]string) {
	mu.RLock()
	s, on := sink, enabled
	mu.RUnlock()

	if !on {
		return
	}
	s.Add(name, value, tags)
}

// LengthBucket categorizes a code-point length for the string-length
// counter, matching the teacher's tiny/short/medium/long/very_long bucket
// boundaries in foundry/similarity/telemetry.go.
func LengthBucket(codePoints int) string {
	switch {
	case codePoints == 0:
		return "empty"
	case codePoints <= 10:
		return "tiny"
	case codePoints <= 50:
		return "short"
	case codePoints <= 200:
		return "medium"
	case codePoints <= 1000:
		return "long"
	default:
		return "very_long"
	}
}
