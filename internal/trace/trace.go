// Package trace emits structured events for container construction steps.
package trace

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// Level controls tracing verbosity.
type Level uint8

const (
	// LevelOff disables tracing.
	LevelOff Level = iota
	// LevelStep emits builder lifecycle and build-step boundaries.
	LevelStep
	// LevelDebug emits everything, including per-symbol events.
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelStep:
		return "step"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "off":
		return LevelOff, nil
	case "step":
		return LevelStep, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|step|debug)", s)
	}
}

// Scope indicates the granularity of an event. Lower values are coarser.
type Scope uint8

const (
	// ScopeBuilder covers builder lifecycle events.
	ScopeBuilder Scope = iota + 1
	// ScopeStep covers individual build steps (sections, tables, notify).
	ScopeStep
	// ScopeSymbol covers per-symbol registration.
	ScopeSymbol
)

func (s Scope) String() string {
	switch s {
	case ScopeBuilder:
		return "builder"
	case ScopeStep:
		return "step"
	case ScopeSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// ShouldEmit reports whether events of the given scope pass this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelStep:
		return scope <= ScopeStep
	case LevelDebug:
		return true
	default:
		return false
	}
}

// Event is a single trace record.
type Event struct {
	Time  time.Time
	Seq   uint64
	Scope Scope
	Name  string
	Extra string
}

// Tracer is the interface build steps emit through. Implementations must be
// goroutine-safe: the CLI builds several containers concurrently against one
// tracer.
type Tracer interface {
	Emit(scope Scope, name, extra string)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool
}

// nopTracer drops everything.
type nopTracer struct{}

func (nopTracer) Emit(Scope, string, string) {}
func (nopTracer) Flush() error               { return nil }
func (nopTracer) Close() error               { return nil }
func (nopTracer) Level() Level               { return LevelOff }
func (nopTracer) Enabled() bool              { return false }

// Nop is the package-level no-op tracer.
var Nop Tracer = nopTracer{}

// streamTracer writes one text line per event.
type streamTracer struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
	seq   atomic.Uint64
}

// NewStream returns a tracer writing text lines to w at the given level.
func NewStream(w io.Writer, level Level) Tracer {
	return &streamTracer{w: w, level: level}
}

func (t *streamTracer) Emit(scope Scope, name, extra string) {
	if !t.level.ShouldEmit(scope) {
		return
	}
	ev := Event{
		Time:  time.Now(),
		Seq:   t.seq.Add(1),
		Scope: scope,
		Name:  name,
		Extra: extra,
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if ev.Extra != "" {
		fmt.Fprintf(t.w, "%s #%d [%s] %s: %s\n",
			ev.Time.Format(time.TimeOnly), ev.Seq, ev.Scope, ev.Name, ev.Extra)
		return
	}
	fmt.Fprintf(t.w, "%s #%d [%s] %s\n",
		ev.Time.Format(time.TimeOnly), ev.Seq, ev.Scope, ev.Name)
}

func (t *streamTracer) Flush() error  { return nil }
func (t *streamTracer) Close() error  { return nil }
func (t *streamTracer) Level() Level  { return t.level }
func (t *streamTracer) Enabled() bool { return t.level > LevelOff }
