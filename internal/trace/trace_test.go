package trace

import (
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var sb strings.Builder
	tr := NewStream(&sb, LevelStep)
	tr.Emit(ScopeBuilder, "build start", "synthetic")
	tr.Emit(ScopeSymbol, "register", "g_count")
	tr.Emit(ScopeStep, "minimal index installed", "")

	out := sb.String()
	if !strings.Contains(out, "build start") || !strings.Contains(out, "minimal index installed") {
		t.Fatalf("step-level events missing:\n%s", out)
	}
	if strings.Contains(out, "g_count") {
		t.Fatalf("symbol-scope event leaked at step level:\n%s", out)
	}
}

func TestNopTracer(t *testing.T) {
	if Nop.Enabled() {
		t.Fatalf("nop tracer must report disabled")
	}
	Nop.Emit(ScopeBuilder, "ignored", "")
	if err := Nop.Flush(); err != nil {
		t.Fatalf("nop flush: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel("debug"); err != nil || lvl != LevelDebug {
		t.Fatalf("ParseLevel(debug) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
