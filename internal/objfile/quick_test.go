package objfile

import (
	"strings"
	"testing"

	"symforge/internal/symtab"
)

func TestRuntimeQuickIsDegenerate(t *testing.T) {
	b := NewBuilder("synthetic")
	if err := b.AddStaticSymbol("g_count", 0x1000, "c"); err != nil {
		t.Fatalf("AddStaticSymbol: %v", err)
	}
	of, err := b.Build(BuildContext{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	q := of.Quick()

	if q.HasSymbols(of) {
		t.Fatalf("eagerly populated container must report no pending symbols")
	}
	var sb strings.Builder
	q.Dump(of, &sb)
	if sb.Len() != 0 {
		t.Fatalf("dump must write nothing, got %q", sb.String())
	}
	q.ExpandMatchingSymbols(of, "g_count", symtab.DomainVar)
	if !q.ExpandSymtabsMatching(of, func(string) bool { return false }) {
		t.Fatalf("expansion walk must report completion")
	}

	// The tables stay usable regardless of what the adapter was asked.
	if _, ok := of.Minimal().Lookup("g_count"); !ok {
		t.Fatalf("minimal index lost after quick calls")
	}
}
