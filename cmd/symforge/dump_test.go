package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"symforge/internal/snapshot"
)

func TestPad(t *testing.T) {
	if got := pad("abc", 6); got != "abc   " {
		t.Fatalf("pad: %q", got)
	}
	if got := pad("abcdef", 3); got != "abcdef" {
		t.Fatalf("pad must not truncate: %q", got)
	}
}

func TestDumpSnapshotOutput(t *testing.T) {
	color.NoColor = true
	snap := &snapshot.Snapshot{
		Name:      "synthetic",
		Arch:      "x86-64",
		ByteOrder: "little",
		AddrBits:  64,
		Sections:  []string{".text", ".data", ".rodata", ".bss"},
		Compunit:  "synthetic",
		Minimal: []snapshot.MinimalEntry{
			{Name: "entry", Address: 0x2000, Kind: "text"},
			{Name: "g_count", Address: 0x1000, Kind: "bss"},
		},
		Symbols: []snapshot.SymbolEntry{
			{Name: "entry", Language: "c", Domain: "LABEL", Class: "label", Address: 0x2000},
			{Name: "g_count", Language: "c", Domain: "VAR", Class: "static", Address: 0x1000},
			{Name: "uint32_t", Language: "c", Domain: "LABEL", Class: "typedef", TypeName: "uint32_t", TypeKind: "integer", BitSize: 32},
		},
	}

	var sb strings.Builder
	dumpSnapshot(&sb, snap)
	out := sb.String()
	for _, want := range []string{
		"synthetic", "minimal symbols (2)", "full symbols (3)",
		"0x2000", "uint32_t (integer, 32 bits)", ".rodata",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump missing %q:\n%s", want, out)
		}
	}
}
