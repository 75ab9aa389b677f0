package snapshot

import (
	"path/filepath"
	"testing"

	"symforge/internal/arch"
	"symforge/internal/objfile"
	"symforge/internal/types"
)

func buildSample(t *testing.T) *objfile.Objfile {
	t.Helper()
	b := objfile.NewBuilder("synthetic")
	owner := types.NewOwner(arch.X8664())
	typ, err := types.NewInteger(owner, 32, true, "uint32_t")
	if err != nil {
		t.Fatalf("NewInteger: %v", err)
	}
	if err := b.AddTypeSymbol("uint32_t", typ, "c"); err != nil {
		t.Fatalf("AddTypeSymbol: %v", err)
	}
	if err := b.AddStaticSymbol("g_count", 0x1000, "c"); err != nil {
		t.Fatalf("AddStaticSymbol: %v", err)
	}
	if err := b.AddLabelSymbol("entry", 0x2000, "rust"); err != nil {
		t.Fatalf("AddLabelSymbol: %v", err)
	}
	of, err := b.Build(objfile.BuildContext{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return of
}

func TestCaptureFlattensContainer(t *testing.T) {
	s := Capture(buildSample(t))
	if s.Name != "synthetic" || s.Compunit != "synthetic" {
		t.Fatalf("names wrong: %+v", s)
	}
	if len(s.Sections) != 4 || s.Sections[0] != ".text" || s.Sections[3] != ".bss" {
		t.Fatalf("sections wrong: %v", s.Sections)
	}
	if len(s.Minimal) != 2 || len(s.Symbols) != 3 {
		t.Fatalf("table sizes wrong: %d minimal, %d full", len(s.Minimal), len(s.Symbols))
	}
	var sawTypedef bool
	for _, sym := range s.Symbols {
		if sym.Class == "typedef" {
			sawTypedef = true
			if sym.TypeName != "uint32_t" || sym.TypeKind != "integer" || sym.BitSize != 32 {
				t.Fatalf("typedef row wrong: %+v", sym)
			}
		}
	}
	if !sawTypedef {
		t.Fatalf("typedef symbol missing from snapshot")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "synthetic.mp")
	want := Capture(buildSample(t))
	if err := Write(path, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Name != want.Name || len(got.Minimal) != len(want.Minimal) || len(got.Symbols) != len(want.Symbols) {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, want)
	}
}

func TestReadRejectsWrongSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.mp")
	s := Capture(buildSample(t))
	s.Schema = 99
	if err := Write(path, s); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := Read(path); err == nil {
		t.Fatalf("expected schema error")
	}
}
