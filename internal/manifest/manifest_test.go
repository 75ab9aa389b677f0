package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"symforge/internal/arch"
	"symforge/internal/objfile"
	"symforge/internal/symtab"
)

const sampleManifest = `
name = "synthetic"
architecture = "ppc64"
language = "c"

[[types]]
name = "uint32_t"
kind = "integer"
bit_size = 32
unsigned = true

[[types]]
name = "float"
kind = "float"
format = "single"

[[types]]
name = "uint32_t *"
kind = "pointer"
target = "uint32_t"

[[symbols]]
kind = "typedef"
name = "uint32_t"
type = "uint32_t"

[[symbols]]
kind = "static"
name = "g_count"
address = 0x1000

[[symbols]]
kind = "label"
name = "entry"
address = 0x2000
language = "rust"
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "objfile.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadAndBuild(t *testing.T) {
	m, err := Load(writeManifest(t, sampleManifest))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	of, err := m.Build(objfile.BuildContext{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if of.Name() != "synthetic" || of.Architecture().Name() != "ppc64" {
		t.Fatalf("container wrong: %v", of)
	}
	if of.Minimal().Len() != 2 || of.Compunit().Len() != 3 {
		t.Fatalf("table sizes wrong: %d minimal, %d full", of.Minimal().Len(), of.Compunit().Len())
	}

	// Default language applies where a symbol omits one.
	static, ok := of.Compunit().Lookup("g_count", symtab.DomainVar)
	if !ok || static.Language != symtab.LangC {
		t.Fatalf("default language not applied: %+v %v", static, ok)
	}
	label, ok := of.Compunit().Lookup("entry", symtab.DomainLabel)
	if !ok || label.Language != symtab.LangRust {
		t.Fatalf("explicit language lost: %+v %v", label, ok)
	}

	// Float formats built for the manifest architecture's byte order.
	typedef, ok := of.Compunit().Lookup("uint32_t", symtab.DomainLabel)
	if !ok || typedef.Type == nil || typedef.Type.BitSize() != 32 {
		t.Fatalf("typedef type lost: %+v %v", typedef, ok)
	}
}

func TestPointerDefaultsToAddressWidth(t *testing.T) {
	content := `
name = "x"

[[types]]
name = "char"
kind = "character"
bit_size = 8

[[types]]
name = "char *"
kind = "pointer"
target = "char"

[[symbols]]
kind = "typedef"
name = "string_t"
type = "char *"
`
	m, err := Load(writeManifest(t, content))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	of, err := m.Build(objfile.BuildContext{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	sym, ok := of.Compunit().Lookup("string_t", symtab.DomainLabel)
	if !ok || sym.Type == nil {
		t.Fatalf("typedef lost: %+v %v", sym, ok)
	}
	if sym.Type.BitSize() != of.Architecture().AddrBits() {
		t.Fatalf("pointer width %d, want address width %d", sym.Type.BitSize(), of.Architecture().AddrBits())
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeManifest(t, "name = \"x\"\nbogus = 1\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Fatalf("got %v, want unknown key error", err)
	}
}

func TestLoadRequiresName(t *testing.T) {
	if _, err := Load(writeManifest(t, "language = \"c\"\n")); err == nil {
		t.Fatalf("expected error for missing objfile name")
	}
}

func TestBuildRejectsBadDeclarations(t *testing.T) {
	cases := []struct {
		label    string
		content  string
		fragment string
	}{
		{
			"duplicate type",
			"name = \"x\"\n[[types]]\nname = \"t\"\nkind = \"integer\"\nbit_size = 8\n[[types]]\nname = \"t\"\nkind = \"integer\"\nbit_size = 8\n",
			"declared twice",
		},
		{
			"undeclared pointer target",
			"name = \"x\"\n[[types]]\nname = \"p\"\nkind = \"pointer\"\ntarget = \"ghost\"\n",
			"undeclared target",
		},
		{
			"undeclared typedef type",
			"name = \"x\"\n[[symbols]]\nkind = \"typedef\"\nname = \"s\"\ntype = \"ghost\"\n",
			"undeclared type",
		},
		{
			"unknown symbol kind",
			"name = \"x\"\n[[symbols]]\nkind = \"function\"\nname = \"s\"\n",
			"unknown symbol kind",
		},
		{
			"unknown float format",
			"name = \"x\"\n[[types]]\nname = \"f\"\nkind = \"float\"\nformat = \"vax\"\n",
			"unknown float format",
		},
	}
	for _, tc := range cases {
		m, err := Load(writeManifest(t, tc.content))
		if err != nil {
			t.Fatalf("%s: Load: %v", tc.label, err)
		}
		_, err = m.Build(objfile.BuildContext{})
		if err == nil || !strings.Contains(err.Error(), tc.fragment) {
			t.Fatalf("%s: got %v, want %q", tc.label, err, tc.fragment)
		}
	}
}

func TestBuildRejectsUnknownLanguage(t *testing.T) {
	content := "name = \"x\"\n[[symbols]]\nkind = \"label\"\nname = \"s\"\naddress = 1\nlanguage = \"klingon\"\n"
	m, err := Load(writeManifest(t, content))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := m.Build(objfile.BuildContext{}); !errors.Is(err, symtab.ErrUnknownLanguage) {
		t.Fatalf("got %v, want ErrUnknownLanguage", err)
	}
}

func TestCustomLayout(t *testing.T) {
	content := `
name = "x"

[[types]]
name = "bf16"
kind = "float"
[types.layout]
totalsize = 16
sign_start = 0
exp_start = 1
exp_len = 8
exp_bias = 127
exp_nan = 255
man_start = 9
man_len = 7
name = "bfloat16"
`
	m, err := Load(writeManifest(t, content))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	of, err := m.Build(objfile.BuildContext{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if of.Name() != "x" {
		t.Fatalf("container wrong: %v", of)
	}
}

func TestBuildBindsManifestArchitecture(t *testing.T) {
	m, err := Load(writeManifest(t, sampleManifest))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	of, err := m.Build(objfile.BuildContext{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if of.Architecture().ByteOrder() != arch.BigEndian {
		t.Fatalf("ppc64 manifest must bind a big-endian target")
	}
}
