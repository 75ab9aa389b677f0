package types

import (
	"testing"

	"symforge/internal/arch"
	"symforge/internal/arena"
)

// fakeModule stands in for a debug-info container during tests.
type fakeModule struct {
	name  string
	arena *arena.Arena
	arch  *arch.Arch
}

func newFakeModule(name string, a *arch.Arch) *fakeModule {
	return &fakeModule{name: name, arena: arena.New(), arch: a}
}

func (m *fakeModule) Name() string             { return m.name }
func (m *fakeModule) Arena() *arena.Arena      { return m.arena }
func (m *fakeModule) Architecture() *arch.Arch { return m.arch }

func TestNewOwnerClassification(t *testing.T) {
	archOwner := NewOwner(arch.X8664())
	if !archOwner.Valid() || archOwner.Kind() != OwnerArchitecture {
		t.Fatalf("architecture input misclassified: %v", archOwner)
	}

	modOwner := NewOwner(newFakeModule("synthetic", arch.X8664()))
	if !modOwner.Valid() || modOwner.Kind() != OwnerModule {
		t.Fatalf("module input misclassified: %v", modOwner)
	}

	for _, input := range []any{nil, 42, "x86-64", (*arch.Arch)(nil)} {
		if o := NewOwner(input); o.Valid() {
			t.Fatalf("input %v produced a valid owner", input)
		}
	}
}

func TestInvalidOwnerRefusesOperations(t *testing.T) {
	var o Owner
	if o.Valid() {
		t.Fatalf("zero owner must be invalid")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("Arena on invalid owner must panic")
		}
	}()
	o.Arena()
}

func TestOwnerByteOrderFollowsScope(t *testing.T) {
	big := arch.PPC64()
	if got := NewOwner(big).ByteOrder(); got != arch.BigEndian {
		t.Fatalf("architecture owner byte order = %v", got)
	}
	mod := newFakeModule("synthetic", big)
	if got := NewOwner(mod).ByteOrder(); got != arch.BigEndian {
		t.Fatalf("module owner must derive byte order from its target, got %v", got)
	}
}

func TestOwnerInternCopies(t *testing.T) {
	o := NewOwner(arch.X8664())
	buf := []byte("g_count")
	owned := o.Intern(string(buf))
	buf[0] = '?'
	if owned != "g_count" {
		t.Fatalf("interned string tracked caller buffer: %q", owned)
	}
}
