// Package objfile builds synthetic debug-info containers: objfiles that were
// never backed by an on-disk object file, populated entirely from symbol
// definitions a caller registered by hand.
package objfile

import (
	"fmt"

	"symforge/internal/arch"
	"symforge/internal/arena"
	"symforge/internal/symtab"
)

// Pseudo-section indices of a synthetic objfile. The four sections exist so
// symbols have somewhere to point; none of them has backing storage.
const (
	SectionText = iota
	SectionData
	SectionRodata
	SectionBSS
	sectionCount
)

// Section is one pseudo-section of a container.
type Section struct {
	Name  string
	Index int
}

// Objfile is a fully populated synthetic debug-info container. It is created
// exactly once per successful Builder.Build and never mutated afterwards;
// consumers only read the tables populated at construction time.
type Objfile struct {
	name     string
	arch     *arch.Arch
	arena    *arena.Arena
	sections [sectionCount]Section
	minimal  *symtab.MinimalIndex
	compunit *symtab.Compunit
	quick    QuickSymbols
}

func newObjfile(name string, target *arch.Arch) *Objfile {
	of := &Objfile{
		name:  name,
		arch:  target,
		arena: arena.New(),
	}
	of.sections = [sectionCount]Section{
		{Name: ".text", Index: SectionText},
		{Name: ".data", Index: SectionData},
		{Name: ".rodata", Index: SectionRodata},
		{Name: ".bss", Index: SectionBSS},
	}
	return of
}

// Name returns the container name.
func (of *Objfile) Name() string { return of.name }

// Architecture returns the target the container was bound to at build time.
func (of *Objfile) Architecture() *arch.Arch { return of.arch }

// Arena returns the container's arena. Types and strings scoped to this
// container live exactly as long as the container does.
func (of *Objfile) Arena() *arena.Arena { return of.arena }

// Sections returns the four pseudo-sections.
func (of *Objfile) Sections() []Section { return of.sections[:] }

// Section returns the pseudo-section with the given index.
func (of *Objfile) Section(index int) (Section, error) {
	if index < 0 || index >= sectionCount {
		return Section{}, fmt.Errorf("objfile %q: no section %d", of.name, index)
	}
	return of.sections[index], nil
}

// Minimal returns the flat name→address index.
func (of *Objfile) Minimal() *symtab.MinimalIndex { return of.minimal }

// Compunit returns the full symbol table's single compilation unit.
func (of *Objfile) Compunit() *symtab.Compunit { return of.compunit }

// Quick returns the container's lazy-expansion adapter.
func (of *Objfile) Quick() QuickSymbols { return of.quick }

func (of *Objfile) String() string {
	return fmt.Sprintf("objfile %q (%s, %d minimal, %d full)",
		of.name, of.arch.Name(), of.minimal.Len(), of.compunit.Len())
}
