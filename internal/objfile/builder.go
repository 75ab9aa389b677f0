package objfile

import (
	"errors"
	"fmt"
	"sort"

	"symforge/internal/arch"
	"symforge/internal/symtab"
	"symforge/internal/trace"
	"symforge/internal/types"
)

// Builder invariant violations.
var (
	ErrDuplicateName = errors.New("duplicate symbol name")
	ErrAlreadyBuilt  = errors.New("objfile already built")
	ErrNilType       = errors.New("typedef symbol requires a type")
)

// ContextProvider supplies the currently selected execution context's
// architecture, if any. Build prefers it over the default target.
type ContextProvider interface {
	SelectedArchitecture() *arch.Arch
}

// EventSink receives the new-objfile notification. The host's symbol-lookup
// machinery subscribes here; this package never looks symbols up itself.
type EventSink interface {
	ObjfileCreated(of *Objfile)
}

// BuildContext carries the injected collaborators Build needs. Zero fields
// fall back to safe defaults: no context, no notification, no tracing, the
// package-default target architecture.
type BuildContext struct {
	Context ContextProvider
	Events  EventSink
	Default *arch.Arch
	Tracer  trace.Tracer
}

func (ctx *BuildContext) tracer() trace.Tracer {
	if ctx.Tracer == nil {
		return trace.Nop
	}
	return ctx.Tracer
}

// defKind tags a symbol definition variant.
type defKind uint8

const (
	defTypedef defKind = iota
	defLabel
	defStatic
)

func (k defKind) String() string {
	switch k {
	case defTypedef:
		return "typedef"
	case defLabel:
		return "label"
	case defStatic:
		return "static"
	default:
		return fmt.Sprintf("defKind(%d)", k)
	}
}

// symbolDef is one accumulated symbol definition: a tagged variant over
// {typedef, label, static}, each knowing how to contribute itself to the
// minimal index and to the full symbol table. All validation happened when
// the definition was added, so contributions cannot fail.
type symbolDef struct {
	kind    defKind
	lang    symtab.Language
	address uint64
	typ     *types.Type
}

// contributeMinimal registers the definition with the minimal-symbol reader.
// Typedefs carry no address, so they contribute nothing here.
func (d symbolDef) contributeMinimal(name string, reader *symtab.MinimalReader) {
	switch d.kind {
	case defLabel:
		reader.Record(name, d.address, symtab.MinimalText)
	case defStatic:
		reader.Record(name, d.address, symtab.MinimalBSS)
	}
}

// contributeFull adds the definition's structured entry to the compilation
// unit. The name is interned into the container's arena first: full symbols
// must not alias builder-owned storage.
func (d symbolDef) contributeFull(name string, of *Objfile, cu *symtab.CompunitBuilder) {
	owned := of.arena.Intern(name)
	switch d.kind {
	case defTypedef:
		cu.Add(&symtab.Symbol{
			Name:         owned,
			Language:     d.lang,
			Domain:       symtab.DomainLabel,
			Class:        symtab.LocTypedef,
			SectionIndex: SectionText,
			Type:         d.typ,
		})
	case defLabel:
		cu.Add(&symtab.Symbol{
			Name:         owned,
			Language:     d.lang,
			Domain:       symtab.DomainLabel,
			Class:        symtab.LocLabel,
			SectionIndex: SectionText,
			Address:      d.address,
		})
	case defStatic:
		cu.Add(&symtab.Symbol{
			Name:         owned,
			Language:     d.lang,
			Domain:       symtab.DomainVar,
			Class:        symtab.LocStatic,
			SectionIndex: SectionBSS,
			Address:      d.address,
		})
	}
}

// Builder accumulates named symbol definitions and materializes them, exactly
// once, into a new debug-info container. Not safe for concurrent use.
type Builder struct {
	name      string
	installed bool
	defs      map[string]symbolDef
}

// NewBuilder creates an open builder. The name becomes both the container
// name and the name of its compilation unit.
func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		defs: make(map[string]symbolDef),
	}
}

// Name returns the builder's name.
func (b *Builder) Name() string { return b.name }

// Built reports whether Build already succeeded.
func (b *Builder) Built() bool { return b.installed }

// Len reports the number of accumulated definitions.
func (b *Builder) Len() int { return len(b.defs) }

// add validates the common parts of every definition and inserts it. On any
// failure the builder's symbol set is left unchanged.
func (b *Builder) add(op, name, language string, def symbolDef) error {
	if b.installed {
		return fmt.Errorf("%s %q: %w", op, name, ErrAlreadyBuilt)
	}
	lang, err := symtab.ParseLanguage(language)
	if err != nil {
		return fmt.Errorf("%s %q: %w", op, name, err)
	}
	if _, exists := b.defs[name]; exists {
		return fmt.Errorf("%s %q: %w", op, name, ErrDuplicateName)
	}
	def.lang = lang
	b.defs[name] = def
	return nil
}

// AddTypeSymbol registers a typedef symbol for an existing type descriptor.
// Typedefs appear only in the full symbol table.
func (b *Builder) AddTypeSymbol(name string, typ *types.Type, language string) error {
	if typ == nil {
		return fmt.Errorf("add type symbol %q: %w", name, ErrNilType)
	}
	return b.add("add type symbol", name, language, symbolDef{kind: defTypedef, typ: typ})
}

// AddLabelSymbol registers a code label at the given address.
func (b *Builder) AddLabelSymbol(name string, address uint64, language string) error {
	return b.add("add label symbol", name, language, symbolDef{kind: defLabel, address: address})
}

// AddStaticSymbol registers a static data symbol at the given address.
func (b *Builder) AddStaticSymbol(name string, address uint64, language string) error {
	return b.add("add static symbol", name, language, symbolDef{kind: defStatic, address: address})
}

// sortedNames returns the definition names in a stable order. Insertion order
// carries no meaning (names are unique), so sorting keeps builds
// deterministic without changing observable semantics.
func (b *Builder) sortedNames() []string {
	names := make([]string, 0, len(b.defs))
	for name := range b.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build materializes the accumulated definitions into a new container and
// notifies the host. It is a one-shot transition: the first call flips the
// builder to built, any later call fails with ErrAlreadyBuilt and no side
// effect. Every definition was validated when it was added, so once the
// container is allocated nothing can fail; the host never observes a
// container with unpopulated tables.
func (b *Builder) Build(ctx BuildContext) (*Objfile, error) {
	if b.installed {
		return nil, fmt.Errorf("build %q: %w", b.name, ErrAlreadyBuilt)
	}
	tr := ctx.tracer()
	tr.Emit(trace.ScopeBuilder, "build start", b.name)

	// Bind the target architecture: the selected execution context wins,
	// then the injected default, then the package default.
	target := ctx.Default
	if ctx.Context != nil {
		if selected := ctx.Context.SelectedArchitecture(); selected != nil {
			target = selected
		}
	}
	if target == nil {
		target = arch.Default()
	}

	b.installed = true

	of := newObjfile(b.name, target)
	tr.Emit(trace.ScopeStep, "sections allocated", "")
	tr.Emit(trace.ScopeStep, "architecture bound", target.Name())

	names := b.sortedNames()

	reader := symtab.NewMinimalReader()
	for _, name := range names {
		b.defs[name].contributeMinimal(name, reader)
		tr.Emit(trace.ScopeSymbol, "minimal symbol recorded", name)
	}
	of.minimal = reader.Install()
	tr.Emit(trace.ScopeStep, "minimal index installed", fmt.Sprintf("%d entries", of.minimal.Len()))

	cu := symtab.NewCompunitBuilder(b.name)
	for _, name := range names {
		b.defs[name].contributeFull(name, of, cu)
		tr.Emit(trace.ScopeSymbol, "full symbol added", name)
	}
	of.compunit = cu.Close()
	tr.Emit(trace.ScopeStep, "compilation unit closed", fmt.Sprintf("%d symbols", of.compunit.Len()))

	// Both tables are populated; the no-op expansion adapter is valid from
	// here on.
	of.quick = runtimeQuick{}

	if ctx.Events != nil {
		ctx.Events.ObjfileCreated(of)
	}
	tr.Emit(trace.ScopeBuilder, "objfile created", of.name)
	return of, nil
}
