package symtab

// CompunitBuilder accumulates full symbols for one compilation unit and
// closes exactly once.
type CompunitBuilder struct {
	name    string
	symbols []*Symbol
	closed  bool
}

// NewCompunitBuilder starts a compilation unit with the given name, normally
// the name of the objfile builder producing it.
func NewCompunitBuilder(name string) *CompunitBuilder {
	return &CompunitBuilder{name: name}
}

// Add appends a symbol to the unit. Adding after Close is a programming
// error.
func (b *CompunitBuilder) Add(sym *Symbol) {
	if b.closed {
		panic("symtab: Add after Close")
	}
	if sym == nil {
		panic("symtab: nil symbol")
	}
	b.symbols = append(b.symbols, sym)
}

// Close freezes the unit. The builder must not be reused afterwards.
func (b *CompunitBuilder) Close() *Compunit {
	if b.closed {
		panic("symtab: Close called twice")
	}
	b.closed = true

	symbols := b.symbols
	b.symbols = nil
	return &Compunit{name: b.name, symbols: symbols}
}

// Compunit is an immutable compilation unit: the structured, language-tagged
// half of a container's symbol data.
type Compunit struct {
	name    string
	symbols []*Symbol
}

// Name returns the unit name.
func (cu *Compunit) Name() string { return cu.name }

// Len reports the number of symbols in the unit.
func (cu *Compunit) Len() int { return len(cu.symbols) }

// Symbols exposes the unit's symbols. Callers must not modify the slice.
func (cu *Compunit) Symbols() []*Symbol { return cu.symbols }

// Lookup returns the first symbol with the given name in the given domain.
func (cu *Compunit) Lookup(name string, domain Domain) (*Symbol, bool) {
	for _, sym := range cu.symbols {
		if sym.Name == name && sym.Domain == domain {
			return sym, true
		}
	}
	return nil, false
}
