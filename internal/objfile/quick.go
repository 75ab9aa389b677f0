package objfile

import (
	"io"

	"symforge/internal/symtab"
)

// QuickSymbols is the "there might be more symbols, go look" extension point
// of a debug-info container. Real readers use it to expand symbol tables
// lazily from on-disk debug data.
type QuickSymbols interface {
	// HasSymbols reports whether unexpanded symbols remain.
	HasSymbols(of *Objfile) bool

	// Dump writes reader-specific diagnostics for the container.
	Dump(of *Objfile, w io.Writer)

	// ExpandMatchingSymbols expands everything that could match the given
	// name in the given domain.
	ExpandMatchingSymbols(of *Objfile, name string, domain symtab.Domain)

	// ExpandSymtabsMatching expands symbol tables whose symbols satisfy
	// match, reporting whether the walk completed.
	ExpandSymtabsMatching(of *Objfile, match func(name string) bool) bool
}

// runtimeQuick is the adapter installed on containers built by this package.
// Every capability is a no-op or trivially true, which is correct only
// because Build populates both symbol tables eagerly before the container
// becomes visible. Pairing this adapter with a lazily built container would
// make query results undefined.
type runtimeQuick struct{}

func (runtimeQuick) HasSymbols(*Objfile) bool { return false }

func (runtimeQuick) Dump(*Objfile, io.Writer) {}

func (runtimeQuick) ExpandMatchingSymbols(*Objfile, string, symtab.Domain) {}

func (runtimeQuick) ExpandSymtabsMatching(*Objfile, func(string) bool) bool { return true }
