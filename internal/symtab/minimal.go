package symtab

import (
	"fmt"
	"sort"
)

// MinimalKind classifies a minimal symbol by the section flavor it lives in.
type MinimalKind uint8

const (
	MinimalText MinimalKind = iota
	MinimalData
	MinimalBSS
)

func (k MinimalKind) String() string {
	switch k {
	case MinimalText:
		return "text"
	case MinimalData:
		return "data"
	case MinimalBSS:
		return "bss"
	default:
		return fmt.Sprintf("MinimalKind(%d)", k)
	}
}

// MinimalSymbol is one flat name→address entry.
type MinimalSymbol struct {
	Name    string
	Address uint64
	Kind    MinimalKind
}

// MinimalReader accumulates minimal symbols and installs them exactly once.
// The record/install split mirrors how container population works: everything
// is gathered first, then frozen into a queryable index.
type MinimalReader struct {
	entries   []MinimalSymbol
	installed bool
}

// NewMinimalReader returns an empty reader.
func NewMinimalReader() *MinimalReader {
	return &MinimalReader{}
}

// Record adds one entry. Recording after Install is a programming error.
func (r *MinimalReader) Record(name string, address uint64, kind MinimalKind) {
	if r.installed {
		panic("symtab: Record after Install")
	}
	r.entries = append(r.entries, MinimalSymbol{Name: name, Address: address, Kind: kind})
}

// Install freezes the accumulated entries into an index sorted by name.
// The reader must not be reused afterwards.
func (r *MinimalReader) Install() *MinimalIndex {
	if r.installed {
		panic("symtab: Install called twice")
	}
	r.installed = true

	entries := r.entries
	r.entries = nil
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Address < entries[j].Address
	})
	return &MinimalIndex{entries: entries}
}

// MinimalIndex is the immutable flat name→address table used for fast
// existence checks.
type MinimalIndex struct {
	entries []MinimalSymbol
}

// Lookup returns the entry for name, if any.
func (ix *MinimalIndex) Lookup(name string) (MinimalSymbol, bool) {
	i := sort.Search(len(ix.entries), func(i int) bool {
		return ix.entries[i].Name >= name
	})
	if i < len(ix.entries) && ix.entries[i].Name == name {
		return ix.entries[i], true
	}
	return MinimalSymbol{}, false
}

// Len reports the number of entries.
func (ix *MinimalIndex) Len() int { return len(ix.entries) }

// Entries exposes the sorted entries. Callers must not modify the slice.
func (ix *MinimalIndex) Entries() []MinimalSymbol { return ix.entries }
