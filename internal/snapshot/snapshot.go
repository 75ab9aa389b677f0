// Package snapshot serializes built containers so the CLI can inspect them
// after the producing process exited.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"symforge/internal/objfile"
)

// Schema version - increment when the snapshot format changes.
const schemaVersion uint16 = 1

// MinimalEntry is one flat minimal-symbol row.
type MinimalEntry struct {
	Name    string
	Address uint64
	Kind    string
}

// SymbolEntry is one full-symbol row.
type SymbolEntry struct {
	Name     string
	Language string
	Domain   string
	Class    string
	Section  int
	Address  uint64
	TypeName string
	TypeKind string
	BitSize  int
}

// Snapshot is the serializable image of one built container.
type Snapshot struct {
	Schema uint16

	Name      string
	Arch      string
	ByteOrder string
	AddrBits  int

	Sections []string
	Compunit string
	Minimal  []MinimalEntry
	Symbols  []SymbolEntry
}

// Capture flattens a built container into a snapshot.
func Capture(of *objfile.Objfile) *Snapshot {
	target := of.Architecture()
	s := &Snapshot{
		Schema:    schemaVersion,
		Name:      of.Name(),
		Arch:      target.Name(),
		ByteOrder: target.ByteOrder().String(),
		AddrBits:  target.AddrBits(),
		Compunit:  of.Compunit().Name(),
	}
	for _, sec := range of.Sections() {
		s.Sections = append(s.Sections, sec.Name)
	}
	for _, m := range of.Minimal().Entries() {
		s.Minimal = append(s.Minimal, MinimalEntry{
			Name:    m.Name,
			Address: m.Address,
			Kind:    m.Kind.String(),
		})
	}
	for _, sym := range of.Compunit().Symbols() {
		entry := SymbolEntry{
			Name:     sym.Name,
			Language: sym.Language.String(),
			Domain:   sym.Domain.String(),
			Class:    sym.Class.String(),
			Section:  sym.SectionIndex,
			Address:  sym.Address,
		}
		if sym.Type != nil {
			entry.TypeName = sym.Type.Name()
			entry.TypeKind = sym.Type.Kind().String()
			entry.BitSize = sym.Type.BitSize()
		}
		s.Symbols = append(s.Symbols, entry)
	}
	return s
}

// Write serializes the snapshot to path. The write goes through a temp file
// and an atomic rename, so readers never observe a half-written snapshot.
func Write(path string, s *Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(s); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Read deserializes a snapshot, rejecting files written by an incompatible
// schema.
func Read(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s Snapshot
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if s.Schema != schemaVersion {
		return nil, fmt.Errorf("snapshot %s: schema %d, expected %d", path, s.Schema, schemaVersion)
	}
	return &s, nil
}
