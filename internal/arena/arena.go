// Package arena provides the append-only storage backing a type owner.
//
// An arena is never freed by this package: strings and descriptors placed in
// it stay alive for as long as the arena itself, which in turn is owned by a
// longer-lived entity (an architecture description or a debug-info
// container).
package arena

import (
	"fmt"

	"fortio.org/safecast"
)

// StringID identifies an interned string inside one arena.
type StringID uint32

// NoStringID marks the absence of a string. Index 0 is reserved for it and
// always resolves to "".
const NoStringID StringID = 0

// Arena is an append-only allocation scope. It interns strings with copy
// semantics and pins arbitrary values so their lifetime matches the arena's.
// Not safe for concurrent use; callers must serialize.
type Arena struct {
	byID  []string
	index map[string]StringID
	pins  []any
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern copies s into the arena and returns the owned copy. The result never
// aliases the caller's backing storage, so later mutation or release of the
// input leaves the interned string unchanged. Interning the same content
// twice returns the same owned string.
func (a *Arena) Intern(s string) string {
	if id, ok := a.index[s]; ok {
		return a.byID[id]
	}

	// Own copy, detached from the source buffer.
	cpy := string([]byte(s))
	value, err := safecast.Conv[uint32](len(a.byID))
	if err != nil {
		panic(fmt.Errorf("arena string overflow: %w", err))
	}
	a.byID = append(a.byID, cpy)
	a.index[cpy] = StringID(value)
	return cpy
}

// InternID behaves like Intern but returns the stable ID of the owned copy.
func (a *Arena) InternID(s string) StringID {
	if id, ok := a.index[s]; ok {
		return id
	}
	owned := a.Intern(s)
	return a.index[owned]
}

// Lookup resolves an ID back to the owned string. Returns false for IDs the
// arena never issued.
func (a *Arena) Lookup(id StringID) (string, bool) {
	if int(id) >= len(a.byID) {
		return "", false
	}
	return a.byID[id], true
}

// Pin ties v's lifetime to the arena. Values pinned here are reachable until
// the arena itself is dropped, mirroring obstack-style ownership.
func (a *Arena) Pin(v any) {
	if v == nil {
		panic("arena.Pin: nil value")
	}
	a.pins = append(a.pins, v)
}

// Strings reports the number of interned strings, the empty sentinel
// included. Never less than 1.
func (a *Arena) Strings() int { return len(a.byID) }

// Pinned reports the number of pinned values.
func (a *Arena) Pinned() int { return len(a.pins) }
