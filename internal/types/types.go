// Package types constructs synthetic type descriptors scoped to an owning
// arena. Descriptors are built once, never mutated, and live exactly as long
// as the owner they were allocated against.
package types

import (
	"fmt"

	"symforge/internal/arch"
	"symforge/internal/floatfmt"
)

// Kind enumerates the supported kinds of type descriptors.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindCharacter
	KindBoolean
	KindFloat
	KindDecFloat
	KindComplex
	KindPointer
	KindFixedPoint
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindInteger:
		return "integer"
	case KindCharacter:
		return "character"
	case KindBoolean:
		return "boolean"
	case KindFloat:
		return "float"
	case KindDecFloat:
		return "decfloat"
	case KindComplex:
		return "complex"
	case KindPointer:
		return "pointer"
	case KindFixedPoint:
		return "fixedpoint"
	case KindRaw:
		return "raw"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "integer":
		return KindInteger, nil
	case "character":
		return KindCharacter, nil
	case "boolean":
		return KindBoolean, nil
	case "float":
		return KindFloat, nil
	case "decfloat":
		return KindDecFloat, nil
	case "complex":
		return KindComplex, nil
	case "pointer":
		return KindPointer, nil
	case "fixedpoint":
		return KindFixedPoint, nil
	case "raw":
		return KindRaw, nil
	default:
		return KindInvalid, fmt.Errorf("unknown type kind: %q", s)
	}
}

func (k Kind) known() bool {
	return k > KindInvalid && k <= KindRaw
}

// SizeFromFormat is the bit-size sentinel meaning "derive the size from the
// float format".
const SizeFromFormat = -1

// Type is an immutable type descriptor. Its name and any embedded float
// format were copied into the owner's arena at construction time, so the
// descriptor never references caller-supplied storage.
type Type struct {
	kind     Kind
	bitSize  int
	unsigned bool
	name     string
	target   *Type
	floats   [arch.ByteOrderCount]*floatfmt.Format
	owner    Owner
}

// Kind returns the descriptor kind.
func (t *Type) Kind() Kind { return t.kind }

// BitSize returns the descriptor's width in bits.
func (t *Type) BitSize() int { return t.bitSize }

// Unsigned reports the signedness flag for kinds that carry one.
func (t *Type) Unsigned() bool { return t.unsigned }

// Name returns the arena-owned name.
func (t *Type) Name() string { return t.name }

// Target returns the element type of a pointer or complex descriptor, nil
// for every other kind.
func (t *Type) Target() *Type { return t.target }

// FloatFormat returns the layout registered for the given byte order. The
// second result is false when no layout was registered for that order; only
// the owner's native order is ever populated.
func (t *Type) FloatFormat(order arch.ByteOrder) (*floatfmt.Format, bool) {
	f := t.floats[order]
	return f, f != nil
}

// Owner returns the allocation scope the descriptor belongs to.
func (t *Type) Owner() Owner { return t.owner }

func (t *Type) String() string {
	if t.target != nil {
		return fmt.Sprintf("%s %q -> %q (%d bits)", t.kind, t.name, t.target.name, t.bitSize)
	}
	return fmt.Sprintf("%s %q (%d bits)", t.kind, t.name, t.bitSize)
}
