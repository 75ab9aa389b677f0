// Package floatfmt describes the bit layout of floating-point encodings.
package floatfmt

import "fmt"

// IntBit states whether the integer part of the mantissa occupies an explicit
// bit in the representation or is implied by the exponent.
type IntBit uint8

const (
	// IntBitImplicit means the leading integer bit is not stored.
	IntBitImplicit IntBit = iota
	// IntBitExplicit means the representation carries the integer bit.
	IntBitExplicit
)

func (b IntBit) String() string {
	switch b {
	case IntBitImplicit:
		return "implicit"
	case IntBitExplicit:
		return "explicit"
	default:
		return fmt.Sprintf("IntBit(%d)", b)
	}
}

// Format is a mutable bit-layout descriptor for one floating-point encoding.
// All bit positions count from the most significant bit of the value. A
// Format stays mutable until it is cloned into a type descriptor; the clone
// is independent of any further mutation of the original.
type Format struct {
	// TotalSize is the full width of the value in bits.
	TotalSize uint32
	// SignStart is the bit position of the sign bit.
	SignStart uint32
	// ExpStart is the bit position of the exponent field.
	ExpStart uint32
	// ExpLen is the exponent field width in bits.
	ExpLen uint32
	// ExpBias is subtracted from the stored exponent.
	ExpBias int32
	// ExpNaN is the exponent value signalling NaN/Inf.
	ExpNaN uint32
	// ManStart is the bit position of the mantissa field.
	ManStart uint32
	// ManLen is the mantissa field width in bits.
	ManLen uint32
	// IntBit states whether the mantissa's integer bit is stored.
	IntBit IntBit
	// Name is an internal name for debugging.
	Name string
}

// New returns a zero-sized format with an empty name. Every field is meant to
// be assigned by the caller before the format is used to build a type.
func New() *Format {
	return &Format{}
}

// Valid reports whether a byte pattern is representable in this format.
// Synthetic formats accept every pattern.
func (f *Format) Valid() bool { return true }

// Clone returns an independent copy of the format.
func (f *Format) Clone() *Format {
	cp := *f
	return &cp
}

// Equal reports field-for-field equality with other.
func (f *Format) Equal(other *Format) bool {
	if f == nil || other == nil {
		return f == other
	}
	return *f == *other
}

func (f *Format) String() string {
	name := f.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%s (%d bits, exp %d@%d bias %d, man %d@%d, intbit %s)",
		name, f.TotalSize, f.ExpLen, f.ExpStart, f.ExpBias, f.ManLen, f.ManStart, f.IntBit)
}
