// Package arch describes target architectures a type or container can be
// bound to.
package arch

import (
	"fmt"

	"symforge/internal/arena"
)

// ByteOrder is the target byte order of an architecture.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// ByteOrderCount sizes per-endianness tables.
const ByteOrderCount = 2

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return fmt.Sprintf("ByteOrder(%d)", o)
	}
}

// ParseByteOrder converts a string to a ByteOrder.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "little":
		return LittleEndian, nil
	case "big":
		return BigEndian, nil
	default:
		return LittleEndian, fmt.Errorf("invalid byte order: %q (expected: little|big)", s)
	}
}

// Arch is a target architecture description. It owns an arena shared by every
// architecture-scoped type, so those types live as long as the description
// itself.
type Arch struct {
	name      string
	byteOrder ByteOrder
	addrBits  int
	arena     *arena.Arena
}

// New creates an architecture description with its own arena.
func New(name string, order ByteOrder, addrBits int) *Arch {
	return &Arch{
		name:      name,
		byteOrder: order,
		addrBits:  addrBits,
		arena:     arena.New(),
	}
}

// Name returns the architecture name, e.g. "x86-64".
func (a *Arch) Name() string { return a.name }

// ByteOrder returns the target byte order.
func (a *Arch) ByteOrder() ByteOrder { return a.byteOrder }

// AddrBits returns the width of a code address in bits.
func (a *Arch) AddrBits() int { return a.addrBits }

// Arena returns the arena backing architecture-scoped allocations.
func (a *Arch) Arena() *arena.Arena { return a.arena }

func (a *Arch) String() string {
	return fmt.Sprintf("%s (%s-endian, %d-bit)", a.name, a.byteOrder, a.addrBits)
}

// Known architecture constructors. Each call creates a fresh description with
// an independent arena; callers that want sharing keep the returned value.

func X8664() *Arch   { return New("x86-64", LittleEndian, 64) }
func AArch64() *Arch { return New("aarch64", LittleEndian, 64) }
func RiscV64() *Arch { return New("riscv64", LittleEndian, 64) }
func PPC64() *Arch   { return New("ppc64", BigEndian, 64) }

// Default returns the fallback target used when no execution context is
// selected.
func Default() *Arch { return X8664() }

// Lookup resolves a known architecture by name.
func Lookup(name string) (*Arch, error) {
	switch name {
	case "x86-64", "x86_64", "amd64":
		return X8664(), nil
	case "aarch64", "arm64":
		return AArch64(), nil
	case "riscv64":
		return RiscV64(), nil
	case "ppc64":
		return PPC64(), nil
	default:
		return nil, fmt.Errorf("unknown architecture: %q", name)
	}
}
