package types

import (
	"errors"
	"fmt"

	"symforge/internal/floatfmt"
)

// Construction failures. Builders wrap these with the name of the failing
// operation, so callers can match with errors.Is and still see where the
// input was rejected.
var (
	ErrBadBitSize     = errors.New("bit size must be positive")
	ErrBadDecFloatLen = errors.New("decimal float size must be 32, 64 or 128")
	ErrBadKind        = errors.New("unknown type kind")
	ErrComplexElement = errors.New("complex element must be an integer or float type")
	ErrNilFormat      = errors.New("float format must not be nil")
	ErrNilTarget      = errors.New("target type must not be nil")
	ErrModuleScope    = errors.New("fixed-point types require a module-scoped owner")
)

// allocator constructs descriptors inside one owner's arena. It assumes the
// owner was already checked for validity by the caller, matching the builder
// contract.
type allocator struct {
	owner Owner
}

// newType validates the request, then allocates the descriptor and interns
// its name. Nothing is reachable from the arena until validation passed, so a
// failed construction leaves no partial descriptor behind.
func (al allocator) newType(kind Kind, bitSize int, name string) (*Type, error) {
	if !kind.known() {
		return nil, fmt.Errorf("%w: %d", ErrBadKind, kind)
	}
	if bitSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBitSize, bitSize)
	}
	t := &Type{
		kind:    kind,
		bitSize: bitSize,
		name:    al.owner.Intern(name),
		owner:   al.owner,
	}
	al.owner.Arena().Pin(t)
	return t, nil
}

// New constructs a descriptor of an arbitrary kind with a caller-supplied bit
// size. The owner must be valid; see Owner.Valid.
func New(owner Owner, kind Kind, bitSize int, name string) (*Type, error) {
	t, err := allocator{owner}.newType(kind, bitSize, name)
	if err != nil {
		return nil, fmt.Errorf("new type: %w", err)
	}
	return t, nil
}

// NewInteger constructs an integer type.
func NewInteger(owner Owner, bitSize int, unsigned bool, name string) (*Type, error) {
	t, err := allocator{owner}.newType(KindInteger, bitSize, name)
	if err != nil {
		return nil, fmt.Errorf("new integer type: %w", err)
	}
	t.unsigned = unsigned
	return t, nil
}

// NewCharacter constructs a character type.
func NewCharacter(owner Owner, bitSize int, unsigned bool, name string) (*Type, error) {
	t, err := allocator{owner}.newType(KindCharacter, bitSize, name)
	if err != nil {
		return nil, fmt.Errorf("new character type: %w", err)
	}
	t.unsigned = unsigned
	return t, nil
}

// NewBoolean constructs a boolean type.
func NewBoolean(owner Owner, bitSize int, unsigned bool, name string) (*Type, error) {
	t, err := allocator{owner}.newType(KindBoolean, bitSize, name)
	if err != nil {
		return nil, fmt.Errorf("new boolean type: %w", err)
	}
	t.unsigned = unsigned
	return t, nil
}

// NewFloat constructs a floating-point type from a format description. The
// format is deep-copied into the owner's arena, so later mutation of the
// caller's value does not reach the descriptor. Only the owner's native byte
// order gets a layout; the opposite-endianness slot stays unset. Passing
// SizeFromFormat as bitSize takes the width from the format itself.
func NewFloat(owner Owner, bitSize int, format *floatfmt.Format, name string) (*Type, error) {
	if format == nil {
		return nil, fmt.Errorf("new float type: %w", ErrNilFormat)
	}

	frozen := format.Clone()
	frozen.Name = owner.Intern(frozen.Name)
	owner.Arena().Pin(frozen)

	if bitSize == SizeFromFormat {
		bitSize = int(frozen.TotalSize)
	}
	t, err := allocator{owner}.newType(KindFloat, bitSize, name)
	if err != nil {
		return nil, fmt.Errorf("new float type: %w", err)
	}
	t.floats[owner.ByteOrder()] = frozen
	return t, nil
}

// NewDecFloat constructs a decimal floating-point type. Only the widths a
// decimal encoding supports are accepted.
func NewDecFloat(owner Owner, bitSize int, name string) (*Type, error) {
	switch bitSize {
	case 32, 64, 128:
	default:
		return nil, fmt.Errorf("new decfloat type: %w: %d", ErrBadDecFloatLen, bitSize)
	}
	t, err := allocator{owner}.newType(KindDecFloat, bitSize, name)
	if err != nil {
		return nil, fmt.Errorf("new decfloat type: %w", err)
	}
	return t, nil
}

// CanCreateComplex reports whether t can serve as the element of a complex
// type.
func CanCreateComplex(t *Type) bool {
	if t == nil {
		return false
	}
	return t.kind == KindInteger || t.kind == KindFloat
}

// NewComplex constructs a complex type over an existing element type. The new
// descriptor is allocated in whichever arena the element belongs to, so no
// separate owner is supplied. Fails without allocating when the element kind
// is unsupported.
func NewComplex(elem *Type, name string) (*Type, error) {
	if elem == nil {
		return nil, fmt.Errorf("new complex type: %w", ErrNilTarget)
	}
	if !CanCreateComplex(elem) {
		return nil, fmt.Errorf("new complex type: %w: %s", ErrComplexElement, elem.kind)
	}
	t, err := allocator{elem.owner}.newType(KindComplex, 2*elem.bitSize, name)
	if err != nil {
		return nil, fmt.Errorf("new complex type: %w", err)
	}
	t.target = elem
	return t, nil
}

// NewPointer constructs a pointer to target with an explicit bit size. The
// owner may differ from the target's owner: a pointer can live in a different
// scope than the type it points at.
func NewPointer(owner Owner, target *Type, bitSize int, name string) (*Type, error) {
	if target == nil {
		return nil, fmt.Errorf("new pointer type: %w", ErrNilTarget)
	}
	t, err := allocator{owner}.newType(KindPointer, bitSize, name)
	if err != nil {
		return nil, fmt.Errorf("new pointer type: %w", err)
	}
	t.target = target
	return t, nil
}

// NewFixedPoint constructs a fixed-point type. Only module-scoped owners are
// accepted; architecture-scoped fixed-point construction is not offered.
func NewFixedPoint(owner Owner, bitSize int, unsigned bool, name string) (*Type, error) {
	if _, ok := owner.Module(); !ok {
		return nil, fmt.Errorf("new fixed-point type: %w", ErrModuleScope)
	}
	t, err := allocator{owner}.newType(KindFixedPoint, bitSize, name)
	if err != nil {
		return nil, fmt.Errorf("new fixed-point type: %w", err)
	}
	t.unsigned = unsigned
	return t, nil
}
