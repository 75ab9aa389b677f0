package types

import (
	"fmt"

	"symforge/internal/arch"
	"symforge/internal/arena"
)

// Module is the container side of type ownership: a debug-info unit with its
// own arena and a bound architecture. It is implemented by objfile.Objfile;
// declaring it here keeps the dependency arrow pointing from the symbol layer
// down into the type layer.
type Module interface {
	Name() string
	Arena() *arena.Arena
	Architecture() *arch.Arch
}

// OwnerKind tags the variant held by an Owner.
type OwnerKind uint8

const (
	// OwnerNone marks an owner produced by failed classification. It is
	// never a meaningful default: every operation on such an owner is a
	// caller bug.
	OwnerNone OwnerKind = iota
	OwnerArchitecture
	OwnerModule
)

func (k OwnerKind) String() string {
	switch k {
	case OwnerNone:
		return "none"
	case OwnerArchitecture:
		return "architecture"
	case OwnerModule:
		return "module"
	default:
		return fmt.Sprintf("OwnerKind(%d)", k)
	}
}

// Owner is the allocation and lifetime scope of a type descriptor: either one
// architecture description (shared across containers) or one specific
// module. The zero value is invalid.
type Owner struct {
	kind   OwnerKind
	arch   *arch.Arch
	module Module
}

// NewOwner classifies v as architecture-like or module-like. Anything else
// yields an invalid owner; callers must check Valid before using it.
func NewOwner(v any) Owner {
	switch x := v.(type) {
	case *arch.Arch:
		if x != nil {
			return Owner{kind: OwnerArchitecture, arch: x}
		}
	case Module:
		if x != nil {
			return Owner{kind: OwnerModule, module: x}
		}
	}
	return Owner{}
}

// ArchOwner wraps an architecture description as an owner.
func ArchOwner(a *arch.Arch) Owner { return NewOwner(a) }

// ModuleOwner wraps a module as an owner.
func ModuleOwner(m Module) Owner { return NewOwner(m) }

// Valid reports whether classification succeeded. Operations other than Valid
// and Kind panic on an invalid owner.
func (o Owner) Valid() bool { return o.kind != OwnerNone }

// Kind returns the owner variant tag.
func (o Owner) Kind() OwnerKind { return o.kind }

// mustBeValid is the defensive check behind every accessor: an invalid owner
// reaching this point means the caller skipped Valid, and continuing would
// allocate through an undefined arena.
func (o Owner) mustBeValid() {
	if !o.Valid() {
		panic("types: operation on invalid owner")
	}
}

// Arena returns the arena backing this owner's allocations.
func (o Owner) Arena() *arena.Arena {
	o.mustBeValid()
	if o.kind == OwnerArchitecture {
		return o.arch.Arena()
	}
	return o.module.Arena()
}

// Architecture returns the architecture the owner is bound to: the owner
// itself for architecture scope, the module's target otherwise.
func (o Owner) Architecture() *arch.Arch {
	o.mustBeValid()
	if o.kind == OwnerArchitecture {
		return o.arch
	}
	return o.module.Architecture()
}

// ByteOrder returns the owner's target byte order.
func (o Owner) ByteOrder() arch.ByteOrder {
	return o.Architecture().ByteOrder()
}

// Intern copies s into the owner's arena and returns the owned copy.
func (o Owner) Intern(s string) string {
	return o.Arena().Intern(s)
}

// Module returns the module payload, or false for architecture-scoped and
// invalid owners.
func (o Owner) Module() (Module, bool) {
	if o.kind != OwnerModule {
		return nil, false
	}
	return o.module, true
}

func (o Owner) String() string {
	switch o.kind {
	case OwnerArchitecture:
		return fmt.Sprintf("architecture(%s)", o.arch.Name())
	case OwnerModule:
		return fmt.Sprintf("module(%s)", o.module.Name())
	default:
		return "invalid owner"
	}
}
