package symtab

import (
	"fmt"

	"symforge/internal/types"
)

// Domain is the namespace a full symbol is looked up in.
type Domain uint8

const (
	DomainVar Domain = iota
	DomainLabel
)

func (d Domain) String() string {
	switch d {
	case DomainVar:
		return "VAR"
	case DomainLabel:
		return "LABEL"
	default:
		return fmt.Sprintf("Domain(%d)", d)
	}
}

// AddressClass states how a full symbol's value is interpreted.
type AddressClass uint8

const (
	LocTypedef AddressClass = iota
	LocLabel
	LocStatic
)

func (c AddressClass) String() string {
	switch c {
	case LocTypedef:
		return "typedef"
	case LocLabel:
		return "label"
	case LocStatic:
		return "static"
	default:
		return fmt.Sprintf("AddressClass(%d)", c)
	}
}

// Symbol is one entry in the full symbol table. Its name is expected to be
// owned by the container's arena; the symbol itself never copies it again.
type Symbol struct {
	Name         string
	Language     Language
	Domain       Domain
	Class        AddressClass
	SectionIndex int
	Address      uint64
	Type         *types.Type
}

func (s *Symbol) String() string {
	return fmt.Sprintf("%s %s/%s @%#x (%s)", s.Name, s.Domain, s.Class, s.Address, s.Language)
}
