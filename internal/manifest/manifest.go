// Package manifest loads declarative objfile descriptions from TOML and
// turns them into builder calls.
package manifest

import (
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"

	"symforge/internal/arch"
	"symforge/internal/floatfmt"
	"symforge/internal/objfile"
	"symforge/internal/types"
)

// TypeDecl declares one type descriptor. Targets reference the names of
// earlier declarations.
type TypeDecl struct {
	Name     string      `toml:"name"`
	Kind     string      `toml:"kind"`
	BitSize  int64       `toml:"bit_size"`
	Unsigned bool        `toml:"unsigned"`
	Target   string      `toml:"target"`
	Format   string      `toml:"format"` // well-known layout: half|single|double|quad
	Layout   *LayoutDecl `toml:"layout"` // custom layout, wins over Format
}

// LayoutDecl is an inline float layout.
type LayoutDecl struct {
	TotalSize int64  `toml:"totalsize"`
	SignStart int64  `toml:"sign_start"`
	ExpStart  int64  `toml:"exp_start"`
	ExpLen    int64  `toml:"exp_len"`
	ExpBias   int64  `toml:"exp_bias"`
	ExpNaN    int64  `toml:"exp_nan"`
	ManStart  int64  `toml:"man_start"`
	ManLen    int64  `toml:"man_len"`
	IntBit    bool   `toml:"intbit"` // true = explicit integer bit
	Name      string `toml:"name"`
}

// SymbolDecl declares one symbol definition.
type SymbolDecl struct {
	Kind     string `toml:"kind"` // typedef|label|static
	Name     string `toml:"name"`
	Address  uint64 `toml:"address"`
	Language string `toml:"language"` // empty = manifest default
	Type     string `toml:"type"`     // typedef only: a declared type name
}

// Manifest is one objfile description.
type Manifest struct {
	Name         string       `toml:"name"`
	Architecture string       `toml:"architecture"`
	Language     string       `toml:"language"`
	Types        []TypeDecl   `toml:"types"`
	Symbols      []SymbolDecl `toml:"symbols"`

	// Path is where the manifest was loaded from. Informational only.
	Path string `toml:"-"`
}

// Load reads and validates a manifest file. Symbol and type names are
// NFC-normalized so visually identical spellings compare equal later.
func Load(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("load manifest %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load manifest %s: unknown key %q", path, undecoded[0].String())
	}
	m.Path = path

	if m.Name == "" {
		return nil, fmt.Errorf("load manifest %s: objfile name is required", path)
	}
	if m.Language == "" {
		m.Language = "c"
	}
	for i := range m.Types {
		m.Types[i].Name = norm.NFC.String(m.Types[i].Name)
		m.Types[i].Target = norm.NFC.String(m.Types[i].Target)
	}
	for i := range m.Symbols {
		m.Symbols[i].Name = norm.NFC.String(m.Symbols[i].Name)
		m.Symbols[i].Type = norm.NFC.String(m.Symbols[i].Type)
	}
	return &m, nil
}

// targetArch resolves the manifest's architecture, or the package default.
func (m *Manifest) targetArch() (*arch.Arch, error) {
	if m.Architecture == "" {
		return arch.Default(), nil
	}
	return arch.Lookup(m.Architecture)
}

func (d *LayoutDecl) format() (*floatfmt.Format, error) {
	f := floatfmt.New()
	fields := []struct {
		name string
		src  int64
		dst  *uint32
	}{
		{"totalsize", d.TotalSize, &f.TotalSize},
		{"sign_start", d.SignStart, &f.SignStart},
		{"exp_start", d.ExpStart, &f.ExpStart},
		{"exp_len", d.ExpLen, &f.ExpLen},
		{"exp_nan", d.ExpNaN, &f.ExpNaN},
		{"man_start", d.ManStart, &f.ManStart},
		{"man_len", d.ManLen, &f.ManLen},
	}
	for _, field := range fields {
		v, err := safecast.Conv[uint32](field.src)
		if err != nil {
			return nil, fmt.Errorf("layout field %s: %w", field.name, err)
		}
		*field.dst = v
	}
	bias, err := safecast.Conv[int32](d.ExpBias)
	if err != nil {
		return nil, fmt.Errorf("layout field exp_bias: %w", err)
	}
	f.ExpBias = bias
	if d.IntBit {
		f.IntBit = floatfmt.IntBitExplicit
	}
	f.Name = d.Name
	return f, nil
}

func wellKnownFormat(name string) (*floatfmt.Format, error) {
	switch name {
	case "half":
		return floatfmt.IEEEHalf(), nil
	case "single":
		return floatfmt.IEEESingle(), nil
	case "double":
		return floatfmt.IEEEDouble(), nil
	case "quad":
		return floatfmt.IEEEQuad(), nil
	default:
		return nil, fmt.Errorf("unknown float format: %q (expected: half|single|double|quad)", name)
	}
}

// floatBitSize maps an absent bit_size to the derive-from-format sentinel.
func floatBitSize(decl TypeDecl) int {
	if decl.BitSize == 0 {
		return types.SizeFromFormat
	}
	return int(decl.BitSize)
}

// buildType constructs one declared type against the architecture scope.
func buildType(owner types.Owner, decl TypeDecl, known map[string]*types.Type) (*types.Type, error) {
	bitSize, err := safecast.Conv[int](decl.BitSize)
	if err != nil {
		return nil, fmt.Errorf("type %q: bit_size: %w", decl.Name, err)
	}
	kind, err := types.ParseKind(decl.Kind)
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", decl.Name, err)
	}

	switch kind {
	case types.KindInteger:
		return types.NewInteger(owner, bitSize, decl.Unsigned, decl.Name)
	case types.KindCharacter:
		return types.NewCharacter(owner, bitSize, decl.Unsigned, decl.Name)
	case types.KindBoolean:
		return types.NewBoolean(owner, bitSize, decl.Unsigned, decl.Name)
	case types.KindFloat:
		var format *floatfmt.Format
		if decl.Layout != nil {
			format, err = decl.Layout.format()
		} else {
			format, err = wellKnownFormat(decl.Format)
		}
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", decl.Name, err)
		}
		return types.NewFloat(owner, floatBitSize(decl), format, decl.Name)
	case types.KindDecFloat:
		return types.NewDecFloat(owner, bitSize, decl.Name)
	case types.KindComplex:
		elem, ok := known[decl.Target]
		if !ok {
			return nil, fmt.Errorf("type %q: undeclared target %q", decl.Name, decl.Target)
		}
		return types.NewComplex(elem, decl.Name)
	case types.KindPointer:
		elem, ok := known[decl.Target]
		if !ok {
			return nil, fmt.Errorf("type %q: undeclared target %q", decl.Name, decl.Target)
		}
		if bitSize == 0 {
			bitSize = owner.Architecture().AddrBits()
		}
		return types.NewPointer(owner, elem, bitSize, decl.Name)
	case types.KindRaw:
		return types.New(owner, kind, bitSize, decl.Name)
	default:
		// Fixed-point types are module-scoped and a manifest's types are
		// built before the container exists, so the kind cannot appear
		// here.
		return nil, fmt.Errorf("type %q: kind %s not supported in manifests", decl.Name, kind)
	}
}

// Build constructs all declared types against the manifest's architecture,
// feeds every symbol into a fresh builder, and materializes the container.
func (m *Manifest) Build(ctx objfile.BuildContext) (*objfile.Objfile, error) {
	target, err := m.targetArch()
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", m.Name, err)
	}
	if ctx.Default == nil {
		ctx.Default = target
	}

	owner := types.NewOwner(target)
	declared := make(map[string]*types.Type, len(m.Types))
	for _, decl := range m.Types {
		if _, exists := declared[decl.Name]; exists {
			return nil, fmt.Errorf("manifest %q: type %q declared twice", m.Name, decl.Name)
		}
		typ, err := buildType(owner, decl, declared)
		if err != nil {
			return nil, fmt.Errorf("manifest %q: %w", m.Name, err)
		}
		declared[decl.Name] = typ
	}

	b := objfile.NewBuilder(m.Name)
	for _, sym := range m.Symbols {
		language := sym.Language
		if language == "" {
			language = m.Language
		}
		switch sym.Kind {
		case "typedef":
			typ, ok := declared[sym.Type]
			if !ok {
				return nil, fmt.Errorf("manifest %q: symbol %q: undeclared type %q", m.Name, sym.Name, sym.Type)
			}
			err = b.AddTypeSymbol(sym.Name, typ, language)
		case "label":
			err = b.AddLabelSymbol(sym.Name, sym.Address, language)
		case "static":
			err = b.AddStaticSymbol(sym.Name, sym.Address, language)
		default:
			err = fmt.Errorf("unknown symbol kind: %q (expected: typedef|label|static)", sym.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("manifest %q: %w", m.Name, err)
		}
	}
	return b.Build(ctx)
}

// Exists reports whether path points at a readable file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
