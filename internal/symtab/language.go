// Package symtab models the two symbol tables a synthetic debug-info
// container carries: a flat minimal index for fast name/address lookups and a
// full, language-tagged table grouped into one compilation unit.
package symtab

import (
	"errors"
	"fmt"
)

// Language tags a symbol with its source language.
type Language uint8

const (
	LangUnknown Language = iota
	LangC
	LangObjC
	LangCPlus
	LangD
	LangGo
	LangFortran
	LangM2
	LangAsm
	LangPascal
	LangOpenCL
	LangRust
	LangAda
)

// ErrUnknownLanguage is returned for any language name outside the supported
// set. "auto" is a caller-side default sentinel, not a language, so it lands
// here too.
var ErrUnknownLanguage = errors.New("invalid language name")

var languageNames = map[Language]string{
	LangC:       "c",
	LangObjC:    "objc",
	LangCPlus:   "cplus",
	LangD:       "d",
	LangGo:      "go",
	LangFortran: "fortran",
	LangM2:      "m2",
	LangAsm:     "asm",
	LangPascal:  "pascal",
	LangOpenCL:  "opencl",
	LangRust:    "rust",
	LangAda:     "ada",
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Language(%d)", l)
}

// ParseLanguage converts a language name to its Language value.
func ParseLanguage(name string) (Language, error) {
	switch name {
	case "c":
		return LangC, nil
	case "objc":
		return LangObjC, nil
	case "cplus":
		return LangCPlus, nil
	case "d":
		return LangD, nil
	case "go":
		return LangGo, nil
	case "fortran":
		return LangFortran, nil
	case "m2":
		return LangM2, nil
	case "asm":
		return LangAsm, nil
	case "pascal":
		return LangPascal, nil
	case "opencl":
		return LangOpenCL, nil
	case "rust":
		return LangRust, nil
	case "ada":
		return LangAda, nil
	default:
		return LangUnknown, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
}

// Languages lists every supported language name in declaration order.
func Languages() []string {
	return []string{
		"c", "objc", "cplus", "d", "go", "fortran",
		"m2", "asm", "pascal", "opencl", "rust", "ada",
	}
}
