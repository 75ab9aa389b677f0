package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"symforge/internal/snapshot"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	sectionColor = color.New(color.FgYellow)
	addrColor    = color.New(color.FgGreen)
)

var dumpCmd = &cobra.Command{
	Use:   "dump <snapshot.mp>",
	Short: "Print the symbol tables of a container snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := snapshot.Read(args[0])
		if err != nil {
			return err
		}
		dumpSnapshot(cmd.OutOrStdout(), snap)
		return nil
	},
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func nameColumnWidth(snap *snapshot.Snapshot) int {
	w := runewidth.StringWidth("NAME")
	for _, e := range snap.Minimal {
		if ew := runewidth.StringWidth(e.Name); ew > w {
			w = ew
		}
	}
	for _, s := range snap.Symbols {
		if sw := runewidth.StringWidth(s.Name); sw > w {
			w = sw
		}
	}
	return w + 2
}

func dumpSnapshot(out io.Writer, snap *snapshot.Snapshot) {
	headerColor.Fprintf(out, "%s", snap.Name)
	fmt.Fprintf(out, "  %s, %s-endian, %d-bit\n", snap.Arch, snap.ByteOrder, snap.AddrBits)
	sectionColor.Fprint(out, "sections:")
	fmt.Fprintf(out, " %s\n\n", strings.Join(snap.Sections, " "))

	nameW := nameColumnWidth(snap)

	headerColor.Fprintf(out, "minimal symbols (%d)\n", len(snap.Minimal))
	fmt.Fprintf(out, "%s%s  %s\n", pad("NAME", nameW), pad("ADDRESS", 18), "KIND")
	for _, e := range snap.Minimal {
		fmt.Fprint(out, pad(e.Name, nameW))
		addrColor.Fprint(out, pad(fmt.Sprintf("%#x", e.Address), 18))
		fmt.Fprintf(out, "  %s\n", e.Kind)
	}

	headerColor.Fprintf(out, "\nfull symbols (%d) in compunit %q\n", len(snap.Symbols), snap.Compunit)
	fmt.Fprintf(out, "%s%s  %s  %s  %s  %s\n",
		pad("NAME", nameW), pad("ADDRESS", 18), pad("DOMAIN", 7), pad("CLASS", 8), pad("LANG", 8), "TYPE")
	for _, s := range snap.Symbols {
		fmt.Fprint(out, pad(s.Name, nameW))
		addrColor.Fprint(out, pad(fmt.Sprintf("%#x", s.Address), 18))
		typeCell := "-"
		if s.TypeName != "" {
			typeCell = fmt.Sprintf("%s (%s, %d bits)", s.TypeName, s.TypeKind, s.BitSize)
		}
		fmt.Fprintf(out, "  %s  %s  %s  %s\n",
			pad(s.Domain, 7), pad(s.Class, 8), pad(s.Language, 8), typeCell)
	}
}
