package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"symforge/internal/symtab"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages a symbol can be tagged with",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range symtab.Languages() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}
