package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"symforge/internal/snapshot"
	"symforge/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse <snapshot.mp>",
	Short: "Browse a container snapshot interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := snapshot.Read(args[0])
		if err != nil {
			return err
		}
		program := tea.NewProgram(ui.NewBrowser(snap), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("browser failed: %w", err)
		}
		return nil
	},
}
