// Package ui renders an interactive browser over container snapshots.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"symforge/internal/snapshot"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// browserModel pages through a snapshot's two symbol tables.
type browserModel struct {
	snap        *snapshot.Snapshot
	tbl         table.Model
	showMinimal bool
	done        bool
}

// NewBrowser returns a Bubble Tea model browsing the given snapshot.
func NewBrowser(snap *snapshot.Snapshot) tea.Model {
	m := &browserModel{snap: snap}
	m.tbl = table.New(table.WithFocused(true), table.WithHeight(16))
	m.reload()
	return m
}

func columnWidth(title string, cells []string) int {
	w := runewidth.StringWidth(title)
	for _, c := range cells {
		if cw := runewidth.StringWidth(c); cw > w {
			w = cw
		}
	}
	return w + 2
}

// reload swaps the table contents between the full and minimal views.
func (m *browserModel) reload() {
	if m.showMinimal {
		names := make([]string, 0, len(m.snap.Minimal))
		rows := make([]table.Row, 0, len(m.snap.Minimal))
		for _, e := range m.snap.Minimal {
			names = append(names, e.Name)
			rows = append(rows, table.Row{e.Name, fmt.Sprintf("%#x", e.Address), e.Kind})
		}
		m.tbl.SetColumns([]table.Column{
			{Title: "Name", Width: columnWidth("Name", names)},
			{Title: "Address", Width: 18},
			{Title: "Kind", Width: 6},
		})
		m.tbl.SetRows(rows)
		m.tbl.SetCursor(0)
		return
	}

	names := make([]string, 0, len(m.snap.Symbols))
	rows := make([]table.Row, 0, len(m.snap.Symbols))
	for _, s := range m.snap.Symbols {
		names = append(names, s.Name)
		typeCell := s.TypeName
		if typeCell == "" {
			typeCell = "-"
		}
		rows = append(rows, table.Row{
			s.Name, s.Domain, s.Class, s.Language,
			fmt.Sprintf("%#x", s.Address), typeCell,
		})
	}
	m.tbl.SetColumns([]table.Column{
		{Title: "Name", Width: columnWidth("Name", names)},
		{Title: "Domain", Width: 7},
		{Title: "Class", Width: 8},
		{Title: "Lang", Width: 8},
		{Title: "Address", Width: 18},
		{Title: "Type", Width: 16},
	})
	m.tbl.SetRows(rows)
	m.tbl.SetCursor(0)
}

func (m *browserModel) Init() tea.Cmd { return nil }

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		case "tab":
			m.showMinimal = !m.showMinimal
			m.reload()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Height > 8 {
			m.tbl.SetHeight(msg.Height - 6)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *browserModel) View() string {
	if m.done {
		return ""
	}
	view := "full symbols"
	if m.showMinimal {
		view = "minimal symbols"
	}
	header := titleStyle.Render(fmt.Sprintf("%s / %s (%s, %s-endian)",
		m.snap.Name, view, m.snap.Arch, m.snap.ByteOrder))
	hint := hintStyle.Render("tab: switch table  ↑/↓: move  q: quit")
	return header + "\n" + frameStyle.Render(m.tbl.View()) + "\n" + hint + "\n"
}
