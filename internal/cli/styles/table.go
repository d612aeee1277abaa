package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// TableStyles colors bubbles tables with the theme. Tables here are
// printed once, so the selected row looks like any other.
func (t *Theme) TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(t.Border).
		Foreground(t.Accent).
		Bold(true)
	s.Cell = s.Cell.Foreground(t.Text)
	s.Selected = s.Cell
	return s
}

// PanelTableColumns returns columns for the panel group table.
func PanelTableColumns() []table.Column {
	return []table.Column{
		{Title: "Panel", Width: 38},
		{Title: "Active", Width: 14},
		{Title: "Blocks", Width: 30},
		{Title: "Locked", Width: 8},
	}
}

// PanelRows converts a document's groups into table rows. Locked blocks
// are suffixed with "!".
func PanelRows(doc *entity.LayoutDocument) []table.Row {
	rows := make([]table.Row, 0, len(doc.Panels))
	for _, p := range doc.Panels {
		names := make([]string, 0, len(p.Blocks))
		for _, id := range p.Blocks {
			name := string(id)
			if doc.BlockLocks[id] {
				name += "!"
			}
			names = append(names, name)
		}
		locked := ""
		if doc.PanelLocks[p.ID] {
			locked = "yes"
		}
		rows = append(rows, table.Row{
			string(p.ID),
			string(p.Active),
			strings.Join(names, ", "),
			locked,
		})
	}
	return rows
}

// MenuTableColumns returns columns for the block catalog table.
func MenuTableColumns() []table.Column {
	return []table.Column{
		{Title: "Block", Width: 16},
		{Title: "Kind", Width: 10},
		{Title: "Title", Width: 20},
		{Title: "Shown", Width: 6},
	}
}

// MenuRows converts a document's catalog into table rows.
func MenuRows(doc *entity.LayoutDocument) []table.Row {
	rows := make([]table.Row, 0, len(doc.Menu))
	for _, m := range doc.Menu {
		shown := "-"
		if m.Enabled {
			shown = "yes"
		}
		rows = append(rows, table.Row{string(m.ID), string(m.Kind), m.Title, shown})
	}
	return rows
}

// RenderTable renders a static table sized to its rows.
func RenderTable(theme *Theme, columns []table.Column, rows []table.Row) string {
	width := 0
	for _, c := range columns {
		width += c.Width + 2 // cell padding
	}
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithWidth(width),
		table.WithStyles(theme.TableStyles()),
	).View()
}
