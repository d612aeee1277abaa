package styles

import "github.com/charmbracelet/lipgloss"

// CellStyle tags a terminal cell drawn by the dock host.
type CellStyle uint8

const (
	CellDefault CellStyle = iota
	CellHeader
	CellHeaderLocked
	CellTabActive
	CellTabInactive
	CellTabLocked
	CellButton
	CellDivider
	CellPreview
	CellPreviewLine
	CellMuted
	CellAccent
	CellWarning
	CellStatus
)

func (t *Theme) buildCellStyles() {
	t.cells = map[CellStyle]lipgloss.Style{
		CellDefault:      lipgloss.NewStyle().Foreground(t.Text),
		CellHeader:       lipgloss.NewStyle().Foreground(t.Muted).Background(t.Surface),
		CellHeaderLocked: lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface),
		CellTabActive:    lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true),
		CellTabInactive:  lipgloss.NewStyle().Foreground(t.Text).Background(t.SurfaceVariant),
		CellTabLocked:    lipgloss.NewStyle().Foreground(t.Warning).Background(t.SurfaceVariant),
		CellButton:       lipgloss.NewStyle().Foreground(t.Text).Background(t.SurfaceVariant).Bold(true),
		CellDivider:      lipgloss.NewStyle().Foreground(t.Border),
		CellPreview:      lipgloss.NewStyle().Background(lipgloss.Color("#1f3a2a")),
		CellPreviewLine:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		CellMuted:        lipgloss.NewStyle().Foreground(t.Muted),
		CellAccent:       lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		CellWarning:      lipgloss.NewStyle().Foreground(t.Warning),
		CellStatus:       lipgloss.NewStyle().Foreground(t.Muted).Background(t.Surface),
	}
}

// Cell returns the lipgloss style for a cell tag.
func (t *Theme) Cell(c CellStyle) lipgloss.Style {
	if s, ok := t.cells[c]; ok {
		return s
	}
	return t.cells[CellDefault]
}
