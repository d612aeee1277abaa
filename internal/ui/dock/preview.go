package dock

import "github.com/bnema/dockyard/internal/domain/entity"

// PreviewKind tells the render layer how to draw a pending drop.
type PreviewKind int

const (
	PreviewNone PreviewKind = iota
	// PreviewQuadrant highlights the side of another panel.
	PreviewQuadrant
	// PreviewViewport highlights the share of the viewport a snap would take.
	PreviewViewport
	// PreviewTabInsert marks an insertion point in a tab strip.
	PreviewTabInsert
)

func (k PreviewKind) String() string {
	switch k {
	case PreviewQuadrant:
		return "quadrant"
	case PreviewViewport:
		return "viewport"
	case PreviewTabInsert:
		return "tab-insert"
	default:
		return "none"
	}
}

// Preview describes where the dragged panel or tab would land if released now.
type Preview struct {
	Kind PreviewKind
	// Rect is the highlighted area. For tab inserts it is the target header.
	Rect entity.Rect
	// Line is the insertion marker of a tab insert.
	Line entity.Rect

	Edge   entity.DockEdge
	Target entity.PanelID
	Index  int

	// Dragged names what is being moved.
	Panel entity.PanelID
	Block entity.BlockID
}

// Active reports whether a drop would do anything.
func (p Preview) Active() bool {
	return p.Kind != PreviewNone
}
