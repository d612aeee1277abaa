package dock

import (
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
)

// HitKind classifies what lies under the pointer.
type HitKind int

const (
	HitNone HitKind = iota
	HitTabClose
	HitTabLock
	HitTabUngroup
	HitTab
	HitPanelLock
	HitDragBar
	HitCorner
	HitEdge
	HitContent
)

func (k HitKind) String() string {
	switch k {
	case HitTabClose:
		return "tab-close"
	case HitTabLock:
		return "tab-lock"
	case HitTabUngroup:
		return "tab-ungroup"
	case HitTab:
		return "tab"
	case HitPanelLock:
		return "panel-lock"
	case HitDragBar:
		return "drag-bar"
	case HitCorner:
		return "corner"
	case HitEdge:
		return "edge"
	case HitContent:
		return "content"
	default:
		return "none"
	}
}

// Hit is the result of a hit test. Index is the edge or corner index for
// HitEdge and HitCorner, and the tab index for tab hits.
type Hit struct {
	Kind  HitKind
	Panel entity.PanelID
	Block entity.BlockID
	Index int
}

// hitTest resolves p in priority order: tab buttons, tabs, panel lock button,
// header drag bar, corners, edges, then panel content.
func hitTest(chrome []PanelChrome, edges []service.ResizeEdge, corners []service.CornerHandle, p entity.Point) Hit {
	for _, c := range chrome {
		if !c.Header.Contains(p) {
			continue
		}
		for i, t := range c.Tabs {
			switch {
			case t.Close.Contains(p):
				return Hit{Kind: HitTabClose, Panel: c.Panel, Block: t.Block, Index: i}
			case t.Lock.Contains(p):
				return Hit{Kind: HitTabLock, Panel: c.Panel, Block: t.Block, Index: i}
			case t.Ungroup.Contains(p):
				return Hit{Kind: HitTabUngroup, Panel: c.Panel, Block: t.Block, Index: i}
			}
		}
		for i, t := range c.Tabs {
			if t.Rect.Contains(p) {
				return Hit{Kind: HitTab, Panel: c.Panel, Block: t.Block, Index: i}
			}
		}
		if c.LockButton.Contains(p) {
			return Hit{Kind: HitPanelLock, Panel: c.Panel}
		}
		return Hit{Kind: HitDragBar, Panel: c.Panel}
	}

	if i, ok := service.HitTestCorner(corners, p); ok {
		return Hit{Kind: HitCorner, Index: i}
	}
	if i, ok := service.HitTestEdge(edges, p); ok {
		return Hit{Kind: HitEdge, Index: i}
	}

	for _, c := range chrome {
		if c.Content.Contains(p) {
			return Hit{Kind: HitContent, Panel: c.Panel}
		}
	}
	return Hit{Kind: HitNone}
}

// panelAt returns the chrome of the panel whose bounds contain p.
func panelAt(chrome []PanelChrome, p entity.Point) (PanelChrome, bool) {
	for _, c := range chrome {
		if c.Bounds.Contains(p) {
			return c, true
		}
	}
	return PanelChrome{}, false
}
