package dock

import "github.com/bnema/dockyard/internal/domain/entity"

// TabChrome is the header geometry of one tab. Ungroup is empty when the
// tab is alone in its group.
type TabChrome struct {
	Block   entity.BlockID
	Title   string
	Active  bool
	Locked  bool
	Rect    entity.Rect
	Close   entity.Rect
	Lock    entity.Rect
	Ungroup entity.Rect
}

// PanelChrome is the geometry of one displayed panel: a header strip holding
// the tabs and the panel lock button, and the content rectangle below it.
type PanelChrome struct {
	Panel      entity.PanelID
	Locked     bool
	Bounds     entity.Rect
	Header     entity.Rect
	Content    entity.Rect
	LockButton entity.Rect
	Tabs       []TabChrome
}

// TabRects returns the tab rectangles in order.
func (c PanelChrome) TabRects() []entity.Rect {
	rects := make([]entity.Rect, len(c.Tabs))
	for i, t := range c.Tabs {
		rects[i] = t.Rect
	}
	return rects
}

// buildChrome lays out headers for every leaf showing content, in tree order.
func buildChrome(d *entity.Dock, s Settings) []PanelChrome {
	var out []PanelChrome
	entity.Walk(d.Root, func(node entity.DockNode, _ int) bool {
		if !node.HasVisibleContent(d) {
			return false
		}
		leaf, ok := node.(*entity.BlockNode)
		if !ok {
			return true
		}
		if g := d.Panel(leaf.Panel); g != nil {
			out = append(out, panelChrome(d, g, leaf.Bounds(), s))
		}
		return true
	})
	return out
}

func panelChrome(d *entity.Dock, g *entity.PanelGroup, bounds entity.Rect, s Settings) PanelChrome {
	hh := min(s.HeaderHeight, bounds.H)
	header := entity.Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: hh}
	c := PanelChrome{
		Panel:   g.ID,
		Locked:  g.Locked,
		Bounds:  bounds,
		Header:  header,
		Content: bounds.Inset(hh),
	}

	bs := min(s.ButtonSize, hh, header.W)
	by := header.Y + (hh-bs)/2
	if bs > 0 {
		c.LockButton = entity.Rect{X: header.Right() - bs, Y: by, W: bs, H: bs}
	}

	n := g.Len()
	if n == 0 {
		return c
	}
	avail := max(header.W-c.LockButton.W, 0)
	tw := min(s.TabMaxWidth, avail/n)
	x := header.X
	for _, id := range g.Blocks {
		b := d.Block(id)
		if b == nil {
			continue
		}
		tab := TabChrome{
			Block:  id,
			Title:  b.DisplayTitle(),
			Active: id == g.Active,
			Locked: d.IsBlockLocked(id),
			Rect:   entity.Rect{X: x, Y: header.Y, W: tw, H: hh},
		}
		// Buttons sit right-aligned inside the tab: ungroup, lock, close.
		if bs > 0 && tw >= 3*bs {
			right := tab.Rect.Right()
			tab.Close = entity.Rect{X: right - bs, Y: by, W: bs, H: bs}
			tab.Lock = entity.Rect{X: right - 2*bs, Y: by, W: bs, H: bs}
			if n > 1 {
				tab.Ungroup = entity.Rect{X: right - 3*bs, Y: by, W: bs, H: bs}
			}
		}
		c.Tabs = append(c.Tabs, tab)
		x += tw
	}
	return c
}
