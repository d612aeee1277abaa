package service

import (
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// ClassifyQuadrant picks the side of rect a dropped panel should dock on.
// The top and bottom strips, each strip*H tall, win over the left/right halves.
func ClassifyQuadrant(rect entity.Rect, p entity.Point, strip float64) entity.DockEdge {
	strip = math.Min(math.Max(strip, 0), 0.5)
	band := int(math.Round(float64(rect.H) * strip))
	relY := p.Y - rect.Y
	switch {
	case relY < band:
		return entity.DockEdgeTop
	case relY >= rect.H-band:
		return entity.DockEdgeBottom
	case p.X-rect.X < rect.W/2:
		return entity.DockEdgeLeft
	default:
		return entity.DockEdgeRight
	}
}

// ViewportSnapEdge returns the viewport edge nearest to p when it lies within
// distance of it. Ties resolve left, right, top, bottom.
func ViewportSnapEdge(viewport entity.Rect, p entity.Point, distance int) (entity.DockEdge, bool) {
	if !viewport.Contains(p) {
		return entity.DockEdgeLeft, false
	}
	candidates := []struct {
		edge entity.DockEdge
		dist int
	}{
		{entity.DockEdgeLeft, p.X - viewport.X},
		{entity.DockEdgeRight, viewport.Right() - 1 - p.X},
		{entity.DockEdgeTop, p.Y - viewport.Y},
		{entity.DockEdgeBottom, viewport.Bottom() - 1 - p.Y},
	}
	best, found := entity.DockEdgeLeft, false
	bestDist := distance + 1
	for _, c := range candidates {
		if c.dist < bestDist {
			best, bestDist, found = c.edge, c.dist, true
		}
	}
	return best, found
}

// TabInsertIndex returns the insertion index for x in a row of tab rectangles:
// the first tab whose midpoint lies right of x, or len(tabs).
func TabInsertIndex(tabs []entity.Rect, x int) int {
	for i, r := range tabs {
		if x < r.X+r.W/2 {
			return i
		}
	}
	return len(tabs)
}

// EdgePreviewRect returns the part of rect a node docked at edge would take
// when given share of it.
func EdgePreviewRect(rect entity.Rect, edge entity.DockEdge, share float64) entity.Rect {
	share = math.Min(math.Max(share, 0), 1)
	w := int(math.Round(float64(rect.W) * share))
	h := int(math.Round(float64(rect.H) * share))
	switch edge {
	case entity.DockEdgeLeft:
		return entity.Rect{X: rect.X, Y: rect.Y, W: w, H: rect.H}
	case entity.DockEdgeRight:
		return entity.Rect{X: rect.Right() - w, Y: rect.Y, W: w, H: rect.H}
	case entity.DockEdgeTop:
		return entity.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: h}
	default:
		return entity.Rect{X: rect.X, Y: rect.Bottom() - h, W: rect.W, H: h}
	}
}

// TabInsertLine returns a one unit wide marker rectangle at the insertion
// index, spanning the tab strip height.
func TabInsertLine(strip entity.Rect, tabs []entity.Rect, index int) entity.Rect {
	x := strip.X
	switch {
	case len(tabs) == 0:
	case index >= len(tabs):
		x = tabs[len(tabs)-1].Right()
	default:
		x = tabs[max(index, 0)].X
	}
	return entity.Rect{X: x, Y: strip.Y, W: 1, H: strip.H}
}
