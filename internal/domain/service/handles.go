// Package service holds pure geometry services over the dock layout tree:
// resize handle derivation, hit testing and drop target classification.
package service

import "github.com/bnema/dockyard/internal/domain/entity"

// ResizeEdge is the draggable divider of one split, derived after arrange.
// A vertical edge belongs to a left/right split and moves along X.
type ResizeEdge struct {
	Split       *entity.SplitNode
	Orientation entity.Orientation
	Coord       int // absolute divider coordinate along the split axis
	Start, End  int // extent along the perpendicular axis, End exclusive
	Hit         entity.Rect
	Depth       int
}

// Overlaps reports whether two edges share part of their perpendicular extent.
func (e ResizeEdge) Overlaps(o ResizeEdge) bool {
	return e.Start < o.End && o.Start < e.End
}

// CornerHandle couples one vertical and one horizontal edge whose hit
// rectangles intersect. Indexes refer to the slice passed to DeriveCorners.
type CornerHandle struct {
	Vertical   int
	Horizontal int
	Point      entity.Point
	Hit        entity.Rect
}

// DeriveResizeEdges returns one edge per split currently showing both
// children, in pre-order. thickness is the hit rectangle width across the divider.
func DeriveResizeEdges(root entity.DockNode, src entity.BlockSource, thickness int) []ResizeEdge {
	thickness = max(thickness, 1)
	var edges []ResizeEdge
	entity.Walk(root, func(node entity.DockNode, depth int) bool {
		if !node.HasVisibleContent(src) {
			return false
		}
		split, ok := node.(*entity.SplitNode)
		if !ok || !split.Divided() {
			return true
		}
		edges = append(edges, edgeFor(split, depth, thickness))
		return true
	})
	return edges
}

func edgeFor(split *entity.SplitNode, depth, thickness int) ResizeEdge {
	b := split.Bounds()
	coord := split.DividerCoord()
	half := thickness / 2
	e := ResizeEdge{
		Split:       split,
		Orientation: split.Orientation,
		Coord:       coord,
		Depth:       depth,
	}
	if split.Orientation == entity.OrientationVertical {
		e.Start, e.End = b.Y, b.Bottom()
		e.Hit = entity.Rect{X: coord - half, Y: b.Y, W: thickness, H: b.H}
	} else {
		e.Start, e.End = b.X, b.Right()
		e.Hit = entity.Rect{X: b.X, Y: coord - half, W: b.W, H: thickness}
	}
	return e
}

// DeriveCorners pairs every vertical edge with every horizontal edge whose
// hit rectangles intersect. The corner hit rectangle is a square of twice the
// edge thickness centered on the intersection point.
func DeriveCorners(edges []ResizeEdge, thickness int) []CornerHandle {
	thickness = max(thickness, 1)
	var corners []CornerHandle
	for vi, v := range edges {
		if v.Orientation != entity.OrientationVertical {
			continue
		}
		for hi, h := range edges {
			if h.Orientation != entity.OrientationHorizontal || !v.Hit.Intersects(h.Hit) {
				continue
			}
			p := entity.Point{X: v.Coord, Y: h.Coord}
			corners = append(corners, CornerHandle{
				Vertical:   vi,
				Horizontal: hi,
				Point:      p,
				Hit:        entity.Rect{X: p.X - thickness, Y: p.Y - thickness, W: 2 * thickness, H: 2 * thickness},
			})
		}
	}
	return corners
}

// LinkedCorners returns the indexes of other corners sharing the same point.
func LinkedCorners(corners []CornerHandle, idx int) []int {
	if idx < 0 || idx >= len(corners) {
		return nil
	}
	var linked []int
	for i, c := range corners {
		if i != idx && c.Point == corners[idx].Point {
			linked = append(linked, i)
		}
	}
	return linked
}

// HitTestEdge returns the deepest edge whose hit rectangle contains p.
// Equal depths resolve to the first in traversal order.
func HitTestEdge(edges []ResizeEdge, p entity.Point) (int, bool) {
	best := -1
	for i, e := range edges {
		if !e.Hit.Contains(p) {
			continue
		}
		if best < 0 || e.Depth > edges[best].Depth {
			best = i
		}
	}
	return best, best >= 0
}

// HitTestCorner returns the first corner whose hit rectangle contains p.
func HitTestCorner(corners []CornerHandle, p entity.Point) (int, bool) {
	for i, c := range corners {
		if c.Hit.Contains(p) {
			return i, true
		}
	}
	return -1, false
}
