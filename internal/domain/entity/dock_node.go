package entity

import (
	"fmt"
	"math"
	"strings"
)

// Orientation is the axis along which a SplitNode divides its bounds.
type Orientation int

const (
	OrientationVertical   Orientation = iota // Left/right: children side by side, divider is vertical
	OrientationHorizontal                    // Top/bottom: children stacked, divider is horizontal
)

// String returns the serialized name of the orientation.
func (o Orientation) String() string {
	if o == OrientationHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Other returns the perpendicular orientation.
func (o Orientation) Other() Orientation {
	if o == OrientationHorizontal {
		return OrientationVertical
	}
	return OrientationHorizontal
}

// ParseOrientation parses "horizontal" or "vertical".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical":
		return OrientationVertical, nil
	case "horizontal":
		return OrientationHorizontal, nil
	default:
		return OrientationVertical, fmt.Errorf("invalid orientation %q", s)
	}
}

// DockEdge names a side of a rectangle, used for relative insertion.
type DockEdge int

const (
	DockEdgeLeft DockEdge = iota
	DockEdgeRight
	DockEdgeTop
	DockEdgeBottom
)

// String returns the edge name.
func (e DockEdge) String() string {
	switch e {
	case DockEdgeLeft:
		return "left"
	case DockEdgeRight:
		return "right"
	case DockEdgeTop:
		return "top"
	case DockEdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Orientation returns the split orientation produced by inserting at this edge.
// Top/bottom stack vertically (horizontal divider); left/right sit side by side.
func (e DockEdge) Orientation() Orientation {
	if e == DockEdgeTop || e == DockEdgeBottom {
		return OrientationHorizontal
	}
	return OrientationVertical
}

// Leading reports whether an inserted node goes first (left or top).
func (e DockEdge) Leading() bool {
	return e == DockEdgeLeft || e == DockEdgeTop
}

// BlockSource resolves the active block of a panel group.
// The Dock arena implements it; nodes never hold block pointers.
type BlockSource interface {
	ActiveBlock(id PanelID) *Block
}

// DockNode is a node of the layout tree: a *BlockNode leaf or a *SplitNode.
type DockNode interface {
	MinWidth(src BlockSource) int
	MinHeight(src BlockSource) int
	HasVisibleContent(src BlockSource) bool
	Arrange(src BlockSource, bounds Rect)
	Bounds() Rect
}

// BlockNode is a leaf slot displaying the active block of one panel group.
type BlockNode struct {
	Panel  PanelID
	bounds Rect
}

// NewBlockNode creates a leaf for a panel group.
func NewBlockNode(panel PanelID) *BlockNode {
	return &BlockNode{Panel: panel}
}

// MinWidth returns the active block's minimum width, or 0 if it is hidden.
func (n *BlockNode) MinWidth(src BlockSource) int {
	if b := n.visibleBlock(src); b != nil {
		return max(b.MinWidth, 0)
	}
	return 0
}

// MinHeight returns the active block's minimum height, or 0 if it is hidden.
func (n *BlockNode) MinHeight(src BlockSource) int {
	if b := n.visibleBlock(src); b != nil {
		return max(b.MinHeight, 0)
	}
	return 0
}

// HasVisibleContent reports whether the active block is visible.
func (n *BlockNode) HasVisibleContent(src BlockSource) bool {
	return n.visibleBlock(src) != nil
}

// Arrange assigns bounds to the active block.
func (n *BlockNode) Arrange(src BlockSource, bounds Rect) {
	n.bounds = bounds
	if b := src.ActiveBlock(n.Panel); b != nil {
		b.Bounds = bounds
	}
}

// Bounds returns the rectangle from the last arrange pass.
func (n *BlockNode) Bounds() Rect {
	return n.bounds
}

func (n *BlockNode) visibleBlock(src BlockSource) *Block {
	if src == nil {
		return nil
	}
	b := src.ActiveBlock(n.Panel)
	if b == nil || !b.Visible {
		return nil
	}
	return b
}

// SplitNode divides its bounds between two children at Ratio along Orientation.
type SplitNode struct {
	Orientation Orientation
	Ratio       float64
	First       DockNode
	Second      DockNode

	// Last committed pixel spans of the children, recorded when the user
	// finishes dragging the divider.
	PreferredFirstSpan  int
	PreferredSecondSpan int
	UserSized           bool

	bounds     Rect
	splitCoord int
	divided    bool
}

// NewSplitNode creates a split with the given children and ratio.
func NewSplitNode(o Orientation, first, second DockNode, ratio float64) *SplitNode {
	return &SplitNode{
		Orientation: o,
		Ratio:       NormalizeRatio(ratio),
		First:       first,
		Second:      second,
	}
}

// MinWidth sums the children's minimums side by side and takes the max when stacked.
func (n *SplitNode) MinWidth(src BlockSource) int {
	a, b := childMin(n.First, src, true), childMin(n.Second, src, true)
	if n.Orientation == OrientationVertical {
		return a + b
	}
	return max(a, b)
}

// MinHeight sums the children's minimums when stacked and takes the max side by side.
func (n *SplitNode) MinHeight(src BlockSource) int {
	a, b := childMin(n.First, src, false), childMin(n.Second, src, false)
	if n.Orientation == OrientationHorizontal {
		return a + b
	}
	return max(a, b)
}

func childMin(child DockNode, src BlockSource, width bool) int {
	if child == nil || !child.HasVisibleContent(src) {
		return 0
	}
	if width {
		return child.MinWidth(src)
	}
	return child.MinHeight(src)
}

// HasVisibleContent reports whether either child shows anything.
func (n *SplitNode) HasVisibleContent(src BlockSource) bool {
	return visible(n.First, src) || visible(n.Second, src)
}

func visible(node DockNode, src BlockSource) bool {
	return node != nil && node.HasVisibleContent(src)
}

// Arrange distributes bounds between the children.
// A single visible child receives the whole rectangle.
func (n *SplitNode) Arrange(src BlockSource, bounds Rect) {
	firstVisible, secondVisible := visible(n.First, src), visible(n.Second, src)
	if !firstVisible && !secondVisible {
		n.divided = false
		return
	}

	n.bounds = bounds
	if firstVisible != secondVisible {
		n.divided = false
		if firstVisible {
			n.First.Arrange(src, bounds)
		} else {
			n.Second.Arrange(src, bounds)
		}
		return
	}

	span := n.Span()
	var minFirst, minSecond int
	if n.Orientation == OrientationVertical {
		minFirst, minSecond = n.First.MinWidth(src), n.Second.MinWidth(src)
	} else {
		minFirst, minSecond = n.First.MinHeight(src), n.Second.MinHeight(src)
	}

	raw := int(math.Round(float64(span) * n.Ratio))
	if n.UserSized && n.PreferredFirstSpan+n.PreferredSecondSpan == span {
		raw = n.PreferredFirstSpan
	}
	n.splitCoord = ClampSplit(raw, span, minFirst, minSecond)
	n.divided = true

	firstRect, secondRect := n.childRects(bounds, n.splitCoord)
	n.First.Arrange(src, firstRect)
	n.Second.Arrange(src, secondRect)
}

func (n *SplitNode) childRects(bounds Rect, coord int) (Rect, Rect) {
	if n.Orientation == OrientationVertical {
		return Rect{X: bounds.X, Y: bounds.Y, W: coord, H: bounds.H},
			Rect{X: bounds.X + coord, Y: bounds.Y, W: bounds.W - coord, H: bounds.H}
	}
	return Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: coord},
		Rect{X: bounds.X, Y: bounds.Y + coord, W: bounds.W, H: bounds.H - coord}
}

// Bounds returns the rectangle from the last arrange pass.
func (n *SplitNode) Bounds() Rect {
	return n.bounds
}

// Span returns the length of the bounds along the split axis.
func (n *SplitNode) Span() int {
	if n.Orientation == OrientationVertical {
		return n.bounds.W
	}
	return n.bounds.H
}

// Origin returns the bounds coordinate where the split axis starts.
func (n *SplitNode) Origin() int {
	if n.Orientation == OrientationVertical {
		return n.bounds.X
	}
	return n.bounds.Y
}

// Divided reports whether the last arrange pass showed both children.
func (n *SplitNode) Divided() bool {
	return n.divided
}

// DividerCoord returns the absolute viewport coordinate of the divider.
func (n *SplitNode) DividerCoord() int {
	return n.Origin() + n.splitCoord
}

// SplitOffset returns the divider offset relative to the split's origin.
func (n *SplitNode) SplitOffset() int {
	return n.splitCoord
}

// ClampSplit clamps a raw divider offset so both children keep their minimums.
// When the span cannot satisfy both, the first child wins.
func ClampSplit(raw, span, minFirst, minSecond int) int {
	if span <= 0 {
		return 0
	}
	minFirst = min(max(minFirst, 0), span)
	minSecond = min(max(minSecond, 0), span)
	upper := max(minFirst, span-minSecond)
	return min(max(raw, minFirst), upper)
}

// NormalizeRatio keeps a ratio strictly inside (0,1).
func NormalizeRatio(r float64) float64 {
	const eps = 0.001
	if math.IsNaN(r) || r <= 0 {
		return eps
	}
	if r >= 1 {
		return 1 - eps
	}
	return r
}
