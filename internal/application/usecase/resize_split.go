package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
	"github.com/bnema/dockyard/internal/logging"
)

var ErrNothingToResize = errors.New("nothing to resize")

// DefaultMaxPropagationDepth bounds cascading resizes.
const DefaultMaxPropagationDepth = 8

// ResizeSplitUseCase moves split dividers under pointer drags.
// When a divider hits a minimum size, the excess is pushed onto the nearest
// parallel divider beyond the split, which in turn may push further.
type ResizeSplitUseCase struct {
	maxDepth int
}

// NewResizeSplitUseCase creates a resize use case. maxDepth <= 0 uses the default.
func NewResizeSplitUseCase(maxDepth int) *ResizeSplitUseCase {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxPropagationDepth
	}
	return &ResizeSplitUseCase{maxDepth: maxDepth}
}

// DragEdgeInput contains parameters for dragging one divider.
type DragEdgeInput struct {
	Dock     *entity.Dock
	Viewport entity.Rect
	Edges    []service.ResizeEdge
	Edge     int
	// Target is the pointer coordinate along the edge's axis
	// (X for vertical edges, Y for horizontal ones).
	Target int
}

// DragEdgeOutput reports what a drag changed.
type DragEdgeOutput struct {
	// Touched lists every split whose ratio changed, the dragged one first.
	Touched []*entity.SplitNode
	// Overflow is the distance the pointer went past what could be satisfied.
	Overflow int
}

// DragEdge moves a divider to the pointer coordinate.
func (uc *ResizeSplitUseCase) DragEdge(ctx context.Context, input DragEdgeInput) (*DragEdgeOutput, error) {
	if input.Dock == nil {
		return nil, fmt.Errorf("dock is required")
	}
	if input.Edge < 0 || input.Edge >= len(input.Edges) || input.Edges[input.Edge].Split == nil {
		return nil, ErrNothingToResize
	}

	r := &resizeRun{
		uc:       uc,
		dock:     input.Dock,
		viewport: input.Viewport,
		edges:    input.Edges,
		visited:  make(map[int]bool),
		touched:  make(map[*entity.SplitNode]bool),
	}
	overflow := r.move(ctx, input.Edge, input.Target, 0)

	return &DragEdgeOutput{Touched: r.order, Overflow: overflow}, nil
}

// DragCornerInput contains parameters for dragging a corner handle.
type DragCornerInput struct {
	Dock     *entity.Dock
	Viewport entity.Rect
	Edges    []service.ResizeEdge
	Corners  []service.CornerHandle
	Corner   int
	// Linked moves the corners sharing the same point in lock-step.
	Linked  bool
	Pointer entity.Point
}

// DragCorner moves both dividers of a corner (and of linked corners) to the pointer.
func (uc *ResizeSplitUseCase) DragCorner(ctx context.Context, input DragCornerInput) (*DragEdgeOutput, error) {
	if input.Corner < 0 || input.Corner >= len(input.Corners) {
		return nil, ErrNothingToResize
	}

	corners := []int{input.Corner}
	if input.Linked {
		corners = append(corners, service.LinkedCorners(input.Corners, input.Corner)...)
	}

	seen := make(map[int]bool)
	var edges []int
	for _, ci := range corners {
		c := input.Corners[ci]
		for _, ei := range []int{c.Vertical, c.Horizontal} {
			if !seen[ei] {
				seen[ei] = true
				edges = append(edges, ei)
			}
		}
	}

	out := &DragEdgeOutput{}
	touched := make(map[*entity.SplitNode]bool)
	for _, ei := range edges {
		if ei < 0 || ei >= len(input.Edges) {
			continue
		}
		target := input.Pointer.X
		if input.Edges[ei].Orientation == entity.OrientationHorizontal {
			target = input.Pointer.Y
		}
		res, err := uc.DragEdge(ctx, DragEdgeInput{
			Dock:     input.Dock,
			Viewport: input.Viewport,
			Edges:    input.Edges,
			Edge:     ei,
			Target:   target,
		})
		if err != nil {
			return nil, err
		}
		for _, s := range res.Touched {
			if !touched[s] {
				touched[s] = true
				out.Touched = append(out.Touched, s)
			}
		}
		if abs(res.Overflow) > abs(out.Overflow) {
			out.Overflow = res.Overflow
		}
	}
	return out, nil
}

// Commit records the current pixel spans of the given splits so they stay
// stable while the viewport keeps its size.
func (uc *ResizeSplitUseCase) Commit(ctx context.Context, splits []*entity.SplitNode) {
	log := logging.FromContext(ctx)
	for _, s := range splits {
		if s == nil || !s.Divided() {
			continue
		}
		s.PreferredFirstSpan = s.SplitOffset()
		s.PreferredSecondSpan = s.Span() - s.SplitOffset()
		s.UserSized = true
		log.Debug().
			Str("orientation", s.Orientation.String()).
			Float64("ratio", s.Ratio).
			Int("first_span", s.PreferredFirstSpan).
			Int("second_span", s.PreferredSecondSpan).
			Msg("committed split")
	}
}

type resizeRun struct {
	uc       *ResizeSplitUseCase
	dock     *entity.Dock
	viewport entity.Rect
	edges    []service.ResizeEdge
	visited  map[int]bool
	touched  map[*entity.SplitNode]bool
	order    []*entity.SplitNode
}

// move places edge idx at target, propagating overflow. It returns the
// overflow left after propagation.
func (r *resizeRun) move(ctx context.Context, idx, target, depth int) int {
	r.visited[idx] = true
	overflow := r.apply(idx, target)
	if overflow == 0 {
		return 0
	}

	if depth >= r.uc.maxDepth {
		logging.FromContext(ctx).Debug().Int("depth", depth).Msg("resize propagation depth reached")
		return overflow
	}

	next, ok := r.neighbor(idx, overflow)
	if !ok {
		return overflow
	}
	logging.FromContext(ctx).Trace().
		Int("edge", idx).
		Int("neighbor", next).
		Int("overflow", overflow).
		Msg("propagating resize overflow")

	r.move(ctx, next, r.edges[next].Coord+overflow, depth+1)

	// The neighbor changed this split's bounds; re-arrange and retry once.
	r.dock.Arrange(r.viewport)
	return r.apply(idx, target)
}

// apply sets the ratio of edge idx's split from target, clamped to the
// children's minimums, and returns the signed distance that was cut off.
func (r *resizeRun) apply(idx, target int) int {
	split := r.edges[idx].Split
	span := split.Span()
	if span <= 0 {
		return 0
	}

	var minFirst, minSecond int
	if split.Orientation == entity.OrientationVertical {
		minFirst, minSecond = split.First.MinWidth(r.dock), split.Second.MinWidth(r.dock)
	} else {
		minFirst, minSecond = split.First.MinHeight(r.dock), split.Second.MinHeight(r.dock)
	}

	raw := target - split.Origin()
	clamped := entity.ClampSplit(raw, span, minFirst, minSecond)
	split.Ratio = entity.NormalizeRatio(float64(clamped) / float64(span))
	split.UserSized = false

	if !r.touched[split] {
		r.touched[split] = true
		r.order = append(r.order, split)
	}
	r.edges[idx].Coord = split.Origin() + clamped
	return raw - clamped
}

// neighbor finds the nearest unvisited parallel edge lying beyond the split's
// bounds in the overflow direction whose extent overlaps this edge's.
// Equidistant candidates resolve to the first in traversal order.
func (r *resizeRun) neighbor(idx, overflow int) (int, bool) {
	e := r.edges[idx]
	b := e.Split.Bounds()
	lo, hi := b.X, b.Right()
	if e.Orientation == entity.OrientationHorizontal {
		lo, hi = b.Y, b.Bottom()
	}

	best, bestDist := -1, 0
	for j, c := range r.edges {
		if j == idx || r.visited[j] || c.Orientation != e.Orientation || !c.Overlaps(e) {
			continue
		}
		var dist int
		switch {
		case overflow > 0 && c.Coord >= hi:
			dist = c.Coord - e.Coord
		case overflow < 0 && c.Coord <= lo:
			dist = e.Coord - c.Coord
		default:
			continue
		}
		if best < 0 || dist < bestDist {
			best, bestDist = j, dist
		}
	}
	return best, best >= 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
