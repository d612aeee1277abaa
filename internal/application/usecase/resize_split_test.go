package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
)

// rowOfThree opens a, b and c into a 300x120 row with 50px minimum widths.
// Edges: [0] root divider at x=200, [1] inner divider at x=100.
func rowOfThree(t *testing.T) (*entity.Dock, []service.ResizeEdge) {
	t.Helper()
	ctx := context.Background()
	d := newCatalog("a", "b", "c")
	for _, b := range d.Blocks() {
		b.MinWidth = 50
	}
	openAll(ctx, NewManageDockUseCase(seqIDs()), d, "a", "b", "c")
	d.Arrange(viewport)
	edges := service.DeriveResizeEdges(d.Root, d, 6)
	require.Len(t, edges, 2)
	require.Equal(t, 200, edges[0].Coord)
	require.Equal(t, 100, edges[1].Coord)
	return d, edges
}

func TestResizeSplit_DragEdgeWithinLimits(t *testing.T) {
	d, edges := rowOfThree(t)
	uc := NewResizeSplitUseCase(0)

	out, err := uc.DragEdge(context.Background(), DragEdgeInput{
		Dock: d, Viewport: viewport, Edges: edges, Edge: 1, Target: 120,
	})
	require.NoError(t, err)
	d.Arrange(viewport)

	assert.Equal(t, 0, out.Overflow)
	assert.Len(t, out.Touched, 1)
	assert.Equal(t, 120, d.Block("a").Bounds.W)
	assert.Equal(t, 80, d.Block("b").Bounds.W)
	assert.Equal(t, 100, d.Block("c").Bounds.W)
}

func TestResizeSplit_OverflowPropagatesToNeighbor(t *testing.T) {
	d, edges := rowOfThree(t)
	uc := NewResizeSplitUseCase(0)

	out, err := uc.DragEdge(context.Background(), DragEdgeInput{
		Dock: d, Viewport: viewport, Edges: edges, Edge: 1, Target: 180,
	})
	require.NoError(t, err)
	d.Arrange(viewport)

	assert.Equal(t, 0, out.Overflow)
	assert.Len(t, out.Touched, 2)
	assert.Equal(t, 180, d.Block("a").Bounds.W)
	assert.Equal(t, 50, d.Block("b").Bounds.W)
	assert.Equal(t, 70, d.Block("c").Bounds.W)
}

func TestResizeSplit_OverflowStopsAtViewport(t *testing.T) {
	d, edges := rowOfThree(t)
	uc := NewResizeSplitUseCase(0)

	out, err := uc.DragEdge(context.Background(), DragEdgeInput{
		Dock: d, Viewport: viewport, Edges: edges, Edge: 1, Target: 290,
	})
	require.NoError(t, err)
	d.Arrange(viewport)

	assert.Equal(t, 90, out.Overflow)
	assert.Equal(t, 200, d.Block("a").Bounds.W)
	assert.Equal(t, 50, d.Block("b").Bounds.W)
	assert.Equal(t, 50, d.Block("c").Bounds.W)
}

func TestResizeSplit_OutOfRangeEqualsBoundary(t *testing.T) {
	uc := NewResizeSplitUseCase(1)

	d1, e1 := rowOfThree(t)
	_, err := uc.DragEdge(context.Background(), DragEdgeInput{Dock: d1, Viewport: viewport, Edges: e1, Edge: 0, Target: 10})
	require.NoError(t, err)
	d1.Arrange(viewport)

	d2, e2 := rowOfThree(t)
	_, err = uc.DragEdge(context.Background(), DragEdgeInput{Dock: d2, Viewport: viewport, Edges: e2, Edge: 0, Target: 100})
	require.NoError(t, err)
	d2.Arrange(viewport)

	for _, id := range []entity.BlockID{"a", "b", "c"} {
		assert.Equal(t, d2.Block(id).Bounds, d1.Block(id).Bounds, "%s", id)
	}
}

func TestResizeSplit_InvalidEdge(t *testing.T) {
	d, edges := rowOfThree(t)
	uc := NewResizeSplitUseCase(0)

	_, err := uc.DragEdge(context.Background(), DragEdgeInput{Dock: d, Edges: edges, Edge: 7})
	assert.ErrorIs(t, err, ErrNothingToResize)
}

func TestResizeSplit_DragCornerMovesBothAxes(t *testing.T) {
	ctx := context.Background()
	d := newCatalog("a", "b", "c")
	dock := NewManageDockUseCase(seqIDs())
	openAll(ctx, dock, d, "a", "b")
	_, err := dock.OpenBlock(ctx, d, "c")
	require.NoError(t, err)
	require.NoError(t, dock.SnapPanelToViewport(ctx, d, "panel-3", entity.DockEdgeBottom))
	d.Arrange(viewport)

	edges := service.DeriveResizeEdges(d.Root, d, 6)
	corners := service.DeriveCorners(edges, 6)
	require.Len(t, corners, 1)
	assert.Equal(t, entity.Point{X: 150, Y: 60}, corners[0].Point)

	uc := NewResizeSplitUseCase(0)
	out, err := uc.DragCorner(ctx, DragCornerInput{
		Dock: d, Viewport: viewport, Edges: edges, Corners: corners, Corner: 0,
		Pointer: entity.Point{X: 100, Y: 80},
	})
	require.NoError(t, err)
	d.Arrange(viewport)

	assert.Len(t, out.Touched, 2)
	assert.Equal(t, 100, d.Block("a").Bounds.W)
	assert.Equal(t, 80, d.Block("a").Bounds.H)
	assert.Equal(t, 40, d.Block("c").Bounds.H)
}

func TestResizeSplit_LinkedCornersMoveTogether(t *testing.T) {
	ctx := context.Background()
	d := newCatalog("a", "b", "c", "e")
	dock := NewManageDockUseCase(seqIDs())
	openAll(ctx, dock, d, "a", "b")
	_, err := dock.OpenBlock(ctx, d, "c")
	require.NoError(t, err)
	_, err = dock.OpenBlock(ctx, d, "e")
	require.NoError(t, err)
	// Top row a|b, bottom row c|e.
	require.NoError(t, dock.SnapPanelToViewport(ctx, d, "panel-3", entity.DockEdgeBottom))
	require.NoError(t, dock.DockPanel(ctx, d, "panel-4", "panel-3", entity.DockEdgeRight))
	d.Arrange(viewport)

	edges := service.DeriveResizeEdges(d.Root, d, 6)
	corners := service.DeriveCorners(edges, 6)
	require.Len(t, corners, 2)
	require.Equal(t, []int{1}, service.LinkedCorners(corners, 0))

	uc := NewResizeSplitUseCase(0)
	_, err = uc.DragCorner(ctx, DragCornerInput{
		Dock: d, Viewport: viewport, Edges: edges, Corners: corners, Corner: 0, Linked: true,
		Pointer: entity.Point{X: 90, Y: 70},
	})
	require.NoError(t, err)
	d.Arrange(viewport)

	assert.Equal(t, 90, d.Block("a").Bounds.W)
	assert.Equal(t, 90, d.Block("c").Bounds.W)
	assert.Equal(t, 70, d.Block("a").Bounds.H)
}

func TestResizeSplit_CommitRecordsSpans(t *testing.T) {
	d, edges := rowOfThree(t)
	uc := NewResizeSplitUseCase(0)
	out, err := uc.DragEdge(context.Background(), DragEdgeInput{
		Dock: d, Viewport: viewport, Edges: edges, Edge: 1, Target: 130,
	})
	require.NoError(t, err)
	d.Arrange(viewport)

	uc.Commit(context.Background(), out.Touched)

	split := out.Touched[0]
	assert.True(t, split.UserSized)
	assert.Equal(t, 130, split.PreferredFirstSpan)
	assert.Equal(t, 70, split.PreferredSecondSpan)
}
