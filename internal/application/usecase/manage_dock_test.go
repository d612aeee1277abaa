package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

var viewport = entity.Rect{W: 300, H: 120}

func TestManageDock_OpenBlockSnapsRightInThirds(t *testing.T) {
	ctx := context.Background()
	uc := NewManageDockUseCase(seqIDs())
	d := newCatalog("a", "b", "c")

	openAll(ctx, uc, d, "a", "b", "c")
	d.Arrange(viewport)

	for _, id := range []entity.BlockID{"a", "b", "c"} {
		b := d.Block(id)
		assert.True(t, b.Visible)
		assert.InDelta(t, 100, b.Bounds.W, 1, "%s", id)
	}
	assert.Equal(t, []entity.PanelID{"panel-1", "panel-2", "panel-3"}, d.ReachablePanels())
}

func TestManageDock_OpenBlockAlreadyOpenActivates(t *testing.T) {
	ctx := context.Background()
	uc := NewManageDockUseCase(seqIDs())
	d := newCatalog("a", "b")
	openAll(ctx, uc, d, "a", "b")
	require.NoError(t, uc.MoveBlockToPanel(ctx, d, "b", "panel-1", -1))
	require.NoError(t, uc.ActivateTab(ctx, d, "a"))

	g, err := uc.OpenBlock(ctx, d, "b")

	require.NoError(t, err)
	assert.Equal(t, entity.PanelID("panel-1"), g.ID)
	assert.Equal(t, entity.BlockID("b"), g.Active)
	assert.Len(t, d.ReachablePanels(), 1)
}

func TestManageDock_OpenUnknownBlock(t *testing.T) {
	uc := NewManageDockUseCase(seqIDs())
	_, err := uc.OpenBlock(context.Background(), newCatalog(), "ghost")
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestManageDock_CloseLastBlockCollapsesSplit(t *testing.T) {
	ctx := context.Background()
	uc := NewManageDockUseCase(seqIDs())
	d := newCatalog("a", "b", "c")
	openAll(ctx, uc, d, "a", "b", "c")

	require.NoError(t, uc.CloseBlock(ctx, d, "b"))
	d.Arrange(viewport)

	assert.Nil(t, d.Panel("panel-2"))
	assert.False(t, d.Block("b").Visible)
	assert.Equal(t, []entity.PanelID{"panel-1", "panel-3"}, d.ReachablePanels())
	assert.Equal(t, viewport.W, d.Block("a").Bounds.W+d.Block("c").Bounds.W)
}

func TestManageDock_MergeAndActivate(t *testing.T) {
	ctx := context.Background()
	uc := NewManageDockUseCase(seqIDs())
	d := newCatalog("a", "b", "c")
	openAll(ctx, uc, d, "a", "b", "c")

	require.NoError(t, uc.MoveBlockToPanel(ctx, d, "c", "panel-1", 0))

	g := d.Panel("panel-1")
	assert.Equal(t, []entity.BlockID{"c", "a"}, g.Blocks)
	assert.Equal(t, entity.BlockID("c"), g.Active)
	assert.True(t, d.Block("c").Visible)
	assert.False(t, d.Block("a").Visible)
	assert.Nil(t, d.Panel("panel-3"))
	assert.Equal(t, []entity.PanelID{"panel-1", "panel-2"}, d.ReachablePanels())
}

func TestManageDock_LockedPanelRejectsEditsButActivates(t *testing.T) {
	ctx := context.Background()
	uc := NewManageDockUseCase(seqIDs())
	d := newCatalog("a", "b", "c")
	openAll(ctx, uc, d, "a", "b", "c")
	require.NoError(t, uc.MoveBlockToPanel(ctx, d, "b", "panel-1", -1))

	locked, err := uc.TogglePanelLock(ctx, d, "panel-1")
	require.NoError(t, err)
	require.True(t, locked)

	assert.ErrorIs(t, uc.ReorderTab(ctx, d, "b", 0), ErrPanelLocked)
	assert.ErrorIs(t, uc.CloseBlock(ctx, d, "a"), ErrBlockLocked)
	_, err = uc.UngroupBlock(ctx, d, "a")
	assert.ErrorIs(t, err, ErrBlockLocked)
	assert.ErrorIs(t, uc.MoveBlockToPanel(ctx, d, "c", "panel-1", 0), ErrPanelLocked)
	assert.ErrorIs(t, uc.SnapPanelToViewport(ctx, d, "panel-1", entity.DockEdgeLeft), ErrPanelLocked)
	assert.Equal(t, []entity.BlockID{"a", "b"}, d.Panel("panel-1").Blocks)

	require.NoError(t, uc.ActivateTab(ctx, d, "a"))
	assert.Equal(t, entity.BlockID("a"), d.Panel("panel-1").Active)
}

func TestManageDock_BlockLock(t *testing.T) {
	ctx := context.Background()
	uc := NewManageDockUseCase(seqIDs())
	d := newCatalog("a", "b")
	openAll(ctx, uc, d, "a", "b")

	locked, err := uc.ToggleBlockLock(ctx, d, "a")
	require.NoError(t, err)
	require.True(t, locked)

	assert.ErrorIs(t, uc.CloseBlock(ctx, d, "a"), ErrBlockLocked)
	assert.ErrorIs(t, uc.MoveBlockToPanel(ctx, d, "a", "panel-2", 0), ErrBlockLocked)
	assert.NoError(t, uc.MoveBlockToPanel(ctx, d, "b", "panel-1", -1), "unlocked blocks may join")

	_, err = uc.TogglePanelLock(ctx, d, "panel-1")
	require.NoError(t, err)
	_, err = uc.ToggleBlockLock(ctx, d, "a")
	assert.ErrorIs(t, err, ErrPanelLocked)
}

func TestManageDock_UngroupOrientation(t *testing.T) {
	tests := []struct {
		name        string
		viewport    entity.Rect
		orientation entity.Orientation
	}{
		{name: "wide goes right", viewport: entity.Rect{W: 300, H: 100}, orientation: entity.OrientationVertical},
		{name: "tall goes below", viewport: entity.Rect{W: 100, H: 300}, orientation: entity.OrientationHorizontal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			uc := NewManageDockUseCase(seqIDs())
			d := newCatalog("a", "b")
			openAll(ctx, uc, d, "a", "b")
			require.NoError(t, uc.MoveBlockToPanel(ctx, d, "b", "panel-1", -1))
			d.Arrange(tt.viewport)

			g, err := uc.UngroupBlock(ctx, d, "b")
			require.NoError(t, err)

			split, ok := d.Root.(*entity.SplitNode)
			require.True(t, ok)
			assert.Equal(t, tt.orientation, split.Orientation)
			assert.Equal(t, []entity.PanelID{"panel-1", g.ID}, d.ReachablePanels())
			assert.True(t, d.Block("a").Visible)
			assert.True(t, d.Block("b").Visible)
		})
	}
}

func TestManageDock_UngroupSingleMember(t *testing.T) {
	ctx := context.Background()
	uc := NewManageDockUseCase(seqIDs())
	d := newCatalog("a")
	openAll(ctx, uc, d, "a")

	_, err := uc.UngroupBlock(ctx, d, "a")
	assert.ErrorIs(t, err, ErrNotGrouped)
}

func TestManageDock_DockPanelQuadrant(t *testing.T) {
	ctx := context.Background()
	uc := NewManageDockUseCase(seqIDs())
	d := newCatalog("a", "b", "c")
	openAll(ctx, uc, d, "a", "b", "c")

	require.NoError(t, uc.DockPanel(ctx, d, "panel-3", "panel-1", entity.DockEdgeTop))
	d.Arrange(viewport)

	assert.Equal(t, []entity.PanelID{"panel-3", "panel-1", "panel-2"}, d.ReachablePanels())
	c, a := d.Block("c").Bounds, d.Block("a").Bounds
	assert.Equal(t, c.X, a.X)
	assert.Equal(t, c.Bottom(), a.Y)
}

func TestManageDock_DockPanelOntoItselfIsNoop(t *testing.T) {
	ctx := context.Background()
	uc := NewManageDockUseCase(seqIDs())
	d := newCatalog("a", "b")
	openAll(ctx, uc, d, "a", "b")
	before := d.Root

	require.NoError(t, uc.DockPanel(ctx, d, "panel-1", "panel-1", entity.DockEdgeLeft))
	assert.Same(t, before, d.Root)
}

func TestManageDock_SnapPanelToViewport(t *testing.T) {
	ctx := context.Background()
	uc := NewManageDockUseCase(seqIDs())
	d := newCatalog("a", "b", "c")
	openAll(ctx, uc, d, "a", "b", "c")

	require.NoError(t, uc.SnapPanelToViewport(ctx, d, "panel-2", entity.DockEdgeBottom))
	d.Arrange(viewport)

	b := d.Block("b").Bounds
	assert.Equal(t, viewport.W, b.W)
	assert.Equal(t, viewport.Bottom(), b.Bottom())
	assert.Equal(t, 60, b.H, "one slot along the bottom gives half")
}

func TestManageDock_DockBlockSplitsOutOfGroup(t *testing.T) {
	ctx := context.Background()
	uc := NewManageDockUseCase(seqIDs())
	d := newCatalog("a", "b")
	openAll(ctx, uc, d, "a")
	_, err := uc.OpenBlock(ctx, d, "b")
	require.NoError(t, err)
	require.NoError(t, uc.MoveBlockToPanel(ctx, d, "b", "panel-1", -1))

	require.NoError(t, uc.DockBlock(ctx, d, "b", "panel-1", entity.DockEdgeLeft))

	assert.Equal(t, []entity.BlockID{"a"}, d.Panel("panel-1").Blocks)
	order := d.ReachablePanels()
	require.Len(t, order, 2)
	assert.Equal(t, entity.PanelID("panel-1"), order[1])
	assert.Equal(t, order[0], d.Block("b").PanelID)
}

func TestManageDock_SnapBlockToViewport(t *testing.T) {
	ctx := context.Background()
	uc := NewManageDockUseCase(seqIDs())
	d := newCatalog("a", "b")
	openAll(ctx, uc, d, "a", "b")
	require.NoError(t, uc.MoveBlockToPanel(ctx, d, "b", "panel-1", -1))

	require.NoError(t, uc.SnapBlockToViewport(ctx, d, "a", entity.DockEdgeLeft))
	d.Arrange(viewport)

	assert.Equal(t, 0, d.Block("a").Bounds.X)
	assert.Equal(t, 150, d.Block("a").Bounds.W)
	assert.True(t, d.Block("b").Visible)
}

func TestManageDock_ReorderTab(t *testing.T) {
	ctx := context.Background()
	uc := NewManageDockUseCase(seqIDs())
	d := newCatalog("a", "b", "c")
	openAll(ctx, uc, d, "a", "b", "c")
	require.NoError(t, uc.MoveBlockToPanel(ctx, d, "b", "panel-1", -1))
	require.NoError(t, uc.MoveBlockToPanel(ctx, d, "c", "panel-1", -1))

	require.NoError(t, uc.MoveBlockToPanel(ctx, d, "a", "panel-1", 3))

	assert.Equal(t, []entity.BlockID{"b", "c", "a"}, d.Panel("panel-1").Blocks)
}
