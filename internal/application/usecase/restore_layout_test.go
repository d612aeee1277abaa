package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestRestoreLayout_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dock := NewManageDockUseCase(seqIDs())
	d := newCatalog("a", "b", "c", "hidden")
	openAll(ctx, dock, d, "a", "b", "c")
	require.NoError(t, dock.MoveBlockToPanel(ctx, d, "c", "panel-1", -1))
	require.NoError(t, dock.ActivateTab(ctx, d, "a"))
	require.NoError(t, dock.SnapPanelToViewport(ctx, d, "panel-2", entity.DockEdgeTop))
	_, err := dock.TogglePanelLock(ctx, d, "panel-2")
	require.NoError(t, err)
	_, err = dock.ToggleBlockLock(ctx, d, "c")
	require.NoError(t, err)
	d.Arrange(viewport)
	before := snapshotBounds(d)

	doc := entity.CaptureLayout(d)

	restored := newCatalog("a", "b", "c", "hidden")
	out, err := NewRestoreLayoutUseCase(seqIDs()).Apply(ctx, ApplyInput{Dock: restored, Document: doc})
	require.NoError(t, err)
	restored.Arrange(viewport)

	assert.Empty(t, out.Skipped)
	assert.Empty(t, out.Orphans)
	assert.False(t, out.UsedDefaultTree)
	assert.Equal(t, d.ReachablePanels(), restored.ReachablePanels())
	assert.Equal(t, []entity.BlockID{"a", "c"}, restored.Panel("panel-1").Blocks)
	assert.Equal(t, entity.BlockID("a"), restored.Panel("panel-1").Active)
	assert.True(t, restored.Panel("panel-2").Locked)
	assert.True(t, restored.Block("c").Locked)
	assert.False(t, restored.Block("hidden").Visible)
	assert.Equal(t, before, snapshotBounds(restored))
	assert.Equal(t, doc.Tree, entity.CaptureLayout(restored).Tree)
}

func snapshotBounds(d *entity.Dock) map[entity.BlockID]entity.Rect {
	out := make(map[entity.BlockID]entity.Rect)
	for _, b := range d.VisibleBlocks() {
		out[b.ID] = b.Bounds
	}
	return out
}

func TestRestoreLayout_SkipsDanglingReferences(t *testing.T) {
	ctx := context.Background()
	d := newCatalog("a", "b")
	doc := &entity.LayoutDocument{
		Version: entity.LayoutDocumentVersion,
		Menu: []entity.MenuEntry{
			{ID: "a", Kind: "notes", Enabled: true},
			{ID: "b", Kind: "notes", Enabled: true},
		},
		Panels: []entity.PanelDocument{
			{ID: "p1", Active: "a", Blocks: []entity.BlockID{"a", "ghost"}},
			{ID: "p2", Active: "b", Blocks: []entity.BlockID{"b"}},
			{ID: "p3", Active: "gone", Blocks: []entity.BlockID{"gone"}},
		},
		Tree: &entity.NodeDocument{
			Type:        entity.NodeTypeSplit,
			Orientation: "vertical",
			Ratio:       0.5,
			First:       &entity.NodeDocument{Type: entity.NodeTypePanel, PanelID: "p1"},
			Second: &entity.NodeDocument{
				Type: entity.NodeTypeSplit, Orientation: "horizontal", Ratio: 0.5,
				First:  &entity.NodeDocument{Type: entity.NodeTypePanel, PanelID: "p3"},
				Second: &entity.NodeDocument{Type: entity.NodeTypePanel, PanelID: "p2"},
			},
		},
		BlockLocks: map[entity.BlockID]bool{"ghost": true},
	}

	out, err := NewRestoreLayoutUseCase(seqIDs()).Apply(ctx, ApplyInput{Dock: d, Document: doc})
	require.NoError(t, err)

	assert.Len(t, out.Skipped, 4)
	assert.Nil(t, d.Panel("p3"))
	assert.Equal(t, []entity.PanelID{"p1", "p2"}, d.ReachablePanels())
	split, ok := d.Root.(*entity.SplitNode)
	require.True(t, ok)
	assert.Equal(t, entity.OrientationVertical, split.Orientation, "single-child split collapses")
}

func TestRestoreLayout_FallsBackToSingleRow(t *testing.T) {
	ctx := context.Background()
	d := newCatalog("a", "b")
	doc := &entity.LayoutDocument{
		Version: entity.LayoutDocumentVersion,
		Panels: []entity.PanelDocument{
			{ID: "p1", Active: "a", Blocks: []entity.BlockID{"a"}},
			{ID: "p2", Active: "b", Blocks: []entity.BlockID{"b"}},
		},
		Tree: &entity.NodeDocument{Type: "bogus"},
	}

	out, err := NewRestoreLayoutUseCase(seqIDs()).Apply(ctx, ApplyInput{Dock: d, Document: doc})
	require.NoError(t, err)
	d.Arrange(viewport)

	assert.True(t, out.UsedDefaultTree)
	assert.Equal(t, []entity.PanelID{"p1", "p2"}, d.ReachablePanels())
	assert.Equal(t, 150, d.Block("a").Bounds.W)
	assert.Equal(t, 150, d.Block("b").Bounds.W)
}

func TestRestoreLayout_OrphansSnapRight(t *testing.T) {
	ctx := context.Background()
	d := newCatalog("a", "b", "c")
	doc := &entity.LayoutDocument{
		Version: entity.LayoutDocumentVersion,
		Menu: []entity.MenuEntry{
			{ID: "a", Enabled: true},
			{ID: "c", Enabled: true},
		},
		Panels: []entity.PanelDocument{
			{ID: "p1", Active: "a", Blocks: []entity.BlockID{"a"}},
			{ID: "p2", Active: "b", Blocks: []entity.BlockID{"b"}},
		},
		Tree: &entity.NodeDocument{Type: entity.NodeTypePanel, PanelID: "p1"},
	}

	out, err := NewRestoreLayoutUseCase(seqIDs()).Apply(ctx, ApplyInput{Dock: d, Document: doc})
	require.NoError(t, err)

	assert.Equal(t, []entity.PanelID{"p2", "panel-1"}, out.Orphans)
	assert.Equal(t, []entity.PanelID{"p1", "p2", "panel-1"}, d.ReachablePanels())
	for _, id := range []entity.BlockID{"a", "b", "c"} {
		assert.True(t, d.Block(id).Visible, "%s", id)
	}
}

func TestRestoreLayout_RegistersUnknownMenuBlocks(t *testing.T) {
	ctx := context.Background()
	d := entity.NewDock()
	doc := &entity.LayoutDocument{
		Version: entity.LayoutDocumentVersion,
		Menu:    []entity.MenuEntry{{ID: "clock", Kind: "clock", Title: "Clock", Enabled: false}},
	}

	_, err := NewRestoreLayoutUseCase(seqIDs()).Apply(ctx, ApplyInput{
		Dock: d, Document: doc, DefaultMinWidth: 40, DefaultMinHeight: 30,
	})
	require.NoError(t, err)

	b := d.Block("clock")
	require.NotNil(t, b)
	assert.Equal(t, entity.BlockKind("clock"), b.Kind)
	assert.Equal(t, 40, b.MinWidth)
	assert.Equal(t, 30, b.MinHeight)
	assert.False(t, b.Visible)
	assert.Nil(t, d.Root)
}

func TestRestoreLayout_RejectsNewerVersion(t *testing.T) {
	_, err := NewRestoreLayoutUseCase(seqIDs()).Apply(context.Background(), ApplyInput{
		Dock:     entity.NewDock(),
		Document: &entity.LayoutDocument{Version: entity.LayoutDocumentVersion + 1},
	})
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = NewRestoreLayoutUseCase(seqIDs()).Apply(context.Background(), ApplyInput{Dock: entity.NewDock()})
	assert.ErrorIs(t, err, ErrNoSavedLayout)
}

func TestRestoreLayout_RejectsMissingVersion(t *testing.T) {
	d := entity.NewDock()
	d.RegisterBlock(entity.NewBlock("a", "notes", "A"))

	_, err := NewRestoreLayoutUseCase(seqIDs()).Apply(context.Background(), ApplyInput{
		Dock:     d,
		Document: &entity.LayoutDocument{},
	})

	require.ErrorIs(t, err, ErrUnsupportedVersion)
	assert.NotNil(t, d.Block("a"), "dock is left untouched")
}

func TestRestoreLayout_BuildDefault(t *testing.T) {
	ctx := context.Background()
	d := newCatalog("a", "b", "c")

	require.NoError(t, NewRestoreLayoutUseCase(seqIDs()).BuildDefault(ctx, d, []entity.BlockID{"a", "ghost", "c"}))
	d.Arrange(viewport)

	assert.Equal(t, []entity.PanelID{"panel-1", "panel-2"}, d.ReachablePanels())
	assert.Equal(t, 150, d.Block("a").Bounds.W)
	assert.Equal(t, 150, d.Block("c").Bounds.W)
	assert.False(t, d.Block("b").Visible)
}
