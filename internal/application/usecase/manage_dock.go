package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

var (
	ErrBlockNotFound = errors.New("block not found")
	ErrPanelNotFound = errors.New("panel not found")
	ErrBlockLocked   = errors.New("block is locked")
	ErrPanelLocked   = errors.New("panel is locked")
	ErrNotGrouped    = errors.New("block is not grouped with others")
)

// ManageDockUseCase handles structural edits of the dock: opening and
// closing blocks, tab operations and re-docking panels.
type ManageDockUseCase struct {
	idGenerator IDGenerator
}

// NewManageDockUseCase creates a new dock management use case.
func NewManageDockUseCase(idGenerator IDGenerator) *ManageDockUseCase {
	return &ManageDockUseCase{
		idGenerator: idGenerator,
	}
}

func (uc *ManageDockUseCase) newPanel(d *entity.Dock) *entity.PanelGroup {
	id := entity.PanelID(uc.idGenerator())
	for d.Panel(id) != nil {
		id = entity.PanelID(uc.idGenerator())
	}
	return d.NewPanel(id)
}

func requireBlock(d *entity.Dock, id entity.BlockID) (*entity.Block, error) {
	if d == nil {
		return nil, fmt.Errorf("dock is required")
	}
	b := d.Block(id)
	if b == nil {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	return b, nil
}

func requirePanel(d *entity.Dock, id entity.PanelID) (*entity.PanelGroup, error) {
	if d == nil {
		return nil, fmt.Errorf("dock is required")
	}
	g := d.Panel(id)
	if g == nil {
		return nil, fmt.Errorf("%w: %s", ErrPanelNotFound, id)
	}
	return g, nil
}

// OpenBlock shows a block. A block already in a group is activated there;
// otherwise it gets a new single-block group docked at the right viewport edge.
func (uc *ManageDockUseCase) OpenBlock(ctx context.Context, d *entity.Dock, id entity.BlockID) (*entity.PanelGroup, error) {
	log := logging.FromContext(ctx)

	b, err := requireBlock(d, id)
	if err != nil {
		return nil, err
	}
	if g := d.PanelOf(id); g != nil {
		g.SetActiveBlock(id)
		d.SyncVisibility(g)
		return g, nil
	}

	g := uc.newPanel(d)
	d.AddToPanel(g, b.ID, true, -1)
	leaf := entity.NewBlockNode(g.ID)
	fraction := entity.ViewportFraction(d.Root, entity.DockEdgeRight, d)
	d.Root = entity.InsertAtViewportEdge(d.Root, leaf, entity.DockEdgeRight, fraction)
	d.SyncVisibility(g)

	log.Info().
		Str("block_id", string(id)).
		Str("panel_id", string(g.ID)).
		Float64("fraction", fraction).
		Msg("opened block")
	return g, nil
}

// CloseBlock hides a block and removes it from its group.
func (uc *ManageDockUseCase) CloseBlock(ctx context.Context, d *entity.Dock, id entity.BlockID) error {
	if _, err := requireBlock(d, id); err != nil {
		return err
	}
	if d.PanelOf(id) == nil {
		return fmt.Errorf("%w: %s is not open", ErrNotGrouped, id)
	}
	if d.IsBlockLocked(id) {
		return fmt.Errorf("%w: %s", ErrBlockLocked, id)
	}

	remaining := d.RemoveFromPanel(id)
	logging.FromContext(ctx).Info().
		Str("block_id", string(id)).
		Bool("panel_deleted", remaining == nil).
		Msg("closed block")
	return nil
}

// ActivateTab makes a member the visible block of its group.
// Locks do not prevent activation.
func (uc *ManageDockUseCase) ActivateTab(ctx context.Context, d *entity.Dock, id entity.BlockID) error {
	if _, err := requireBlock(d, id); err != nil {
		return err
	}
	g := d.PanelOf(id)
	if g == nil {
		return fmt.Errorf("%w: %s is not open", ErrNotGrouped, id)
	}
	if g.Active == id {
		return nil
	}
	g.SetActiveBlock(id)
	d.SyncVisibility(g)

	logging.FromContext(ctx).Debug().
		Str("block_id", string(id)).
		Str("panel_id", string(g.ID)).
		Msg("activated tab")
	return nil
}

// ReorderTab moves a tab within its group.
func (uc *ManageDockUseCase) ReorderTab(ctx context.Context, d *entity.Dock, id entity.BlockID, index int) error {
	if _, err := requireBlock(d, id); err != nil {
		return err
	}
	g := d.PanelOf(id)
	if g == nil {
		return fmt.Errorf("%w: %s is not open", ErrNotGrouped, id)
	}
	if g.Locked {
		return fmt.Errorf("%w: %s", ErrPanelLocked, g.ID)
	}
	if d.IsBlockLocked(id) {
		return fmt.Errorf("%w: %s", ErrBlockLocked, id)
	}
	g.MoveBlock(id, index)

	logging.FromContext(ctx).Debug().
		Str("block_id", string(id)).
		Int("index", index).
		Msg("reordered tab")
	return nil
}

// MoveBlockToPanel merges a block into another group at index and activates it.
// The source group is deleted and its leaf detached if it becomes empty.
func (uc *ManageDockUseCase) MoveBlockToPanel(
	ctx context.Context,
	d *entity.Dock,
	id entity.BlockID,
	target entity.PanelID,
	index int,
) error {
	if _, err := requireBlock(d, id); err != nil {
		return err
	}
	dst, err := requirePanel(d, target)
	if err != nil {
		return err
	}
	src := d.PanelOf(id)
	if src == dst {
		return uc.ReorderTab(ctx, d, id, tabIndexAfterRemoval(src, id, index))
	}
	if d.IsBlockLocked(id) {
		return fmt.Errorf("%w: %s", ErrBlockLocked, id)
	}
	if dst.Locked {
		return fmt.Errorf("%w: %s", ErrPanelLocked, dst.ID)
	}
	if entity.FindPanelNode(d.Root, dst.ID) == nil {
		return fmt.Errorf("%w: %s is not docked", ErrPanelNotFound, dst.ID)
	}

	d.AddToPanel(dst, id, true, index)

	logging.FromContext(ctx).Info().
		Str("block_id", string(id)).
		Str("panel_id", string(dst.ID)).
		Int("index", index).
		Msg("moved block to panel")
	return nil
}

// tabIndexAfterRemoval maps an insertion index computed with the dragged
// tab still present to the index it ends up at.
func tabIndexAfterRemoval(g *entity.PanelGroup, id entity.BlockID, index int) int {
	if from := g.IndexOf(id); from >= 0 && index > from {
		return index - 1
	}
	return index
}

// UngroupBlock splits a block out of a multi-member group into its own group
// docked beside the old one: to the right when the old rectangle is at least
// as wide as tall, below otherwise.
func (uc *ManageDockUseCase) UngroupBlock(ctx context.Context, d *entity.Dock, id entity.BlockID) (*entity.PanelGroup, error) {
	if _, err := requireBlock(d, id); err != nil {
		return nil, err
	}
	src := d.PanelOf(id)
	if src == nil || src.Len() < 2 {
		return nil, fmt.Errorf("%w: %s", ErrNotGrouped, id)
	}
	if d.IsBlockLocked(id) {
		return nil, fmt.Errorf("%w: %s", ErrBlockLocked, id)
	}
	srcLeaf := entity.FindPanelNode(d.Root, src.ID)
	if srcLeaf == nil {
		return nil, fmt.Errorf("%w: %s is not docked", ErrPanelNotFound, src.ID)
	}

	vacated := srcLeaf.Bounds()
	edge := entity.DockEdgeRight
	if vacated.W < vacated.H {
		edge = entity.DockEdgeBottom
	}

	g := uc.newPanel(d)
	d.AddToPanel(g, id, true, -1)
	d.Root = entity.InsertRelative(d.Root, entity.NewBlockNode(g.ID), srcLeaf, edge)
	d.SyncVisibility(g)
	d.SyncVisibility(src)

	logging.FromContext(ctx).Info().
		Str("block_id", string(id)).
		Str("from_panel", string(src.ID)).
		Str("panel_id", string(g.ID)).
		Str("edge", edge.String()).
		Msg("ungrouped block")
	return g, nil
}

// DockPanel moves a whole group beside another group's leaf.
func (uc *ManageDockUseCase) DockPanel(
	ctx context.Context,
	d *entity.Dock,
	id entity.PanelID,
	target entity.PanelID,
	edge entity.DockEdge,
) error {
	g, err := requirePanel(d, id)
	if err != nil {
		return err
	}
	if _, err := requirePanel(d, target); err != nil {
		return err
	}
	if g.Locked {
		return fmt.Errorf("%w: %s", ErrPanelLocked, id)
	}
	if id == target {
		return nil
	}
	targetLeaf := entity.FindPanelNode(d.Root, target)
	if targetLeaf == nil {
		return fmt.Errorf("%w: %s is not docked", ErrPanelNotFound, target)
	}

	leaf := detachPanel(d, id)
	d.Root = entity.InsertRelative(d.Root, leaf, targetLeaf, edge)
	d.SyncVisibility(g)

	logging.FromContext(ctx).Info().
		Str("panel_id", string(id)).
		Str("target", string(target)).
		Str("edge", edge.String()).
		Msg("docked panel")
	return nil
}

// SnapPanelToViewport moves a whole group against one side of the viewport,
// taking 1/(slots along that side + 1) of it.
func (uc *ManageDockUseCase) SnapPanelToViewport(ctx context.Context, d *entity.Dock, id entity.PanelID, edge entity.DockEdge) error {
	g, err := requirePanel(d, id)
	if err != nil {
		return err
	}
	if g.Locked {
		return fmt.Errorf("%w: %s", ErrPanelLocked, id)
	}

	leaf := detachPanel(d, id)
	fraction := entity.ViewportFraction(d.Root, edge, d)
	d.Root = entity.InsertAtViewportEdge(d.Root, leaf, edge, fraction)
	d.SyncVisibility(g)

	logging.FromContext(ctx).Info().
		Str("panel_id", string(id)).
		Str("edge", edge.String()).
		Float64("fraction", fraction).
		Msg("snapped panel to viewport")
	return nil
}

// detachPanel removes a group's leaf from the tree and returns it, creating
// a fresh leaf for a group that was not attached.
func detachPanel(d *entity.Dock, id entity.PanelID) *entity.BlockNode {
	leaf := entity.FindPanelNode(d.Root, id)
	if leaf == nil {
		return entity.NewBlockNode(id)
	}
	d.Root = entity.Detach(d.Root, leaf)
	return leaf
}

// DockBlock docks a single tab beside a group. A block alone in its group
// moves its whole group; otherwise it leaves for a new group.
func (uc *ManageDockUseCase) DockBlock(
	ctx context.Context,
	d *entity.Dock,
	id entity.BlockID,
	target entity.PanelID,
	edge entity.DockEdge,
) error {
	src, err := uc.tabSource(d, id)
	if err != nil {
		return err
	}
	if src.Len() == 1 {
		return uc.DockPanel(ctx, d, src.ID, target, edge)
	}
	if _, err := requirePanel(d, target); err != nil {
		return err
	}
	targetLeaf := entity.FindPanelNode(d.Root, target)
	if targetLeaf == nil {
		return fmt.Errorf("%w: %s is not docked", ErrPanelNotFound, target)
	}

	g := uc.newPanel(d)
	d.AddToPanel(g, id, true, -1)
	d.Root = entity.InsertRelative(d.Root, entity.NewBlockNode(g.ID), targetLeaf, edge)
	d.SyncVisibility(g)
	d.SyncVisibility(src)

	logging.FromContext(ctx).Info().
		Str("block_id", string(id)).
		Str("target", string(target)).
		Str("edge", edge.String()).
		Msg("docked block")
	return nil
}

// SnapBlockToViewport docks a single tab against a viewport side.
func (uc *ManageDockUseCase) SnapBlockToViewport(ctx context.Context, d *entity.Dock, id entity.BlockID, edge entity.DockEdge) error {
	src, err := uc.tabSource(d, id)
	if err != nil {
		return err
	}
	if src.Len() == 1 {
		return uc.SnapPanelToViewport(ctx, d, src.ID, edge)
	}

	g := uc.newPanel(d)
	d.AddToPanel(g, id, true, -1)
	fraction := entity.ViewportFraction(d.Root, edge, d)
	d.Root = entity.InsertAtViewportEdge(d.Root, entity.NewBlockNode(g.ID), edge, fraction)
	d.SyncVisibility(g)
	d.SyncVisibility(src)

	logging.FromContext(ctx).Info().
		Str("block_id", string(id)).
		Str("edge", edge.String()).
		Float64("fraction", fraction).
		Msg("snapped block to viewport")
	return nil
}

func (uc *ManageDockUseCase) tabSource(d *entity.Dock, id entity.BlockID) (*entity.PanelGroup, error) {
	if _, err := requireBlock(d, id); err != nil {
		return nil, err
	}
	src := d.PanelOf(id)
	if src == nil {
		return nil, fmt.Errorf("%w: %s is not open", ErrNotGrouped, id)
	}
	if src.Locked {
		return nil, fmt.Errorf("%w: %s", ErrPanelLocked, src.ID)
	}
	if d.IsBlockLocked(id) {
		return nil, fmt.Errorf("%w: %s", ErrBlockLocked, id)
	}
	return src, nil
}

// TogglePanelLock flips a group's lock and returns the new state.
func (uc *ManageDockUseCase) TogglePanelLock(ctx context.Context, d *entity.Dock, id entity.PanelID) (bool, error) {
	g, err := requirePanel(d, id)
	if err != nil {
		return false, err
	}
	g.Locked = !g.Locked
	logging.FromContext(ctx).Debug().Str("panel_id", string(id)).Bool("locked", g.Locked).Msg("toggled panel lock")
	return g.Locked, nil
}

// ToggleBlockLock flips a block's own lock and returns the new state.
// A block inside a locked group cannot change its own lock.
func (uc *ManageDockUseCase) ToggleBlockLock(ctx context.Context, d *entity.Dock, id entity.BlockID) (bool, error) {
	b, err := requireBlock(d, id)
	if err != nil {
		return false, err
	}
	if g := d.PanelOf(id); g != nil && g.Locked {
		return b.Locked, fmt.Errorf("%w: %s", ErrPanelLocked, g.ID)
	}
	b.Locked = !b.Locked
	logging.FromContext(ctx).Debug().Str("block_id", string(id)).Bool("locked", b.Locked).Msg("toggled block lock")
	return b.Locked, nil
}
