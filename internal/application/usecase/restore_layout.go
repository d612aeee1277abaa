package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// ErrUnsupportedVersion is returned for documents newer than this build understands.
var ErrUnsupportedVersion = errors.New("unsupported layout document version")

// RestoreLayoutUseCase applies saved documents to a dock and synthesizes
// the default layout when none is available.
type RestoreLayoutUseCase struct {
	idGenerator IDGenerator
}

// NewRestoreLayoutUseCase creates a new restore use case.
func NewRestoreLayoutUseCase(idGenerator IDGenerator) *RestoreLayoutUseCase {
	return &RestoreLayoutUseCase{idGenerator: idGenerator}
}

// ApplyInput contains parameters for applying a document.
type ApplyInput struct {
	Dock     *entity.Dock
	Document *entity.LayoutDocument

	// Minimum sizes for blocks the document mentions but the catalog lacks.
	DefaultMinWidth  int
	DefaultMinHeight int
}

// ApplyOutput reports how the document was applied.
type ApplyOutput struct {
	// Skipped lists references that could not be resolved.
	Skipped []string
	// UsedDefaultTree is true when the tree could not be rebuilt and a
	// single row of the restored groups was used instead.
	UsedDefaultTree bool
	// Orphans lists groups that had to be docked at the right edge because
	// the tree did not reference them.
	Orphans []entity.PanelID
}

// Apply replaces the live dock state with the document's.
func (uc *RestoreLayoutUseCase) Apply(ctx context.Context, input ApplyInput) (*ApplyOutput, error) {
	log := logging.FromContext(ctx)

	d, doc := input.Dock, input.Document
	if d == nil {
		return nil, fmt.Errorf("dock is required")
	}
	if doc == nil {
		return nil, ErrNoSavedLayout
	}
	if doc.Version <= 0 {
		return nil, fmt.Errorf("%w: missing version", ErrUnsupportedVersion)
	}
	if doc.Version > entity.LayoutDocumentVersion {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrUnsupportedVersion, doc.Version, entity.LayoutDocumentVersion)
	}

	out := &ApplyOutput{}
	skip := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		out.Skipped = append(out.Skipped, msg)
		log.Warn().Msg(msg)
	}

	d.Reset()

	enabled := uc.restoreMenu(d, doc.Menu, input)
	panelOrder := uc.restorePanels(d, doc.Panels, skip)

	for id, locked := range doc.BlockLocks {
		if b := d.Block(id); b != nil {
			b.Locked = locked
		} else {
			skip("block lock references unknown block %q", id)
		}
	}
	for id, locked := range doc.PanelLocks {
		if g := d.Panel(id); g != nil {
			g.Locked = locked
		} else {
			skip("panel lock references unknown panel %q", id)
		}
	}

	used := make(map[entity.PanelID]bool)
	d.Root = uc.buildNode(d, doc.Tree, used, skip)
	if d.Root == nil && len(panelOrder) > 0 {
		out.UsedDefaultTree = true
		log.Warn().Int("panels", len(panelOrder)).Msg("layout tree unusable, falling back to a single row")
		d.Root = singleRow(d, panelOrder)
		for _, id := range panelOrder {
			used[id] = true
		}
	}

	for _, id := range panelOrder {
		if !used[id] {
			out.Orphans = append(out.Orphans, id)
			snapRight(d, id)
		}
	}
	for _, id := range enabled {
		if d.PanelOf(id) != nil {
			continue
		}
		g := uc.newPanel(d)
		d.AddToPanel(g, id, true, -1)
		out.Orphans = append(out.Orphans, g.ID)
		snapRight(d, g.ID)
	}

	d.SyncAllVisibility()

	log.Info().
		Int("panels", len(d.Panels())).
		Int("skipped", len(out.Skipped)).
		Int("orphans", len(out.Orphans)).
		Bool("default_tree", out.UsedDefaultTree).
		Msg("applied layout document")
	return out, nil
}

func (uc *RestoreLayoutUseCase) newPanel(d *entity.Dock) *entity.PanelGroup {
	id := entity.PanelID(uc.idGenerator())
	for d.Panel(id) != nil {
		id = entity.PanelID(uc.idGenerator())
	}
	return d.NewPanel(id)
}

// restoreMenu recreates catalog entries and returns the enabled block ids.
func (uc *RestoreLayoutUseCase) restoreMenu(d *entity.Dock, menu []entity.MenuEntry, input ApplyInput) []entity.BlockID {
	var enabled []entity.BlockID
	for _, entry := range menu {
		if entry.ID == "" {
			continue
		}
		b := d.Block(entry.ID)
		if b == nil {
			b = entity.NewBlock(entry.ID, entry.Kind, entry.Title)
			b.MinWidth = input.DefaultMinWidth
			b.MinHeight = input.DefaultMinHeight
			d.RegisterBlock(b)
		} else if entry.Title != "" {
			b.Title = entry.Title
		}
		if entry.Enabled {
			enabled = append(enabled, entry.ID)
		}
	}
	return enabled
}

// restorePanels rebuilds groups in document order and returns the ids of
// the non-empty ones.
func (uc *RestoreLayoutUseCase) restorePanels(d *entity.Dock, panels []entity.PanelDocument, skip func(string, ...any)) []entity.PanelID {
	var order []entity.PanelID
	for _, pd := range panels {
		if pd.ID == "" {
			skip("panel without id")
			continue
		}
		if d.Panel(pd.ID) != nil {
			skip("duplicate panel %q", pd.ID)
			continue
		}
		g := d.NewPanel(pd.ID)
		for _, bid := range pd.Blocks {
			switch {
			case d.Block(bid) == nil:
				skip("panel %q references unknown block %q", pd.ID, bid)
			case d.PanelOf(bid) != nil:
				skip("block %q already belongs to panel %q", bid, d.PanelOf(bid).ID)
			default:
				d.AddToPanel(g, bid, false, -1)
			}
		}
		if g.IsEmpty() {
			d.DeletePanel(g.ID)
			continue
		}
		g.SetActiveBlock(pd.Active)
		order = append(order, g.ID)
	}
	return order
}

func (uc *RestoreLayoutUseCase) buildNode(
	d *entity.Dock,
	nd *entity.NodeDocument,
	used map[entity.PanelID]bool,
	skip func(string, ...any),
) entity.DockNode {
	if nd == nil {
		return nil
	}
	switch nd.Type {
	case entity.NodeTypePanel:
		if d.Panel(nd.PanelID) == nil {
			skip("tree references unknown panel %q", nd.PanelID)
			return nil
		}
		if used[nd.PanelID] {
			skip("tree references panel %q twice", nd.PanelID)
			return nil
		}
		used[nd.PanelID] = true
		return entity.NewBlockNode(nd.PanelID)

	case entity.NodeTypeSplit:
		first := uc.buildNode(d, nd.First, used, skip)
		second := uc.buildNode(d, nd.Second, used, skip)
		if first == nil {
			return second
		}
		if second == nil {
			return first
		}
		o, err := entity.ParseOrientation(nd.Orientation)
		if err != nil {
			skip("split with %v, using vertical", err)
		}
		split := entity.NewSplitNode(o, first, second, nd.Ratio)
		split.PreferredFirstSpan = nd.PreferredFirstSpan
		split.PreferredSecondSpan = nd.PreferredSecondSpan
		split.UserSized = nd.UserSized
		return split

	default:
		skip("unknown node type %q", nd.Type)
		return nil
	}
}

// BuildDefault resets the dock and lays the given blocks out in one row,
// each in its own group, in order.
func (uc *RestoreLayoutUseCase) BuildDefault(ctx context.Context, d *entity.Dock, blocks []entity.BlockID) error {
	if d == nil {
		return fmt.Errorf("dock is required")
	}
	d.Reset()

	var order []entity.PanelID
	for _, id := range blocks {
		if d.Block(id) == nil {
			logging.FromContext(ctx).Warn().Str("block_id", string(id)).Msg("default layout references unknown block")
			continue
		}
		if d.PanelOf(id) != nil {
			continue
		}
		g := uc.newPanel(d)
		d.AddToPanel(g, id, true, -1)
		order = append(order, g.ID)
	}
	d.Root = singleRow(d, order)
	d.SyncAllVisibility()

	logging.FromContext(ctx).Info().Int("panels", len(order)).Msg("built default layout")
	return nil
}

// singleRow docks each group against the right edge in turn, giving every
// group an equal share.
func singleRow(d *entity.Dock, panels []entity.PanelID) entity.DockNode {
	var root entity.DockNode
	n := 0
	for _, id := range panels {
		if d.Panel(id) == nil {
			continue
		}
		n++
		root = entity.InsertAtViewportEdge(root, entity.NewBlockNode(id), entity.DockEdgeRight, 1/float64(n))
	}
	return root
}

func snapRight(d *entity.Dock, id entity.PanelID) {
	d.SyncAllVisibility()
	fraction := entity.ViewportFraction(d.Root, entity.DockEdgeRight, d)
	d.Root = entity.InsertAtViewportEdge(d.Root, entity.NewBlockNode(id), entity.DockEdgeRight, fraction)
}
