package dock

import (
	"context"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
	"github.com/bnema/dockyard/internal/logging"
)

type interactionKind int

const (
	stateIdle interactionKind = iota
	stateButton
	statePressTab
	statePressBar
	stateResizeEdge
	stateResizeCorner
	stateDragPanel
	stateDragTab
	// stateRefused swallows a drag that a lock rejected until release.
	stateRefused
)

func (k interactionKind) String() string {
	switch k {
	case stateButton:
		return "button"
	case statePressTab:
		return "press-tab"
	case statePressBar:
		return "press-bar"
	case stateResizeEdge:
		return "resize-edge"
	case stateResizeCorner:
		return "resize-corner"
	case stateDragPanel:
		return "drag-panel"
	case stateDragTab:
		return "drag-tab"
	case stateRefused:
		return "refused"
	default:
		return "idle"
	}
}

// interaction is the state of the pointer gesture in progress.
type interaction struct {
	kind   interactionKind
	hit    Hit
	origin entity.Point
	// offset is the pointer's distance from the grabbed handle at press time.
	offset entity.Point
	// grabbed identifies the dragged divider (or a corner's two dividers)
	// across re-derivations of the edge list.
	grabbed [2]*entity.SplitNode
	touched []*entity.SplitNode
	saved   []splitState
}

// splitState is a split's sizing before a resize, restored on cancel.
type splitState struct {
	split  *entity.SplitNode
	ratio  float64
	first  int
	second int
	user   bool
}

func saveSplits(root entity.DockNode) []splitState {
	var out []splitState
	for _, s := range entity.Splits(root) {
		out = append(out, splitState{
			split:  s,
			ratio:  s.Ratio,
			first:  s.PreferredFirstSpan,
			second: s.PreferredSecondSpan,
			user:   s.UserSized,
		})
	}
	return out
}

func restoreSplits(saved []splitState) {
	for _, st := range saved {
		st.split.Ratio = st.ratio
		st.split.PreferredFirstSpan = st.first
		st.split.PreferredSecondSpan = st.second
		st.split.UserSized = st.user
	}
}

func (e *Engine) press(ctx context.Context, p entity.Point) {
	hit := e.HitTest(p)
	st := interaction{hit: hit, origin: p}

	switch hit.Kind {
	case HitTabClose, HitTabLock, HitTabUngroup, HitPanelLock:
		st.kind = stateButton
	case HitTab:
		st.kind = statePressTab
	case HitDragBar:
		st.kind = statePressBar
	case HitEdge:
		st.kind = stateResizeEdge
		edge := e.edges[hit.Index]
		if edge.Orientation == entity.OrientationVertical {
			st.offset.X = p.X - edge.Coord
		} else {
			st.offset.Y = p.Y - edge.Coord
		}
		st.grabbed[0] = edge.Split
		st.saved = saveSplits(e.dock.Root)
	case HitCorner:
		st.kind = stateResizeCorner
		c := e.corners[hit.Index]
		st.offset = entity.Point{X: p.X - c.Point.X, Y: p.Y - c.Point.Y}
		st.grabbed = [2]*entity.SplitNode{e.edges[c.Vertical].Split, e.edges[c.Horizontal].Split}
		st.saved = saveSplits(e.dock.Root)
	default:
		return
	}

	e.state = st
	logging.FromContext(ctx).Debug().
		Str("hit", hit.Kind.String()).
		Str("panel_id", string(hit.Panel)).
		Str("block_id", string(hit.Block)).
		Int("x", p.X).
		Int("y", p.Y).
		Msg("pointer press")
}

// pastThreshold reports whether p has left the press deadzone.
func (e *Engine) pastThreshold(p entity.Point) bool {
	dx, dy := p.X-e.state.origin.X, p.Y-e.state.origin.Y
	t := e.settings.DragThreshold
	return dx*dx+dy*dy > t*t
}

func (e *Engine) drag(ctx context.Context, p entity.Point) {
	log := logging.FromContext(ctx)

	switch e.state.kind {
	case statePressTab:
		if !e.pastThreshold(p) {
			return
		}
		if e.dock.IsBlockLocked(e.state.hit.Block) {
			e.state.kind = stateRefused
			log.Debug().Str("block_id", string(e.state.hit.Block)).Msg("tab drag refused, block locked")
			return
		}
		e.state.kind = stateDragTab
		log.Debug().Str("block_id", string(e.state.hit.Block)).Msg("tab drag started")
		e.preview = e.tabDropPreview(p)

	case statePressBar:
		if !e.pastThreshold(p) {
			return
		}
		if g := e.dock.Panel(e.state.hit.Panel); g == nil || g.Locked {
			e.state.kind = stateRefused
			log.Debug().Str("panel_id", string(e.state.hit.Panel)).Msg("panel drag refused, panel locked")
			return
		}
		e.state.kind = stateDragPanel
		log.Debug().Str("panel_id", string(e.state.hit.Panel)).Msg("panel drag started")
		e.preview = e.panelDropPreview(p)

	case stateDragTab:
		e.preview = e.tabDropPreview(p)

	case stateDragPanel:
		e.preview = e.panelDropPreview(p)

	case stateResizeEdge:
		idx := e.edgeOf(e.state.grabbed[0])
		if idx < 0 {
			return
		}
		target := p.X - e.state.offset.X
		if e.edges[idx].Orientation == entity.OrientationHorizontal {
			target = p.Y - e.state.offset.Y
		}
		out, err := e.resizeUC.DragEdge(ctx, usecase.DragEdgeInput{
			Dock:     e.dock,
			Viewport: e.viewport,
			Edges:    e.edges,
			Edge:     idx,
			Target:   target,
		})
		if err != nil {
			log.Debug().Err(err).Msg("edge drag ignored")
			return
		}
		e.track(out.Touched)
		e.refresh()

	case stateResizeCorner:
		out, err := e.resizeUC.DragCorner(ctx, usecase.DragCornerInput{
			Dock:     e.dock,
			Viewport: e.viewport,
			Edges:    e.edges,
			Corners:  e.corners,
			Corner:   e.cornerOf(e.state.grabbed),
			Linked:   true,
			Pointer:  entity.Point{X: p.X - e.state.offset.X, Y: p.Y - e.state.offset.Y},
		})
		if err != nil {
			log.Debug().Err(err).Msg("corner drag ignored")
			return
		}
		e.track(out.Touched)
		e.refresh()
	}
}

// edgeOf finds the current edge of split, -1 when it is no longer shown.
func (e *Engine) edgeOf(split *entity.SplitNode) int {
	for i, edge := range e.edges {
		if edge.Split == split {
			return i
		}
	}
	return -1
}

// cornerOf finds the current corner joining both splits, -1 when gone.
func (e *Engine) cornerOf(splits [2]*entity.SplitNode) int {
	for i, c := range e.corners {
		if e.edges[c.Vertical].Split == splits[0] && e.edges[c.Horizontal].Split == splits[1] {
			return i
		}
	}
	return -1
}

func (e *Engine) track(splits []*entity.SplitNode) {
	for _, s := range splits {
		seen := false
		for _, t := range e.state.touched {
			if t == s {
				seen = true
				break
			}
		}
		if !seen {
			e.state.touched = append(e.state.touched, s)
		}
	}
}

func (e *Engine) release(ctx context.Context, p entity.Point) {
	log := logging.FromContext(ctx)
	st := e.state
	preview := e.preview
	e.state = interaction{}
	e.preview = Preview{}

	var err error
	changed := false
	switch st.kind {
	case stateButton:
		hit := e.HitTest(p)
		if hit.Kind != st.hit.Kind || hit.Panel != st.hit.Panel || hit.Block != st.hit.Block {
			return
		}
		changed, err = e.pressButton(ctx, hit)

	case statePressTab:
		g := e.dock.PanelOf(st.hit.Block)
		if g != nil && g.Active != st.hit.Block {
			err = e.dockUC.ActivateTab(ctx, e.dock, st.hit.Block)
			changed = err == nil
		}

	case stateResizeEdge, stateResizeCorner:
		e.refresh()
		e.resizeUC.Commit(ctx, st.touched)
		changed = len(st.touched) > 0

	case stateDragPanel:
		changed, err = e.dropPanel(ctx, st.hit.Panel, preview)

	case stateDragTab:
		changed, err = e.dropTab(ctx, st.hit.Block, preview)
	}

	if err != nil {
		log.Debug().Err(err).Str("interaction", st.kind.String()).Msg("interaction rejected")
		return
	}
	if changed {
		e.Commit(ctx)
	}
}

// cancel abandons the gesture in progress without mutating the dock.
func (e *Engine) cancel(ctx context.Context) {
	logging.FromContext(ctx).Debug().Str("interaction", e.state.kind.String()).Msg("interaction cancelled")
	restoreSplits(e.state.saved)
	e.state = interaction{}
	e.preview = Preview{}
	e.refresh()
}

func (e *Engine) pressButton(ctx context.Context, hit Hit) (bool, error) {
	switch hit.Kind {
	case HitTabClose:
		return true, e.dockUC.CloseBlock(ctx, e.dock, hit.Block)
	case HitTabLock:
		_, err := e.dockUC.ToggleBlockLock(ctx, e.dock, hit.Block)
		return true, err
	case HitTabUngroup:
		_, err := e.dockUC.UngroupBlock(ctx, e.dock, hit.Block)
		return true, err
	case HitPanelLock:
		_, err := e.dockUC.TogglePanelLock(ctx, e.dock, hit.Panel)
		return true, err
	}
	return false, nil
}

func (e *Engine) dropPanel(ctx context.Context, id entity.PanelID, p Preview) (bool, error) {
	switch p.Kind {
	case PreviewViewport:
		return true, e.dockUC.SnapPanelToViewport(ctx, e.dock, id, p.Edge)
	case PreviewQuadrant:
		return true, e.dockUC.DockPanel(ctx, e.dock, id, p.Target, p.Edge)
	}
	return false, nil
}

func (e *Engine) dropTab(ctx context.Context, id entity.BlockID, p Preview) (bool, error) {
	switch p.Kind {
	case PreviewTabInsert:
		return true, e.dockUC.MoveBlockToPanel(ctx, e.dock, id, p.Target, p.Index)
	case PreviewViewport:
		return true, e.dockUC.SnapBlockToViewport(ctx, e.dock, id, p.Edge)
	case PreviewQuadrant:
		return true, e.dockUC.DockBlock(ctx, e.dock, id, p.Target, p.Edge)
	}
	return false, nil
}

// panelDropPreview resolves a whole-panel drop: viewport edges first, then
// the quadrants of other panels.
func (e *Engine) panelDropPreview(p entity.Point) Preview {
	id := e.state.hit.Panel
	none := Preview{Panel: id}

	if edge, ok := service.ViewportSnapEdge(e.viewport, p, e.settings.SnapDistance); ok {
		rest := e.dock.Root
		if leaf := entity.FindPanelNode(rest, id); leaf != nil {
			rest = entity.Detach(rest, leaf)
		}
		return e.viewportPreview(rest, edge, none)
	}

	if c, ok := panelAt(e.chrome, p); ok && c.Panel != id {
		return e.quadrantPreview(c, p, none)
	}
	return none
}

// tabDropPreview resolves a tab drop: tab strips first, then viewport
// edges, then panel quadrants.
func (e *Engine) tabDropPreview(p entity.Point) Preview {
	id := e.state.hit.Block
	src := e.dock.PanelOf(id)
	if src == nil {
		return Preview{}
	}
	none := Preview{Block: id, Panel: src.ID}

	for _, c := range e.chrome {
		if !c.Header.Contains(p) {
			continue
		}
		if c.Locked && c.Panel != src.ID {
			return none
		}
		tabs := c.TabRects()
		idx := service.TabInsertIndex(tabs, p.X)
		pv := none
		pv.Kind = PreviewTabInsert
		pv.Rect = c.Header
		pv.Line = service.TabInsertLine(c.Header, tabs, idx)
		pv.Target = c.Panel
		pv.Index = idx
		return pv
	}

	alone := src.Len() == 1
	if edge, ok := service.ViewportSnapEdge(e.viewport, p, e.settings.SnapDistance); ok {
		rest := e.dock.Root
		if leaf := entity.FindPanelNode(rest, src.ID); alone && leaf != nil {
			rest = entity.Detach(rest, leaf)
		}
		return e.viewportPreview(rest, edge, none)
	}

	if c, ok := panelAt(e.chrome, p); ok && (c.Panel != src.ID || !alone) {
		return e.quadrantPreview(c, p, none)
	}
	return none
}

func (e *Engine) viewportPreview(rest entity.DockNode, edge entity.DockEdge, pv Preview) Preview {
	fraction := entity.ViewportFraction(rest, edge, e.dock)
	pv.Kind = PreviewViewport
	pv.Edge = edge
	pv.Rect = service.EdgePreviewRect(e.viewport, edge, fraction)
	return pv
}

func (e *Engine) quadrantPreview(c PanelChrome, p entity.Point, pv Preview) Preview {
	edge := service.ClassifyQuadrant(c.Bounds, p, e.settings.QuadrantStrip)
	pv.Kind = PreviewQuadrant
	pv.Edge = edge
	pv.Target = c.Panel
	pv.Rect = service.EdgePreviewRect(c.Bounds, edge, entity.DefaultSplitRatio)
	return pv
}
