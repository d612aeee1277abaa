package dock

import (
	"context"
	"time"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
	"github.com/bnema/dockyard/internal/logging"
)

// CommitFunc receives a capture of the layout after every completed edit.
type CommitFunc func(doc *entity.LayoutDocument)

// Engine is the single owner of a dock and its interaction state.
// It is not safe for concurrent use: the host calls Tick from one goroutine.
type Engine struct {
	dock     *entity.Dock
	dockUC   *usecase.ManageDockUseCase
	resizeUC *usecase.ResizeSplitUseCase
	settings Settings

	renderers map[entity.BlockKind]port.ContentRenderer
	onCommit  CommitFunc
	now       func() time.Time

	viewport entity.Rect
	edges    []service.ResizeEdge
	corners  []service.CornerHandle
	chrome   []PanelChrome
	preview  Preview
	state    interaction

	frame    uint64
	lastTick time.Time

	diagnostics []Diagnostic
	reported    map[string]bool
}

// New creates an engine over d.
func New(d *entity.Dock, dockUC *usecase.ManageDockUseCase, settings Settings) *Engine {
	settings = settings.normalized()
	return &Engine{
		dock:      d,
		dockUC:    dockUC,
		resizeUC:  usecase.NewResizeSplitUseCase(settings.MaxPropagationDepth),
		settings:  settings,
		renderers: make(map[entity.BlockKind]port.ContentRenderer),
		now:       time.Now,
		reported:  make(map[string]bool),
	}
}

// Dock returns the owned dock.
func (e *Engine) Dock() *entity.Dock { return e.dock }

// Settings returns the active settings.
func (e *Engine) Settings() Settings { return e.settings }

// SetSettings replaces the chrome metrics and thresholds.
func (e *Engine) SetSettings(s Settings) {
	e.settings = s.normalized()
	e.resizeUC = usecase.NewResizeSplitUseCase(e.settings.MaxPropagationDepth)
	e.refresh()
}

// RegisterContent sets the renderer for a block kind.
func (e *Engine) RegisterContent(kind entity.BlockKind, r port.ContentRenderer) {
	if r == nil {
		delete(e.renderers, kind)
		return
	}
	e.renderers[kind] = r
}

// SetOnCommit sets the callback invoked after each completed edit.
func (e *Engine) SetOnCommit(fn CommitFunc) {
	e.onCommit = fn
}

// Viewport returns the viewport of the last tick.
func (e *Engine) Viewport() entity.Rect { return e.viewport }

// Edges returns the resize edges derived on the last tick.
func (e *Engine) Edges() []service.ResizeEdge { return e.edges }

// Corners returns the corner handles derived on the last tick.
func (e *Engine) Corners() []service.CornerHandle { return e.corners }

// Chrome returns the panel headers laid out on the last tick.
func (e *Engine) Chrome() []PanelChrome { return e.chrome }

// Preview returns the pending drop preview.
func (e *Engine) Preview() Preview { return e.preview }

// Diagnostics returns the integrity issues found on the last tick.
func (e *Engine) Diagnostics() []Diagnostic { return e.diagnostics }

// Frame returns the number of ticks processed.
func (e *Engine) Frame() uint64 { return e.frame }

// Interaction names the interaction in progress, "idle" when none.
func (e *Engine) Interaction() string { return e.state.kind.String() }

// HitTest reports what lies under p on the current layout.
func (e *Engine) HitTest(p entity.Point) Hit {
	return hitTest(e.chrome, e.edges, e.corners, p)
}

// Tick consumes one input snapshot: it arranges the dock in viewport, runs
// the interaction state machines, checks integrity and dispatches content.
func (e *Engine) Tick(ctx context.Context, in entity.InputSnapshot, viewport entity.Rect) {
	log := logging.FromContext(ctx)

	now := e.now()
	var delta time.Duration
	if !e.lastTick.IsZero() {
		delta = now.Sub(e.lastTick)
	}
	e.lastTick = now
	e.frame++

	if viewport != e.viewport {
		log.Debug().
			Int("width", viewport.W).
			Int("height", viewport.H).
			Msg("viewport changed")
		e.viewport = viewport
	}
	e.refresh()

	if e.state.kind != stateIdle && in.KeyPressed(entity.KeyEscape) {
		e.cancel(ctx)
	}
	if in.Pressed && e.state.kind == stateIdle {
		e.press(ctx, in.Pointer)
	}
	if e.state.kind != stateIdle && (in.Held || in.Pressed) && !in.Released {
		e.drag(ctx, in.Pointer)
	}
	if in.Released && e.state.kind != stateIdle {
		e.release(ctx, in.Pointer)
	}

	e.refresh()
	e.checkIntegrity(ctx)
	e.dispatch(port.TickContext{
		Frame:    e.frame,
		Now:      now,
		Delta:    delta,
		Input:    in,
		Captured: e.state.kind != stateIdle,
	})
}

// Open shows a block, docking it at the right edge when it has no group.
func (e *Engine) Open(ctx context.Context, id entity.BlockID) error {
	e.interrupt(ctx)
	if _, err := e.dockUC.OpenBlock(ctx, e.dock, id); err != nil {
		return err
	}
	e.Commit(ctx)
	return nil
}

// Close hides a block.
func (e *Engine) Close(ctx context.Context, id entity.BlockID) error {
	e.interrupt(ctx)
	if err := e.dockUC.CloseBlock(ctx, e.dock, id); err != nil {
		return err
	}
	e.Commit(ctx)
	return nil
}

// Toggle opens a closed block or closes an open one.
func (e *Engine) Toggle(ctx context.Context, id entity.BlockID) error {
	if e.dock.PanelOf(id) != nil {
		return e.Close(ctx, id)
	}
	return e.Open(ctx, id)
}

// interrupt cancels the gesture in progress before a structural edit, so
// its handles never refer to a layout that no longer exists.
func (e *Engine) interrupt(ctx context.Context) {
	if e.state.kind != stateIdle {
		e.cancel(ctx)
	}
}

// Commit re-arranges and reports the current layout to the commit callback.
// Hosts call it after editing the dock directly.
func (e *Engine) Commit(ctx context.Context) {
	e.refresh()
	if e.onCommit == nil {
		return
	}
	logging.FromContext(ctx).Trace().Uint64("frame", e.frame).Msg("layout committed")
	e.onCommit(entity.CaptureLayout(e.dock))
}

// refresh arranges the dock and re-derives handles and chrome.
func (e *Engine) refresh() {
	e.dock.Arrange(e.viewport)
	e.edges = service.DeriveResizeEdges(e.dock.Root, e.dock, e.settings.EdgeThickness)
	e.corners = service.DeriveCorners(e.edges, e.settings.EdgeThickness)
	e.chrome = buildChrome(e.dock, e.settings)
}

// checkIntegrity logs each distinct issue once.
func (e *Engine) checkIntegrity(ctx context.Context) {
	e.diagnostics = CheckIntegrity(e.dock)
	for _, diag := range e.diagnostics {
		if e.reported[diag.Key] {
			continue
		}
		e.reported[diag.Key] = true
		logging.FromContext(ctx).Warn().Str("key", diag.Key).Msg(diag.Message)
	}
}

// dispatch updates and draws every displayed block, in tree order.
func (e *Engine) dispatch(tick port.TickContext) {
	for _, c := range e.chrome {
		b := e.dock.ActiveBlock(c.Panel)
		if b == nil {
			continue
		}
		r := e.renderers[b.Kind]
		if r == nil {
			continue
		}
		t := tick
		t.Hovered = c.Content.Contains(tick.Input.Pointer)
		r.Update(t, b, c.Content)
		r.Draw(b, c.Content)
	}
}
