package dock

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port"
	portmocks "github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

var viewport = entity.Rect{W: 300, H: 120}

func testSettings() Settings {
	return Settings{
		HeaderHeight:        20,
		TabMaxWidth:         100,
		ButtonSize:          10,
		EdgeThickness:       6,
		SnapDistance:        10,
		DragThreshold:       4,
		QuadrantStrip:       0.25,
		MaxPropagationDepth: 8,
	}
}

func seqIDs() usecase.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("panel-%d", n)
	}
}

// newEngine registers the blocks, opens them left to right and runs one idle tick.
func newEngine(t *testing.T, ids ...entity.BlockID) *Engine {
	t.Helper()
	d := entity.NewDock()
	for _, id := range ids {
		d.RegisterBlock(entity.NewBlock(id, "notes", string(id)))
	}
	e := New(d, usecase.NewManageDockUseCase(seqIDs()), testSettings())
	ctx := context.Background()
	for _, id := range ids {
		require.NoError(t, e.Open(ctx, id))
	}
	e.Tick(ctx, idle(), viewport)
	return e
}

func idle() entity.InputSnapshot {
	return entity.InputSnapshot{Pointer: entity.Point{X: -1, Y: -1}}
}

func press(x, y int) entity.InputSnapshot {
	return entity.InputSnapshot{Pointer: entity.Point{X: x, Y: y}, Pressed: true, Held: true}
}

func hold(x, y int) entity.InputSnapshot {
	return entity.InputSnapshot{Pointer: entity.Point{X: x, Y: y}, Held: true}
}

func release(x, y int) entity.InputSnapshot {
	return entity.InputSnapshot{Pointer: entity.Point{X: x, Y: y}, Released: true}
}

func (e *Engine) run(inputs ...entity.InputSnapshot) {
	for _, in := range inputs {
		e.Tick(context.Background(), in, viewport)
	}
}

func TestEngine_ChromeLayout(t *testing.T) {
	e := newEngine(t, "a", "b")

	chrome := e.Chrome()
	require.Len(t, chrome, 2)
	a := chrome[0]
	assert.Equal(t, entity.PanelID("panel-1"), a.Panel)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 150, H: 20}, a.Header)
	assert.Equal(t, entity.Rect{X: 0, Y: 20, W: 150, H: 100}, a.Content)
	assert.Equal(t, entity.Rect{X: 140, Y: 5, W: 10, H: 10}, a.LockButton)
	require.Len(t, a.Tabs, 1)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 100, H: 20}, a.Tabs[0].Rect)
	assert.Equal(t, entity.Rect{X: 90, Y: 5, W: 10, H: 10}, a.Tabs[0].Close)
	assert.Equal(t, entity.Rect{X: 80, Y: 5, W: 10, H: 10}, a.Tabs[0].Lock)
	assert.True(t, a.Tabs[0].Ungroup.Empty(), "single tab has no ungroup button")
}

func TestEngine_HitPriority(t *testing.T) {
	e := newEngine(t, "a", "b")

	tests := []struct {
		name string
		p    entity.Point
		want HitKind
	}{
		{"close button", entity.Point{X: 95, Y: 10}, HitTabClose},
		{"lock button", entity.Point{X: 85, Y: 10}, HitTabLock},
		{"tab body", entity.Point{X: 20, Y: 10}, HitTab},
		{"panel lock", entity.Point{X: 145, Y: 10}, HitPanelLock},
		{"drag bar", entity.Point{X: 120, Y: 10}, HitDragBar},
		{"header wins over edge", entity.Point{X: 149, Y: 10}, HitPanelLock},
		{"edge", entity.Point{X: 150, Y: 60}, HitEdge},
		{"content", entity.Point{X: 60, Y: 60}, HitContent},
		{"outside", entity.Point{X: 400, Y: 60}, HitNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.HitTest(tt.p).Kind)
		})
	}
}

func TestEngine_EdgeDragAndCommit(t *testing.T) {
	e := newEngine(t, "a", "b")
	var commits []*entity.LayoutDocument
	e.SetOnCommit(func(doc *entity.LayoutDocument) { commits = append(commits, doc) })

	e.run(press(151, 60), hold(201, 60))
	assert.Equal(t, "resize-edge", e.Interaction())
	assert.Equal(t, 200, e.Dock().Block("a").Bounds.W, "pointer offset from the divider is kept")
	assert.Empty(t, commits, "no commit while dragging")

	e.run(release(201, 60))

	assert.Equal(t, "idle", e.Interaction())
	require.Len(t, commits, 1)
	split, ok := e.Dock().Root.(*entity.SplitNode)
	require.True(t, ok)
	assert.True(t, split.UserSized)
	assert.Equal(t, 200, split.PreferredFirstSpan)
	assert.Equal(t, 100, split.PreferredSecondSpan)
	assert.True(t, commits[0].Tree.UserSized)
}

func TestEngine_EscapeCancelsResize(t *testing.T) {
	e := newEngine(t, "a", "b")
	committed := false
	e.SetOnCommit(func(*entity.LayoutDocument) { committed = true })

	e.run(press(150, 60), hold(220, 60))
	require.Equal(t, 220, e.Dock().Block("a").Bounds.W)

	esc := hold(220, 60)
	esc.Keys = []entity.Key{entity.KeyEscape}
	e.run(esc, release(220, 60))

	assert.Equal(t, 150, e.Dock().Block("a").Bounds.W)
	assert.False(t, e.Dock().Root.(*entity.SplitNode).UserSized)
	assert.False(t, committed)
}

func TestEngine_CornerDragMovesLinkedCorners(t *testing.T) {
	d := entity.NewDock()
	leaves := make(map[entity.BlockID]entity.DockNode)
	for _, id := range []entity.BlockID{"a", "b", "c", "d"} {
		d.RegisterBlock(entity.NewBlock(id, "notes", string(id)))
		g := d.NewPanel(entity.PanelID("p-" + id))
		d.AddToPanel(g, id, true, -1)
		leaves[id] = entity.NewBlockNode(g.ID)
	}
	d.Root = entity.NewSplitNode(entity.OrientationVertical,
		entity.NewSplitNode(entity.OrientationHorizontal, leaves["a"], leaves["b"], 0.5),
		entity.NewSplitNode(entity.OrientationHorizontal, leaves["c"], leaves["d"], 0.5),
		0.5)
	d.SyncAllVisibility()

	e := New(d, usecase.NewManageDockUseCase(seqIDs()), testSettings())
	vp := entity.Rect{W: 200, H: 100}
	ctx := context.Background()
	e.Tick(ctx, idle(), vp)
	require.Len(t, e.Corners(), 2)
	assert.Equal(t, HitCorner, e.HitTest(entity.Point{X: 99, Y: 49}).Kind)

	e.Tick(ctx, press(99, 49), vp)
	e.Tick(ctx, hold(129, 69), vp)
	e.Tick(ctx, release(129, 69), vp)

	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 130, H: 70}, d.Block("a").Bounds)
	assert.Equal(t, entity.Rect{X: 130, Y: 0, W: 70, H: 70}, d.Block("c").Bounds)
	assert.Equal(t, entity.Rect{X: 130, Y: 70, W: 70, H: 30}, d.Block("d").Bounds)
}

func mergeAB(t *testing.T, e *Engine) *entity.PanelGroup {
	t.Helper()
	ctx := context.Background()
	uc := usecase.NewManageDockUseCase(seqIDs())
	require.NoError(t, uc.MoveBlockToPanel(ctx, e.Dock(), "b", "panel-1", -1))
	e.run(idle())
	g := e.Dock().Panel("panel-1")
	require.Equal(t, []entity.BlockID{"a", "b"}, g.Blocks)
	return g
}

func TestEngine_TabClickActivates(t *testing.T) {
	e := newEngine(t, "a", "b")
	g := mergeAB(t, e)
	require.Equal(t, entity.BlockID("b"), g.Active)

	e.run(press(20, 10), release(21, 10))

	assert.Equal(t, entity.BlockID("a"), g.Active)
	assert.True(t, e.Dock().Block("a").Visible)
	assert.False(t, e.Dock().Block("b").Visible)
}

func TestEngine_LockedPanelRejectsButtonsButActivates(t *testing.T) {
	e := newEngine(t, "a", "b")
	g := mergeAB(t, e)
	g.Locked = true
	e.run(idle())

	// close on tab a, ungroup on tab b
	e.run(press(95, 10), release(95, 10))
	e.run(press(175, 10), release(175, 10))
	// tab b dragged toward tab a's slot
	e.run(press(120, 10), hold(10, 10), release(10, 10))

	assert.Equal(t, []entity.BlockID{"a", "b"}, g.Blocks)
	assert.Equal(t, []entity.PanelID{"panel-1"}, e.Dock().ReachablePanels())

	e.run(press(20, 10), release(20, 10))
	assert.Equal(t, entity.BlockID("a"), g.Active, "activation still works")
}

func TestEngine_LockedTabDragDoesNotActivateOnRelease(t *testing.T) {
	e := newEngine(t, "a", "b")
	g := mergeAB(t, e)
	g.Locked = true
	e.run(idle())
	require.Equal(t, entity.BlockID("b"), g.Active)

	e.run(press(20, 10), hold(250, 100))
	assert.Equal(t, "refused", e.Interaction())
	assert.Equal(t, PreviewNone, e.Preview().Kind)

	e.run(release(250, 100))

	assert.Equal(t, "idle", e.Interaction())
	assert.Equal(t, entity.BlockID("b"), g.Active, "a drag past the threshold is not a click")
}

func TestEngine_OpenDuringResizeCancelsIt(t *testing.T) {
	e := newEngine(t, "a", "b")
	e.Dock().RegisterBlock(entity.NewBlock("c", "notes", "c"))
	inner := e.Dock().Root.(*entity.SplitNode)

	e.run(press(151, 60), hold(201, 60))
	require.Equal(t, 200, e.Dock().Block("a").Bounds.W)

	require.NoError(t, e.Open(context.Background(), "c"))
	assert.Equal(t, "idle", e.Interaction())
	assert.InDelta(t, 0.5, inner.Ratio, 1e-9, "cancelled resize is rolled back")

	e.run(hold(180, 60), release(180, 60))

	root := e.Dock().Root.(*entity.SplitNode)
	assert.InDelta(t, 2.0/3, root.Ratio, 1e-9)
	assert.Equal(t, 100, e.Dock().Block("a").Bounds.W)
	assert.False(t, inner.UserSized)
}

func TestEngine_ResizeFollowsItsDividerAcrossEdits(t *testing.T) {
	e := newEngine(t, "a", "b")
	e.Dock().RegisterBlock(entity.NewBlock("c", "notes", "c"))
	uc := usecase.NewManageDockUseCase(seqIDs())

	e.run(press(151, 60), hold(201, 60))
	_, err := uc.OpenBlock(context.Background(), e.Dock(), "c")
	require.NoError(t, err)

	e.run(hold(101, 60))

	root := e.Dock().Root.(*entity.SplitNode)
	assert.InDelta(t, 2.0/3, root.Ratio, 1e-9, "the outer divider was not grabbed")
	assert.Equal(t, 100, e.Dock().Block("a").Bounds.W)

	e.run(release(101, 60))
	assert.Equal(t, "idle", e.Interaction())
}

func TestEngine_UngroupButton(t *testing.T) {
	e := newEngine(t, "a", "b")
	mergeAB(t, e)
	require.False(t, e.Chrome()[0].Tabs[0].Ungroup.Empty())

	e.run(press(75, 10), release(75, 10))

	require.Len(t, e.Dock().ReachablePanels(), 2)
	assert.Equal(t, entity.Rect{X: 150, Y: 0, W: 150, H: 120}, e.Dock().Block("a").Bounds)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 150, H: 120}, e.Dock().Block("b").Bounds)
}

func TestEngine_TabLockButton(t *testing.T) {
	e := newEngine(t, "a", "b")

	e.run(press(85, 10), release(85, 10))

	assert.True(t, e.Dock().Block("a").Locked)
	assert.True(t, e.Chrome()[0].Tabs[0].Locked)
}

func TestEngine_PanelDragSnapsToViewport(t *testing.T) {
	e := newEngine(t, "a", "b")

	e.run(press(120, 10), hold(120, 115))

	pv := e.Preview()
	assert.Equal(t, PreviewViewport, pv.Kind)
	assert.Equal(t, entity.DockEdgeBottom, pv.Edge)
	assert.Equal(t, entity.Rect{X: 0, Y: 60, W: 300, H: 60}, pv.Rect)

	e.run(release(120, 115))

	assert.False(t, e.Preview().Active())
	assert.Equal(t, entity.Rect{X: 0, Y: 60, W: 300, H: 60}, e.Dock().Block("a").Bounds)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 300, H: 60}, e.Dock().Block("b").Bounds)
}

func TestEngine_PanelDragDocksOnQuadrant(t *testing.T) {
	e := newEngine(t, "a", "b")

	e.run(press(120, 10), hold(225, 25))

	pv := e.Preview()
	assert.Equal(t, PreviewQuadrant, pv.Kind)
	assert.Equal(t, entity.DockEdgeTop, pv.Edge)
	assert.Equal(t, entity.PanelID("panel-2"), pv.Target)
	assert.Equal(t, entity.Rect{X: 150, Y: 0, W: 150, H: 60}, pv.Rect)

	e.run(release(225, 25))

	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 300, H: 60}, e.Dock().Block("a").Bounds)
	assert.Equal(t, entity.Rect{X: 0, Y: 60, W: 300, H: 60}, e.Dock().Block("b").Bounds)
}

func TestEngine_SmallMovementIsNotADrag(t *testing.T) {
	e := newEngine(t, "a", "b")

	e.run(press(120, 10), hold(122, 11))
	assert.Equal(t, "press-bar", e.Interaction())
	assert.False(t, e.Preview().Active())

	e.run(release(122, 11))
	assert.Equal(t, []entity.PanelID{"panel-1", "panel-2"}, e.Dock().ReachablePanels())
}

func TestEngine_TabDragMergesIntoStrip(t *testing.T) {
	e := newEngine(t, "a", "b")

	e.run(press(20, 10), hold(200, 10))

	pv := e.Preview()
	require.Equal(t, PreviewTabInsert, pv.Kind)
	assert.Equal(t, entity.PanelID("panel-2"), pv.Target)
	assert.Equal(t, 1, pv.Index)
	assert.Equal(t, entity.Rect{X: 250, Y: 0, W: 1, H: 20}, pv.Line)

	e.run(release(200, 10))

	g := e.Dock().Panel("panel-2")
	require.NotNil(t, g)
	assert.Equal(t, []entity.BlockID{"b", "a"}, g.Blocks)
	assert.Equal(t, entity.BlockID("a"), g.Active)
	assert.Nil(t, e.Dock().Panel("panel-1"))
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 300, H: 120}, e.Dock().Block("a").Bounds)
}

func TestEngine_IntegrityDiagnosticsLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))

	e := newEngine(t, "a")
	stray := e.Dock().RegisterBlock(entity.NewBlock("stray", "notes", "Stray"))
	stray.Visible = true

	for range 3 {
		e.Tick(ctx, idle(), viewport)
	}

	require.Len(t, e.Diagnostics(), 1)
	assert.Equal(t, "visible-ungrouped:stray", e.Diagnostics()[0].Key)
	assert.Equal(t, 1, strings.Count(buf.String(), "visible-ungrouped:stray"))
}

func TestCheckIntegrity_Clean(t *testing.T) {
	e := newEngine(t, "a", "b")
	assert.Empty(t, CheckIntegrity(e.Dock()))
}

func TestEngine_DispatchesContent(t *testing.T) {
	e := newEngine(t, "a", "b")
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := start
	e.now = func() time.Time { return clock }

	r := portmocks.NewMockContentRenderer(t)
	e.RegisterContent("notes", r)

	contentA := entity.Rect{X: 0, Y: 20, W: 150, H: 100}
	contentB := entity.Rect{X: 150, Y: 20, W: 150, H: 100}
	isBlock := func(id entity.BlockID) any {
		return mock.MatchedBy(func(b *entity.Block) bool { return b.ID == id })
	}

	var ticks []port.TickContext
	r.EXPECT().Update(mock.Anything, isBlock("a"), contentA).
		Run(func(tick port.TickContext, _ *entity.Block, _ entity.Rect) { ticks = append(ticks, tick) }).
		Times(2)
	r.EXPECT().Update(mock.Anything, isBlock("b"), contentB).Times(2)
	r.EXPECT().Draw(isBlock("a"), contentA).Times(2)
	r.EXPECT().Draw(isBlock("b"), contentB).Times(2)

	e.run(hold(10, 50))
	clock = clock.Add(16 * time.Millisecond)
	e.run(idle())

	require.Len(t, ticks, 2)
	assert.True(t, ticks[0].Hovered)
	assert.False(t, ticks[1].Hovered)
	assert.Equal(t, 16*time.Millisecond, ticks[1].Delta)
	assert.Equal(t, ticks[0].Frame+1, ticks[1].Frame)
}

func TestEngine_ToggleOpensAndCloses(t *testing.T) {
	e := newEngine(t, "a")
	e.Dock().RegisterBlock(entity.NewBlock("b", "notes", "B"))
	ctx := context.Background()

	require.NoError(t, e.Toggle(ctx, "b"))
	e.run(idle())
	assert.Len(t, e.Chrome(), 2)

	require.NoError(t, e.Toggle(ctx, "b"))
	e.run(idle())
	assert.Len(t, e.Chrome(), 1)
	assert.False(t, e.Dock().Block("b").Visible)
}

func TestSettings_Normalized(t *testing.T) {
	s := Settings{QuadrantStrip: 0.9, EdgeThickness: -1}.normalized()
	def := DefaultSettings()
	assert.Equal(t, def.QuadrantStrip, s.QuadrantStrip)
	assert.Equal(t, def.EdgeThickness, s.EdgeThickness)
	assert.Equal(t, def.MaxPropagationDepth, s.MaxPropagationDepth)
	assert.Equal(t, 0, s.HeaderHeight, "zero header is allowed")
}
