package model

import (
	"fmt"
	"time"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/dock"
)

// Block kinds the demo host knows how to draw.
const (
	KindNotes entity.BlockKind = "notes"
	KindClock entity.BlockKind = "clock"
	KindStats entity.BlockKind = "stats"
)

var notesText = []string{
	"Drag a header to move the panel.",
	"Drag a tab to another header to group it.",
	"Drop near a side of a panel to split it.",
	"Drop near the screen border to snap.",
	"Drag dividers and corners to resize.",
	"x close  L lock  ^ ungroup  # lock panel",
}

// notesRenderer draws static help text.
type notesRenderer struct {
	canvas  *Canvas
	hovered map[entity.BlockID]bool
}

func newNotesRenderer(c *Canvas) *notesRenderer {
	return &notesRenderer{canvas: c, hovered: make(map[entity.BlockID]bool)}
}

func (r *notesRenderer) Update(tick port.TickContext, block *entity.Block, _ entity.Rect) {
	r.hovered[block.ID] = tick.Hovered && !tick.Captured
}

func (r *notesRenderer) Draw(block *entity.Block, content entity.Rect) {
	style := styles.CellMuted
	if r.hovered[block.ID] {
		style = styles.CellDefault
	}
	for i, line := range notesText {
		r.canvas.Text(content, content.X+1, content.Y+1+i, line, style)
	}
}

// clockRenderer draws the wall clock of the last tick.
type clockRenderer struct {
	canvas *Canvas
	now    time.Time
}

func newClockRenderer(c *Canvas) *clockRenderer {
	return &clockRenderer{canvas: c}
}

func (r *clockRenderer) Update(tick port.TickContext, _ *entity.Block, _ entity.Rect) {
	r.now = tick.Now
}

func (r *clockRenderer) Draw(_ *entity.Block, content entity.Rect) {
	clock := r.now.Format("15:04:05")
	date := r.now.Format("Mon 02 Jan 2006")
	cx, cy := content.Center()
	r.canvas.Text(content, cx-len(clock)/2, cy-1, clock, styles.CellAccent)
	r.canvas.Text(content, cx-len(date)/2, cy, date, styles.CellMuted)
}

// statsRenderer draws engine counters.
type statsRenderer struct {
	canvas *Canvas
	engine *dock.Engine
	tick   port.TickContext
}

func newStatsRenderer(c *Canvas, engine *dock.Engine) *statsRenderer {
	return &statsRenderer{canvas: c, engine: engine}
}

func (r *statsRenderer) Update(tick port.TickContext, _ *entity.Block, _ entity.Rect) {
	r.tick = tick
}

func (r *statsRenderer) Draw(_ *entity.Block, content entity.Rect) {
	diags := r.engine.Diagnostics()
	lines := []string{
		fmt.Sprintf("frame    %d", r.tick.Frame),
		fmt.Sprintf("delta    %s", r.tick.Delta.Round(time.Millisecond)),
		fmt.Sprintf("pointer  %d,%d", r.tick.Input.Pointer.X, r.tick.Input.Pointer.Y),
		fmt.Sprintf("state    %s", r.engine.Interaction()),
		fmt.Sprintf("panels   %d", len(r.engine.Dock().ReachablePanels())),
		fmt.Sprintf("issues   %d", len(diags)),
	}
	for i, line := range lines {
		r.canvas.Text(content, content.X+1, content.Y+1+i, line, styles.CellDefault)
	}
	for i, d := range diags {
		r.canvas.Text(content, content.X+1, content.Y+2+len(lines)+i, d.Message, styles.CellWarning)
	}
}
