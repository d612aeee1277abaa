package port

import (
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// TickContext carries the per-tick facts handed to content renderers.
type TickContext struct {
	Frame uint64
	Now   time.Time
	Delta time.Duration
	Input entity.InputSnapshot

	// Hovered is true when the pointer lies inside the block's content rectangle.
	Hovered bool
	// Captured is true while the dock owns the pointer (a drag is in progress).
	Captured bool
}

// ContentRenderer draws and updates blocks of one kind.
// Content rectangles exclude the panel header.
type ContentRenderer interface {
	// Draw renders the block into its content rectangle.
	Draw(block *entity.Block, content entity.Rect)
	// Update advances block-specific state once per tick.
	Update(tick TickContext, block *entity.Block, content entity.Rect)
}
