package entity

// PanelID uniquely identifies a panel group.
type PanelID string

// PanelGroup is an ordered collection of blocks sharing one BlockNode slot.
// Insertion order is tab order; exactly one member is active while non-empty.
type PanelGroup struct {
	ID     PanelID
	Blocks []BlockID
	Active BlockID
	Locked bool
}

// NewPanelGroup creates an empty group.
func NewPanelGroup(id PanelID) *PanelGroup {
	return &PanelGroup{
		ID:     id,
		Blocks: make([]BlockID, 0, 1),
	}
}

// Len returns the number of members.
func (g *PanelGroup) Len() int {
	return len(g.Blocks)
}

// IsEmpty reports whether the group has no members.
func (g *PanelGroup) IsEmpty() bool {
	return len(g.Blocks) == 0
}

// IndexOf returns the tab index of a member, or -1.
func (g *PanelGroup) IndexOf(id BlockID) int {
	for i, b := range g.Blocks {
		if b == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is a member.
func (g *PanelGroup) Contains(id BlockID) bool {
	return g.IndexOf(id) >= 0
}

// AddBlock inserts a block at insertIndex (appends when out of range or negative).
// The first block added becomes active regardless of makeActive.
// Adding an existing member is a no-op apart from the activation request.
func (g *PanelGroup) AddBlock(id BlockID, makeActive bool, insertIndex int) bool {
	if id == "" {
		return false
	}
	if g.Contains(id) {
		if makeActive {
			g.Active = id
		}
		return false
	}

	if insertIndex < 0 || insertIndex > len(g.Blocks) {
		insertIndex = len(g.Blocks)
	}
	g.Blocks = append(g.Blocks, "")
	copy(g.Blocks[insertIndex+1:], g.Blocks[insertIndex:])
	g.Blocks[insertIndex] = id

	if makeActive || g.Active == "" {
		g.Active = id
	}
	return true
}

// RemoveBlock removes a member. When the active member is removed the first
// remaining member is promoted. Returns false if id was not a member.
func (g *PanelGroup) RemoveBlock(id BlockID) bool {
	i := g.IndexOf(id)
	if i < 0 {
		return false
	}
	g.Blocks = append(g.Blocks[:i], g.Blocks[i+1:]...)

	if g.Active == id {
		g.Active = ""
		if len(g.Blocks) > 0 {
			g.Active = g.Blocks[0]
		}
	}
	return true
}

// SetActiveBlock switches the visible member. Only current members qualify.
func (g *PanelGroup) SetActiveBlock(id BlockID) bool {
	if !g.Contains(id) {
		return false
	}
	g.Active = id
	return true
}

// MoveBlock moves a member to a new tab index (clamped to the valid range).
func (g *PanelGroup) MoveBlock(id BlockID, newIndex int) bool {
	from := g.IndexOf(id)
	if from < 0 {
		return false
	}
	newIndex = min(max(newIndex, 0), len(g.Blocks)-1)
	if from == newIndex {
		return true
	}

	g.Blocks = append(g.Blocks[:from], g.Blocks[from+1:]...)
	g.Blocks = append(g.Blocks, "")
	copy(g.Blocks[newIndex+1:], g.Blocks[newIndex:])
	g.Blocks[newIndex] = id
	return true
}
