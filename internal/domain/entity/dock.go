package entity

import "sort"

// Dock owns every block, every panel group and the layout tree.
// Cross references are ids: a block names its panel, a panel names its
// blocks, a BlockNode names its panel.
type Dock struct {
	Root DockNode

	blocks     map[BlockID]*Block
	blockOrder []BlockID
	panels     map[PanelID]*PanelGroup
}

// NewDock creates an empty dock.
func NewDock() *Dock {
	return &Dock{
		blocks: make(map[BlockID]*Block),
		panels: make(map[PanelID]*PanelGroup),
	}
}

// RegisterBlock adds a block to the catalog. Registering an existing id
// replaces its descriptive fields and keeps its layout state.
func (d *Dock) RegisterBlock(b *Block) *Block {
	if b == nil || b.ID == "" {
		return nil
	}
	if existing, ok := d.blocks[b.ID]; ok {
		existing.Kind = b.Kind
		existing.Title = b.Title
		existing.MinWidth = b.MinWidth
		existing.MinHeight = b.MinHeight
		return existing
	}
	d.blocks[b.ID] = b
	d.blockOrder = append(d.blockOrder, b.ID)
	return b
}

// Block returns a block by id, or nil.
func (d *Dock) Block(id BlockID) *Block {
	return d.blocks[id]
}

// Blocks returns all blocks in registration order.
func (d *Dock) Blocks() []*Block {
	out := make([]*Block, 0, len(d.blockOrder))
	for _, id := range d.blockOrder {
		out = append(out, d.blocks[id])
	}
	return out
}

// Panel returns a panel group by id, or nil.
func (d *Dock) Panel(id PanelID) *PanelGroup {
	return d.panels[id]
}

// Panels returns all panel groups sorted by id.
func (d *Dock) Panels() []*PanelGroup {
	out := make([]*PanelGroup, 0, len(d.panels))
	for _, g := range d.panels {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PanelOf returns the group holding a block, or nil.
func (d *Dock) PanelOf(id BlockID) *PanelGroup {
	b := d.blocks[id]
	if b == nil || b.PanelID == "" {
		return nil
	}
	return d.panels[b.PanelID]
}

// ActiveBlock returns the active member of a panel group, or nil.
func (d *Dock) ActiveBlock(id PanelID) *Block {
	g := d.panels[id]
	if g == nil || g.Active == "" {
		return nil
	}
	return d.blocks[g.Active]
}

// NewPanel creates an empty group. An existing id returns the existing group.
func (d *Dock) NewPanel(id PanelID) *PanelGroup {
	if g, ok := d.panels[id]; ok {
		return g
	}
	g := NewPanelGroup(id)
	d.panels[id] = g
	return g
}

// DeletePanel removes a group, detaches its leaf and hides its members.
func (d *Dock) DeletePanel(id PanelID) {
	g := d.panels[id]
	if g == nil {
		return
	}
	for _, bid := range g.Blocks {
		if b := d.blocks[bid]; b != nil {
			b.PanelID = ""
			b.Visible = false
		}
	}
	if leaf := FindPanelNode(d.Root, id); leaf != nil {
		d.Root = Detach(d.Root, leaf)
	}
	delete(d.panels, id)
}

// AddToPanel moves a block into a group, leaving its previous group first.
// An emptied previous group is deleted.
func (d *Dock) AddToPanel(g *PanelGroup, id BlockID, makeActive bool, index int) {
	b := d.blocks[id]
	if b == nil || g == nil {
		return
	}
	if b.PanelID != "" && b.PanelID != g.ID {
		d.RemoveFromPanel(id)
	}
	g.AddBlock(id, makeActive, index)
	b.PanelID = g.ID
	d.SyncVisibility(g)
}

// RemoveFromPanel takes a block out of its group and hides it. The group is
// deleted and its leaf detached when it becomes empty.
func (d *Dock) RemoveFromPanel(id BlockID) *PanelGroup {
	b := d.blocks[id]
	if b == nil || b.PanelID == "" {
		return nil
	}
	g := d.panels[b.PanelID]
	b.PanelID = ""
	b.Visible = false
	if g == nil {
		return nil
	}
	g.RemoveBlock(id)
	if g.IsEmpty() {
		d.DeletePanel(g.ID)
		return nil
	}
	d.SyncVisibility(g)
	return g
}

// SyncVisibility shows the active member of an attached group and hides the rest.
func (d *Dock) SyncVisibility(g *PanelGroup) {
	attached := FindPanelNode(d.Root, g.ID) != nil
	for _, bid := range g.Blocks {
		if b := d.blocks[bid]; b != nil {
			b.Visible = attached && bid == g.Active
		}
	}
}

// SyncAllVisibility re-derives visibility for every group.
func (d *Dock) SyncAllVisibility() {
	for _, g := range d.panels {
		d.SyncVisibility(g)
	}
}

// Arrange lays the tree out inside the viewport.
func (d *Dock) Arrange(viewport Rect) {
	if d.Root == nil {
		return
	}
	d.Root.Arrange(d, viewport)
}

// VisibleBlocks returns visible blocks in registration order.
func (d *Dock) VisibleBlocks() []*Block {
	var out []*Block
	for _, id := range d.blockOrder {
		if b := d.blocks[id]; b.Visible {
			out = append(out, b)
		}
	}
	return out
}

// ReachablePanels returns the panels reachable from the root in pre-order.
func (d *Dock) ReachablePanels() []PanelID {
	return PanelOrder(d.Root)
}

// IsBlockLocked reports the effective lock of a block: its own flag or its group's.
func (d *Dock) IsBlockLocked(id BlockID) bool {
	b := d.blocks[id]
	if b == nil {
		return false
	}
	if b.Locked {
		return true
	}
	g := d.PanelOf(id)
	return g != nil && g.Locked
}

// Reset drops every group and the tree, keeping the block catalog with all
// blocks hidden, ungrouped and unlocked.
func (d *Dock) Reset() {
	d.Root = nil
	d.panels = make(map[PanelID]*PanelGroup)
	for _, b := range d.blocks {
		b.PanelID = ""
		b.Visible = false
		b.Locked = false
		b.Bounds = Rect{}
	}
}
