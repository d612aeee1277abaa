package entity

import "time"

// LayoutDocumentVersion is the current schema version of saved layouts.
// Increment when making breaking changes to the serialization format.
const LayoutDocumentVersion = 1

// Node types of a serialized tree.
const (
	NodeTypePanel = "panel"
	NodeTypeSplit = "split"
)

// LayoutDocument is a complete snapshot of the dock: which blocks are
// enabled, how they are grouped, the tree shape and the lock flags.
type LayoutDocument struct {
	Version    int              `json:"version" toml:"version" jsonschema:"minimum=1"`
	SavedAt    time.Time        `json:"saved_at" toml:"saved_at"`
	Menu       []MenuEntry      `json:"menu" toml:"menu"`
	Panels     []PanelDocument  `json:"panels" toml:"panels"`
	Tree       *NodeDocument    `json:"tree,omitempty" toml:"tree,omitempty"`
	BlockLocks map[BlockID]bool `json:"block_locks,omitempty" toml:"block_locks,omitempty"`
	PanelLocks map[PanelID]bool `json:"panel_locks,omitempty" toml:"panel_locks,omitempty"`
}

// MenuEntry is the catalog state of one block.
type MenuEntry struct {
	ID      BlockID   `json:"id" toml:"id"`
	Kind    BlockKind `json:"kind" toml:"kind"`
	Title   string    `json:"title,omitempty" toml:"title,omitempty"`
	Enabled bool      `json:"enabled" toml:"enabled"`
}

// PanelDocument captures one panel group.
type PanelDocument struct {
	ID     PanelID   `json:"id" toml:"id"`
	Active BlockID   `json:"active" toml:"active"`
	Blocks []BlockID `json:"blocks" toml:"blocks"`
}

// NodeDocument captures a tree node: a panel leaf or a split.
type NodeDocument struct {
	Type                string        `json:"type" toml:"type" jsonschema:"enum=panel,enum=split"`
	PanelID             PanelID       `json:"panel_id,omitempty" toml:"panel_id,omitempty"`
	Orientation         string        `json:"orientation,omitempty" toml:"orientation,omitempty" jsonschema:"enum=horizontal,enum=vertical"`
	Ratio               float64       `json:"ratio,omitempty" toml:"ratio,omitempty"`
	PreferredFirstSpan  int           `json:"preferred_first_span,omitempty" toml:"preferred_first_span,omitempty"`
	PreferredSecondSpan int           `json:"preferred_second_span,omitempty" toml:"preferred_second_span,omitempty"`
	UserSized           bool          `json:"user_sized,omitempty" toml:"user_sized,omitempty"`
	First               *NodeDocument `json:"first,omitempty" toml:"first,omitempty"`
	Second              *NodeDocument `json:"second,omitempty" toml:"second,omitempty"`
}

// CaptureLayout snapshots the live dock.
func CaptureLayout(d *Dock) *LayoutDocument {
	doc := &LayoutDocument{
		Version:    LayoutDocumentVersion,
		SavedAt:    time.Now(),
		Menu:       make([]MenuEntry, 0, len(d.blockOrder)),
		Panels:     make([]PanelDocument, 0, len(d.panels)),
		BlockLocks: make(map[BlockID]bool),
		PanelLocks: make(map[PanelID]bool),
	}

	for _, b := range d.Blocks() {
		doc.Menu = append(doc.Menu, MenuEntry{
			ID:      b.ID,
			Kind:    b.Kind,
			Title:   b.Title,
			Enabled: b.PanelID != "",
		})
		if b.Locked {
			doc.BlockLocks[b.ID] = true
		}
	}

	for _, g := range d.Panels() {
		doc.Panels = append(doc.Panels, PanelDocument{
			ID:     g.ID,
			Active: g.Active,
			Blocks: append([]BlockID(nil), g.Blocks...),
		})
		if g.Locked {
			doc.PanelLocks[g.ID] = true
		}
	}

	doc.Tree = captureNode(d.Root)
	return doc
}

func captureNode(node DockNode) *NodeDocument {
	switch n := node.(type) {
	case *BlockNode:
		return &NodeDocument{Type: NodeTypePanel, PanelID: n.Panel}
	case *SplitNode:
		return &NodeDocument{
			Type:                NodeTypeSplit,
			Orientation:         n.Orientation.String(),
			Ratio:               n.Ratio,
			PreferredFirstSpan:  n.PreferredFirstSpan,
			PreferredSecondSpan: n.PreferredSecondSpan,
			UserSized:           n.UserSized,
			First:               captureNode(n.First),
			Second:              captureNode(n.Second),
		}
	default:
		return nil
	}
}
