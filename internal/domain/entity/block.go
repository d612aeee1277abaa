package entity

// BlockID uniquely identifies a block.
type BlockID string

// BlockKind is an opaque tag selecting the content renderer of a block.
type BlockKind string

// Block is a named, typed, rectangular content unit.
// Bounds is owned by the arranger; Visible and Locked by the controller.
type Block struct {
	ID        BlockID
	Title     string
	Kind      BlockKind
	Visible   bool
	Locked    bool
	Bounds    Rect
	MinWidth  int
	MinHeight int

	// PanelID is the id of the group currently holding the block (empty if none).
	PanelID PanelID
}

// NewBlock creates a hidden, ungrouped block.
func NewBlock(id BlockID, kind BlockKind, title string) *Block {
	return &Block{
		ID:    id,
		Kind:  kind,
		Title: title,
	}
}

// DisplayTitle returns the title, falling back to the id.
func (b *Block) DisplayTitle() string {
	if b.Title != "" {
		return b.Title
	}
	return string(b.ID)
}
