package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconDatabase = "\uf1c0" // database
	IconConfig   = "\ue615" // config
	IconLock     = "\uf023" // lock
	IconPane     = "\uf0db" // columns
	IconTree     = "\uf1bb" // tree
	IconStar     = "\uf005" // star
)

// Plain glyphs drawn inside the dock; each is one cell wide.
const (
	GlyphClose      = "x"
	GlyphLock       = "L"
	GlyphUnlock     = "l"
	GlyphUngroup    = "^"
	GlyphPanelLock  = "#"
	GlyphPanelOpen  = "="
	GlyphVDivider   = "│"
	GlyphHDivider   = "─"
	GlyphInsertLine = "┃"
)
