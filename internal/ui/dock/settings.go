// Package dock hosts the interactive dock engine: it owns the dock state,
// turns one input snapshot per tick into structural edits and resizes, and
// dispatches drawing to per-kind content renderers.
package dock

// Settings holds the chrome metrics and interaction thresholds, in the
// host's units (pixels for a window, cells for a terminal).
type Settings struct {
	HeaderHeight        int
	TabMaxWidth         int
	ButtonSize          int
	EdgeThickness       int
	SnapDistance        int
	DragThreshold       int
	QuadrantStrip       float64
	MaxPropagationDepth int
}

// DefaultSettings returns pixel-based defaults.
func DefaultSettings() Settings {
	return Settings{
		HeaderHeight:        20,
		TabMaxWidth:         140,
		ButtonSize:          14,
		EdgeThickness:       6,
		SnapDistance:        24,
		DragThreshold:       4,
		QuadrantStrip:       0.25,
		MaxPropagationDepth: 8,
	}
}

// normalized replaces out-of-range values with defaults.
func (s Settings) normalized() Settings {
	def := DefaultSettings()
	if s.HeaderHeight < 0 {
		s.HeaderHeight = def.HeaderHeight
	}
	if s.TabMaxWidth <= 0 {
		s.TabMaxWidth = def.TabMaxWidth
	}
	if s.ButtonSize < 0 {
		s.ButtonSize = def.ButtonSize
	}
	if s.EdgeThickness <= 0 {
		s.EdgeThickness = def.EdgeThickness
	}
	if s.SnapDistance < 0 {
		s.SnapDistance = def.SnapDistance
	}
	if s.DragThreshold < 0 {
		s.DragThreshold = def.DragThreshold
	}
	if s.QuadrantStrip <= 0 || s.QuadrantStrip > 0.5 {
		s.QuadrantStrip = def.QuadrantStrip
	}
	if s.MaxPropagationDepth <= 0 {
		s.MaxPropagationDepth = def.MaxPropagationDepth
	}
	return s
}
