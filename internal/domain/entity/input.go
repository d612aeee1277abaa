package entity

// Key names a keyboard key in an input snapshot.
type Key string

const (
	KeyEscape Key = "esc"
)

// InputSnapshot is the pointer and keyboard state sampled once per tick.
// Pressed and Released are edges: true only on the tick the button changed.
type InputSnapshot struct {
	Pointer  Point
	Pressed  bool
	Held     bool
	Released bool

	// Keys pressed this tick.
	Keys []Key
}

// KeyPressed reports whether k was pressed this tick.
func (in InputSnapshot) KeyPressed(k Key) bool {
	for _, key := range in.Keys {
		if key == k {
			return true
		}
	}
	return false
}
