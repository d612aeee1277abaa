// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"strings"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// Canvas is a grid of styled terminal cells. Every rune occupies one cell.
type Canvas struct {
	w, h   int
	runes  []rune
	styles []styles.CellStyle
}

// NewCanvas creates a blank canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates and clears the canvas.
func (c *Canvas) Resize(w, h int) {
	c.w, c.h = max(w, 0), max(h, 0)
	c.runes = make([]rune, c.w*c.h)
	c.styles = make([]styles.CellStyle, c.w*c.h)
	c.Clear()
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() entity.Rect { return entity.Rect{W: c.w, H: c.h} }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.runes {
		c.runes[i] = ' '
		c.styles[i] = styles.CellDefault
	}
}

func (c *Canvas) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0, false
	}
	return y*c.w + x, true
}

// Set writes one cell. Out-of-range writes are dropped.
func (c *Canvas) Set(x, y int, r rune, s styles.CellStyle) {
	if i, ok := c.index(x, y); ok {
		c.runes[i] = r
		c.styles[i] = s
	}
}

// At returns the rune and style of a cell.
func (c *Canvas) At(x, y int) (rune, styles.CellStyle) {
	i, ok := c.index(x, y)
	if !ok {
		return ' ', styles.CellDefault
	}
	return c.runes[i], c.styles[i]
}

// Fill paints a rectangle.
func (c *Canvas) Fill(r entity.Rect, ch rune, s styles.CellStyle) {
	r = r.Intersect(c.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.Set(x, y, ch, s)
		}
	}
}

// Restyle changes the style of a rectangle, keeping its runes.
func (c *Canvas) Restyle(r entity.Rect, s styles.CellStyle) {
	r = r.Intersect(c.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			i, _ := c.index(x, y)
			c.styles[i] = s
		}
	}
}

// Text writes text starting at (x, y), clipped to clip.
func (c *Canvas) Text(clip entity.Rect, x, y int, text string, s styles.CellStyle) {
	if y < clip.Y || y >= clip.Bottom() {
		return
	}
	for _, r := range text {
		if x >= clip.Right() {
			return
		}
		if x >= clip.X {
			c.Set(x, y, r, s)
		}
		x++
	}
}

// Row returns the runes of one row as plain text.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.h {
		return ""
	}
	return string(c.runes[y*c.w : (y+1)*c.w])
}

// Render converts the canvas to styled lines, one lipgloss call per run
// of equally styled cells.
func (c *Canvas) Render(theme *styles.Theme) string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := y * c.w
		end := start + c.w
		for i := start; i < end; {
			j := i
			for j < end && c.styles[j] == c.styles[i] {
				j++
			}
			b.WriteString(theme.Cell(c.styles[i]).Render(string(c.runes[i:j])))
			i = j
		}
	}
	return b.String()
}
