package grid

import (
	"github.com/san-kum/rain/internal/config"
	"github.com/san-kum/rain/internal/palette"
	"github.com/san-kum/rain/internal/rain"
)

// Compositor maps a grid onto a display frame. The frame buffer is reused
// across ticks while the display size holds.
type Compositor struct {
	picker palette.Picker
	frame  *Frame
}

func NewCompositor(p palette.Picker) *Compositor {
	return &Compositor{picker: p}
}

// Compose renders g with the colors and boldness of anim. A nil grid yields
// an empty frame.
func (c *Compositor) Compose(g *Grid, anim *config.Animation) *Frame {
	if g == nil {
		c.frame = NewFrame(0, 0)
		return c.frame
	}

	w, h := g.Size()
	if c.frame == nil || c.frame.Width != w || c.frame.Height != h {
		c.frame = NewFrame(w, h)
	} else {
		c.frame.Clear()
	}

	dir := g.Direction()
	for i := 0; i < g.Len(); i++ {
		col := g.Column(i)
		if col == nil {
			continue
		}
		if dir.Reversed() {
			col.Reverse()
		}
		c.drawColumn(i, col, dir, anim)
		if dir.Reversed() {
			col.Reverse()
		}
	}
	return c.frame
}

func (c *Compositor) drawColumn(i int, col *rain.Column, dir config.Direction, anim *config.Animation) {
	for j := 0; j < col.Len(); j++ {
		cell, ok := col.Cell(j)
		if !ok || cell.IsBlank() {
			continue
		}
		span := Span{Char: cell.Char, Bold: anim.Bold}
		if cell.Leading {
			span.Color = palette.Highlight
		} else {
			span.Color = palette.Resolve(anim.Color, c.picker)
		}

		if dir.Vertical() {
			c.frame.Set(2*i, j, span)
		} else {
			c.frame.Set(j, i, span)
		}
	}
}
