package rain

// Cell is one grid position. The zero value is blank.
type Cell struct {
	Char    rune
	Leading bool
	glyph   bool
}

// Blank returns an empty cell.
func Blank() Cell { return Cell{} }

// Glyph returns a cell holding ch. Leading marks the head of a stream.
func Glyph(ch rune, leading bool) Cell {
	return Cell{Char: ch, Leading: leading, glyph: true}
}

func (c Cell) IsBlank() bool { return !c.glyph }
func (c Cell) IsGlyph() bool { return c.glyph }

// IsHead reports whether the cell is the leading glyph of a stream.
func (c Cell) IsHead() bool { return c.glyph && c.Leading }

// IsTrail reports whether the cell is a non-leading glyph.
func (c Cell) IsTrail() bool { return c.glyph && !c.Leading }
