package grid

import (
	"github.com/san-kum/rain/internal/config"
	"github.com/san-kum/rain/internal/rain"
)

// Geometry is the column count and column length implied by a display.
type Geometry struct {
	Columns int
	Length  int
}

// GeometryFor returns the layout for a width x height display. Vertical
// directions populate every other display column; horizontal directions one
// column per row, leaving the last row free.
func GeometryFor(width, height int, dir config.Direction) Geometry {
	if dir.Vertical() {
		return Geometry{Columns: width/2 + 1, Length: height}
	}
	return Geometry{Columns: height - 1, Length: width}
}

func (g Geometry) Valid() bool {
	return g.Columns > 0 && g.Length >= rain.MinLength
}

type Grid struct {
	width, height int
	dir           config.Direction
	geom          Geometry
	columns       []*rain.Column
}

// New builds a grid of freshly randomized columns.
func New(width, height int, dir config.Direction, src rain.Source, bounds rain.Countdowns) (*Grid, error) {
	geom := GeometryFor(width, height, dir)
	if width <= 0 || height <= 0 || !geom.Valid() {
		return nil, &GeometryError{Width: width, Height: height, Direction: dir}
	}

	columns := make([]*rain.Column, 0, geom.Columns)
	for i := 0; i < geom.Columns; i++ {
		col, err := rain.NewColumn(geom.Length, src, bounds)
		if err != nil {
			return nil, &GeometryError{Width: width, Height: height, Direction: dir, Wrapped: err}
		}
		columns = append(columns, col)
	}

	return &Grid{
		width:   width,
		height:  height,
		dir:     dir,
		geom:    geom,
		columns: columns,
	}, nil
}

// Advance steps every column once, in grid order.
func (g *Grid) Advance() {
	for _, col := range g.columns {
		col.Step()
	}
}

// Column returns column i, or nil when i is out of range.
func (g *Grid) Column(i int) *rain.Column {
	if i < 0 || i >= len(g.columns) {
		return nil
	}
	return g.columns[i]
}

func (g *Grid) Len() int                    { return len(g.columns) }
func (g *Grid) Geometry() Geometry          { return g.geom }
func (g *Grid) Direction() config.Direction { return g.dir }
func (g *Grid) Size() (width, height int)   { return g.width, g.height }

// resize adopts new display dimensions that imply the same geometry.
func (g *Grid) resize(width, height int) {
	g.width, g.height = width, height
}

// Lit counts glyph cells across all columns.
func (g *Grid) Lit() int {
	n := 0
	for _, col := range g.columns {
		n += col.Lit()
	}
	return n
}

// Cells is the total number of cells the grid holds.
func (g *Grid) Cells() int {
	return g.geom.Columns * g.geom.Length
}
