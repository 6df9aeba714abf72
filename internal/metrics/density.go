package metrics

import (
	"github.com/san-kum/rain/internal/grid"
	"github.com/san-kum/rain/internal/rain"
)

// Density is the mean fraction of lit cells per tick.
type Density struct {
	name    string
	samples int
	total   float64
}

func NewDensity() *Density {
	return &Density{name: "density"}
}

func (d *Density) Name() string { return d.name }

func (d *Density) Observe(g *grid.Grid, tick int) {
	cells := g.Cells()
	if cells == 0 {
		return
	}
	d.total += float64(g.Lit()) / float64(cells)
	d.samples++
}

func (d *Density) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.total / float64(d.samples)
}

func (d *Density) Reset() {
	d.total = 0
	d.samples = 0
}

// Heads is the mean number of live stream heads per tick.
type Heads struct {
	name    string
	samples int
	total   int
}

func NewHeads() *Heads {
	return &Heads{name: "heads"}
}

func (h *Heads) Name() string { return h.name }

func (h *Heads) Observe(g *grid.Grid, tick int) {
	for i := 0; i < g.Len(); i++ {
		h.total += g.Column(i).Heads()
	}
	h.samples++
}

func (h *Heads) Value() float64 {
	if h.samples == 0 {
		return 0
	}
	return float64(h.total) / float64(h.samples)
}

func (h *Heads) Reset() {
	h.total = 0
	h.samples = 0
}

// Emitting is the mean fraction of columns in the emitting phase.
type Emitting struct {
	name    string
	samples int
	total   float64
}

func NewEmitting() *Emitting {
	return &Emitting{name: "emitting"}
}

func (e *Emitting) Name() string { return e.name }

func (e *Emitting) Observe(g *grid.Grid, tick int) {
	if g.Len() == 0 {
		return
	}
	n := 0
	for i := 0; i < g.Len(); i++ {
		if g.Column(i).Phase() == rain.Emitting {
			n++
		}
	}
	e.total += float64(n) / float64(g.Len())
	e.samples++
}

func (e *Emitting) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Emitting) Reset() {
	e.total = 0
	e.samples = 0
}
