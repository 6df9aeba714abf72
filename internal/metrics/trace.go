package metrics

import "github.com/san-kum/rain/internal/grid"

// Trace records the lit-cell fraction of every tick, keeping at most
// capacity samples.
type Trace struct {
	capacity int
	values   []float64
}

func NewTrace(capacity int) *Trace {
	return &Trace{capacity: capacity, values: make([]float64, 0, capacity)}
}

func (t *Trace) OnTick(g *grid.Grid, tick int) {
	v := 0.0
	if cells := g.Cells(); cells > 0 {
		v = float64(g.Lit()) / float64(cells)
	}
	t.values = append(t.values, v)
	if t.capacity > 0 && len(t.values) > t.capacity {
		t.values = t.values[1:]
	}
}

// Values returns the recorded samples, oldest first.
func (t *Trace) Values() []float64 {
	out := make([]float64, len(t.values))
	copy(out, t.values)
	return out
}
