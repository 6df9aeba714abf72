package grid

import (
	"github.com/san-kum/rain/internal/config"
	"github.com/san-kum/rain/internal/debug"
	"github.com/san-kum/rain/internal/rain"
)

// Reconciler owns the live grid and keeps it in step with the display.
type Reconciler struct {
	src           rain.Source
	bounds        rain.Countdowns
	grid          *Grid
	width, height int
	rebuilds      int
}

func NewReconciler(src rain.Source, bounds rain.Countdowns) *Reconciler {
	return &Reconciler{src: src, bounds: bounds}
}

// Resize records new display dimensions and reconciles immediately.
func (r *Reconciler) Resize(width, height int, dir config.Direction) (bool, error) {
	r.width, r.height = width, height
	return r.Reconcile(dir)
}

// Reconcile rebuilds the grid when the geometry or direction implied by the
// recorded display differs from the live grid. It reports whether a rebuild
// happened. On a degenerate display the grid is dropped and the next call
// tries again.
func (r *Reconciler) Reconcile(dir config.Direction) (bool, error) {
	want := GeometryFor(r.width, r.height, dir)
	if r.grid != nil && r.grid.Direction() == dir && r.grid.Geometry() == want {
		r.grid.resize(r.width, r.height)
		return false, nil
	}
	defer debug.Timed("rebuild %dx%d falling %s", r.width, r.height, dir)()

	g, err := New(r.width, r.height, dir, r.src, r.bounds)
	if err != nil {
		r.grid = nil
		return false, err
	}
	r.grid = g
	r.rebuilds++
	return true, nil
}

// Grid returns the live grid, or nil before the first valid geometry.
func (r *Reconciler) Grid() *Grid { return r.grid }

func (r *Reconciler) Rebuilds() int { return r.rebuilds }

func (r *Reconciler) Size() (width, height int) { return r.width, r.height }
