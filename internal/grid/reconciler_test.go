package grid

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/rain/internal/config"
	"github.com/san-kum/rain/internal/debug"
	"github.com/san-kum/rain/internal/rain"
)

func newReconciler() *Reconciler {
	return NewReconciler(rain.NewRandomSource(1, rain.CharsetASCII), rain.DefaultCountdowns())
}

func TestReconciler_ResizeMatchesGeometry(t *testing.T) {
	sizes := []struct{ w, h int }{
		{80, 24}, {120, 40}, {30, 10}, {81, 25}, {20, 5},
	}
	dirs := []config.Direction{config.Down, config.Up, config.Left, config.Right}

	r := newReconciler()
	for _, dir := range dirs {
		for _, sz := range sizes {
			if _, err := r.Resize(sz.w, sz.h, dir); err != nil {
				t.Fatalf("Resize(%d, %d, %v): %v", sz.w, sz.h, dir, err)
			}
			g := r.Grid()
			want := GeometryFor(sz.w, sz.h, dir)
			if g.Len() != want.Columns {
				t.Errorf("%v %dx%d: %d columns, want %d", dir, sz.w, sz.h, g.Len(), want.Columns)
			}
			for i := 0; i < g.Len(); i++ {
				if g.Column(i).Len() != want.Length {
					t.Fatalf("%v %dx%d: column %d length %d, want %d",
						dir, sz.w, sz.h, i, g.Column(i).Len(), want.Length)
				}
			}
		}
	}
}

func TestReconciler_NoRebuildWhenUnchanged(t *testing.T) {
	r := newReconciler()
	rebuilt, err := r.Resize(80, 24, config.Up)
	if err != nil || !rebuilt {
		t.Fatalf("first resize: rebuilt=%v err=%v", rebuilt, err)
	}
	live := r.Grid()

	rebuilt, err = r.Reconcile(config.Up)
	if err != nil || rebuilt {
		t.Errorf("same direction: rebuilt=%v err=%v", rebuilt, err)
	}
	if r.Grid() != live {
		t.Error("grid replaced without a geometry change")
	}

	// 81 columns implies the same column count; only the frame widens.
	rebuilt, _ = r.Resize(81, 24, config.Up)
	if rebuilt || r.Grid() != live {
		t.Error("same geometry should adjust in place")
	}
	if w, _ := live.Size(); w != 81 {
		t.Errorf("grid width %d, want 81", w)
	}
	if r.Rebuilds() != 1 {
		t.Errorf("expected 1 rebuild, got %d", r.Rebuilds())
	}
}

func TestReconciler_DirectionChangeRebuilds(t *testing.T) {
	r := newReconciler()
	r.Resize(80, 24, config.Down)
	live := r.Grid()

	rebuilt, err := r.Reconcile(config.Up)
	if err != nil || !rebuilt {
		t.Fatalf("down to up: rebuilt=%v err=%v", rebuilt, err)
	}
	if r.Grid() == live || r.Grid().Direction() != config.Up {
		t.Error("expected a fresh grid falling up")
	}
}

func TestReconciler_ShrinkAndGrow(t *testing.T) {
	r := newReconciler()
	r.Resize(120, 40, config.Down)
	r.Resize(20, 6, config.Down)
	if got := r.Grid().Geometry(); got != (Geometry{Columns: 11, Length: 6}) {
		t.Errorf("after shrink: %+v", got)
	}
	r.Resize(200, 50, config.Down)
	if got := r.Grid().Geometry(); got != (Geometry{Columns: 101, Length: 50}) {
		t.Errorf("after grow: %+v", got)
	}
}

func TestReconciler_RecoversFromDegenerate(t *testing.T) {
	r := newReconciler()
	r.Resize(80, 24, config.Down)

	rebuilt, err := r.Resize(0, 0, config.Down)
	if rebuilt || !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("0x0: rebuilt=%v err=%v", rebuilt, err)
	}
	if r.Grid() != nil {
		t.Error("degenerate display should drop the grid")
	}

	rebuilt, err = r.Resize(40, 10, config.Down)
	if err != nil || !rebuilt || r.Grid() == nil {
		t.Errorf("recovery: rebuilt=%v err=%v", rebuilt, err)
	}
}

func TestReconciler_LogsRebuildTiming(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rain.log")
	if err := debug.Enable(path); err != nil {
		t.Fatalf("enable debug: %v", err)
	}
	t.Cleanup(debug.Close)

	r := newReconciler()
	r.Resize(40, 10, config.Left)
	r.Resize(40, 10, config.Left)
	debug.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "rebuild 40x10 falling left took"); got != 1 {
		t.Errorf("expected one timed rebuild, got %d:\n%s", got, data)
	}
}
