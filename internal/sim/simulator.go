package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/rain/internal/config"
	"github.com/san-kum/rain/internal/grid"
	"github.com/san-kum/rain/internal/rain"
)

// Simulator drives the tick loop: reconcile geometry, then advance every
// column once. It is shared by the live view and headless runs.
type Simulator struct {
	rec       *grid.Reconciler
	metrics   []Metric
	observers []Observer
	ticks     int
}

func New(rec *grid.Reconciler) *Simulator {
	return &Simulator{
		rec:       rec,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

// NewSeeded builds a simulator over a fresh seeded source.
func NewSeeded(seed int64, charset []rune, bounds rain.Countdowns) *Simulator {
	src := rain.NewRandomSource(seed, charset)
	return New(grid.NewReconciler(src, bounds))
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Resize forwards an explicit resize notification to the reconciler.
func (s *Simulator) Resize(width, height int, dir config.Direction) (bool, error) {
	return s.rec.Resize(width, height, dir)
}

// Reconcile checks the live grid against dir without advancing it.
func (s *Simulator) Reconcile(dir config.Direction) (bool, error) {
	return s.rec.Reconcile(dir)
}

// Tick performs one animation step. On a degenerate display it returns the
// geometry error and leaves the grid untouched until a valid size arrives.
func (s *Simulator) Tick(dir config.Direction) (*grid.Grid, error) {
	if _, err := s.rec.Reconcile(dir); err != nil {
		return nil, err
	}
	g := s.rec.Grid()
	g.Advance()
	s.ticks++

	for _, m := range s.metrics {
		m.Observe(g, s.ticks)
	}
	for _, obs := range s.observers {
		obs.OnTick(g, s.ticks)
	}
	return g, nil
}

func (s *Simulator) Grid() *grid.Grid { return s.rec.Grid() }
func (s *Simulator) Ticks() int       { return s.ticks }
func (s *Simulator) Rebuilds() int    { return s.rec.Rebuilds() }

// Run advances a headless grid for cfg.Ticks ticks.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	if _, err := s.rec.Resize(cfg.Width, cfg.Height, cfg.Direction); err != nil {
		return nil, err
	}

	result := &Result{
		Seed:    cfg.Seed,
		Metrics: make(map[string]float64),
	}
	start := time.Now()
	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			result.Elapsed = time.Since(start)
			return result, ctx.Err()
		default:
		}

		if _, err := s.Tick(cfg.Direction); err != nil {
			return result, err
		}
		result.Ticks++
	}
	result.Elapsed = time.Since(start)
	result.Rebuilds = s.rec.Rebuilds()

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", cfg.Ticks)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("display must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	return nil
}
