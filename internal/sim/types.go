package sim

import (
	"time"

	"github.com/san-kum/rain/internal/config"
	"github.com/san-kum/rain/internal/grid"
)

type Metric interface {
	Name() string
	Observe(g *grid.Grid, tick int)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(g *grid.Grid, tick int)
}

type Config struct {
	Width     int
	Height    int
	Ticks     int
	Direction config.Direction
	Seed      int64
}

func DefaultConfig() Config {
	return Config{
		Width:     80,
		Height:    24,
		Ticks:     1000,
		Direction: config.Down,
		Seed:      1,
	}
}

type Result struct {
	Seed     int64
	Ticks    int
	Rebuilds int
	Elapsed  time.Duration
	Metrics  map[string]float64
}

// TickRate is ticks per second of wall time spent advancing the grid.
func (r *Result) TickRate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ticks) / r.Elapsed.Seconds()
}
