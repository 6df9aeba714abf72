package config

import (
	"time"

	"github.com/san-kum/rain/internal/palette"
)

// Animation is the shared runtime configuration. Input handling mutates it
// between ticks; the compositor reads it every tick.
type Animation struct {
	Color     palette.Color
	Interval  time.Duration
	Direction Direction
	Bold      bool
}

// CycleColor switches to a different palette choice.
func (a *Animation) CycleColor(p palette.Picker) palette.Color {
	a.Color = palette.Next(a.Color, p)
	return a.Color
}

// SetSpeedKey applies a digit key. It reports false for non-digits.
func (a *Animation) SetSpeedKey(r rune) bool {
	d, ok := KeyInterval(r)
	if !ok {
		return false
	}
	a.Interval = d
	return true
}

func (a *Animation) ToggleBold() bool {
	a.Bold = !a.Bold
	return a.Bold
}

// SetDirection reports whether d differs from the current direction. Callers
// rebuild the grid only when it does.
func (a *Animation) SetDirection(d Direction) bool {
	if a.Direction == d {
		return false
	}
	a.Direction = d
	return true
}
