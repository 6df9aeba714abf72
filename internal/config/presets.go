package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"classic": {
		Color: "green", Direction: "down", Charset: "ascii",
		Countdowns: CountdownConfig{EmitMin: 5, FadeMin: 10, StartChance: 0.02},
	},
	"film": {
		Color: "green", Direction: "down", Charset: "katakana", Bold: true, Speed: 5,
		Countdowns: CountdownConfig{EmitMin: 8, FadeMin: 10, StartChance: 0.05},
	},
	"storm": {
		Color: "rainbow", Direction: "down", Charset: "ascii", Bold: true, Speed: 9,
		Countdowns: CountdownConfig{EmitMin: 3, FadeMin: 5, StartChance: 0.2},
	},
	"drizzle": {
		Color: "cyan", Direction: "down", Charset: "ascii", Speed: 2,
		Countdowns: CountdownConfig{EmitMin: 3, FadeMin: 25, StartChance: 0.01},
	},
	"sideways": {
		Color: "yellow", Direction: "right", Charset: "hex", Speed: 6,
		Countdowns: CountdownConfig{EmitMin: 5, FadeMin: 10, StartChance: 0.02},
	},
	"binary": {
		Color: "blue", Direction: "up", Charset: "binary", Speed: 4,
		Countdowns: CountdownConfig{EmitMin: 5, FadeMin: 10, StartChance: 0.02},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset overlays the named preset's appearance and countdowns on c.
// Fields the preset leaves unset, and the seed, keep their current values.
func (c *Config) ApplyPreset(name string) error {
	p, ok := Presets[name]
	if !ok {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}

	if p.Color != "" {
		c.Color = p.Color
	}
	if p.Speed != 0 {
		c.Speed = p.Speed
	}
	if p.Direction != "" {
		c.Direction = p.Direction
	}
	if p.Charset != "" {
		c.Charset = p.Charset
	}
	if p.Bold {
		c.Bold = true
	}
	if p.Countdowns != (CountdownConfig{}) {
		c.Countdowns = p.Countdowns
	}
	return nil
}
