package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/rain/internal/palette"
	"github.com/san-kum/rain/internal/rain"
	"gopkg.in/yaml.v3"
)

const (
	DefaultColor       = "green"
	DefaultDirection   = "down"
	DefaultCharset     = "ascii"
	DefaultEmitMin     = 5
	DefaultFadeMin     = 10
	DefaultStartChance = 0.02
)

type Config struct {
	Color      string          `yaml:"color"`
	Speed      int             `yaml:"speed"`
	Direction  string          `yaml:"direction"`
	Bold       bool            `yaml:"bold"`
	Charset    string          `yaml:"charset"`
	Seed       int64           `yaml:"seed"`
	Countdowns CountdownConfig `yaml:"countdowns"`
}

type CountdownConfig struct {
	EmitMin     int     `yaml:"emit_min"`
	FadeMin     int     `yaml:"fade_min"`
	StartChance float64 `yaml:"start_chance"`
}

func DefaultConfig() *Config {
	return &Config{
		Color:     DefaultColor,
		Direction: DefaultDirection,
		Charset:   DefaultCharset,
		Countdowns: CountdownConfig{
			EmitMin:     DefaultEmitMin,
			FadeMin:     DefaultFadeMin,
			StartChance: DefaultStartChance,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field. A zero speed means the default interval.
func (c *Config) Validate() error {
	if c.Color != "" && !palette.Color(strings.ToLower(strings.TrimSpace(c.Color))).Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownColor, c.Color)
	}
	if c.Speed != 0 && (c.Speed < MinSpeed || c.Speed > MaxSpeed) {
		return fmt.Errorf("%w: got %d", ErrSpeedRange, c.Speed)
	}
	if _, err := ParseDirection(c.Direction); err != nil {
		return err
	}
	if _, err := c.Glyphs(); err != nil {
		return err
	}
	cd := c.Countdowns
	if cd.EmitMin <= 0 || cd.FadeMin <= 0 || cd.StartChance < 0 || cd.StartChance > 1 {
		return fmt.Errorf("%w: emit_min=%d fade_min=%d start_chance=%.3f",
			ErrCountdownRange, cd.EmitMin, cd.FadeMin, cd.StartChance)
	}
	return nil
}

// Glyphs resolves the configured charset.
func (c *Config) Glyphs() ([]rune, error) {
	if c.Charset == "" {
		return rain.CharsetASCII, nil
	}
	return rain.ResolveCharset(c.Charset)
}

// Bounds returns the countdown bounds for new columns.
func (c *Config) Bounds() rain.Countdowns {
	return rain.Countdowns{
		EmitMin:     c.Countdowns.EmitMin,
		FadeMin:     c.Countdowns.FadeMin,
		StartChance: c.Countdowns.StartChance,
	}
}

// Animation builds the runtime settings the tick loop mutates.
func (c *Config) Animation() *Animation {
	dir, err := ParseDirection(c.Direction)
	if err != nil {
		dir = Down
	}
	return &Animation{
		Color:     palette.Parse(c.Color),
		Interval:  SpeedInterval(c.Speed),
		Direction: dir,
		Bold:      c.Bold,
	}
}
