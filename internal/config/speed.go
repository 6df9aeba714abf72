package config

import "time"

const (
	// DefaultInterval paces the animation when no speed is given.
	DefaultInterval = 60 * time.Millisecond

	// FastestInterval is bound to the 0 key.
	FastestInterval = 5 * time.Millisecond

	MinSpeed = 1
	MaxSpeed = 10
)

var speedTable = map[int]time.Duration{
	1:  120 * time.Millisecond,
	2:  100 * time.Millisecond,
	3:  80 * time.Millisecond,
	4:  60 * time.Millisecond,
	5:  50 * time.Millisecond,
	6:  40 * time.Millisecond,
	7:  30 * time.Millisecond,
	8:  20 * time.Millisecond,
	9:  10 * time.Millisecond,
	10: 5 * time.Millisecond,
}

// SpeedInterval maps a speed level to a tick interval. Levels outside
// MinSpeed..MaxSpeed get DefaultInterval.
func SpeedInterval(level int) time.Duration {
	if d, ok := speedTable[level]; ok {
		return d
	}
	return DefaultInterval
}

// KeyInterval maps a digit key to a tick interval.
func KeyInterval(r rune) (time.Duration, bool) {
	switch {
	case r == '0':
		return FastestInterval, true
	case r >= '1' && r <= '9':
		return speedTable[int(r-'0')], true
	default:
		return 0, false
	}
}
