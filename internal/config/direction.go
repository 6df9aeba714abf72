package config

import (
	"fmt"
	"strings"
)

// Direction is the way streams fall across the display.
type Direction int

const (
	Down Direction = iota
	Up
	Left
	Right
)

var directionNames = map[Direction]string{
	Down:  "down",
	Up:    "up",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Vertical reports whether columns map to display columns.
func (d Direction) Vertical() bool { return d == Down || d == Up }

// Reversed reports whether a column is drawn end to start.
func (d Direction) Reversed() bool { return d == Up || d == Left }

// ParseDirection accepts down, up, left or right in any case. An empty
// string is Down.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Down, nil
	}
	for d, name := range directionNames {
		if name == s {
			return d, nil
		}
	}
	return Down, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
