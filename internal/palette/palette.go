// Package palette maps color names to terminal colors for the rain glyphs.
package palette

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is a palette entry name.
type Color string

const (
	Blue    Color = "blue"
	Cyan    Color = "cyan"
	Red     Color = "red"
	Purple  Color = "purple"
	Yellow  Color = "yellow"
	Green   Color = "green"
	Rainbow Color = "rainbow"

	// Highlight is reserved for leading glyphs.
	Highlight Color = "white"
)

// Default is used when no color or an unknown one is requested.
const Default = Green

var (
	// Colors is the non-highlight palette rainbow mode samples from.
	Colors = []Color{Blue, Cyan, Red, Purple, Yellow, Green}

	// Choices is every selectable color, in cycling order.
	Choices = []Color{Blue, Cyan, Red, Purple, Yellow, Green, Rainbow}

	terminal = map[Color]lipgloss.Color{
		Blue:      lipgloss.Color("4"),
		Cyan:      lipgloss.Color("6"),
		Red:       lipgloss.Color("1"),
		Purple:    lipgloss.Color("5"),
		Yellow:    lipgloss.Color("3"),
		Green:     lipgloss.Color("2"),
		Highlight: lipgloss.Color("15"),
	}
)

// Picker chooses a uniform integer in [lo, hi).
type Picker interface {
	Between(lo, hi int) int
}

// Parse returns the palette entry for name, ignoring case. Unknown names
// resolve to Default.
func Parse(name string) Color {
	c := Color(strings.ToLower(strings.TrimSpace(name)))
	if c.Valid() {
		return c
	}
	return Default
}

// Valid reports whether c is a selectable color.
func (c Color) Valid() bool {
	for _, choice := range Choices {
		if c == choice {
			return true
		}
	}
	return false
}

func (c Color) String() string { return string(c) }

// Resolve returns the concrete color for a trailing glyph. Rainbow samples a
// fresh entry from Colors on every call.
func Resolve(c Color, p Picker) Color {
	if c != Rainbow {
		return c
	}
	return Colors[p.Between(0, len(Colors))]
}

// Next picks uniformly among all choices except current.
func Next(current Color, p Picker) Color {
	others := make([]Color, 0, len(Choices))
	for _, c := range Choices {
		if c != current {
			others = append(others, c)
		}
	}
	return others[p.Between(0, len(others))]
}

// Terminal returns the lipgloss color for a concrete palette entry. Rainbow
// and unknown entries fall back to Default.
func Terminal(c Color) lipgloss.Color {
	if tc, ok := terminal[c]; ok {
		return tc
	}
	return terminal[Default]
}
