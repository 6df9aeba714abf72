// Package export writes composed frames and metric series as standalone SVG.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/rain/internal/grid"
	"github.com/san-kum/rain/internal/palette"
)

const background = "#0a0a0a"

var hex = map[palette.Color]string{
	palette.Blue:      "#3b6ff5",
	palette.Cyan:      "#2ec4c4",
	palette.Red:       "#e04040",
	palette.Purple:    "#b04fd6",
	palette.Yellow:    "#e0c030",
	palette.Green:     "#00ff00",
	palette.Highlight: "#ffffff",
}

// Hex returns the SVG fill for c. Unknown colors use the default palette entry.
func Hex(c palette.Color) string {
	if h, ok := hex[c]; ok {
		return h
	}
	return hex[palette.Default]
}

// FrameToSVG draws every non-blank span of f as monospace text. scale is the
// cell height in pixels; cells are half as wide as they are tall.
func FrameToSVG(f *grid.Frame, scale float64) string {
	if f == nil || scale <= 0 {
		return ""
	}

	cellW := scale * 0.6
	width := float64(f.Width) * cellW
	height := float64(f.Height) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g font-family="monospace" font-size="%.1f">
`, width, height, width, height, background, scale))

	for y := 0; y < f.Height; y++ {
		for x, s := range f.Row(y) {
			if s.Blank {
				continue
			}
			weight := ""
			if s.Bold {
				weight = ` font-weight="bold"`
			}
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s"%s>%s</text>
`, float64(x)*cellW, float64(y+1)*scale-scale*0.2, Hex(s.Color), weight, html.EscapeString(string(s.Char))))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesToSVG draws values as a polyline scaled to fill width x height.
func SeriesToSVG(values []float64, width, height int, stroke string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	// Add padding
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	stepX := float64(width) / float64(len(values)-1)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, stroke))

	for i, v := range values {
		x := float64(i) * stepX
		y := float64(height) - (v-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
