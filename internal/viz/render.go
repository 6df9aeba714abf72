package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/rain/internal/grid"
	"github.com/san-kum/rain/internal/palette"
)

type styleKey struct {
	color palette.Color
	bold  bool
}

// Renderer turns frames into styled text, caching one lipgloss style per
// color and weight.
type Renderer struct {
	styles map[styleKey]lipgloss.Style
}

func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[styleKey]lipgloss.Style)}
}

func (r *Renderer) style(k styleKey) lipgloss.Style {
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(palette.Terminal(k.color)).Bold(k.bold)
	r.styles[k] = s
	return s
}

// Render returns one line per frame row. Runs of equally styled spans are
// rendered together.
func (r *Renderer) Render(f *grid.Frame) string {
	if f == nil || f.Width == 0 || f.Height == 0 {
		return ""
	}

	var b strings.Builder
	run := make([]rune, 0, f.Width)
	for y := 0; y < f.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := f.Row(y)
		for x := 0; x < len(row); {
			span := row[x]
			end := x + 1
			for end < len(row) && sameStyle(row[end], span) {
				end++
			}
			if span.Blank {
				b.WriteString(strings.Repeat(" ", end-x))
			} else {
				run = run[:0]
				for _, s := range row[x:end] {
					run = append(run, s.Char)
				}
				b.WriteString(r.style(styleKey{span.Color, span.Bold}).Render(string(run)))
			}
			x = end
		}
	}
	return b.String()
}

func sameStyle(a, b grid.Span) bool {
	if a.Blank || b.Blank {
		return a.Blank == b.Blank
	}
	return a.Color == b.Color && a.Bold == b.Bold
}
