package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/rain/internal/grid"
	"github.com/san-kum/rain/internal/palette"
)

func TestRender(t *testing.T) {
	f := grid.NewFrame(5, 2)
	f.Set(0, 0, grid.Span{Char: 'a', Color: palette.Green})
	f.Set(1, 0, grid.Span{Char: 'b', Color: palette.Green})
	f.Set(3, 1, grid.Span{Char: 'Z', Color: palette.Highlight, Bold: true})

	out := NewRenderer().Render(f)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") {
		t.Errorf("row 0 = %q, want the run \"ab\"", lines[0])
	}
	if !strings.Contains(lines[1], "Z") {
		t.Errorf("row 1 = %q, want Z", lines[1])
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := NewRenderer().Render(nil); got != "" {
		t.Errorf("nil frame rendered %q", got)
	}
	if got := NewRenderer().Render(grid.NewFrame(0, 0)); got != "" {
		t.Errorf("empty frame rendered %q", got)
	}
}

func TestSameStyle(t *testing.T) {
	blank := grid.Span{Char: ' ', Blank: true}
	green := grid.Span{Char: 'a', Color: palette.Green}
	if !sameStyle(blank, blank) {
		t.Error("blanks share a style")
	}
	if sameStyle(blank, green) {
		t.Error("blank and glyph differ")
	}
	if sameStyle(green, grid.Span{Char: 'b', Color: palette.Green, Bold: true}) {
		t.Error("bold differs")
	}
}
