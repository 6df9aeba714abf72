package grid

import "github.com/san-kum/rain/internal/palette"

// Span is one styled display position.
type Span struct {
	Char  rune
	Color palette.Color
	Bold  bool
	Blank bool
}

var blankSpan = Span{Char: ' ', Blank: true}

// Frame holds Width x Height spans in row-major order.
type Frame struct {
	Width, Height int
	Spans         []Span
}

func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	f := &Frame{
		Width:  width,
		Height: height,
		Spans:  make([]Span, width*height),
	}
	f.Clear()
	return f
}

func (f *Frame) Clear() {
	for i := range f.Spans {
		f.Spans[i] = blankSpan
	}
}

// Set writes s at (x, y). Positions outside the frame are ignored.
func (f *Frame) Set(x, y int, s Span) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Spans[y*f.Width+x] = s
}

// At returns the span at (x, y).
func (f *Frame) At(x, y int) (Span, bool) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Span{}, false
	}
	return f.Spans[y*f.Width+x], true
}

// Row returns row y, or nil when out of range.
func (f *Frame) Row(y int) []Span {
	if y < 0 || y >= f.Height {
		return nil
	}
	return f.Spans[y*f.Width : (y+1)*f.Width]
}
