package rain

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRain(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Rain Suite")
}

// seqSource replays fixed glyphs and integers so transitions can be checked
// exactly. Between falls back to lo once ints run out.
type seqSource struct {
	glyphs []rune
	gi     int
	ints   []int
	ii     int
	chance bool
}

func (s *seqSource) Glyph() rune {
	if len(s.glyphs) == 0 {
		return 'x'
	}
	g := s.glyphs[s.gi%len(s.glyphs)]
	s.gi++
	return g
}

func (s *seqSource) Between(lo, hi int) int {
	if s.ii < len(s.ints) {
		v := s.ints[s.ii]
		s.ii++
		return v
	}
	return lo
}

func (s *seqSource) Chance(p float64) bool { return s.chance }

func columnOf(phase Phase, cells []Cell, src Source) *Column {
	return &Column{
		phase:         phase,
		cells:         cells,
		emitCountdown: 100,
		fadeCountdown: 100,
		src:           src,
		bounds:        DefaultCountdowns(),
	}
}

func blanks(n int) []Cell { return make([]Cell, n) }
