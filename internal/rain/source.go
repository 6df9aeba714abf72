package rain

import (
	"math/rand"
	"sync"
)

// Source is the random capability the engine samples from.
type Source interface {
	// Glyph returns a uniformly chosen printable character.
	Glyph() rune
	// Between returns a uniform integer in [lo, hi). hi must exceed lo.
	Between(lo, hi int) int
	// Chance reports true with probability p.
	Chance(p float64) bool
}

// RandomSource samples from a seeded math/rand generator.
type RandomSource struct {
	mu      sync.Mutex
	rng     *rand.Rand
	charset []rune
}

// NewRandomSource returns a source over charset. An empty charset falls back
// to CharsetASCII.
func NewRandomSource(seed int64, charset []rune) *RandomSource {
	if len(charset) == 0 {
		charset = CharsetASCII
	}
	cs := make([]rune, len(charset))
	copy(cs, charset)
	return &RandomSource{
		rng:     rand.New(rand.NewSource(seed)),
		charset: cs,
	}
}

func (s *RandomSource) Glyph() rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.charset[s.rng.Intn(len(s.charset))]
}

func (s *RandomSource) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.Intn(hi-lo)
}

func (s *RandomSource) Chance(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < p
}

// Charset returns a copy of the glyphs the source samples from.
func (s *RandomSource) Charset() []rune {
	c := make([]rune, len(s.charset))
	copy(c, s.charset)
	return c
}
