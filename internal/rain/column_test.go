package rain

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Column", func() {
	Describe("construction", func() {
		It("rejects lengths below two", func() {
			for _, n := range []int{-1, 0, 1} {
				col, err := NewColumn(n, &seqSource{}, DefaultCountdowns())
				Expect(col).To(BeNil())
				Expect(errors.Is(err, ErrLineTooShort)).To(BeTrue())

				var lerr *LengthError
				Expect(errors.As(err, &lerr)).To(BeTrue())
				Expect(lerr.Length).To(Equal(n))
			}
		})

		It("rejects non-positive countdown minimums", func() {
			_, err := NewColumn(10, &seqSource{}, Countdowns{EmitMin: 0, FadeMin: 10})
			Expect(err).To(MatchError(ErrCountdownBounds))
		})

		It("starts all blank and fading unless the start chance hits", func() {
			col, err := NewColumn(24, &seqSource{}, DefaultCountdowns())
			Expect(err).NotTo(HaveOccurred())
			Expect(col.Len()).To(Equal(24))
			Expect(col.Phase()).To(Equal(Fading))
			Expect(col.Lit()).To(BeZero())

			col, err = NewColumn(24, &seqSource{chance: true}, DefaultCountdowns())
			Expect(err).NotTo(HaveOccurred())
			Expect(col.Phase()).To(Equal(Emitting))
		})

		It("samples initial countdowns from their ranges", func() {
			src := NewRandomSource(7, CharsetASCII)
			for i := 0; i < 200; i++ {
				col, err := NewColumn(40, src, DefaultCountdowns())
				Expect(err).NotTo(HaveOccurred())
				Expect(col.EmitCountdown()).To(BeNumerically(">=", 5))
				Expect(col.EmitCountdown()).To(BeNumerically("<", 20))
				Expect(col.FadeCountdown()).To(BeNumerically(">=", 10))
				Expect(col.FadeCountdown()).To(BeNumerically("<", 40))
			}
		})

		It("keeps countdowns positive on the shortest column", func() {
			col, err := NewColumn(MinLength, NewRandomSource(1, CharsetBinary), DefaultCountdowns())
			Expect(err).NotTo(HaveOccurred())
			Expect(col.EmitCountdown()).To(BeNumerically(">=", 1))
			Expect(col.FadeCountdown()).To(BeNumerically(">=", 1))
			for i := 0; i < 50; i++ {
				col.Step()
				Expect(col.EmitCountdown()).To(BeNumerically(">=", 0))
				Expect(col.FadeCountdown()).To(BeNumerically(">=", 0))
			}
		})
	})

	Describe("fading pass", func() {
		It("advances a lone head by one cell", func() {
			cells := blanks(10)
			cells[0] = Glyph('a', true)
			col := columnOf(Fading, cells, &seqSource{glyphs: []rune{'b', 'c'}})

			col.Step()

			first, _ := col.Cell(0)
			Expect(first.IsTrail()).To(BeTrue())
			Expect(first.Char).To(Equal('b'))
			second, _ := col.Cell(1)
			Expect(second.IsHead()).To(BeTrue())
			Expect(second.Char).To(Equal('c'))
			for i := 2; i < 10; i++ {
				cell, _ := col.Cell(i)
				Expect(cell.IsBlank()).To(BeTrue(), "cell %d", i)
			}
		})

		It("erases the first trailing glyph of each run", func() {
			cells := []Cell{
				Glyph('a', false), Glyph('b', false), Glyph('c', false),
				Blank(),
				Glyph('d', false), Glyph('e', false),
			}
			col := columnOf(Fading, cells, &seqSource{})

			col.Step()

			Expect(col.Cells()).To(Equal([]Cell{
				Blank(), Glyph('b', false), Glyph('c', false),
				Blank(),
				Blank(), Glyph('e', false),
			}))
		})

		It("retires a head on the last cell without replacement", func() {
			cells := blanks(4)
			cells[3] = Glyph('z', true)
			col := columnOf(Fading, cells, &seqSource{glyphs: []rune{'q'}})

			col.Step()

			Expect(col.Heads()).To(BeZero())
			last, _ := col.Cell(3)
			Expect(last).To(Equal(Glyph('q', false)))
		})

		It("flips to emitting when the countdown expires", func() {
			col := columnOf(Fading, blanks(30), NewRandomSource(3, CharsetASCII))
			col.fadeCountdown = 1

			col.Step()

			Expect(col.Phase()).To(Equal(Emitting))
			Expect(col.EmitCountdown()).To(BeNumerically(">=", 5))
			Expect(col.EmitCountdown()).To(BeNumerically("<", 29))
		})
	})

	Describe("emitting pass", func() {
		It("seeds a head at the first blank of an empty column", func() {
			col := columnOf(Emitting, blanks(5), &seqSource{glyphs: []rune{'k'}})

			col.Step()

			Expect(col.Cells()).To(Equal([]Cell{
				Glyph('k', true), Blank(), Blank(), Blank(), Blank(),
			}))
		})

		It("grows a solid stream behind the head", func() {
			col := columnOf(Emitting, blanks(6), NewRandomSource(11, CharsetASCII))
			for i := 0; i < 4; i++ {
				col.Step()
			}
			for i := 0; i < 3; i++ {
				cell, _ := col.Cell(i)
				Expect(cell.IsTrail()).To(BeTrue(), "cell %d", i)
			}
			head, _ := col.Cell(3)
			Expect(head.IsHead()).To(BeTrue())
		})

		It("erases one glyph right behind an advancing head", func() {
			cells := []Cell{Glyph('a', true), Glyph('b', false), Glyph('c', false), Blank()}
			col := columnOf(Emitting, cells, &seqSource{glyphs: []rune{'x', 'y'}})

			col.Step()

			Expect(col.Cells()).To(Equal([]Cell{
				Glyph('x', false), Glyph('y', true), Blank(), Blank(),
			}))
		})

		It("does not seed a second head while one is live", func() {
			cells := []Cell{Blank(), Glyph('a', false), Glyph('b', true), Blank()}
			col := columnOf(Emitting, cells, &seqSource{})

			col.Step()

			Expect(col.Heads()).To(Equal(1))
			head, _ := col.Cell(3)
			Expect(head.IsHead()).To(BeTrue())
		})

		It("flips to fading when the countdown expires", func() {
			col := columnOf(Emitting, blanks(30), NewRandomSource(5, CharsetASCII))
			col.emitCountdown = 1

			col.Step()

			Expect(col.Phase()).To(Equal(Fading))
			Expect(col.FadeCountdown()).To(BeNumerically(">=", 10))
			Expect(col.FadeCountdown()).To(BeNumerically("<", 29))
		})
	})

	Describe("invariants over many ticks", func() {
		DescribeTable("length is fixed and at most one head survives each tick",
			func(length int, seed int64) {
				src := NewRandomSource(seed, CharsetASCII)
				bounds := DefaultCountdowns()
				bounds.StartChance = 0.5
				col, err := NewColumn(length, src, bounds)
				Expect(err).NotTo(HaveOccurred())

				for tick := 0; tick < 2000; tick++ {
					col.Step()
					Expect(col.Len()).To(Equal(length))
					Expect(col.Heads()).To(BeNumerically("<=", 1), "tick %d", tick)
				}
			},
			Entry("shortest", 2, int64(1)),
			Entry("short", 3, int64(2)),
			Entry("terminal height", 24, int64(3)),
			Entry("wide row", 120, int64(4)),
		)
	})

	Describe("Reverse", func() {
		It("round-trips", func() {
			cells := []Cell{Glyph('a', false), Blank(), Glyph('b', true), Blank(), Glyph('c', false)}
			col := columnOf(Fading, append([]Cell(nil), cells...), &seqSource{})

			col.Reverse()
			Expect(col.Cells()).To(Equal([]Cell{
				Glyph('c', false), Blank(), Glyph('b', true), Blank(), Glyph('a', false),
			}))
			col.Reverse()
			Expect(col.Cells()).To(Equal(cells))
		})
	})

	It("treats out-of-range cell access as a miss", func() {
		col := columnOf(Fading, blanks(3), &seqSource{})
		_, ok := col.Cell(-1)
		Expect(ok).To(BeFalse())
		_, ok = col.Cell(3)
		Expect(ok).To(BeFalse())
	})
})
