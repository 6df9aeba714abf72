package rain

import "fmt"

// MinLength is the shortest column the engine accepts. Countdown sampling
// subtracts one from the length, so shorter columns have no valid range.
const MinLength = 2

// Phase is the behavior mode of a column.
type Phase int

const (
	// Fading lets the head finish its descent while trailing glyphs are erased.
	Fading Phase = iota
	// Emitting pushes a head forward, seeding new glyphs into blank space.
	Emitting
)

func (p Phase) String() string {
	switch p {
	case Emitting:
		return "emitting"
	case Fading:
		return "fading"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Countdowns bounds the countdown sampling of a column.
type Countdowns struct {
	EmitMin     int
	FadeMin     int
	StartChance float64 // probability a new column starts Emitting
}

// DefaultCountdowns returns the bounds used by the live view.
func DefaultCountdowns() Countdowns {
	return Countdowns{
		EmitMin:     5,
		FadeMin:     10,
		StartChance: 0.02,
	}
}

func (cd Countdowns) validate() error {
	if cd.EmitMin <= 0 || cd.FadeMin <= 0 {
		return fmt.Errorf("%w: emit=%d fade=%d", ErrCountdownBounds, cd.EmitMin, cd.FadeMin)
	}
	return nil
}

// Column is one line of the grid with its own stream state machine.
type Column struct {
	phase         Phase
	cells         []Cell
	emitCountdown int
	fadeCountdown int
	src           Source
	bounds        Countdowns
}

// NewColumn returns an all-blank column of the given length with a randomly
// chosen starting phase.
func NewColumn(length int, src Source, bounds Countdowns) (*Column, error) {
	if length < MinLength {
		return nil, &LengthError{Length: length}
	}
	if err := bounds.validate(); err != nil {
		return nil, err
	}

	c := &Column{
		phase:  Fading,
		cells:  make([]Cell, length),
		src:    src,
		bounds: bounds,
	}
	if src.Chance(bounds.StartChance) {
		c.phase = Emitting
	}
	c.emitCountdown = c.sample(bounds.EmitMin, length/2)
	c.fadeCountdown = c.sample(bounds.FadeMin, length)
	return c, nil
}

// sample draws a countdown from [lo, hi). An empty range yields hi, clamped
// to at least one tick.
func (c *Column) sample(lo, hi int) int {
	if hi <= lo {
		return max(hi, 1)
	}
	return c.src.Between(lo, hi)
}

func (c *Column) Phase() Phase       { return c.phase }
func (c *Column) Len() int           { return len(c.cells) }
func (c *Column) EmitCountdown() int { return c.emitCountdown }
func (c *Column) FadeCountdown() int { return c.fadeCountdown }

// Cell returns the cell at i. ok is false when i is out of range.
func (c *Column) Cell(i int) (cell Cell, ok bool) {
	if i < 0 || i >= len(c.cells) {
		return Cell{}, false
	}
	return c.cells[i], true
}

// Cells returns a copy of the column in storage order.
func (c *Column) Cells() []Cell {
	out := make([]Cell, len(c.cells))
	copy(out, c.cells)
	return out
}

// Heads counts leading glyphs.
func (c *Column) Heads() int {
	n := 0
	for _, cell := range c.cells {
		if cell.IsHead() {
			n++
		}
	}
	return n
}

// Lit counts glyph cells.
func (c *Column) Lit() int {
	n := 0
	for _, cell := range c.cells {
		if cell.IsGlyph() {
			n++
		}
	}
	return n
}

// Reverse flips the storage order in place. Applying it twice restores the
// original order.
func (c *Column) Reverse() {
	for i, j := 0, len(c.cells)-1; i < j; i, j = i+1, j-1 {
		c.cells[i], c.cells[j] = c.cells[j], c.cells[i]
	}
}

// Step advances the column by one tick.
func (c *Column) Step() {
	if c.phase == Emitting {
		c.emit()
		return
	}
	c.fade()
}

func (c *Column) fade() {
	worked := false
	for i := 0; i < len(c.cells); i++ {
		cell := c.cells[i]
		switch {
		case cell.IsBlank():
			worked = false
		case cell.Leading:
			i = c.advance(i)
			worked = true
		case !worked:
			c.cells[i] = Blank()
			worked = true
		}
	}

	c.fadeCountdown--
	if c.fadeCountdown <= 0 {
		c.phase = Emitting
		c.emitCountdown = c.sample(c.bounds.EmitMin, len(c.cells)-1)
	}
}

func (c *Column) emit() {
	worked := false
	// A column carries at most one head; seeding waits until the live one
	// has run off the end.
	headed := c.Heads() > 0
	for i := 0; i < len(c.cells); i++ {
		cell := c.cells[i]
		switch {
		case cell.IsBlank():
			if !worked && !headed {
				c.cells[i] = Glyph(c.src.Glyph(), true)
				worked = true
				headed = true
			}
		case cell.Leading:
			i = c.advance(i)
			worked = true
		case worked:
			c.cells[i] = Blank()
			worked = false
		}
	}

	c.emitCountdown--
	if c.emitCountdown <= 0 {
		c.phase = Fading
		c.fadeCountdown = c.sample(c.bounds.FadeMin, len(c.cells)-1)
	}
}

// advance demotes the head at i and promotes the next cell, returning the
// last index it wrote so the caller skips the new head.
func (c *Column) advance(i int) int {
	c.cells[i] = Glyph(c.src.Glyph(), false)
	if i+1 >= len(c.cells) {
		return i
	}
	c.cells[i+1] = Glyph(c.src.Glyph(), true)
	return i + 1
}
