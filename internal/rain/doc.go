// Package rain implements the per-column stream engine behind the digital
// rain effect.
//
// The package defines:
//
//   - [Cell]: a single grid position, either a glyph or blank
//   - [Column]: one line of cells driven by a two-phase state machine
//   - [Source]: the random capability the engine samples from
//
// # Phases
//
// A column alternates between [Emitting] and [Fading]. Each phase owns a
// countdown; when it expires the column flips to the other phase and the
// other countdown is resampled. Both phases share one traversal that
// advances the leading glyph, seeds new heads and erases trailing glyphs.
//
// # Example
//
//	src := rain.NewRandomSource(seed, rain.CharsetASCII)
//	col, _ := rain.NewColumn(24, src, rain.DefaultCountdowns())
//	col.Step()
//
// # Thread Safety
//
// Columns are NOT thread-safe. A column is owned by the tick loop that
// advances it.
package rain
