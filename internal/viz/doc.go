// Package viz runs the digital rain in the terminal using Bubble Tea.
//
//   - [Model]: the tick loop, input handling and view
//   - [Renderer]: turns a composited frame into styled text
//
// # Key Bindings
//
//	c       - Cycle color
//	0-9     - Set speed (0 fastest)
//	b       - Toggle bold
//	Arrows  - Set fall direction (also h/j/k/l)
//	?       - Toggle key help
//	q       - Quit
package viz
