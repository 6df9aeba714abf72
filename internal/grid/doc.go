// Package grid lays rain columns out on a terminal display.
//
// A [Grid] is an ordered set of [rain.Column] values sized from the display
// and the fall direction. Vertical directions use every other display
// column; horizontal directions use one column per display row.
//
// The [Compositor] turns a grid into a [Frame] of styled spans, applying the
// direction as a render-time transform. The [Reconciler] owns the live grid
// and rebuilds it whenever the display geometry or direction changes.
package grid
