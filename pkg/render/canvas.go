// Package render provides the polyscope wireframe engine and its
// drawing backends.
package render

import "image/color"

// Canvas is the drawing backend contract. The engine issues only these
// operations: clearing the surface, stroking line segments, filling
// circles, and querying dimensions.
type Canvas interface {
	// Size reports the surface dimensions in pixels.
	Size() (width, height int)

	// Clear resets the surface to full transparency.
	Clear()

	// Fill floods the surface with a solid color.
	Fill(c color.RGBA)

	// StrokeLine strokes a straight segment between two points.
	StrokeLine(x0, y0, x1, y1 float64, c color.RGBA, width float64)

	// FillCircle fills a disc centered at (x, y).
	FillCircle(x, y, r float64, c color.RGBA)
}
