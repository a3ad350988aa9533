package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas adapts an Ebiten image to the Canvas contract for the
// desktop backend.
type EbitenCanvas struct {
	img *ebiten.Image
}

// NewEbitenCanvas wraps the given image.
func NewEbitenCanvas(img *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{img: img}
}

// SetImage retargets the canvas, e.g. to the per-frame screen image.
func (c *EbitenCanvas) SetImage(img *ebiten.Image) {
	c.img = img
}

// Size reports the image dimensions.
func (c *EbitenCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear resets the image to transparent.
func (c *EbitenCanvas) Clear() {
	c.img.Clear()
}

// Fill floods the image with a solid color.
func (c *EbitenCanvas) Fill(col color.RGBA) {
	c.img.Fill(col)
}

// StrokeLine strokes an antialiased segment.
func (c *EbitenCanvas) StrokeLine(x0, y0, x1, y1 float64, col color.RGBA, width float64) {
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), col, true)
}

// FillCircle fills an antialiased disc.
func (c *EbitenCanvas) FillCircle(x, y, r float64, col color.RGBA) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), col, true)
}
