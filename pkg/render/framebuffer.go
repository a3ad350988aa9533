package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Framebuffer is a 2D array of pixels implementing Canvas for the
// terminal backend. Terminal output doubles the vertical resolution by
// packing two pixel rows into one half-block character row.
type Framebuffer struct {
	Width  int          // Width in pixels (terminal columns)
	Height int          // Height in pixels (2x terminal rows)
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a framebuffer with the given dimensions.
// Height should be 2x the desired terminal rows for half-block output.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Size reports the surface dimensions.
func (fb *Framebuffer) Size() (int, int) {
	return fb.Width, fb.Height
}

// Clear resets every pixel to transparent black.
func (fb *Framebuffer) Clear() {
	clear(fb.Pixels)
}

// Fill floods the framebuffer with a solid color.
func (fb *Framebuffer) Fill(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel writes a pixel at (x, y) with bounds checking. Colors with
// partial alpha blend src-over onto the existing pixel.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	switch c.A {
	case 255:
		fb.Pixels[i] = c
	case 0:
	default:
		d := fb.Pixels[i]
		a := uint32(c.A)
		inv := 255 - a
		fb.Pixels[i] = color.RGBA{
			R: uint8((uint32(c.R)*a + uint32(d.R)*inv) / 255),
			G: uint8((uint32(c.G)*a + uint32(d.G)*inv) / 255),
			B: uint8((uint32(c.B)*a + uint32(d.B)*inv) / 255),
			A: uint8(a + uint32(d.A)*inv/255),
		}
	}
}

// GetPixel returns the color at (x, y), or transparent black when out
// of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// StrokeLine strokes a segment using Bresenham's algorithm. Widths
// above one stamp a disc at each step.
func (fb *Framebuffer) StrokeLine(fx0, fy0, fx1, fy1 float64, c color.RGBA, width float64) {
	x0, y0 := int(math.Round(fx0)), int(math.Round(fy0))
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))

	plot := func(x, y int) { fb.SetPixel(x, y, c) }
	if width > 1.5 {
		r := width / 2
		plot = func(x, y int) { fb.fillCircleInt(x, y, r, c) }
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle fills a disc centered at (x, y) by scanline.
func (fb *Framebuffer) FillCircle(x, y, r float64, c color.RGBA) {
	if r <= 0 {
		return
	}
	cx, cy := int(math.Round(x)), int(math.Round(y))
	fb.fillCircleInt(cx, cy, r, c)
}

func (fb *Framebuffer) fillCircleInt(cx, cy int, r float64, c color.RGBA) {
	ri := int(math.Ceil(r))
	for dy := -ri; dy <= ri; dy++ {
		span := r*r - float64(dy)*float64(dy)
		if span < 0 {
			continue
		}
		half := int(math.Floor(math.Sqrt(span)))
		for dx := -half; dx <= half; dx++ {
			fb.SetPixel(cx+dx, cy+dy, c)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
