package fractalview

import (
	"image"
	"image/color"
)

// NewImage allocates a w×h RGBA buffer filled with opaque black.
func NewImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	clearImage(img)
	return img
}

// clearImage fills img with opaque black.
func clearImage(img *image.RGBA) {
	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = 0
		pix[i+1] = 0
		pix[i+2] = 0
		pix[i+3] = 255
	}
}

// setPixel writes c at (x, y) if the point lies inside img.
func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return
	}
	i := img.PixOffset(x, y)
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}

// drawLine draws an aliased line from (x0, y0) to (x1, y1) with integer
// Bresenham, both endpoints inclusive. Pixels outside img are skipped.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	r := img.Rect
	// A segment whose bounding box misses the raster plots nothing.
	if (x0 < r.Min.X && x1 < r.Min.X) || (x0 >= r.Max.X && x1 >= r.Max.X) ||
		(y0 < r.Min.Y && y1 < r.Min.Y) || (y0 >= r.Max.Y && y1 >= r.Max.Y) {
		return
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		setPixel(img, x, y, c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// extent tracks the bounding box of plotted pixels for debug stats.
type extent struct {
	minX, minY, maxX, maxY int
	empty                  bool
}

func newExtent() extent {
	return extent{empty: true}
}

// add grows the extent to include (x, y).
func (e *extent) add(x, y int) {
	if e.empty {
		e.minX, e.maxX, e.minY, e.maxY = x, x, y, y
		e.empty = false
		return
	}
	e.minX = min(e.minX, x)
	e.maxX = max(e.maxX, x)
	e.minY = min(e.minY, y)
	e.maxY = max(e.maxY, y)
}

// Rect returns the extent as an image.Rectangle (Max exclusive). Empty
// extents return the zero rectangle.
func (e extent) Rect() image.Rectangle {
	if e.empty {
		return image.Rectangle{}
	}
	return image.Rect(e.minX, e.minY, e.maxX+1, e.maxY+1)
}
