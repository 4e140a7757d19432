package fractalview

import "math"

// pixelSnap is how close a mapped coordinate must be to an integer to be
// treated as that integer before truncation.
const pixelSnap = 1e-6

// mapRange linearly maps v from [aLo, aHi] onto [bLo, bHi].
func mapRange(v, aLo, aHi, bLo, bHi float64) float64 {
	return bLo + (v-aLo)*(bHi-bLo)/(aHi-aLo)
}

// Mapper converts between pixel coordinates on a W×H raster and complex
// coordinates inside Bounds. Pixel Y grows downward while the imaginary axis
// grows upward, so row 0 maps to IMax.
type Mapper struct {
	W, H int
	Bounds
}

// NewMapper returns a Mapper for a w×h raster. Panics unless w > 1 and h > 1.
func NewMapper(w, h int, b Bounds) Mapper {
	if w <= 1 || h <= 1 {
		panic("fractalview: mapper needs a raster of at least 2x2 pixels")
	}
	return Mapper{W: w, H: h, Bounds: b}
}

// PixelToReal maps a column in [0, W-1] onto [RMin, RMax].
func (m Mapper) PixelToReal(px int) float64 {
	return mapRange(float64(px), 0, float64(m.W-1), m.RMin, m.RMax)
}

// PixelToImag maps a row in [0, H-1] onto [IMax, IMin].
func (m Mapper) PixelToImag(py int) float64 {
	return mapRange(float64(py), 0, float64(m.H-1), m.IMax, m.IMin)
}

// PixelToComplex maps a pixel to its complex coordinate.
func (m Mapper) PixelToComplex(px, py int) complex128 {
	return complex(m.PixelToReal(px), m.PixelToImag(py))
}

// RealToPixel is the inverse of PixelToReal, truncated toward zero.
func (m Mapper) RealToPixel(r float64) int {
	return truncPixel(mapRange(r, m.RMin, m.RMax, 0, float64(m.W-1)))
}

// ImagToPixel is the inverse of PixelToImag, truncated toward zero.
func (m Mapper) ImagToPixel(i float64) int {
	return truncPixel(mapRange(i, m.IMax, m.IMin, 0, float64(m.H-1)))
}

// worldToPixel maps a world point with RealToPixel/ImagToPixel.
func (m Mapper) worldToPixel(p Vec2) (int, int) {
	return m.RealToPixel(p.X), m.ImagToPixel(p.Y)
}

// truncPixel truncates v toward zero. Values within pixelSnap of an integer
// snap to it first so that round-off in the forward map cannot lose a pixel.
func truncPixel(v float64) int {
	if r := math.Round(v); math.Abs(v-r) < pixelSnap {
		return int(r)
	}
	return int(v)
}
