package fractalview

import "math"

// Zoom factors. The wheel applies wheelZoomBase^delta; held keys apply one
// factor per continuous-zoom tick.
const (
	wheelZoomBase = 0.98
	zoomInFactor  = 0.98
	zoomOutFactor = 1.02
)

// View is the complex-plane window shown on a W×H raster plus the selected
// fractal. Its methods implement pan and zoom; they do not render.
type View struct {
	Bounds
	Fractal Fractal
	// W and H are the raster size used for pixel conversions.
	W, H int
}

// NewView creates a view of InitialBounds showing the Mandelbrot set.
func NewView(w, h int) *View {
	return &View{Bounds: InitialBounds, Fractal: Mandelbrot, W: w, H: h}
}

// Mapper returns a pixel/complex mapper for the current bounds.
func (v *View) Mapper() Mapper {
	return NewMapper(v.W, v.H, v.Bounds)
}

// ScreenToWorld converts a pixel to its complex coordinate.
func (v *View) ScreenToWorld(px, py int) (r, i float64) {
	m := v.Mapper()
	return m.PixelToReal(px), m.PixelToImag(py)
}

// WorldToScreen converts a complex coordinate to a pixel (truncated).
func (v *View) WorldToScreen(r, i float64) (px, py int) {
	m := v.Mapper()
	return m.RealToPixel(r), m.ImagToPixel(i)
}

// Pan recenters the window on the complex point under pixel (px, py),
// keeping both spans.
func (v *View) Pan(px, py int) {
	c, d := v.ScreenToWorld(px, py)
	halfW := v.Width() / 2
	halfH := v.Height() / 2
	v.RMin = c - halfW
	v.RMax = c + halfW
	v.IMin = d - halfH
	v.IMax = d + halfH
}

// ZoomAt scales the window by wheelZoomBase^delta about the complex point
// under pixel (px, py). Positive delta zooms in. The point under the cursor
// stays fixed and both spans scale by the same factor.
func (v *View) ZoomAt(px, py int, delta float64) {
	zf := math.Pow(wheelZoomBase, delta)
	c, d := v.ScreenToWorld(px, py)
	v.RMin = c + (v.RMin-c)*zf
	v.RMax = c + (v.RMax-c)*zf
	v.IMin = d + (v.IMin-d)*zf
	v.IMax = d + (v.IMax-d)*zf
}

// ZoomCenter scales both half-spans by factor about the current center.
func (v *View) ZoomCenter(factor float64) {
	cr, ci := v.Center()
	halfW := v.Width() / 2 * factor
	halfH := v.Height() / 2 * factor
	v.RMin = cr - halfW
	v.RMax = cr + halfW
	v.IMin = ci - halfH
	v.IMax = ci + halfH
}

// Reset restores InitialBounds. The selected fractal is kept.
func (v *View) Reset() {
	v.Bounds = InitialBounds
}

// SetFractal selects f. Invalid values select Mandelbrot.
func (v *View) SetFractal(f Fractal) {
	if !f.Valid() {
		f = Mandelbrot
	}
	v.Fractal = f
}

// ZoomLevel is the magnification relative to InitialBounds (1 = initial).
func (v *View) ZoomLevel() float64 {
	return RefWorldWidth / v.Width()
}

// Settings returns the persisted form of the view.
func (v *View) Settings() Settings {
	cr, ci := v.Center()
	return Settings{CenterReal: cr, CenterImag: ci, Width: v.Width(), Fractal: v.Fractal}
}

// ApplySettings derives bounds from saved center and width, using the
// raster's aspect ratio for the imaginary span. Returns false and leaves the
// bounds untouched if the derived bounds are not finite and non-empty.
func (v *View) ApplySettings(s Settings) bool {
	v.SetFractal(s.Fractal)
	b := BoundsFromCenter(s.CenterReal, s.CenterImag, s.Width, v.W, v.H)
	if !b.Valid() {
		return false
	}
	v.Bounds = b
	return true
}
