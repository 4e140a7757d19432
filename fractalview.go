package fractalview

import (
	"image/color"
	"math"
)

// Raster and iteration defaults.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	MaxIter      = 100

	// RefWorldWidth is the width of InitialBounds. The dragon curve sizes its
	// step from this constant rather than the current view width, so the curve
	// zooms with the view.
	RefWorldWidth = 3.5
)

// InitialBounds is the view shown on first start and after a reset.
var InitialBounds = Bounds{RMin: -2.5, RMax: 1.0, IMin: -1.0, IMax: 1.0}

// Vec2 is a 2D point in pixel or world space.
type Vec2 struct {
	X, Y float64
}

// Bounds is the axis-aligned view window in the complex plane.
// RMin < RMax and IMin < IMax.
type Bounds struct {
	RMin, RMax float64
	IMin, IMax float64
}

// Center returns the complex coordinate at the middle of the window.
func (b Bounds) Center() (r, i float64) {
	return (b.RMin + b.RMax) / 2, (b.IMin + b.IMax) / 2
}

// Width returns the real-axis span.
func (b Bounds) Width() float64 {
	return b.RMax - b.RMin
}

// Height returns the imaginary-axis span.
func (b Bounds) Height() float64 {
	return b.IMax - b.IMin
}

// Valid reports whether both spans are positive and finite.
func (b Bounds) Valid() bool {
	return b.RMin < b.RMax && b.IMin < b.IMax &&
		!math.IsInf(b.Width(), 0) && !math.IsInf(b.Height(), 0)
}

// BoundsFromCenter builds a window of the given real width centered on
// (cr, ci). The imaginary span is width*h/w so the window matches the raster's
// aspect ratio.
func BoundsFromCenter(cr, ci, width float64, w, h int) Bounds {
	halfW := width / 2
	halfH := width * (float64(h) / float64(w)) / 2
	return Bounds{
		RMin: cr - halfW,
		RMax: cr + halfW,
		IMin: ci - halfH,
		IMax: ci + halfH,
	}
}

// Fractal selects one of the five renderers. Values match the number keys.
type Fractal uint8

const (
	Mandelbrot Fractal = iota + 1 // escape-time Mandelbrot set
	Sierpinski                    // chaos-game Sierpinski triangle
	Koch                          // recursive Koch curve
	Menger                        // Menger-style carpet (2D)
	Dragon                        // L-system dragon curve
)

// Valid reports whether f is one of the five known fractals.
func (f Fractal) Valid() bool {
	return f >= Mandelbrot && f <= Dragon
}

// String returns the display name used in the overlay.
func (f Fractal) String() string {
	switch f {
	case Mandelbrot:
		return "Mandelbrot"
	case Sierpinski:
		return "Sierpinski"
	case Koch:
		return "Koch"
	case Menger:
		return "Menger"
	case Dragon:
		return "Dragon"
	default:
		return "Unknown"
	}
}

// Palette colors. All opaque.
var (
	colorBlack  = color.RGBA{A: 255}
	colorGold   = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	colorForest = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	colorSilver = color.RGBA{R: 192, G: 192, B: 192, A: 255}
)

// EventType identifies a kind of viewer input event.
type EventType uint8

const (
	EventClick EventType = iota // left mouse button pressed: recenter
	EventWheel                  // vertical wheel scrolled: zoom about cursor
	EventKey                    // a command key was pressed
)

// String returns a lowercase name for logs and event sinks.
func (t EventType) String() string {
	switch t {
	case EventClick:
		return "click"
	case EventWheel:
		return "wheel"
	case EventKey:
		return "key"
	default:
		return "unknown"
	}
}

// Key identifies a command key. Number keys share values with Fractal.
type Key uint8

const (
	KeyNone  Key = iota
	Key1         // select Mandelbrot
	Key2         // select Sierpinski
	Key3         // select Koch
	Key4         // select Menger
	Key5         // select Dragon
	KeyReset     // R: reset to InitialBounds
)

// fractal returns the fractal selected by a number key.
func (k Key) fractal() (Fractal, bool) {
	if k >= Key1 && k <= Key5 {
		return Fractal(k), true
	}
	return 0, false
}

// ParseKey maps a script key name ("1".."5", "r", "R") to a Key.
func ParseKey(s string) Key {
	switch s {
	case "1":
		return Key1
	case "2":
		return Key2
	case "3":
		return Key3
	case "4":
		return Key4
	case "5":
		return Key5
	case "r", "R", "reset":
		return KeyReset
	default:
		return KeyNone
	}
}

// Event is a single discrete input applied by the Controller.
// X and Y are pixel coordinates for EventClick and EventWheel.
type Event struct {
	Type  EventType
	X, Y  int
	Delta float64
	Key   Key
}

// ZoomHold is the held state of the continuous zoom keys for one frame.
type ZoomHold struct {
	In  bool
	Out bool
}

// Active reports whether either zoom key is held.
func (z ZoomHold) Active() bool {
	return z.In || z.Out
}

// factor returns the per-tick zoom factor. Both keys held cancel out.
func (z ZoomHold) factor() float64 {
	switch {
	case z.In && !z.Out:
		return zoomInFactor
	case z.Out && !z.In:
		return zoomOutFactor
	default:
		return 1.0
	}
}
