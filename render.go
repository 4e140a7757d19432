package fractalview

import (
	"image"
	"math/rand/v2"
	"time"
)

// Renderer draws fractals into a caller-owned image buffer. It keeps the
// random source for the chaos game and the expanded dragon L-system between
// renders. Not safe for concurrent use.
type Renderer struct {
	// MaxIter bounds the Mandelbrot escape-time loop.
	MaxIter int
	// Debug logs one stats line per render to stderr.
	Debug bool

	rng    *rand.Rand
	dragon string
}

// NewRenderer creates a Renderer. The seed feeds the chaos-game generator;
// renders after the first continue the same stream.
func NewRenderer(maxIter int, seed uint64) *Renderer {
	if maxIter <= 0 {
		maxIter = MaxIter
	}
	return &Renderer{
		MaxIter: maxIter,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Render draws fractal f for view b into img, sized by img's bounds. Unknown
// fractals render as Mandelbrot.
func (r *Renderer) Render(img *image.RGBA, f Fractal, b Bounds) RenderStats {
	size := img.Rect.Size()
	m := NewMapper(size.X, size.Y, b)
	stats := RenderStats{Fractal: f, Bounds: b}

	var t0 time.Time
	if r.Debug {
		t0 = time.Now()
	}

	var ext extent
	switch f {
	case Sierpinski:
		ext = renderSierpinski(img, m, r.rng)
	case Koch:
		ext = renderKoch(img, m)
	case Menger:
		ext = renderMenger(img, m)
	case Dragon:
		if r.dragon == "" {
			r.dragon = DragonLSystem(dragonGenerations)
		}
		ext, stats.DragonStep, stats.DragonSamples = renderDragon(img, m, r.dragon)
	default:
		ext = renderMandelbrot(img, m, r.MaxIter)
	}
	stats.Drawn = ext.Rect()

	if r.Debug {
		stats.Elapsed = time.Since(t0)
		debugLogRender(stats)
	}
	return stats
}
