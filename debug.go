package fractalview

import (
	"fmt"
	"image"
	"os"
	"time"
)

// RenderStats describes one completed render.
type RenderStats struct {
	Fractal Fractal
	Bounds  Bounds
	// Elapsed is only measured when the Renderer has Debug set.
	Elapsed time.Duration
	// Drawn is the bounding box of plotted (non-background) pixels.
	Drawn image.Rectangle
	// DragonStep is the world-space turtle step, set for Dragon renders.
	DragonStep float64
	// DragonSamples are the first mapped curve points, set for Dragon renders.
	DragonSamples []image.Point
}

// debugLogRender prints render stats to stderr.
func debugLogRender(stats RenderStats) {
	b := stats.Bounds
	_, _ = fmt.Fprintf(os.Stderr,
		"[fractalview] render %s: bounds=[%g,%g,%g,%g] took %v\n",
		stats.Fractal, b.RMin, b.RMax, b.IMin, b.IMax, stats.Elapsed)
	if stats.Drawn.Empty() {
		_, _ = fmt.Fprintf(os.Stderr, "[fractalview] render %s: nothing drawn\n", stats.Fractal)
		return
	}
	d := stats.Drawn
	_, _ = fmt.Fprintf(os.Stderr,
		"[fractalview] render %s: drawn px=[%d,%d] py=[%d,%d]\n",
		stats.Fractal, d.Min.X, d.Max.X-1, d.Min.Y, d.Max.Y-1)
	if stats.Fractal == Dragon {
		_, _ = fmt.Fprintf(os.Stderr, "[fractalview] render %s: step=%g samples=%v\n",
			stats.Fractal, stats.DragonStep, stats.DragonSamples)
	}
}

// debugf prints a prefixed diagnostic line to stderr when enabled.
func debugf(enabled bool, format string, args ...any) {
	if !enabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[fractalview] "+format+"\n", args...)
}
