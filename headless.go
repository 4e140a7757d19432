package fractalview

import (
	"errors"
	"fmt"
	"io/fs"
)

// RenderPNG renders the persisted view from cfg.SettingsPath once, without a
// window, and writes the render buffer to path. A missing settings file
// renders the initial view. The settings file is never written.
func RenderPNG(cfg Config, path string) (RenderStats, error) {
	cfg = cfg.resolve()
	view := NewView(cfg.Width, cfg.Height)
	s := Settings{Fractal: Mandelbrot}
	err := LoadSettings(cfg.SettingsPath, &s)
	switch {
	case err == nil:
		if !view.ApplySettings(s) {
			debugf(cfg.Debug, "settings: center (%g, %g) width %g unusable, using initial view", s.CenterReal, s.CenterImag, s.Width)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		debugf(cfg.Debug, "settings: %v", err)
	}

	r := NewRenderer(cfg.MaxIter, cfg.Seed)
	r.Debug = cfg.Debug
	img := NewImage(cfg.Width, cfg.Height)
	stats := r.Render(img, view.Fractal, view.Bounds)
	if err := writePNG(path, img); err != nil {
		return stats, fmt.Errorf("fractalview: render png: %w", err)
	}
	return stats, nil
}
