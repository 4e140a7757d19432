package fractalview

import (
	"errors"
	"image"
	"io/fs"
	"time"
)

// zoomTickInterval is the minimum time between continuous-zoom steps while a
// zoom key is held.
const zoomTickInterval = 50 * time.Millisecond

// Controller owns the view, the render buffer, and the persistence state. It
// applies input events, re-renders synchronously after every change, and
// saves settings after a quiet period. All methods must be called from the
// frame loop goroutine.
type Controller struct {
	cfg      Config
	view     *View
	img      *image.RGBA
	renderer *Renderer
	save     debouncer
	sinks    []EventSink

	now          func() time.Time
	lastZoomTick time.Time

	imageDirty bool
	lastStats  RenderStats
}

// NewController builds a controller from cfg, restores persisted settings,
// and renders the first frame. When no usable settings exist the initial view
// is written out immediately.
func NewController(cfg Config) *Controller {
	return newController(cfg, time.Now)
}

func newController(cfg Config, now func() time.Time) *Controller {
	cfg = cfg.resolve()
	c := &Controller{
		cfg:      cfg,
		view:     NewView(cfg.Width, cfg.Height),
		img:      NewImage(cfg.Width, cfg.Height),
		renderer: NewRenderer(cfg.MaxIter, cfg.Seed),
		save:     debouncer{delay: saveDebounce},
		now:      now,
	}
	c.renderer.Debug = cfg.Debug
	c.lastZoomTick = now()
	c.AddEventSink(&ClickLog{Path: cfg.ClickLogPath, Debug: cfg.Debug})

	c.restore()
	c.render()
	return c
}

// restore loads the settings file into the view, falling back to the initial
// bounds and saving them when the file is missing or yields no usable bounds.
func (c *Controller) restore() {
	s := Settings{Fractal: Mandelbrot}
	err := LoadSettings(c.cfg.SettingsPath, &s)
	if err == nil && c.view.ApplySettings(s) {
		return
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		debugf(c.cfg.Debug, "settings: %v", err)
	}
	c.view.Bounds = InitialBounds
	c.saveNow()
}

// View returns the live view. Callers must not modify it.
func (c *Controller) View() *View {
	return c.view
}

// Image returns the render buffer. It is reused across renders.
func (c *Controller) Image() *image.RGBA {
	return c.img
}

// LastStats returns the stats of the most recent render.
func (c *Controller) LastStats() RenderStats {
	return c.lastStats
}

// Dirty reports whether there are unsaved view changes.
func (c *Controller) Dirty() bool {
	return c.save.dirty
}

// TakeImageDirty reports whether the buffer changed since the last call and
// clears the flag. The frame loop uses it to decide on a texture upload.
func (c *Controller) TakeImageDirty() bool {
	d := c.imageDirty
	c.imageDirty = false
	return d
}

// Handle applies one input event. Events that do not change the view are
// ignored.
func (c *Controller) Handle(ev Event) {
	ve := ViewEvent{Type: ev.Type, PixelX: ev.X, PixelY: ev.Y, Delta: ev.Delta, Key: ev.Key}

	switch ev.Type {
	case EventClick:
		ve.Real, ve.Imag = c.view.ScreenToWorld(ev.X, ev.Y)
		c.view.Pan(ev.X, ev.Y)
	case EventWheel:
		if ev.Delta == 0 {
			return
		}
		ve.Real, ve.Imag = c.view.ScreenToWorld(ev.X, ev.Y)
		c.view.ZoomAt(ev.X, ev.Y, ev.Delta)
	case EventKey:
		if f, ok := ev.Key.fractal(); ok {
			c.view.SetFractal(f)
			c.changed()
			c.exportDebugPNG()
			c.emit(ve)
			return
		}
		if ev.Key != KeyReset {
			return
		}
		c.view.Reset()
	default:
		return
	}

	c.changed()
	c.emit(ve)
}

// Tick applies one continuous-zoom step about the view center when a zoom key
// is held and zoomTickInterval has passed since the previous step. Reports
// whether a step was applied.
func (c *Controller) Tick(hold ZoomHold) bool {
	if !hold.Active() {
		return false
	}
	now := c.now()
	if now.Sub(c.lastZoomTick) < zoomTickInterval {
		return false
	}
	c.view.ZoomCenter(hold.factor())
	c.changed()
	c.lastZoomTick = now
	return true
}

// FlushSave writes the settings if the view is dirty and has been quiet for
// the debounce period. Reports whether a save was attempted.
func (c *Controller) FlushSave() bool {
	if !c.save.due(c.now()) {
		return false
	}
	c.saveNow()
	return true
}

// Close saves pending changes synchronously. Call it when the window closes.
func (c *Controller) Close() error {
	if !c.save.dirty {
		return nil
	}
	return c.saveNow()
}

// changed re-renders and restarts the save debounce.
func (c *Controller) changed() {
	c.render()
	c.save.mark(c.now())
}

func (c *Controller) render() {
	c.lastStats = c.renderer.Render(c.img, c.view.Fractal, c.view.Bounds)
	c.imageDirty = true
}

// saveNow writes the settings file. Failures are swallowed; the view stays
// clean either way so the next change schedules another attempt.
func (c *Controller) saveNow() error {
	c.save.clear()
	err := SaveSettings(c.cfg.SettingsPath, c.view.Settings())
	if err != nil {
		debugf(c.cfg.Debug, "%v", err)
	}
	return err
}

func (c *Controller) exportDebugPNG() {
	if err := SaveDebugPNG(c.cfg.PNGDir, c.view.Fractal, c.img); err != nil {
		debugf(c.cfg.Debug, "debug png: %v", err)
	}
}

func (c *Controller) emit(ve ViewEvent) {
	ve.Fractal = c.view.Fractal
	ve.Bounds = c.view.Bounds
	c.emitEvent(ve)
}
