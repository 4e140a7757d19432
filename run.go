package fractalview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// tps is the fixed update rate of the frame loop.
const tps = 60

// Viewer is the interactive fractal viewer. It implements ebiten.Game: Update
// applies input to the Controller and Draw presents the render buffer with the
// HUD overlay.
type Viewer struct {
	cfg     Config
	ctrl    *Controller
	texture *ebiten.Image
	overlay *overlay
	fps     *fpsWidget

	eventBuf        []Event
	injectQueue     []syntheticInput
	testRunner      *TestRunner
	screenshotQueue []string
	quit            bool
}

// NewViewer creates a viewer from cfg: it restores settings, renders the
// first frame, and loads the overlay font. It does not open a window.
func NewViewer(cfg Config) *Viewer {
	cfg = cfg.resolve()
	v := &Viewer{
		cfg:     cfg,
		ctrl:    NewController(cfg),
		overlay: newOverlay(loadOverlayFont(cfg.FontPaths, cfg.FontSize, cfg.BuiltinFontFallback, cfg.Debug)),
	}
	if !v.overlay.enabled() {
		debugf(cfg.Debug, "overlay disabled: no font loaded")
	}
	if cfg.ShowFPS {
		v.fps = newFPSWidget()
	}
	v.updateOverlay()
	return v
}

// Controller returns the viewer's controller.
func (v *Viewer) Controller() *Controller {
	return v.ctrl
}

// Run opens the window and runs the frame loop until the window closes.
// Pending view changes are saved on close.
func Run(cfg Config) error {
	return NewViewer(cfg).Run()
}

// Run opens the window for v and blocks until it closes.
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(v.cfg.Width, v.cfg.Height)
	ebiten.SetWindowTitle(v.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("fractalview: run: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (v *Viewer) Update() error {
	if v.testRunner != nil {
		v.testRunner.step(v)
	}
	in, ok := v.processInjectedInput()
	if ok {
		in.closing = ebiten.IsWindowBeingClosed()
	} else {
		in = pollInput(v.eventBuf[:0])
	}
	v.eventBuf = in.events[:0]
	if v.fps != nil {
		v.fps.update(1.0 / float64(ebiten.TPS()))
	}
	return v.step(in)
}

// step applies one frame of input. On close it saves and returns
// ebiten.Termination, which makes RunGame return nil.
func (v *Viewer) step(in frameInput) error {
	if in.closing || v.quit {
		_ = v.ctrl.Close()
		return ebiten.Termination
	}
	for _, ev := range in.events {
		v.ctrl.Handle(ev)
	}
	v.ctrl.Tick(in.hold)
	v.ctrl.FlushSave()
	v.updateOverlay()
	return nil
}

func (v *Viewer) updateOverlay() {
	if v.overlay.enabled() {
		v.overlay.setContent(OverlayText(v.ctrl.View()))
	}
}

// Draw implements ebiten.Game. The texture is re-uploaded only when the render
// buffer changed.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.texture == nil {
		v.texture = ebiten.NewImage(v.cfg.Width, v.cfg.Height)
		v.ctrl.imageDirty = true
	}
	if v.ctrl.TakeImageDirty() {
		v.texture.WritePixels(v.ctrl.Image().Pix)
	}

	screen.Clear()
	screen.DrawImage(v.texture, nil)
	v.overlay.draw(screen)
	if v.fps != nil {
		v.fps.draw(screen)
	}
	v.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The raster is fixed-size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Width, v.cfg.Height
}
