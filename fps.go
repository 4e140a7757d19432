package fractalview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the readout is redrawn, in seconds.
const fpsRefresh = 0.5

// fpsWidget displays the current FPS and TPS in the bottom-left corner. It
// redraws its own image every fpsRefresh seconds.
type fpsWidget struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSWidget() *fpsWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsWidget{lastUpdate: fpsRefresh}
}

// update advances the refresh timer by dt seconds.
func (w *fpsWidget) update(dt float64) {
	w.lastUpdate += dt
	if w.lastUpdate < fpsRefresh {
		return
	}
	w.lastUpdate = 0

	if w.img == nil {
		w.img = ebiten.NewImage(100, 32)
	}
	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	if w.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(screen.Bounds().Dy()-w.img.Bounds().Dy()))
	screen.DrawImage(w.img, op)
}
