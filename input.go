package fractalview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// frameInput is everything the frame loop reads from input in one Update.
type frameInput struct {
	events  []Event
	hold    ZoomHold
	closing bool
}

// commandKeys maps Ebitengine keys to viewer command keys.
var commandKeys = [...]struct {
	key ebiten.Key
	cmd Key
}{
	{ebiten.KeyDigit1, Key1},
	{ebiten.KeyDigit2, Key2},
	{ebiten.KeyDigit3, Key3},
	{ebiten.KeyDigit4, Key4},
	{ebiten.KeyDigit5, Key5},
	{ebiten.KeyR, KeyReset},
}

// pollEvents appends this frame's discrete input to buf: a left click, a
// vertical wheel scroll at the cursor, and newly pressed command keys.
func pollEvents(buf []Event) []Event {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		buf = append(buf, Event{Type: EventClick, X: mx, Y: my})
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		buf = append(buf, Event{Type: EventWheel, X: mx, Y: my, Delta: dy})
	}
	for _, k := range commandKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			buf = append(buf, Event{Type: EventKey, Key: k.cmd})
		}
	}
	return buf
}

// pollZoomHold reads the held state of the continuous zoom keys. Zoom in is
// numpad add or Shift+Equal ('+'); zoom out is minus or numpad subtract.
func pollZoomHold() ZoomHold {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	return ZoomHold{
		In:  ebiten.IsKeyPressed(ebiten.KeyNumpadAdd) || (shift && ebiten.IsKeyPressed(ebiten.KeyEqual)),
		Out: ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyNumpadSubtract),
	}
}

// pollInput reads real input for one frame.
func pollInput(buf []Event) frameInput {
	return frameInput{
		events:  pollEvents(buf),
		hold:    pollZoomHold(),
		closing: ebiten.IsWindowBeingClosed(),
	}
}
