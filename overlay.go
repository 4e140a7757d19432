package fractalview

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	size float64
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("fractalview: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{face: face, size: size, lh: lh}, nil
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// loadOverlayFont tries each path in order and returns the first font that
// loads. With builtin set, the embedded Go Regular face is the last resort.
// Returns nil when nothing loads; the overlay is then disabled.
func loadOverlayFont(paths []string, size float64, builtin, debug bool) *TTFFont {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			debugf(debug, "font: %v", err)
			continue
		}
		f, err := LoadTTFFont(data, size)
		if err != nil {
			debugf(debug, "font %s: %v", p, err)
			continue
		}
		return f
	}
	if builtin {
		f, err := LoadTTFFont(goregular.TTF, size)
		if err == nil {
			return f
		}
		debugf(debug, "font builtin: %v", err)
	}
	return nil
}

// OverlayText formats the HUD lines for v: zoom relative to the initial
// width, center, and fractal name.
func OverlayText(v *View) string {
	z := v.ZoomLevel()
	cr, ci := v.Center()
	return fmt.Sprintf("Zoom: %.6fx (%.2f%%)\nCenter: (%.8f, %.8f)\nFractal: %s",
		z, z*100, cr, ci, v.Fractal)
}

// Outline defines a text stroke rendered behind the fill.
type Outline struct {
	Color     color.Color
	Thickness float64
}

// overlay draws the HUD text in the top-left corner.
type overlay struct {
	font    *TTFFont
	content string
	x, y    float64
	color   color.Color
	outline *Outline
}

func newOverlay(font *TTFFont) *overlay {
	return &overlay{
		font:    font,
		x:       8,
		y:       8,
		color:   color.White,
		outline: &Outline{Color: color.Black, Thickness: 1},
	}
}

// enabled reports whether a font loaded.
func (o *overlay) enabled() bool {
	return o != nil && o.font != nil
}

// setContent replaces the text drawn on the next frame.
func (o *overlay) setContent(s string) {
	o.content = s
}

// draw renders the outline by stamping the text at offsets around the origin,
// then the fill on top.
func (o *overlay) draw(screen *ebiten.Image) {
	if !o.enabled() || o.content == "" {
		return
	}
	if o.outline != nil && o.outline.Thickness > 0 {
		t := o.outline.Thickness
		for _, d := range [8][2]float64{
			{-t, -t}, {0, -t}, {t, -t},
			{-t, 0}, {t, 0},
			{-t, t}, {0, t}, {t, t},
		} {
			o.drawAt(screen, o.x+d[0], o.y+d[1], o.outline.Color)
		}
	}
	o.drawAt(screen, o.x, o.y, o.color)
}

func (o *overlay) drawAt(screen *ebiten.Image, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = o.font.lh
	text.Draw(screen, o.content, o.font.face, op)
}
