package fractalview

import (
	"image"
	"image/color"
	"math"
	"strings"
)

// dragonGenerations is the number of L-system rewrites.
const dragonGenerations = 12

// dragonSamples is how many mapped points a render reports for diagnostics.
const dragonSamples = 5

// DragonLSystem rewrites the axiom "FX" n times with X → X+YF+ and Y → -FX-Y.
// All other symbols are copied unchanged.
func DragonLSystem(n int) string {
	s := "FX"
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.Reset()
		b.Grow(len(s) * 3)
		for j := 0; j < len(s); j++ {
			switch s[j] {
			case 'X':
				b.WriteString("X+YF+")
			case 'Y':
				b.WriteString("-FX-Y")
			default:
				b.WriteByte(s[j])
			}
		}
		s = b.String()
	}
	return s
}

// dragonStep is the world-space length of one F move.
func dragonStep(w int) float64 {
	return RefWorldWidth / float64(w) * 2
}

// dragonPoints walks prog as a turtle in world space. Each F emits the point
// before the move; + and - turn by a quarter turn.
func dragonPoints(prog string, start Vec2, step float64) []Vec2 {
	pts := make([]Vec2, 0, strings.Count(prog, "F"))
	p := start
	var heading float64
	for i := 0; i < len(prog); i++ {
		switch prog[i] {
		case 'F':
			next := Vec2{X: p.X + math.Cos(heading)*step, Y: p.Y + math.Sin(heading)*step}
			pts = append(pts, p)
			p = next
		case '+':
			heading += math.Pi / 2
		case '-':
			heading -= math.Pi / 2
		}
	}
	return pts
}

// dragonColor returns the red gradient color for segment i of n points.
func dragonColor(i, n int) color.RGBA {
	t := float64(i) / float64(max(1, n-1))
	r := math.Min(255, math.Round(120+135*t))
	return color.RGBA{R: uint8(r), G: 20, B: 20, A: 255}
}

// renderDragon clears img and draws the dragon curve. The curve lives in world
// space with a step tied to RefWorldWidth, so it scales with the view. It
// returns the plotted extent, the step, and the first few mapped points.
func renderDragon(img *image.RGBA, m Mapper, prog string) (extent, float64, []image.Point) {
	clearImage(img)
	cr, ci := m.Center()
	step := dragonStep(m.W)
	start := Vec2{X: cr - RefWorldWidth/4, Y: ci}
	pts := dragonPoints(prog, start, step)

	samples := make([]image.Point, 0, dragonSamples)
	for _, p := range pts[:min(dragonSamples, len(pts))] {
		x, y := m.worldToPixel(p)
		samples = append(samples, image.Pt(x, y))
	}

	ext := newExtent()
	for i := 1; i < len(pts); i++ {
		x0, y0 := m.worldToPixel(pts[i-1])
		x1, y1 := m.worldToPixel(pts[i])
		drawLine(img, x0, y0, x1, y1, dragonColor(i, len(pts)))
		ext.add(x0, y0)
		ext.add(x1, y1)
	}
	return ext, step, samples
}
