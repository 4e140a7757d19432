package fractalview

import (
	"image"
	"math"
	"math/rand/v2"
)

// sierpinskiPoints is the number of chaos-game steps per render.
const sierpinskiPoints = 120000

// sierpinskiVertices returns the triangle corners in pixel space: the top-left
// and top-right corners of the view and the bottom-middle point.
func sierpinskiVertices(m Mapper) [3]Vec2 {
	midR := (m.RMin + m.RMax) / 2
	return [3]Vec2{
		{X: float64(m.RealToPixel(m.RMin)), Y: float64(m.ImagToPixel(m.IMax))},
		{X: float64(m.RealToPixel(m.RMax)), Y: float64(m.ImagToPixel(m.IMax))},
		{X: float64(m.RealToPixel(midR)), Y: float64(m.ImagToPixel(m.IMin))},
	}
}

// renderSierpinski clears img and plots the chaos-game attractor of the
// triangle. The walk happens in pixel space, starting at the centroid.
func renderSierpinski(img *image.RGBA, m Mapper, rng *rand.Rand) extent {
	clearImage(img)
	v := sierpinskiVertices(m)
	p := Vec2{
		X: (v[0].X + v[1].X + v[2].X) / 3,
		Y: (v[0].Y + v[1].Y + v[2].Y) / 3,
	}

	ext := newExtent()
	for i := 0; i < sierpinskiPoints; i++ {
		t := v[rng.IntN(3)]
		p.X = (p.X + t.X) / 2
		p.Y = (p.Y + t.Y) / 2

		px := int(math.Round(p.X))
		py := int(math.Round(p.Y))
		if px >= 0 && px < m.W && py >= 0 && py < m.H {
			setPixel(img, px, py, colorGold)
			ext.add(px, py)
		}
	}
	return ext
}
