package fractalview

import (
	"image"
	"math"
)

// kochDepth is the subdivision depth of the rendered curve.
const kochDepth = 6

// kochPoints returns the polyline of a Koch curve from a to b subdivided depth
// times. It has 4^depth + 1 points.
func kochPoints(a, b Vec2, depth int) []Vec2 {
	n := 1
	for i := 0; i < depth; i++ {
		n *= 4
	}
	pts := make([]Vec2, 0, n+1)
	pts = kochRecurse(pts, a, b, depth)
	return append(pts, b)
}

// kochRecurse appends the start point of every depth-0 segment.
func kochRecurse(pts []Vec2, a, b Vec2, depth int) []Vec2 {
	if depth == 0 {
		return append(pts, a)
	}
	vx, vy := b.X-a.X, b.Y-a.Y
	p1 := Vec2{X: a.X + vx/3, Y: a.Y + vy/3}
	p3 := Vec2{X: a.X + vx*(2.0/3.0), Y: a.Y + vy*(2.0/3.0)}

	angle := math.Atan2(vy, vx) - math.Pi/3
	length := math.Hypot(vx, vy) / 3
	p2 := Vec2{X: p1.X + math.Cos(angle)*length, Y: p1.Y + math.Sin(angle)*length}

	pts = kochRecurse(pts, a, p1, depth-1)
	pts = kochRecurse(pts, p1, p2, depth-1)
	pts = kochRecurse(pts, p2, p3, depth-1)
	return kochRecurse(pts, p3, b, depth-1)
}

// renderKoch clears img and draws a Koch curve spanning the view horizontally
// at its vertical middle. Geometry stays in pixel doubles and is rounded only
// when drawn.
func renderKoch(img *image.RGBA, m Mapper) extent {
	clearImage(img)
	midI := (m.IMin + m.IMax) / 2
	y := float64(m.ImagToPixel(midI))
	a := Vec2{X: float64(m.RealToPixel(m.RMin)), Y: y}
	b := Vec2{X: float64(m.RealToPixel(m.RMax)), Y: y}

	pts := kochPoints(a, b, kochDepth)
	ext := newExtent()
	for i := 1; i < len(pts); i++ {
		x0, y0 := roundPixel(pts[i-1])
		x1, y1 := roundPixel(pts[i])
		drawLine(img, x0, y0, x1, y1, colorForest)
		ext.add(x0, y0)
		ext.add(x1, y1)
	}
	return ext
}

// roundPixel rounds a pixel-space point to the nearest integer pixel.
func roundPixel(p Vec2) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}
