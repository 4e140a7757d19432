package fractalview

import (
	"image"
	"math"
)

// mengerRounds is the number of base-3 digits examined per pixel.
const mengerRounds = 8

// mengerHole reports whether the unit-square point (ux, uy) falls in a removed
// square of the carpet within mengerRounds levels.
func mengerHole(ux, uy float64) bool {
	tx, ty := ux, uy
	for i := 0; i < mengerRounds; i++ {
		tx *= 3
		ty *= 3
		ix := math.Floor(tx)
		iy := math.Floor(ty)
		if int(ix)%3 == 1 && int(iy)%3 == 1 {
			return true
		}
		tx -= ix
		ty -= iy
	}
	return false
}

// renderMenger overwrites every pixel with the carpet. The carpet is framed to
// the raster and does not depend on the view bounds.
func renderMenger(img *image.RGBA, m Mapper) extent {
	ext := newExtent()
	for x := 0; x < m.W; x++ {
		ux := float64(x) / float64(m.W-1)
		for y := 0; y < m.H; y++ {
			uy := 1 - float64(y)/float64(m.H-1)
			if mengerHole(ux, uy) {
				setPixel(img, x, y, colorBlack)
				continue
			}
			setPixel(img, x, y, colorSilver)
			ext.add(x, y)
		}
	}
	return ext
}
