package fractalview

import (
	"image"
	"image/color"
	"math"
	"math/cmplx"
)

// MandelbrotIterations returns the index of the first iteration of
// z ← z² + c (from z = 0) at which |z| exceeds 2, or maxIter if it never
// does.
func MandelbrotIterations(c complex128, maxIter int) int {
	var z complex128
	for i := 0; i < maxIter; i++ {
		z = z*z + c
		if cmplx.Abs(z) > 2 {
			return i
		}
	}
	return maxIter
}

// mandelbrotColor maps an iteration count to black (in the set) or a blue ramp.
func mandelbrotColor(n, maxIter int) color.RGBA {
	if n >= maxIter {
		return colorBlack
	}
	blue := math.Round(mapRange(float64(n), 0, float64(maxIter), 0, 255))
	return color.RGBA{B: clampByte(blue), A: 255}
}

// renderMandelbrot overwrites every pixel of img. Columns are visited outer.
func renderMandelbrot(img *image.RGBA, m Mapper, maxIter int) extent {
	ext := newExtent()
	for x := 0; x < m.W; x++ {
		re := m.PixelToReal(x)
		for y := 0; y < m.H; y++ {
			n := MandelbrotIterations(complex(re, m.PixelToImag(y)), maxIter)
			c := mandelbrotColor(n, maxIter)
			setPixel(img, x, y, c)
			if c != colorBlack {
				ext.add(x, y)
			}
		}
	}
	return ext
}

// clampByte clamps v to [0, 255].
func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
