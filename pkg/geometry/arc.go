package geometry

import (
	"github.com/chewxy/math32"
)

// arcResolution is the number of samples per eighth of a circle.
const arcResolution = 16

// halfCircle holds the unit upper half-circle traced from left to right.
// It is built once and never modified.
var halfCircle = buildHalfCircle()

func buildHalfCircle() []Point2D {
	arc := make([]Point2D, 4*arcResolution)
	n := 2*arcResolution - 1
	for i := 0; i < arcResolution; i++ {
		t := 0.5 * (float32(i) + 0.5) / arcResolution
		x := math32.Sqrt(t)
		y := math32.Sqrt(1 - t)

		arc[i] = Point2D{X: -y, Y: x}
		arc[n-i] = Point2D{X: -x, Y: y}
		arc[n+1+i] = Point2D{X: x, Y: y}
		arc[len(arc)-1-i] = Point2D{X: y, Y: x}
	}
	return arc
}

// HalfCircle returns a copy of the 64-point unit half-circle table.
func HalfCircle() []Point2D {
	out := make([]Point2D, len(halfCircle))
	copy(out, halfCircle)
	return out
}

// Ellipse traces an axis-aligned ellipse as a closed ring: the upper half
// from left to right, then the mirrored lower half back to the start.
func Ellipse(cx, cy, rx, ry float32) []Point2D {
	n := len(halfCircle)
	ring := make([]Point2D, 0, 2*n+1)
	for _, a := range halfCircle {
		ring = append(ring, Point2D{X: cx + rx*a.X, Y: cy + ry*a.Y})
	}
	for i := n - 1; i >= 0; i-- {
		a := halfCircle[i]
		ring = append(ring, Point2D{X: cx + rx*a.X, Y: cy - ry*a.Y})
	}
	return append(ring, ring[0])
}
