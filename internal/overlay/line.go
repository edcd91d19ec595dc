package overlay

import (
	"math"

	"github.com/chewxy/math32"

	"visbio-overlays/pkg/geometry"
)

// gridPaddingFactor scales the display scaling value into the selection
// grid padding.
const gridPaddingFactor = 0.02

// Line is a straight segment between two endpoints.
type Line struct {
	base
}

// NewLine creates a line from (x1, y1) to (x2, y2).
func NewLine(t Transform, x1, y1, x2, y2 float32) *Line {
	return &Line{base: newBase(t, x1, y1, x2, y2)}
}

func (l *Line) Kind() Kind         { return KindLine }
func (l *Line) HasEndpoint2() bool { return true }

// HasData reports whether the endpoints differ.
func (l *Line) HasData() bool {
	return l.x1 != l.x2 || l.y1 != l.y2
}

// Distance returns the distance from (x, y) to the segment.
func (l *Line) Distance(x, y float64) float64 {
	return segmentDistance(l.x1, l.y1, l.x2, l.y2, x, y)
}

// Length returns the Euclidean length of the line.
func (l *Line) Length() float32 {
	xx, yy := l.x2-l.x1, l.y2-l.y1
	return math32.Sqrt(xx*xx + yy*yy)
}

func (l *Line) GridCorners() []geometry.Point2D {
	if !l.HasData() {
		return nil
	}
	padding := gridPaddingFactor * float32(ScalingValue(l.transform))
	return segmentGrid(l.x1, l.y1, l.x2, l.y2, padding, 1)
}

func (l *Line) Bounds() geometry.Rect { return l.rect() }

func (l *Line) Stat(name string) string {
	switch name {
	case StatCoordinates:
		return formatSpan(l.x1, l.y1, l.x2, l.y2)
	case StatLength:
		return formatFloat(l.Length())
	}
	return NoSuchStat
}

func (l *Line) Statistics() string {
	return "Line " + StatCoordinates + " = " + formatSpan(l.x1, l.y1, l.x2, l.y2) + "\n" +
		StatLength + " = " + formatFloat(l.Length())
}

// Data returns the segment as a two-point strip.
func (l *Line) Data() *Layer {
	if !l.HasData() {
		return nil
	}
	return singleLayer(Polygon{
		Points: []geometry.Point2D{{X: l.x1, Y: l.y1}, {X: l.x2, Y: l.y2}},
		Color:  l.renderColor(),
	})
}

func segmentDistance(x1, y1, x2, y2 float32, x, y float64) float64 {
	return geometry.SegmentDistance(
		geometry.Point2D{X: x1, Y: y1},
		geometry.Point2D{X: x2, Y: y2},
		geometry.Point2D{X: float32(x), Y: float32(y)},
		true,
	)
}

// padCorners returns the two grid corners beyond (x2, y2), extended by
// padding along the segment and by padding*widen across it.
func padCorners(x1, y1, x2, y2, padding, widen float32) [2]geometry.Point2D {
	xx := float64(x2 - x1)
	yy := float64(y2 - y1)
	mult := float64(padding) / math.Sqrt(xx*xx+yy*yy)
	qx := float32(mult * xx)
	qy := float32(mult * yy)
	return [2]geometry.Point2D{
		{X: x2 + qx + widen*qy, Y: y2 + qy - widen*qx},
		{X: x2 + qx - widen*qy, Y: y2 + qy + widen*qx},
	}
}

// segmentGrid pads both ends of a segment. widen2 applies at the (x2, y2)
// end; the other end uses no widening.
func segmentGrid(x1, y1, x2, y2, padding, widen2 float32) []geometry.Point2D {
	c1 := padCorners(x1, y1, x2, y2, padding, widen2)
	c2 := padCorners(x2, y2, x1, y1, padding, 1)
	return []geometry.Point2D{c1[0], c1[1], c2[1], c2[0]}
}
