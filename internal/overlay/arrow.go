package overlay

import (
	"github.com/chewxy/math32"

	"visbio-overlays/pkg/geometry"
)

// ArrowAspect is the ratio of the arrow's tail half-width to its length.
const ArrowAspect = 0.1

// Arrow is a wedge with its tip at (x1, y1) and its wide tail at (x2, y2).
type Arrow struct {
	base
}

// NewArrow creates an arrow pointing at (x1, y1) from (x2, y2).
func NewArrow(t Transform, x1, y1, x2, y2 float32) *Arrow {
	return &Arrow{base: newBase(t, x1, y1, x2, y2)}
}

func (a *Arrow) Kind() Kind         { return KindArrow }
func (a *Arrow) HasEndpoint2() bool { return true }
func (a *Arrow) CanBeFilled() bool  { return true }

// HasData reports whether the endpoints differ.
func (a *Arrow) HasData() bool {
	return a.x1 != a.x2 || a.y1 != a.y2
}

// Distance returns the distance from (x, y) to the arrow's shaft.
func (a *Arrow) Distance(x, y float64) float64 {
	return segmentDistance(a.x1, a.y1, a.x2, a.y2, x, y)
}

// Length returns the distance from tip to tail.
func (a *Arrow) Length() float32 {
	xx, yy := a.x2-a.x1, a.y2-a.y1
	return math32.Sqrt(xx*xx + yy*yy)
}

// Angle returns the arrow direction in degrees, in [0, 360).
func (a *Arrow) Angle() float32 {
	xx, yy := a.x2-a.x1, a.y2-a.y1
	angle := 180 * math32.Atan(xx/yy) / math32.Pi
	if yy < 0 {
		angle += 180
	}
	if angle < 0 {
		angle += 360
	}
	return angle
}

// GridCorners pads the shaft like a line, widened at the tail so the grid
// clears the wedge.
func (a *Arrow) GridCorners() []geometry.Point2D {
	if !a.HasData() {
		return nil
	}
	padding := gridPaddingFactor * float32(ScalingValue(a.transform))
	widen := float32(1)
	if padding > 0 {
		widen += ArrowAspect * a.Length() / padding
	}
	return segmentGrid(a.x1, a.y1, a.x2, a.y2, padding, widen)
}

func (a *Arrow) Bounds() geometry.Rect {
	return geometry.BoundingBox(a.wedge())
}

func (a *Arrow) Stat(name string) string {
	switch name {
	case StatTip:
		return formatPoint(a.x1, a.y1)
	case StatAngle:
		return formatFloat(a.Angle())
	case StatLength:
		return formatFloat(a.Length())
	}
	return NoSuchStat
}

func (a *Arrow) Statistics() string {
	return "Arrow " + StatTip + " = " + formatPoint(a.x1, a.y1) + "\n" +
		StatAngle + " = " + formatFloat(a.Angle()) + "; " +
		StatLength + " = " + formatFloat(a.Length())
}

// Data returns the wedge as a closed triangle.
func (a *Arrow) Data() *Layer {
	if !a.HasData() {
		return nil
	}
	return singleLayer(Polygon{
		Points: a.wedge(),
		Filled: a.filled,
		Color:  a.renderColor(),
	})
}

// wedge returns tip, both tail corners and the tip again.
func (a *Arrow) wedge() []geometry.Point2D {
	qx := ArrowAspect * (a.x2 - a.x1)
	qy := ArrowAspect * (a.y2 - a.y1)
	return []geometry.Point2D{
		{X: a.x1, Y: a.y1},
		{X: a.x2 - qy, Y: a.y2 + qx},
		{X: a.x2 + qy, Y: a.y2 - qx},
		{X: a.x1, Y: a.y1},
	}
}
