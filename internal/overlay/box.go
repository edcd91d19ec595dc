package overlay

import (
	"math"

	"visbio-overlays/pkg/geometry"
)

// Box is an axis-aligned rectangle spanned by two opposite corners given in
// drag order.
type Box struct {
	base
}

// NewBox creates a box with corners (x1, y1) and (x2, y2).
func NewBox(t Transform, x1, y1, x2, y2 float32) *Box {
	return &Box{base: newBase(t, x1, y1, x2, y2)}
}

func (b *Box) Kind() Kind         { return KindBox }
func (b *Box) HasEndpoint2() bool { return true }
func (b *Box) CanBeFilled() bool  { return true }

// HasData reports whether the box has nonzero width and height.
func (b *Box) HasData() bool {
	return b.x1 != b.x2 && b.y1 != b.y2
}

// Distance returns the distance to the outline, or to the area when the box
// is filled.
func (b *Box) Distance(x, y float64) float64 {
	if b.filled {
		return b.boxDistance(x, y)
	}
	ring := b.rect().Ring()
	d := math.Inf(1)
	for i := 0; i < len(ring)-1; i++ {
		d = math.Min(d, segmentDistance(ring[i].X, ring[i].Y, ring[i+1].X, ring[i+1].Y, x, y))
	}
	return d
}

func (b *Box) GridCorners() []geometry.Point2D { return b.rect().Corners() }
func (b *Box) Bounds() geometry.Rect           { return b.rect() }

func (b *Box) Stat(name string) string {
	s := b.measure()
	switch name {
	case StatCoordinates:
		return formatSpan(b.x1, b.y1, b.x2, b.y2)
	case StatCenter:
		return formatPoint(s.centerX, s.centerY)
	case StatWidth:
		return formatFloat(s.width)
	case StatHeight:
		return formatFloat(s.height)
	case StatArea:
		return formatFloat(s.width * s.height)
	case StatPerimeter:
		return formatFloat(s.width + s.width + s.height + s.height)
	}
	return NoSuchStat
}

func (b *Box) Statistics() string {
	s := b.measure()
	return "Box " + StatCoordinates + " = " + formatSpan(b.x1, b.y1, b.x2, b.y2) + "\n" +
		StatCenter + " = " + formatPoint(s.centerX, s.centerY) + "\n" +
		StatWidth + " = " + formatFloat(s.width) + "; " +
		StatHeight + " = " + formatFloat(s.height) + "\n" +
		StatArea + " = " + formatFloat(s.width*s.height) + "; " +
		StatPerimeter + " = " + formatFloat(s.width+s.width+s.height+s.height)
}

// Data returns the outline as a closed ring, filled when requested.
func (b *Box) Data() *Layer {
	if !b.HasData() {
		return nil
	}
	ring := []geometry.Point2D{
		{X: b.x1, Y: b.y1}, {X: b.x2, Y: b.y1}, {X: b.x2, Y: b.y2}, {X: b.x1, Y: b.y2}, {X: b.x1, Y: b.y1},
	}
	return singleLayer(Polygon{Points: ring, Filled: b.filled, Color: b.renderColor()})
}

type extent struct {
	width, height    float32
	centerX, centerY float32
}

// measure returns the unsigned size and center of the endpoint rectangle.
func (b *base) measure() extent {
	r := b.rect()
	c := r.Center()
	return extent{width: r.Width, height: r.Height, centerX: c.X, centerY: c.Y}
}
