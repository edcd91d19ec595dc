package overlay

import (
	"math"

	"github.com/chewxy/math32"

	"visbio-overlays/pkg/geometry"
)

// Oval is the ellipse inscribed in the rectangle spanned by two corners.
type Oval struct {
	base
}

// NewOval creates an oval inscribed in (x1, y1)-(x2, y2).
func NewOval(t Transform, x1, y1, x2, y2 float32) *Oval {
	return &Oval{base: newBase(t, x1, y1, x2, y2)}
}

func (o *Oval) Kind() Kind         { return KindOval }
func (o *Oval) HasEndpoint2() bool { return true }
func (o *Oval) CanBeFilled() bool  { return true }

// HasData reports whether the oval has nonzero width and height.
func (o *Oval) HasData() bool {
	return o.x1 != o.x2 && o.y1 != o.y2
}

// Center returns the midpoint of the two corners.
func (o *Oval) Center() (cx, cy float32) {
	return (o.x1 + o.x2) / 2, (o.y1 + o.y2) / 2
}

// Radii returns the unsigned half-width and half-height.
func (o *Oval) Radii() (rx, ry float32) {
	cx, cy := o.Center()
	return math32.Abs(cx - o.x1), math32.Abs(cy - o.y1)
}

// Ring traces the ellipse as a closed ring.
func (o *Oval) Ring() []geometry.Point2D {
	cx, cy := o.Center()
	rx, ry := o.Radii()
	return geometry.Ellipse(cx, cy, rx, ry)
}

// Distance returns the distance to the traced outline. A filled oval
// reports zero for points inside it.
func (o *Oval) Distance(x, y float64) float64 {
	if o.filled && o.HasData() {
		cx, cy := o.Center()
		rx, ry := o.Radii()
		dx := (x - float64(cx)) / float64(rx)
		dy := (y - float64(cy)) / float64(ry)
		if dx*dx+dy*dy <= 1 {
			return 0
		}
	}
	ring := o.Ring()
	d := math.Inf(1)
	for i := 0; i < len(ring)-1; i++ {
		d = math.Min(d, segmentDistance(ring[i].X, ring[i].Y, ring[i+1].X, ring[i+1].Y, x, y))
	}
	return d
}

func (o *Oval) GridCorners() []geometry.Point2D { return o.rect().Corners() }
func (o *Oval) Bounds() geometry.Rect           { return o.rect() }

type ovalStats struct {
	extent
	radiusX, radiusY float32
	major, minor     float32
	area             float32
	eccentricity     float32
	circumference    float32
}

func (o *Oval) measureOval() ovalStats {
	s := ovalStats{extent: o.measure()}
	s.radiusX, s.radiusY = s.width/2, s.height/2
	s.major, s.minor = s.radiusY, s.radiusX
	if s.radiusX > s.radiusY {
		s.major, s.minor = s.radiusX, s.radiusY
	}
	s.eccentricity = math32.Sqrt(1 - (s.minor*s.minor)/(s.major*s.major))
	s.area = math32.Pi * s.major * s.minor

	// Ramanujan's approximation.
	mm := (s.major - s.minor) / (s.major + s.minor)
	q := 3 * mm * mm
	s.circumference = math32.Pi * (s.major + s.minor) * (1 + q/(10+math32.Sqrt(4-q)))
	return s
}

func (o *Oval) Stat(name string) string {
	s := o.measureOval()
	switch name {
	case StatCoordinates:
		return formatSpan(o.x1, o.y1, o.x2, o.y2)
	case StatCenter:
		return formatPoint(s.centerX, s.centerY)
	case StatRadius:
		return formatPoint(s.radiusX, s.radiusY)
	case StatMajorAxis:
		return formatFloat(s.major)
	case StatMinorAxis:
		return formatFloat(s.minor)
	case StatArea:
		return formatFloat(s.area)
	case StatEccentricity:
		return formatFloat(s.eccentricity)
	case StatCircumference:
		return formatFloat(s.circumference)
	}
	return NoSuchStat
}

func (o *Oval) Statistics() string {
	s := o.measureOval()
	return "Oval " + StatCoordinates + " = " + formatPoint(o.x1, o.y1) + "\n" +
		StatCenter + " = " + formatPoint(s.centerX, s.centerY) + "\n" +
		StatRadius + " = " + formatPoint(s.radiusX, s.radiusY) + "\n" +
		StatMajorAxis + " = " + formatFloat(s.major) + "; " +
		StatMinorAxis + " = " + formatFloat(s.minor) + "\n" +
		StatArea + " = " + formatFloat(s.area) + "; " +
		StatEccentricity + " = " + formatFloat(s.eccentricity) + "\n" +
		StatCircumference + " = " + formatFloat(s.circumference)
}

// Data returns the traced ellipse as a closed ring.
func (o *Oval) Data() *Layer {
	if !o.HasData() {
		return nil
	}
	return singleLayer(Polygon{Points: o.Ring(), Filled: o.filled, Color: o.renderColor()})
}
