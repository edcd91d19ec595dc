package overlay

import (
	"visbio-overlays/pkg/geometry"
)

// Marker is a cross centered on a single point.
type Marker struct {
	base
}

// NewMarker creates a marker at (x, y).
func NewMarker(t Transform, x, y float32) *Marker {
	return &Marker{base: newBase(t, x, y, x, y)}
}

func (m *Marker) Kind() Kind    { return KindMarker }
func (m *Marker) HasData() bool { return true }

// SetCoords moves the marker; both endpoints follow.
func (m *Marker) SetCoords(x, y float32) {
	m.x1, m.y1 = x, y
	m.x2, m.y2 = x, y
}

// SetCoords2 is a no-op: markers have a single point.
func (m *Marker) SetCoords2(x, y float32) {}

// Width returns the half-length of each cross arm.
func (m *Marker) Width() float32 {
	return gridPaddingFactor * float32(ScalingValue(m.transform))
}

// Distance returns the distance to the marker point.
func (m *Marker) Distance(x, y float64) float64 {
	return geometry.PointDistance(geometry.Point2D{X: m.x1, Y: m.y1}, geometry.Point2D{X: float32(x), Y: float32(y)})
}

func (m *Marker) Bounds() geometry.Rect {
	w := m.Width()
	return geometry.NewRect(m.x1-w, m.y1-w, 2*w, 2*w)
}

func (m *Marker) GridCorners() []geometry.Point2D { return m.Bounds().Corners() }

func (m *Marker) Stat(name string) string {
	if name == StatCoordinates {
		return formatPoint(m.x1, m.y1)
	}
	return NoSuchStat
}

func (m *Marker) Statistics() string {
	return "Marker " + StatCoordinates + " = " + formatPoint(m.x1, m.y1)
}

// Data returns the cross as a single strip: the vertical arm, back to the
// center, then the horizontal arm.
func (m *Marker) Data() *Layer {
	w := m.Width()
	x, y := m.x1, m.y1
	return singleLayer(Polygon{
		Points: []geometry.Point2D{
			{X: x, Y: y + w}, {X: x, Y: y - w}, {X: x, Y: y}, {X: x + w, Y: y}, {X: x - w, Y: y},
		},
		Color: m.renderColor(),
	})
}
