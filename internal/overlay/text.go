package overlay

import (
	"golang.org/x/image/font"

	"visbio-overlays/pkg/geometry"
)

// Empirical ratios between the scaling values and label size in domain
// units per font pixel.
const (
	textWidthRatio  = 318
	textHeightRatio = 640
)

// Text is a label anchored at (x1, y1). Its second point is derived from the
// font metrics and is not directly settable.
type Text struct {
	base
	text string
}

// NewText creates a label at (x, y).
func NewText(t Transform, x, y float32, text string) *Text {
	o := &Text{base: newBase(t, x, y, x, y), text: text}
	o.computeTextBounds()
	return o
}

func (o *Text) Kind() Kind    { return KindText }
func (o *Text) HasData() bool { return true }

// Text returns the label string.
func (o *Text) Text() string { return o.text }

// SetText replaces the label and recomputes its extent.
func (o *Text) SetText(text string) {
	o.text = text
	o.computeTextBounds()
}

// SetCoords moves the anchor and recomputes the extent.
func (o *Text) SetCoords(x, y float32) {
	o.x1, o.y1 = x, y
	o.computeTextBounds()
}

// SetCoords2 is a no-op: the far corner follows the text.
func (o *Text) SetCoords2(x, y float32) {}

// computeTextBounds estimates the far corner from the label's pixel size.
func (o *Text) computeTextBounds() {
	face := o.transform.FontFace()
	mw := float32(o.transform.ScalingValueX()) / textWidthRatio
	mh := float32(o.transform.ScalingValueY()) / textHeightRatio
	w := font.MeasureString(face, o.text).Ceil()
	h := face.Metrics().Height.Ceil()
	o.x2 = o.x1 + mw*float32(w)
	o.y2 = o.y1 + mh*float32(h)
}

// Distance returns the distance to the label's rectangle.
func (o *Text) Distance(x, y float64) float64 {
	return o.boxDistance(x, y)
}

func (o *Text) Bounds() geometry.Rect           { return o.rect() }
func (o *Text) GridCorners() []geometry.Point2D { return o.rect().Corners() }

func (o *Text) Stat(name string) string {
	if name == StatCoordinates {
		return formatPoint(o.x1, o.y1)
	}
	return NoSuchStat
}

func (o *Text) Statistics() string {
	return "Text " + StatCoordinates + " = " + formatPoint(o.x1, o.y1)
}

// Data returns the anchor point labelled with the text.
func (o *Text) Data() *Layer {
	return singleLayer(Polygon{
		Points: []geometry.Point2D{{X: o.x1, Y: o.y1}},
		Label:  o.text,
		Color:  o.renderColor(),
	})
}
