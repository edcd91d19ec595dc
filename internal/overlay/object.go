package overlay

import (
	"math"

	"visbio-overlays/pkg/colorutil"
	"visbio-overlays/pkg/geometry"
)

// GlowColor replaces an overlay's own color in its data while it is
// selected.
var GlowColor = colorutil.FromColor(colorutil.Yellow)

// Object is the capability set shared by every overlay variant. The set of
// variants is closed: only types in this package implement it.
type Object interface {
	// Kind returns the variant tag.
	Kind() Kind

	// HasData reports whether the shape has nonzero extent. Shapes without
	// data have no render payload and no selection layer.
	HasData() bool

	// Distance returns the shortest distance from (x, y) to the visible
	// geometry of the shape.
	Distance(x, y float64) float64

	// GridCorners returns the four selection grid corners in top-left,
	// top-right, bottom-left, bottom-right order, computed from the current
	// coordinates.
	GridCorners() []geometry.Point2D

	// Stat returns a single named statistic.
	Stat(name string) string

	// Statistics returns every statistic as a multi-line summary.
	Statistics() string

	// Bounds returns the axis-aligned extent of the shape.
	Bounds() geometry.Rect

	// Data returns the shape's own render payload, or nil without data.
	Data() *Layer

	Coords() (x, y float32)
	Coords2() (x, y float32)
	SetCoords(x, y float32)
	SetCoords2(x, y float32)

	Color() colorutil.RGBA
	SetColor(c colorutil.RGBA)
	Filled() bool
	SetFilled(filled bool)
	Group() string
	SetGroup(group string)
	Notes() string
	SetNotes(notes string)
	Selected() bool
	SetSelected(selected bool)
	Drawing() bool
	SetDrawing(drawing bool)

	HasEndpoint() bool
	HasEndpoint2() bool
	CanBeFilled() bool
	Transform() Transform

	attrs() *base
}

// base holds the attributes common to every overlay.
type base struct {
	transform Transform

	x1, y1 float32
	x2, y2 float32

	color    colorutil.RGBA
	filled   bool
	group    string
	notes    string
	selected bool
	drawing  bool
}

func newBase(t Transform, x1, y1, x2, y2 float32) base {
	if t == nil {
		t = DefaultTransform()
	}
	return base{
		transform: t,
		x1:        x1,
		y1:        y1,
		x2:        x2,
		y2:        y2,
		color:     colorutil.FromColor(colorutil.White),
		selected:  true,
	}
}

func (b *base) attrs() *base { return b }

// Transform returns the display transform the shape sizes itself against.
func (b *base) Transform() Transform { return b.transform }

// Coords returns the primary anchor point.
func (b *base) Coords() (x, y float32) { return b.x1, b.y1 }

// Coords2 returns the secondary point.
func (b *base) Coords2() (x, y float32) { return b.x2, b.y2 }

// SetCoords moves the primary anchor point.
func (b *base) SetCoords(x, y float32) { b.x1, b.y1 = x, y }

// SetCoords2 moves the secondary point.
func (b *base) SetCoords2(x, y float32) { b.x2, b.y2 = x, y }

func (b *base) Color() colorutil.RGBA     { return b.color }
func (b *base) SetColor(c colorutil.RGBA) { b.color = c }
func (b *base) Filled() bool              { return b.filled }
func (b *base) Group() string             { return b.group }
func (b *base) SetGroup(group string)     { b.group = group }
func (b *base) Notes() string             { return b.notes }
func (b *base) SetNotes(notes string)     { b.notes = notes }
func (b *base) Selected() bool            { return b.selected }
func (b *base) SetSelected(selected bool) { b.selected = selected }
func (b *base) Drawing() bool             { return b.drawing }
func (b *base) SetDrawing(drawing bool)   { b.drawing = drawing }
func (b *base) HasEndpoint() bool         { return true }
func (b *base) HasEndpoint2() bool        { return false }
func (b *base) CanBeFilled() bool         { return false }
func (b *base) SetFilled(filled bool)     { b.filled = filled }

// renderColor is the color used for the shape's own data.
func (b *base) renderColor() colorutil.RGBA {
	if b.selected {
		return GlowColor.WithAlpha(1)
	}
	return b.color.WithAlpha(1)
}

// boxDistance is the distance from (x, y) to the filled rectangle spanned
// by the two endpoints; zero inside.
func (b *base) boxDistance(x, y float64) float64 {
	x1, y1, x2, y2 := float64(b.x1), float64(b.y1), float64(b.x2), float64(b.y2)
	var xdist, ydist float64
	if x < x1 && x < x2 {
		xdist = min(x1, x2) - x
	} else if x > x1 && x > x2 {
		xdist = x - max(x1, x2)
	}
	if y < y1 && y < y2 {
		ydist = min(y1, y2) - y
	} else if y > y1 && y > y2 {
		ydist = y - max(y1, y2)
	}
	return math.Hypot(xdist, ydist)
}

// rect returns the order-normalized rectangle spanned by the endpoints.
func (b *base) rect() geometry.Rect {
	return geometry.RectFromCorners(b.x1, b.y1, b.x2, b.y2)
}
