package selection

import (
	"math"

	"github.com/chewxy/math32"

	"visbio-overlays/internal/overlay"
	"visbio-overlays/pkg/colorutil"
	"visbio-overlays/pkg/geometry"
)

// Generator builds selection layers for overlays.
type Generator struct {
	Style Style
}

// NewGenerator creates a generator with the given style.
func NewGenerator(s Style) *Generator {
	return &Generator{Style: s}
}

// Layer returns the glow or outline layer of obj. scale is the display
// multiplier in domain units per pixel. Shapes without data yield nil.
func (g *Generator) Layer(obj overlay.Object, scale float32, mode Mode) *overlay.Layer {
	if mode == ModeOutline {
		return g.Outline(obj, scale)
	}
	return g.Glow(obj, scale)
}

// Glow returns the translucent halo for obj.
func (g *Generator) Glow(obj overlay.Object, scale float32) *overlay.Layer {
	if obj == nil || !obj.HasData() {
		return nil
	}
	delta := g.Style.GlowWidth * scale

	switch o := obj.(type) {
	case *overlay.Line:
		return g.fill(lineGlow(o, delta))
	case *overlay.Arrow:
		return g.fill(arrowGlow(o, delta))
	case *overlay.Box:
		return g.fill(boxGlow(o, delta))
	case *overlay.Oval:
		return g.fill(ovalGlow(o, delta))
	case *overlay.Marker:
		return g.fill(markerGlow(o, delta)...)
	case *overlay.Text:
		return g.fill(g.outlineRing(o, scale))
	case *overlay.NodedObject:
		return g.nodedGlow(o, delta)
	}
	return nil
}

// Outline returns the opaque rectangle around obj. Text gets extra padding.
func (g *Generator) Outline(obj overlay.Object, scale float32) *overlay.Layer {
	if obj == nil || !obj.HasData() {
		return nil
	}
	return &overlay.Layer{Polygons: []overlay.Polygon{{
		Points: g.outlineRing(obj, scale),
		Color:  g.Style.outline(),
	}}}
}

// fill wraps rings into a filled glow layer.
func (g *Generator) fill(rings ...[]geometry.Point2D) *overlay.Layer {
	return g.fillColor(g.Style.glow(), rings...)
}

func (g *Generator) fillColor(c colorutil.RGBA, rings ...[]geometry.Point2D) *overlay.Layer {
	l := &overlay.Layer{}
	for _, r := range rings {
		l.Add(overlay.Polygon{Points: r, Filled: true, Color: c})
	}
	return l
}

// outlineRing pads the endpoint rectangle outward, whichever way round the
// endpoints were given.
func (g *Generator) outlineRing(obj overlay.Object, scale float32) []geometry.Point2D {
	x1, y1 := obj.Coords()
	x2, y2 := obj.Coords2()

	var scl float32
	if obj.Kind() == overlay.KindText {
		scl = g.Style.TextPadding
	}
	padding := g.Style.GlowWidth * (scl + scale)

	xx1, xx2 := x1-padding, x2+padding
	if x2 < x1 {
		xx1, xx2 = x1+padding, x2-padding
	}
	yy1, yy2 := y1-padding, y2+padding
	if y2 < y1 {
		yy1, yy2 = y1+padding, y2-padding
	}
	return []geometry.Point2D{{X: xx1, Y: yy1}, {X: xx2, Y: yy1}, {X: xx2, Y: yy2}, {X: xx1, Y: yy2}, {X: xx1, Y: yy1}}
}

func quad(a, b, c, d geometry.Point2D) []geometry.Point2D {
	return []geometry.Point2D{a, b, c, d, a}
}

// lineGlow pads the segment by delta on every side.
func lineGlow(l *overlay.Line, delta float32) []geometry.Point2D {
	x1, y1 := l.Coords()
	x2, y2 := l.Coords2()
	x, y := x2-x1, y2-y1
	ratio := delta / math32.Sqrt(x*x+y*y)
	dx1, dy1 := ratio*y, ratio*x
	dx2, dy2 := ratio*x, ratio*y

	c1 := geometry.Point2D{X: x1 - dx1 - dx2, Y: y1 + dy1 - dy2}
	c2 := geometry.Point2D{X: x2 - dx1 + dx2, Y: y2 + dy1 + dy2}
	c3 := geometry.Point2D{X: x1 + dx1 - dx2, Y: y1 - dy1 - dy2}
	c4 := geometry.Point2D{X: x2 + dx1 + dx2, Y: y2 - dy1 + dy2}
	return quad(c1, c2, c4, c3)
}

// arrowGlow surrounds the wedge with a trapezoid whose sides stay delta
// away from the wedge's sides.
func arrowGlow(a *overlay.Arrow, delta float32) []geometry.Point2D {
	x1, y1 := a.Coords()
	x2, y2 := a.Coords2()
	xx, yy := float64(x2-x1), float64(y2-y1)
	b := math.Hypot(xx, yy)

	// Basis along the shaft (tip to tail) and across it.
	ux, uy := xx/b, yy/b
	vx, vy := -yy/b, xx/b

	half := overlay.ArrowAspect * b
	hyp := math.Hypot(half, b)
	d := float64(delta)

	tipSide := d * hyp / b
	tailSide := half + d*(half+hyp)/b

	pt := func(x, y float32, along, across float64) geometry.Point2D {
		return geometry.Point2D{
			X: float32(float64(x) + ux*along + vx*across),
			Y: float32(float64(y) + uy*along + vy*across),
		}
	}
	c1 := pt(x1, y1, -d, tipSide)
	c2 := pt(x2, y2, d, tailSide)
	c3 := pt(x2, y2, d, -tailSide)
	c4 := pt(x1, y1, -d, -tipSide)
	return quad(c1, c2, c3, c4)
}

func boxGlow(b *overlay.Box, delta float32) []geometry.Point2D {
	return b.Bounds().Expand(delta).Ring()
}

func ovalGlow(o *overlay.Oval, delta float32) []geometry.Point2D {
	cx, cy := o.Center()
	rx, ry := o.Radii()
	return geometry.Ellipse(cx, cy, rx+delta, ry+delta)
}

// markerGlow covers the cross with one box when the glow is wide relative to
// the marker, otherwise with three quads: left arm, vertical bar, right arm.
func markerGlow(m *overlay.Marker, delta float32) [][]geometry.Point2D {
	x, y := m.Coords()
	size := m.Width()
	xx1, xx2 := x-size-delta, x+size+delta
	yy1, yy2 := y+size+delta, y-size-delta

	if 2*delta > size {
		return [][]geometry.Point2D{geometry.RectFromCorners(xx1, yy1, xx2, yy2).Ring()}
	}
	return [][]geometry.Point2D{
		geometry.RectFromCorners(xx1, y-delta, x-delta, y+delta).Ring(),
		geometry.RectFromCorners(x-delta, yy2, x+delta, yy1).Ring(),
		geometry.RectFromCorners(x+delta, y-delta, xx2, y+delta).Ring(),
	}
}
