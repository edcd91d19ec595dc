package selection

import (
	polyclip "github.com/akavel/polyclip-go"

	"visbio-overlays/internal/overlay"
	"visbio-overlays/pkg/colorutil"
	"visbio-overlays/pkg/geometry"
)

// paint is the drawing state shared by polygons that may be unioned.
type paint struct {
	color  colorutil.RGBA
	filled bool
}

// Merge unions overlapping filled polygons of the same color into outer
// contours. Filled polygons of different colors are unioned separately.
// Stroked polygons pass through unchanged. Groups keep the order of their
// first polygon. Filled polygons with fewer than three vertices are
// dropped. A nil or empty layer gives nil.
func Merge(l *overlay.Layer) *overlay.Layer {
	if l.Len() == 0 {
		return nil
	}

	var order []paint
	groups := make(map[paint][]overlay.Polygon)
	for _, p := range l.Polygons {
		key := paint{color: p.Color, filled: p.Filled}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], p)
	}

	out := &overlay.Layer{}
	for _, key := range order {
		if !key.filled {
			for _, p := range groups[key] {
				out.Add(p)
			}
			continue
		}
		for _, c := range union(groups[key]) {
			out.Add(overlay.Polygon{Points: fromContour(c), Filled: true, Color: key.color})
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// union returns the outer contours of the polygons' union.
func union(polys []overlay.Polygon) polyclip.Polygon {
	var u polyclip.Polygon
	for _, p := range polys {
		c := toContour(p.Points)
		if len(c) < 3 {
			continue
		}
		if u == nil {
			u = polyclip.Polygon{c}
			continue
		}
		u = u.Construct(polyclip.UNION, polyclip.Polygon{c})
	}

	var result polyclip.Polygon
	for _, c := range u {
		if len(c) >= 3 {
			result = append(result, c)
		}
	}
	return result
}

// toContour drops the closing vertex of a ring.
func toContour(pts []geometry.Point2D) polyclip.Contour {
	if n := len(pts); n > 1 && geometry.AreColocational(pts[0], pts[n-1]) {
		pts = pts[:n-1]
	}
	c := make(polyclip.Contour, len(pts))
	for i, p := range pts {
		c[i] = polyclip.Point{X: float64(p.X), Y: float64(p.Y)}
	}
	return c
}

// fromContour closes a contour back into a ring.
func fromContour(c polyclip.Contour) []geometry.Point2D {
	pts := make([]geometry.Point2D, 0, len(c)+1)
	for _, p := range c {
		pts = append(pts, geometry.Point2D{X: float32(p.X), Y: float32(p.Y)})
	}
	return append(pts, pts[0])
}
