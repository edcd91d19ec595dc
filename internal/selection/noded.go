package selection

import (
	"github.com/chewxy/math32"

	"visbio-overlays/internal/overlay"
	"visbio-overlays/pkg/geometry"
)

// minBisectorSin bounds the miter offset width/sin at sharp turns.
const minBisectorSin = 0.1

// nodedGlow draws one quad per segment and, when a node is highlighted, a
// circle of twice the glow width around it.
func (g *Generator) nodedGlow(o *overlay.NodedObject, delta float32) *overlay.Layer {
	nodes := o.Nodes()

	var quads [][]geometry.Point2D
	if g.Style.Join == JoinBisector {
		quads = bisectorQuads(nodes, delta)
	} else {
		quads = segmentQuads(nodes, delta)
	}
	l := g.fill(quads...)

	if i, ok := o.HighlightedNode(); ok {
		c := nodes[i]
		rad := 2 * delta
		l.Add(overlay.Polygon{
			Points: geometry.Ellipse(c.X, c.Y, rad, rad),
			Filled: true,
			Color:  g.Style.highlight(),
		})
	}
	return l
}

// segmentQuads pads every non-degenerate segment independently. Quads of
// adjacent segments may gap or overlap at interior nodes.
func segmentQuads(nodes []geometry.Point2D, width float32) [][]geometry.Point2D {
	quads := make([][]geometry.Point2D, 0, len(nodes))
	for i := 0; i+1 < len(nodes); i++ {
		if geometry.AreColocational(nodes[i], nodes[i+1]) {
			continue
		}
		quads = append(quads, perpendicularQuad(nodes[i], nodes[i+1], width))
	}
	return quads
}

func perpendicularQuad(p1, p2 geometry.Point2D, width float32) []geometry.Point2D {
	perp := geometry.PointFromSlice(geometry.RightPerpendicular2D(p2.Slice(), p1.Slice())).Scale(width)
	return quad(p1.Add(perp), p2.Add(perp), p2.Sub(perp), p1.Sub(perp))
}

// bisectorQuads computes a right and a left offset point for every node and
// joins consecutive pairs. Interior points lie on the angle bisector so
// neighbouring quads share an edge. When the curve doubles back on itself
// the two sides swap.
func bisectorQuads(nodes []geometry.Point2D, width float32) [][]geometry.Point2D {
	n := len(nodes)
	if n < 2 {
		return nil
	}
	right := make([]geometry.Point2D, n)
	left := make([]geometry.Point2D, n)
	flipped := false

	offset := func(p geometry.Point2D, dir []float32, dist float32) (geometry.Point2D, geometry.Point2D) {
		v := geometry.PointFromSlice(dir).Scale(dist)
		a, b := p.Add(v), p.Sub(v)
		if flipped {
			return b, a
		}
		return a, b
	}

	for i := 0; i < n; i++ {
		switch {
		case i == 0:
			perp := geometry.RightPerpendicular2D(nodes[1].Slice(), nodes[0].Slice())
			right[i], left[i] = offset(nodes[0], perp, width)

		case i == n-1:
			p1, p2 := nodes[i-1].Slice(), nodes[i].Slice()
			perp := geometry.RightPerpendicular2D(p2, p1)
			if n >= 3 && doublesBack(nodes[i-2].Slice(), p1, p2) {
				flipped = !flipped
				perp = geometry.RightPerpendicular2D(p1, p2)
			}
			right[i], left[i] = offset(nodes[i], perp, width)

		default:
			p1, p2, p3 := nodes[i-1].Slice(), nodes[i].Slice(), nodes[i+1].Slice()
			if doublesBack(p1, p2, p3) {
				perp := geometry.RightPerpendicular2D(p2, p1)
				right[i], left[i] = offset(nodes[i], perp, width)
				flipped = !flipped
				continue
			}
			bisector := geometry.RightBisector2D(p1, p2, p3)
			if bisector == nil {
				right[i], left[i] = nodes[i], nodes[i]
				continue
			}
			sin := math32.Abs(geometry.Cross2D(bisector, geometry.Unit(geometry.Vector(p2, p1))))
			if !(sin >= minBisectorSin) {
				sin = minBisectorSin
			}
			right[i], left[i] = offset(nodes[i], bisector, width/sin)
		}
	}

	quads := make([][]geometry.Point2D, 0, n-1)
	for i := 0; i+1 < n; i++ {
		if geometry.AreColocational(nodes[i], nodes[i+1]) {
			continue
		}
		q := quad(right[i], right[i+1], left[i+1], left[i])
		if !simple(q) {
			// Uncross a bow tie by swapping the left pair.
			q = quad(right[i], right[i+1], left[i], left[i+1])
		}
		if !simple(q) {
			q = perpendicularQuad(nodes[i], nodes[i+1], width)
		}
		quads = append(quads, q)
	}
	return quads
}

// doublesBack reports whether p1->p2 and p2->p3 point in exactly opposite
// directions.
func doublesBack(p1, p2, p3 []float32) bool {
	v1 := geometry.Unit(geometry.Vector(p2, p1))
	v2 := geometry.Unit(geometry.Vector(p3, p2))
	return geometry.AreOpposite(v1, v2)
}

// simple reports whether a quad ring is finite and free of crossing edges.
// Convex quads skip the pairwise edge test.
func simple(q []geometry.Point2D) bool {
	return finite(q) && (geometry.IsConvex(q) || !geometry.IsSelfIntersecting(q))
}

func finite(pts []geometry.Point2D) bool {
	for _, p := range pts {
		if math32.IsNaN(p.X) || math32.IsNaN(p.Y) || math32.IsInf(p.X, 0) || math32.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
