package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func toVec(p Point2D) r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

// Projection returns the orthogonal projection of p onto the line through a
// and b, together with the projection parameter t along a -> b. When clamp is
// set the result is restricted to the segment. A degenerate segment projects
// every point onto a.
func Projection(a, b, p Point2D, clamp bool) (r2.Vec, float64) {
	va, vb, vp := toVec(a), toVec(b), toVec(p)
	d := r2.Sub(vb, va)
	den := r2.Dot(d, d)
	if den == 0 {
		return va, 0
	}
	t := r2.Dot(r2.Sub(vp, va), d) / den
	if clamp {
		t = math.Max(0, math.Min(1, t))
	}
	return r2.Add(va, r2.Scale(t, d)), t
}

// SegmentDistance returns the shortest distance from p to the line through
// a and b, or to the segment a-b when clamp is set.
func SegmentDistance(a, b, p Point2D, clamp bool) float64 {
	q, _ := Projection(a, b, p, clamp)
	return r2.Norm(r2.Sub(toVec(p), q))
}

// PointDistance returns the Euclidean distance between two points in
// double precision.
func PointDistance(a, b Point2D) float64 {
	return r2.Norm(r2.Sub(toVec(a), toVec(b)))
}

// DistSegWt finds the polyline segment nearest to (x, y). It returns the
// distance, the index of the segment's first node and the clamped weight of
// the nearest point along that segment. A single node is treated as a
// segment of zero length at index 0. An empty polyline returns +Inf and -1.
func DistSegWt(nodes []Point2D, x, y float32) (dist float64, seg int, weight float64) {
	p := Point2D{X: x, Y: y}
	switch len(nodes) {
	case 0:
		return math.Inf(1), -1, 0
	case 1:
		return PointDistance(nodes[0], p), 0, 0
	}

	dist, seg = math.Inf(1), -1
	for i := 0; i < len(nodes)-1; i++ {
		q, t := Projection(nodes[i], nodes[i+1], p, true)
		d := r2.Norm(r2.Sub(toVec(p), q))
		if d < dist {
			dist, seg, weight = d, i, t
		}
	}
	return dist, seg, weight
}
