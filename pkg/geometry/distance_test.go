package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentDistanceMidpoint(t *testing.T) {
	pairs := [][2]Point2D{
		{{0, 0}, {4, 0}},
		{{-3, 7}, {5, -1}},
		{{2, 2}, {2, 2}},
		{{0.5, 0.25}, {8, 16}},
	}
	for _, p := range pairs {
		mid := Point2D{X: (p[0].X + p[1].X) / 2, Y: (p[0].Y + p[1].Y) / 2}
		assert.InDelta(t, 0, SegmentDistance(p[0], p[1], mid, true), 1e-6, "%v", p)
	}
}

func TestSegmentDistanceClamp(t *testing.T) {
	a, b := Point2D{0, 0}, Point2D{4, 0}

	assert.InDelta(t, 3, SegmentDistance(a, b, Point2D{2, 3}, true), 1e-9)
	assert.InDelta(t, 5, SegmentDistance(a, b, Point2D{7, 4}, true), 1e-9)
	assert.InDelta(t, 4, SegmentDistance(a, b, Point2D{7, 4}, false), 1e-9)
	assert.InDelta(t, 5, SegmentDistance(a, a, Point2D{3, 4}, true), 1e-9)
}

func TestProjection(t *testing.T) {
	q, tt := Projection(Point2D{0, 0}, Point2D{10, 0}, Point2D{2.5, 6}, true)
	assert.InDelta(t, 2.5, q.X, 1e-9)
	assert.InDelta(t, 0, q.Y, 1e-9)
	assert.InDelta(t, 0.25, tt, 1e-9)

	_, tt = Projection(Point2D{0, 0}, Point2D{10, 0}, Point2D{-5, 0}, false)
	assert.InDelta(t, -0.5, tt, 1e-9)
}

func TestDistSegWt(t *testing.T) {
	nodes := []Point2D{{0, 0}, {10, 0}, {10, 10}}

	d, seg, w := DistSegWt(nodes, 10.5, 7)
	assert.InDelta(t, 0.5, d, 1e-6)
	assert.Equal(t, 1, seg)
	assert.InDelta(t, 0.7, w, 1e-6)

	d, seg, _ = DistSegWt(nodes[:1], 3, 4)
	assert.InDelta(t, 5, d, 1e-9)
	assert.Equal(t, 0, seg)

	d, seg, _ = DistSegWt(nil, 0, 0)
	assert.True(t, math.IsInf(d, 1))
	assert.Equal(t, -1, seg)
}
