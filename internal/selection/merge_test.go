package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visbio-overlays/internal/overlay"
	"visbio-overlays/pkg/colorutil"
	"visbio-overlays/pkg/geometry"
)

func square(x, y, size float32) overlay.Polygon {
	return overlay.Polygon{
		Points: geometry.NewRect(x, y, size, size).Ring(),
		Filled: true,
		Color:  colorutil.RGBA{R: 1, A: 0.15},
	}
}

func TestMergeOverlapping(t *testing.T) {
	l := &overlay.Layer{Polygons: []overlay.Polygon{square(0, 0, 2), square(1, 1, 2)}}
	merged := Merge(l)
	require.Equal(t, 1, merged.Len())

	p := merged.Polygons[0]
	assert.Equal(t, p.Points[0], p.Points[len(p.Points)-1], "closed ring")
	assert.Equal(t, l.Polygons[0].Color, p.Color)
	assert.Equal(t, geometry.Rect{X: 0, Y: 0, Width: 3, Height: 3}, merged.Bounds())
	assert.True(t, layerContains(merged, geometry.Point2D{X: 2.5, Y: 2.5}))
	assert.False(t, layerContains(merged, geometry.Point2D{X: 2.5, Y: 0.5}))
}

func TestMergeDisjoint(t *testing.T) {
	l := &overlay.Layer{Polygons: []overlay.Polygon{square(0, 0, 1), square(5, 5, 1)}}
	merged := Merge(l)
	assert.Equal(t, 2, merged.Len())
}

func TestMergeDropsStrips(t *testing.T) {
	assert.Nil(t, Merge(nil))
	assert.Nil(t, Merge(&overlay.Layer{}))

	strip := &overlay.Layer{Polygons: []overlay.Polygon{{Points: []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}}, Filled: true}}}
	assert.Nil(t, Merge(strip))
}

func TestMergeKeepsPaint(t *testing.T) {
	g := NewGenerator(unitStyle())
	f := overlay.NewPolyline(nil, []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	require.True(t, f.HighlightNode(1))
	txt := overlay.NewText(overlay.NewImageTransform(318, 640), 20, 20, "Hi")

	l := overlay.Concat(g.Glow(f, 1), g.Outline(txt, 1))
	require.Equal(t, 4, l.Len())
	outline := l.Polygons[3]

	merged := Merge(l)
	require.Equal(t, 3, merged.Len())

	glow, circle, stroke := merged.Polygons[0], merged.Polygons[1], merged.Polygons[2]
	assert.Equal(t, colorutil.RGBA{R: 1, G: 1, A: 0.15}, glow.Color)
	assert.True(t, glow.Filled)

	assert.Equal(t, colorutil.RGBA{G: 1, A: 0.5}, circle.Color)
	assert.True(t, circle.Filled)
	assert.True(t, geometry.PointInPolygon(geometry.Point2D{X: 10, Y: 0}, circle.Points))

	assert.Equal(t, outline, stroke)
	assert.False(t, stroke.Filled)
	assert.Equal(t, colorutil.RGBA{G: 1, B: 1, A: 1}, stroke.Color)
}

func TestMergeStrokedOnly(t *testing.T) {
	g := NewGenerator(DefaultStyle())
	l := overlay.Concat(g.Outline(overlay.NewBox(nil, 0, 0, 4, 4), 1), g.Outline(overlay.NewBox(nil, 1, 1, 5, 5), 1))
	assert.Equal(t, l, Merge(l))
}

func TestMergeNodedGlow(t *testing.T) {
	g := NewGenerator(unitStyle())
	f := overlay.NewPolyline(nil, []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	merged := Merge(g.Glow(f, 1))
	require.Equal(t, 1, merged.Len())
	assert.True(t, layerContains(merged, geometry.Point2D{X: 5, Y: 0}))
	assert.True(t, layerContains(merged, geometry.Point2D{X: 10, Y: 5}))
}
