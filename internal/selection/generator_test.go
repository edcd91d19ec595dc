package selection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visbio-overlays/internal/overlay"
	"visbio-overlays/pkg/colorutil"
	"visbio-overlays/pkg/geometry"
)

func unitStyle() Style {
	s := DefaultStyle()
	s.GlowWidth = 1
	return s
}

func assertRing(t *testing.T, want, got []geometry.Point2D) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-4, "x of point %d", i)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-4, "y of point %d", i)
	}
}

func layerContains(l *overlay.Layer, pt geometry.Point2D) bool {
	for _, p := range l.Polygons {
		if geometry.PointInPolygon(pt, p.Points) {
			return true
		}
	}
	return false
}

func TestNoDataNoLayer(t *testing.T) {
	g := NewGenerator(DefaultStyle())
	empty := []overlay.Object{
		overlay.NewLine(nil, 1, 1, 1, 1),
		overlay.NewArrow(nil, 2, 2, 2, 2),
		overlay.NewBox(nil, 0, 0, 5, 0),
		overlay.NewOval(nil, 3, 0, 3, 9),
		overlay.NewFreeform(nil, nil),
		overlay.NewPolyline(nil, []geometry.Point2D{{X: 1, Y: 1}, {X: 1, Y: 1}}),
	}
	for _, obj := range empty {
		for i := 0; i < 3; i++ {
			assert.Nil(t, g.Layer(obj, 1, ModeGlow), obj.Kind().String())
			assert.Nil(t, g.Layer(obj, 1, ModeOutline), obj.Kind().String())
		}
	}
	assert.Nil(t, g.Glow(nil, 1))
}

func TestBoxGlowFlipTolerant(t *testing.T) {
	g := NewGenerator(DefaultStyle())
	forward := g.Glow(overlay.NewBox(nil, 1, 1, 4, 5), 1)
	reversed := g.Glow(overlay.NewBox(nil, 4, 5, 1, 1), 1)
	require.Equal(t, 1, forward.Len())
	assert.Equal(t, forward, reversed)
	assertRing(t, []geometry.Point2D{{X: -4, Y: -4}, {X: 9, Y: -4}, {X: 9, Y: 10}, {X: -4, Y: 10}, {X: -4, Y: -4}},
		forward.Polygons[0].Points)

	p := forward.Polygons[0]
	assert.True(t, p.Filled)
	assert.Equal(t, float32(0.15), p.Color.A)
}

func TestOutlineFlipTolerant(t *testing.T) {
	g := NewGenerator(DefaultStyle())
	forward := g.Outline(overlay.NewBox(nil, 1, 1, 4, 5), 1)
	reversed := g.Outline(overlay.NewBox(nil, 4, 5, 1, 1), 1)
	assert.Equal(t, geometry.Rect{X: -4, Y: -4, Width: 13, Height: 14}, forward.Bounds())
	assert.Equal(t, forward.Bounds(), reversed.Bounds())

	p := forward.Polygons[0]
	assert.False(t, p.Filled)
	assert.Len(t, p.Points, 5)
	assert.Equal(t, colorutil.RGBA{G: 1, B: 1, A: 1}, p.Color)
}

func TestTextOutlinePadding(t *testing.T) {
	g := NewGenerator(DefaultStyle())
	txt := overlay.NewText(overlay.NewImageTransform(318, 640), 0, 0, "Hi")

	outline := g.Outline(txt, 1)
	assertRing(t, []geometry.Point2D{{X: -6.25, Y: -6.25}, {X: 20.25, Y: -6.25}, {X: 20.25, Y: 19.25}, {X: -6.25, Y: 19.25}, {X: -6.25, Y: -6.25}},
		outline.Polygons[0].Points)

	glow := g.Glow(txt, 1)
	assert.Equal(t, outline.Polygons[0].Points, glow.Polygons[0].Points)
	assert.True(t, glow.Polygons[0].Filled)
}

func TestLineGlow(t *testing.T) {
	g := NewGenerator(unitStyle())
	l := g.Glow(overlay.NewLine(nil, 0, 0, 10, 0), 1)
	require.Equal(t, 1, l.Len())
	assertRing(t, []geometry.Point2D{{X: -1, Y: 1}, {X: 11, Y: 1}, {X: 11, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 1}},
		l.Polygons[0].Points)
}

func TestArrowGlowClearsWedge(t *testing.T) {
	g := NewGenerator(unitStyle())
	a := overlay.NewArrow(nil, 0, 0, 10, 0)
	l := g.Glow(a, 1)
	require.Equal(t, 1, l.Len())

	tip := 1.004988
	tail := 2.104988
	assertRing(t, []geometry.Point2D{
		{X: -1, Y: float32(tip)}, {X: 11, Y: float32(tail)}, {X: 11, Y: float32(-tail)}, {X: -1, Y: float32(-tip)}, {X: -1, Y: float32(tip)},
	}, l.Polygons[0].Points)

	for _, p := range a.Data().Polygons[0].Points {
		assert.True(t, layerContains(l, p), "%v inside glow", p)
	}
}

func TestMarkerGlow(t *testing.T) {
	g := NewGenerator(unitStyle())
	m := overlay.NewMarker(overlay.NewImageTransform(100, 100), 10, 10)

	cross := g.Glow(m, 1)
	require.Equal(t, 3, cross.Len())
	assert.Equal(t, geometry.RectFromCorners(7, 9, 9, 11).Ring(), cross.Polygons[0].Points)
	assert.Equal(t, geometry.RectFromCorners(9, 7, 11, 13).Ring(), cross.Polygons[1].Points)
	assert.Equal(t, geometry.RectFromCorners(11, 9, 13, 11).Ring(), cross.Polygons[2].Points)

	box := g.Glow(m, 2)
	require.Equal(t, 1, box.Len())
	assert.Equal(t, geometry.Rect{X: 6, Y: 6, Width: 8, Height: 8}, box.Bounds())
}

func TestOvalGlow(t *testing.T) {
	g := NewGenerator(unitStyle())
	l := g.Glow(overlay.NewOval(nil, 4, 2, 0, 0), 1)
	require.Equal(t, 1, l.Len())
	ring := l.Polygons[0].Points
	assert.Len(t, ring, 129)
	assert.Equal(t, ring[0], ring[len(ring)-1])

	b := l.Bounds()
	assert.InDelta(t, -1, b.X, 0.05)
	assert.InDelta(t, 6, b.Width, 0.1)
	assert.InDelta(t, -1, b.Y, 0.05)
	assert.InDelta(t, 4, b.Height, 0.1)
}

func TestNodedGlowSegments(t *testing.T) {
	g := NewGenerator(unitStyle())
	f := overlay.NewPolyline(nil, []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})

	l := g.Glow(f, 1)
	require.Equal(t, 2, l.Len())
	assertRing(t, []geometry.Point2D{{X: 0, Y: -1}, {X: 10, Y: -1}, {X: 10, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: -1}}, l.Polygons[0].Points)
	assertRing(t, []geometry.Point2D{{X: 11, Y: 0}, {X: 11, Y: 10}, {X: 9, Y: 10}, {X: 9, Y: 0}, {X: 11, Y: 0}}, l.Polygons[1].Points)

	require.True(t, f.HighlightNode(1))
	l = g.Glow(f, 1)
	require.Equal(t, 3, l.Len())
	circle := l.Polygons[2]
	assert.Equal(t, colorutil.RGBA{G: 1, A: 0.5}, circle.Color)
	b := (&overlay.Layer{Polygons: []overlay.Polygon{circle}}).Bounds()
	assert.InDelta(t, 8, b.X, 0.05)
	assert.InDelta(t, 4, b.Width, 0.1)
}

func TestNodedGlowSkipsRepeatedNodes(t *testing.T) {
	g := NewGenerator(unitStyle())
	f := overlay.NewFreeform(nil, []geometry.Point2D{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 5, Y: 0}})
	l := g.Glow(f, 1)
	require.Equal(t, 1, l.Len())
	for _, p := range l.Polygons[0].Points {
		assert.False(t, math.IsNaN(float64(p.X)) || math.IsNaN(float64(p.Y)))
	}
}

func TestBisectorJoin(t *testing.T) {
	s := unitStyle()
	s.Join = JoinBisector
	g := NewGenerator(s)

	straight := g.Glow(overlay.NewPolyline(nil, []geometry.Point2D{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}), 1)
	require.Equal(t, 2, straight.Len())
	q0, q1 := straight.Polygons[0].Points, straight.Polygons[1].Points
	assert.Equal(t, q0[1], q1[0], "shared right corner")
	assert.Equal(t, q0[2], q1[3], "shared left corner")

	corner := g.Glow(overlay.NewPolyline(nil, []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}), 1)
	require.Equal(t, 2, corner.Len())
	assertRing(t, []geometry.Point2D{{X: 0, Y: -1}, {X: 11, Y: -1}, {X: 9, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: -1}}, corner.Polygons[0].Points)
	assertRing(t, []geometry.Point2D{{X: 11, Y: -1}, {X: 11, Y: 10}, {X: 9, Y: 10}, {X: 9, Y: 1}, {X: 11, Y: -1}}, corner.Polygons[1].Points)

	back := g.Glow(overlay.NewFreeform(nil, []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 0}}), 1)
	require.Equal(t, 2, back.Len())
	for _, p := range back.Polygons {
		assert.True(t, finite(p.Points))
		assert.False(t, geometry.IsSelfIntersecting(p.Points))
	}
}

func TestMultiplier(t *testing.T) {
	assert.Equal(t, float32(1), Multiplier(nil))
	assert.Equal(t, float32(0.5), Multiplier(ScaledDisplay{Scale: 0.5, ShiftX: 3, ShiftY: -7}))
	assert.Equal(t, float32(1), Multiplier(nanDisplay{}))
}

type nanDisplay struct{}

func (nanDisplay) PixelToDomain(px, py int) (float64, float64) { return math.NaN(), math.NaN() }

func TestStyleHelpers(t *testing.T) {
	s := DefaultStyle()
	assert.Equal(t, colorutil.RGBA{R: 1, G: 1, A: 0.15}, s.glow())
	assert.Equal(t, JoinNone, s.Join)

	j, ok := ParseJoin("bisector")
	assert.True(t, ok)
	assert.Equal(t, JoinBisector, j)
	_, ok = ParseJoin("miter")
	assert.False(t, ok)

	assert.Equal(t, "outline", ModeOutline.String())
	assert.Equal(t, "glow", ModeGlow.String())
}

func TestSimpleQuad(t *testing.T) {
	square := []geometry.Point2D{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	assert.True(t, simple(square))

	dart := []geometry.Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 4}}
	assert.False(t, geometry.IsConvex(dart))
	assert.True(t, simple(dart), "concave but not crossing")

	bowtie := []geometry.Point2D{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	assert.False(t, simple(bowtie))

	nan := float32(math.NaN())
	assert.False(t, simple([]geometry.Point2D{{X: 0, Y: 0}, {X: nan, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}))
}
