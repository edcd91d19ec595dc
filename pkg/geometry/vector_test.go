package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagnitudeOfNegatedVector(t *testing.T) {
	vectors := [][]float32{
		{3, 4},
		{-1.5, 2.25, 7},
		{0, 0},
		{1e-3, -1e3},
	}
	for _, v := range vectors {
		assert.Equal(t, Magnitude(v), Magnitude(ScalarMultiply(v, -1)), "%v", v)
	}
	assert.Equal(t, float32(5), Magnitude([]float32{3, 4}))
}

func TestDotAndCross(t *testing.T) {
	assert.Equal(t, float32(11), Dot([]float32{1, 2}, []float32{3, 4}))
	assert.Equal(t, float32(-2), Cross2D([]float32{1, 2}, []float32{3, 4}))
	assert.Equal(t, float32(1), Cross2D([]float32{1, 0}, []float32{0, 1}))
}

func TestUnit(t *testing.T) {
	u := Unit([]float32{3, 4})
	assert.InDelta(t, 0.6, u[0], 1e-6)
	assert.InDelta(t, 0.8, u[1], 1e-6)

	zero := Unit([]float32{0, 0})
	assert.True(t, math.IsNaN(float64(zero[0])))
}

func TestVectorAndAdd(t *testing.T) {
	assert.Equal(t, []float32{2, -1}, Vector([]float32{3, 1}, []float32{1, 2}))
	assert.Nil(t, Vector([]float32{1, 2}, []float32{1, 2, 3}))

	sum, ok := Add([]float32{1, 2}, []float32{3, 4})
	require.True(t, ok)
	assert.Equal(t, []float32{4, 6}, sum)

	_, ok = Add([]float32{1, 2}, []float32{1})
	assert.False(t, ok)
}

func TestSameDifferentOpposite(t *testing.T) {
	assert.True(t, AreSame([]float32{1, 2}, []float32{1, 2}))
	assert.False(t, AreSame([]float32{1, 2}, []float32{1, 2, 0}))
	assert.True(t, AreDifferent([]float32{1, 2}, []float32{1, 2.0001}))
	assert.True(t, AreOpposite([]float32{1, -2}, []float32{-1, 2}))
	assert.False(t, AreOpposite([]float32{1, 2}, []float32{1, 2}))
}

func TestInside(t *testing.T) {
	assert.True(t, Inside([]float32{1, 1}, []float32{2, 2}, []float32{0, 0}))
	assert.True(t, Inside([]float32{0, 0}, []float32{0, 0}, []float32{2, 2}))
	assert.False(t, Inside([]float32{3, 3}, []float32{0, 0}, []float32{2, 2}))
}

func TestComputePtOnSegment(t *testing.T) {
	assert.Equal(t, []float32{1, 2}, ComputePtOnSegment([]float32{0, 0}, []float32{2, 4}, 0.5))
	assert.Equal(t, []float32{4, 8}, ComputePtOnSegment([]float32{0, 0}, []float32{2, 4}, 2))
}

func TestOrient2D(t *testing.T) {
	left := Orient2D([]float32{0, 0}, []float32{1, 0}, []float32{1, 1})
	right := Orient2D([]float32{0, 0}, []float32{1, 0}, []float32{1, -1})
	straight := Orient2D([]float32{0, 0}, []float32{1, 0}, []float32{2, 0})
	assert.Greater(t, left, float32(0))
	assert.Less(t, right, float32(0))
	assert.Equal(t, float32(0), straight)
}

func TestRightPerpendicular2D(t *testing.T) {
	v := RightPerpendicular2D([]float32{2, 0}, []float32{0, 0})
	assert.InDelta(t, 0, v[0], 1e-6)
	assert.InDelta(t, -1, v[1], 1e-6)
}

func TestRightBisector2D(t *testing.T) {
	type testCase struct {
		name   string
		p1     []float32
		p2     []float32
		p3     []float32
		expect []float32
	}
	r := float32(math.Sqrt2 / 2)
	cases := []testCase{
		{"left turn points outward", []float32{0, 0}, []float32{1, 0}, []float32{1, 1}, []float32{r, -r}},
		{"right turn points inward", []float32{0, 0}, []float32{1, 0}, []float32{1, -1}, []float32{-r, -r}},
		{"collinear falls back to perpendicular", []float32{0, 0}, []float32{1, 0}, []float32{2, 0}, []float32{0, -1}},
		{"doubled back falls back to perpendicular", []float32{0, 0}, []float32{1, 0}, []float32{0, 0}, []float32{0, -1}},
		{"zero first edge uses second edge", []float32{1, 0}, []float32{1, 0}, []float32{2, 0}, []float32{0, -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := RightBisector2D(tc.p1, tc.p2, tc.p3)
			require.Len(t, v, 2)
			assert.InDelta(t, tc.expect[0], v[0], 1e-6)
			assert.InDelta(t, tc.expect[1], v[1], 1e-6)
		})
	}

	assert.Nil(t, RightBisector2D([]float32{1, 1}, []float32{1, 1}, []float32{1, 1}))
}

func TestSmooth(t *testing.T) {
	out := Smooth([]float32{10, 0}, []float32{0, 10}, 0.25)
	assert.InDelta(t, 2.5, out[0], 1e-6)
	assert.InDelta(t, 7.5, out[1], 1e-6)
}

func TestAreColocational(t *testing.T) {
	assert.True(t, AreColocational(Point2D{1, 2}, Point2D{1, 2}))
	assert.False(t, AreColocational(Point2D{1, 2}, Point2D{1, 2.000001}))
}
