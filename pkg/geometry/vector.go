package geometry

import (
	"github.com/chewxy/math32"
)

// The functions in this file operate on n-dimensional vectors stored as
// float32 slices. Inputs are never modified.

// Magnitude returns the Euclidean norm of v.
func Magnitude(v []float32) float32 {
	var sum float32
	for _, c := range v {
		sum += c * c
	}
	return math32.Sqrt(sum)
}

// Dot returns the dot product of a and b over their common length.
func Dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Cross2D returns the z component of the cross product of two 2D vectors.
func Cross2D(a, b []float32) float32 {
	return a[0]*b[1] - a[1]*b[0]
}

// Unit returns v scaled to length one. A zero vector yields NaN components;
// callers must check for degenerate input first.
func Unit(v []float32) []float32 {
	mag := Magnitude(v)
	out := make([]float32, len(v))
	for i, c := range v {
		out[i] = c / mag
	}
	return out
}

// Vector returns p1 - p2, or nil when the lengths differ.
func Vector(p1, p2 []float32) []float32 {
	if len(p1) != len(p2) {
		return nil
	}
	out := make([]float32, len(p1))
	for i := range p1 {
		out[i] = p1[i] - p2[i]
	}
	return out
}

// Add returns the component-wise sum of a and b. ok is false when the
// lengths differ.
func Add(a, b []float32) (sum []float32, ok bool) {
	if len(a) != len(b) {
		return nil, false
	}
	sum = make([]float32, len(a))
	for i := range a {
		sum[i] = a[i] + b[i]
	}
	return sum, true
}

// ScalarMultiply returns v scaled by s.
func ScalarMultiply(v []float32, s float32) []float32 {
	out := make([]float32, len(v))
	for i, c := range v {
		out[i] = c * s
	}
	return out
}

// AreSame reports whether two vectors have the same length and exactly
// equal components.
func AreSame(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AreDifferent is the negation of AreSame.
func AreDifferent(a, b []float32) bool {
	return !AreSame(a, b)
}

// AreOpposite reports whether a == -b exactly.
func AreOpposite(a, b []float32) bool {
	return AreSame(a, ScalarMultiply(b, -1))
}

// Inside reports whether a lies within the closed box spanned by b1 and b2,
// component by component. The points are assumed collinear.
func Inside(a, b1, b2 []float32) bool {
	if len(a) != len(b1) || len(a) != len(b2) {
		return false
	}
	for i := range a {
		lo, hi := b1[i], b2[i]
		if lo > hi {
			lo, hi = hi, lo
		}
		if a[i] < lo || a[i] > hi {
			return false
		}
	}
	return true
}

// ComputePtOnSegment returns a + t*(b-a). t is not clamped.
func ComputePtOnSegment(a, b []float32, t float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] + t*(b[i]-a[i])
	}
	return out
}

// Orient2D returns twice the signed area of the triangle p1, p2, p3.
// Positive means a left turn, negative a right turn, zero collinear.
func Orient2D(p1, p2, p3 []float32) float32 {
	return p1[0]*(p2[1]-p3[1]) + p2[0]*(p3[1]-p1[1]) + p3[0]*(p1[1]-p2[1])
}

// RightPerpendicular2D returns the unit vector obtained by rotating
// from - to by -90 degrees.
func RightPerpendicular2D(from, to []float32) []float32 {
	v := Vector(from, to)
	return Unit([]float32{v[1], -v[0]})
}

// RightBisector2D returns the unit vector bisecting the angle at p2 formed
// with p1 and p3, pointing to the right of the path p1 -> p2 -> p3.
// Collinear or zero-length edges fall back to the right perpendicular of the
// first non-degenerate edge. Nil is returned if all three points coincide.
func RightBisector2D(p1, p2, p3 []float32) []float32 {
	e1 := Vector(p1, p2)
	e2 := Vector(p3, p2)
	if Magnitude(e1) == 0 || Magnitude(e2) == 0 {
		switch {
		case Magnitude(e1) != 0:
			return RightPerpendicular2D(p2, p1)
		case Magnitude(e2) != 0:
			return RightPerpendicular2D(p3, p2)
		}
		return nil
	}

	z := Orient2D(p1, p2, p3)
	v1, v2 := Unit(e1), Unit(e2)
	avg := []float32{(v1[0] + v2[0]) / 2, (v1[1] + v2[1]) / 2}

	if z == 0 || Magnitude(avg) == 0 {
		return RightPerpendicular2D(p2, p1)
	}
	if z > 0 {
		avg = ScalarMultiply(avg, -1)
	}
	return Unit(avg)
}

// Smooth applies one step of exponential smoothing: s*un + (1-s)*cn1.
func Smooth(un, cn1 []float32, s float32) []float32 {
	out := make([]float32, len(un))
	for i := range un {
		out[i] = s*un[i] + (1-s)*cn1[i]
	}
	return out
}
