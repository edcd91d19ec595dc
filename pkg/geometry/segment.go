package geometry

// Segment2D is a closed line segment between two points.
type Segment2D struct {
	A, B Point2D
}

// Bounds returns the axis-aligned bounding box of the segment.
func (s Segment2D) Bounds() Rect {
	return RectFromCorners(s.A.X, s.A.Y, s.B.X, s.B.Y)
}

// Intersects reports whether two segments share at least one point.
func (s Segment2D) Intersects(other Segment2D) bool {
	if !s.Bounds().Intersects(other.Bounds()) {
		return false
	}

	d1 := crossProduct(other.A, other.B, s.A)
	d2 := crossProduct(other.A, other.B, s.B)
	d3 := crossProduct(s.A, s.B, other.A)
	d4 := crossProduct(s.A, s.B, other.B)

	if straddles(d1, d2) && straddles(d3, d4) {
		return true
	}

	// Collinear or touching cases; the bounding boxes already overlap.
	switch {
	case d1 == 0 && other.Bounds().Contains(s.A):
		return true
	case d2 == 0 && other.Bounds().Contains(s.B):
		return true
	case d3 == 0 && s.Bounds().Contains(other.A):
		return true
	case d4 == 0 && s.Bounds().Contains(other.B):
		return true
	}
	return false
}

func straddles(a, b float32) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}
