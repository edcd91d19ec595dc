package geometry

// IsConvex returns true if the polygon vertices form a convex polygon.
// A repeated closing vertex is ignored. A polygon whose vertices are all
// collinear is not convex.
func IsConvex(polygon []Point2D) bool {
	polygon = openRing(polygon)
	if len(polygon) < 3 {
		return false
	}

	n := len(polygon)
	var sign int

	for i := 0; i < n; i++ {
		cross := crossProduct(
			polygon[i],
			polygon[(i+1)%n],
			polygon[(i+2)%n],
		)

		if cross != 0 {
			currentSign := 1
			if cross < 0 {
				currentSign = -1
			}

			if sign == 0 {
				sign = currentSign
			} else if currentSign != sign {
				return false
			}
		}
	}

	return sign != 0
}

// IsSelfIntersecting reports whether any two non-adjacent edges of the ring
// cross. For a quadrilateral this detects the bow-tie case.
func IsSelfIntersecting(polygon []Point2D) bool {
	polygon = openRing(polygon)
	n := len(polygon)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a := Segment2D{A: polygon[i], B: polygon[(i+1)%n]}
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			b := Segment2D{A: polygon[j], B: polygon[(j+1)%n]}
			if a.Intersects(b) {
				return true
			}
		}
	}
	return false
}

// PointInPolygon tests if a point is inside a polygon using ray casting.
func PointInPolygon(p Point2D, polygon []Point2D) bool {
	polygon = openRing(polygon)
	if len(polygon) < 3 {
		return false
	}

	inside := false
	n := len(polygon)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := polygon[i], polygon[j]

		// Check if ray from p going right intersects edge pi-pj
		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}

	return inside
}

// openRing drops an explicit closing vertex.
func openRing(polygon []Point2D) []Point2D {
	if n := len(polygon); n > 1 && AreColocational(polygon[0], polygon[n-1]) {
		return polygon[:n-1]
	}
	return polygon
}

// crossProduct computes the cross product of vectors OA and OB.
func crossProduct(o, a, b Point2D) float32 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
