// Package geometry provides the geometric primitives used by overlay shapes.
package geometry

import (
	"github.com/chewxy/math32"
)

// Point2D represents a 2D point in domain coordinates.
type Point2D struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float32 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math32.Sqrt(dx*dx + dy*dy)
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point2D) Scale(factor float32) Point2D {
	return Point2D{X: p.X * factor, Y: p.Y * factor}
}

// Slice returns the point as a two-element vector.
func (p Point2D) Slice() []float32 {
	return []float32{p.X, p.Y}
}

// PointFromSlice converts a two-element vector back to a point.
// Missing components are zero.
func PointFromSlice(v []float32) Point2D {
	var p Point2D
	if len(v) > 0 {
		p.X = v[0]
	}
	if len(v) > 1 {
		p.Y = v[1]
	}
	return p
}

// AreColocational reports whether two points share exactly the same
// coordinates. All node-degeneracy checks go through this predicate.
func AreColocational(a, b Point2D) bool {
	return a.X == b.X && a.Y == b.Y
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromCorners builds a rectangle from two opposite corners given in
// any order.
func RectFromCorners(x1, y1, x2, y2 float32) Rect {
	minX, maxX := math32.Min(x1, x2), math32.Max(x1, x2)
	minY, maxY := math32.Min(y1, y2), math32.Max(y1, y2)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point2D {
	return Point2D{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Corners returns the four corners in top-left, top-right, bottom-left,
// bottom-right order.
func (r Rect) Corners() []Point2D {
	x2, y2 := r.X+r.Width, r.Y+r.Height
	return []Point2D{{r.X, r.Y}, {x2, r.Y}, {r.X, y2}, {x2, y2}}
}

// Ring returns the rectangle as a closed five-point ring.
func (r Rect) Ring() []Point2D {
	x2, y2 := r.X+r.Width, r.Y+r.Height
	return []Point2D{{r.X, r.Y}, {x2, r.Y}, {x2, y2}, {r.X, y2}, {r.X, r.Y}}
}

// Expand returns the rectangle grown by d on every side.
func (r Rect) Expand(d float32) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Intersects returns true if this rectangle intersects with another.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width && r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height && r.Y+r.Height >= other.Y
}

// BoundingBox computes the axis-aligned bounding box of a set of points.
func BoundingBox(points []Point2D) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
