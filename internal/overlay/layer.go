package overlay

import (
	"visbio-overlays/pkg/colorutil"
	"visbio-overlays/pkg/geometry"
)

// Layer is a set of point sequences handed to the renderer. Layers are
// recomputed on demand and never stored on a shape.
type Layer struct {
	Polygons []Polygon `json:"polygons"`
}

// Polygon is one point sequence drawn with a uniform color. Closed rings
// repeat their first point at the end.
type Polygon struct {
	Points []geometry.Point2D `json:"points"`          // Vertices in domain coordinates
	Label  string             `json:"label,omitempty"` // Text drawn at the first point
	Filled bool               `json:"filled"`          // If true, fill; otherwise stroke
	Color  colorutil.RGBA     `json:"color"`
}

// Add appends a polygon to the layer.
func (l *Layer) Add(p Polygon) {
	l.Polygons = append(l.Polygons, p)
}

// Len returns the number of polygons. A nil layer is empty.
func (l *Layer) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Polygons)
}

// Bounds returns the bounding box of every point in the layer.
func (l *Layer) Bounds() geometry.Rect {
	var pts []geometry.Point2D
	if l != nil {
		for _, p := range l.Polygons {
			pts = append(pts, p.Points...)
		}
	}
	return geometry.BoundingBox(pts)
}

// Concat merges layers in order, skipping nil ones. It returns nil when no
// polygons remain.
func Concat(layers ...*Layer) *Layer {
	var out Layer
	for _, l := range layers {
		if l != nil {
			out.Polygons = append(out.Polygons, l.Polygons...)
		}
	}
	if len(out.Polygons) == 0 {
		return nil
	}
	return &out
}

func singleLayer(p Polygon) *Layer {
	return &Layer{Polygons: []Polygon{p}}
}
