package overlay

import (
	"math"
	"strconv"

	"visbio-overlays/pkg/geometry"
)

// NodedObject is a curve through an ordered list of nodes: a freeform
// stroke or a polyline. It always holds at least one node, and its two
// endpoints track the bounding box of the nodes after every edit.
type NodedObject struct {
	base
	kind      Kind
	nodes     []geometry.Point2D
	highlight int
}

// NewFreeform creates a freeform curve through nodes.
func NewFreeform(t Transform, nodes []geometry.Point2D) *NodedObject {
	return newNoded(t, KindFreeform, nodes)
}

// NewPolyline creates a polyline through nodes.
func NewPolyline(t Transform, nodes []geometry.Point2D) *NodedObject {
	return newNoded(t, KindPolyline, nodes)
}

// newNoded copies nodes into a new object. An empty list starts with a
// single node at the origin.
func newNoded(t Transform, kind Kind, nodes []geometry.Point2D) *NodedObject {
	o := &NodedObject{
		base:      newBase(t, 0, 0, 0, 0),
		kind:      kind,
		highlight: -1,
	}
	if len(nodes) == 0 {
		o.nodes = []geometry.Point2D{{}}
	} else {
		o.nodes = append([]geometry.Point2D(nil), nodes...)
	}
	o.updateBounds()
	return o
}

func (o *NodedObject) Kind() Kind { return o.kind }

// HasData reports whether at least two distinct nodes exist.
func (o *NodedObject) HasData() bool {
	for _, p := range o.nodes[1:] {
		if !geometry.AreColocational(p, o.nodes[0]) {
			return true
		}
	}
	return false
}

// SetCoords translates every node so the bounding box's first corner lands
// on (x, y).
func (o *NodedObject) SetCoords(x, y float32) {
	dx, dy := x-o.x1, y-o.y1
	for i := range o.nodes {
		o.nodes[i].X += dx
		o.nodes[i].Y += dy
	}
	o.updateBounds()
}

// SetCoords2 is a no-op: the bounding box follows the nodes.
func (o *NodedObject) SetCoords2(x, y float32) {}

// Distance returns the minimum distance from (x, y) to any segment.
func (o *NodedObject) Distance(x, y float64) float64 {
	d, _, _ := o.NearestSegment(float32(x), float32(y))
	return d
}

// NearestSegment returns the distance to the closest segment, the index of
// its first node and the weight of the closest point along it.
func (o *NodedObject) NearestSegment(x, y float32) (dist float64, seg int, weight float64) {
	return geometry.DistSegWt(o.nodes, x, y)
}

// CurveLength returns the summed length of all segments.
func (o *NodedObject) CurveLength() float64 {
	var length float64
	for i := 0; i < len(o.nodes)-1; i++ {
		length += geometry.PointDistance(o.nodes[i], o.nodes[i+1])
	}
	return length
}

func (o *NodedObject) Bounds() geometry.Rect           { return o.rect() }
func (o *NodedObject) GridCorners() []geometry.Point2D { return o.rect().Corners() }

func (o *NodedObject) Stat(name string) string {
	switch name {
	case StatBounds:
		return formatSpan(o.x1, o.y1, o.x2, o.y2)
	case StatNodeCount:
		return strconv.Itoa(len(o.nodes))
	case StatLength:
		return formatFloat(float32(o.CurveLength()))
	}
	return NoSuchStat
}

func (o *NodedObject) Statistics() string {
	return o.kind.String() + " " + StatBounds + " = " + formatSpan(o.x1, o.y1, o.x2, o.y2) + "\n" +
		StatNodeCount + " = " + strconv.Itoa(len(o.nodes)) + "; " +
		StatLength + " = " + formatFloat(float32(o.CurveLength()))
}

// Data returns the nodes as an open strip.
func (o *NodedObject) Data() *Layer {
	if !o.HasData() {
		return nil
	}
	return singleLayer(Polygon{Points: o.Nodes(), Color: o.renderColor()})
}

// updateBounds recomputes the endpoints from the nodes.
func (o *NodedObject) updateBounds() {
	r := geometry.BoundingBox(o.nodes)
	o.x1, o.y1 = r.X, r.Y
	o.x2, o.y2 = r.X+r.Width, r.Y+r.Height
}

// distanceToNode returns the distance from (x, y) to node i.
func (o *NodedObject) distanceToNode(i int, x, y float32) float64 {
	if i < 0 || i >= len(o.nodes) {
		return math.Inf(1)
	}
	return geometry.PointDistance(o.nodes[i], geometry.Point2D{X: x, Y: y})
}

// NearestNode returns the index of the node closest to (x, y) and its
// distance.
func (o *NodedObject) NearestNode(x, y float32) (int, float64) {
	best, dist := -1, math.Inf(1)
	for i := range o.nodes {
		if d := o.distanceToNode(i, x, y); d < dist {
			best, dist = i, d
		}
	}
	return best, dist
}
