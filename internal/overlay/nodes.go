package overlay

import (
	"visbio-overlays/pkg/geometry"
)

// Node editing. Indices are 0-based. Every edit leaves the endpoints equal
// to the bounding box of the nodes. Colocation is only checked against the
// neighbours at the edit site.

// NumNodes returns the number of nodes.
func (o *NodedObject) NumNodes() int { return len(o.nodes) }

// Nodes returns a copy of the node list.
func (o *NodedObject) Nodes() []geometry.Point2D {
	return append([]geometry.Point2D(nil), o.nodes...)
}

// NodeCoords returns node i.
func (o *NodedObject) NodeCoords(i int) (geometry.Point2D, bool) {
	if i < 0 || i >= len(o.nodes) {
		return geometry.Point2D{}, false
	}
	return o.nodes[i], true
}

// SetNodeCoords moves node i to (x, y).
func (o *NodedObject) SetNodeCoords(i int, x, y float32) bool {
	if i < 0 || i >= len(o.nodes) {
		return false
	}
	o.nodes[i] = geometry.Point2D{X: x, Y: y}
	o.updateBounds()
	return true
}

// InsertNode inserts (x, y) before the node at index, which must be in
// [0, n-1]; appending goes through AppendNode. Unless allowColocational is
// set, the insert is refused when the point equals the node at index or the
// node before it.
func (o *NodedObject) InsertNode(index int, x, y float32, allowColocational bool) bool {
	if index < 0 || index >= len(o.nodes) {
		return false
	}
	p := geometry.Point2D{X: x, Y: y}
	if !allowColocational {
		if geometry.AreColocational(p, o.nodes[index]) {
			return false
		}
		if index > 0 && geometry.AreColocational(p, o.nodes[index-1]) {
			return false
		}
	}

	o.nodes = append(o.nodes, geometry.Point2D{})
	copy(o.nodes[index+1:], o.nodes[index:])
	o.nodes[index] = p

	if o.highlight >= index {
		o.highlight++
	}
	o.updateBounds()
	return true
}

// AppendNode adds (x, y) after the last node. It is refused when the point
// equals the last node.
func (o *NodedObject) AppendNode(x, y float32) bool {
	p := geometry.Point2D{X: x, Y: y}
	if geometry.AreColocational(p, o.nodes[len(o.nodes)-1]) {
		return false
	}
	o.nodes = append(o.nodes, p)
	o.updateBounds()
	return true
}

// DeleteNode removes the node at index. If its former neighbours are now
// adjacent and colocational, one of them is removed as well.
//
// The last remaining node is never deleted: a NodedObject always holds at
// least one node, and DeleteNode returns false instead. Callers that want
// the shape gone remove the whole object.
func (o *NodedObject) DeleteNode(index int) bool {
	if index < 0 || index >= len(o.nodes) || len(o.nodes) == 1 {
		return false
	}
	o.removeAt(index)
	o.collapseJunction(index - 1)
	o.updateBounds()
	return true
}

// DeleteBetween removes every node strictly between i and j, in either
// order, then collapses a colocational junction. Adjacent or out of range
// indices leave the nodes untouched.
func (o *NodedObject) DeleteBetween(i, j int) {
	if i > j {
		i, j = j, i
	}
	if i < 0 || j >= len(o.nodes) || j-i <= 1 {
		return
	}

	removed := j - i - 1
	o.nodes = append(o.nodes[:i+1], o.nodes[j:]...)
	switch {
	case o.highlight > i && o.highlight < j:
		o.highlight = -1
	case o.highlight >= j:
		o.highlight -= removed
	}

	o.collapseJunction(i)
	o.updateBounds()
}

// ConnectTo returns a new object whose nodes are this object's followed by
// other's, dropping other's first node when it equals this object's last.
// Neither input is modified.
func (o *NodedObject) ConnectTo(other *NodedObject) *NodedObject {
	nodes := o.Nodes()
	if other != nil {
		tail := other.nodes
		if geometry.AreColocational(nodes[len(nodes)-1], tail[0]) {
			tail = tail[1:]
		}
		nodes = append(nodes, tail...)
	}

	c := newNoded(o.transform, o.kind, nodes)
	c.color = o.color
	c.filled = o.filled
	c.group = o.group
	c.notes = o.notes
	c.selected = o.selected
	return c
}

// ReverseNodes reverses the node order in place.
func (o *NodedObject) ReverseNodes() {
	n := len(o.nodes)
	for i := 0; i < n/2; i++ {
		o.nodes[i], o.nodes[n-1-i] = o.nodes[n-1-i], o.nodes[i]
	}
	if o.highlight >= 0 {
		o.highlight = n - 1 - o.highlight
	}
}

// HighlightNode marks node i as the one under the pointer.
func (o *NodedObject) HighlightNode(i int) bool {
	if i < 0 || i >= len(o.nodes) {
		return false
	}
	o.highlight = i
	return true
}

// UnhighlightNode clears the node highlight.
func (o *NodedObject) UnhighlightNode() { o.highlight = -1 }

// HighlightedNode returns the highlighted node index, if any.
func (o *NodedObject) HighlightedNode() (int, bool) {
	return o.highlight, o.highlight >= 0
}

func (o *NodedObject) removeAt(i int) {
	o.nodes = append(o.nodes[:i], o.nodes[i+1:]...)
	switch {
	case o.highlight == i:
		o.highlight = -1
	case o.highlight > i:
		o.highlight--
	}
}

// collapseJunction removes node i+1 when it equals node i.
func (o *NodedObject) collapseJunction(i int) {
	if i < 0 || i+1 >= len(o.nodes) {
		return
	}
	if geometry.AreColocational(o.nodes[i], o.nodes[i+1]) {
		o.removeAt(i + 1)
	}
}
