// Package scene keeps the overlays of one image plane: stable ids, the
// selection set, a spatial index for picking, and per-frame layer
// composition.
package scene

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/dhconnelly/rtreego"

	"visbio-overlays/internal/overlay"
	"visbio-overlays/internal/selection"
	"visbio-overlays/pkg/geometry"
)

// minExtent keeps index rectangles of points and axis-aligned segments
// non-degenerate.
const minExtent = 1e-6

// entry is an indexed overlay. Its rectangle is captured at insert time so
// the index can find it again after the shape moves.
type entry struct {
	id   string
	obj  overlay.Object
	rect rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect { return e.rect }

// Collection manages the overlays of a single image plane.
type Collection struct {
	mu sync.RWMutex

	// All overlays indexed by ID
	entries map[string]*entry

	// Insertion order, used for drawing and deterministic listings
	order []string

	// Selection state
	selected map[string]bool

	index *rtreego.Rtree
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{
		entries:  make(map[string]*entry),
		order:    make([]string, 0),
		selected: make(map[string]bool),
		index:    rtreego.NewTree(2, 25, 50),
	}
}

// Add stores obj under a new id of the form "<kind>-<n>" and returns the
// id. A shape that is already selected joins the selection set.
func (c *Collection) Add(obj overlay.Object) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := fmt.Sprintf("%s-%d", kindPrefix(obj.Kind()), c.nextNumber(obj.Kind()))
	e := &entry{id: id, obj: obj, rect: indexRect(obj.Bounds())}
	c.entries[id] = e
	c.order = append(c.order, id)
	c.index.Insert(e)
	if obj.Selected() {
		c.selected[id] = true
	}
	return id
}

// Remove deletes an overlay by ID.
func (c *Collection) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remove(id)
}

func (c *Collection) remove(id string) bool {
	e, ok := c.entries[id]
	if !ok {
		return false
	}
	c.index.Delete(e)
	delete(c.entries, id)
	delete(c.selected, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the overlay for the given ID, or nil.
func (c *Collection) Get(id string) overlay.Object {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e := c.entries[id]; e != nil {
		return e.obj
	}
	return nil
}

// Update re-indexes an overlay after its coordinates changed and syncs its
// selection flag.
func (c *Collection) Update(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok {
		return false
	}
	c.index.Delete(e)
	fresh := &entry{id: id, obj: e.obj, rect: indexRect(e.obj.Bounds())}
	c.entries[id] = fresh
	c.index.Insert(fresh)

	if e.obj.Selected() {
		c.selected[id] = true
	} else {
		delete(c.selected, id)
	}
	return true
}

// IDs returns all overlay IDs in insertion order.
func (c *Collection) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]string, len(c.order))
	copy(result, c.order)
	return result
}

// All returns all overlays in insertion order.
func (c *Collection) All() []overlay.Object {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]overlay.Object, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.entries[id].obj)
	}
	return result
}

// Len returns the number of overlays.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// NextNumber returns the next sequential number for ids of the given kind.
// This finds the highest existing number and returns one higher.
func (c *Collection) NextNumber(k overlay.Kind) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nextNumber(k)
}

func (c *Collection) nextNumber(k overlay.Kind) int {
	format := kindPrefix(k) + "-%d"
	maxNum := 0
	for _, id := range c.order {
		var num int
		if _, err := fmt.Sscanf(id, format, &num); err == nil {
			if num > maxNum {
				maxNum = num
			}
		}
	}
	return maxNum + 1
}

// HitTest returns the id of the overlay nearest to (x, y) within threshold,
// or "" when none is close enough. Candidates come from the spatial index;
// the final pick uses each shape's exact distance.
func (c *Collection) HitTest(x, y, threshold float64) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if threshold < minExtent {
		threshold = minExtent
	}
	query, err := rtreego.NewRect(rtreego.Point{x - threshold, y - threshold}, []float64{2 * threshold, 2 * threshold})
	if err != nil {
		return ""
	}

	best, bestDist := "", math.Inf(1)
	for _, s := range c.index.SearchIntersect(query) {
		e := s.(*entry)
		d := e.obj.Distance(x, y)
		if d > threshold {
			continue
		}
		if d < bestDist || (d == bestDist && c.position(e.id) > c.position(best)) {
			best, bestDist = e.id, d
		}
	}
	return best
}

// InRegion returns the ids of overlays whose bounds intersect r, in
// insertion order.
func (c *Collection) InRegion(r geometry.Rect) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	hits := make(map[string]bool)
	for _, s := range c.index.SearchIntersect(indexRect(r)) {
		hits[s.(*entry).id] = true
	}
	var result []string
	for _, id := range c.order {
		if hits[id] {
			result = append(result, id)
		}
	}
	return result
}

// position returns the insertion index of id, or -1.
func (c *Collection) position(id string) int {
	for i, oid := range c.order {
		if oid == id {
			return i
		}
	}
	return -1
}

// Selection methods

// Select adds an overlay to the selection.
func (c *Collection) Select(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e := c.entries[id]; e != nil {
		c.selected[id] = true
		e.obj.SetSelected(true)
	}
}

// Deselect removes an overlay from the selection.
func (c *Collection) Deselect(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e := c.entries[id]; e != nil {
		delete(c.selected, id)
		e.obj.SetSelected(false)
	}
}

// ToggleSelect toggles the selection state of an overlay.
func (c *Collection) ToggleSelect(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e := c.entries[id]; e != nil {
		if c.selected[id] {
			delete(c.selected, id)
			e.obj.SetSelected(false)
		} else {
			c.selected[id] = true
			e.obj.SetSelected(true)
		}
	}
}

// SelectAll selects every overlay.
func (c *Collection) SelectAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, e := range c.entries {
		c.selected[id] = true
		e.obj.SetSelected(true)
	}
}

// ClearSelection deselects all overlays.
func (c *Collection) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id := range c.selected {
		if e := c.entries[id]; e != nil {
			e.obj.SetSelected(false)
		}
	}
	c.selected = make(map[string]bool)
}

// SelectedIDs returns the IDs of all selected overlays in insertion order.
func (c *Collection) SelectedIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.selected))
	for _, id := range c.order {
		if c.selected[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// SelectedCount returns the number of selected overlays.
func (c *Collection) SelectedCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.selected)
}

// RemoveSelected deletes every selected overlay and returns how many were
// removed.
func (c *Collection) RemoveSelected() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, id := range append([]string(nil), c.order...) {
		if c.selected[id] && c.remove(id) {
			n++
		}
	}
	return n
}

// Frame is everything the renderer needs for one redraw.
type Frame struct {
	Shapes    *overlay.Layer // Data of non-text overlays
	Selection *overlay.Layer // Glows and text outlines
	Text      *overlay.Layer // Text labels, when drawn
}

// Compose builds the layers for a redraw. Selected overlays that are still
// being drawn get no glow. When text is hidden, unselected labels are shown
// as outlines.
func (c *Collection) Compose(g *selection.Generator, scale float32, drawText bool) Frame {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var shapes, glows, outlines, text []*overlay.Layer
	for _, id := range c.order {
		obj := c.entries[id].obj
		isText := obj.Kind() == overlay.KindText

		switch {
		case !isText:
			shapes = append(shapes, obj.Data())
		case drawText:
			text = append(text, obj.Data())
		}
		if obj.Selected() && !obj.Drawing() {
			glows = append(glows, g.Layer(obj, scale, selection.ModeGlow))
		}
		if isText && !drawText && !obj.Selected() {
			outlines = append(outlines, g.Layer(obj, scale, selection.ModeOutline))
		}
	}
	return Frame{
		Shapes:    overlay.Concat(shapes...),
		Selection: overlay.Concat(append(glows, outlines...)...),
		Text:      overlay.Concat(text...),
	}
}

func kindPrefix(k overlay.Kind) string {
	return strings.ToLower(k.String())
}

// indexRect converts shape bounds to an index rectangle.
func indexRect(r geometry.Rect) rtreego.Rect {
	w, h := float64(r.Width), float64(r.Height)
	if !(w >= minExtent) {
		w = minExtent
	}
	if !(h >= minExtent) {
		h = minExtent
	}
	rect, err := rtreego.NewRect(rtreego.Point{float64(r.X), float64(r.Y)}, []float64{w, h})
	if err != nil {
		rect, _ = rtreego.NewRect(rtreego.Point{0, 0}, []float64{minExtent, minExtent})
	}
	return rect
}
