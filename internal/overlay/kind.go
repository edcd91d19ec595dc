// Package overlay models the annotation shapes drawn over an image: lines,
// arrows, boxes, ovals, markers, text labels and noded curves.
package overlay

import "strings"

// Kind identifies an overlay variant.
type Kind int

const (
	KindLine Kind = iota
	KindFreeform
	KindMarker
	KindText
	KindOval
	KindBox
	KindArrow
	KindPolyline
)

var kindNames = [...]string{
	KindLine:     "Line",
	KindFreeform: "Freeform",
	KindMarker:   "Marker",
	KindText:     "Text",
	KindOval:     "Oval",
	KindBox:      "Box",
	KindArrow:    "Arrow",
	KindPolyline: "Polyline",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Kinds returns every overlay kind in display order.
func Kinds() []Kind {
	return []Kind{KindLine, KindFreeform, KindMarker, KindText, KindOval, KindBox, KindArrow, KindPolyline}
}

// ParseKind looks up a kind by name, ignoring case.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(i), true
		}
	}
	return 0, false
}

// IsNoded reports whether the kind stores an ordered node list.
func (k Kind) IsNoded() bool {
	return k == KindFreeform || k == KindPolyline
}
