// Package selection builds the translucent "glow" and thin outline layers
// drawn around selected overlays.
package selection

import (
	"visbio-overlays/pkg/colorutil"
)

// Mode selects which kind of layer the generator produces.
type Mode int

const (
	// ModeGlow draws a translucent, shape-following halo.
	ModeGlow Mode = iota
	// ModeOutline draws an opaque bounding rectangle.
	ModeOutline
)

func (m Mode) String() string {
	if m == ModeOutline {
		return "outline"
	}
	return "glow"
}

// Join controls how adjacent segment quads of a noded glow meet.
type Join int

const (
	// JoinNone draws every segment as an independent quad.
	JoinNone Join = iota
	// JoinBisector shares quad corners along the angle bisector at each
	// interior node.
	JoinBisector
)

func (j Join) String() string {
	if j == JoinBisector {
		return "bisector"
	}
	return "none"
}

// ParseJoin accepts "none" or "bisector".
func ParseJoin(s string) (Join, bool) {
	switch s {
	case "none", "":
		return JoinNone, true
	case "bisector":
		return JoinBisector, true
	}
	return JoinNone, false
}

// Style holds the visual parameters of selection layers. Widths are in
// screen pixels and converted with the display multiplier.
type Style struct {
	GlowWidth      float32
	GlowAlpha      float32
	GlowColor      colorutil.RGBA
	HighlightColor colorutil.RGBA
	HighlightAlpha float32
	OutlineColor   colorutil.RGBA
	TextPadding    float32 // Extra outline padding for text, in glow widths
	Join           Join
}

// DefaultStyle returns a 5 pixel yellow glow at 15% opacity, green node
// highlights and cyan outlines.
func DefaultStyle() Style {
	return Style{
		GlowWidth:      5,
		GlowAlpha:      0.15,
		GlowColor:      colorutil.FromColor(colorutil.Yellow),
		HighlightColor: colorutil.FromColor(colorutil.Green),
		HighlightAlpha: 0.5,
		OutlineColor:   colorutil.FromColor(colorutil.Cyan),
		TextPadding:    0.25,
		Join:           JoinNone,
	}
}

func (s Style) glow() colorutil.RGBA      { return s.GlowColor.WithAlpha(s.GlowAlpha) }
func (s Style) highlight() colorutil.RGBA { return s.HighlightColor.WithAlpha(s.HighlightAlpha) }
func (s Style) outline() colorutil.RGBA   { return s.OutlineColor.WithAlpha(1) }
