package scene

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"visbio-overlays/internal/overlay"
	"visbio-overlays/pkg/colorutil"
	"visbio-overlays/pkg/geometry"
)

// File is a scene description: the image extent, display zoom and a list of
// shapes.
type File struct {
	Width    int        `toml:"width"`
	Height   int        `toml:"height"`
	Scale    float64    `toml:"scale"` // Domain units per screen pixel
	DrawText *bool      `toml:"draw_text"`
	Shapes   []ShapeDef `toml:"shape"`
}

// ShapeDef describes one overlay in a scene file.
type ShapeDef struct {
	Kind      string       `toml:"kind"`
	Coords    []float64    `toml:"coords"` // x1, y1[, x2, y2]
	Nodes     [][2]float64 `toml:"nodes"`
	Text      string       `toml:"text"`
	Color     string       `toml:"color"`
	Filled    bool         `toml:"filled"`
	Selected  *bool        `toml:"selected"`
	Drawing   bool         `toml:"drawing"`
	Group     string       `toml:"group"`
	Notes     string       `toml:"notes"`
	Highlight *int         `toml:"highlight"`
}

// ShowText reports whether text labels are drawn. It defaults to true.
func (f *File) ShowText() bool {
	return f.DrawText == nil || *f.DrawText
}

// LoadFile parses a scene file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scene")
	}
	return ParseFile(string(data))
}

// ParseFile parses scene file contents and fills in defaults: a 512x512
// image and unit scale.
func ParseFile(data string) (*File, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse scene")
	}
	if f.Width <= 0 {
		f.Width = 512
	}
	if f.Height <= 0 {
		f.Height = 512
	}
	if f.Scale <= 0 {
		f.Scale = 1
	}
	return &f, nil
}

// Build creates a collection holding every shape of the file.
func (f *File) Build() (*Collection, error) {
	t := overlay.NewImageTransform(f.Width, f.Height)
	c := NewCollection()
	for i, def := range f.Shapes {
		obj, err := def.Object(t)
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d", i+1)
		}
		c.Add(obj)
	}
	return c, nil
}

// Object builds the overlay described by the definition.
func (s ShapeDef) Object(t overlay.Transform) (overlay.Object, error) {
	kind, ok := overlay.ParseKind(s.Kind)
	if !ok {
		return nil, errors.Errorf("unknown kind %q", s.Kind)
	}

	var obj overlay.Object
	switch kind {
	case overlay.KindFreeform, overlay.KindPolyline:
		if len(s.Nodes) == 0 {
			return nil, errors.Errorf("%s needs nodes", s.Kind)
		}
		nodes := make([]geometry.Point2D, len(s.Nodes))
		for i, n := range s.Nodes {
			nodes[i] = geometry.Point2D{X: float32(n[0]), Y: float32(n[1])}
		}
		noded := overlay.NewFreeform(t, nodes)
		if kind == overlay.KindPolyline {
			noded = overlay.NewPolyline(t, nodes)
		}
		if s.Highlight != nil && !noded.HighlightNode(*s.Highlight) {
			return nil, errors.Errorf("highlight %d out of range", *s.Highlight)
		}
		obj = noded

	case overlay.KindMarker, overlay.KindText:
		if len(s.Coords) < 2 {
			return nil, errors.Errorf("%s needs 2 coords, got %d", s.Kind, len(s.Coords))
		}
		x, y := float32(s.Coords[0]), float32(s.Coords[1])
		if kind == overlay.KindMarker {
			obj = overlay.NewMarker(t, x, y)
		} else {
			obj = overlay.NewText(t, x, y, s.Text)
		}

	default:
		if len(s.Coords) < 4 {
			return nil, errors.Errorf("%s needs 4 coords, got %d", s.Kind, len(s.Coords))
		}
		x1, y1 := float32(s.Coords[0]), float32(s.Coords[1])
		x2, y2 := float32(s.Coords[2]), float32(s.Coords[3])
		switch kind {
		case overlay.KindLine:
			obj = overlay.NewLine(t, x1, y1, x2, y2)
		case overlay.KindArrow:
			obj = overlay.NewArrow(t, x1, y1, x2, y2)
		case overlay.KindBox:
			obj = overlay.NewBox(t, x1, y1, x2, y2)
		case overlay.KindOval:
			obj = overlay.NewOval(t, x1, y1, x2, y2)
		}
	}

	if s.Color != "" {
		c, err := colorutil.Hex(s.Color)
		if err != nil {
			return nil, err
		}
		obj.SetColor(c)
	}
	if s.Filled {
		if !obj.CanBeFilled() {
			return nil, errors.Errorf("%s cannot be filled", s.Kind)
		}
		obj.SetFilled(true)
	}
	if s.Selected != nil {
		obj.SetSelected(*s.Selected)
	}
	obj.SetDrawing(s.Drawing)
	obj.SetGroup(s.Group)
	obj.SetNotes(s.Notes)
	return obj, nil
}
