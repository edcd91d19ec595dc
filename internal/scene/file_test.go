package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visbio-overlays/internal/overlay"
	"visbio-overlays/pkg/colorutil"
)

const sampleScene = `
width = 318
height = 640
scale = 0.5
draw_text = false

[[shape]]
kind = "box"
coords = [1, 1, 4, 5]
color = "#ff0000"
filled = true
group = "cells"

[[shape]]
kind = "polyline"
nodes = [[0, 0], [10, 0], [10, 10]]
highlight = 1
selected = false

[[shape]]
kind = "text"
coords = [20, 20]
text = "nucleus"
notes = "checked"
`

func TestParseFile(t *testing.T) {
	f, err := ParseFile(sampleScene)
	require.NoError(t, err)
	assert.Equal(t, 318, f.Width)
	assert.Equal(t, 0.5, f.Scale)
	assert.False(t, f.ShowText())
	require.Len(t, f.Shapes, 3)

	c, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"box-1", "polyline-1", "text-1"}, c.IDs())
	assert.Equal(t, []string{"box-1", "text-1"}, c.SelectedIDs())

	box := c.Get("box-1")
	assert.True(t, box.Filled())
	assert.Equal(t, "cells", box.Group())
	assert.Equal(t, colorutil.RGBA{R: 1, A: 1}, box.Color())

	line := c.Get("polyline-1").(*overlay.NodedObject)
	assert.Equal(t, 3, line.NumNodes())
	i, ok := line.HighlightedNode()
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	txt := c.Get("text-1").(*overlay.Text)
	assert.Equal(t, "nucleus", txt.Text())
	assert.Equal(t, "checked", txt.Notes())
}

func TestParseFileDefaults(t *testing.T) {
	f, err := ParseFile(`[[shape]]
kind = "marker"
coords = [3, 4]`)
	require.NoError(t, err)
	assert.Equal(t, 512, f.Width)
	assert.Equal(t, 512, f.Height)
	assert.Equal(t, 1.0, f.Scale)
	assert.True(t, f.ShowText())

	c, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestBuildErrors(t *testing.T) {
	cases := map[string]string{
		"unknown kind":     "[[shape]]\nkind = \"star\"\ncoords = [0, 0]",
		"missing coords":   "[[shape]]\nkind = \"line\"\ncoords = [0, 0]",
		"missing nodes":    "[[shape]]\nkind = \"freeform\"",
		"bad highlight":    "[[shape]]\nkind = \"freeform\"\nnodes = [[0, 0]]\nhighlight = 4",
		"unfillable shape": "[[shape]]\nkind = \"line\"\ncoords = [0, 0, 1, 1]\nfilled = true",
		"bad color":        "[[shape]]\nkind = \"marker\"\ncoords = [0, 0]\ncolor = \"zz\"",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			f, err := ParseFile(data)
			require.NoError(t, err)
			_, err = f.Build()
			assert.ErrorContains(t, err, "shape 1")
		})
	}

	_, err := ParseFile("width = [")
	assert.ErrorContains(t, err, "parse scene")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Shapes, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "read scene")
}
