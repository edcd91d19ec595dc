package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visbio-overlays/internal/prefs"
	"visbio-overlays/internal/scene"
	"visbio-overlays/internal/selection"
)

const testScene = `
[[shape]]
kind = "box"
coords = [0, 0, 2, 2]
group = "a"

[[shape]]
kind = "box"
coords = [1, 1, 3, 3]
notes = "overlaps"

[[shape]]
kind = "text"
coords = [10, 10]
text = "x"
selected = false
`

func loadTestScene(t *testing.T) *scene.Collection {
	t.Helper()
	f, err := scene.ParseFile(testScene)
	require.NoError(t, err)
	col, err := f.Build()
	require.NoError(t, err)
	return col
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, loadTestScene(t))
	out := buf.String()
	assert.Contains(t, out, "box-1")
	assert.Contains(t, out, "Group: a")
	assert.Contains(t, out, "Notes: overlaps")
	assert.Contains(t, out, "text-1")
}

func TestBuildLayers(t *testing.T) {
	col := loadTestScene(t)
	g := selection.NewGenerator(selection.DefaultStyle())

	glow, err := buildLayers(col, g, 0.1, "glow", true, false)
	require.NoError(t, err)
	assert.Len(t, glow, 3)

	merged, err := buildLayers(col, g, 0.1, "glow", true, true)
	require.NoError(t, err)
	assert.Equal(t, 1, merged["box-1"].Len())

	frame, err := buildLayers(col, g, 0.1, "frame", false, true)
	require.NoError(t, err)
	assert.Equal(t, 2, frame["shapes"].Len())
	assert.Nil(t, frame["text"])
	assert.Equal(t, 2, frame["selection"].Len(), "two box glows merge, plus the text outline")

	_, err = buildLayers(col, g, 1, "wireframe", true, false)
	assert.ErrorContains(t, err, "unknown mode")
}

func TestPrefsSetAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	p, err := prefs.Load(path)
	require.NoError(t, err)
	require.NoError(t, p.Set(prefs.KeyNodedJoin, "bisector"))
	require.NoError(t, p.Set(prefs.KeyGlowWidth, "3"))
	require.NoError(t, savePrefs(p))

	loaded, err := prefs.Load(path)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, printPrefs(&buf, loaded))
	out := buf.String()
	assert.Contains(t, out, path)
	assert.Contains(t, out, "glow_width = 3\n")
	assert.Contains(t, out, "noded_join = bisector\n")
	assert.Contains(t, out, "outline_color = #00ffff\n")
	assert.Contains(t, out, "merge_glow = false\n")

	g, err := generator(loaded)
	require.NoError(t, err)
	assert.Equal(t, float32(3), g.Style.GlowWidth)
}
