// Package prefs provides TOML-based preferences for selection styling.
package prefs

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"visbio-overlays/internal/selection"
	"visbio-overlays/pkg/colorutil"
)

const prefsFile = "preferences.toml"

// Preference keys.
const (
	KeyGlowWidth      = "glow_width"
	KeyGlowAlpha      = "glow_alpha"
	KeyGlowColor      = "glow_color"
	KeyHighlightColor = "highlight_color"
	KeyHighlightAlpha = "highlight_alpha"
	KeyOutlineColor   = "outline_color"
	KeyNodedJoin      = "noded_join"
	KeyMergeGlow      = "merge_glow"
)

// Keys lists every preference key in display order.
func Keys() []string {
	return []string{
		KeyGlowWidth, KeyGlowAlpha, KeyGlowColor,
		KeyHighlightColor, KeyHighlightAlpha,
		KeyOutlineColor, KeyNodedJoin, KeyMergeGlow,
	}
}

// Prefs stores preferences as a key-value map.
type Prefs struct {
	mu     sync.RWMutex
	values map[string]interface{}
	path   string
}

// DefaultPath returns ~/.config/visbio-overlays/preferences.toml.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "visbio-overlays", prefsFile)
}

// Load reads preferences from path, or from DefaultPath when path is empty.
// A missing file yields empty preferences; a malformed one is an error.
func Load(path string) (*Prefs, error) {
	if path == "" {
		path = DefaultPath()
	}
	p := &Prefs{
		values: make(map[string]interface{}),
		path:   path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read preferences")
	}
	if _, err := toml.Decode(string(data), &p.values); err != nil {
		return nil, errors.Wrapf(err, "parse preferences %s", path)
	}
	return p, nil
}

// Path returns the file the preferences are saved to.
func (p *Prefs) Path() string { return p.path }

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	var buf bytes.Buffer
	p.mu.RLock()
	err := toml.NewEncoder(&buf).Encode(p.values)
	p.mu.RUnlock()
	if err != nil {
		return errors.Wrap(err, "encode preferences")
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return errors.Wrap(err, "create preferences dir")
	}
	return errors.Wrap(os.WriteFile(p.path, buf.Bytes(), 0o644), "write preferences")
}

// FloatWithFallback returns a float64 preference, or fallback if not set.
func (p *Prefs) FloatWithFallback(key string, fallback float64) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int64:
			return float64(n)
		case int:
			return float64(n)
		}
	}
	return fallback
}

// SetFloat stores a float64 preference.
func (p *Prefs) SetFloat(key string, val float64) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// String returns a string preference, or "" if not set.
func (p *Prefs) String(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// SetString stores a string preference.
func (p *Prefs) SetString(key string, val string) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// Bool returns a bool preference, or fallback if not set.
func (p *Prefs) Bool(key string, fallback bool) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if b, ok := p.values[key].(bool); ok {
		return b
	}
	return fallback
}

// SetBool stores a bool preference.
func (p *Prefs) SetBool(key string, val bool) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// Style returns the selection style with any stored overrides applied to
// the defaults.
func (p *Prefs) Style() (selection.Style, error) {
	s := selection.DefaultStyle()
	s.GlowWidth = float32(p.FloatWithFallback(KeyGlowWidth, float64(s.GlowWidth)))
	s.GlowAlpha = float32(p.FloatWithFallback(KeyGlowAlpha, float64(s.GlowAlpha)))
	s.HighlightAlpha = float32(p.FloatWithFallback(KeyHighlightAlpha, float64(s.HighlightAlpha)))

	colors := []struct {
		key string
		dst *colorutil.RGBA
	}{
		{KeyGlowColor, &s.GlowColor},
		{KeyHighlightColor, &s.HighlightColor},
		{KeyOutlineColor, &s.OutlineColor},
	}
	for _, c := range colors {
		hex := p.String(c.key)
		if hex == "" {
			continue
		}
		rgba, err := colorutil.Hex(hex)
		if err != nil {
			return s, errors.Wrap(err, c.key)
		}
		*c.dst = rgba
	}

	if name := p.String(KeyNodedJoin); name != "" {
		join, ok := selection.ParseJoin(name)
		if !ok {
			return s, errors.Errorf("%s: unknown join %q", KeyNodedJoin, name)
		}
		s.Join = join
	}
	return s, nil
}

// SetStyle stores every field of s.
func (p *Prefs) SetStyle(s selection.Style) {
	p.SetFloat(KeyGlowWidth, float64(s.GlowWidth))
	p.SetFloat(KeyGlowAlpha, float64(s.GlowAlpha))
	p.SetFloat(KeyHighlightAlpha, float64(s.HighlightAlpha))
	p.SetString(KeyGlowColor, s.GlowColor.Hex())
	p.SetString(KeyHighlightColor, s.HighlightColor.Hex())
	p.SetString(KeyOutlineColor, s.OutlineColor.Hex())
	p.SetString(KeyNodedJoin, s.Join.String())
}

// Set parses a textual value for key and stores it. Values the selection
// style cannot use are rejected and leave the preferences unchanged.
func (p *Prefs) Set(key, value string) error {
	switch key {
	case KeyGlowWidth, KeyGlowAlpha, KeyHighlightAlpha:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.Wrap(err, key)
		}
		if f < 0 {
			return errors.Errorf("%s: negative value %g", key, f)
		}
		p.SetFloat(key, f)
	case KeyGlowColor, KeyHighlightColor, KeyOutlineColor:
		if _, err := colorutil.Hex(value); err != nil {
			return errors.Wrap(err, key)
		}
		p.SetString(key, value)
	case KeyNodedJoin:
		if _, ok := selection.ParseJoin(value); !ok {
			return errors.Errorf("%s: unknown join %q", key, value)
		}
		p.SetString(key, value)
	case KeyMergeGlow:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrap(err, key)
		}
		p.SetBool(key, b)
	default:
		return errors.Errorf("unknown preference %q", key)
	}
	return nil
}
