package scene

import (
	"fmt"
	"strconv"

	"github.com/proximal-testing/overlaydemos/internal/clip"
)

// Scene describes one fixture: canvas size, timing and an ordered layer
// stack, bottom first.
type Scene struct {
	Name       string      `yaml:"name"`
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Duration   float64     `yaml:"duration"`
	FPS        int         `yaml:"fps,omitempty"`
	Background string      `yaml:"background,omitempty"` // "#rrggbb" or "none"
	Layers     []LayerSpec `yaml:"layers"`
}

// LayerSpec is one entry in a scene's layer stack.
type LayerSpec struct {
	Type       string      `yaml:"type"` // solid, checker, image, qr, group
	Width      int         `yaml:"width,omitempty"`
	Height     int         `yaml:"height,omitempty"`
	Color      string      `yaml:"color,omitempty"`
	Opacity    *float64    `yaml:"opacity,omitempty"`
	X          string      `yaml:"x,omitempty"`
	Y          string      `yaml:"y,omitempty"`
	Tile       int         `yaml:"tile,omitempty"`       // checker tile edge
	Source     string      `yaml:"source,omitempty"`     // image file or PDF
	Page       int         `yaml:"page,omitempty"`       // PDF page index
	DPI        int         `yaml:"dpi,omitempty"`        // PDF render DPI
	Content    string      `yaml:"content,omitempty"`    // qr payload
	Background string      `yaml:"background,omitempty"` // group backdrop
	Layers     []LayerSpec `yaml:"layers,omitempty"`     // group children
}

// ParseColor parses a "#rrggbb" color string.
func ParseColor(s string) (clip.RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return clip.RGB{}, fmt.Errorf("bad color %q, want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return clip.RGB{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return clip.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// FormatColor renders a color as "#rrggbb".
func FormatColor(c clip.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseCoord parses a position axis: an anchor keyword or a pixel offset.
// Empty means offset 0 (top-left origin, as in the upstream compositor).
func ParseCoord(s string) (clip.Coord, error) {
	switch s {
	case "":
		return clip.At(0), nil
	case "left", "center", "right", "top", "bottom":
		return clip.Coord{Anchor: s}, nil
	}
	px, err := strconv.Atoi(s)
	if err != nil {
		return clip.Coord{}, fmt.Errorf("bad position %q: %w", s, err)
	}
	return clip.At(px), nil
}

// FormatCoord renders a coordinate as its YAML representation.
func FormatCoord(c clip.Coord) string {
	if c.Anchor != "" {
		return c.Anchor
	}
	return strconv.Itoa(c.Offset)
}
