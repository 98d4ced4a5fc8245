// Package demos carries the built-in fixture scenes. Each renders a short
// clip of what correct alpha blending looks like for a layer stack the
// upstream compositor currently flattens to fully opaque layers.
package demos

import (
	"strings"

	"github.com/proximal-testing/overlaydemos/internal/scene"
)

const (
	Width    = 320
	Height   = 240
	Duration = 2.0
	FPS      = 24
)

func opacity(v float64) *float64 { return &v }

// All returns the built-in fixture scenes in render order.
func All() []*scene.Scene {
	return []*scene.Scene{
		OpaqueOverlay(),
		MaskIgnored(),
		BackgroundTransparency(),
		DualMaskBlend(),
		ClippedMask(),
	}
}

// Select filters scenes by a comma-separated name list. An empty filter
// selects everything.
func Select(all []*scene.Scene, only string) []*scene.Scene {
	if only == "" {
		return all
	}

	wanted := make(map[string]bool)
	for _, name := range strings.Split(only, ",") {
		wanted[strings.TrimSpace(name)] = true
	}

	var out []*scene.Scene
	for _, s := range all {
		if wanted[s.Name] {
			out = append(out, s)
		}
	}
	return out
}

// OpaqueOverlay: a full-frame overlay that should appear translucent
// covers the base clip entirely under the buggy compositor.
func OpaqueOverlay() *scene.Scene {
	return &scene.Scene{
		Name:       "opaque_overlay_demo",
		Width:      Width,
		Height:     Height,
		Duration:   Duration,
		Background: "#0000ff",
		Layers: []scene.LayerSpec{
			{Type: "solid", Color: "#00ff00", Opacity: opacity(0.5)},
		},
	}
}

// MaskIgnored: a centered square that should respect its 20% opacity
// stays solid white.
func MaskIgnored() *scene.Scene {
	return &scene.Scene{
		Name:       "mask_ignored_demo",
		Width:      Width,
		Height:     Height,
		Duration:   Duration,
		Background: "#ff0000",
		Layers: []scene.LayerSpec{
			{Type: "solid", Width: 120, Height: 120, Color: "#ffffff", Opacity: opacity(0.2), X: "center", Y: "center"},
		},
	}
}

// BackgroundTransparency: a semi-transparent background must retain its
// alpha through a nested composite instead of turning opaque.
func BackgroundTransparency() *scene.Scene {
	return &scene.Scene{
		Name:     "background_transparency_demo",
		Width:    Width,
		Height:   Height,
		Duration: Duration,
		Layers: []scene.LayerSpec{
			{Type: "checker"},
			{Type: "group", Background: "none", Layers: []scene.LayerSpec{
				{Type: "solid", Color: "#0000ff", Opacity: opacity(0.5)},
				{Type: "solid", Width: 160, Height: 240, Color: "#00ff00", X: "right", Y: "center"},
			}},
		},
	}
}

// DualMaskBlend: overlapping translucent layers blend their colors
// instead of the top one replacing the bottom.
func DualMaskBlend() *scene.Scene {
	return &scene.Scene{
		Name:     "dual_mask_blend_demo",
		Width:    Width,
		Height:   Height,
		Duration: Duration,
		Layers: []scene.LayerSpec{
			{Type: "solid", Color: "#0000ff", Opacity: opacity(0.5)},
			{Type: "solid", Width: 200, Height: 160, Color: "#ffff00", Opacity: opacity(0.5), X: "center", Y: "center"},
		},
	}
}

// ClippedMask: a partially off-screen translucent element keeps its
// translucency where it remains visible.
func ClippedMask() *scene.Scene {
	return &scene.Scene{
		Name:       "clipped_mask_demo",
		Width:      Width,
		Height:     Height,
		Duration:   Duration,
		Background: "#000000",
		Layers: []scene.LayerSpec{
			{Type: "solid", Width: 200, Height: 200, Color: "#ffffff", Opacity: opacity(0.5), X: "-80", Y: "center"},
		},
	}
}
