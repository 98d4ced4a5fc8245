package demos

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/proximal-testing/overlaydemos/internal/scene"
)

func TestAllFixtures(t *testing.T) {
	wantNames := []string{
		"opaque_overlay_demo",
		"mask_ignored_demo",
		"background_transparency_demo",
		"dual_mask_blend_demo",
		"clipped_mask_demo",
	}

	all := All()
	if len(all) != len(wantNames) {
		t.Fatalf("expected %d fixtures, got %d", len(wantNames), len(all))
	}

	for i, s := range all {
		if s.Name != wantNames[i] {
			t.Errorf("fixture %d = %q, want %q", i, s.Name, wantNames[i])
		}
		if s.Width != 320 || s.Height != 240 {
			t.Errorf("%s: size %dx%d, want 320x240", s.Name, s.Width, s.Height)
		}
		if s.Duration != 2 {
			t.Errorf("%s: duration %f, want 2", s.Name, s.Duration)
		}
		if _, err := scene.Build(s); err != nil {
			t.Errorf("%s: build failed: %v", s.Name, err)
		}
	}
}

func TestSelect(t *testing.T) {
	all := All()

	got := Select(all, "")
	if len(got) != len(all) {
		t.Errorf("empty filter should keep all fixtures, got %d", len(got))
	}

	got = Select(all, "dual_mask_blend_demo, clipped_mask_demo")
	if len(got) != 2 || got[0].Name != "dual_mask_blend_demo" {
		t.Errorf("filter picked wrong fixtures: %v", got)
	}

	if got = Select(all, "nope"); len(got) != 0 {
		t.Errorf("unknown name should select nothing, got %v", got)
	}
}

func TestOpaqueOverlayFrame(t *testing.T) {
	frame, err := scene.Build(OpaqueOverlay())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	// Green at half opacity over opaque blue.
	want := color.RGBA{R: 0, G: 128, B: 127, A: 255}
	if got := frame.RGBAAt(160, 120); got != want {
		t.Errorf("center = %v, want %v", got, want)
	}
}

func TestMaskIgnoredFrame(t *testing.T) {
	frame, err := scene.Build(MaskIgnored())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if got, want := frame.RGBAAt(160, 120), (color.RGBA{R: 255, G: 51, B: 51, A: 255}); got != want {
		t.Errorf("center = %v, want %v", got, want)
	}
	// Outside the 120x120 square the red base is untouched.
	if got, want := frame.RGBAAt(10, 10), (color.RGBA{R: 255, A: 255}); got != want {
		t.Errorf("corner = %v, want %v", got, want)
	}
}

func TestBackgroundTransparencyFrame(t *testing.T) {
	frame, err := scene.Build(BackgroundTransparency())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	// Left half: translucent blue from the nested composite blends with
	// the checkerboard tiles underneath.
	if got, want := frame.RGBAAt(0, 0), (color.RGBA{R: 10, G: 10, B: 138, A: 255}); got != want {
		t.Errorf("dark tile under translucent blue = %v, want %v", got, want)
	}
	if got, want := frame.RGBAAt(40, 0), (color.RGBA{R: 110, G: 110, B: 238, A: 255}); got != want {
		t.Errorf("light tile under translucent blue = %v, want %v", got, want)
	}

	// Right half: the opaque bar inside the nested composite hides both
	// the translucent background and the checkerboard.
	if got, want := frame.RGBAAt(319, 120), (color.RGBA{G: 255, A: 255}); got != want {
		t.Errorf("opaque bar = %v, want %v", got, want)
	}
}

func TestDualMaskBlendFrame(t *testing.T) {
	frame, err := scene.Build(DualMaskBlend())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	// Yellow at half opacity over blue at half opacity on a transparent
	// base: the overlap keeps both colors and stays translucent.
	if got, want := frame.RGBAAt(160, 120), (color.RGBA{R: 128, G: 128, B: 64, A: 192}); got != want {
		t.Errorf("overlap = %v, want %v", got, want)
	}

	// Outside the 200x160 overlay only the translucent blue base remains.
	if got, want := frame.RGBAAt(10, 10), (color.RGBA{B: 128, A: 128}); got != want {
		t.Errorf("base-only border = %v, want %v", got, want)
	}
}

func TestClippedMaskFrame(t *testing.T) {
	frame, err := scene.Build(ClippedMask())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	// Square spans x in [-80,120), y in [20,220): visible part is gray.
	gray := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	if got := frame.RGBAAt(0, 120); got != gray {
		t.Errorf("visible clipped part = %v, want %v", got, gray)
	}
	if got := frame.RGBAAt(119, 120); got != gray {
		t.Errorf("inner edge = %v, want %v", got, gray)
	}
	if got, want := frame.RGBAAt(120, 120), (color.RGBA{A: 255}); got != want {
		t.Errorf("outside square = %v, want black %v", got, want)
	}
}

func TestExportScenesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	if err := ExportScenes(dir); err != nil {
		t.Fatalf("ExportScenes failed: %v", err)
	}

	s, err := scene.Read(filepath.Join(dir, "background_transparency_demo.yaml"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	want := BackgroundTransparency()
	if s.Name != want.Name || len(s.Layers) != len(want.Layers) {
		t.Errorf("exported scene differs: %+v", s)
	}
	if len(s.Layers) == 2 && len(s.Layers[1].Layers) != 2 {
		t.Errorf("nested group lost in export: %+v", s.Layers[1])
	}

	if _, err := scene.Build(s); err != nil {
		t.Errorf("exported scene does not build: %v", err)
	}
}
