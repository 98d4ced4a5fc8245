package clip

import "testing"

func TestCheckerboardParity(t *testing.T) {
	colors := [2]RGB{CheckerDark, CheckerLight}

	tests := []struct {
		w, h, tile int
	}{
		{320, 240, 40},
		{100, 60, 7},
		{33, 17, 1},
	}

	for _, tt := range tests {
		img := Checkerboard(tt.w, tt.h, tt.tile, colors)

		b := img.Bounds()
		if b.Dx() != tt.w || b.Dy() != tt.h {
			t.Errorf("size %dx%d: got bounds %v", tt.w, tt.h, b)
			continue
		}

		for y := 0; y < tt.h; y++ {
			for x := 0; x < tt.w; x++ {
				want := colors[(y/tt.tile+x/tt.tile)%2]
				got := img.RGBAAt(x, y)
				if got.R != want.R || got.G != want.G || got.B != want.B || got.A != 255 {
					t.Fatalf("tile %d: pixel (%d,%d) = %v, want %v", tt.tile, x, y, got, want)
				}
			}
		}
	}
}

func TestCheckerboardClampsTile(t *testing.T) {
	colors := [2]RGB{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}}

	// Non-positive tile sizes clamp to 1, which alternates every pixel.
	img := Checkerboard(4, 4, 0, colors)

	if img.RGBAAt(0, 0).R != 0 {
		t.Errorf("(0,0) should be dark, got %v", img.RGBAAt(0, 0))
	}
	if img.RGBAAt(1, 0).R != 255 {
		t.Errorf("(1,0) should be light, got %v", img.RGBAAt(1, 0))
	}
	if img.RGBAAt(0, 1).R != 255 {
		t.Errorf("(0,1) should be light, got %v", img.RGBAAt(0, 1))
	}
	if img.RGBAAt(1, 1).R != 0 {
		t.Errorf("(1,1) should be dark, got %v", img.RGBAAt(1, 1))
	}
}
