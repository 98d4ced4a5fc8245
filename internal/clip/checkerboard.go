package clip

import (
	"image"

	"github.com/gogpu/gg"
)

// Default checkerboard palette: near-black and near-white tiles so that a
// translucent layer composited on top is obvious in the rendered video.
var (
	CheckerDark  = RGB{R: 20, G: 20, B: 20}
	CheckerLight = RGB{R: 220, G: 220, B: 220}
)

// Checkerboard renders a static backing pattern. The palette index of the
// pixel (x, y) is ((y/tile)+(x/tile))%2. Non-positive tile sizes are
// clamped to 1 rather than rejected.
func Checkerboard(w, h, tile int, colors [2]RGB) *image.RGBA {
	if tile < 1 {
		tile = 1
	}

	pm := gg.NewPixmap(w, h)
	data := pm.Data()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := colors[(y/tile+x/tile)%2]
			i := (y*w + x) * 4
			data[i+0] = c.R
			data[i+1] = c.G
			data[i+2] = c.B
			data[i+3] = 0xff
		}
	}
	return pm.ToImage()
}

// CheckerboardLayer wraps Checkerboard with the default palette as an
// opaque layer.
func CheckerboardLayer(w, h, tile int) Layer {
	return FromImage(Checkerboard(w, h, tile, [2]RGB{CheckerDark, CheckerLight}))
}
