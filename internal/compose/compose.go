// Package compose flattens layer stacks into frames. It is the reference
// for what the fixture videos should look like: straight Porter-Duff
// "over" blending, which the buggy compositor the fixtures document fails
// to apply.
package compose

import (
	"image"

	"github.com/proximal-testing/overlaydemos/internal/clip"
)

// Flatten stacks layers bottom-to-top onto a w×h canvas using
// premultiplied 8-bit "over" arithmetic. A nil background leaves the
// canvas transparent, so the result keeps its alpha and can be nested
// into another composite as an image layer.
func Flatten(w, h int, bg *clip.RGB, layers []clip.Layer) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg != nil {
		fill(dst, *bg)
	}
	for _, l := range layers {
		drawLayer(dst, l)
	}
	return dst
}

func fill(dst *image.RGBA, c clip.RGB) {
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i+0] = c.R
		dst.Pix[i+1] = c.G
		dst.Pix[i+2] = c.B
		dst.Pix[i+3] = 0xff
	}
}

func drawLayer(dst *image.RGBA, l clip.Layer) {
	a8 := opacityByte(l.Opacity)
	if a8 == 0 || l.W <= 0 || l.H <= 0 {
		return
	}

	px := l.X.Resolve(dst.Rect.Dx(), l.W)
	py := l.Y.Resolve(dst.Rect.Dy(), l.H)

	// Layers may extend past the canvas; only the visible part blends.
	r := image.Rect(px, py, px+l.W, py+l.H).Intersect(dst.Rect)
	if r.Empty() {
		return
	}

	if l.Img == nil {
		sr := premul(l.Color.R, a8)
		sg := premul(l.Color.G, a8)
		sb := premul(l.Color.B, a8)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			i := dst.PixOffset(r.Min.X, y)
			for x := r.Min.X; x < r.Max.X; x++ {
				blendPix(dst.Pix[i:i+4:i+4], sr, sg, sb, a8)
				i += 4
			}
		}
		return
	}

	// A layer may declare a size larger than its backing image; never
	// index past the image.
	b := l.Img.Bounds()
	r = r.Intersect(image.Rect(px, py, px+b.Dx(), py+b.Dy()))
	if r.Empty() {
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := l.Img.PixOffset(r.Min.X-px, y-py)
		di := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			s := l.Img.Pix[si : si+4 : si+4]
			blendPix(dst.Pix[di:di+4:di+4],
				premul(s[0], a8), premul(s[1], a8), premul(s[2], a8), premul(s[3], a8))
			si += 4
			di += 4
		}
	}
}

// blendPix applies src-over-dst in place. Inputs are premultiplied, so
// out = src + dst*(255-sa)/255 per channel, rounding half up.
func blendPix(d []uint8, sr, sg, sb, sa uint8) {
	ia := 255 - uint32(sa)
	d[0] = uint8(uint32(sr) + (uint32(d[0])*ia+127)/255)
	d[1] = uint8(uint32(sg) + (uint32(d[1])*ia+127)/255)
	d[2] = uint8(uint32(sb) + (uint32(d[2])*ia+127)/255)
	d[3] = uint8(uint32(sa) + (uint32(d[3])*ia+127)/255)
}

func premul(v, a uint8) uint8 {
	return uint8((uint32(v)*uint32(a) + 127) / 255)
}

func opacityByte(op float64) uint8 {
	if op < 0 {
		op = 0
	}
	if op > 1 {
		op = 1
	}
	return uint8(op*255 + 0.5)
}
