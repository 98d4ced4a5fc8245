package clip

import (
	"image"
	"image/draw"
)

// RGB is an 8-bit color triple. Opacity is carried separately on the layer.
type RGB struct {
	R, G, B uint8
}

// Coord is one axis of a layer position: a named anchor relative to the
// canvas, or an absolute pixel offset (which may be negative).
type Coord struct {
	Anchor string // "left", "center", "right", "top", "bottom" or ""
	Offset int    // used when Anchor is empty
}

var (
	Left   = Coord{Anchor: "left"}
	Right  = Coord{Anchor: "right"}
	Top    = Coord{Anchor: "top"}
	Bottom = Coord{Anchor: "bottom"}
	Center = Coord{Anchor: "center"}
)

// At returns an absolute pixel coordinate.
func At(px int) Coord {
	return Coord{Offset: px}
}

// Resolve maps the coordinate to the layer's top-left offset on a canvas
// of the given extent.
func (c Coord) Resolve(canvas, layer int) int {
	switch c.Anchor {
	case "left", "top":
		return 0
	case "center":
		return (canvas - layer) / 2
	case "right", "bottom":
		return canvas - layer
	default:
		return c.Offset
	}
}

// Layer is a single compositing input: a solid color or a prerendered
// image, an opacity and a position on the canvas.
type Layer struct {
	W, H    int
	Color   RGB
	Img     *image.RGBA // nil for solid color layers
	Opacity float64
	X, Y    Coord
}

// Solid returns an opaque single-color layer.
func Solid(w, h int, c RGB) Layer {
	return Layer{W: w, H: h, Color: c, Opacity: 1}
}

// FromImage wraps a prerendered image as a layer, keeping any per-pixel
// alpha it carries. Images with a non-zero origin are copied so the
// compositor can index pixels from (0, 0).
func FromImage(img *image.RGBA) Layer {
	b := img.Bounds()
	if b.Min.X != 0 || b.Min.Y != 0 {
		norm := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(norm, norm.Bounds(), img, b.Min, draw.Src)
		img = norm
	}
	return Layer{W: b.Dx(), H: b.Dy(), Img: img, Opacity: 1}
}

// WithOpacity returns a copy of the layer with its opacity replaced.
func (l Layer) WithOpacity(a float64) Layer {
	l.Opacity = a
	return l
}

// Positioned returns a copy of the layer placed at the given coordinates.
func (l Layer) Positioned(x, y Coord) Layer {
	l.X, l.Y = x, y
	return l
}
