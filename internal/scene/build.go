package scene

import (
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/proximal-testing/overlaydemos/internal/clip"
	"github.com/proximal-testing/overlaydemos/internal/compose"
	"github.com/proximal-testing/overlaydemos/internal/source"
)

const defaultCheckerTile = 40

// Build flattens the scene into a single frame. Scenes are static, so one
// frame fully describes the fixture.
func Build(s *Scene) (*image.RGBA, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("scene %q: bad canvas size %dx%d", s.Name, s.Width, s.Height)
	}

	bg, err := background(s.Background)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}

	layers, err := buildLayers(s.Width, s.Height, s.Layers)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}

	return compose.Flatten(s.Width, s.Height, bg, layers), nil
}

// background maps "" and "none" to a transparent canvas.
func background(s string) (*clip.RGB, error) {
	if s == "" || s == "none" {
		return nil, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func buildLayers(cw, ch int, specs []LayerSpec) ([]clip.Layer, error) {
	layers := make([]clip.Layer, 0, len(specs))
	for i, sp := range specs {
		l, err := buildLayer(cw, ch, sp)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, sp.Type, err)
		}
		layers = append(layers, l)
	}
	return layers, nil
}

func buildLayer(cw, ch int, sp LayerSpec) (clip.Layer, error) {
	w, h := sp.Width, sp.Height
	if w == 0 {
		w = cw
	}
	if h == 0 {
		h = ch
	}

	var l clip.Layer
	switch sp.Type {
	case "", "solid":
		c, err := ParseColor(sp.Color)
		if err != nil {
			return clip.Layer{}, err
		}
		l = clip.Solid(w, h, c)

	case "checker":
		tile := sp.Tile
		if tile == 0 {
			tile = defaultCheckerTile
		}
		l = clip.CheckerboardLayer(w, h, tile)

	case "qr":
		size := w
		if h < size {
			size = h
		}
		var err error
		l, err = clip.QRBadge(sp.Content, size)
		if err != nil {
			return clip.Layer{}, err
		}

	case "image":
		img, err := source.Load(sp.Source, sp.Page, sp.DPI)
		if err != nil {
			return clip.Layer{}, err
		}
		l = clip.FromImage(toRGBA(img, sp.Width, sp.Height))

	case "group":
		bg, err := background(sp.Background)
		if err != nil {
			return clip.Layer{}, err
		}
		inner, err := buildLayers(w, h, sp.Layers)
		if err != nil {
			return clip.Layer{}, err
		}
		l = clip.FromImage(compose.Flatten(w, h, bg, inner))

	default:
		return clip.Layer{}, fmt.Errorf("unknown layer type %q", sp.Type)
	}

	if sp.Opacity != nil {
		l = l.WithOpacity(*sp.Opacity)
	}

	x, err := ParseCoord(sp.X)
	if err != nil {
		return clip.Layer{}, err
	}
	y, err := ParseCoord(sp.Y)
	if err != nil {
		return clip.Layer{}, err
	}
	return l.Positioned(x, y), nil
}

// toRGBA converts a decoded image, scaling it when the layer pins a size
// different from the natural one.
func toRGBA(img image.Image, w, h int) *image.RGBA {
	b := img.Bounds()
	if w == 0 {
		w = b.Dx()
	}
	if h == 0 {
		h = b.Dy()
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
		return out
	}
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), img, b, xdraw.Src, nil)
	return out
}
