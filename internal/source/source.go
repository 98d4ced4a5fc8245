// Package source resolves scene image layers to pixels: still images via
// the stdlib decoders, PDF pages via go-fitz.
package source

import (
	"image"
	"strings"

	"github.com/gen2brain/go-fitz"
)

type Source interface {
	PageCount() int
	Render(index int, dpi int) (image.Image, error)
	Close() error
}

// Open picks a provider by file extension.
func Open(path string) (Source, error) {
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return NewFitzSource(path)
	}
	return NewImageSource(path)
}

// Load renders a single page of the file at path. dpi only matters for
// PDF sources; zero selects the provider default.
func Load(path string, page, dpi int) (image.Image, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return src.Render(page, dpi)
}

type FitzSource struct {
	doc  *fitz.Document
	path string
}

func NewFitzSource(path string) (*FitzSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &FitzSource{doc: doc, path: path}, nil
}

func (f *FitzSource) PageCount() int {
	return f.doc.NumPage()
}

func (f *FitzSource) Render(index int, dpi int) (image.Image, error) {
	if dpi <= 0 {
		dpi = 150
	}
	return f.doc.ImageDPI(index, float64(dpi))
}

func (f *FitzSource) Close() error {
	return f.doc.Close()
}
