package clip

import (
	"image"

	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

// QRBadge renders content (typically the tracker URL of the bug the
// fixtures illustrate) as a QR code layer of the given pixel size.
// Nearest-neighbor scaling keeps the modules crisp at any size.
func QRBadge(content string, size int) (Layer, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return Layer{}, err
	}

	src := q.Image(size)
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(rgba, rgba.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return FromImage(rgba), nil
}
