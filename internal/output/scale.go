package output

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale enlarges a finished render by an integer factor for presentation,
// the way a window stretches a texture. Nearest-neighbor keeps the traced
// pixels crisp; this is display scaling, not resampling of the render.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
