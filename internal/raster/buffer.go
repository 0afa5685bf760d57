package raster

import (
	"image"

	"kaboom-renderer/internal/mathutil"
)

// FrameBuffer holds the floating-point render target as a flat row-major
// slice, one color per pixel. Components are nominally in [0,1] but are not
// clamped until packing.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []mathutil.Vec3 // len = W*H
}

// NewFrameBuffer allocates a zeroed color buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]mathutil.Vec3, w*h),
	}
}

// Pixels packs the color buffer into interleaved RGB24 bytes, row-major,
// len = W*H*3. Each component is scaled by 255, clamped to [0,255] and
// truncated; clamping absorbs out-of-range colors, including the noise
// hash's occasional excursion outside [0,1).
func (fb *FrameBuffer) Pixels() []uint8 {
	pix := make([]uint8, len(fb.Color)*3)
	for i, c := range fb.Color {
		pix[i*3+0] = packByte(c[0])
		pix[i*3+1] = packByte(c[1])
		pix[i*3+2] = packByte(c[2])
	}
	return pix
}

// Image expands the packed RGB24 buffer into an opaque NRGBA image for the
// standard encoders.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, c := range fb.Color {
		j := i * 4
		img.Pix[j+0] = packByte(c[0])
		img.Pix[j+1] = packByte(c[1])
		img.Pix[j+2] = packByte(c[2])
		img.Pix[j+3] = 0xFF
	}
	return img
}

func packByte(v float64) uint8 {
	v *= 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
