package raster

import (
	"testing"

	"kaboom-renderer/internal/mathutil"
)

func TestPixelsClamping(t *testing.T) {
	fb := &FrameBuffer{
		Width:  2,
		Height: 1,
		Color: []mathutil.Vec3{
			{1, 1, 1},
			{-1, 2, 0.5},
		},
	}

	got := fb.Pixels()
	want := []uint8{255, 255, 255, 0, 255, 127}
	if len(got) != len(want) {
		t.Fatalf("Pixels len: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pixels[%d]: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestImageOpaque(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	fb.Color[4] = mathutil.Vec3{0.3, 0.9, 0.2}

	img := fb.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Image bounds: got %v", img.Bounds())
	}
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] != 0xFF {
			t.Fatalf("alpha at %d not opaque: %d", i, img.Pix[i+3])
		}
	}
	// Row-major slot 4 = pixel (1,1).
	j := img.PixOffset(1, 1)
	if img.Pix[j] != 76 || img.Pix[j+1] != 229 || img.Pix[j+2] != 51 {
		t.Errorf("pixel (1,1): got %d,%d,%d", img.Pix[j], img.Pix[j+1], img.Pix[j+2])
	}
}
