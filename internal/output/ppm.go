package output

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// encodePPM writes binary PPM (P6), 8 bits per channel. No codec for this
// format exists in the dependency stack; the format is a header plus raw
// RGB24, so it is written directly.
func encodePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}

	row := make([]byte, b.Dx()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			i := (x - b.Min.X) * 3
			row[i+0] = uint8(r >> 8)
			row[i+1] = uint8(g >> 8)
			row[i+2] = uint8(bl >> 8)
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}
