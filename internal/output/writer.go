// Package output encodes a finished render to disk in one of the supported
// still-image formats.
package output

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// Formats lists the supported encoder names.
var Formats = []string{"webp", "png", "bmp", "tga", "ppm"}

// FromPath derives the format from a file extension, defaulting to webp.
func FromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range Formats {
		if ext == f {
			return f
		}
	}
	return "webp"
}

// Write encodes img to path in the named format, creating parent directories
// as needed.
func Write(path, format string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case "webp":
		err = nativewebp.Encode(f, img, nil)
	case "png":
		err = png.Encode(f, img)
	case "bmp":
		err = bmp.Encode(f, img)
	case "tga":
		err = tga.Encode(f, img)
	case "ppm":
		err = encodePPM(f, img)
	default:
		err = fmt.Errorf("unknown format %q (supported: %s)", format, strings.Join(Formats, ", "))
	}
	if err != nil {
		return fmt.Errorf("output: encode %s: %w", path, err)
	}

	return nil
}
