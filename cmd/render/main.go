package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"kaboom-renderer/internal/config"
	"kaboom-renderer/internal/output"
	"kaboom-renderer/internal/raster"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Image width in pixels (default: 640)")
	height := flag.Int("height", 0, "Image height in pixels (default: 480)")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (default: 60)")
	out := flag.String("out", "", "Output file (default: kaboom.webp)")
	format := flag.String("format", "", "Output format: webp, png, bmp, tga, ppm (default: from extension)")
	scale := flag.Int("scale", 0, "Integer presentation upscale of the output file (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		Width:   *width,
		Height:  *height,
		FOV:     *fov,
		Output:  *out,
		Format:  *format,
		Scale:   *scale,
		Workers: *workers,
	})

	opts := raster.DefaultOptions(cfg.Width, cfg.Height)
	opts.FOV = cfg.FOV()
	opts.Workers = cfg.Workers

	fmt.Printf("Sphere trace %dx%d, fov %.0f°, workers %d\n", cfg.Width, cfg.Height, cfg.FOVDegrees, cfg.Workers)

	start := time.Now()
	fb, err := raster.Render(cfg.Field, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered in %.2fs\n", time.Since(start).Seconds())

	img := output.Scale(fb.Image(), cfg.Scale)
	if err := output.Write(cfg.Output, cfg.Format, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%s, %dx%d)\n", cfg.Output, cfg.Format, img.Bounds().Dx(), img.Bounds().Dy())
}
