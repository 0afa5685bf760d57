// Command view renders the scene once and presents it in a desktop window.
// All rendering happens up front on the CPU; the window only displays the
// finished pixel buffer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"kaboom-renderer/internal/config"
	"kaboom-renderer/internal/raster"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Image width in pixels (default: 640)")
	height := flag.Int("height", 0, "Image height in pixels (default: 480)")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (default: 60)")
	scale := flag.Int("scale", 0, "Window scale factor (default: 1)")
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
		Scale:   *scale,
		Workers: *workers,
	})

	opts := raster.DefaultOptions(cfg.Width, cfg.Height)
	opts.FOV = cfg.FOV()
	opts.Workers = cfg.Workers

	fb, err := raster.Render(cfg.Field, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}

	g := &viewer{img: ebiten.NewImageFromImage(fb.Image()), w: cfg.Width, h: cfg.Height}
	ebiten.SetWindowTitle("Sphere Trace")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		os.Exit(1)
	}
}

// viewer displays a static image until the window closes.
type viewer struct {
	img  *ebiten.Image
	w, h int
}

func (g *viewer) Update() error {
	return nil
}

func (g *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
}

func (g *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
