package raster

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"kaboom-renderer/internal/mathutil"
	"kaboom-renderer/internal/sdf"
)

// Options holds the camera, lighting and scheduling parameters for one
// render. The zero value is not useful; start from DefaultOptions.
type Options struct {
	Width   int     // image width in pixels, > 0
	Height  int     // image height in pixels, > 0
	FOV     float64 // vertical field of view in radians, in (0, π)
	Workers int     // row-pool size; 0 means NumCPU

	Eye        mathutil.Vec3 // camera position
	Light      mathutil.Vec3 // point light position
	Ambient    float64       // shading floor, keeps backfacing areas visible
	Background mathutil.Vec3 // color for rays that miss the surface
}

// DefaultOptions returns the reference camera and lighting setup.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:      width,
		Height:     height,
		FOV:        math.Pi / 3,
		Eye:        mathutil.Vec3{0, 0, 3},
		Light:      mathutil.Vec3{0, 10, 10},
		Ambient:    0.4,
		Background: mathutil.Vec3{0.3, 0.9, 0.2},
	}
}

// Render sphere-traces one camera ray per pixel through the field and shades
// hits with a Lambertian term clamped to the ambient floor. Rows are
// distributed over a worker pool; every pixel writes exactly one disjoint
// slot, so the result is byte-identical for any worker count.
func Render(field sdf.Field, opts Options) (*FrameBuffer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("raster: invalid dimensions %dx%d", opts.Width, opts.Height)
	}
	if !(opts.FOV > 0 && opts.FOV < math.Pi) {
		return nil, fmt.Errorf("raster: fov %v out of range (0, π)", opts.FOV)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.Height {
		workers = opts.Height
	}

	fb := NewFrameBuffer(opts.Width, opts.Height)

	// Pinhole projection: the image plane sits at -h/(2·tan(fov/2)) so the
	// vertical field of view is exactly FOV.
	planeZ := -float64(opts.Height) / (2 * math.Tan(opts.FOV/2))

	rows := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				renderRow(field, opts, fb, planeZ, j)
			}
		}()
	}
	for j := 0; j < opts.Height; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	return fb, nil
}

func renderRow(field sdf.Field, opts Options, fb *FrameBuffer, planeZ float64, j int) {
	for i := 0; i < opts.Width; i++ {
		dir := mathutil.Vec3{
			float64(i) + 0.5 - float64(opts.Width)/2,
			-(float64(j) + 0.5) + float64(opts.Height)/2, // flips the image right side up
			planeZ,
		}.Normalize()

		hit, ok := field.Trace(opts.Eye, dir)
		if !ok {
			fb.Color[i+j*opts.Width] = opts.Background
			continue
		}

		lightDir := opts.Light.Sub(hit).Normalize()
		intensity := math.Max(opts.Ambient, lightDir.Dot(field.Normal(hit)))
		fb.Color[i+j*opts.Width] = mathutil.Vec3{1, 1, 1}.Scale(intensity)
	}
}
