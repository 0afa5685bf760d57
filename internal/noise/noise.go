// Package noise implements the deterministic value-noise generator and its
// fractal accumulator. Everything here is a pure function of position: no
// seed state, no tables, repeated calls are bit-identical.
package noise

import (
	"math"

	"kaboom-renderer/internal/mathutil"
)

// latticeStrides linearizes a 3D integer lattice cell into a 1D hash seed.
// 1/57/113 keep the 8 corner offsets (0,1,57,58,113,114,170,171) free of
// low-order collisions across a cell's neighborhood.
var latticeStrides = mathutil.Vec3{1, 57, 113}

// Hash maps a scalar seed to a pseudo-random value, nominally in [0,1).
// Precision loss in sin for large |n| can push results slightly outside
// that range; that is a characteristic of the generator, absorbed by
// clamping when colors are packed to bytes.
func Hash(n float64) float64 {
	s := math.Sin(n) * 43758.5453
	return s - math.Floor(s)
}

// Value evaluates smoothed trilinear value noise at p.
func Value(p mathutil.Vec3) float64 {
	cell := p.Floor()
	f := p.Sub(cell)

	// Shared Hermite-style weight dot(f, 3-2f) over the whole vector, kept
	// from the reference generator. Not per-axis smoothstep: crossing a cell
	// wall while another axis has a fractional offset re-weights that axis,
	// so the field is only smooth along axes whose co-offsets are integral.
	f = f.Scale(f.Dot(mathutil.Vec3{3, 3, 3}.Sub(f.Scale(2))))

	n := cell.Dot(latticeStrides)

	return mathutil.Lerp(
		mathutil.Lerp(
			mathutil.Lerp(Hash(n+0), Hash(n+1), f[0]),
			mathutil.Lerp(Hash(n+57), Hash(n+58), f[0]), f[1]),
		mathutil.Lerp(
			mathutil.Lerp(Hash(n+113), Hash(n+114), f[0]),
			mathutil.Lerp(Hash(n+170), Hash(n+171), f[0]), f[1]),
		f[2])
}
