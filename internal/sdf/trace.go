package sdf

import (
	"math"

	"kaboom-renderer/internal/mathutil"
)

const (
	traceSteps = 128  // step budget per ray
	stepScale  = 0.1  // conservative fraction of the distance estimate
	stepFloor  = 0.01 // guarantees forward progress in shallow-gradient regions
)

// Trace marches a ray from orig along unit direction dir until the field goes
// negative. On a hit it returns the first post-crossing sample (no root
// refinement) and true. Exhausting the step budget is a valid miss, reported
// as false, not an error; callers substitute the background color.
func (f Field) Trace(orig, dir mathutil.Vec3) (mathutil.Vec3, bool) {
	pos := orig
	for i := 0; i < traceSteps; i++ {
		d := f.Distance(pos)
		if d < 0 {
			return pos, true
		}
		pos = pos.Add(dir.Scale(math.Max(d*stepScale, stepFloor)))
	}
	return mathutil.Vec3{}, false
}
