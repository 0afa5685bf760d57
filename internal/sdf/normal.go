package sdf

import "kaboom-renderer/internal/mathutil"

// normalEps is the finite-difference step. Each Normal costs 3 extra field
// evaluations (each cascading into 4 noise octaves), so a larger step trades
// accuracy for speed.
const normalEps = 0.1

// Normal estimates the surface normal at pos by forward differences of the
// distance field, normalized.
func (f Field) Normal(pos mathutil.Vec3) mathutil.Vec3 {
	d := f.Distance(pos)
	return mathutil.Vec3{
		f.Distance(pos.Add(mathutil.Vec3{normalEps, 0, 0})) - d,
		f.Distance(pos.Add(mathutil.Vec3{0, normalEps, 0})) - d,
		f.Distance(pos.Add(mathutil.Vec3{0, 0, normalEps})) - d,
	}.Normalize()
}
