package noise

import "kaboom-renderer/internal/mathutil"

// OctaveRotation decorrelates octave sampling directions so lattice artifacts
// do not line up with the world axes. Rows are orthonormal.
var OctaveRotation = mathutil.Mat3{
	0.00, 0.80, 0.60,
	-0.80, 0.36, -0.48,
	-0.60, -0.48, 0.64,
}

// Octave frequency scales are deliberately irregular (not a common ratio) to
// avoid periodic alignment between octaves.
var octaveScales = [3]float64{2.32, 3.03, 2.61}

var octaveWeights = [4]float64{0.5, 0.25, 0.125, 0.0625}

const weightSum = 0.9375

// FBM sums four octaves of Value noise at p, normalized so the nominal
// output range stays near [0,1].
func FBM(p mathutil.Vec3) float64 {
	q := OctaveRotation.MulVec3(p)
	f := 0.0
	for i, w := range octaveWeights {
		f += w * Value(q)
		if i < len(octaveScales) {
			q = q.Scale(octaveScales[i])
		}
	}
	return f / weightSum
}
