// Package sdf defines the implicit surface: a sphere displaced inward by
// fractal noise, queried through its signed distance function.
package sdf

import (
	"kaboom-renderer/internal/mathutil"
	"kaboom-renderer/internal/noise"
)

// Field holds the implicit-surface parameters. A Field is immutable for the
// lifetime of a render; distinct renders can use distinct Fields concurrently.
type Field struct {
	Radius    float64 `json:"radius"`    // base sphere radius
	Amplitude float64 `json:"amplitude"` // depth of the noise displacement
	Frequency float64 `json:"frequency"` // spatial scale of the displacement
}

// DefaultField returns the reference rocky-sphere parameters.
func DefaultField() Field {
	return Field{
		Radius:    1.5,
		Amplitude: 1.0,
		Frequency: 3.4,
	}
}

// Distance returns the signed distance from p to the displaced surface:
// negative inside, positive outside, zero on the surface. The displacement
// warps the field, so the value is an estimate rather than a true Euclidean
// distance; the tracer steps conservatively to compensate.
func (f Field) Distance(p mathutil.Vec3) float64 {
	displacement := -noise.FBM(p.Scale(f.Frequency)) * f.Amplitude
	return p.Len() - (f.Radius + displacement)
}
