package mathutil

// Lerp blends a toward b. t is clamped to [0,1] before blending, so callers
// passing out-of-range t get the nearest endpoint rather than extrapolation.
func Lerp(a, b, t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a + (b-a)*t
}
