package world

import "math"

// Noise returns a deterministic pseudo-random value in (-1, 1] for x.
//
// It is an integer hash of x sampled at 1/1000 resolution, not gradient noise:
// nearby inputs that truncate to the same integer share a value, so low
// frequencies (x scaled well below 1 per tile) vary smoothly enough for terrain.
func Noise(x float64) float64 {
	n := int64(x * 1000)
	n = (n << 13) ^ n
	h := (n*(n*n*15731+789221) + 1376312589) & 0x7fffffff
	return 1.0 - float64(h)/1073741824.0
}

// Variation returns the surface height offset for column x, in [0, 10].
func Variation(x int) int {
	fx := float64(x)
	octaves := 0.5*Noise(fx*0.05) + 0.3*Noise(fx*0.1) + 0.2*Noise(fx*0.2)
	v := int(math.Round(10 * (0.5 + 0.5*octaves)))
	return max(0, min(10, v))
}
