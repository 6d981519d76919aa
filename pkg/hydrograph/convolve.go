package hydrograph

import "gonum.org/v1/gonum/floats"

// Convolve computes the full discrete linear convolution of a
// rainfall-excess series (mm per step) with a unit hydrograph (m³/s per
// mm):
//
//	Q[n] = Σ P[m]·U[n−m]
//
// The output length is len(excessMM) + len(uh) − 1. Either input empty
// yields nil.
func Convolve(excessMM, uh []float64) []float64 {
	if len(excessMM) == 0 || len(uh) == 0 {
		return nil
	}
	out := make([]float64, len(excessMM)+len(uh)-1)
	for m, p := range excessMM {
		if p == 0 {
			continue
		}
		floats.AddScaled(out[m:m+len(uh)], p, uh)
	}
	return out
}
