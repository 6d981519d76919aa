package hydrograph

import (
	"fmt"
	"math"
)

// clarkTimeArea returns the cumulative contributing-area fraction of the
// default diamond-shaped time-area curve at a normalized travel time t/Tc:
//
//	A = 1.414·(t/Tc)^1.5        for t/Tc ≤ 0.5
//	A = 1 − 1.414·(1 − t/Tc)^1.5 otherwise
//
// clipped to [0, 1].
func clarkTimeArea(tTc float64) float64 {
	var a float64
	if tTc <= 0.5 {
		a = 1.414 * math.Pow(tTc, 1.5)
	} else {
		a = 1 - 1.414*math.Pow(1-tTc, 1.5)
	}
	return math.Min(math.Max(a, 0), 1)
}

// clarkUH builds Clark's unit hydrograph: the incremental time-area
// histogram is taken as reservoir inflow and routed through one linear
// reservoir with storage coefficient R. The routing recursion
//
//	O[i] = c1·I[i] + c2·I[i-1] + c0·O[i-1]
//
// with c1 = c2 = Δt/(2R+Δt) and c0 = (2R−Δt)/(2R+Δt) is a sequential scan:
// each ordinate depends on the previous outflow.
func clarkUH(basin Basin, dtHr float64) (UnitHydrograph, error) {
	if err := validateBasinStep(basin, dtHr); err != nil {
		return UnitHydrograph{}, err
	}
	r := basin.StorageHr
	if r == 0 {
		// Customary default storage ratio R/Tc = 2.
		r = 2 * basin.TcHr
	}
	if r < 0 {
		return UnitHydrograph{}, fmt.Errorf("clark storage coefficient must be > 0, got %g hr", r)
	}

	c1 := dtHr / (2*r + dtHr)
	c2 := c1
	c0 := (2*r - dtHr) / (2*r + dtHr)

	// Base time heuristic: translation plus five reservoir constants.
	tb := basin.TcHr + 5*r
	time := timeAxis(tb, dtHr)
	n := len(time)

	areaCum := make([]float64, n)
	for i, t := range time {
		areaCum[i] = clarkTimeArea(math.Min(t/basin.TcHr, 1))
	}

	// Incremental contributing area converted to inflow for 1 mm of excess:
	// mm over km² per step → m³/s.
	inflow := make([]float64, n)
	inflow[0] = areaCum[0] * basin.Area.Km2() * mmPerKm2M / (dtHr * 3600)
	for i := 1; i < n; i++ {
		inflow[i] = (areaCum[i] - areaCum[i-1]) * basin.Area.Km2() * mmPerKm2M / (dtHr * 3600)
	}

	// A step coarser than 2R makes c0 negative and the recursion can
	// undershoot zero once inflow ends; clamp each routed ordinate.
	outflow := make([]float64, n)
	for i := 1; i < n; i++ {
		o := c1*inflow[i] + c2*inflow[i-1] + c0*outflow[i-1]
		if o < 0 {
			o = 0
		}
		outflow[i] = o
	}

	return UnitHydrograph{TimeHr: time, FlowPerMM: outflow}, nil
}
