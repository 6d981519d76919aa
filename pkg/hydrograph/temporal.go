package hydrograph

import (
	"math"
	"strings"
)

// SCS temporal parameters. These relate basin time of concentration and
// excess-burst duration to the timing of the unit hydrograph and are shared
// by the SCS-family generators.

// LagTime returns the SCS basin lag, tlag = 0.6·Tc (hours).
func LagTime(tcHr float64) float64 {
	return 0.6 * tcHr
}

// TimeToPeak returns the SCS time to peak, Tp = ΔD/2 + 0.6·Tc (hours),
// where ΔD is the duration of one excess burst (the series step).
func TimeToPeak(tcHr, dtHr float64) float64 {
	return dtHr/2 + LagTime(tcHr)
}

// TimeBase returns the base time of the SCS triangular unit hydrograph,
// Tb = 2.67·Tp (hours).
func TimeBase(tpHr float64) float64 {
	return 2.67 * tpHr
}

// StepLimits describes the discretization floor recommended for a design
// storm methodology.
type StepLimits struct {
	MinStepMin       float64
	RecommendedRange [2]float64
	Reason           string
}

// StormStepLimits returns the minimum step and recommended range (minutes)
// for a storm methodology name. NRCS 24-hour distributions carry a 15 min
// floor matching their original tabulation resolution; the finer-grained
// methodologies allow 5 min.
func StormStepLimits(stormMethod string) StepLimits {
	switch {
	case containsAny(stormMethod, "scs", "type_i", "type_ii", "nrcs", "24h"):
		return StepLimits{
			MinStepMin:       15,
			RecommendedRange: [2]float64{15, 30},
			Reason:           "NRCS 24h distributions are tabulated at 30 min; 15 min is the finest interpolated step",
		}
	case containsAny(stormMethod, "block", "alternan"):
		return StepLimits{
			MinStepMin:       5,
			RecommendedRange: [2]float64{5, 15},
			Reason:           "alternating blocks allow higher resolution, down to 5 min",
		}
	case containsAny(stormMethod, "dinagua"):
		return StepLimits{
			MinStepMin:       5,
			RecommendedRange: [2]float64{5, 10},
			Reason:           "DINAGUA GZ designs typically use 5-10 min intervals",
		}
	case containsAny(stormMethod, "bimodal"):
		return StepLimits{
			MinStepMin:       5,
			RecommendedRange: [2]float64{5, 15},
			Reason:           "bimodal storms allow 5-15 min",
		}
	}
	return StepLimits{
		MinStepMin:       5,
		RecommendedRange: [2]float64{5, 15},
		Reason:           "general 5 min floor to avoid unrealistic IDF peaks",
	}
}

// RecommendedStep returns the recommended discretization step (hours) for a
// basin, ΔD = 0.133·Tc, floored by the storm methodology's minimum step.
// stormMethod may be empty, in which case only the general 5 min floor
// applies.
func RecommendedStep(tcHr float64, stormMethod string) float64 {
	dtHr := 0.133 * tcHr
	floorHr := StormStepLimits(stormMethod).MinStepMin / 60
	return math.Max(dtHr, floorHr)
}

func containsAny(s string, subs ...string) bool {
	ls := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(ls, sub) {
			return true
		}
	}
	return false
}

func ceilDiv(a, b float64) float64 {
	return math.Ceil(a / b)
}
