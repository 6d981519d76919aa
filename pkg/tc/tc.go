// Package tc estimates the time of concentration of a drainage basin, the
// travel time from its hydraulically most distant point to the outlet.
// Several published empirical formulas are provided; all return hours.
package tc

import (
	"fmt"
	"math"
)

// Method identifies a time-of-concentration formula.
type Method string

const (
	Kirpich    Method = "kirpich"
	Temez      Method = "temez"
	California Method = "california"
	FAA        Method = "faa"
	Kinematic  Method = "kinematic"
	Desbordes  Method = "desbordes"
)

// Surface adjusts the Kirpich estimate for channel lining.
type Surface string

const (
	SurfaceNatural         Surface = "natural"
	SurfaceGrassy          Surface = "grassy"
	SurfaceConcrete        Surface = "concrete"
	SurfaceConcreteChannel Surface = "concrete_channel"
)

var kirpichFactors = map[Surface]float64{
	SurfaceNatural:         1.0,
	SurfaceGrassy:          2.0,
	SurfaceConcrete:        0.4,
	SurfaceConcreteChannel: 0.2,
}

// Inputs collects the parameters of all supported formulas; each method
// reads only the fields it needs.
type Inputs struct {
	LengthM        float64
	SlopeMM        float64 // m/m
	SlopePct       float64 // percent; used by FAA and Desbordes
	ElevationDiffM float64 // California Culverts
	Surface        Surface // Kirpich lining adjustment
	RunoffC        float64 // rational C, used by FAA and Desbordes
	ManningN       float64 // kinematic wave
	IntensityMMHr  float64 // kinematic wave
	AreaHa         float64 // Desbordes
	EntryTimeMin   float64 // Desbordes T0; zero selects 5 min
}

// KirpichTc computes Tc with the Kirpich (1940) formula,
// tc[min] = 0.0195·L^0.77·S^-0.385 (L m, S m/m), adjusted by surface type.
func KirpichTc(lengthM, slope float64, surface Surface) (float64, error) {
	if lengthM <= 0 {
		return 0, fmt.Errorf("flow length must be > 0, got %g m", lengthM)
	}
	if slope <= 0 {
		return 0, fmt.Errorf("slope must be > 0, got %g m/m", slope)
	}

	factor, ok := kirpichFactors[surface]
	if !ok {
		factor = 1.0
	}
	tcMin := 0.0195 * math.Pow(lengthM, 0.77) * math.Pow(slope, -0.385) * factor
	return tcMin / 60, nil
}

// TemezTc computes Tc with the Témez formula used across Spain and Latin
// America, tc[hr] = 0.3·(L/S^0.25)^0.76 (L km, S m/m). Valid for basins of
// roughly 1-3000 km².
func TemezTc(lengthKm, slope float64) (float64, error) {
	if lengthKm <= 0 {
		return 0, fmt.Errorf("channel length must be > 0, got %g km", lengthKm)
	}
	if slope <= 0 {
		return 0, fmt.Errorf("slope must be > 0, got %g m/m", slope)
	}
	return 0.3 * math.Pow(lengthKm/math.Pow(slope, 0.25), 0.76), nil
}

// CaliforniaTc computes Tc with the California Culverts Practice formula,
// tc[min] = 60·(11.9·L³/H)^0.385 (L mi, H ft).
func CaliforniaTc(lengthKm, elevationDiffM float64) (float64, error) {
	if lengthKm <= 0 {
		return 0, fmt.Errorf("channel length must be > 0, got %g km", lengthKm)
	}
	if elevationDiffM <= 0 {
		return 0, fmt.Errorf("elevation difference must be > 0, got %g m", elevationDiffM)
	}

	lengthMi := lengthKm * 0.621371
	hFt := elevationDiffM * 3.28084
	tcMin := 60 * math.Pow(11.9*math.Pow(lengthMi, 3)/hFt, 0.385)
	return tcMin / 60, nil
}

// FAATc computes Tc with the FAA formula for overland flow,
// tc[min] = 1.8·(1.1−C)·L^0.5/S^0.333 (L ft, S %).
func FAATc(lengthM, slopePct, c float64) (float64, error) {
	if lengthM <= 0 {
		return 0, fmt.Errorf("flow length must be > 0, got %g m", lengthM)
	}
	if slopePct <= 0 {
		return 0, fmt.Errorf("slope must be > 0, got %g%%", slopePct)
	}
	if c <= 0 || c > 1 {
		return 0, fmt.Errorf("runoff coefficient must be in (0, 1], got %g", c)
	}

	lengthFt := lengthM * 3.28084
	tcMin := 1.8 * (1.1 - c) * math.Sqrt(lengthFt) / math.Pow(slopePct, 0.333)
	return tcMin / 60, nil
}

// KinematicTc computes Tc with the kinematic wave equation for sheet flow,
// tc[min] = 6.92·L^0.6·n^0.6 / (i^0.4·S^0.3) (L m, i mm/hr, S m/m).
func KinematicTc(lengthM, manningN, slope, intensityMMHr float64) (float64, error) {
	if lengthM <= 0 {
		return 0, fmt.Errorf("flow length must be > 0, got %g m", lengthM)
	}
	if manningN <= 0 {
		return 0, fmt.Errorf("Manning roughness must be > 0, got %g", manningN)
	}
	if slope <= 0 {
		return 0, fmt.Errorf("slope must be > 0, got %g m/m", slope)
	}
	if intensityMMHr <= 0 {
		return 0, fmt.Errorf("rainfall intensity must be > 0, got %g mm/hr", intensityMMHr)
	}

	tcMin := 6.92 * math.Pow(lengthM, 0.6) * math.Pow(manningN, 0.6) /
		(math.Pow(intensityMMHr, 0.4) * math.Pow(slope, 0.3))
	return tcMin / 60, nil
}

// DesbordesTc computes Tc with the Desbordes method recommended by the
// DINAGUA urban drainage design manual (Uruguay),
// Tc[min] = T0 + 6.625·A^0.3·P^-0.39·C^-0.45 (A ha, P %).
func DesbordesTc(areaHa, slopePct, c, t0Min float64) (float64, error) {
	if areaHa <= 0 {
		return 0, fmt.Errorf("basin area must be > 0, got %g ha", areaHa)
	}
	if slopePct <= 0 {
		return 0, fmt.Errorf("slope must be > 0, got %g%%", slopePct)
	}
	if c <= 0 || c > 1 {
		return 0, fmt.Errorf("runoff coefficient must be in (0, 1], got %g", c)
	}
	if t0Min < 0 {
		return 0, fmt.Errorf("entry time cannot be negative, got %g min", t0Min)
	}

	tcMin := t0Min + 6.625*math.Pow(areaHa, 0.3)*math.Pow(slopePct, -0.39)*math.Pow(c, -0.45)
	return tcMin / 60, nil
}

// Estimate dispatches to the formula selected by method. Unknown methods
// are an error, never defaulted.
func Estimate(method Method, in Inputs) (float64, error) {
	switch method {
	case Kirpich:
		return KirpichTc(in.LengthM, in.SlopeMM, in.Surface)
	case Temez:
		return TemezTc(in.LengthM/1000, in.SlopeMM)
	case California:
		return CaliforniaTc(in.LengthM/1000, in.ElevationDiffM)
	case FAA:
		return FAATc(in.LengthM, in.SlopePct, in.RunoffC)
	case Kinematic:
		return KinematicTc(in.LengthM, in.ManningN, in.SlopeMM, in.IntensityMMHr)
	case Desbordes:
		t0 := in.EntryTimeMin
		if t0 == 0 {
			t0 = 5
		}
		return DesbordesTc(in.AreaHa, in.SlopePct, in.RunoffC, t0)
	default:
		return 0, fmt.Errorf("unknown time of concentration method %q", method)
	}
}
