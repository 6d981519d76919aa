// Package idf implements the DINAGUA (Uruguay) rainfall
// intensity-duration-frequency model of Rodríguez Fontal, which scales a
// mapped base depth P3,10 (3 hours, 10 year return period) by duration,
// return period and basin area correction factors:
//
//	P(d, Tr, A) = P3,10 · Cd(d) · Ct(Tr) · CA(A, d)
//
// Intensity is derived as I = P/d.
package idf

import (
	"fmt"
	"math"
)

// P310Uruguay maps departments to indicative P3,10 depths (mm) read from
// the DINAGUA isohyet map. Project work should use the exact mapped value
// for the site; these are orientation figures.
var P310Uruguay = map[string]float64{
	"montevideo":      78,
	"canelones":       75,
	"maldonado":       76,
	"rocha":           77,
	"colonia":         73,
	"san_jose":        74,
	"florida":         76,
	"lavalleja":       78,
	"treinta_y_tres":  80,
	"cerro_largo":     82,
	"rivera":          84,
	"tacuarembo":      82,
	"durazno":         78,
	"flores":          75,
	"soriano":         74,
	"rio_negro":       76,
	"paysandu":        79,
	"salto":           81,
	"artigas":         83,
}

// Result carries a DINAGUA depth computation and its factors.
type Result struct {
	DepthMM        float64
	IntensityMMHr  float64
	Cd             float64
	Ct             float64
	CA             float64
	P310           float64
	ReturnPeriodYr float64
	DurationHr     float64
	AreaKm2        float64
}

// DurationFactor returns Cd(d), the duration correction of the accumulated
// depth:
//
//	d < 3h:  0.6208/(d+0.0137)^0.5639 · d/3
//	d ≥ 3h:  1.0287/(d+1.0293)^0.8083 · d/3
//
// The two branches meet continuously at d = 3 h.
func DurationFactor(durationHr float64) (float64, error) {
	if durationHr <= 0 {
		return 0, fmt.Errorf("duration must be > 0, got %g hr", durationHr)
	}
	d := durationHr
	if d < 3 {
		return 0.6208 / math.Pow(d+0.0137, 0.5639) * d / 3, nil
	}
	return 1.0287 / math.Pow(d+1.0293, 0.8083) * d / 3, nil
}

// ReturnPeriodFactor returns Ct(Tr) = 0.5786 − 0.4312·log10(ln(Tr/(Tr−1))),
// normalized so Ct(10y) ≈ 1. Tr must be at least 2 years.
func ReturnPeriodFactor(returnPeriodYr float64) (float64, error) {
	if returnPeriodYr < 2 {
		return 0, fmt.Errorf("return period must be >= 2 years, got %g", returnPeriodYr)
	}
	tr := returnPeriodYr
	return 0.5786 - 0.4312*math.Log10(math.Log(tr/(tr-1))), nil
}

// AreaFactor returns CA(A, d) = 1 − 0.3549·d^−0.4272·(1 − e^(−0.005792·A)),
// the areal reduction of point rainfall. Basins of 1 km² or less take no
// reduction; durations are floored at 5 minutes.
func AreaFactor(areaKm2, durationHr float64) float64 {
	if areaKm2 <= 1 {
		return 1
	}
	d := math.Max(durationHr, 0.083)
	ca := 1 - 0.3549*math.Pow(d, -0.4272)*(1-math.Exp(-0.005792*areaKm2))
	return math.Min(ca, 1)
}

// Depth computes the accumulated design depth P(d, Tr, A). areaKm2 of zero
// skips the areal reduction.
func Depth(p310, returnPeriodYr, durationHr, areaKm2 float64) (Result, error) {
	if p310 <= 0 {
		return Result{}, fmt.Errorf("base depth P3,10 must be > 0, got %g mm", p310)
	}
	cd, err := DurationFactor(durationHr)
	if err != nil {
		return Result{}, err
	}
	ct, err := ReturnPeriodFactor(returnPeriodYr)
	if err != nil {
		return Result{}, err
	}
	ca := 1.0
	if areaKm2 > 0 {
		ca = AreaFactor(areaKm2, durationHr)
	}

	depth := p310 * cd * ct * ca
	return Result{
		DepthMM:        depth,
		IntensityMMHr:  depth / durationHr,
		Cd:             cd,
		Ct:             ct,
		CA:             ca,
		P310:           p310,
		ReturnPeriodYr: returnPeriodYr,
		DurationHr:     durationHr,
		AreaKm2:        areaKm2,
	}, nil
}

// Intensity returns the mean design intensity I = P/d in mm/hr.
func Intensity(p310, returnPeriodYr, durationHr, areaKm2 float64) (float64, error) {
	r, err := Depth(p310, returnPeriodYr, durationHr, areaKm2)
	if err != nil {
		return 0, err
	}
	return r.IntensityMMHr, nil
}
