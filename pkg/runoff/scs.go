// Package runoff computes the effective-rainfall (rainfall excess) portion
// of a storm using the SCS curve number procedure and peak discharge with
// the rational method.
package runoff

import "fmt"

// Antecedent moisture condition classes of the curve number procedure.
type AMC int

const (
	AMCDry     AMC = 1 // AMC I
	AMCAverage AMC = 2 // AMC II, the tabulated condition
	AMCWet     AMC = 3 // AMC III
)

// PotentialRetention returns the maximum potential retention
// S = 25400/CN − 254 (mm).
func PotentialRetention(cn float64) (float64, error) {
	if cn <= 0 || cn > 100 {
		return 0, fmt.Errorf("curve number must be in (0, 100], got %g", cn)
	}
	return 25400/cn - 254, nil
}

// InitialAbstraction returns Ia = λ·S (mm). The customary ratio λ is 0.2;
// zero selects it.
func InitialAbstraction(retentionMM, lambda float64) (float64, error) {
	if retentionMM < 0 {
		return 0, fmt.Errorf("retention cannot be negative, got %g mm", retentionMM)
	}
	if lambda == 0 {
		lambda = 0.2
	}
	if lambda < 0 || lambda > 1 {
		return 0, fmt.Errorf("abstraction ratio must be in [0, 1], got %g", lambda)
	}
	return lambda * retentionMM, nil
}

// RunoffDepth returns the direct runoff depth for a rainfall depth P,
//
//	Q = (P − Ia)² / (P − Ia + S)   for P > Ia, else 0
//
// all in mm.
func RunoffDepth(rainfallMM, cn, lambda float64) (float64, error) {
	if rainfallMM < 0 {
		return 0, fmt.Errorf("rainfall depth cannot be negative, got %g mm", rainfallMM)
	}
	s, err := PotentialRetention(cn)
	if err != nil {
		return 0, err
	}
	ia, err := InitialAbstraction(s, lambda)
	if err != nil {
		return 0, err
	}
	if rainfallMM <= ia {
		return 0, nil
	}
	return (rainfallMM - ia) * (rainfallMM - ia) / (rainfallMM - ia + s), nil
}

// AdjustCN converts a tabulated AMC II curve number to dry or wet
// antecedent conditions:
//
//	CN(I)   = 4.2·CN / (10 − 0.058·CN)
//	CN(III) = 23·CN / (10 + 0.13·CN)
func AdjustCN(cn float64, amc AMC) (float64, error) {
	if cn <= 0 || cn > 100 {
		return 0, fmt.Errorf("curve number must be in (0, 100], got %g", cn)
	}
	switch amc {
	case AMCDry:
		return 4.2 * cn / (10 - 0.058*cn), nil
	case AMCAverage:
		return cn, nil
	case AMCWet:
		return 23 * cn / (10 + 0.13*cn), nil
	default:
		return 0, fmt.Errorf("unknown antecedent moisture condition %d", amc)
	}
}

// CompositeCN area-weights curve numbers over a basin's cover fractions.
func CompositeCN(areas, cns []float64) (float64, error) {
	if len(areas) != len(cns) {
		return 0, fmt.Errorf("areas and curve numbers differ in length: %d vs %d", len(areas), len(cns))
	}
	var total, weighted float64
	for i := range areas {
		if areas[i] < 0 {
			return 0, fmt.Errorf("partial area %d is negative", i)
		}
		total += areas[i]
		weighted += areas[i] * cns[i]
	}
	if total == 0 {
		return 0, fmt.Errorf("total area is zero")
	}
	return weighted / total, nil
}

// ExcessSeries converts a cumulative rainfall series (mm) into incremental
// rainfall excess per step (mm) under the curve number procedure. The
// cumulative series must be non-decreasing; the returned increments are
// non-negative and align step for step with the input.
func ExcessSeries(cumulativeMM []float64, cn, lambda float64) ([]float64, error) {
	if len(cumulativeMM) == 0 {
		return nil, fmt.Errorf("cumulative rainfall series is empty")
	}

	excess := make([]float64, len(cumulativeMM))
	prevQ := 0.0
	prevP := 0.0
	for i, p := range cumulativeMM {
		if p < prevP {
			return nil, fmt.Errorf("cumulative rainfall decreases at step %d (%g → %g mm)", i, prevP, p)
		}
		q, err := RunoffDepth(p, cn, lambda)
		if err != nil {
			return nil, err
		}
		excess[i] = q - prevQ
		prevQ = q
		prevP = p
	}
	return excess, nil
}
