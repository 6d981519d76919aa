// Package storm distributes a design rainfall depth over time with the
// alternating blocks method, driven by the DINAGUA
// intensity-duration-frequency model.
package storm

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/hidropluvial/hidropluvial/pkg/idf"
)

// Hyetograph is a design storm laid out over uniform time steps. Times mark
// the center of each step.
type Hyetograph struct {
	TimeMin           []float64
	DepthMM           []float64
	IntensityMMHr     []float64
	CumulativeMM      []float64
	TotalDepthMM      float64
	PeakIntensityMMHr float64
	DtMin             float64
}

// AlternatingBlocksDINAGUA builds an alternating-blocks hyetograph from the
// DINAGUA IDF relation: cumulative depths are read at every multiple of the
// step, differenced into increments, sorted descending and placed
// alternately around the peak position (a fraction of the duration in
// [0, 1], 0.5 centers the peak). areaKm2 of zero skips the areal reduction.
func AlternatingBlocksDINAGUA(p310, returnPeriodYr, durationHr, dtMin, areaKm2, peakPosition float64) (Hyetograph, error) {
	if durationHr <= 0 {
		return Hyetograph{}, fmt.Errorf("storm duration must be > 0, got %g hr", durationHr)
	}
	if dtMin <= 0 {
		return Hyetograph{}, fmt.Errorf("time step must be > 0, got %g min", dtMin)
	}
	if peakPosition < 0 || peakPosition > 1 {
		return Hyetograph{}, fmt.Errorf("peak position must be in [0, 1], got %g", peakPosition)
	}

	dtHr := dtMin / 60
	n := int(durationHr / dtHr)
	if n < 1 {
		return Hyetograph{}, fmt.Errorf("time step %g min exceeds the %g hr duration", dtMin, durationHr)
	}

	cumulative := make([]float64, n)
	for i := 0; i < n; i++ {
		r, err := idf.Depth(p310, returnPeriodYr, float64(i+1)*dtHr, areaKm2)
		if err != nil {
			return Hyetograph{}, err
		}
		cumulative[i] = r.DepthMM
	}

	increments := make([]float64, n)
	increments[0] = cumulative[0]
	for i := 1; i < n; i++ {
		increments[i] = cumulative[i] - cumulative[i-1]
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(increments)))

	depths := distributeBlocks(increments, peakPosition)

	times := make([]float64, n)
	intensities := make([]float64, n)
	cum := make([]float64, n)
	running := 0.0
	for i := range depths {
		times[i] = float64(i)*dtMin + dtMin/2
		intensities[i] = depths[i] * 60 / dtMin
		running += depths[i]
		cum[i] = running
	}

	return Hyetograph{
		TimeMin:           times,
		DepthMM:           depths,
		IntensityMMHr:     intensities,
		CumulativeMM:      cum,
		TotalDepthMM:      floats.Sum(depths),
		PeakIntensityMMHr: floats.Max(intensities),
		DtMin:             dtMin,
	}, nil
}

// distributeBlocks places descending increments alternately around the peak
// index, spilling to whichever side still has room once the other fills.
func distributeBlocks(sorted []float64, peakPosition float64) []float64 {
	n := len(sorted)
	peak := int(peakPosition * float64(n))
	if peak >= n {
		peak = n - 1
	}

	out := make([]float64, n)
	left, right := peak, peak+1
	toggle := true
	for _, inc := range sorted {
		switch {
		case toggle && left >= 0:
			out[left] = inc
			left--
		case !toggle && right < n:
			out[right] = inc
			right++
		case left >= 0:
			out[left] = inc
			left--
		default:
			out[right] = inc
			right++
		}
		toggle = !toggle
	}
	return out
}

// CumulativeDepths returns the running depth totals of the hyetograph,
// shaped for the curve number excess procedure.
func (h Hyetograph) CumulativeDepths() []float64 {
	out := make([]float64, len(h.CumulativeMM))
	copy(out, h.CumulativeMM)
	return out
}

// StepHours returns the uniform step in hours.
func (h Hyetograph) StepHours() float64 {
	return h.DtMin / 60
}
