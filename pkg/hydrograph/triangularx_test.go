package hydrograph

import (
	"math"
	"testing"
)

func TestTriangularXUH(t *testing.T) {
	// 1000 ha, symmetric triangle.
	basin := Basin{Area: AreaFromHectares(1000), TcHr: 2.0, XFactor: 1.0}
	uh, err := triangularXUH(basin, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkUnitHydrograph(t, uh, 0.5)

	// Tp = 0.25 + 1.2 = 1.45; qp = 0.00278 × 1000 / 1.45 × 2/2.
	wantPeak := 0.00278 * 1000 / 1.45
	if got := maxOf(uh.FlowPerMM); relErr(got, wantPeak) > 0.05 {
		t.Errorf("peak = %g, want about %g", got, wantPeak)
	}
	if last := uh.TimeHr[len(uh.TimeHr)-1]; last < 2*1.45 {
		t.Errorf("axis ends at %g hr, should cover Tb = 2·Tp = 2.9", last)
	}
}

func TestTriangularXOrdering(t *testing.T) {
	// Across the published X ladder the peak strictly decreases and the
	// base time strictly increases.
	xs := []float64{1.0, 1.25, 1.67, 2.25, 3.33, 5.5}

	var prevPeak, prevBase float64
	for i, x := range xs {
		basin := Basin{Area: AreaFromHectares(1000), TcHr: 2.0, XFactor: x}
		uh, err := triangularXUH(basin, 0.1)
		if err != nil {
			t.Fatalf("x = %g: unexpected error: %v", x, err)
		}

		peak := maxOf(uh.FlowPerMM)
		base := (1 + x) * TimeToPeak(2.0, 0.1)
		if i > 0 {
			if peak >= prevPeak {
				t.Errorf("x = %g: peak %g did not decrease from %g", x, peak, prevPeak)
			}
			if base <= prevBase {
				t.Errorf("x = %g: base %g did not increase from %g", x, base, prevBase)
			}
		}
		prevPeak, prevBase = peak, base
	}
}

func TestTriangularXExtremes(t *testing.T) {
	// X = 5.5 halves the peak more than twice over and stretches the base
	// beyond double the symmetric case.
	symmetric := Basin{Area: AreaFromHectares(1000), TcHr: 2.0, XFactor: 1.0}
	flat := Basin{Area: AreaFromHectares(1000), TcHr: 2.0, XFactor: 5.5}

	uhSym, err := triangularXUH(symmetric, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uhFlat, err := triangularXUH(flat, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if maxOf(uhFlat.FlowPerMM) >= maxOf(uhSym.FlowPerMM) {
		t.Error("x = 5.5 peak should be strictly lower than x = 1.0")
	}

	baseSym := uhSym.TimeHr[len(uhSym.TimeHr)-1]
	baseFlat := uhFlat.TimeHr[len(uhFlat.TimeHr)-1]
	if baseFlat <= 2*baseSym {
		t.Errorf("x = 5.5 base (%g) should exceed double the x = 1.0 base (%g)", baseFlat, baseSym)
	}
}

func TestTriangularXTcSensitivity(t *testing.T) {
	a := Basin{Area: AreaFromHectares(1000), TcHr: 1.0, XFactor: 1.67}
	b := Basin{Area: AreaFromHectares(1000), TcHr: 2.0, XFactor: 1.67}

	uhA, err := triangularXUH(a, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uhB, err := triangularXUH(b, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if peakTime(uhB) <= peakTime(uhA) {
		t.Error("time to peak should increase with Tc")
	}
	if maxOf(uhB.FlowPerMM) > maxOf(uhA.FlowPerMM) {
		t.Error("peak ordinate should not increase with Tc")
	}
}

func TestTriangularXValidation(t *testing.T) {
	tests := []struct {
		name  string
		basin Basin
		dtHr  float64
	}{
		{"x below 1", Basin{Area: AreaFromHectares(1000), TcHr: 2, XFactor: 0.5}, 0.1},
		{"zero area", Basin{Area: AreaFromHectares(0), TcHr: 2, XFactor: 1}, 0.1},
		{"zero tc", Basin{Area: AreaFromHectares(1000), XFactor: 1}, 0.1},
		{"zero dt", Basin{Area: AreaFromHectares(1000), TcHr: 2, XFactor: 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := triangularXUH(tt.basin, tt.dtHr); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestTriangularXVolume(t *testing.T) {
	for _, x := range []float64{1.0, 2.25, 5.5} {
		basin := Basin{Area: AreaFromHectares(1000), TcHr: 2.0, XFactor: x}
		uh, err := triangularXUH(basin, 0.05)
		if err != nil {
			t.Fatalf("x = %g: unexpected error: %v", x, err)
		}

		wantM3 := 10 * 1e6 * 0.001 // 1000 ha = 10 km²
		if got := uhVolumeM3(uh); relErr(got, wantM3) > 0.15 {
			t.Errorf("x = %g: volume = %g m³, want %g ±15%%", x, got, wantM3)
		}
	}
}

func TestTriangularXDefaultX(t *testing.T) {
	withDefault := Basin{Area: AreaFromHectares(1000), TcHr: 2.0}
	explicit := Basin{Area: AreaFromHectares(1000), TcHr: 2.0, XFactor: 1.0}

	a, err := triangularXUH(withDefault, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := triangularXUH(explicit, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(maxOf(a.FlowPerMM)-maxOf(b.FlowPerMM)) > 1e-12 {
		t.Error("zero XFactor should default to 1.0")
	}
}
