package hydrograph

import (
	"math"
	"testing"
)

func TestSnyderLag(t *testing.T) {
	// tp = Ct × (L·Lc)^0.3 in miles; 16.09 km and 8.05 km are 10 and 5 mi.
	got := snyderLag(16.0934, 8.0467, 2.0)
	want := 2.0 * math.Pow(10*5, 0.3)
	if math.Abs(got-want) > 0.01 {
		t.Errorf("snyderLag = %g, want %g", got, want)
	}
}

func TestSnyderPeak(t *testing.T) {
	// Qp = 640·Cp·A/tp in cfs with A in mi²; 25.9 km² ≈ 10 mi².
	got := snyderPeak(25.8999, 4.0, 0.6)
	wantCfs := 640 * 0.6 * 10.0 / 4.0
	want := wantCfs * 0.0283168
	if math.Abs(got-want) > 0.01*want {
		t.Errorf("snyderPeak = %g m³/s, want %g", got, want)
	}
}

func TestSnyderWidths(t *testing.T) {
	qp := snyderPeak(25.8999, 4.0, 0.6)
	w50, w75 := snyderWidths(qp, 25.8999)

	if w50 <= w75 {
		t.Errorf("W50 (%g) should exceed W75 (%g)", w50, w75)
	}
	// Same power law, fixed coefficient ratio.
	if math.Abs(w50/w75-770.0/440) > 1e-6 {
		t.Errorf("W50/W75 = %g, want %g", w50/w75, 770.0/440)
	}
}

func TestSnyderUH(t *testing.T) {
	basin := Basin{Area: AreaFromKm2(10), TcHr: 2.0, LengthKm: 8, LcKm: 4}
	uh, err := snyderUH(basin, 0.1, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkUnitHydrograph(t, uh, 0.1)

	// Normalized to 1 mm: volume reproduces area × 1 mm.
	wantM3 := 10 * 1e6 * 0.001
	if got := uhVolumeM3(uh); relErr(got, wantM3) > 0.05 {
		t.Errorf("volume = %g m³, want %g ±5%%", got, wantM3)
	}

	// Peak near the regression value rescaled to 1 mm.
	lag := snyderLag(8, 4, 2.0)
	wantPeak := snyderPeak(10, lag, 0.6) / 25.4
	if got := maxOf(uh.FlowPerMM); relErr(got, wantPeak) > 0.05 {
		t.Errorf("peak = %g, want about %g", got, wantPeak)
	}
	if got := peakTime(uh); math.Abs(got-lag) > 0.1+1e-9 {
		t.Errorf("peak time = %g hr, want about %g", got, lag)
	}
}

func TestSnyderRequiresGeometry(t *testing.T) {
	tests := []struct {
		name  string
		basin Basin
	}{
		{"missing both", Basin{Area: AreaFromKm2(10), TcHr: 2}},
		{"missing centroid distance", Basin{Area: AreaFromKm2(10), TcHr: 2, LengthKm: 8}},
		{"missing channel length", Basin{Area: AreaFromKm2(10), TcHr: 2, LcKm: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := snyderUH(tt.basin, 0.1, 0, 0); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSnyderCoefficientValidation(t *testing.T) {
	basin := Basin{Area: AreaFromKm2(10), TcHr: 2.0, LengthKm: 8, LcKm: 4}

	if _, err := snyderUH(basin, 0.1, -1, 0.6); err == nil {
		t.Error("expected error for negative Ct")
	}
	if _, err := snyderUH(basin, 0.1, 2.0, 1.5); err == nil {
		t.Error("expected error for Cp > 1")
	}
}

func TestSanitizeKeyPoints(t *testing.T) {
	xs, ys := sanitizeKeyPoints(
		[]float64{0, -0.5, 1.0, 1.0, 2.0},
		[]float64{0, 0.5, 1.0, 0.9, 0},
	)

	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("abscissae not strictly increasing: %v", xs)
		}
	}
	if len(xs) != len(ys) {
		t.Fatalf("length mismatch: %d vs %d", len(xs), len(ys))
	}
	if xs[0] != 0 {
		t.Errorf("first abscissa = %g, want 0", xs[0])
	}
}
