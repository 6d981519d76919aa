package tc

import (
	"math"
	"testing"
)

func TestKirpichTc(t *testing.T) {
	tests := []struct {
		name     string
		lengthM  float64
		slope    float64
		surface  Surface
		expected float64 // hours
	}{
		{
			// 0.0195 × 1000^0.77 × 0.01^-0.385 / 60
			name:     "natural channel",
			lengthM:  1000,
			slope:    0.01,
			surface:  SurfaceNatural,
			expected: 0.0195 * math.Pow(1000, 0.77) * math.Pow(0.01, -0.385) / 60,
		},
		{
			name:     "grassy doubles the estimate",
			lengthM:  1000,
			slope:    0.01,
			surface:  SurfaceGrassy,
			expected: 2 * 0.0195 * math.Pow(1000, 0.77) * math.Pow(0.01, -0.385) / 60,
		},
		{
			name:     "concrete channel shortens it",
			lengthM:  1000,
			slope:    0.01,
			surface:  SurfaceConcreteChannel,
			expected: 0.2 * 0.0195 * math.Pow(1000, 0.77) * math.Pow(0.01, -0.385) / 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KirpichTc(tt.lengthM, tt.slope, tt.surface)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("KirpichTc = %g hr, want %g", got, tt.expected)
			}
		})
	}
}

func TestTemezTc(t *testing.T) {
	// tc = 0.3 × (5 / 0.02^0.25)^0.76
	want := 0.3 * math.Pow(5/math.Pow(0.02, 0.25), 0.76)
	got, err := TemezTc(5, 0.02)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("TemezTc = %g hr, want %g", got, want)
	}
}

func TestSteeperIsFaster(t *testing.T) {
	flat, err := KirpichTc(1000, 0.005, SurfaceNatural)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	steep, err := KirpichTc(1000, 0.05, SurfaceNatural)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if steep >= flat {
		t.Errorf("steeper basin should concentrate faster: %g vs %g", steep, flat)
	}

	tFlat, err := TemezTc(5, 0.005)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tSteep, err := TemezTc(5, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tSteep >= tFlat {
		t.Errorf("steeper basin should concentrate faster: %g vs %g", tSteep, tFlat)
	}
}

func TestFAATc(t *testing.T) {
	// Higher C (more impervious) shortens the estimate.
	slow, err := FAATc(300, 2, 0.3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fast, err := FAATc(300, 2, 0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fast >= slow {
		t.Errorf("more impervious cover should concentrate faster: %g vs %g", fast, slow)
	}
}

func TestDesbordesTc(t *testing.T) {
	// Tc[min] = 5 + 6.625 × 50^0.3 × 2^-0.39 × 0.5^-0.45
	want := (5 + 6.625*math.Pow(50, 0.3)*math.Pow(2, -0.39)*math.Pow(0.5, -0.45)) / 60
	got, err := DesbordesTc(50, 2, 0.5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("DesbordesTc = %g hr, want %g", got, want)
	}
}

func TestKinematicTc(t *testing.T) {
	got, err := KinematicTc(100, 0.15, 0.02, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 6.92 * math.Pow(100, 0.6) * math.Pow(0.15, 0.6) /
		(math.Pow(50, 0.4) * math.Pow(0.02, 0.3)) / 60
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("KinematicTc = %g hr, want %g", got, want)
	}
}

func TestEstimateDispatch(t *testing.T) {
	tests := []struct {
		name    string
		method  Method
		in      Inputs
		wantErr bool
	}{
		{
			name:   "kirpich",
			method: Kirpich,
			in:     Inputs{LengthM: 1000, SlopeMM: 0.01, Surface: SurfaceNatural},
		},
		{
			name:   "temez",
			method: Temez,
			in:     Inputs{LengthM: 5000, SlopeMM: 0.02},
		},
		{
			name:   "california",
			method: California,
			in:     Inputs{LengthM: 5000, ElevationDiffM: 80},
		},
		{
			name:   "faa",
			method: FAA,
			in:     Inputs{LengthM: 300, SlopePct: 2, RunoffC: 0.6},
		},
		{
			name:   "kinematic",
			method: Kinematic,
			in:     Inputs{LengthM: 100, ManningN: 0.15, SlopeMM: 0.02, IntensityMMHr: 50},
		},
		{
			name:   "desbordes with default entry time",
			method: Desbordes,
			in:     Inputs{AreaHa: 50, SlopePct: 2, RunoffC: 0.5},
		},
		{
			name:    "unknown method",
			method:  Method("scs_velocity"),
			in:      Inputs{LengthM: 1000, SlopeMM: 0.01},
			wantErr: true,
		},
		{
			name:    "missing inputs",
			method:  Kirpich,
			in:      Inputs{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Estimate(tt.method, tt.in)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got <= 0 {
				t.Errorf("Tc = %g hr, want > 0", got)
			}
		})
	}
}
