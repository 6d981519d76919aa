package hydrograph

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/interp"
)

// The NRCS dimensionless unit hydrograph (NEH-630 ch. 16), tabulated as
// t/Tp vs q/qp for the standard peak rate factor of 484. The curve is
// immutable shared data; the fitted interpolant is built once on first use.
var dimensionlessTTp = []float64{
	0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9,
	1.0, 1.1, 1.2, 1.3, 1.4, 1.5, 1.6, 1.7, 1.8, 1.9,
	2.0, 2.2, 2.4, 2.6, 2.8, 3.0, 3.2, 3.4, 3.6, 3.8,
	4.0, 4.5, 5.0,
}

var dimensionlessQQp = []float64{
	0.000, 0.030, 0.100, 0.190, 0.310, 0.470, 0.660, 0.820, 0.930, 0.990,
	1.000, 0.990, 0.930, 0.860, 0.780, 0.680, 0.560, 0.460, 0.390, 0.330,
	0.280, 0.207, 0.147, 0.107, 0.077, 0.055, 0.040, 0.029, 0.021, 0.015,
	0.011, 0.005, 0.000,
}

// defaultPRF is the national-average SCS peak rate factor.
const defaultPRF = 484

var (
	dimensionlessOnce  sync.Once
	dimensionlessCurve interp.PiecewiseLinear
)

// dimensionlessOrdinate returns q/qp of the NRCS dimensionless curve at a
// given t/Tp. Beyond the tabulated domain the response is zero.
func dimensionlessOrdinate(tTp float64) float64 {
	dimensionlessOnce.Do(func() {
		// The tabulated abscissae are strictly increasing, so Fit cannot fail.
		_ = dimensionlessCurve.Fit(dimensionlessTTp, dimensionlessQQp)
	})
	if tTp < dimensionlessTTp[0] || tTp > dimensionlessTTp[len(dimensionlessTTp)-1] {
		return 0
	}
	return dimensionlessCurve.Predict(tTp)
}

// scsCurvilinearUH builds the SCS curvilinear unit hydrograph by scaling
// the dimensionless curve to the basin's Tp and peak discharge. prf
// overrides the peak rate factor; zero selects 484.
func scsCurvilinearUH(basin Basin, dtHr, prf float64) (UnitHydrograph, error) {
	if err := validateBasinStep(basin, dtHr); err != nil {
		return UnitHydrograph{}, err
	}
	if prf == 0 {
		prf = defaultPRF
	}
	if prf < 0 {
		return UnitHydrograph{}, fmt.Errorf("peak rate factor must be > 0, got %g", prf)
	}

	tp := TimeToPeak(basin.TcHr, dtHr)

	qpStd, err := scsTriangularPeak(basin.Area.Km2(), 1.0, tp)
	if err != nil {
		return UnitHydrograph{}, err
	}
	qp := prf / defaultPRF * qpStd

	tb := dimensionlessTTp[len(dimensionlessTTp)-1] * tp
	time := timeAxis(tb, dtHr)
	flow := make([]float64, len(time))
	for i, t := range time {
		flow[i] = qp * dimensionlessOrdinate(t/tp)
	}

	return UnitHydrograph{TimeHr: time, FlowPerMM: flow}, nil
}
