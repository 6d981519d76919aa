package hydrograph

import "fmt"

// scsTriangularPeak returns the peak discharge of the SCS triangular unit
// hydrograph, qp = 2.08·A·Q/Tp (qp m³/s, A km², Q cm, Tp hr), taking the
// runoff depth in mm. The 2.08 constant assumes centimeters of runoff;
// quoting it against millimeters overstates every ordinate tenfold, so the
// depth is converted before applying it.
func scsTriangularPeak(areaKm2, runoffMM, tpHr float64) (float64, error) {
	if areaKm2 <= 0 {
		return 0, fmt.Errorf("basin area must be > 0, got %g km²", areaKm2)
	}
	if runoffMM < 0 {
		return 0, fmt.Errorf("runoff depth cannot be negative, got %g mm", runoffMM)
	}
	if tpHr <= 0 {
		return 0, fmt.Errorf("time to peak must be > 0, got %g hr", tpHr)
	}
	return 2.08 * areaKm2 * (runoffMM / 10) / tpHr, nil
}

// scsTriangularUH builds the SCS triangular unit hydrograph: a linear rise
// to qp at Tp followed by a linear recession over Tr = 1.67·Tp, with base
// time Tb = 2.67·Tp.
func scsTriangularUH(basin Basin, dtHr float64) (UnitHydrograph, error) {
	if err := validateBasinStep(basin, dtHr); err != nil {
		return UnitHydrograph{}, err
	}

	tp := TimeToPeak(basin.TcHr, dtHr)
	tb := TimeBase(tp)
	tr := 1.67 * tp

	qp, err := scsTriangularPeak(basin.Area.Km2(), 1.0, tp)
	if err != nil {
		return UnitHydrograph{}, err
	}

	time := timeAxis(tb, dtHr)
	flow := make([]float64, len(time))
	for i, t := range time {
		var q float64
		if t <= tp {
			q = qp * t / tp
		} else {
			q = qp * (tb - t) / tr
		}
		if q < 0 {
			q = 0
		}
		flow[i] = q
	}

	return UnitHydrograph{TimeHr: time, FlowPerMM: flow}, nil
}
