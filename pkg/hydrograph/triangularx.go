package hydrograph

import "fmt"

// triangularXUH builds the generalized triangular unit hydrograph of the
// GZ/Porto method. X is the recession/rise time ratio:
//
//	Tp = 0.5·ΔD + 0.6·Tc
//	qp = 0.278·(A/Tp)·2/(1+X)   [A km², qp m³/s per mm]
//	Tb = (1+X)·Tp
//
// X = 1 approximates the symmetric rational-method triangle; values up to
// about 12 model flat rural basins. The published formula is quoted for
// areas in hectares (qp = 0.00278·A[ha]/Tp·2/(1+X)); the Area type
// normalizes that convention here.
func triangularXUH(basin Basin, dtHr float64) (UnitHydrograph, error) {
	if err := validateBasinStep(basin, dtHr); err != nil {
		return UnitHydrograph{}, err
	}
	x := basin.XFactor
	if x == 0 {
		x = 1.0
	}
	if x < 1.0 {
		return UnitHydrograph{}, fmt.Errorf("x factor must be >= 1.0, got %g", x)
	}

	tp := 0.5*dtHr + 0.6*basin.TcHr
	qp := 0.00278 * basin.Area.Hectares() / tp * 2 / (1 + x)
	tb := (1 + x) * tp
	tr := tb - tp // X·Tp

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
