package hydrograph

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

const (
	kmToMile  = 0.621371
	km2ToMi2  = 0.386102
	cfsToM3s  = 0.0283168
	inchesMM  = 25.4
	mmPerKm2M = 1000 // m³ per km² per mm of depth
)

// snyderLag returns Snyder's basin lag, tp = Ct·(L·Lc)^0.3 with L and Lc in
// miles and tp in hours.
func snyderLag(lengthKm, lcKm, ct float64) float64 {
	lengthMi := lengthKm * kmToMile
	lcMi := lcKm * kmToMile
	return ct * math.Pow(lengthMi*lcMi, 0.3)
}

// snyderPeak returns the peak discharge (m³/s) of the standard Snyder unit
// hydrograph, a 1 inch (25.4 mm) excess pulse: Qp = 640·Cp·A/tp in cfs with
// A in mi².
func snyderPeak(areaKm2, lagHr, cp float64) float64 {
	areaMi2 := areaKm2 * km2ToMi2
	qpCfs := 640 * cp * areaMi2 / lagHr
	return qpCfs * cfsToM3s
}

// snyderWidths returns the hydrograph widths (hours) at 50% and 75% of the
// peak: W = c·(Qp/A)^-1.08 with Qp in cfs and A in mi².
func snyderWidths(qpM3s, areaKm2 float64) (w50, w75 float64) {
	qpCfs := qpM3s / cfsToM3s
	areaMi2 := areaKm2 * km2ToMi2
	qpA := qpCfs / areaMi2
	w50 = 770 * math.Pow(qpA, -1.08)
	w75 = 440 * math.Pow(qpA, -1.08)
	return w50, w75
}

// snyderUH builds Snyder's synthetic unit hydrograph. The shape is
// reconstructed by linear interpolation through the published key points
// (rise and fall crossings of the W50/W75 widths around the peak); the base
// time is solved so the enclosed volume matches the excess pulse, then the
// ordinates are rescaled from the 25.4 mm regression pulse to 1 mm.
func snyderUH(basin Basin, dtHr, ct, cp float64) (UnitHydrograph, error) {
	if err := validateBasinStep(basin, dtHr); err != nil {
		return UnitHydrograph{}, err
	}
	if basin.LengthKm <= 0 || basin.LcKm <= 0 {
		return UnitHydrograph{}, fmt.Errorf("snyder method requires channel length and centroid distance, got L=%g km, Lc=%g km", basin.LengthKm, basin.LcKm)
	}
	if ct == 0 {
		ct = 2.0
	}
	if cp == 0 {
		cp = 0.6
	}
	if ct <= 0 {
		return UnitHydrograph{}, fmt.Errorf("snyder Ct must be > 0, got %g", ct)
	}
	if cp <= 0 || cp > 1 {
		return UnitHydrograph{}, fmt.Errorf("snyder Cp must be in (0, 1], got %g", cp)
	}

	lag := snyderLag(basin.LengthKm, basin.LcKm, ct)
	qp := snyderPeak(basin.Area.Km2(), lag, cp)
	w50, w75 := snyderWidths(qp, basin.Area.Km2())

	// Key points: widths are split one third before the peak, two thirds after.
	tKey := []float64{
		0,
		lag - w50/3,
		lag - w75/3,
		lag,
		lag + 2*w75/3,
		lag + 2*w50/3,
	}
	qKey := []float64{0, 0.5 * qp, 0.75 * qp, qp, 0.75 * qp, 0.5 * qp}

	// Close the base time so the shape encloses the 25.4 mm pulse volume.
	targetM3 := basin.Area.Km2() * mmPerKm2M * inchesMM
	enclosed := 0.0
	for i := 1; i < len(tKey); i++ {
		enclosed += (tKey[i] - tKey[i-1]) * (qKey[i] + qKey[i-1]) / 2 * 3600
	}
	tailM3 := targetM3 - enclosed
	tFall50 := tKey[len(tKey)-1]
	tb := tFall50 + dtHr
	if tailM3 > 0 {
		// Final recession from 0.5·qp to zero: area = 0.25·qp·(tb - tFall50).
		tb = tFall50 + tailM3/(0.25*qp*3600)
	}
	tKey = append(tKey, tb)
	qKey = append(qKey, 0)

	xs, ys := sanitizeKeyPoints(tKey, qKey)
	var shape interp.PiecewiseLinear
	if err := shape.Fit(xs, ys); err != nil {
		return UnitHydrograph{}, fmt.Errorf("fitting snyder shape: %w", err)
	}

	time := timeAxis(tb, dtHr)
	flow := make([]float64, len(time))
	for i, t := range time {
		if t > tb {
			continue
		}
		q := shape.Predict(t) / inchesMM
		if q < 0 {
			q = 0
		}
		flow[i] = q
	}

	return UnitHydrograph{TimeHr: time, FlowPerMM: flow}, nil
}

// sanitizeKeyPoints sorts the key points by time, clamps negative times to
// zero and drops duplicate abscissae so the axis is strictly increasing, as
// the interpolator requires. Negative rise times occur for very small lags
// relative to the widths.
func sanitizeKeyPoints(ts, qs []float64) ([]float64, []float64) {
	type pt struct{ t, q float64 }
	pts := make([]pt, len(ts))
	for i := range ts {
		t := ts[i]
		if t < 0 {
			t = 0
		}
		pts[i] = pt{t: t, q: qs[i]}
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].t < pts[j].t })

	xs := make([]float64, 0, len(pts))
	ys := make([]float64, 0, len(pts))
	for _, p := range pts {
		if n := len(xs); n > 0 && p.t <= xs[n-1] {
			continue
		}
		xs = append(xs, p.t)
		ys = append(ys, p.q)
	}
	return xs, ys
}
