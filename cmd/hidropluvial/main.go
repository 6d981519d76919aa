// Command hidropluvial assembles design-storm discharge hydrographs from
// basin morphology and either an explicit rainfall-excess series or a
// DINAGUA design storm run through the curve number procedure.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hidropluvial/hidropluvial/internal/log"
	"github.com/hidropluvial/hidropluvial/internal/storage"
	"github.com/hidropluvial/hidropluvial/pkg/hydrograph"
	"github.com/hidropluvial/hidropluvial/pkg/runoff"
	"github.com/hidropluvial/hidropluvial/pkg/storm"
)

func main() {
	var (
		// Basin morphology
		areaKm2   = flag.Float64("area-km2", 0, "Basin area in km²")
		areaHa    = flag.Float64("area-ha", 0, "Basin area in hectares (alternative to -area-km2)")
		tc        = flag.Float64("tc", 0, "Time of concentration in hours (required)")
		lengthKm  = flag.Float64("length-km", 0, "Main channel length in km (Snyder)")
		lcKm      = flag.Float64("lc-km", 0, "Outlet-to-centroid distance in km (Snyder)")
		storageHr = flag.Float64("storage-hr", 0, "Clark storage coefficient R in hours (0 = 2·Tc)")

		// Method selection and coefficients
		method = flag.String("method", "scs_curvilinear", "Unit hydrograph method: scs_triangular, scs_curvilinear, gamma, snyder, clark, triangular_x")
		dt     = flag.Float64("dt", 0, "Computation step in hours (0 = recommended from Tc)")
		prf    = flag.Float64("prf", 0, "Peak rate factor for scs_curvilinear (0 = 484)")
		ct     = flag.Float64("ct", 0, "Snyder lag coefficient Ct (0 = 2.0)")
		cp     = flag.Float64("cp", 0, "Snyder peaking coefficient Cp (0 = 0.6)")
		gammaM = flag.Float64("gamma-m", 0, "Gamma shape exponent m (0 = 3.7)")
		xf     = flag.Float64("x", 0, "Triangular-X recession/rise ratio (0 = 1.0)")

		// Rainfall input: explicit excess or DINAGUA design storm
		excess   = flag.String("excess", "", "Comma-separated rainfall excess per step in mm")
		p310     = flag.Float64("p310", 0, "DINAGUA base depth P3,10 in mm (enables design-storm mode)")
		tr       = flag.Float64("tr", 10, "Return period in years")
		duration = flag.Float64("duration", 6, "Storm duration in hours")
		peakPos  = flag.Float64("peak-pos", 0.5, "Alternating blocks peak position in [0, 1]")
		cn       = flag.Float64("cn", 0, "SCS curve number for the design-storm mode")

		// Persistence
		dbPath = flag.String("db", "", "SQLite database path for saving the run")
		name   = flag.String("name", "basin", "Basin name used when saving")
		list   = flag.Bool("list", false, "List stored analyses and exit (requires -db)")

		debug = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *list {
		if *dbPath == "" {
			fmt.Fprintln(os.Stderr, "Error: -list requires -db")
			os.Exit(1)
		}
		if err := listAnalyses(*dbPath); err != nil {
			log.Errorf("listing analyses: %v", err)
			os.Exit(1)
		}
		return
	}

	basin, err := buildBasin(*areaKm2, *areaHa, *tc, *lengthKm, *lcKm, *storageHr, *xf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.PrintDefaults()
		os.Exit(1)
	}

	m := hydrograph.Method(*method)
	step := *dt
	if step == 0 {
		stormMethod := ""
		if *p310 > 0 {
			stormMethod = "alternating_blocks_dinagua"
		}
		step = hydrograph.RecommendedStep(basin.TcHr, stormMethod)
		log.Debugf("using recommended step %.4g hr", step)
	}

	excessMM, err := excessSeries(*excess, *p310, *tr, *duration, *peakPos, *cn, basin.Area.Km2(), step)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := hydrograph.Options{PRF: *prf, Ct: *ct, Cp: *cp, GammaM: *gammaM}
	out, err := hydrograph.Generate(excessMM, m, basin, step, opts)
	if err != nil {
		log.Errorf("generating hydrograph: %v", err)
		os.Exit(1)
	}

	printSummary(out, basin, step)

	if *dbPath != "" {
		if err := saveRun(*dbPath, *name, basin, step, out); err != nil {
			log.Errorf("saving run: %v", err)
			os.Exit(1)
		}
	}
}

func buildBasin(areaKm2, areaHa, tc, lengthKm, lcKm, storageHr, xf float64) (hydrograph.Basin, error) {
	var area hydrograph.Area
	switch {
	case areaKm2 > 0 && areaHa > 0:
		return hydrograph.Basin{}, fmt.Errorf("give the area once, as -area-km2 or -area-ha")
	case areaKm2 > 0:
		area = hydrograph.AreaFromKm2(areaKm2)
	case areaHa > 0:
		area = hydrograph.AreaFromHectares(areaHa)
	default:
		return hydrograph.Basin{}, fmt.Errorf("basin area is required (-area-km2 or -area-ha)")
	}
	if tc <= 0 {
		return hydrograph.Basin{}, fmt.Errorf("time of concentration is required (-tc)")
	}
	return hydrograph.Basin{
		Area:      area,
		TcHr:      tc,
		LengthKm:  lengthKm,
		LcKm:      lcKm,
		StorageHr: storageHr,
		XFactor:   xf,
	}, nil
}

// excessSeries resolves the rainfall excess: an explicit -excess list wins;
// otherwise -p310 drives a DINAGUA alternating-blocks storm filtered
// through the curve number procedure.
func excessSeries(raw string, p310, tr, duration, peakPos, cn, areaKm2, stepHr float64) ([]float64, error) {
	if raw != "" {
		return parseSeries(raw)
	}
	if p310 <= 0 {
		return nil, fmt.Errorf("rainfall input is required: -excess or -p310")
	}
	if cn <= 0 {
		return nil, fmt.Errorf("design-storm mode requires a curve number (-cn)")
	}
	if p310 < 50 || p310 > 120 {
		log.Warnf("P3,10 = %g mm is outside the typical Uruguay range (50-120 mm)", p310)
	}
	if areaKm2 > 300 {
		log.Warnf("area %g km² exceeds 300 km²; verify the areal reduction against regional studies", areaKm2)
	}

	h, err := storm.AlternatingBlocksDINAGUA(p310, tr, duration, stepHr*60, areaKm2, peakPos)
	if err != nil {
		return nil, fmt.Errorf("building design storm: %w", err)
	}
	log.Infow("design storm",
		"total_mm", h.TotalDepthMM,
		"peak_mmhr", h.PeakIntensityMMHr,
		"blocks", len(h.DepthMM),
	)

	excess, err := runoff.ExcessSeries(h.CumulativeDepths(), cn, 0)
	if err != nil {
		return nil, fmt.Errorf("computing rainfall excess: %w", err)
	}
	return excess, nil
}

func parseSeries(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid excess value %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func printSummary(out *hydrograph.Output, basin hydrograph.Basin, stepHr float64) {
	fmt.Printf("Method:        %s\n", out.Method)
	fmt.Printf("Area:          %.3f km² (%.1f ha)\n", basin.Area.Km2(), basin.Area.Hectares())
	fmt.Printf("Tc:            %.3f hr\n", basin.TcHr)
	fmt.Printf("Step:          %.4f hr\n", stepHr)
	fmt.Printf("Peak flow:     %.3f m³/s\n", out.PeakFlowM3s)
	fmt.Printf("Time to peak:  %.3f hr\n", out.TimeToPeakHr)
	fmt.Printf("Volume:        %.0f m³\n", out.VolumeM3)
	fmt.Printf("\n%s\n", sparkline(out.FlowM3s, 60))
}

// sparkline renders the flow series as a single-line unicode chart,
// resampled to at most width columns.
func sparkline(xs []float64, width int) string {
	if len(xs) == 0 {
		return ""
	}
	ticks := []rune("▁▂▃▄▅▆▇█")

	cols := xs
	if len(xs) > width {
		cols = make([]float64, width)
		for i := range cols {
			cols[i] = xs[i*len(xs)/width]
		}
	}

	max := cols[0]
	for _, v := range cols {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return strings.Repeat(string(ticks[0]), len(cols))
	}

	var b strings.Builder
	for _, v := range cols {
		i := int(v / max * float64(len(ticks)-1))
		if i < 0 {
			i = 0
		}
		b.WriteRune(ticks[i])
	}
	return b.String()
}

func listAnalyses(dbPath string) error {
	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	analyses, err := store.ListAnalyses("")
	if err != nil {
		return err
	}
	if len(analyses) == 0 {
		fmt.Println("No stored analyses.")
		return nil
	}

	fmt.Printf("%-36s  %-16s  %10s  %8s  %12s  %s\n",
		"ID", "METHOD", "PEAK m³/s", "TP hr", "VOLUME m³", "CREATED")
	for _, a := range analyses {
		fmt.Printf("%-36s  %-16s  %10.3f  %8.3f  %12.0f  %s\n",
			a.ID, a.Method, a.PeakM3s, a.TpHr, a.VolumeM3,
			a.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func saveRun(dbPath, name string, basin hydrograph.Basin, stepHr float64, out *hydrograph.Output) error {
	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	b, err := store.SaveBasin(storage.Basin{
		Name:     name,
		AreaKm2:  basin.Area.Km2(),
		TcHr:     basin.TcHr,
		LengthKm: basin.LengthKm,
		LcKm:     basin.LcKm,
	})
	if err != nil {
		return err
	}

	a, err := store.SaveAnalysis(storage.Analysis{
		BasinID:  b.ID,
		Method:   string(out.Method),
		DtHr:     stepHr,
		PeakM3s:  out.PeakFlowM3s,
		TpHr:     out.TimeToPeakHr,
		VolumeM3: out.VolumeM3,
		Series: storage.Series{
			TimeHr:  out.TimeHr,
			FlowM3s: out.FlowM3s,
		},
	})
	if err != nil {
		return err
	}

	log.Infof("saved analysis %s (basin %s)", a.ID, b.ID)
	return nil
}
