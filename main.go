// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/solenito/picc-study/cyc"
	"github.com/solenito/picc-study/inp"
	"github.com/solenito/picc-study/out"
	"github.com/solenito/picc-study/picc"
	"github.com/solenito/picc-study/sig"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "analysis", ".json", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nPICC Study -- force-displacement post-processing\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save plots", "doplot", doplot,
		))
	}

	// analysis data
	ad, err := inp.ReadAnalysis(fnamepath)
	if err != nil {
		chk.Panic("cannot load analysis data:\n%v", err)
	}

	// run
	if len(ad.Compare) > 0 {
		runComparison(ad, doplot)
		return
	}
	if ad.SplitArms() {
		if err := runSplitArms(ad, ad.File, "offsets", doplot); err != nil {
			chk.Panic("analysis of %q failed:\n%v", ad.File, err)
		}
		return
	}
	if err := runHistory(ad, doplot); err != nil {
		chk.Panic("analysis of %q failed:\n%v", ad.File, err)
	}
}

// runHistory processes a whole force-displacement history: cleaning,
// peak detection, cycle extraction, then both estimators on the arms
func runHistory(ad *inp.AnalysisData, doplot bool) (err error) {

	// read and clean record
	tab, err := inp.ReadTable(ad.File, ad.Sheet)
	if err != nil {
		return
	}
	force, err := tab.Column(ad.ForceCol)
	if err != nil {
		return
	}
	disp, err := tab.Column(ad.DispCol)
	if err != nil {
		return
	}
	s, removed, err := sig.Clean(force, disp, ad.DispScale)
	if err != nil {
		return
	}

	// detect cycles and slice the requested one
	peaks, err := cyc.Peaks(s.X, ad.PeakFrac)
	if err != nil {
		return
	}
	c, err := cyc.Extract(s.X, s.Y, peaks, ad.Cycle, ad.ForceMin)
	if err != nil {
		return
	}

	// report
	io.Pf("\n=== FINAL REPORT ===============================\n")
	io.Pf("data points        = %d\n", s.Len())
	io.Pf("samples removed    = %d\n", removed)
	io.Pf("cycles detected    = %d\n", len(peaks))
	io.Pf("maximum force      = %g\n", floats.Max(s.X))
	io.Pf("minimum force      = %g\n", floats.Min(s.X))
	io.Pf("maximum displ.     = %g\n", floats.Max(s.Y))
	io.Pf("cycle %d loading   = [%d,%d)\n", c.Number, c.Loading.Lo, c.Loading.Hi)
	io.Pf("cycle %d unloading = [%d,%d)\n", c.Number, c.Unloading.Lo, c.Unloading.Hi)

	// compliance-offset method over the selected cycle
	res, err := picc.ComplianceOffset(
		c.Loading.Force, c.Loading.Disp,
		c.Unloading.Force, c.Unloading.Disp,
		floats.Min(c.Loading.Force), floats.Max(c.Loading.Force), floats.Min(c.Unloading.Force),
		ad.Offset, ad.WithUnloading,
	)
	if err != nil {
		return
	}
	io.Pforan("fully-open compliance C0 = %g\n", res.Loading.C0)

	// pointwise local-compliance offset of the loading arm
	var lc *picc.LocalCurve
	if ad.LocalFrac > 0 {
		lc, err = picc.LocalOffsetCurve(c.Loading.Force, c.Loading.Disp, ad.LocalFrac)
		if err != nil {
			return
		}
		io.Pforan("pointwise reference compliance C0 = %g\n", lc.C0)
	}

	// stiffness-intersection method, per arm
	var topen, tclose *picc.Transition
	if hasWindow(ad.LoadRegime1) && hasWindow(ad.LoadRegime2) {
		topen, err = picc.FindTransition(c.Loading.Force, c.Loading.Disp, ad.LoadRegime1, ad.LoadRegime2)
		if err != nil {
			return
		}
		reportTransition("opening", topen)
	}
	if hasWindow(ad.UnloadRegime1) && hasWindow(ad.UnloadRegime2) {
		tclose, err = picc.FindTransition(c.Unloading.Force, c.Unloading.Disp, ad.UnloadRegime1, ad.UnloadRegime2)
		if err != nil {
			return
		}
		reportTransition("closure", tclose)
	}

	// plots
	if doplot {
		out.Overview(s, peaks, ad.DirOut, "overview")
		out.Arms(c, ad.DirOut, io.Sf("cycle%d", c.Number))
		out.Offsets(res, floats.Max(c.Loading.Force), ad.DirOut, io.Sf("offsets-cycle%d", c.Number))
		if lc != nil {
			out.LocalOffset(lc, ad.DirOut, io.Sf("local-cycle%d", c.Number))
		}
		if topen != nil {
			out.Regimes(c.Loading.Force, c.Loading.Disp, topen, ad.DirOut, io.Sf("opening-cycle%d", c.Number))
		}
		if tclose != nil {
			out.Regimes(c.Unloading.Force, c.Unloading.Disp, tclose, ad.DirOut, io.Sf("closure-cycle%d", c.Number))
		}
	}
	return
}

// runSplitArms processes a table with pre-extracted arm columns through
// the compliance-offset method
func runSplitArms(ad *inp.AnalysisData, fname, fnkey string, doplot bool) (err error) {
	res, fmax, err := offsetPipeline(ad, fname)
	if err != nil {
		return
	}
	io.Pforan("%s: fully-open compliance C0 = %g\n", fname, res.Loading.C0)
	if doplot {
		out.Offsets(res, fmax, ad.DirOut, fnkey)
	}
	return
}

// runComparison runs the offset pipeline over every file of a labelled
// set concurrently and overlays the resulting curves. A failed file is
// reported and skipped; the other pipelines are unaffected.
func runComparison(ad *inp.AnalysisData, doplot bool) {
	n := len(ad.Compare)
	labels := make([]string, n)
	results := make([]*picc.OffsetResult, n)
	fmaxs := make([]float64, n)
	var eg errgroup.Group
	for i, cf := range ad.Compare {
		i, cf := i, cf
		labels[i] = cf.Label
		eg.Go(func() error {
			res, fmax, err := offsetPipeline(ad, cf.File)
			if err != nil {
				io.Pfyel("skipping %q:\n%v\n", cf.File, err)
				return nil
			}
			results[i] = res
			fmaxs[i] = fmax
			return nil
		})
	}
	eg.Wait()

	// summary
	io.Pf("\n=== COMPARISON SUMMARY =========================\n")
	nok := 0
	for i, res := range results {
		if res == nil {
			continue
		}
		nok++
		io.Pf("%-12s C0 = %g\n", labels[i], res.Loading.C0)
	}
	io.Pf("successfully processed %d/%d files\n", nok, n)
	if doplot && nok > 0 {
		out.CompareOffsets(labels, results, fmaxs, ad.DirOut, "comparison")
	}
}

// offsetPipeline reads one split-arm table, cleans both arms and runs
// the compliance-offset method
func offsetPipeline(ad *inp.AnalysisData, fname string) (res *picc.OffsetResult, fmax float64, err error) {
	tab, err := inp.ReadTable(fname, ad.Sheet)
	if err != nil {
		return
	}
	load, err := cleanPair(tab, ad.ForceLoadCol, ad.DispLoadCol, ad.DispScale)
	if err != nil {
		return
	}
	unload, err := cleanPair(tab, ad.ForceUnloadCol, ad.DispUnloadCol, ad.DispScale)
	if err != nil {
		return
	}
	fmax = floats.Max(load.X)
	res, err = picc.ComplianceOffset(
		load.X, load.Y, unload.X, unload.Y,
		floats.Min(load.X), fmax, floats.Min(unload.X),
		ad.Offset, ad.WithUnloading,
	)
	return
}

func cleanPair(tab *inp.Table, forceCol, dispCol string, scale float64) (s *sig.Series, err error) {
	force, err := tab.Column(forceCol)
	if err != nil {
		return
	}
	disp, err := tab.Column(dispCol)
	if err != nil {
		return
	}
	s, removed, err := sig.Clean(force, disp, scale)
	if err != nil {
		return
	}
	if removed > 0 {
		io.Pfyel("%s: %d invalid samples removed\n", tab.Path, removed)
	}
	return
}

func reportTransition(kind string, t *picc.Transition) {
	io.Pforan("%s: intersection at u=%g, K=%g\n", kind, t.X, t.Y)
	io.Pforan("%s load = %g, ratio = %g\n", kind, t.Load, t.Ratio)
	if t.Clamped {
		io.Pfyel("%s: intersection outside sampled range; clamped to boundary sample %d\n", kind, t.Idx)
	}
}

func hasWindow(w picc.RegimeWindow) bool {
	return w != (picc.RegimeWindow{})
}
