// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements plotting of the post-processing results:
// force-displacement overviews, compliance-offset signatures and
// stiffness regimes with their intersection
package out

import (
	"math"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"

	"github.com/solenito/picc-study/cyc"
	"github.com/solenito/picc-study/fit"
	"github.com/solenito/picc-study/picc"
	"github.com/solenito/picc-study/sig"
)

// palette for comparison overlays
var colors = []string{"r", "b", "g", "orange", "m", "brown"}

// Overview plots the whole force-displacement history with the
// detected cycle peaks marked
func Overview(s *sig.Series, peaks []int, dirout, fnkey string) {
	plt.Reset(false, nil)
	plt.Plot(s.Y, s.X, &plt.A{C: "b", Lw: 1.5, L: "force vs displacement", NoClip: true})
	pu := make([]float64, len(peaks))
	pf := make([]float64, len(peaks))
	for i, p := range peaks {
		pu[i] = s.Y[p]
		pf[i] = s.X[p]
	}
	plt.Plot(pu, pf, &plt.A{C: "r", M: "o", Ls: "none", L: "cycle peaks", NoClip: true})
	plt.Gll("displacement [mm]", "force [N]", nil)
	plt.Save(dirout, fnkey)
}

// Arms plots the loading and unloading arms of one cycle
func Arms(c *cyc.Cycle, dirout, fnkey string) {
	plt.Reset(false, nil)
	plt.Plot(c.Loading.Disp, c.Loading.Force, &plt.A{C: "g", Lw: 2, L: "loading", NoClip: true})
	plt.Plot(c.Unloading.Disp, c.Unloading.Force, &plt.A{C: "m", Lw: 2, L: "unloading", NoClip: true})
	plt.Gll("displacement [mm]", "force [N]", nil)
	plt.Save(dirout, fnkey)
}

// Offsets plots the compliance-offset curves of one cycle, positions
// normalized by the peak force, with the zero-offset line marked
func Offsets(res *picc.OffsetResult, fmax float64, dirout, fnkey string) {
	plt.Reset(false, nil)
	plotOffset(res.Loading, fmax, &plt.A{C: "r", Lw: 2, L: "loading", NoClip: true})
	if res.Unloading != nil {
		plotOffset(res.Unloading, fmax, &plt.A{C: "b", Lw: 2, L: "unloading", NoClip: true})
	}
	zeroline(res, fmax)
	plt.Gll("$C_{off}$ [%]", "$\\sigma/\\sigma_{max}$", nil)
	plt.Save(dirout, fnkey)
}

// CompareOffsets overlays the offset curves of a labelled file set
func CompareOffsets(labels []string, results []*picc.OffsetResult, fmaxs []float64, dirout, fnkey string) {
	plt.Reset(false, nil)
	for i, res := range results {
		if res == nil {
			continue // failed file, skipped by the driver
		}
		args := &plt.A{C: colors[i%len(colors)], Lw: 2, L: labels[i], NoClip: true}
		plotOffset(res.Loading, fmaxs[i], args)
		if res.Unloading != nil {
			plotOffset(res.Unloading, fmaxs[i], &plt.A{C: args.C, Lw: 2, NoClip: true})
		}
	}
	plt.Gll("$C_{off}$ [%]", "$\\sigma/\\sigma_{max}$", nil)
	plt.Save(dirout, fnkey)
}

// Regimes plots the pointwise stiffness of one arm together with the
// two prolonged regime lines and their intersection
func Regimes(force, disp []float64, t *picc.Transition, dirout, fnkey string) {
	slopes, err := sig.Stiffness(force, disp)
	if err != nil {
		return
	}
	dd, ss := finitePairs(disp, slopes)
	plt.Reset(false, nil)
	plt.Plot(dd, ss, &plt.A{C: "orange", M: ".", Ls: "none", L: "dF/dU", NoClip: true})
	x1 := utl.LinSpace(floats.Min(dd), t.X, 100)
	x2 := utl.LinSpace(t.X, floats.Max(dd), 100)
	plt.Plot(x1, evalLine(t.Regime1, x1), &plt.A{C: "r", Lw: 1.5, L: "regime 1", NoClip: true})
	plt.Plot(x2, evalLine(t.Regime2, x2), &plt.A{C: "b", Lw: 1.5, L: "regime 2", NoClip: true})
	plt.Plot([]float64{t.X}, []float64{t.Y}, &plt.A{C: "k", M: "o", Ls: "none", Ms: 8, L: "intersection", NoClip: true})
	plt.Gll("displacement [mm]", "stiffness dF/dU [N/mm]", nil)
	plt.Save(dirout, fnkey)
}

// LocalOffset plots the pointwise local-compliance offset curve
func LocalOffset(c *picc.LocalCurve, dirout, fnkey string) {
	plt.Reset(false, nil)
	plt.Plot(c.Offset, c.Ratio, &plt.A{C: "m", Lw: 2, L: "$C_{off}$ (pointwise)", NoClip: true})
	plt.Gll("$C_{off}$ [%]", "$\\sigma/\\sigma_{max}$", nil)
	plt.Save(dirout, fnkey)
}

func plotOffset(c *picc.OffsetCurve, fmax float64, args *plt.A) {
	if c == nil {
		return
	}
	ratio := make([]float64, len(c.X))
	for i, x := range c.X {
		ratio[i] = x / fmax
	}
	plt.Plot(c.Offset, ratio, args)
}

// zeroline draws the Coff=0 marker spanning the plotted ratio range
func zeroline(res *picc.OffsetResult, fmax float64) {
	lo := floats.Min(res.Loading.X) / fmax
	hi := floats.Max(res.Loading.X) / fmax
	if res.Unloading != nil {
		lo = min(lo, floats.Min(res.Unloading.X)/fmax)
		hi = max(hi, floats.Max(res.Unloading.X)/fmax)
	}
	plt.Plot([]float64{0, 0}, []float64{lo, hi}, &plt.A{C: "k", Ls: "--", Lw: 1, L: "$C_{off}=0$", NoClip: true})
}

func evalLine(l fit.Line, x []float64) []float64 {
	y := make([]float64, len(x))
	for i := range x {
		y[i] = l.Eval(x[i])
	}
	return y
}

// finitePairs drops samples with non-finite stiffness before plotting
func finitePairs(x, y []float64) (xs, ys []float64) {
	for i := range x {
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return
}
