// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package picc implements the post-processing core for
// plasticity-induced crack closure studies: the ASTM-style
// compliance-offset method over sliding segments and the
// stiffness-intersection method for crack opening/closure loads
package picc

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/solenito/picc-study/fit"
)

// OffsetParams holds the fractions driving the segment method.
// All values are fractions of the arm's force range.
type OffsetParams struct {
	Span   float64 `json:"span"`   // window width
	Shift  float64 `json:"shift"`  // coarse step between segment centers
	Shift1 float64 `json:"shift1"` // fine step near the low-force boundary
	HL     float64 `json:"hl"`     // upper bound of the fully-open reference band
	F      float64 `json:"f"`      // width of the reference band [HL-F, HL]
}

// DefaultOffsetParams returns the fractions used throughout the
// parametric studies: 10% windows, 5% coarse steps, 1% fine steps and
// the [0.75,1.0] high-load reference band
func DefaultOffsetParams() OffsetParams {
	return OffsetParams{Span: 0.1, Shift: 0.05, Shift1: 0.01, HL: 1.0, F: 0.25}
}

// OffsetCurve is the compliance-offset signature of one arm: signed
// percentage deviations of local compliance from the fully-open
// reference C0, versus segment position along the force axis.
// X is not guaranteed to be monotonic.
type OffsetCurve struct {
	X      []float64 // boundary value, fine centers, then coarse centers
	Offset []float64 // offset percentages: (C0-Ci)*100/C0
	C0     float64   // reference fully-open compliance
}

// OffsetResult pairs the curves of both arms. Unloading is nil when
// only the loading arm was requested.
type OffsetResult struct {
	Loading   *OffsetCurve
	Unloading *OffsetCurve
}

// ReferenceCompliance fits the fully-open compliance C0 over the
// high-load band [xmin+(HL-F)*rng, xmin+HL*rng] of the unloading arm,
// where rng = xmax-xmin. The slope of displacement vs force is C0.
func ReferenceCompliance(force, disp []float64, xmin, xmax float64, prm OffsetParams) (l fit.Line, err error) {
	lo := xmin + (prm.HL-prm.F)*(xmax-xmin)
	hi := xmin + prm.HL*(xmax-xmin)
	xs, ys := window(force, disp, lo, hi)
	if len(xs) < 2 {
		err = chk.Err("insufficient samples in reference window [%g,%g]: %d", lo, hi, len(xs))
		return
	}
	return fit.Points(xs, ys)
}

// ComplianceOffset computes the compliance-offset curves of one cycle
// per the segment method. Force is the independent channel X and
// displacement the dependent one Y. The fully-open reference compliance
// always comes from the unloading arm; the unloading curve itself is
// only computed when both is true.
func ComplianceOffset(loadF, loadU, unloadF, unloadU []float64, loadMin, max, unloadMin float64, prm OffsetParams, both bool) (res *OffsetResult, err error) {

	// fully-open reference
	ref, err := ReferenceCompliance(unloadF, unloadU, unloadMin, max, prm)
	if err != nil {
		return
	}
	c0 := ref.Slope
	if c0 == 0 {
		err = chk.Err("degenerate regression: reference compliance is zero")
		return
	}

	// loading arm: trim samples below the requested minimum first
	lF, lU := loadF, loadU
	if len(lF) > 0 && lF[0] > loadMin {
		istart := nearest(lF, loadMin)
		lF, lU = lF[istart:], lU[istart:]
	}
	loading, err := offsetCurve(lF, lU, loadMin, max, c0, prm)
	if err != nil {
		return
	}
	res = &OffsetResult{Loading: loading}

	if both {
		res.Unloading, err = offsetCurve(unloadF, unloadU, unloadMin, max, c0, prm)
		if err != nil {
			return nil, err
		}
	}
	return
}

// offsetCurve runs the segment method over one arm: coarse overlapping
// segments over the whole range, a finer sub-grid between the first two
// coarse centers (improved method of Chung & Song, 2009), and a linear
// extrapolation of the fine offsets down to the boundary xmin.
func offsetCurve(X, Y []float64, xmin, xmax, c0 float64, prm OffsetParams) (c *OffsetCurve, err error) {

	nseg := NumSegments(prm.Span, prm.Shift)
	if nseg < 2 {
		err = chk.Err("segment parameters {span=%g, shift=%g} yield %d segments; need at least 2", prm.Span, prm.Shift, nseg)
		return
	}
	rng := xmax - xmin
	width := rng * prm.Span

	// coarse centers, both endpoints pinned explicitly
	mid := make([]float64, nseg)
	mid[0] = xmin + rng*0.5*prm.Span
	for j := 1; j <= nseg-2; j++ {
		mid[j] = xmin + rng*(0.5*prm.Span+float64(j)*prm.Shift)
	}
	mid[nseg-1] = xmin + rng*(1.0-0.5*prm.Span)

	off1 := make([]float64, nseg)
	for j := 0; j < nseg; j++ {
		var cj float64
		cj, err = segmentCompliance(X, Y, mid[j], width)
		if err != nil {
			return
		}
		off1[j] = (c0 - cj) * 100.0 / c0
	}

	// fine sub-grid between the first two coarse centers
	step := rng * prm.Shift1
	var fine []float64
	for x := mid[0]; x < mid[1]+step/2.0; x += step {
		fine = append(fine, x)
	}
	off2 := make([]float64, len(fine))
	for k := range fine {
		var ck float64
		ck, err = segmentCompliance(X, Y, fine[k], width)
		if err != nil {
			return
		}
		off2[k] = (c0 - ck) * 100.0 / c0
	}

	// extrapolate the fine offsets to the boundary xmin. A constant
	// offset curve (uncracked response) anchors at that constant; the
	// position-vs-offset fit would have a zero-variance predictor.
	// Offsets are percentages, so variations below 1e-9 are fit noise.
	var anchor float64
	if floats.Max(off2)-floats.Min(off2) <= 1e-9 {
		anchor = stat.Mean(off2, nil)
	} else {
		var l fit.Line
		l, err = fit.Points(off2, fine)
		if err != nil {
			return
		}
		if l.Slope == 0 {
			err = chk.Err("degenerate regression: cannot invert zero extrapolation slope at x=%g", xmin)
			return
		}
		anchor = (xmin - l.Intercept) / l.Slope
	}

	// assemble: boundary anchor, fine curve, then the coarse segments
	// beyond the fine-covered region
	c = &OffsetCurve{C0: c0}
	c.X = append(append(append(c.X, xmin), fine...), mid[2:]...)
	c.Offset = append(append(append(c.Offset, anchor), off2...), off1[2:]...)
	return
}

// NumSegments computes the coarse segment count 2+floor((1-span)/shift),
// decremented by one when span divides shift evenly to avoid a
// duplicated boundary segment
func NumSegments(span, shift float64) int {
	n := 2 + int(math.Floor((1.0-span)/shift))
	if math.Mod(span, shift) == 0 {
		n--
	}
	return n
}

// segmentCompliance fits the local compliance over the samples whose X
// falls within ±width/2 of the segment center
func segmentCompliance(X, Y []float64, center, width float64) (c float64, err error) {
	xs, ys := window(X, Y, center-0.5*width, center+0.5*width)
	if len(xs) < 2 {
		err = chk.Err("insufficient samples in window [%g,%g]: %d", center-0.5*width, center+0.5*width, len(xs))
		return
	}
	l, err := fit.Points(xs, ys)
	if err != nil {
		return
	}
	c = l.Slope
	return
}

// window selects the (x,y) pairs with lo <= x <= hi, preserving order
func window(x, y []float64, lo, hi float64) (xs, ys []float64) {
	for i := range x {
		if x[i] >= lo && x[i] <= hi {
			xs = append(xs, x[i])
			ys = append(ys, y[i])
		}
	}
	return
}

// nearest returns the index of the value in v closest to target
func nearest(v []float64, target float64) (idx int) {
	dmin := math.Inf(1)
	for i, val := range v {
		if d := math.Abs(val - target); d < dmin {
			dmin = d
			idx = i
		}
	}
	return
}
