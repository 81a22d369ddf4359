// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picc

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"

	"github.com/solenito/picc-study/fit"
	"github.com/solenito/picc-study/sig"
)

// RegimeWindow bounds the (displacement, stiffness) points used to fit
// one linear stiffness regime. Slope bounds are inclusive, displacement
// bounds strict. Zero upper bounds mean unbounded, matching the
// high-stiffness branch which has no imposed upper limit by default.
// All four values are operator-tuned per dataset, never derived.
type RegimeWindow struct {
	MinSlope float64 `json:"minSlope"`
	MaxSlope float64 `json:"maxSlope"`
	MinDisp  float64 `json:"minDisp"`
	MaxDisp  float64 `json:"maxDisp"`
}

// contains reports whether a (displacement, stiffness) point falls
// inside the window; non-finite stiffness values never do
func (o RegimeWindow) contains(d, s float64) bool {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return false
	}
	if s < o.MinSlope || d <= o.MinDisp {
		return false
	}
	if o.MaxSlope != 0 && s > o.MaxSlope {
		return false
	}
	if o.MaxDisp != 0 && d >= o.MaxDisp {
		return false
	}
	return true
}

// filter selects the (displacement, stiffness) pairs inside a window,
// preserving order
func filter(disp, slopes []float64, w RegimeWindow) (d, s []float64) {
	for i := range disp {
		if w.contains(disp[i], slopes[i]) {
			d = append(d, disp[i])
			s = append(s, slopes[i])
		}
	}
	return
}

// Transition is the outcome of the stiffness-intersection method on one
// arm: the crossing of the two fitted regimes, the nearest measured
// sample, and the normalized opening/closure load ratio.
type Transition struct {
	X       float64  // intersection displacement
	Y       float64  // intersection stiffness
	Regime1 fit.Line // pre-transition regime
	Regime2 fit.Line // post-transition regime
	Idx     int      // index of the nearest sample in the arm
	Disp    float64  // displacement of that sample
	Load    float64  // force of that sample
	Ratio   float64  // Load / max(force) over the arm
	Clamped bool     // intersection fell outside the sampled range
}

// IntersectRegimes fits the two linear stiffness regimes within their
// windows and intersects them. Fails when a window holds fewer than two
// points, when a window's displacements are constant, or when the
// fitted regimes are parallel.
func IntersectRegimes(disp, slopes []float64, r1, r2 RegimeWindow) (x, y float64, l1, l2 fit.Line, err error) {
	if len(disp) != len(slopes) {
		err = chk.Err("shape mismatch: len(disp)=%d != len(slopes)=%d", len(disp), len(slopes))
		return
	}
	d1, s1 := filter(disp, slopes, r1)
	if len(d1) < 2 {
		err = chk.Err("empty regime window 1: %d samples selected", len(d1))
		return
	}
	d2, s2 := filter(disp, slopes, r2)
	if len(d2) < 2 {
		err = chk.Err("empty regime window 2: %d samples selected", len(d2))
		return
	}
	l1, err = fit.Points(d1, s1)
	if err != nil {
		return
	}
	l2, err = fit.Points(d2, s2)
	if err != nil {
		return
	}
	x, y, err = fit.Intersect(l1, l2)
	return
}

// FindTransition runs the stiffness-intersection method over one arm:
// pointwise stiffness by numerical differentiation, two regime fits,
// intersection, and the nearest-sample load lookup. When the
// intersection lies outside the sampled displacement range the lookup
// clamps to the boundary sample and flags Clamped.
func FindTransition(force, disp []float64, r1, r2 RegimeWindow) (t *Transition, err error) {
	slopes, err := sig.Stiffness(force, disp)
	if err != nil {
		return
	}
	x, y, l1, l2, err := IntersectRegimes(disp, slopes, r1, r2)
	if err != nil {
		return
	}
	idx, clamped := Lookup(disp, x)
	t = &Transition{
		X:       x,
		Y:       y,
		Regime1: l1,
		Regime2: l2,
		Idx:     idx,
		Disp:    disp[idx],
		Load:    force[idx],
		Ratio:   force[idx] / floats.Max(force),
		Clamped: clamped,
	}
	return
}

// Lookup finds the sample whose displacement is nearest the target.
// clamped reports a target outside [min(disp), max(disp)], in which
// case the nearest sample is a boundary one and the caller must not
// read the result as an in-range match.
func Lookup(disp []float64, target float64) (idx int, clamped bool) {
	idx = nearest(disp, target)
	clamped = target < floats.Min(disp) || target > floats.Max(disp)
	return
}
