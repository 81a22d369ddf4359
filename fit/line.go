// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fit implements least-squares line fitting over filtered
// sample subsets, with explicit degenerate-input checks
package fit

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/stat"
)

// Line is a fitted linear regime y = Slope*x + Intercept
type Line struct {
	Slope     float64
	Intercept float64
}

// Points fits a line to (x,y) by ordinary least squares.
// Fails when fewer than two samples are given or when the predictor has
// zero variance (all x equal), which leaves the slope undefined.
func Points(x, y []float64) (l Line, err error) {
	if len(x) != len(y) {
		err = chk.Err("shape mismatch: len(x)=%d != len(y)=%d", len(x), len(y))
		return
	}
	if len(x) < 2 {
		err = chk.Err("insufficient samples for line fit: %d", len(x))
		return
	}
	if constant(x) {
		err = chk.Err("degenerate regression: predictor has zero variance (x=%g for all %d samples)", x[0], len(x))
		return
	}
	l.Intercept, l.Slope = stat.LinearRegression(x, y, nil, false)
	if math.IsNaN(l.Slope) || math.IsInf(l.Slope, 0) {
		err = chk.Err("degenerate regression: fitted slope is not finite")
	}
	return
}

// Eval evaluates the line at x
func (o Line) Eval(x float64) float64 {
	return o.Slope*x + o.Intercept
}

// Intersect computes the intersection of two lines.
// Fails when the slopes are equal (parallel regimes do not intersect).
func Intersect(a, b Line) (x, y float64, err error) {
	if a.Slope == b.Slope {
		err = chk.Err("parallel regimes: both lines have slope %g", a.Slope)
		return
	}
	x = (b.Intercept - a.Intercept) / (a.Slope - b.Slope)
	y = a.Eval(x)
	return
}

func constant(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] != x[0] {
			return false
		}
	}
	return true
}
