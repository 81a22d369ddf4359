// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sig handles paired force-displacement records extracted from
// FE simulation output
package sig

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Series holds one paired record where X is the independent channel
// (e.g. force) and Y the dependent one (e.g. displacement). Both slices
// have the same length and keep the original temporal ordering.
type Series struct {
	X []float64
	Y []float64
}

// Len returns the number of samples
func (o *Series) Len() int {
	return len(o.X)
}

// Clean builds a Series from two raw columns, dropping every pair where
// either value is NaN or Inf, and scaling Y by yScale. Half-model
// simulations store half the physical displacement; yScale=2 restores
// the total, yScale=1 leaves pre-doubled records untouched.
// Returns the number of removed pairs.
func Clean(x, y []float64, yScale float64) (s *Series, removed int, err error) {
	if len(x) != len(y) {
		err = chk.Err("shape mismatch: len(x)=%d != len(y)=%d", len(x), len(y))
		return
	}
	s = &Series{
		X: make([]float64, 0, len(x)),
		Y: make([]float64, 0, len(y)),
	}
	for i := 0; i < len(x); i++ {
		if !finite(x[i]) || !finite(y[i]) {
			removed++
			continue
		}
		s.X = append(s.X, x[i])
		s.Y = append(s.Y, y[i]*yScale)
	}
	return
}

// Gradient computes the central-difference derivative of v with respect
// to the sample index; one-sided differences at both ends.
func Gradient(v []float64) (g []float64, err error) {
	n := len(v)
	if n < 2 {
		err = chk.Err("insufficient samples for gradient: %d", n)
		return
	}
	g = make([]float64, n)
	g[0] = v[1] - v[0]
	g[n-1] = v[n-1] - v[n-2]
	for i := 1; i < n-1; i++ {
		g[i] = (v[i+1] - v[i-1]) / 2.0
	}
	return
}

// Stiffness computes the pointwise instantaneous stiffness dF/dU as the
// index-aligned ratio of the two gradients. Entries may be ±Inf or NaN
// where dU vanishes; regime filters must skip non-finite values.
func Stiffness(force, disp []float64) (slopes []float64, err error) {
	if len(force) != len(disp) {
		err = chk.Err("shape mismatch: len(force)=%d != len(disp)=%d", len(force), len(disp))
		return
	}
	dF, err := Gradient(force)
	if err != nil {
		return
	}
	dU, err := Gradient(disp)
	if err != nil {
		return
	}
	slopes = make([]float64, len(force))
	for i := range slopes {
		slopes[i] = dF[i] / dU[i]
	}
	return
}

// Compliance computes the pointwise instantaneous compliance dU/dF
func Compliance(force, disp []float64) (c []float64, err error) {
	if len(force) != len(disp) {
		err = chk.Err("shape mismatch: len(force)=%d != len(disp)=%d", len(force), len(disp))
		return
	}
	dF, err := Gradient(force)
	if err != nil {
		return
	}
	dU, err := Gradient(disp)
	if err != nil {
		return
	}
	c = make([]float64, len(force))
	for i := range c {
		c[i] = dU[i] / dF[i]
	}
	return
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
