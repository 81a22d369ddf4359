// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sig

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_clean01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("clean01. NaN/Inf stripping and scaling")

	nan := math.NaN()
	inf := math.Inf(1)
	x := []float64{0, 1, nan, 3, 4, 5, 6}
	y := []float64{0, 10, 20, nan, 40, inf, 60}

	s, removed, err := Clean(x, y, 2.0)
	if err != nil {
		tst.Errorf("Clean failed:\n%v", err)
		return
	}
	io.Pforan("X = %v\n", s.X)
	io.Pforan("Y = %v\n", s.Y)
	chk.Int(tst, "removed", removed, 3)
	chk.Int(tst, "len(X)", len(s.X), 4)
	chk.Int(tst, "len(Y)", len(s.Y), 4)
	chk.Array(tst, "X", 1e-17, s.X, []float64{0, 1, 4, 6})
	chk.Array(tst, "Y", 1e-17, s.Y, []float64{0, 20, 80, 120})
	for i := 0; i < s.Len(); i++ {
		if math.IsNaN(s.X[i]) || math.IsNaN(s.Y[i]) || math.IsInf(s.X[i], 0) || math.IsInf(s.Y[i], 0) {
			tst.Errorf("non-finite value survived cleaning at i=%d", i)
		}
	}
}

func Test_clean02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("clean02. shape mismatch")

	_, _, err := Clean([]float64{1, 2, 3}, []float64{1, 2}, 1.0)
	if err == nil {
		tst.Errorf("Clean should have failed with mismatched lengths")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_gradient01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gradient01. central differences")

	v := []float64{0, 1, 4, 9, 16}
	g, err := Gradient(v)
	if err != nil {
		tst.Errorf("Gradient failed:\n%v", err)
		return
	}
	io.Pforan("g = %v\n", g)
	chk.Array(tst, "g", 1e-17, g, []float64{1, 2, 4, 6, 7})

	_, err = Gradient([]float64{1})
	if err == nil {
		tst.Errorf("Gradient should have failed with a single sample")
	}
}

func Test_stiffness01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stiffness01. dF/dU of a linear record")

	disp := []float64{0, 1, 2, 3, 4}
	force := []float64{0, 2, 4, 6, 8}
	slopes, err := Stiffness(force, disp)
	if err != nil {
		tst.Errorf("Stiffness failed:\n%v", err)
		return
	}
	chk.Array(tst, "dF/dU", 1e-15, slopes, []float64{2, 2, 2, 2, 2})

	c, err := Compliance(force, disp)
	if err != nil {
		tst.Errorf("Compliance failed:\n%v", err)
		return
	}
	chk.Array(tst, "dU/dF", 1e-15, c, []float64{0.5, 0.5, 0.5, 0.5, 0.5})
}
