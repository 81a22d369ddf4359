// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picc

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_local01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("local01. pointwise offsets of a linear arm are zero")

	force := utl.LinSpace(0, 100, 51)
	disp := make([]float64, len(force))
	for i, f := range force {
		disp[i] = 0.01 * f
	}
	c, err := LocalOffsetCurve(force, disp, 0.25)
	if err != nil {
		tst.Errorf("LocalOffsetCurve failed:\n%v", err)
		return
	}
	io.Pforan("C0 = %v\n", c.C0)
	chk.Float64(tst, "C0", 1e-13, c.C0, 0.01)
	zeros := make([]float64, len(c.Offset))
	chk.Array(tst, "offsets", 1e-8, c.Offset, zeros)
	chk.Float64(tst, "last ratio", 1e-15, c.Ratio[len(c.Ratio)-1], 1.0)
}

func Test_local02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("local02. reference window too small")

	force := []float64{0, 1, 2, 3, 4}
	disp := []float64{0, 1, 2, 3, 4}
	_, err := LocalOffsetCurve(force, disp, 0.25) // 25% of 5 samples is 1 point
	if err == nil {
		tst.Errorf("LocalOffsetCurve should have failed with a tiny reference window")
		return
	}
	io.Pforan("err = %v\n", err)
}
