// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/solenito/picc-study/cyc"
	"github.com/solenito/picc-study/fit"
	"github.com/solenito/picc-study/picc"
	"github.com/solenito/picc-study/sig"
)

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. helpers")

	l := fit.Line{Slope: 2, Intercept: 1}
	x := []float64{0, 1, 2}
	chk.Array(tst, "evalLine", 1e-17, evalLine(l, x), []float64{1, 3, 5})

	d := []float64{0, 1, 2, 3}
	s := []float64{5, math.NaN(), 7, math.Inf(1)}
	dd, ss := finitePairs(d, s)
	chk.Array(tst, "finite disp", 1e-17, dd, []float64{0, 2})
	chk.Array(tst, "finite slopes", 1e-17, ss, []float64{5, 7})
}

func Test_plot02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot02. full plotting round on a synthetic history")

	if !chk.Verbose {
		io.Pf("this test only runs with the -test.v flag\n")
		return
	}

	// two triangular cycles
	force := []float64{0, 50, 100, 50, 0, 50, 100, 50, 0}
	disp := make([]float64, len(force))
	for i, f := range force {
		disp[i] = 0.001 * f
	}
	s := &sig.Series{X: force, Y: disp}

	peaks, err := cyc.Peaks(force, 0.8)
	if err != nil {
		tst.Errorf("Peaks failed:\n%v", err)
		return
	}
	c, err := cyc.Extract(force, disp, peaks, 1, 0)
	if err != nil {
		tst.Errorf("Extract failed:\n%v", err)
		return
	}

	dirout := "/tmp/picc"
	Overview(s, peaks, dirout, "test_overview")
	Arms(c, dirout, "test_arms")

	res := &picc.OffsetResult{
		Loading: &picc.OffsetCurve{
			X:      utl.LinSpace(0, 100, 11),
			Offset: make([]float64, 11),
			C0:     0.001,
		},
	}
	Offsets(res, 100, dirout, "test_offsets")
	CompareOffsets([]string{"R=0.1"}, []*picc.OffsetResult{res}, []float64{100}, dirout, "test_compare")

	t := &picc.Transition{
		X: 0.05, Y: 1000,
		Regime1: fit.Line{Slope: 2e4, Intercept: 0},
		Regime2: fit.Line{Slope: -1e4, Intercept: 1500},
	}
	Regimes(c.Loading.Force, c.Loading.Disp, t, dirout, "test_regimes")

	lc := &picc.LocalCurve{
		Ratio:  utl.LinSpace(0, 1, 11),
		Offset: make([]float64, 11),
		C0:     0.001,
	}
	LocalOffset(lc, dirout, "test_local")
}
