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

// linearArms builds perfectly linear loading/unloading arms with
// constant true compliance c over the force range [0,fmax]
func linearArms(c, fmax float64, npts int) (loadF, loadU, unloadF, unloadU []float64) {
	loadF = utl.LinSpace(0, fmax, npts)
	loadU = make([]float64, npts)
	unloadF = make([]float64, npts)
	unloadU = make([]float64, npts)
	for i, f := range loadF {
		loadU[i] = c * f
		unloadF[i] = loadF[npts-1-i]
		unloadU[i] = c * unloadF[i]
	}
	return
}

func Test_numseg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("numseg01. coarse segment count")

	// span divides shift evenly: duplicate boundary segment avoided
	chk.Int(tst, "N(0.1,0.05)", NumSegments(0.1, 0.05), 18)

	// no even division
	chk.Int(tst, "N(0.1,0.03)", NumSegments(0.1, 0.03), 32)
}

func Test_coffset01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coffset01. round trip on a perfectly linear record")

	c := 0.002
	loadF, loadU, unloadF, unloadU := linearArms(c, 1000, 201)
	prm := DefaultOffsetParams()

	// recovered reference compliance equals the true one
	ref, err := ReferenceCompliance(unloadF, unloadU, 0, 1000, prm)
	if err != nil {
		tst.Errorf("ReferenceCompliance failed:\n%v", err)
		return
	}
	chk.Float64(tst, "C0", 1e-15, ref.Slope, c)

	res, err := ComplianceOffset(loadF, loadU, unloadF, unloadU, 0, 1000, 0, prm, true)
	if err != nil {
		tst.Errorf("ComplianceOffset failed:\n%v", err)
		return
	}
	io.Pforan("loading X      = %v\n", res.Loading.X)
	io.Pforan("loading offset = %v\n", res.Loading.Offset)

	// curve length = 1 + len(fine grid) + (Nseg - 2)
	nseg := NumSegments(prm.Span, prm.Shift)
	chk.Int(tst, "Nseg", nseg, 18)
	chk.Int(tst, "len(loading)", len(res.Loading.X), 1+6+nseg-2)
	chk.Int(tst, "len(unloading)", len(res.Unloading.X), 1+6+nseg-2)
	chk.Int(tst, "len(offsets)", len(res.Loading.Offset), len(res.Loading.X))

	// no stiffness change anywhere: every offset is zero
	zeros := make([]float64, len(res.Loading.Offset))
	chk.Array(tst, "loading offsets", 1e-8, res.Loading.Offset, zeros)
	chk.Array(tst, "unloading offsets", 1e-8, res.Unloading.Offset, zeros)

	// position array starts at the domain boundary
	chk.Float64(tst, "X[0]", 1e-15, res.Loading.X[0], 0)
	chk.Float64(tst, "C0 on curve", 1e-15, res.Loading.C0, c)
}

func Test_coffset02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coffset02. loading-only option leaves unloading absent")

	loadF, loadU, unloadF, unloadU := linearArms(0.002, 1000, 201)
	res, err := ComplianceOffset(loadF, loadU, unloadF, unloadU, 0, 1000, 0, DefaultOffsetParams(), false)
	if err != nil {
		tst.Errorf("ComplianceOffset failed:\n%v", err)
		return
	}
	if res.Unloading != nil {
		tst.Errorf("unloading curve should be absent when not requested")
	}
	if res.Loading == nil {
		tst.Errorf("loading curve is missing")
	}
}

func Test_coffset03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coffset03. sparse windows fail loudly")

	// three loading samples cannot populate 10%-wide windows
	loadF := []float64{0, 500, 1000}
	loadU := []float64{0, 1, 2}
	_, _, unloadF, unloadU := linearArms(0.002, 1000, 201)
	_, err := ComplianceOffset(loadF, loadU, unloadF, unloadU, 0, 1000, 0, DefaultOffsetParams(), false)
	if err == nil {
		tst.Errorf("ComplianceOffset should have failed with sparse loading data")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_window01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("window01. inclusive bounds and exact width")

	x := utl.LinSpace(0, 100, 101)
	y := make([]float64, len(x))
	for i := range x {
		y[i] = 2 * x[i]
	}

	// span=0.1 over range 100: width is exactly 10; samples sitting
	// exactly on both edges are included
	xs, _ := window(x, y, 45, 55)
	chk.Int(tst, "n inside [45,55]", len(xs), 11)
	chk.Float64(tst, "first", 1e-17, xs[0], 45)
	chk.Float64(tst, "last", 1e-17, xs[len(xs)-1], 55)
	chk.Float64(tst, "width", 1e-17, xs[len(xs)-1]-xs[0], 0.1*100)
}
