// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picc

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"

	"github.com/solenito/picc-study/fit"
	"github.com/solenito/picc-study/sig"
)

// LocalCurve is the pointwise compliance-offset signature of one arm:
// per-sample deviations of the instantaneous compliance dU/dF from the
// fully-open compliance fitted over the arm's leading samples.
type LocalCurve struct {
	Ratio  []float64 // force / max(force) per sample
	Offset []float64 // (Ci-C0)*100/C0 per sample
	C0     float64   // fully-open compliance from the leading refFrac samples
}

// LocalOffsetCurve computes the pointwise local-compliance offset of an
// arm. refFrac is the fraction of leading samples fitted for the
// fully-open compliance (0.25 in the parametric studies). Unlike the
// segment method this one differentiates sample by sample and is
// noisier, but needs no window tuning.
func LocalOffsetCurve(force, disp []float64, refFrac float64) (c *LocalCurve, err error) {
	n := len(force)
	if n != len(disp) {
		err = chk.Err("shape mismatch: len(force)=%d != len(disp)=%d", n, len(disp))
		return
	}
	nref := int(refFrac * float64(n))
	if nref < 2 {
		err = chk.Err("insufficient samples in reference window: %d (refFrac=%g of %d)", nref, refFrac, n)
		return
	}
	ref, err := fit.Points(force[:nref], disp[:nref])
	if err != nil {
		return
	}
	c0 := ref.Slope
	if c0 == 0 {
		err = chk.Err("degenerate regression: reference compliance is zero")
		return
	}
	local, err := sig.Compliance(force, disp)
	if err != nil {
		return
	}
	fmax := floats.Max(force)
	c = &LocalCurve{
		Ratio:  make([]float64, n),
		Offset: make([]float64, n),
		C0:     c0,
	}
	for i := 0; i < n; i++ {
		c.Ratio[i] = force[i] / fmax
		c.Offset[i] = (local[i] - c0) * 100.0 / c0
	}
	return
}
