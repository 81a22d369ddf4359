// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cyc detects load-cycle peaks in a force trace and slices out
// the loading and unloading arms of a chosen cycle
package cyc

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// Arm is one half of a load cycle: the index range [Lo,Hi) into the
// cleaned record, with the corresponding force and displacement slices
type Arm struct {
	Lo    int
	Hi    int
	Force []float64
	Disp  []float64
}

// Cycle holds the full range of one detected load cycle and its two arms
type Cycle struct {
	Number    int // 1-based cycle number
	PeakIdx   int // index of this cycle's force peak
	Full      Arm // [start,end) bounded by ForceMin crossings
	Loading   Arm // monotonic rise toward the peak
	Unloading Arm // descent from the peak toward ForceMin
}

// Peaks detects local force maxima exceeding frac*max(force).
// Flat-topped peaks report the middle sample of the plateau.
func Peaks(force []float64, frac float64) (peaks []int, err error) {
	n := len(force)
	if n < 3 {
		err = chk.Err("insufficient samples for peak detection: %d", n)
		return
	}
	height := frac * floats.Max(force)
	i := 1
	for i < n-1 {
		if force[i] <= force[i-1] {
			i++
			continue
		}
		// walk over a possible plateau
		j := i
		for j < n-1 && force[j+1] == force[j] {
			j++
		}
		if j < n-1 && force[j+1] < force[j] {
			mid := (i + j) / 2
			if force[mid] >= height {
				peaks = append(peaks, mid)
			}
			i = j + 1
			continue
		}
		i = j + 1
	}
	return
}

// Extract slices the full range, loading arm and unloading arm of the
// 1-based cycle number out of a cleaned force/displacement record.
// Arm boundaries are located by scanning forward from a peak until the
// force first drops to forceMin or below; the first cycle's loading arm
// is pinned to the beginning of the record.
func Extract(force, disp []float64, peaks []int, cycle int, forceMin float64) (c *Cycle, err error) {
	if len(force) != len(disp) {
		err = chk.Err("shape mismatch: len(force)=%d != len(disp)=%d", len(force), len(disp))
		return
	}
	if cycle < 1 || cycle > len(peaks) {
		err = chk.Err("cycle %d out of range: %d peaks detected", cycle, len(peaks))
		return
	}
	n := len(force)
	peak := peaks[cycle-1]

	// start of the cycle: first return to forceMin after the previous peak
	start := 0
	if cycle > 1 {
		start = peaks[cycle-2]
		for i := start; i < peak; i++ {
			if force[i] <= forceMin {
				start = i
				break
			}
		}
	}

	// end of the cycle: first return to forceMin after this peak, or the
	// sequence boundary when the record stops mid-cycle
	end := n
	for i := peak; i < n; i++ {
		if force[i] <= forceMin {
			end = i
			break
		}
	}

	c = &Cycle{
		Number:    cycle,
		PeakIdx:   peak,
		Full:      slice(force, disp, start, end),
		Loading:   slice(force, disp, start, peak),
		Unloading: slice(force, disp, peak, end),
	}
	return
}

func slice(force, disp []float64, lo, hi int) Arm {
	return Arm{Lo: lo, Hi: hi, Force: force[lo:hi], Disp: disp[lo:hi]}
}
