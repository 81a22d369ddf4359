// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of analysis parameters and of the
// force-displacement tables written by the FE jobs
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"

	"github.com/solenito/picc-study/picc"
)

// CompareFile is one labelled entry of a multi-file comparison run;
// e.g. one stress ratio of a parametric study
type CompareFile struct {
	File  string `json:"file"`  // path to the data file
	Label string `json:"label"` // legend label; e.g. "R=0.1"
}

// AnalysisData holds all parameters of one post-processing run. Every
// operator-tuned number lives here; the code carries no calibration
// constants.
type AnalysisData struct {

	// input table
	File  string `json:"file"`  // path to .xlsx or .csv data file
	Sheet string `json:"sheet"` // sheet name for .xlsx input

	// column names for whole-history records
	ForceCol string `json:"forceCol"` // force column
	DispCol  string `json:"dispCol"`  // displacement column

	// column names for records with pre-extracted arms
	ForceLoadCol   string `json:"forceLoadCol"`
	DispLoadCol    string `json:"dispLoadCol"`
	ForceUnloadCol string `json:"forceUnloadCol"`
	DispUnloadCol  string `json:"dispUnloadCol"`

	// cleaning and cycle selection
	DispScale float64 `json:"dispScale"` // 2 for half-model symmetry records, 1 for pre-doubled ones
	PeakFrac  float64 `json:"peakFrac"`  // peak-detection threshold as fraction of max force
	Cycle     int     `json:"cycle"`     // 1-based cycle to analyse
	ForceMin  float64 `json:"forceMin"`  // force level closing a cycle

	// compliance-offset method
	Offset        picc.OffsetParams `json:"offset"`
	WithUnloading bool              `json:"withUnloading"` // compute the unloading offset curve too
	LocalFrac     float64           `json:"localFrac"`     // leading-samples fraction for the pointwise method; 0 skips it

	// stiffness-intersection method, per arm
	LoadRegime1   picc.RegimeWindow `json:"loadRegime1"`
	LoadRegime2   picc.RegimeWindow `json:"loadRegime2"`
	UnloadRegime1 picc.RegimeWindow `json:"unloadRegime1"`
	UnloadRegime2 picc.RegimeWindow `json:"unloadRegime2"`

	// multi-file comparison; when non-empty the driver runs every file
	// through the compliance-offset pipeline and overlays the curves
	Compare []CompareFile `json:"compare"`

	// output
	DirOut string `json:"dirout"` // directory for plots
}

// ReadAnalysis reads an analysis definition from a JSON file and fills
// in defaults for absent entries
func ReadAnalysis(path string) (o *AnalysisData, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		err = chk.Err("cannot read analysis file %q:\n%v", path, err)
		return
	}
	o = &AnalysisData{
		Sheet:     "Sheet1",
		ForceCol:  "force",
		DispCol:   "displacement",
		DispScale: 1.0,
		PeakFrac:  0.8,
		Cycle:     1,
		Offset:    picc.DefaultOffsetParams(),
		DirOut:    "/tmp/picc",
	}
	if err = json.Unmarshal(b, o); err != nil {
		err = chk.Err("cannot parse analysis file %q:\n%v", path, err)
		return
	}
	if o.DispScale == 0 {
		o.DispScale = 1.0
	}
	// comparison entries inherit the directory of the analysis file
	dir := filepath.Dir(path)
	for i := range o.Compare {
		if !filepath.IsAbs(o.Compare[i].File) {
			o.Compare[i].File = filepath.Join(dir, o.Compare[i].File)
		}
	}
	return
}

// SplitArms reports whether the input table stores pre-extracted
// loading/unloading arms in separate columns
func (o *AnalysisData) SplitArms() bool {
	return o.ForceLoadCol != "" && o.ForceUnloadCol != ""
}
