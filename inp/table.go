// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"
)

// Table holds named numeric columns read from one sheet. Blank or
// non-numeric cells become NaN so that sig.Clean strips the pair; the
// arm columns of split-arm records have different lengths and are
// padded this way.
type Table struct {
	Path  string               // source file
	Names []string             // column names in file order
	Cols  map[string][]float64 // column name => values
	Nrows int                  // number of data rows
}

// Column returns a named column
func (o *Table) Column(name string) (v []float64, err error) {
	v, ok := o.Cols[name]
	if !ok {
		err = chk.Err("table %q has no column named %q; available: %v", o.Path, name, o.Names)
	}
	return
}

// ReadTable reads a tabular series from a data file, dispatching on the
// extension: .xlsx sheets or .csv files, both with a header row of
// column names. The table is read once per analysis run.
func ReadTable(path, sheet string) (o *Table, err error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return readXlsx(path, sheet)
	case ".csv":
		return readCsv(path)
	default:
		err = chk.Err("cannot read table %q: unknown extension %q", path, ext)
	}
	return
}

func readXlsx(path, sheet string) (o *Table, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		err = chk.Err("cannot open spreadsheet %q:\n%v", path, err)
		return
	}
	defer f.Close()
	rows, err := f.GetRows(sheet)
	if err != nil {
		err = chk.Err("cannot read sheet %q of %q:\n%v", sheet, path, err)
		return
	}
	return fromRows(path, rows)
}

func readCsv(path string) (o *Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		err = chk.Err("cannot open csv file %q:\n%v", path, err)
		return
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // arm columns may end early
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		err = chk.Err("cannot parse csv file %q:\n%v", path, err)
		return
	}
	return fromRows(path, rows)
}

// fromRows builds the column map from a header row plus data rows
func fromRows(path string, rows [][]string) (o *Table, err error) {
	if len(rows) < 2 {
		err = chk.Err("table %q has no data rows", path)
		return
	}
	o = &Table{
		Path:  path,
		Cols:  make(map[string][]float64),
		Nrows: len(rows) - 1,
	}
	var cols []int // original column index of each named column
	for j, name := range rows[0] {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		o.Names = append(o.Names, name)
		cols = append(cols, j)
		o.Cols[name] = make([]float64, o.Nrows)
	}
	if len(o.Names) == 0 {
		err = chk.Err("table %q has an empty header row", path)
		return
	}
	for i, row := range rows[1:] {
		for k, name := range o.Names {
			o.Cols[name][i] = cell(row, cols[k])
		}
	}
	return
}

// cell parses one cell; missing or non-numeric cells become NaN
func cell(row []string, j int) float64 {
	if j >= len(row) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
