// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ips4o-rs/sortbench/benchagg"
	"github.com/ips4o-rs/sortbench/internal/texttab"
)

// WriteText writes the figure's series as an aligned table with one
// row per exponent and one column per distribution. Sizes a
// distribution was not measured at are left blank.
func (f *Figure) WriteText(w io.Writer) error {
	var tab texttab.Table
	tab.Row().Cell("log2(n)")
	for i, s := range f.Series {
		tab.Cell(s.Distribution)
		tab.SetRight(i+1, true)
	}

	values := make([]map[string]float64, len(f.Series))
	for i, s := range f.Series {
		values[i] = make(map[string]float64, len(s.Points))
		for _, p := range s.Points {
			values[i][p.Exponent] = p.Duration
		}
	}
	for _, exp := range f.Categories {
		tab.Row().Cell(exp)
		for i := range f.Series {
			v, ok := values[i][exp]
			if !ok {
				tab.Cell("")
				continue
			}
			tab.Cell(strconv.FormatFloat(v, 'g', 4, 64))
		}
	}
	return tab.Format(w)
}

// WriteCSV writes the figure's series in long form, one record per
// point, with full precision.
func (f *Figure) WriteCSV(w io.Writer) error {
	return WriteCSV(w, f.Series)
}

// WriteCSV writes series in long form with a header record.
func WriteCSV(w io.Writer, series []*benchagg.Series) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"algorithm", "distribution", "exponent", "mode", "value"})
	for _, s := range series {
		for _, p := range s.Points {
			cw.Write([]string{
				s.Algorithm,
				s.Distribution,
				p.Exponent,
				s.Mode.String(),
				strconv.FormatFloat(p.Duration, 'g', -1, 64),
			})
		}
	}
	cw.Flush()
	return cw.Error()
}
