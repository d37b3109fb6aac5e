// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot draws comparative curves of one sorting algorithm
// across input distributions.
package benchplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ips4o-rs/sortbench/benchagg"
)

// DefaultAlgorithm is the algorithm plotted when none is chosen.
const DefaultAlgorithm = "ips4o_rs_par"

// DefaultDistributions returns the distributions plotted when none are
// chosen, in legend order.
func DefaultDistributions() []string {
	return []string{
		"uniform",
		"ones",
		"sorted",
		"reverse",
		"almost_sorted",
		"unsorted_tail",
		"exponential",
		"root_dups",
		"root_center_dups",
		"p78center_dups",
	}
}

type Options struct {
	Algorithm     string
	Distributions []string // one curve each, in this order
	Mode          benchagg.Mode
	Title         string // defaults to Algorithm

	// Width and Height are the size of the exported image.
	Width, Height vg.Length
}

func DefaultOptions() *Options {
	return &Options{
		Algorithm:     DefaultAlgorithm,
		Distributions: DefaultDistributions(),
		Mode:          benchagg.TimePerElement,
		Width:         6.4 * vg.Inch,
		Height:        4.8 * vg.Inch,
	}
}

// A Figure is a plot of one algorithm's series.
type Figure struct {
	Plot *plot.Plot
	// Series are the plotted series, one per distribution.
	Series []*benchagg.Series
	// Categories are the x-axis ticks: exponent keys in the order
	// they first appear across Series.
	Categories []string

	width, height vg.Length
}

const xLabel = "number of elements (log2(n))"

func yLabel(mode benchagg.Mode, unit string) string {
	if mode == benchagg.TimePerElement {
		return "time per element (time/n log(n))"
	}
	if unit == "" {
		unit = "s"
	}
	return "total time (" + unit + ")"
}

// NewFigure plots the series of opts.Algorithm for each of
// opts.Distributions on a shared figure with a legend keyed by
// distribution. It fails, without producing a figure, if any requested
// series is missing from agg.
//
// The x axis is categorical. Exponent keys are plotted as ticks in the
// order they were loaded, never re-sorted numerically.
func NewFigure(agg *benchagg.Aggregate, opts *Options) (*Figure, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if len(opts.Distributions) == 0 {
		return nil, fmt.Errorf("no distributions to plot for %s", opts.Algorithm)
	}

	f := &Figure{width: opts.Width, height: opts.Height}
	if f.width <= 0 || f.height <= 0 {
		def := DefaultOptions()
		f.width, f.height = def.Width, def.Height
	}

	pos := make(map[string]int)
	for _, dist := range opts.Distributions {
		s, err := agg.Series(opts.Algorithm, dist, opts.Mode)
		if err != nil {
			return nil, err
		}
		for _, p := range s.Points {
			if _, ok := pos[p.Exponent]; !ok {
				pos[p.Exponent] = len(f.Categories)
				f.Categories = append(f.Categories, p.Exponent)
			}
		}
		f.Series = append(f.Series, s)
	}

	pl := plot.New()
	pl.Title.Text = opts.Title
	if pl.Title.Text == "" {
		pl.Title.Text = opts.Algorithm
	}
	pl.X.Label.Text = xLabel
	pl.Y.Label.Text = yLabel(opts.Mode, agg.Unit())

	grid := plotter.NewGrid()
	pl.Add(grid)

	for i, s := range f.Series {
		xys := make(plotter.XYs, len(s.Points))
		for j, p := range s.Points {
			xys[j] = plotter.XY{X: float64(pos[p.Exponent]), Y: p.Duration}
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("plotting %s: %w", s.Distribution, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i / len(plotutil.DefaultColors))
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		points.Radius = vg.Points(2)

		pl.Add(line, points)
		pl.Legend.Add(s.Distribution, line, points)
	}
	pl.Legend.Top = true
	pl.Legend.Left = true

	ticks := make([]plot.Tick, len(f.Categories))
	for i, c := range f.Categories {
		ticks[i] = plot.Tick{Value: float64(i), Label: c}
	}
	pl.X.Tick.Marker = plot.ConstantTicks(ticks)
	if len(f.Categories) > 0 {
		pl.X.Min = -0.5
		pl.X.Max = float64(len(f.Categories)) - 0.5
	}

	f.Plot = pl
	return f, nil
}

// WriteTo renders the figure in the given image format ("svg", "pdf",
// "eps", ...) and writes it to w.
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	c, err := f.Plot.WriterTo(f.width, f.height, format)
	if err != nil {
		return 0, err
	}
	return c.WriteTo(w)
}

// Save writes the figure to path, creating its directory if needed.
// The format follows the file extension; a path with no extension is
// written as SVG. The file is closed before Save returns.
func (f *Figure) Save(path string) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		format = "svg"
	}
	c, err := f.Plot.WriterTo(f.width, f.height, format)
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err = c.WriteTo(file); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
