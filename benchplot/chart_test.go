// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ips4o-rs/sortbench/benchagg"
)

func testAggregate() *benchagg.Aggregate {
	b := benchagg.NewBuilder(nil)
	b.Insert("ips4o_rs_par", "uniform", "10", 0.002)
	b.Insert("ips4o_rs_par", "uniform", "12", 0.01)
	b.Insert("ips4o_rs_par", "sorted", "11", 0.001)
	b.Insert("ips4o_rs_par", "sorted", "10", 0.0004)
	b.Insert("ips4o_rs_seq", "uniform", "10", 0.02)
	return b.Aggregate()
}

func testOptions(mode benchagg.Mode) *Options {
	opts := DefaultOptions()
	opts.Distributions = []string{"uniform", "sorted"}
	opts.Mode = mode
	return opts
}

func TestNewFigure(t *testing.T) {
	f, err := NewFigure(testAggregate(), testOptions(benchagg.TotalTime))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"10", "12", "11"}; !cmp.Equal(want, f.Categories) {
		t.Errorf("categories: want %v, got %v", want, f.Categories)
	}
	if len(f.Series) != 2 || f.Series[0].Distribution != "uniform" || f.Series[1].Distribution != "sorted" {
		t.Fatalf("series out of order: %+v", f.Series)
	}
	want := []benchagg.Point{{Exponent: "11", Duration: 0.001}, {Exponent: "10", Duration: 0.0004}}
	if diff := cmp.Diff(want, f.Series[1].Points); diff != "" {
		t.Errorf("sorted series differs (-want +got):\n%s", diff)
	}
	if f.Plot.Title.Text != "ips4o_rs_par" {
		t.Errorf("want title ips4o_rs_par, got %q", f.Plot.Title.Text)
	}
	if got := f.Plot.Y.Label.Text; got != "total time (s)" {
		t.Errorf("y label %q", got)
	}

	ticks := f.Plot.X.Tick.Marker.Ticks(f.Plot.X.Min, f.Plot.X.Max)
	var labels []string
	for _, tk := range ticks {
		labels = append(labels, tk.Label)
	}
	if !cmp.Equal(f.Categories, labels) {
		t.Errorf("tick labels %v, want %v", labels, f.Categories)
	}
}

func TestNewFigureTimePerElement(t *testing.T) {
	f, err := NewFigure(testAggregate(), testOptions(benchagg.TimePerElement))
	if err != nil {
		t.Fatal(err)
	}
	d := 0.002
	if got := f.Series[0].Points[0].Duration; got != d/10240 {
		t.Errorf("normalized %v, want %v", got, d/10240)
	}
	if got := f.Plot.Y.Label.Text; got != "time per element (time/n log(n))" {
		t.Errorf("y label %q", got)
	}
}

func TestNewFigureMissing(t *testing.T) {
	for _, test := range []struct {
		alg   string
		dists []string
	}{
		{"nope", []string{"uniform"}},
		{"ips4o_rs_seq", []string{"uniform", "sorted"}},
		{"ips4o_rs_par", DefaultDistributions()},
	} {
		opts := DefaultOptions()
		opts.Algorithm = test.alg
		opts.Distributions = test.dists
		f, err := NewFigure(testAggregate(), opts)
		var mk *benchagg.MissingKeyError
		if !errors.As(err, &mk) {
			t.Errorf("%s %v: want *MissingKeyError, got %v", test.alg, test.dists, err)
		}
		if f != nil {
			t.Errorf("%s %v: got a figure alongside the error", test.alg, test.dists)
		}
	}

	opts := DefaultOptions()
	opts.Distributions = nil
	if _, err := NewFigure(testAggregate(), opts); err == nil {
		t.Error("NewFigure with no distributions succeeded")
	}
}

func TestSave(t *testing.T) {
	f, err := NewFigure(testAggregate(), testOptions(benchagg.TimePerElement))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "target", "python_plot.svg")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Fatalf("output is not SVG:\n%.200s", data)
	}
	for _, dist := range []string{"uniform", "sorted"} {
		if !bytes.Contains(data, []byte(dist)) {
			t.Errorf("legend entry %q missing from output", dist)
		}
	}
}

func TestSaveUnwritable(t *testing.T) {
	f, err := NewFigure(testAggregate(), testOptions(benchagg.TotalTime))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	blocker := filepath.Join(dir, "target")
	if err := os.WriteFile(blocker, nil, 0666); err != nil {
		t.Fatal(err)
	}
	if err := f.Save(filepath.Join(blocker, "plot.svg")); err == nil {
		t.Fatal("Save under a regular file succeeded")
	}
}

func TestSaveUnknownFormat(t *testing.T) {
	f, err := NewFigure(testAggregate(), testOptions(benchagg.TotalTime))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "plot.bogus")
	if err := f.Save(path); err == nil {
		t.Fatal("Save with an unknown extension succeeded")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Save left a file behind: %v", err)
	}
}

func TestWriteText(t *testing.T) {
	f, err := NewFigure(testAggregate(), testOptions(benchagg.TotalTime))
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := f.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	want := `log2(n)  uniform  sorted
10         0.002  0.0004
12          0.01
11                 0.001
`
	if buf.String() != want {
		t.Errorf("want:\n%sgot:\n%s", want, buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	f, err := NewFigure(testAggregate(), testOptions(benchagg.TotalTime))
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := f.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	want := `algorithm,distribution,exponent,mode,value
ips4o_rs_par,uniform,10,total_time,0.002
ips4o_rs_par,uniform,12,total_time,0.01
ips4o_rs_par,sorted,11,total_time,0.001
ips4o_rs_par,sorted,10,total_time,0.0004
`
	if buf.String() != want {
		t.Errorf("want:\n%sgot:\n%s", want, buf.String())
	}
}

func TestViewer(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("no true command")
	}
	if err := (Viewer{Command: "true"}).Show("plot.svg"); err != nil {
		t.Errorf("Show with true: %v", err)
	}
	if err := (Viewer{Command: "false"}).Show("plot.svg"); err == nil {
		t.Error("Show with false succeeded")
	}
	if err := (Viewer{}).Show("plot.svg"); err == nil {
		t.Error("Show with no command succeeded")
	}
}
