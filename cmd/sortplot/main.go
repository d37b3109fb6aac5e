// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sortplot plots how a sorting algorithm's running time scales across
// input distributions.
//
// Usage:
//
//	sortplot [flags] [bench.json ...]
//
// Sortplot reads the JSON messages a criterion benchmark run writes
// with --message-format=json, one object per line. Every message whose
// reason is "benchmark-complete" and whose id has the form
//
//	<group>/<algorithm>/<distribution>/2^<exponent>/<count>
//
// contributes its mean estimate for that algorithm, distribution and
// input size 2^exponent. A size measured more than once keeps its last
// result. Other messages are ignored.
//
// For the chosen algorithm, sortplot then draws one curve per
// distribution with the size exponent on the x axis, writes the figure
// to target/python_plot.svg and opens it in the desktop viewer. In the
// default time_per_element mode each duration is divided by n·log2(n),
// so a well-behaved comparison sort plots as a flat line; total_time
// plots the durations as measured.
//
// Exponents are plotted in the order they appear in the input.
//
// Any malformed message, malformed benchmark id, or missing algorithm
// or distribution stops the run with no figure written.
//
// Every flag may also be set in a sortplot.yaml (or .json, .toml) file
// in the current directory or named by -config, or through a
// SORTPLOT_<FLAG> environment variable, which may come from a .env file.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/ips4o-rs/sortbench/benchagg"
	"github.com/ips4o-rs/sortbench/benchplot"
	"github.com/ips4o-rs/sortbench/critfmt"
)

func main() {
	log.SetPrefix("sortplot: ")
	log.SetFlags(0)

	if err := sortplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sortplot [flags] [bench.json ...]",
		Short:         "Plot sorting benchmark results across input distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), args)
			if err != nil {
				return err
			}
			return run(cfg, stdout, stderr)
		},
	}
	addFlags(cmd.Flags())
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func sortplot(stdout, stderr io.Writer, args []string) error {
	cmd := newCommand(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

var (
	warnColor = color.New(color.FgYellow).SprintfFunc()
	infoColor = color.New(color.FgCyan).SprintfFunc()
)

func run(cfg *Config, stdout, stderr io.Writer) error {
	mode, err := benchagg.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	b := benchagg.NewBuilder(&benchagg.BuilderOptions{
		Warn: func(format string, args ...interface{}) {
			fmt.Fprint(stderr, warnColor(format, args...))
		},
	})
	files := &critfmt.Files{Paths: cfg.Inputs, AllowStdin: true}
	if err := b.AddFiles(files); err != nil {
		return err
	}
	st := b.Stats()
	agg := b.Aggregate()
	if cfg.Verbose {
		fmt.Fprint(stderr, infoColor("read %d messages: %d benchmarks kept (%d replaced an earlier result), %d other messages skipped\n",
			st.Records, st.Kept, st.Overwritten, st.Skipped))
		fmt.Fprint(stderr, infoColor("%d results for %d algorithms\n", agg.Len(), len(agg.Algorithms())))
	}
	if cfg.Dump {
		pp.Fprintln(stdout, agg.Map())
	}

	fig, err := benchplot.NewFigure(agg, &benchplot.Options{
		Algorithm:     cfg.Algorithm,
		Distributions: cfg.Distributions,
		Mode:          mode,
		Title:         cfg.Title,
	})
	if err != nil {
		return err
	}
	if err := fig.Save(cfg.Output); err != nil {
		return err
	}
	if cfg.Verbose {
		fmt.Fprint(stderr, infoColor("wrote %s\n", cfg.Output))
	}

	switch cfg.Format {
	case "text":
		err = fig.WriteText(stdout)
	case "csv":
		err = fig.WriteCSV(stdout)
	}
	if err != nil {
		return err
	}

	if cfg.Show {
		return cfg.viewer().Show(cfg.Output)
	}
	return nil
}
