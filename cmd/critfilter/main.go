// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// critfilter reads criterion JSON benchmark messages from input files,
// filters them, and writes the kept messages to stdout unchanged. If no
// inputs are provided, it reads from stdin.
//
// Usage:
//
//	critfilter [flags] [inputs...]
//
// A message is kept if its reason matches -reason (any reason if
// empty). The -algorithm and -distribution filters further restrict
// messages whose id has the benchmark form
// <group>/<algorithm>/<distribution>/2^<exponent>/<count>; messages
// without such an id are dropped when either filter is set.
//
// For example, to extract the completed parallel runs of a bench.json
// before plotting them:
//
//	critfilter -reason benchmark-complete -algorithm ips4o_rs_par bench.json > par.json
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ips4o-rs/sortbench/benchagg"
	"github.com/ips4o-rs/sortbench/critfmt"
)

func main() {
	log.SetPrefix("critfilter: ")
	log.SetFlags(0)

	if err := critfilter(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

type filter struct {
	reason       string
	algorithm    string
	distribution string
}

func (f *filter) keep(rec *critfmt.Record) bool {
	if f.reason != "" && rec.Reason != f.reason {
		return false
	}
	if f.algorithm == "" && f.distribution == "" {
		return true
	}
	id, err := benchagg.ParseID(rec.ID)
	if err != nil {
		return false
	}
	if f.algorithm != "" && id.Algorithm != f.algorithm {
		return false
	}
	if f.distribution != "" && id.Distribution != f.distribution {
		return false
	}
	return true
}

func critfilter(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	var f filter
	var verbose bool
	cmd := &cobra.Command{
		Use:           "critfilter [flags] [inputs...]",
		Short:         "Filter criterion JSON benchmark messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, kept, err := filterFiles(&f, stdin, stdout, args)
			if verbose {
				fmt.Fprint(stderr, color.CyanString("kept %d of %d messages\n", kept, n))
			}
			return err
		},
	}
	cmd.Flags().StringVar(&f.reason, "reason", "", "keep messages with this `reason`")
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "keep benchmarks of `algorithm`")
	cmd.Flags().StringVarP(&f.distribution, "distribution", "d", "", "keep benchmarks of `distribution`")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report how many messages were kept on stderr")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// filterFiles copies the messages of the named files (or stdin) that
// f keeps to w. It stops at the first malformed message.
func filterFiles(f *filter, stdin io.Reader, w io.Writer, paths []string) (n, kept int, err error) {
	var src critfmt.Source
	if len(paths) == 0 {
		src = critfmt.NewReader(stdin, "<stdin>")
	} else {
		files := &critfmt.Files{Paths: paths, AllowStdin: true}
		defer files.Close()
		src = files
	}

	writer := critfmt.NewWriter(w)
	for src.Scan() {
		rec := src.Result()
		n++
		if !f.keep(rec) {
			continue
		}
		kept++
		if err := writer.Write(rec); err != nil {
			return n, kept, fmt.Errorf("writing output: %w", err)
		}
	}
	return n, kept, src.Err()
}
