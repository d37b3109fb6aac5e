// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"fmt"
	"os"

	"github.com/ips4o-rs/sortbench/critfmt"
)

// A Builder collects completed benchmark records into an Aggregate.
//
// The Builder owns the aggregate under construction. Once Aggregate has
// been called, the Builder must not be used again.
type Builder struct {
	agg    *Aggregate
	reason string
	stats  Stats
	warn   func(format string, args ...interface{})
}

type BuilderOptions struct {
	// Reason is the message reason of the records to aggregate.
	// Records with any other reason are skipped.
	Reason string
	// Warn reports anomalies that do not stop the build, such as
	// records that disagree on the time unit.
	Warn func(format string, args ...interface{})
}

// Stats counts what a Builder did with the records it was given.
type Stats struct {
	Records     int // records offered to Add
	Kept        int // records aggregated
	Skipped     int // records with another reason
	Overwritten int // kept records that replaced an earlier duration
}

func DefaultBuilderOptions() *BuilderOptions {
	return &BuilderOptions{
		Reason: critfmt.ReasonBenchmarkComplete,
		Warn: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format, args...)
		},
	}
}

// NewBuilder returns a Builder configured by bo. A nil bo means
// DefaultBuilderOptions.
func NewBuilder(bo *BuilderOptions) *Builder {
	if bo == nil {
		bo = DefaultBuilderOptions()
	}
	reason := bo.Reason
	if reason == "" {
		reason = critfmt.ReasonBenchmarkComplete
	}
	warn := bo.Warn
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}
	return &Builder{agg: newAggregate(), reason: reason, warn: warn}
}

// Insert sets the duration for a key triple, creating the algorithm
// and distribution levels on first use. A later Insert of the same
// triple replaces the earlier duration.
func (b *Builder) Insert(algorithm, distribution, exponent string, duration float64) {
	if b.agg.insert(algorithm, distribution, exponent, duration) {
		b.stats.Overwritten++
	}
}

// Add aggregates rec if it is a completed benchmark and ignores it
// otherwise. It returns an error if rec is a completed benchmark whose
// id or measurements are malformed.
func (b *Builder) Add(rec *critfmt.Record) error {
	b.stats.Records++
	if rec.Reason != b.reason {
		b.stats.Skipped++
		return nil
	}
	id, err := ParseID(rec.ID)
	if err != nil {
		return rec.Errorf("%w", err)
	}
	if rec.Mean == nil {
		return rec.Errorf("benchmark %q has no mean estimate", rec.ID)
	}
	b.stats.Kept++
	b.Insert(id.Algorithm, id.Distribution, id.Exponent, rec.Mean.Estimate)

	unit := rec.Unit
	if unit == "" {
		unit = rec.Mean.Unit
	}
	if prev := b.agg.unit; !b.agg.noteUnit(unit) {
		file, line := rec.Pos()
		b.warn("%s:%d: time unit %q differs from earlier %q; durations are not labeled with a unit\n", file, line, unit, prev)
	}
	return nil
}

// AddSource drains src into the aggregate. It stops at the first
// malformed record or read error.
func (b *Builder) AddSource(src critfmt.Source) error {
	for src.Scan() {
		if err := b.Add(src.Result()); err != nil {
			return err
		}
	}
	return src.Err()
}

// AddFiles drains files into the aggregate and closes them, including
// when it stops early because of an error.
func (b *Builder) AddFiles(files *critfmt.Files) error {
	err := b.AddSource(files)
	if cerr := files.Close(); err == nil {
		err = cerr
	}
	return err
}

// Stats returns the counts accumulated so far.
func (b *Builder) Stats() Stats {
	return b.stats
}

// Aggregate finishes the build and returns the aggregate.
func (b *Builder) Aggregate() *Aggregate {
	agg := b.agg
	b.agg = nil
	return agg
}

// Build aggregates every record of src.
func Build(src critfmt.Source) (*Aggregate, error) {
	b := NewBuilder(&BuilderOptions{})
	if err := b.AddSource(src); err != nil {
		return nil, err
	}
	return b.Aggregate(), nil
}
