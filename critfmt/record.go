// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critfmt reads the line-delimited JSON message stream written
// by a criterion benchmark harness.
//
// Every line of the stream is one JSON object. Objects are told apart
// by their "reason" field; completed benchmarks carry
// "benchmark-complete" together with the benchmark id and its timing
// estimates, while progress and grouping messages carry other reasons
// and are passed through untouched.
package critfmt

import (
	"encoding/json"
	"fmt"
)

// ReasonBenchmarkComplete is the reason of a message that reports the
// measurements of one finished benchmark.
const ReasonBenchmarkComplete = "benchmark-complete"

// A Record is one decoded message from a benchmark stream.
type Record struct {
	Reason string `json:"reason"`
	ID     string `json:"id,omitempty"`

	// Unit is the time unit of the estimates, such as "ns".
	Unit string `json:"unit,omitempty"`

	// Mean is the estimated mean execution time. It is nil on
	// messages that carry no measurements.
	Mean *Estimate `json:"mean,omitempty"`

	fileName string
	line     int

	// raw is the line this record was decoded from, or nil for
	// records constructed in memory.
	raw []byte
}

// An Estimate is a point estimate with its confidence bounds.
type Estimate struct {
	Estimate   float64 `json:"estimate"`
	LowerBound float64 `json:"lower_bound,omitempty"`
	UpperBound float64 `json:"upper_bound,omitempty"`
	Unit       string  `json:"unit,omitempty"`
}

// Pos returns the file name and line number this record was read
// from. Records built in memory report an empty file name and line 0.
func (r *Record) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// Clone returns a copy of r that does not share the Reader's buffers.
func (r *Record) Clone() *Record {
	r2 := *r
	if r.Mean != nil {
		m := *r.Mean
		r2.Mean = &m
	}
	r2.raw = append([]byte(nil), r.raw...)
	return &r2
}

// Errorf returns an error prefixed with the record's position.
func (r *Record) Errorf(format string, args ...interface{}) error {
	if r.fileName == "" {
		return fmt.Errorf(format, args...)
	}
	return fmt.Errorf("%s:%d: %w", r.fileName, r.line, fmt.Errorf(format, args...))
}

// MarshalLine returns the JSON form of r. A record read from a stream
// is returned exactly as it appeared on its line.
func (r *Record) MarshalLine() ([]byte, error) {
	if r.raw != nil {
		return r.raw, nil
	}
	return json.Marshal(r)
}

// A Source is a forward-only sequence of records. Reader and Files
// both implement Source.
type Source interface {
	// Scan advances to the next record and reports whether there
	// is one.
	Scan() bool
	// Result returns the record read by the last call to Scan.
	Result() *Record
	// Err returns the error that stopped Scan, or nil at end of
	// input.
	Err() error
}
