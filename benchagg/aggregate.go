// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchagg aggregates completed sorting benchmarks by
// algorithm, input distribution and input size, and derives the
// per-element cost of each measurement.
//
// An Aggregate is built once by a Builder from a record stream and is
// read-only afterwards. Every level of the aggregate remembers the
// order in which its keys were first seen, and that order is the order
// in which keys are reported.
package benchagg

import "fmt"

// An Aggregate maps algorithm → distribution → size exponent →
// duration. For each key triple it holds the duration of the last
// record seen with that triple.
type Aggregate struct {
	algorithms map[string]*algorithm
	order      []string

	unit      string
	unitMixed bool
}

type algorithm struct {
	dists map[string]*distribution
	order []string
}

type distribution struct {
	index  map[string]int // exponent → position in points
	points []Point
}

// A Point is one measurement of a distribution: the size exponent and
// the duration observed for it.
type Point struct {
	Exponent string
	Duration float64
}

// A MissingKeyError reports a lookup of an algorithm, or of a
// distribution of an algorithm, that the aggregate never observed.
type MissingKeyError struct {
	Algorithm    string
	Distribution string // "" if the algorithm itself is missing
}

func (e *MissingKeyError) Error() string {
	if e.Distribution == "" {
		return fmt.Sprintf("no benchmark results for algorithm %q", e.Algorithm)
	}
	return fmt.Sprintf("no benchmark results for distribution %q of algorithm %q", e.Distribution, e.Algorithm)
}

func newAggregate() *Aggregate {
	return &Aggregate{algorithms: make(map[string]*algorithm)}
}

// insert is the three-level upsert. Intermediate levels are created on
// first use. Overwriting an existing exponent replaces its duration
// but keeps its position.
func (a *Aggregate) insert(alg, dist, exp string, d float64) (overwrote bool) {
	al := a.algorithms[alg]
	if al == nil {
		al = &algorithm{dists: make(map[string]*distribution)}
		a.algorithms[alg] = al
		a.order = append(a.order, alg)
	}
	di := al.dists[dist]
	if di == nil {
		di = &distribution{index: make(map[string]int)}
		al.dists[dist] = di
		al.order = append(al.order, dist)
	}
	if i, ok := di.index[exp]; ok {
		di.points[i].Duration = d
		return true
	}
	di.index[exp] = len(di.points)
	di.points = append(di.points, Point{exp, d})
	return false
}

// noteUnit records the time unit of a kept record. It reports false
// the first time a unit conflicts with the one seen before.
func (a *Aggregate) noteUnit(unit string) bool {
	switch {
	case unit == "" || a.unitMixed:
	case a.unit == "":
		a.unit = unit
	case a.unit != unit:
		a.unit, a.unitMixed = "", true
		return false
	}
	return true
}

// Unit returns the time unit reported by the harness for the
// aggregated durations, or "" if records did not report one or did not
// agree on one.
func (a *Aggregate) Unit() string {
	return a.unit
}

// Algorithms returns the algorithms in the order they were first seen.
func (a *Aggregate) Algorithms() []string {
	return append([]string(nil), a.order...)
}

// Distributions returns the distributions measured for alg, in the
// order they were first seen.
func (a *Aggregate) Distributions(alg string) ([]string, error) {
	al, ok := a.algorithms[alg]
	if !ok {
		return nil, &MissingKeyError{Algorithm: alg}
	}
	return append([]string(nil), al.order...), nil
}

func (a *Aggregate) lookup(alg, dist string) (*distribution, error) {
	al, ok := a.algorithms[alg]
	if !ok {
		return nil, &MissingKeyError{Algorithm: alg}
	}
	di, ok := al.dists[dist]
	if !ok {
		return nil, &MissingKeyError{Algorithm: alg, Distribution: dist}
	}
	return di, nil
}

// Lookup returns the points of distribution dist of algorithm alg in
// the order their exponents were first seen. It returns a
// *MissingKeyError if either key was never observed.
func (a *Aggregate) Lookup(alg, dist string) ([]Point, error) {
	di, err := a.lookup(alg, dist)
	if err != nil {
		return nil, err
	}
	return append([]Point(nil), di.points...), nil
}

// Duration returns the duration stored for the key triple and whether
// there is one.
func (a *Aggregate) Duration(alg, dist, exp string) (float64, bool) {
	di, err := a.lookup(alg, dist)
	if err != nil {
		return 0, false
	}
	i, ok := di.index[exp]
	if !ok {
		return 0, false
	}
	return di.points[i].Duration, true
}

// Len returns the number of key triples in the aggregate.
func (a *Aggregate) Len() int {
	n := 0
	for _, al := range a.algorithms {
		for _, di := range al.dists {
			n += len(di.points)
		}
	}
	return n
}

// Map returns the aggregate as nested maps. The result shares nothing
// with a and loses key order.
func (a *Aggregate) Map() map[string]map[string]map[string]float64 {
	m := make(map[string]map[string]map[string]float64, len(a.algorithms))
	for alg, al := range a.algorithms {
		dm := make(map[string]map[string]float64, len(al.dists))
		for dist, di := range al.dists {
			em := make(map[string]float64, len(di.points))
			for _, p := range di.points {
				em[p.Exponent] = p.Duration
			}
			dm[dist] = em
		}
		m[alg] = dm
	}
	return m
}
