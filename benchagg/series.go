// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"fmt"
	"math"
	"strconv"
)

// A Mode selects the quantity a Series reports for each size.
type Mode int

const (
	// TimePerElement divides each duration by the n·log2(n) work
	// expected of a comparison sort on n = 2^exponent elements.
	TimePerElement Mode = iota
	// TotalTime reports durations as measured.
	TotalTime
)

func (m Mode) String() string {
	switch m {
	case TotalTime:
		return "total_time"
	case TimePerElement:
		return "time_per_element"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses the name of a Mode as returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "total_time":
		return TotalTime, nil
	case "time_per_element":
		return TimePerElement, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want total_time or time_per_element)", s)
}

// WorkFactor returns n·log2(n) for n = 2^e, where e is the integer
// value of the exponent key, which is exactly 2^e·e.
func WorkFactor(exponent string) (float64, error) {
	e, err := strconv.Atoi(exponent)
	if err != nil {
		return 0, fmt.Errorf("size exponent %q is not an integer", exponent)
	}
	if e < 1 || e > 1023 {
		return 0, fmt.Errorf("size exponent %d out of range [1, 1023]", e)
	}
	return math.Ldexp(float64(e), e), nil
}

// Normalize returns the time per element of a duration measured at the
// given size exponent.
func Normalize(exponent string, duration float64) (float64, error) {
	w, err := WorkFactor(exponent)
	if err != nil {
		return 0, err
	}
	return duration / w, nil
}

// A Series is the sequence of points plotted for one distribution of
// one algorithm.
type Series struct {
	Algorithm    string
	Distribution string
	Mode         Mode
	// Points are in the order their exponents were first seen.
	Points []Point
}

// Series derives the series of distribution dist of algorithm alg in
// the given mode. It returns a *MissingKeyError if either key was never
// observed, and an error if mode is TimePerElement and an exponent is
// not a positive integer.
func (a *Aggregate) Series(alg, dist string, mode Mode) (*Series, error) {
	points, err := a.Lookup(alg, dist)
	if err != nil {
		return nil, err
	}
	switch mode {
	case TotalTime:
	case TimePerElement:
		for i := range points {
			points[i].Duration, err = Normalize(points[i].Exponent, points[i].Duration)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", alg, dist, err)
			}
		}
	default:
		return nil, fmt.Errorf("unknown mode %v", mode)
	}
	return &Series{Algorithm: alg, Distribution: dist, Mode: mode, Points: points}, nil
}
