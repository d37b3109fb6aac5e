// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"fmt"
	"strings"
)

// markerLen is the length of the marker in front of the size exponent,
// as in "2^10" or "n_10".
const markerLen = 2

// An ID is a parsed benchmark id of the form
//
//	<group>/<algorithm>/<distribution>/<marker><exponent>/<count>
type ID struct {
	Group        string
	Algorithm    string
	Distribution string
	// Exponent is log2 of the input size, kept as the text that
	// followed the marker.
	Exponent string
	// Count is the literal element count. The exponent is
	// authoritative for sizing; Count is informational.
	Count string
}

// An IDError reports a benchmark id that does not have the expected
// shape, which indicates output from an incompatible harness.
type IDError struct {
	ID  string
	Msg string
}

func (e *IDError) Error() string {
	return fmt.Sprintf("malformed benchmark id %q: %s", e.ID, e.Msg)
}

// ParseID parses a benchmark id.
func ParseID(id string) (ID, error) {
	f := strings.Split(id, "/")
	if len(f) != 5 {
		return ID{}, &IDError{id, fmt.Sprintf("want 5 /-separated fields, got %d", len(f))}
	}
	if len(f[3]) <= markerLen {
		return ID{}, &IDError{id, fmt.Sprintf("size field %q has no exponent after its %d-character marker", f[3], markerLen)}
	}
	return ID{
		Group:        f[0],
		Algorithm:    f[1],
		Distribution: f[2],
		Exponent:     f[3][markerLen:],
		Count:        f[4],
	}, nil
}
