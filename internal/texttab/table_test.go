// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		// Reset tab.
		tab = Table{}
	}

	// Basic test.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a  b  c\nd  e  f\n")

	// Padding, and no trailing spaces.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("long").Cell("e").Cell("")
	check("a     b  c\nlong  e\n")

	// Right alignment.
	tab.SetRight(1, true)
	tab.Row().Cell("x").Cell("1")
	tab.Row().Cell("y").Cell("100")
	check("x    1\ny  100\n")

	// Ragged rows and multi-byte runes.
	tab.Row().Cell("☃").Cell("b")
	tab.Row().Cell("ab")
	check("☃   b\nab\n")

	// Cell without Row starts one.
	tab.Cell("solo")
	check("solo\n")

	// Empty table.
	check("")
}
