// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"reason":"a1"}`+"\n"+`{"reason":"a2"}`+"\n")
	b := writeFile(t, dir, "b.json", `{"reason":"b1"}`)

	f := Files{Paths: []string{a, b}}
	var got []string
	var lastFile string
	for f.Scan() {
		rec := f.Result()
		got = append(got, rec.Reason)
		lastFile, _ = rec.Pos()
	}
	if err := f.Err(); err != nil {
		t.Fatal(err)
	}
	if want := []string{"a1", "a2", "b1"}; !equalStrings(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
	if lastFile != b {
		t.Errorf("want last record from %s, got %s", b, lastFile)
	}
	if f.file != nil {
		t.Errorf("file still open after the sequence was drained")
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close after drain: %v", err)
	}
}

func TestFilesMissing(t *testing.T) {
	f := Files{Paths: []string{filepath.Join(t.TempDir(), "missing.json")}}
	if f.Scan() {
		t.Fatal("Scan succeeded on a missing file")
	}
	if !errors.Is(f.Err(), fs.ErrNotExist) {
		t.Fatalf("want not-exist error, got %v", f.Err())
	}
}

func TestFilesSyntaxError(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"reason":"a1"}`+"\n{oops\n")
	b := writeFile(t, dir, "b.json", `{"reason":"b1"}`)

	f := Files{Paths: []string{a, b}}
	n := 0
	for f.Scan() {
		n++
	}
	var se *SyntaxError
	if !errors.As(f.Err(), &se) {
		t.Fatalf("want *SyntaxError, got %v", f.Err())
	}
	if se.FileName != a || se.Line != 2 {
		t.Errorf("want %s:2, got %s:%d", a, se.FileName, se.Line)
	}
	if n != 1 {
		t.Errorf("want 1 record before the error, got %d", n)
	}
	if f.file != nil {
		t.Errorf("file still open after an error")
	}
}

func TestFilesClose(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"reason":"a1"}`+"\n"+`{"reason":"a2"}`)
	b := writeFile(t, dir, "b.json", `{"reason":"b1"}`)

	f := Files{Paths: []string{a, b}}
	if !f.Scan() {
		t.Fatal(f.Err())
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if f.Scan() {
		t.Fatal("Scan continued after Close")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
