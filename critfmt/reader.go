// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// maxLineSize bounds a single message. Completed-benchmark messages
// carry every sample, which easily exceeds bufio's default.
const maxLineSize = 64 << 20

// A Reader reads a harness message stream.
//
// Its API is modeled on bufio.Scanner. To minimize allocation, a
// Reader retains ownership of the Record it returns; a caller should
// Clone anything it needs to retain past the next call to Scan.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	s   *bufio.Scanner
	err error

	rec      Record
	fileName string
	line     int
}

// A SyntaxError represents a malformed message on a particular line of
// a benchmark stream.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader constructs a reader for the message stream in r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	r.s.Buffer(nil, maxLineSize)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.err = nil
	r.rec = Record{raw: r.rec.raw[:0]}
}

func (r *Reader) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg}
}

// Scan advances the reader to the next message and reports whether a
// message was read. The caller should use the Result method to get it.
//
// A line that does not decode to a well-formed message stops the scan
// with a *SyntaxError; there is no resynchronization. If Scan reaches
// EOF or an error occurs, it returns false, in which case the caller
// should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.s.Scan() {
		r.line++
		line := r.s.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if err := r.parseLine(line); err != nil {
			r.err = err
			return false
		}
		return true
	}

	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// message is the envelope of a harness message. Fields other than the
// reason are kept raw so that messages of other kinds may give them any
// shape without failing the decode.
type message struct {
	Reason string          `json:"reason"`
	ID     json.RawMessage `json:"id"`
	Unit   json.RawMessage `json:"unit"`
	Mean   json.RawMessage `json:"mean"`
}

func (r *Reader) parseLine(line []byte) error {
	if msg := validate(line); msg != "" {
		return r.newSyntaxError(msg)
	}
	var m message
	if err := json.Unmarshal(line, &m); err != nil {
		return r.newSyntaxError(err.Error())
	}

	r.rec = Record{
		Reason:   m.Reason,
		fileName: r.fileName,
		line:     r.line,
		raw:      append(r.rec.raw[:0], line...),
	}
	// The schema has already checked the fields of completed
	// benchmarks, so only other message kinds can fail here, and for
	// those a field of unexpected shape is simply left unset.
	decode := func(raw json.RawMessage, v interface{}) bool {
		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
			return false
		}
		return json.Unmarshal(raw, v) == nil
	}
	decode(m.ID, &r.rec.ID)
	decode(m.Unit, &r.rec.Unit)
	var mean Estimate
	if decode(m.Mean, &mean) {
		r.rec.Mean = &mean
	}
	return nil
}

// Result returns the record that was just read by Scan.
//
// The returned Record is owned by the Reader and is only valid until
// the next call to Scan or Reset.
func (r *Reader) Result() *Record {
	if r.line == 0 || r.err != nil {
		return nil
	}
	return &r.rec
}

// Err returns the first error encountered by the Reader.
// If Scan stopped because it reached EOF, Err returns nil.
func (r *Reader) Err() error {
	return r.err
}
