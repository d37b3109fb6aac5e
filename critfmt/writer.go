// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"bytes"
	"io"
)

// A Writer writes harness messages, one JSON object per line.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes messages to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes rec to w. A record read by a Reader is reproduced
// byte for byte, including fields this package does not decode.
func (w *Writer) Write(rec *Record) error {
	line, err := rec.MarshalLine()
	if err != nil {
		return err
	}
	w.buf.Write(line)
	w.buf.WriteByte('\n')

	// Flush the buffer out to the io.Writer. Write to the buffer
	// can't fail, so we only have to check if this fails.
	_, err = w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}
