// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// messageSchema describes the part of a harness message this package
// depends on. Every message needs a string reason; only completed
// benchmarks are held to the id and mean shape, so other message kinds
// may carry whatever they like.
const messageSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["reason"],
	"properties": {
		"reason": {"type": "string"}
	},
	"if": {
		"required": ["reason"],
		"properties": {"reason": {"const": "benchmark-complete"}}
	},
	"then": {
		"required": ["id", "mean"],
		"properties": {
			"id": {"type": "string"},
			"unit": {"type": "string"},
			"mean": {
				"type": "object",
				"required": ["estimate"],
				"properties": {
					"estimate": {"type": "number"}
				}
			}
		}
	}
}`

var compiledSchema = mustCompileSchema(messageSchema)

func mustCompileSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic("critfmt: bad message schema: " + err.Error())
	}
	return s
}

// validate checks line against the message schema and returns a
// description of the first violations, or "" if line conforms.
func validate(line []byte) string {
	res, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(line))
	if err != nil {
		// The document could not be loaded, which means it is not
		// JSON at all.
		return err.Error()
	}
	if res.Valid() {
		return ""
	}
	var msgs []string
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return strings.Join(msgs, "; ")
}
