/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package wkt parses the geospatial Well-Known-Text coordinate system
// representation into the document tree and back.
//
// A WKT node NAME["name", value, ...] becomes an object of shape
// {type, name, values: [...]}: the node keyword is "type", the first
// quoted string argument is "name", every remaining argument lands in
// "values" (nested nodes recurse). The emitter is the inverse, with the
// AXIS direction keyword kept unquoted to preserve common input
// quoting.
package wkt

import (
	libdoc "github.com/nabbar/udstk/document"
	liberr "github.com/nabbar/udstk/errors"
)

// Parse parses a WKT text into its tree form.
func Parse(data []byte) (*libdoc.Value, liberr.Error) {
	return parseWKT(data)
}

// Emit writes the WKT form of a tree produced by Parse or shaped the
// same way.
func Emit(v *libdoc.Value) []byte {
	var b []byte
	return appendNode(b, v)
}
