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

// Package document provides the structured value tree of the library.
//
// A Value is a tagged variant over void, null, boolean, 64-bit integer,
// 64-bit float, string, array and object. Objects keep their members in
// insertion order with unique keys, which preserves serialization
// fidelity across round trips.
//
// JSON is the native syntax of the tree: ParseJSON and ExportJSON live
// here, together with the embedded path expression language used by Get
// and Set (the literal grammar of Set is JSON with single-quoted strings
// permitted for convenience from host format strings). The alternate
// syntaxes live in the xml and wkt sub-packages; a binary form is
// available through ExportCBOR / ParseCBOR.
//
// Reading a missing member returns a sentinel void value: readers treat
// void as absence and must not mutate it.
package document

import (
	liberr "github.com/nabbar/udstk/errors"
)

// Kind discriminates the variant stored in a Value. The element kind is
// immutable after construction except via an explicit Set or Clear.
type Kind uint8

const (
	KindVoid Kind = iota
	KindNull
	KindBool
	KindInt
	KindDouble
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "void"
	}
}

// BreakOnError makes expression and syntax parse failures panic instead
// of returning a ParseError, which stops a debugger right at the broken
// input. It defaults to off, so negative paths return their errors.
var BreakOnError = false

// New returns a new void Value.
func New() *Value {
	return &Value{}
}

// ParseJSON parses a JSON text into a new tree.
func ParseJSON(data []byte) (*Value, liberr.Error) {
	return parseJSON(data)
}

// ExportJSON emits the canonical compact JSON form of the tree.
func ExportJSON(v *Value) []byte {
	var b []byte
	return appendJSON(b, v)
}
