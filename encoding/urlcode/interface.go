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

// Package urlcode provides the URL splitter and percent codec of the
// library.
//
// Split decomposes `scheme://host[:port]/path` with IPv6 bracket hosts
// and default ports (443 for https, 80 otherwise). EscapePath rewrites
// the fixed special set {' ', '#', '%', '+', '?'} as percent escapes;
// Unescape performs plain percent decoding.
package urlcode

import (
	liberr "github.com/nabbar/udstk/errors"
)

// URL holds the decomposed parts of a network location.
type URL struct {
	Scheme string
	Host   string
	Port   int
	Path   string
}

// Split decomposes the given location. The host keeps its IPv6 brackets
// removed; the path defaults to "/" and is returned percent-escaped.
func Split(raw string) (URL, liberr.Error) {
	return splitURL(raw)
}

// EscapePath rewrites the special characters of the given path as
// percent escapes. All other bytes pass through unchanged.
func EscapePath(p string) string {
	return escapePath(p)
}

// Unescape decodes percent escapes in the given string. Sequences that
// are not valid escapes pass through unchanged.
func Unescape(s string) string {
	return unescape(s)
}
