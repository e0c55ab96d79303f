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

// Package xml maps the attribute-centric XML subset onto the document
// tree.
//
// Attributes become scalar members, child elements with unique names
// nested objects, repeated siblings an array under the shared name, and
// element text a member named "content"; an element holding text only
// becomes a plain string. Namespaces are not handled.
// Parsing degrades every scalar to a string, so round trips through XML
// are not type-preserving.
package xml

import (
	libdoc "github.com/nabbar/udstk/document"
	liberr "github.com/nabbar/udstk/errors"
)

// Parse parses an XML text into a tree whose single root member carries
// the root element name.
func Parse(data []byte) (*libdoc.Value, liberr.Error) {
	return parseXML(data)
}

// Emit writes the XML form of a tree produced by Parse or shaped the
// same way.
func Emit(v *libdoc.Value) []byte {
	var b []byte

	for i := 0; i < v.MemberCount(); i++ {
		b = appendElement(b, v.MemberName(i), v.MemberByIndex(i))
	}

	return b
}
