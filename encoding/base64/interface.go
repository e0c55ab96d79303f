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

// Package base64 provides the binary to ASCII codec of the library.
//
// This package implements the encoding.Coder interface over the standard
// base64 alphabet with '=' padding on encode.
//
// Encoding: input size N bytes produces exactly ceil(N/3)*4 characters.
//
// Decode is lenient: any character outside the standard alphabet,
// including padding, is skipped rather than rejected. This matches the
// behaviour expected by the raw:// and data: file handlers, whose
// payloads may carry whitespace or be truncated at attribute boundaries.
// DecodeReader is not lenient: it uses the standard padded decoder, which
// skips only line breaks.
//
// Example usage:
//
//	import encb64 "github.com/nabbar/udstk/encoding/base64"
//
//	coder := encb64.New()
//	enc := coder.Encode([]byte("Hello"))
//	dec, _ := coder.Decode(enc)
package base64

import libenc "github.com/nabbar/udstk/encoding"

// New creates a new base64 coder instance.
//
// The returned coder is stateless and safe for concurrent use.
func New() libenc.Coder {
	return &crt{}
}

// EncodedLen returns the exact encoded size of n source bytes,
// padding included.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}
