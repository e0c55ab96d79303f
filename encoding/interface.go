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

// Package encoding provides a unified Coder interface for the textual
// codecs of the library.
//
// Sub-packages:
//   - base64: binary to ASCII codec with lenient decoding
//   - urlcode: URL splitting and percent escaping
//
// All Coder implementations provide direct byte slice operations and
// streaming operations over io.Reader / io.Writer.
package encoding

import (
	"io"
)

// Coder is the unified interface for encoding and decoding operations.
//
// Thread safety depends on the implementation; refer to the sub-package
// documentation.
type Coder interface {
	// Encode encodes the given byte slice into a new byte slice.
	Encode(p []byte) []byte

	// Decode decodes the given byte slice and returns the decoded byte
	// slice and an error if any.
	Decode(p []byte) ([]byte, error)

	// EncodeReader returns a reader encoding the given source on the fly.
	EncodeReader(r io.Reader) io.ReadCloser

	// DecodeReader returns a reader decoding the given source on the fly.
	DecodeReader(r io.Reader) io.ReadCloser

	// EncodeWriter returns a writer encoding into the given destination.
	EncodeWriter(w io.Writer) io.WriteCloser

	// DecodeWriter returns a writer decoding into the given destination.
	DecodeWriter(w io.Writer) io.WriteCloser

	// Reset will free memory
	Reset()
}
