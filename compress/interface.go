/*
 *  MIT License
 *
 *  Copyright (c) 2025 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

// Package compress implements the deflate codec family of the library over
// buffers and streams.
//
// The algorithm set is closed: None, RawDeflate, ZlibDeflate, GzipDeflate.
// None is a plain copy. Buffer operations (Deflate, Inflate) mirror the
// stream factories (Algorithm.Reader, Algorithm.Writer) and share the same
// framing rules.
//
// The package also carries the PNG raster writer consumed by image
// producers of the stack.
package compress

import (
	"io"

	liberr "github.com/nabbar/udstk/errors"
)

// Deflate compresses src with the given algorithm and returns a new
// buffer trimmed to the compressed size.
//
// With the None algorithm the result is a copy of src. A zero-length
// source is a success returning a nil buffer.
func Deflate(src []byte, algo Algorithm) ([]byte, liberr.Error) {
	return deflateBuffer(src, algo)
}

// Inflate decompresses src into dst and returns the inflated length.
//
// When dst is too small the already-written prefix is left intact and the
// call fails with the BufferTooSmall code. A zero-length source is a
// success with a zero inflated length.
func Inflate(dst []byte, src []byte, algo Algorithm) (int64, liberr.Error) {
	return inflateBuffer(dst, src, algo)
}

// Reader returns a decompressing reader over src for the algorithm.
// The None algorithm returns src wrapped unchanged.
func (a Algorithm) Reader(src io.Reader) (io.ReadCloser, liberr.Error) {
	return makeReader(a, src)
}

// Writer returns a compressing writer over dst for the algorithm.
// Closing the result flushes the codec; dst itself is never closed.
func (a Algorithm) Writer(dst io.Writer) (io.WriteCloser, liberr.Error) {
	return makeWriter(a, dst)
}
