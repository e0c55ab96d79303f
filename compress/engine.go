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

package compress

import (
	"bytes"
	"io"

	liberr "github.com/nabbar/udstk/errors"
)

func deflateBuffer(src []byte, algo Algorithm) ([]byte, liberr.Error) {
	if len(src) < 1 {
		return nil, nil
	}

	if algo.IsNone() {
		dst := make([]byte, len(src))
		copy(dst, src)
		return dst, nil
	}

	// codec expansion on incompressible input stays under this bound
	buf := bytes.NewBuffer(make([]byte, 0, len(src)+len(src)>>3+64))

	w, err := algo.Writer(buf)
	if err != nil {
		return nil, err
	}

	if _, e := w.Write(src); e != nil {
		_ = w.Close()
		return nil, liberr.CodeCompressionError.Error(e)
	}

	if e := w.Close(); e != nil {
		return nil, liberr.CodeCompressionError.Error(e)
	}

	dst := make([]byte, buf.Len())
	copy(dst, buf.Bytes())

	return dst, nil
}

func inflateBuffer(dst []byte, src []byte, algo Algorithm) (int64, liberr.Error) {
	if len(src) < 1 {
		return 0, nil
	}

	if algo.IsNone() {
		if len(dst) < len(src) {
			copy(dst, src[:len(dst)])
			return 0, liberr.CodeBufferTooSmall.Error(nil)
		}
		copy(dst, src)
		return int64(len(src)), nil
	}

	r, err := algo.Reader(bytes.NewReader(src))
	if err != nil {
		return 0, err
	}

	defer func() {
		_ = r.Close()
	}()

	var n int

	for n < len(dst) {
		s, e := r.Read(dst[n:])
		n += s

		if e == io.EOF {
			return int64(n), nil
		} else if e != nil {
			return 0, liberr.CodeCompressionError.Error(e)
		}
	}

	// destination is full, check for trailing inflated data
	var one [1]byte
	if s, e := r.Read(one[:]); s > 0 {
		return 0, liberr.CodeBufferTooSmall.Error(nil)
	} else if e != nil && e != io.EOF {
		return 0, liberr.CodeCompressionError.Error(e)
	}

	return int64(n), nil
}
