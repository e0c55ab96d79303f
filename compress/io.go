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
	"io"

	kpflate "github.com/klauspost/compress/flate"
	kpgzip "github.com/klauspost/compress/gzip"
	kpzlib "github.com/klauspost/compress/zlib"

	liberr "github.com/nabbar/udstk/errors"
)

func makeReader(algo Algorithm, src io.Reader) (io.ReadCloser, liberr.Error) {
	switch algo {
	case None:
		if rc, ok := src.(io.ReadCloser); ok {
			return rc, nil
		}
		return io.NopCloser(src), nil

	case RawDeflate:
		return kpflate.NewReader(src), nil

	case ZlibDeflate:
		if r, e := kpzlib.NewReader(src); e != nil {
			return nil, liberr.CodeCorruptData.Error(e)
		} else {
			return r, nil
		}

	case GzipDeflate:
		if r, e := kpgzip.NewReader(src); e != nil {
			return nil, liberr.CodeCorruptData.Error(e)
		} else {
			return r, nil
		}
	}

	return nil, liberr.CodeFormatVariationNotSupported.Error(nil)
}

func makeWriter(algo Algorithm, dst io.Writer) (io.WriteCloser, liberr.Error) {
	switch algo {
	case None:
		return &nopWriteCloser{w: dst}, nil

	case RawDeflate:
		if w, e := kpflate.NewWriter(dst, kpflate.DefaultCompression); e != nil {
			return nil, liberr.CodeCompressionError.Error(e)
		} else {
			return w, nil
		}

	case ZlibDeflate:
		return kpzlib.NewWriter(dst), nil

	case GzipDeflate:
		return kpgzip.NewWriter(dst), nil
	}

	return nil, liberr.CodeFormatVariationNotSupported.Error(nil)
}

type nopWriteCloser struct {
	w io.Writer
}

func (o *nopWriteCloser) Write(p []byte) (n int, err error) {
	return o.w.Write(p)
}

func (o *nopWriteCloser) Close() error {
	return nil
}
