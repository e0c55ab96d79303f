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

package base64

import (
	"encoding/base64"
	"io"
)

type crt struct{}

func (o *crt) Encode(p []byte) []byte {
	if len(p) < 1 {
		return make([]byte, 0)
	}

	var d = make([]byte, base64.StdEncoding.EncodedLen(len(p)))

	base64.StdEncoding.Encode(d, p)

	return d
}

func (o *crt) Decode(p []byte) ([]byte, error) {
	if len(p) < 1 {
		return make([]byte, 0), nil
	}

	// lenient pass: keep alphabet characters only, pads are absence
	var f = make([]byte, 0, len(p))

	for _, c := range p {
		if isAlphabet(c) {
			f = append(f, c)
		}
	}

	var d = make([]byte, base64.RawStdEncoding.DecodedLen(len(f)))

	n, e := base64.RawStdEncoding.Decode(d, f)

	return d[:n], e
}

func (o *crt) EncodeReader(r io.Reader) io.ReadCloser {
	pr, pw := io.Pipe()

	go func() {
		w := base64.NewEncoder(base64.StdEncoding, pw)

		if _, e := io.Copy(w, r); e != nil {
			_ = w.Close()
			_ = pw.CloseWithError(e)
			return
		}

		if e := w.Close(); e != nil {
			_ = pw.CloseWithError(e)
			return
		}

		_ = pw.Close()
	}()

	c := func() error {
		if rc, ok := r.(io.Closer); ok {
			return rc.Close()
		}

		return nil
	}

	return &reader{f: pr.Read, c: c}
}

func (o *crt) DecodeReader(r io.Reader) io.ReadCloser {
	var h = base64.NewDecoder(base64.StdEncoding, r)

	f := func(p []byte) (n int, err error) {
		return h.Read(p)
	}

	c := func() error {
		if rc, ok := r.(io.Closer); ok {
			return rc.Close()
		}

		return nil
	}

	return &reader{f: f, c: c}
}

func (o *crt) EncodeWriter(w io.Writer) io.WriteCloser {
	var h = base64.NewEncoder(base64.StdEncoding, w)

	f := func(p []byte) (n int, err error) {
		return h.Write(p)
	}

	c := func() error {
		if e := h.Close(); e != nil {
			return e
		}

		if wc, ok := w.(io.Closer); ok {
			return wc.Close()
		}

		return nil
	}

	return &writer{f: f, c: c}
}

func (o *crt) DecodeWriter(w io.Writer) io.WriteCloser {
	f := func(p []byte) (n int, err error) {
		n = len(p)

		b, e := o.Decode(p)
		if e != nil {
			return 0, e
		}

		if _, e = w.Write(b); e != nil {
			return 0, e
		}

		return n, nil
	}

	c := func() error {
		if wc, ok := w.(io.Closer); ok {
			return wc.Close()
		}

		return nil
	}

	return &writer{f: f, c: c}
}

func (o *crt) Reset() {}

func isAlphabet(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '+' || c == '/':
		return true
	}

	return false
}

type reader struct {
	f func(p []byte) (n int, err error)
	c func() error
}

func (r *reader) Read(p []byte) (n int, err error) {
	return r.f(p)
}

func (r *reader) Close() error {
	return r.c()
}

type writer struct {
	f func(p []byte) (n int, err error)
	c func() error
}

func (r *writer) Write(p []byte) (n int, err error) {
	return r.f(p)
}

func (r *writer) Close() error {
	return r.c()
}
