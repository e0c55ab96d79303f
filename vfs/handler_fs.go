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

package vfs

import (
	"io"
	"os"

	liberr "github.com/nabbar/udstk/errors"
)

// fsBackend maps the empty prefix to the platform file API.
type fsBackend struct {
	f *os.File
	l int64
}

func openFSBackend(filename string, flags OpenFlags) (Backend, liberr.Error) {
	var mode int

	switch {
	case flags&FlagWrite != 0 && flags&FlagRead != 0:
		mode = os.O_RDWR
	case flags&FlagWrite != 0:
		mode = os.O_WRONLY
	default:
		mode = os.O_RDONLY
	}

	if flags&FlagCreate != 0 {
		mode |= os.O_CREATE | os.O_TRUNC
	}

	f, e := os.OpenFile(filename, mode, 0644)
	if e != nil {
		return nil, liberr.CodeOpenFailure.Error(e)
	}

	b := &fsBackend{f: f}

	if fi, se := f.Stat(); se == nil {
		b.l = fi.Size()
	} else if flags&FlagFastOpen == 0 {
		_ = f.Close()
		return nil, liberr.CodeOpenFailure.Error(se)
	}

	return b, nil
}

func (o *fsBackend) ReadAt(p []byte, off int64) (int, liberr.Error) {
	n, e := o.f.ReadAt(p, off)

	if e != nil && e != io.EOF {
		return n, liberr.CodeReadFailure.Error(e)
	}

	return n, nil
}

func (o *fsBackend) WriteAt(p []byte, off int64) (int, liberr.Error) {
	n, e := o.f.WriteAt(p, off)

	if e != nil {
		return n, liberr.CodeWriteFailure.Error(e)
	}

	return n, nil
}

func (o *fsBackend) Length() int64 {
	return o.l
}

func (o *fsBackend) SeekBase() int64 {
	return 0
}

func (o *fsBackend) Close() liberr.Error {
	if e := o.f.Close(); e != nil {
		return liberr.CodeCloseFailure.Error(e)
	}

	return nil
}
