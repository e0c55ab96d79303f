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
	"strings"

	encb64 "github.com/nabbar/udstk/encoding/base64"
	encurl "github.com/nabbar/udstk/encoding/urlcode"
	liberr "github.com/nabbar/udstk/errors"
)

// The data: scheme implements the RFC 2397 subset
// data:[<mediatype>][;base64],<payload>. The payload is percent-decoded
// by default, base64-decoded when ";base64" appears before the comma.
// Files are read-only with random access.

type dataBackend struct {
	data []byte
}

func openDataBackend(filename string, flags OpenFlags) (Backend, liberr.Error) {
	if flags&(FlagWrite|FlagCreate) != 0 {
		return nil, liberr.CodeOpenFailure.Error(nil)
	}

	comma := strings.IndexByte(filename, ',')
	if comma < 0 {
		return nil, liberr.CodeParseError.Error(nil)
	}

	var (
		head    = filename[:comma]
		payload = filename[comma+1:]
		b       = &dataBackend{}
	)

	if strings.Contains(head, ";base64") {
		dec, e := encb64.New().Decode([]byte(payload))
		if e != nil {
			return nil, liberr.CodeCorruptData.Error(e)
		}
		b.data = dec
	} else {
		b.data = []byte(encurl.Unescape(payload))
	}

	return b, nil
}

func (o *dataBackend) ReadAt(p []byte, off int64) (int, liberr.Error) {
	if off < 0 || off >= int64(len(o.data)) {
		return 0, liberr.CodeInvalidParameter.Error(nil)
	}

	n := copy(p, o.data[off:])
	return n, nil
}

func (o *dataBackend) Length() int64 {
	return int64(len(o.data))
}

func (o *dataBackend) SeekBase() int64 {
	return 0
}

func (o *dataBackend) Close() liberr.Error {
	o.data = nil
	return nil
}
