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
	"strings"
)

type Algorithm uint8

const (
	None Algorithm = iota
	RawDeflate
	ZlibDeflate
	GzipDeflate
)

func List() []Algorithm {
	return []Algorithm{
		None,
		RawDeflate,
		ZlibDeflate,
		GzipDeflate,
	}
}

// Parse returns the algorithm bearing the given name. Names are matched
// case-insensitively, with or without a hyphen before "deflate".
func Parse(s string) (Algorithm, bool) {
	s = strings.ToLower(strings.Replace(s, "-", "", -1))

	switch s {
	case "none", "":
		return None, true
	case "rawdeflate":
		return RawDeflate, true
	case "zlibdeflate":
		return ZlibDeflate, true
	case "gzipdeflate":
		return GzipDeflate, true
	}

	return None, false
}

func (a Algorithm) IsNone() bool {
	return a == None
}

func (a Algorithm) String() string {
	switch a {
	case RawDeflate:
		return "RawDeflate"
	case ZlibDeflate:
		return "ZlibDeflate"
	case GzipDeflate:
		return "GzipDeflate"
	default:
		return "None"
	}
}

func (a Algorithm) DetectHeader(h []byte) bool {
	if len(h) < 2 {
		return false
	}

	switch a {
	case GzipDeflate:
		exp := []byte{31, 139}
		return bytes.Equal(h[0:2], exp)
	case ZlibDeflate:
		// RFC1950: the CMF/FLG pair is a multiple of 31, whatever the
		// window size
		return (uint16(h[0])<<8|uint16(h[1]))%31 == 0
	default:
		return false
	}
}
