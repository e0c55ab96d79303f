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
	"strconv"
	"strings"

	libcmp "github.com/nabbar/udstk/compress"
	encb64 "github.com/nabbar/udstk/encoding/base64"
	liberr "github.com/nabbar/udstk/errors"
)

// The raw:// scheme carries a whole file in its name:
// raw://[attr=value(,attr=value)*@]<base64>. Recognized attributes are
// filename="...", compression=<algorithm>, size=<N> (inflated length,
// required when compressed) and allocationSize=<N> (write buffer bound,
// required for write mode).

const rawPrefix = "raw://"

type rawAttrs struct {
	original string
	ct       libcmp.Algorithm
	size     int64
	alloc    int64
	payload  string
}

// IsRaw reports whether the filename carries the raw:// prefix.
func IsRaw(filename string) bool {
	return strings.HasPrefix(filename, rawPrefix)
}

func parseRawAttrs(filename string) (rawAttrs, liberr.Error) {
	var res rawAttrs

	rest := filename[len(rawPrefix):]

	at := strings.IndexByte(rest, '@')
	if at < 0 {
		res.payload = rest
		return res, nil
	}

	attrs := rest[:at]
	res.payload = rest[at+1:]

	for len(attrs) > 0 {
		switch {
		case hasFoldPrefix(attrs, "filename=\""):
			attrs = attrs[len("filename=\""):]

			end := matchQuote(attrs)
			if end < 0 {
				return res, liberr.CodeParseError.Error(nil)
			}

			res.original = attrs[:end]
			attrs = attrs[end+1:]

		case hasFoldPrefix(attrs, "compression="):
			attrs = attrs[len("compression="):]

			end := strings.IndexByte(attrs, ',')
			if end < 0 {
				end = len(attrs)
			}

			ct, ok := libcmp.Parse(attrs[:end])
			if !ok {
				return res, liberr.CodeFormatVariationNotSupported.Error(nil)
			}

			res.ct = ct
			attrs = attrs[end:]

		case hasFoldPrefix(attrs, "size="):
			attrs = attrs[len("size="):]

			var err liberr.Error
			if res.size, attrs, err = parseAttrNumber(attrs); err != nil {
				return res, err
			}

		case hasFoldPrefix(attrs, "allocationsize="):
			attrs = attrs[len("allocationsize="):]

			var err liberr.Error
			if res.alloc, attrs, err = parseAttrNumber(attrs); err != nil {
				return res, err
			}

		default:
			return res, liberr.CodeParseError.Error(nil)
		}

		if len(attrs) > 0 && attrs[0] == ',' {
			attrs = attrs[1:]
		}
	}

	return res, nil
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// matchQuote returns the index of the closing quote, honouring backslash
// escapes, or -1.
func matchQuote(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}

	return -1
}

func parseAttrNumber(s string) (int64, string, liberr.Error) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == 0 {
		return 0, s, liberr.CodeParseError.Error(nil)
	}

	n, e := strconv.ParseInt(s[:end], 10, 64)
	if e != nil {
		return 0, s, liberr.CodeParseError.Error(e)
	}

	return n, s[end:], nil
}

// GenerateRawFilename re-encodes a buffer into a raw:// filename,
// compressing first when requested. A non-zero allocationSize bounds the
// result length and is recorded as an attribute.
func GenerateRawFilename(data []byte, ct libcmp.Algorithm, originalName string, allocationSize int64) (string, liberr.Error) {
	var (
		b       strings.Builder
		payload = data
	)

	if !ct.IsNone() && len(data) > 0 {
		var err liberr.Error
		if payload, err = libcmp.Deflate(data, ct); err != nil {
			return "", err
		}
	}

	b.WriteString(rawPrefix)

	if len(originalName) > 0 {
		b.WriteString("filename=\"")
		b.WriteString(originalName)
		b.WriteString("\",")
	}

	if !ct.IsNone() {
		b.WriteString("compression=")
		b.WriteString(ct.String())
		b.WriteByte(',')
	}

	if allocationSize > 0 {
		b.WriteString("allocationSize=")
		b.WriteString(strconv.FormatInt(allocationSize, 10))
		b.WriteByte(',')
	}

	b.WriteString("size=")
	b.WriteString(strconv.Itoa(len(data)))
	b.WriteByte('@')

	b.Write(encb64.New().Encode(payload))

	res := b.String()

	if allocationSize > 0 && int64(len(res)) > allocationSize {
		log.Debugf("raw file write buffer too small, need min %d bytes", len(res))
		return "", liberr.CodeBufferTooSmall.Error(nil)
	}

	return res, nil
}

type rawBackend struct {
	data  []byte
	orig  string
	ct    libcmp.Algorithm
	alloc int64
}

func openRawBackend(filename string, flags OpenFlags) (Backend, liberr.Error) {
	attrs, err := parseRawAttrs(filename)
	if err != nil {
		return nil, err
	}

	if flags&FlagWrite != 0 && attrs.alloc < 1 {
		// never permit opening for write without an allocation size
		return nil, liberr.CodeOpenFailure.Error(nil)
	}

	b := &rawBackend{
		orig:  attrs.original,
		ct:    attrs.ct,
		alloc: attrs.alloc,
	}

	// no base64 text is legal for an empty raw file
	if len(attrs.payload) > 0 {
		enc, e := encb64.New().Decode([]byte(attrs.payload))
		if e != nil {
			return nil, liberr.CodeCorruptData.Error(e)
		}

		if !attrs.ct.IsNone() {
			if attrs.size < 1 {
				return nil, liberr.CodeInvalidConfiguration.Error(nil)
			}

			b.data = make([]byte, attrs.size)

			if _, err = libcmp.Inflate(b.data, enc, attrs.ct); err != nil {
				return nil, err
			}
		} else {
			b.data = enc
		}
	}

	// a create discards the existing content
	if flags&FlagCreate != 0 {
		b.data = nil
	}

	return b, nil
}

func (o *rawBackend) ReadAt(p []byte, off int64) (int, liberr.Error) {
	if off < 0 || off >= int64(len(o.data)) {
		return 0, liberr.CodeInvalidParameter.Error(nil)
	}

	n := copy(p, o.data[off:])
	return n, nil
}

func (o *rawBackend) WriteAt(p []byte, off int64) (int, liberr.Error) {
	if off < 0 {
		return 0, liberr.CodeInvalidParameter.Error(nil)
	}

	if need := off + int64(len(p)); need > int64(len(o.data)) {
		grown := make([]byte, need)
		copy(grown, o.data)
		o.data = grown
	}

	copy(o.data[off:], p)
	return len(p), nil
}

func (o *rawBackend) Length() int64 {
	return int64(len(o.data))
}

func (o *rawBackend) SeekBase() int64 {
	return 0
}

func (o *rawBackend) Regenerate() (string, liberr.Error) {
	return GenerateRawFilename(o.data, o.ct, o.orig, o.alloc)
}

func (o *rawBackend) Close() liberr.Error {
	o.data = nil
	return nil
}
