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

package urlcode

import (
	"strconv"
	"strings"

	liberr "github.com/nabbar/udstk/errors"
)

const hexDigit = "0123456789ABCDEF"

func isEscaped(c byte) bool {
	switch c {
	case ' ', '#', '%', '+', '?':
		return true
	}

	return false
}

func splitURL(raw string) (URL, liberr.Error) {
	var res URL

	i := strings.Index(raw, "://")
	if i < 1 {
		return res, liberr.CodeParseError.Error(nil)
	}

	res.Scheme = strings.ToLower(raw[:i])
	rest := raw[i+3:]

	if len(rest) < 1 {
		return res, liberr.CodeParseError.Error(nil)
	}

	if rest[0] == '[' {
		// IPv6 literal host
		j := strings.IndexByte(rest, ']')
		if j < 0 {
			return res, liberr.CodeParseError.Error(nil)
		}

		res.Host = rest[1:j]
		rest = rest[j+1:]
	} else {
		j := strings.IndexAny(rest, ":/")
		if j < 0 {
			res.Host = rest
			rest = ""
		} else {
			res.Host = rest[:j]
			rest = rest[j:]
		}
	}

	if len(res.Host) < 1 {
		return res, liberr.CodeParseError.Error(nil)
	}

	if len(rest) > 0 && rest[0] == ':' {
		j := strings.IndexByte(rest, '/')
		if j < 0 {
			j = len(rest)
		}

		p, e := strconv.Atoi(rest[1:j])
		if e != nil || p < 1 || p > 65535 {
			return res, liberr.CodeParseError.Error(e)
		}

		res.Port = p
		rest = rest[j:]
	} else if res.Scheme == "https" {
		res.Port = 443
	} else {
		res.Port = 80
	}

	if len(rest) < 1 {
		res.Path = "/"
	} else {
		res.Path = escapePath(rest)
	}

	return res, nil
}

func escapePath(p string) string {
	n := 0
	for i := 0; i < len(p); i++ {
		if isEscaped(p[i]) {
			n++
		}
	}

	if n == 0 {
		return p
	}

	var b = make([]byte, 0, len(p)+2*n)

	for i := 0; i < len(p); i++ {
		if isEscaped(p[i]) {
			b = append(b, '%', hexDigit[p[i]>>4], hexDigit[p[i]&0x0F])
		} else {
			b = append(b, p[i])
		}
	}

	return string(b)
}

func unescape(s string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}

	var b = make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			h := unhex(s[i+1])
			l := unhex(s[i+2])

			if h >= 0 && l >= 0 {
				b = append(b, byte(h<<4|l))
				i += 2
				continue
			}
		}

		b = append(b, s[i])
	}

	return string(b)
}

func unhex(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}

	return -1
}
