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

package document

import (
	"strconv"
	"strings"
	"unicode/utf16"

	liberr "github.com/nabbar/udstk/errors"
)

// scanner walks a JSON text byte-wise. In lenient mode single-quoted
// strings are accepted, which the path expression literals rely on.
type scanner struct {
	d       []byte
	i       int
	lenient bool
}

func parseErr(parent error) liberr.Error {
	err := liberr.CodeParseError.Error(parent)

	if BreakOnError {
		panic(err)
	}

	return err
}

func parseJSON(data []byte) (*Value, liberr.Error) {
	s := &scanner{d: data}
	s.skipSpace()

	v := &Value{}
	if err := s.parseValue(v); err != nil {
		return nil, err
	}

	s.skipSpace()
	if !s.eof() {
		return nil, parseErr(nil)
	}

	return v, nil
}

func (s *scanner) eof() bool {
	return s.i >= len(s.d)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.d[s.i]
}

func (s *scanner) next() byte {
	c := s.peek()
	s.i++
	return c
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.d[s.i] {
		case ' ', '\t', '\r', '\n':
			s.i++
		default:
			return
		}
	}
}

func (s *scanner) expect(c byte) liberr.Error {
	if s.peek() != c {
		return parseErr(nil)
	}
	s.i++
	return nil
}

func (s *scanner) hasKeyword(kw string) bool {
	if len(s.d)-s.i < len(kw) {
		return false
	}

	if string(s.d[s.i:s.i+len(kw)]) != kw {
		return false
	}

	s.i += len(kw)
	return true
}

func (s *scanner) parseValue(v *Value) liberr.Error {
	s.skipSpace()

	switch c := s.peek(); {
	case c == '{':
		return s.parseObject(v)
	case c == '[':
		return s.parseArray(v)
	case c == '"':
		str, err := s.parseString('"')
		if err != nil {
			return err
		}
		v.SetString(str)
		return nil
	case c == '\'' && s.lenient:
		str, err := s.parseString('\'')
		if err != nil {
			return err
		}
		v.SetString(str)
		return nil
	case s.hasKeyword("null"):
		v.SetNull()
		return nil
	case s.hasKeyword("true"):
		v.SetBool(true)
		return nil
	case s.hasKeyword("false"):
		v.SetBool(false)
		return nil
	default:
		return s.parseNumber(v)
	}
}

func (s *scanner) parseObject(v *Value) liberr.Error {
	s.i++ // {
	v.SetObject()
	s.skipSpace()

	if s.peek() == '}' {
		s.i++
		return nil
	}

	for {
		s.skipSpace()

		var (
			key string
			err liberr.Error
		)

		switch {
		case s.peek() == '"':
			key, err = s.parseString('"')
		case s.peek() == '\'' && s.lenient:
			key, err = s.parseString('\'')
		default:
			return parseErr(nil)
		}

		if err != nil {
			return err
		}

		s.skipSpace()
		if err = s.expect(':'); err != nil {
			return err
		}

		// inserting an existing key overwrites
		if err = s.parseValue(v.SetMember(key)); err != nil {
			return err
		}

		s.skipSpace()
		switch s.next() {
		case ',':
			continue
		case '}':
			return nil
		default:
			return parseErr(nil)
		}
	}
}

func (s *scanner) parseArray(v *Value) liberr.Error {
	s.i++ // [
	v.SetArray()
	s.skipSpace()

	if s.peek() == ']' {
		s.i++
		return nil
	}

	for {
		if err := s.parseValue(v.Append()); err != nil {
			return err
		}

		s.skipSpace()
		switch s.next() {
		case ',':
			continue
		case ']':
			return nil
		default:
			return parseErr(nil)
		}
	}
}

func (s *scanner) parseString(quote byte) (string, liberr.Error) {
	s.i++ // opening quote

	var b strings.Builder

	for {
		if s.eof() {
			return "", parseErr(nil)
		}

		c := s.next()

		switch c {
		case quote:
			return b.String(), nil

		case '\\':
			e := s.next()

			switch e {
			case '"', '\\', '/', '\'':
				b.WriteByte(e)
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				r, err := s.parseHexRune()
				if err != nil {
					return "", err
				}

				// combine surrogate pairs when both halves are present
				if utf16.IsSurrogate(r) && s.i+1 < len(s.d) && s.d[s.i] == '\\' && s.d[s.i+1] == 'u' {
					s.i += 2
					r2, err2 := s.parseHexRune()
					if err2 != nil {
						return "", err2
					}
					r = utf16.DecodeRune(r, r2)
				}

				b.WriteRune(r)
			default:
				return "", parseErr(nil)
			}

		default:
			b.WriteByte(c)
		}
	}
}

func (s *scanner) parseHexRune() (rune, liberr.Error) {
	if len(s.d)-s.i < 4 {
		return 0, parseErr(nil)
	}

	n, e := strconv.ParseUint(string(s.d[s.i:s.i+4]), 16, 32)
	if e != nil {
		return 0, parseErr(e)
	}

	s.i += 4
	return rune(n), nil
}

func (s *scanner) parseNumber(v *Value) liberr.Error {
	start := s.i
	integral := true

	if c := s.peek(); c == '-' || c == '+' {
		s.i++
	}

	for !s.eof() {
		switch c := s.d[s.i]; {
		case c >= '0' && c <= '9':
			s.i++
		case c == '.' || c == 'e' || c == 'E':
			integral = false
			s.i++
			if c := s.peek(); c == '-' || c == '+' {
				s.i++
			}
		default:
			goto done
		}
	}

done:
	if s.i == start {
		return parseErr(nil)
	}

	lit := string(s.d[start:s.i])

	if integral {
		if n, e := strconv.ParseInt(lit, 10, 64); e == nil {
			v.SetInt(n)
			return nil
		}
		// out of int64 range, degrade to double
	}

	f, e := strconv.ParseFloat(lit, 64)
	if e != nil {
		return parseErr(e)
	}

	v.SetDouble(f)
	return nil
}

func appendJSON(b []byte, v *Value) []byte {
	switch v.Kind() {
	case KindVoid, KindNull:
		return append(b, "null"...)

	case KindBool:
		if v.b {
			return append(b, "true"...)
		}
		return append(b, "false"...)

	case KindInt:
		return strconv.AppendInt(b, v.i, 10)

	case KindDouble:
		// shortest round-trippable decimal
		return strconv.AppendFloat(b, v.f, 'g', -1, 64)

	case KindString:
		return appendJSONString(b, v.s)

	case KindArray:
		b = append(b, '[')
		for i, e := range v.a {
			if i > 0 {
				b = append(b, ',')
			}
			b = appendJSON(b, e)
		}
		return append(b, ']')

	case KindObject:
		b = append(b, '{')
		for i := range v.mk {
			if i > 0 {
				b = append(b, ',')
			}
			b = appendJSONString(b, v.mk[i])
			b = append(b, ':')
			b = appendJSON(b, v.mv[i])
		}
		return append(b, '}')
	}

	return b
}

const jsonHex = "0123456789abcdef"

// appendJSONString escapes exactly the JSON escape set plus ASCII
// control points; other bytes pass through as UTF-8.
func appendJSONString(b []byte, s string) []byte {
	b = append(b, '"')

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			b = append(b, '\\', '"')
		case c == '\\':
			b = append(b, '\\', '\\')
		case c == '\b':
			b = append(b, '\\', 'b')
		case c == '\f':
			b = append(b, '\\', 'f')
		case c == '\n':
			b = append(b, '\\', 'n')
		case c == '\r':
			b = append(b, '\\', 'r')
		case c == '\t':
			b = append(b, '\\', 't')
		case c < 0x20:
			b = append(b, '\\', 'u', '0', '0', jsonHex[c>>4], jsonHex[c&0x0F])
		default:
			b = append(b, c)
		}
	}

	return append(b, '"')
}
