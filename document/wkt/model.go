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

package wkt

import (
	"strconv"

	libdoc "github.com/nabbar/udstk/document"
	liberr "github.com/nabbar/udstk/errors"
)

const (
	memberType   = "type"
	memberName   = "name"
	memberValues = "values"
)

type parser struct {
	d []byte
	i int
}

func parseWKT(data []byte) (*libdoc.Value, liberr.Error) {
	p := &parser{d: data}

	p.skipSpace()

	v, err := p.parseNode()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if !p.eof() {
		return nil, liberr.CodeParseError.Error(nil)
	}

	return v, nil
}

func (p *parser) eof() bool {
	return p.i >= len(p.d)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.d[p.i]
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.d[p.i] {
		case ' ', '\t', '\r', '\n':
			p.i++
		default:
			return
		}
	}
}

func isWordByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		return true
	}
	return false
}

func (p *parser) parseWord() string {
	start := p.i
	for !p.eof() && isWordByte(p.d[p.i]) {
		p.i++
	}
	return string(p.d[start:p.i])
}

func (p *parser) parseNode() (*libdoc.Value, liberr.Error) {
	kw := p.parseWord()
	if len(kw) < 1 {
		return nil, liberr.CodeParseError.Error(nil)
	}

	p.skipSpace()
	if p.peek() != '[' {
		return nil, liberr.CodeParseError.Error(nil)
	}
	p.i++

	node := libdoc.New()
	node.SetObject()
	node.SetMember(memberType).SetString(kw)

	values := node.SetMember(memberValues)
	values.SetArray()

	named := false

	for {
		p.skipSpace()

		if p.eof() {
			return nil, liberr.CodeParseError.Error(nil)
		}

		if p.peek() == ']' {
			p.i++
			return node, nil
		}

		switch c := p.peek(); {
		case c == '"':
			p.i++
			start := p.i
			for !p.eof() && p.d[p.i] != '"' {
				p.i++
			}
			if p.eof() {
				return nil, liberr.CodeParseError.Error(nil)
			}

			s := string(p.d[start:p.i])
			p.i++

			// the first quoted argument is the node name
			if !named {
				node.SetMember(memberName).SetString(s)
				named = true
			} else {
				values.Append().SetString(s)
			}

		case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
			start := p.i
			for !p.eof() {
				c = p.d[p.i]
				if c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E' || (c >= '0' && c <= '9') {
					p.i++
				} else {
					break
				}
			}

			lit := string(p.d[start:p.i])

			if n, e := strconv.ParseInt(lit, 10, 64); e == nil {
				values.Append().SetInt(n)
			} else if f, e2 := strconv.ParseFloat(lit, 64); e2 == nil {
				values.Append().SetDouble(f)
			} else {
				return nil, liberr.CodeParseError.Error(e2)
			}

		default:
			// keyword or nested node
			save := p.i
			kw2 := p.parseWord()
			if len(kw2) < 1 {
				return nil, liberr.CodeParseError.Error(nil)
			}

			p.skipSpace()

			if p.peek() == '[' {
				p.i = save

				child, err := p.parseNode()
				if err != nil {
					return nil, err
				}

				*values.Append() = *child
			} else {
				// a bare keyword argument, like an axis direction
				values.Append().SetString(kw2)
			}
		}

		p.skipSpace()
		if p.peek() == ',' {
			p.i++
		}
	}
}

func appendNode(b []byte, v *libdoc.Value) []byte {
	typ := v.FindMember(memberType).AsString("")

	b = append(b, typ...)
	b = append(b, '[')

	first := true

	if name := v.FindMember(memberName); !name.IsVoid() {
		b = append(b, '"')
		b = append(b, name.AsString("")...)
		b = append(b, '"')
		first = false
	}

	values := v.FindMember(memberValues)

	for i := 0; i < values.ArrayLength(); i++ {
		if !first {
			b = append(b, ',')
		}
		first = false

		e := values.ArrayItem(i)

		switch {
		case e.IsObject():
			b = appendNode(b, e)

		case e.IsString():
			// AXIS directions keep their unquoted spelling
			if typ == "AXIS" {
				b = append(b, e.AsString("")...)
			} else {
				b = append(b, '"')
				b = append(b, e.AsString("")...)
				b = append(b, '"')
			}

		default:
			b = append(b, e.AsString("")...)
		}
	}

	return append(b, ']')
}
