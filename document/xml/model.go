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

package xml

import (
	"strconv"
	"strings"

	libdoc "github.com/nabbar/udstk/document"
	liberr "github.com/nabbar/udstk/errors"
)

const contentMember = "content"

type parser struct {
	d []byte
	i int
}

func parseXML(data []byte) (*libdoc.Value, liberr.Error) {
	p := &parser{d: data}

	root := libdoc.New()
	root.SetObject()

	p.skipSpace()

	for !p.eof() {
		if p.peek() != '<' {
			return nil, liberr.CodeParseError.Error(nil)
		}

		if p.skipNonElement() {
			p.skipSpace()
			continue
		}

		if err := p.parseElement(root); err != nil {
			return nil, err
		}

		p.skipSpace()
	}

	if root.MemberCount() < 1 {
		return nil, liberr.CodeParseError.Error(nil)
	}

	return root, nil
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

// skipNonElement consumes declarations, processing instructions and
// comments; it reports whether something was consumed.
func (p *parser) skipNonElement() bool {
	switch {
	case p.has("<?"):
		if j := strings.Index(string(p.d[p.i:]), "?>"); j >= 0 {
			p.i += j + 2
			return true
		}
		p.i = len(p.d)
		return true

	case p.has("<!--"):
		if j := strings.Index(string(p.d[p.i:]), "-->"); j >= 0 {
			p.i += j + 3
			return true
		}
		p.i = len(p.d)
		return true

	case p.has("<!DOCTYPE"):
		if j := strings.IndexByte(string(p.d[p.i:]), '>'); j >= 0 {
			p.i += j + 1
			return true
		}
		p.i = len(p.d)
		return true
	}

	return false
}

func (p *parser) has(prefix string) bool {
	return strings.HasPrefix(string(p.d[p.i:]), prefix)
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-' || c == '.':
		return true
	}
	return false
}

func (p *parser) parseName() string {
	start := p.i
	for !p.eof() && isNameByte(p.d[p.i]) {
		p.i++
	}
	return string(p.d[start:p.i])
}

// insertChild adds a child element value under the name, collapsing
// repeated siblings into an array.
func insertChild(parent *libdoc.Value, name string) *libdoc.Value {
	if !parent.HasMember(name) {
		return parent.SetMember(name)
	}

	old := parent.FindMember(name)

	if old.IsArray() {
		return old.Append()
	}

	// second sibling: convert the member to an array keeping the first
	saved := libdoc.New()
	*saved = *old

	old.SetArray()
	*old.Append() = *saved

	return old.Append()
}

func (p *parser) parseElement(parent *libdoc.Value) liberr.Error {
	p.i++ // <

	name := p.parseName()
	if len(name) < 1 {
		return liberr.CodeParseError.Error(nil)
	}

	el := insertChild(parent, name)
	el.SetObject()

	// attributes
	for {
		p.skipSpace()

		switch {
		case p.eof():
			return liberr.CodeParseError.Error(nil)

		case p.has("/>"):
			p.i += 2
			return nil

		case p.peek() == '>':
			p.i++
			return p.parseChildren(name, el)

		default:
			attr := p.parseName()
			if len(attr) < 1 {
				return liberr.CodeParseError.Error(nil)
			}

			p.skipSpace()
			if p.peek() != '=' {
				return liberr.CodeParseError.Error(nil)
			}
			p.i++
			p.skipSpace()

			q := p.peek()
			if q != '"' && q != '\'' {
				return liberr.CodeParseError.Error(nil)
			}
			p.i++

			start := p.i
			for !p.eof() && p.d[p.i] != q {
				p.i++
			}
			if p.eof() {
				return liberr.CodeParseError.Error(nil)
			}

			el.SetMember(attr).SetString(decodeEntities(string(p.d[start:p.i])))
			p.i++
		}
	}
}

func (p *parser) parseChildren(name string, el *libdoc.Value) liberr.Error {
	var text strings.Builder

	for {
		switch {
		case p.eof():
			return liberr.CodeParseError.Error(nil)

		case p.has("<![CDATA["):
			p.i += 9

			// the terminator may be preceded by earlier ']'s, match the
			// last possible start
			j := strings.Index(string(p.d[p.i:]), "]]>")
			if j < 0 {
				return liberr.CodeParseError.Error(nil)
			}

			text.WriteString(string(p.d[p.i : p.i+j]))
			p.i += j + 3

		case p.has("</"):
			p.i += 2

			end := p.parseName()
			p.skipSpace()

			if end != name || p.peek() != '>' {
				return liberr.CodeParseError.Error(nil)
			}
			p.i++

			if t := strings.TrimSpace(text.String()); len(t) > 0 {
				if el.MemberCount() < 1 {
					// a text-only element degrades to a plain string
					el.SetString(t)
				} else {
					el.SetMember(contentMember).SetString(t)
				}
			}

			return nil

		case p.has("<!--"), p.has("<?"):
			p.skipNonElement()

		case p.peek() == '<':
			if err := p.parseElement(el); err != nil {
				return err
			}

		default:
			start := p.i
			for !p.eof() && p.d[p.i] != '<' {
				p.i++
			}
			text.WriteString(decodeEntities(string(p.d[start:p.i])))
		}
	}
}

func decodeEntities(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}

	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] != '&' {
			b.WriteByte(s[i])
			continue
		}

		semi := strings.IndexByte(s[i:], ';')
		if semi < 0 {
			b.WriteByte(s[i])
			continue
		}

		ent := s[i+1 : i+semi]

		switch {
		case ent == "amp":
			b.WriteByte('&')
		case ent == "lt":
			b.WriteByte('<')
		case ent == "gt":
			b.WriteByte('>')
		case ent == "quot":
			b.WriteByte('"')
		case ent == "apos":
			b.WriteByte('\'')
		case strings.HasPrefix(ent, "#x") || strings.HasPrefix(ent, "#X"):
			if n, e := strconv.ParseUint(ent[2:], 16, 32); e == nil {
				b.WriteRune(rune(n))
			} else {
				b.WriteByte(s[i])
				continue
			}
		case strings.HasPrefix(ent, "#"):
			if n, e := strconv.ParseUint(ent[1:], 10, 32); e == nil {
				b.WriteRune(rune(n))
			} else {
				b.WriteByte(s[i])
				continue
			}
		default:
			b.WriteByte(s[i])
			continue
		}

		i += semi
	}

	return b.String()
}

func encodeEntities(s string, attr bool) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			if attr {
				b.WriteString("&quot;")
			} else {
				b.WriteByte(c)
			}
		case '\'':
			if attr {
				b.WriteString("&apos;")
			} else {
				b.WriteByte(c)
			}
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

func appendElement(b []byte, name string, v *libdoc.Value) []byte {
	// repeated siblings share the member name
	if v.IsArray() {
		for i := 0; i < v.ArrayLength(); i++ {
			b = appendElement(b, name, v.ArrayItem(i))
		}
		return b
	}

	if !v.IsObject() {
		// a scalar element carries only text
		b = append(b, '<')
		b = append(b, name...)
		b = append(b, '>')
		b = append(b, encodeEntities(v.AsString(""), false)...)
		b = append(b, "</"...)
		b = append(b, name...)
		b = append(b, '>')
		return b
	}

	b = append(b, '<')
	b = append(b, name...)

	var (
		hasAttr  bool
		children []int
		content  = ""
	)

	for i := 0; i < v.MemberCount(); i++ {
		var (
			k = v.MemberName(i)
			m = v.MemberByIndex(i)
		)

		switch {
		case k == contentMember && !m.IsObject() && !m.IsArray():
			content = m.AsString("")
		case m.IsObject() || m.IsArray():
			children = append(children, i)
		default:
			hasAttr = true
			b = append(b, ' ')
			b = append(b, k...)
			b = append(b, "=\""...)
			b = append(b, encodeEntities(m.AsString(""), true)...)
			b = append(b, '"')
		}
	}

	if len(children) < 1 && len(content) < 1 {
		if hasAttr {
			return append(b, "/>"...)
		}

		b = append(b, "></"...)
		b = append(b, name...)
		return append(b, '>')
	}

	b = append(b, '>')
	b = append(b, encodeEntities(content, false)...)

	for _, i := range children {
		b = appendElement(b, v.MemberName(i), v.MemberByIndex(i))
	}

	b = append(b, "</"...)
	b = append(b, name...)
	return append(b, '>')
}
