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

	liberr "github.com/nabbar/udstk/errors"
)

// The path expression grammar is step ('.' step | '[' index ']')*, where
// a step is an identifier or a bracketed expression. An index is a
// signed integer, an empty [] (append, sets only), a quoted member name,
// or a comma list of integers selecting positional members from an
// object as if it were an array. The tail of a set expression may carry
// an '=' assignment whose literal uses the JSON grammar with
// single-quoted strings permitted.

type pathStep struct {
	name     string
	isName   bool
	idx      []int
	isAppend bool
}

type pathExpr struct {
	steps  []pathStep
	assign string
	hasSet bool
}

func parsePathExpr(expr string) (*pathExpr, liberr.Error) {
	var (
		res = &pathExpr{}
		i   = 0
	)

	for i < len(expr) {
		switch c := expr[i]; {
		case c == ' ' || c == '\t':
			i++

		case c == '.':
			i++

		case c == '=':
			if len(res.steps) < 1 {
				return nil, parseErr(nil)
			}

			res.assign = expr[i+1:]
			res.hasSet = true
			return res, nil

		case c == '[':
			i++
			st, ni, err := parseBracket(expr, i)
			if err != nil {
				return nil, err
			}
			res.steps = append(res.steps, st)
			i = ni

		default:
			start := i
			for i < len(expr) && expr[i] != '.' && expr[i] != '[' && expr[i] != '=' {
				i++
			}

			name := strings.TrimSpace(expr[start:i])
			if len(name) < 1 {
				return nil, parseErr(nil)
			}

			res.steps = append(res.steps, pathStep{name: name, isName: true})
		}
	}

	if len(res.steps) < 1 {
		return nil, parseErr(nil)
	}

	return res, nil
}

func parseBracket(expr string, i int) (pathStep, int, liberr.Error) {
	var st pathStep

	skip := func() {
		for i < len(expr) && (expr[i] == ' ' || expr[i] == '\t') {
			i++
		}
	}

	skip()

	if i >= len(expr) {
		return st, i, parseErr(nil)
	}

	// empty brackets are the append marker
	if expr[i] == ']' {
		st.isAppend = true
		return st, i + 1, nil
	}

	// quoted member name, equivalent to the dot form
	if expr[i] == '\'' || expr[i] == '"' {
		q := expr[i]
		i++

		var b strings.Builder
		for i < len(expr) && expr[i] != q {
			if expr[i] == '\\' && i+1 < len(expr) {
				i++
			}
			b.WriteByte(expr[i])
			i++
		}

		if i >= len(expr) {
			return st, i, parseErr(nil)
		}
		i++ // closing quote

		skip()
		if i >= len(expr) || expr[i] != ']' {
			return st, i, parseErr(nil)
		}

		st.name = b.String()
		st.isName = true
		return st, i + 1, nil
	}

	// bare names are tolerated like the quoted form
	if !isIndexStart(expr[i]) {
		start := i
		for i < len(expr) && expr[i] != ']' {
			i++
		}

		if i >= len(expr) {
			return st, i, parseErr(nil)
		}

		st.name = strings.TrimSpace(expr[start:i])
		st.isName = true
		return st, i + 1, nil
	}

	// comma list of integers; empty slots are skipped
	for {
		skip()

		start := i
		for i < len(expr) && expr[i] != ',' && expr[i] != ']' {
			i++
		}

		if i >= len(expr) {
			return st, i, parseErr(nil)
		}

		tok := strings.TrimSpace(expr[start:i])
		if len(tok) > 0 {
			n, e := strconv.Atoi(tok)
			if e != nil {
				return st, i, parseErr(e)
			}
			st.idx = append(st.idx, n)
		}

		if expr[i] == ']' {
			if len(st.idx) < 1 {
				st.isAppend = true
			}
			return st, i + 1, nil
		}
		i++ // comma
	}
}

func isIndexStart(c byte) bool {
	return c == '-' || c == '+' || c == ',' || (c >= '0' && c <= '9')
}

// Get returns the addressed sub-value, or the void sentinel when any
// node on the path is missing or the expression does not parse.
func (v *Value) Get(expr string) *Value {
	r, _ := v.GetErr(expr)
	return r
}

// GetErr returns the addressed sub-value. A missing member reports
// NotFound, a malformed expression reports ParseError.
func (v *Value) GetErr(expr string) (*Value, liberr.Error) {
	p, err := parsePathExpr(expr)
	if err != nil {
		return voidValue, err
	}

	if p.hasSet {
		return voidValue, parseErr(nil)
	}

	cur := v

	for _, st := range p.steps {
		switch {
		case st.isName:
			cur = cur.FindMember(st.name)

		case st.isAppend:
			return voidValue, parseErr(nil)

		default:
			for _, n := range st.idx {
				if cur.IsArray() {
					cur = cur.ArrayItem(n)
				} else if cur.IsObject() && n >= 0 {
					// objects answer positional subscripts on reads
					cur = cur.MemberByIndex(n)
				} else {
					cur = voidValue
				}
			}
		}

		if cur == voidValue {
			return voidValue, liberr.CodeNotFound.Error(nil)
		}
	}

	if cur.IsVoid() {
		return voidValue, liberr.CodeNotFound.Error(nil)
	}

	return cur, nil
}

// Set evaluates a set expression. With an '=' literal the addressed
// value is assigned, auto-creating intermediate objects and arrays as
// the path dictates; explicit indexes may only create at the current
// array length and [] appends. Without '=' a named tail deletes the key
// (missing keys are a no-op success) and an append tail adds a void
// element.
func (v *Value) Set(expr string) liberr.Error {
	p, err := parsePathExpr(expr)
	if err != nil {
		return err
	}

	cur := v

	// an append tail creates the path to its array even without a literal
	create := p.hasSet || p.steps[len(p.steps)-1].isAppend

	for s := 0; s < len(p.steps)-1; s++ {
		st := p.steps[s]

		switch {
		case st.isAppend:
			// the append marker is only valid as the tail
			return parseErr(nil)

		case st.isName:
			if !create {
				// deleting below a missing node is a no-op
				if !cur.HasMember(st.name) {
					return nil
				}
				cur = cur.FindMember(st.name)
				continue
			}

			if cur.IsVoid() {
				cur.SetObject()
			}

			if !cur.IsObject() {
				return parseErr(nil)
			}

			cur = cur.SetMember(st.name)

		default:
			if len(st.idx) != 1 {
				// the positional comma form is read-only
				return parseErr(nil)
			}

			next, err2 := stepArrayForSet(cur, st.idx[0], create)
			if err2 != nil {
				return err2
			}
			if next == nil {
				return nil // delete below a missing element
			}

			cur = next
		}
	}

	return applyTail(cur, p)
}

func stepArrayForSet(cur *Value, n int, create bool) (*Value, liberr.Error) {
	if cur.IsVoid() {
		if !create {
			return nil, nil
		}
		cur.SetArray()
	}

	if !cur.IsArray() {
		// subscripting an object is ambiguous on writes
		return nil, parseErr(nil)
	}

	if n < 0 {
		n += cur.ArrayLength()
	}

	switch {
	case n >= 0 && n < cur.ArrayLength():
		return cur.ArrayItem(n), nil
	case create && n == cur.ArrayLength():
		return cur.Append(), nil
	case !create:
		return nil, nil
	}

	return nil, liberr.CodeOutOfRange.Error(nil)
}

func applyTail(cur *Value, p *pathExpr) liberr.Error {
	st := p.steps[len(p.steps)-1]

	if !p.hasSet {
		switch {
		case st.isName:
			if cur.IsObject() {
				cur.DeleteMember(st.name)
			}
			return nil

		case st.isAppend:
			if !cur.IsVoid() && !cur.IsArray() {
				return parseErr(nil)
			}
			cur.Append()
			return nil
		}

		return parseErr(nil)
	}

	var target *Value

	switch {
	case st.isName:
		if cur.IsVoid() {
			cur.SetObject()
		}
		if !cur.IsObject() {
			return parseErr(nil)
		}
		target = cur.SetMember(st.name)

	case st.isAppend:
		if !cur.IsVoid() && !cur.IsArray() {
			return parseErr(nil)
		}
		target = cur.Append()

	default:
		if len(st.idx) != 1 {
			return parseErr(nil)
		}

		t, err := stepArrayForSet(cur, st.idx[0], true)
		if err != nil {
			return err
		}
		target = t
	}

	return parseLiteralInto(target, p.assign)
}

// parseLiteralInto parses a JSON literal with single-quote leniency.
func parseLiteralInto(target *Value, lit string) liberr.Error {
	s := &scanner{d: []byte(lit), lenient: true}

	s.skipSpace()
	if err := s.parseValue(target); err != nil {
		return err
	}

	s.skipSpace()
	if !s.eof() {
		target.SetVoid()
		return parseErr(nil)
	}

	return nil
}
