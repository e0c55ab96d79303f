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
)

// Value is one node of the tree.
type Value struct {
	k  Kind
	b  bool
	i  int64
	f  float64
	s  string
	a  []*Value
	mk []string
	mv []*Value
}

// voidValue is the shared sentinel returned for missing members.
var voidValue = &Value{}

func (v *Value) Kind() Kind {
	if v == nil {
		return KindVoid
	}
	return v.k
}

func (v *Value) clear() {
	*v = Value{}
}

func (v *Value) SetVoid()       { v.clear() }
func (v *Value) SetNull()       { v.clear(); v.k = KindNull }
func (v *Value) SetBool(b bool) { v.clear(); v.k = KindBool; v.b = b }
func (v *Value) SetInt(i int64) { v.clear(); v.k = KindInt; v.i = i }
func (v *Value) SetDouble(f float64) {
	v.clear()
	v.k = KindDouble
	v.f = f
}

// SetString stores an owned copy of the string.
func (v *Value) SetString(s string) {
	v.clear()
	v.k = KindString
	v.s = s
}

func (v *Value) SetArray() {
	v.clear()
	v.k = KindArray
	v.a = make([]*Value, 0)
}

func (v *Value) SetObject() {
	v.clear()
	v.k = KindObject
	v.mk = make([]string, 0)
	v.mv = make([]*Value, 0)
}

func (v *Value) IsVoid() bool   { return v.Kind() == KindVoid }
func (v *Value) IsNull() bool   { return v.Kind() == KindNull }
func (v *Value) IsBool() bool   { return v.Kind() == KindBool }
func (v *Value) IsInt() bool    { return v.Kind() == KindInt }
func (v *Value) IsDouble() bool { return v.Kind() == KindDouble }
func (v *Value) IsString() bool { return v.Kind() == KindString }
func (v *Value) IsArray() bool  { return v.Kind() == KindArray }
func (v *Value) IsObject() bool { return v.Kind() == KindObject }

// IsNumeric reports int or double.
func (v *Value) IsNumeric() bool {
	return v.IsInt() || v.IsDouble()
}

// AsBool coerces to boolean: numbers are true when non-zero, strings
// when spelling "true" or a non-zero integer.
func (v *Value) AsBool(def bool) bool {
	switch v.Kind() {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindDouble:
		return v.f != 0
	case KindString:
		if v.s == "true" {
			return true
		}
		if n, e := strconv.ParseInt(v.s, 10, 64); e == nil {
			return n != 0
		}
		return def
	}
	return def
}

func (v *Value) AsInt(def int64) int64 {
	switch v.Kind() {
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindInt:
		return v.i
	case KindDouble:
		return int64(v.f)
	case KindString:
		if n, e := strconv.ParseInt(v.s, 10, 64); e == nil {
			return n
		}
		if f, e := strconv.ParseFloat(v.s, 64); e == nil {
			return int64(f)
		}
	}
	return def
}

func (v *Value) AsDouble(def float64) float64 {
	switch v.Kind() {
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindInt:
		return float64(v.i)
	case KindDouble:
		return v.f
	case KindString:
		if f, e := strconv.ParseFloat(v.s, 64); e == nil {
			return f
		}
	}
	return def
}

func (v *Value) AsString(def string) string {
	switch v.Kind() {
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	}
	return def
}

// AsDoubleArray extracts up to n doubles from an array value. A 9
// element source filling a 16 element request is expanded as a 3x3
// matrix padded into the 4x4 identity; any other shortfall is
// zero-padded.
func (v *Value) AsDoubleArray(n int) []float64 {
	res := make([]float64, n)

	if !v.IsArray() {
		return res
	}

	if n == 16 && len(v.a) == 9 {
		res[15] = 1
		for i := 0; i < 9; i++ {
			res[(i/3)*4+(i%3)] = v.a[i].AsDouble(0)
		}
		return res
	}

	for i := 0; i < n && i < len(v.a); i++ {
		res[i] = v.a[i].AsDouble(0)
	}

	return res
}

// ArrayLength returns the element count, zero for non-arrays.
func (v *Value) ArrayLength() int {
	if !v.IsArray() {
		return 0
	}
	return len(v.a)
}

// ArrayItem returns the element at the index; negative indexes count
// from the end. Out-of-range returns the void sentinel.
func (v *Value) ArrayItem(i int) *Value {
	if !v.IsArray() {
		return voidValue
	}

	if i < 0 {
		i += len(v.a)
	}

	if i < 0 || i >= len(v.a) {
		return voidValue
	}

	return v.a[i]
}

// Append adds a new void element to an array and returns it. A void
// value becomes an array first.
func (v *Value) Append() *Value {
	if v.IsVoid() {
		v.SetArray()
	}

	if !v.IsArray() {
		return voidValue
	}

	e := &Value{}
	v.a = append(v.a, e)
	return e
}

// MemberCount returns the member count, zero for non-objects.
func (v *Value) MemberCount() int {
	if !v.IsObject() {
		return 0
	}
	return len(v.mk)
}

// MemberName returns the key at the insertion position.
func (v *Value) MemberName(i int) string {
	if !v.IsObject() || i < 0 || i >= len(v.mk) {
		return ""
	}
	return v.mk[i]
}

// MemberByIndex returns the member value at the insertion position, or
// the void sentinel.
func (v *Value) MemberByIndex(i int) *Value {
	if !v.IsObject() || i < 0 || i >= len(v.mv) {
		return voidValue
	}
	return v.mv[i]
}

// FindMember returns the member for the key, or the void sentinel.
func (v *Value) FindMember(key string) *Value {
	if !v.IsObject() {
		return voidValue
	}

	for i := range v.mk {
		if v.mk[i] == key {
			return v.mv[i]
		}
	}

	return voidValue
}

// HasMember reports whether the key exists.
func (v *Value) HasMember(key string) bool {
	if !v.IsObject() {
		return false
	}

	for i := range v.mk {
		if v.mk[i] == key {
			return true
		}
	}

	return false
}

// SetMember returns the member for the key, inserting a void one when
// absent. Inserting an existing key returns the existing value. A void
// value becomes an object first.
func (v *Value) SetMember(key string) *Value {
	if v.IsVoid() {
		v.SetObject()
	}

	if !v.IsObject() {
		return voidValue
	}

	for i := range v.mk {
		if v.mk[i] == key {
			return v.mv[i]
		}
	}

	e := &Value{}
	v.mk = append(v.mk, key)
	v.mv = append(v.mv, e)
	return e
}

// DeleteMember removes the key, reporting whether it existed.
func (v *Value) DeleteMember(key string) bool {
	if !v.IsObject() {
		return false
	}

	for i := range v.mk {
		if v.mk[i] == key {
			v.mk = append(v.mk[:i], v.mk[i+1:]...)
			v.mv = append(v.mv[:i], v.mv[i+1:]...)
			return true
		}
	}

	return false
}

// Equals compares two trees structurally. Int and double compare by
// numeric value.
func (v *Value) Equals(o *Value) bool {
	if v.Kind() != o.Kind() {
		if v.IsNumeric() && o.IsNumeric() {
			return v.AsDouble(0) == o.AsDouble(0)
		}
		return false
	}

	switch v.Kind() {
	case KindVoid, KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindDouble:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindArray:
		if len(v.a) != len(o.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equals(o.a[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.mk) != len(o.mk) {
			return false
		}
		for i := range v.mk {
			if v.mk[i] != o.mk[i] || !v.mv[i].Equals(o.mv[i]) {
				return false
			}
		}
		return true
	}

	return false
}
