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
	cbor "github.com/fxamacker/cbor/v2"

	liberr "github.com/nabbar/udstk/errors"
)

// The binary form persists a tree without the text codecs' type
// degradation. Member insertion order is kept by encoding objects as
// parallel key and value lists.

type cborNode struct {
	Kind uint8       `cbor:"k"`
	Bool bool        `cbor:"b,omitempty"`
	Int  int64       `cbor:"i,omitempty"`
	Dbl  float64     `cbor:"f,omitempty"`
	Str  string      `cbor:"s,omitempty"`
	Arr  []*cborNode `cbor:"a,omitempty"`
	Keys []string    `cbor:"K,omitempty"`
	Vals []*cborNode `cbor:"V,omitempty"`
}

func toCborNode(v *Value) *cborNode {
	n := &cborNode{Kind: uint8(v.Kind())}

	switch v.Kind() {
	case KindBool:
		n.Bool = v.b
	case KindInt:
		n.Int = v.i
	case KindDouble:
		n.Dbl = v.f
	case KindString:
		n.Str = v.s
	case KindArray:
		n.Arr = make([]*cborNode, len(v.a))
		for i := range v.a {
			n.Arr[i] = toCborNode(v.a[i])
		}
	case KindObject:
		n.Keys = v.mk
		n.Vals = make([]*cborNode, len(v.mv))
		for i := range v.mv {
			n.Vals[i] = toCborNode(v.mv[i])
		}
	}

	return n
}

func fromCborNode(n *cborNode, v *Value) liberr.Error {
	switch Kind(n.Kind) {
	case KindVoid:
		v.SetVoid()
	case KindNull:
		v.SetNull()
	case KindBool:
		v.SetBool(n.Bool)
	case KindInt:
		v.SetInt(n.Int)
	case KindDouble:
		v.SetDouble(n.Dbl)
	case KindString:
		v.SetString(n.Str)
	case KindArray:
		v.SetArray()
		for _, c := range n.Arr {
			if err := fromCborNode(c, v.Append()); err != nil {
				return err
			}
		}
	case KindObject:
		if len(n.Keys) != len(n.Vals) {
			return liberr.CodeCorruptData.Error(nil)
		}

		v.SetObject()
		for i := range n.Keys {
			if err := fromCborNode(n.Vals[i], v.SetMember(n.Keys[i])); err != nil {
				return err
			}
		}
	default:
		return liberr.CodeCorruptData.Error(nil)
	}

	return nil
}

// ExportCBOR emits the binary form of the tree.
func ExportCBOR(v *Value) ([]byte, liberr.Error) {
	b, e := cbor.Marshal(toCborNode(v))
	if e != nil {
		return nil, liberr.CodeInternalError.Error(e)
	}

	return b, nil
}

// ParseCBOR parses a binary form produced by ExportCBOR.
func ParseCBOR(data []byte) (*Value, liberr.Error) {
	var n cborNode

	if e := cbor.Unmarshal(data, &n); e != nil {
		return nil, liberr.CodeCorruptData.Error(e)
	}

	v := &Value{}
	if err := fromCborNode(&n, v); err != nil {
		return nil, err
	}

	return v, nil
}
