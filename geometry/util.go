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

package geometry

import (
	"golang.org/x/exp/constraints"
)

// IsRotatedAxisStillAxisAligned detects whether a quaternion maps the
// basis-aligned extents to another axis-aligned box up to epsilon.
// When it does, extentsOut carries the rotated extents with their
// signs; otherwise ok is false and extentsOut is partially filled.
func IsRotatedAxisStillAxisAligned[T constraints.Float](q Quaternion[T], extentsIn Vec3[T], epsilon T) (extentsOut Vec3[T], ok bool) {
	in := [3]T{extentsIn.X, extentsIn.Y, extentsIn.Z}

	var out [3]T

	for i := 0; i < 3; i++ {
		var v Vec3[T]

		switch i {
		case 0:
			v.X = in[0]
		case 1:
			v.Y = in[1]
		default:
			v.Z = in[2]
		}

		v = q.Apply(v)

		r := [3]T{v.X, v.Y, v.Z}

		nonZeroIndex := -1

		for j := 0; j < 3; j++ {
			if Abs(r[j]) <= epsilon {
				continue
			}

			if nonZeroIndex != -1 {
				return Vec3[T]{out[0], out[1], out[2]}, false
			}

			nonZeroIndex = j
		}

		if nonZeroIndex > -1 {
			out[nonZeroIndex] = Abs(in[i])
			if r[nonZeroIndex] < 0 {
				out[nonZeroIndex] = -out[nonZeroIndex]
			}
		}
	}

	return Vec3[T]{out[0], out[1], out[2]}, true
}
