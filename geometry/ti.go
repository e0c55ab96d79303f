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

	liberr "github.com/nabbar/udstk/errors"
)

// TIPointAABB tests the point against the box componentwise.
func TIPointAABB[T constraints.Float, V Vector[V, T]](point V, box AABB[T, V]) Code {
	for i := 0; i < point.Dim(); i++ {
		if point.At(i) < box.Min.At(i) || point.At(i) > box.Max.At(i) {
			return NotIntersecting
		}
	}

	return Intersecting
}

// TIAABBAABB tests two boxes componentwise. A box intersects itself,
// and the test is symmetric.
func TIAABBAABB[T constraints.Float, V Vector[V, T]](b0, b1 AABB[T, V]) Code {
	for i := 0; i < b0.Min.Dim(); i++ {
		if b0.Min.At(i) > b1.Max.At(i) || b1.Min.At(i) > b0.Max.At(i) {
			return NotIntersecting
		}
	}

	return Intersecting
}

// TIPointPolygon classifies a point against a polygon boundary.
//
// Adapted from "Optimal Reliable Point-in-Polygon Test and Differential
// Coding Boolean Operations on Polygons", Hao, Sun, Chen, Cai and Tan.
// A point on an edge or vertex short-circuits to OnBoundary.
func TIPointPolygon[T constraints.Float](point Vec2[T], points []Vec2[T]) (Code, liberr.Error) {
	if len(points) < 3 {
		return Success, liberr.CodeInvalidParameter.Error(nil)
	}

	var k int

	for i := range points {
		j := (i + 1) % len(points)

		var (
			v1 = points[i].Y - point.Y
			v2 = points[j].Y - point.Y
		)

		if (v1 < 0 && v2 < 0) || (v1 > 0 && v2 > 0) {
			continue
		}

		var (
			u1 = points[i].X - point.X
			u2 = points[j].X - point.X
			f  = u1*v2 - u2*v1
		)

		switch {
		case v2 > 0 && v1 <= 0:
			if f > 0 {
				k++
			} else if f == 0 {
				return OnBoundary, nil
			}

		case v1 > 0 && v2 <= 0:
			if f < 0 {
				k++
			} else if f == 0 {
				return OnBoundary, nil
			}

		case v2 == 0 && v1 < 0:
			if f == 0 {
				return OnBoundary, nil
			}

		case v1 == 0 && v2 < 0:
			if f == 0 {
				return OnBoundary, nil
			}

		case v1 == 0 && v2 == 0:
			if (u2 <= 0 && u1 >= 0) || (u1 <= 0 && u2 >= 0) {
				return OnBoundary, nil
			}
		}
	}

	if k%2 == 0 {
		return CompletelyOutside, nil
	}

	return CompletelyInside, nil
}
