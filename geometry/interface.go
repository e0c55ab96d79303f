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

// Package geometry provides predicates and closest-point, intersection
// and containment queries on points, segments, lines, rays, planes,
// triangles, axis-aligned boxes and hyperspheres.
//
// Everything is generic over the scalar precision (float32 or float64)
// and, where the mathematics allows, over the dimension through the
// Vector constraint satisfied by Vec2 and Vec3. Planes and the
// triple-product based queries are three-dimensional.
//
// Constructors are the sole legitimate path to instance construction
// and fail on degenerate input (zero-length segments, colinear
// triangles, zero-radius spheres); all queries assume non-degenerate
// input and have undefined results otherwise.
package geometry

import (
	"golang.org/x/exp/constraints"
)

// Code is the closed result set of the geometric queries.
type Code uint8

const (
	Success Code = iota
	Parallel
	Coincident
	Overlapping
	Intersecting
	NotIntersecting
	CompletelyInside
	CompletelyOutside
	OnBoundary
)

func (c Code) String() string {
	switch c {
	case Parallel:
		return "Parallel"
	case Coincident:
		return "Coincident"
	case Overlapping:
		return "Overlapping"
	case Intersecting:
		return "Intersecting"
	case NotIntersecting:
		return "NotIntersecting"
	case CompletelyInside:
		return "CompletelyInside"
	case CompletelyOutside:
		return "CompletelyOutside"
	case OnBoundary:
		return "OnBoundary"
	default:
		return "Success"
	}
}

// ExactMath switches the near-zero comparisons to literal zero.
var ExactMath = false

// Epsilon returns the near-zero tolerance of the scalar precision.
func Epsilon[T constraints.Float]() T {
	var t T

	if _, single := any(t).(float32); single {
		return T(1e-6)
	}

	return T(1e-12)
}

// IsZero tests a scalar against the precision tolerance, or against
// literal zero in exact-math mode.
func IsZero[T constraints.Float](v T) bool {
	if ExactMath {
		return v == 0
	}

	if v < 0 {
		v = -v
	}

	return v < Epsilon[T]()
}

// AreEqual tests two scalars within the precision tolerance.
func AreEqual[T constraints.Float](a, b T) bool {
	return IsZero(a - b)
}
