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
	"math"

	"golang.org/x/exp/constraints"
)

// Vector is the trait the dimension-generic queries are written
// against; Vec2 and Vec3 satisfy it.
type Vector[V any, T constraints.Float] interface {
	Add(o V) V
	Sub(o V) V
	Scale(s T) V
	Dot(o V) T
	Dim() int
	At(i int) T
}

// Vec2 is a two-dimensional vector or point.
type Vec2[T constraints.Float] struct {
	X, Y T
}

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vec2[T]) Scale(s T) Vec2[T]     { return Vec2[T]{v.X * s, v.Y * s} }
func (v Vec2[T]) Dot(o Vec2[T]) T       { return v.X*o.X + v.Y*o.Y }
func (v Vec2[T]) Dim() int              { return 2 }

func (v Vec2[T]) At(i int) T {
	if i == 0 {
		return v.X
	}
	return v.Y
}

// Vec3 is a three-dimensional vector or point.
type Vec3[T constraints.Float] struct {
	X, Y, Z T
}

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3[T]) Scale(s T) Vec3[T]     { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3[T]) Dot(o Vec3[T]) T       { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3[T]) Dim() int              { return 3 }

func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// Cross3 returns the cross product.
func Cross3[T constraints.Float](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// ScalarTripleProduct returns (u x v) . w.
func ScalarTripleProduct[T constraints.Float](u, v, w Vec3[T]) T {
	return Cross3(u, v).Dot(w)
}

// MagSq returns the squared magnitude.
func MagSq[T constraints.Float, V Vector[V, T]](v V) T {
	return v.Dot(v)
}

// Mag returns the magnitude.
func Mag[T constraints.Float, V Vector[V, T]](v V) T {
	return Sqrt(MagSq[T](v))
}

// Sqrt is the square root at the scalar precision.
func Sqrt[T constraints.Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

// Abs returns the magnitude of a scalar.
func Abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// VecEqual tests two vectors componentwise within the tolerance.
func VecEqual[T constraints.Float, V Vector[V, T]](a, b V) bool {
	for i := 0; i < a.Dim(); i++ {
		if !AreEqual(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

// Perpendicular3 returns a non-normalised perpendicular to the axis by
// negate-swapping its two largest components. A zero vector in gives a
// zero vector out.
func Perpendicular3[T constraints.Float](axis Vec3[T]) Vec3[T] {
	var perp [3]T
	a := [3]T{axis.X, axis.Y, axis.Z}

	minInd := 0
	if Abs(a[1]) < Abs(a[0]) {
		minInd = 1
	}
	if Abs(a[2]) < Abs(a[minInd]) {
		minInd = 2
	}

	firstInd := (minInd + 1) % 3
	secondInd := (minInd + 2) % 3

	perp[firstInd] = -a[secondInd]
	perp[secondInd] = a[firstInd]

	return Vec3[T]{perp[0], perp[1], perp[2]}
}

func sortLowToHigh[T constraints.Float](v [3]T) [3]T {
	if v[1] < v[0] {
		v[0], v[1] = v[1], v[0]
	}
	if v[2] < v[0] {
		v[0], v[2] = v[2], v[0]
	}
	if v[2] < v[1] {
		v[1], v[2] = v[2], v[1]
	}
	return v
}

// Quaternion is the minimal rotation type consumed by the axis-aligned
// extent check.
type Quaternion[T constraints.Float] struct {
	W, X, Y, Z T
}

// QuatFromAxisAngle builds the rotation of angle radians around the
// (not necessarily unit) axis.
func QuatFromAxisAngle[T constraints.Float](axis Vec3[T], angle T) Quaternion[T] {
	m := Mag[T](axis)
	if IsZero(m) {
		return Quaternion[T]{W: 1}
	}

	var (
		half = float64(angle) / 2
		s    = T(math.Sin(half)) / m
	)

	return Quaternion[T]{
		W: T(math.Cos(half)),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// Apply rotates the vector by the quaternion.
func (q Quaternion[T]) Apply(v Vec3[T]) Vec3[T] {
	u := Vec3[T]{q.X, q.Y, q.Z}
	t := Cross3(u, v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(Cross3(u, t))
}
