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

// Plane is a three-dimensional plane in normal/offset form with a unit
// normal.
type Plane[T constraints.Float] struct {
	Normal Vec3[T]
	Offset T
}

// NewPlaneFromPoints builds a plane through three points. Colinear
// points are degenerate.
func NewPlaneFromPoints[T constraints.Float](p0, p1, p2 Vec3[T]) (Plane[T], liberr.Error) {
	var res Plane[T]

	w := Cross3(p1.Sub(p0), p2.Sub(p0))

	lensq := MagSq[T](w)
	if IsZero(lensq) {
		return res, liberr.CodeFailure.Error(nil)
	}

	res.Normal = w.Scale(1 / Sqrt(lensq))
	res.Offset = -p0.Dot(res.Normal)
	return res, nil
}

// NewPlaneFromPointNormal builds a plane from a point and a (not
// necessarily unit) normal.
func NewPlaneFromPointNormal[T constraints.Float](point, normal Vec3[T]) (Plane[T], liberr.Error) {
	var res Plane[T]

	lensq := MagSq[T](normal)
	if IsZero(lensq) {
		return res, liberr.CodeFailure.Error(nil)
	}

	res.Normal = normal.Scale(1 / Sqrt(lensq))
	res.Offset = -point.Dot(res.Normal)
	return res, nil
}

// SignedDistance returns the signed distance of the point to the plane.
func (p Plane[T]) SignedDistance(point Vec3[T]) T {
	return point.Dot(p.Normal) + p.Offset
}

// AABB is an axis-aligned box with Min componentwise below Max.
type AABB[T constraints.Float, V Vector[V, T]] struct {
	Min, Max V
}

// NewAABB builds a box, failing when min exceeds max on any axis.
func NewAABB[T constraints.Float, V Vector[V, T]](minPt, maxPt V) (AABB[T, V], liberr.Error) {
	var res AABB[T, V]

	for i := 0; i < minPt.Dim(); i++ {
		if minPt.At(i) > maxPt.At(i) {
			return res, liberr.CodeFailure.Error(nil)
		}
	}

	res.Min = minPt
	res.Max = maxPt
	return res, nil
}

// Merge grows the box to enclose the other.
func (b *AABB[T, V]) Merge(o AABB[T, V]) {
	b.Min = combine[T](b.Min, o.Min, func(x, y T) T {
		if y < x {
			return y
		}
		return x
	})
	b.Max = combine[T](b.Max, o.Max, func(x, y T) T {
		if y > x {
			return y
		}
		return x
	})
}

// combine applies a componentwise merge over the two concrete vector
// shapes behind the trait.
func combine[T constraints.Float, V Vector[V, T]](a, b V, f func(x, y T) T) V {
	switch va := any(a).(type) {
	case Vec2[T]:
		vb := any(b).(Vec2[T])
		return any(Vec2[T]{f(va.X, vb.X), f(va.Y, vb.Y)}).(V)
	case Vec3[T]:
		vb := any(b).(Vec3[T])
		return any(Vec3[T]{f(va.X, vb.X), f(va.Y, vb.Y), f(va.Z, vb.Z)}).(V)
	}
	return a
}

// Line is an infinite line with a unit direction.
type Line[T constraints.Float, V Vector[V, T]] struct {
	Origin, Direction V
}

// NewLineFromPoints builds a line through two distinct points.
func NewLineFromPoints[T constraints.Float, V Vector[V, T]](p0, p1 V) (Line[T, V], liberr.Error) {
	var res Line[T, V]

	v := p1.Sub(p0)

	lensq := MagSq[T](v)
	if IsZero(lensq) {
		return res, liberr.CodeFailure.Error(nil)
	}

	res.Origin = p0
	res.Direction = v.Scale(1 / Sqrt(lensq))
	return res, nil
}

// NewLineFromDirection builds a line from an origin and a direction.
func NewLineFromDirection[T constraints.Float, V Vector[V, T]](origin, dir V) (Line[T, V], liberr.Error) {
	var res Line[T, V]

	lensq := MagSq[T](dir)
	if IsZero(lensq) {
		return res, liberr.CodeFailure.Error(nil)
	}

	res.Origin = origin
	res.Direction = dir.Scale(1 / Sqrt(lensq))
	return res, nil
}

// Ray is a half-line with a unit direction.
type Ray[T constraints.Float, V Vector[V, T]] struct {
	Origin, Direction V
}

// NewRayFromPoints builds a ray from its origin through a second point.
func NewRayFromPoints[T constraints.Float, V Vector[V, T]](p0, p1 V) (Ray[T, V], liberr.Error) {
	l, err := NewLineFromPoints[T](p0, p1)
	if err != nil {
		return Ray[T, V]{}, err
	}

	return Ray[T, V]{Origin: l.Origin, Direction: l.Direction}, nil
}

// NewRayFromDirection builds a ray from an origin and a direction.
func NewRayFromDirection[T constraints.Float, V Vector[V, T]](origin, dir V) (Ray[T, V], liberr.Error) {
	l, err := NewLineFromDirection[T](origin, dir)
	if err != nil {
		return Ray[T, V]{}, err
	}

	return Ray[T, V]{Origin: l.Origin, Direction: l.Direction}, nil
}

// Segment is a bounded line between two distinct endpoints.
type Segment[T constraints.Float, V Vector[V, T]] struct {
	P0, P1 V
}

// NewSegment builds a segment, failing on coincident endpoints.
func NewSegment[T constraints.Float, V Vector[V, T]](p0, p1 V) (Segment[T, V], liberr.Error) {
	var res Segment[T, V]

	if VecEqual[T](p0, p1) {
		return res, liberr.CodeFailure.Error(nil)
	}

	res.P0 = p0
	res.P1 = p1
	return res, nil
}

// Direction returns the non-normalised p1 - p0.
func (s Segment[T, V]) Direction() V {
	return s.P1.Sub(s.P0)
}

// CenteredForm decomposes the segment into centre, unit direction and
// half-extent. The direction derives from p1 - p0.
func (s Segment[T, V]) CenteredForm() (centre V, dir V, extent T, err liberr.Error) {
	v := s.Direction()

	lensq := MagSq[T](v)
	if IsZero(lensq) {
		return centre, dir, 0, liberr.CodeFailure.Error(nil)
	}

	length := Sqrt(lensq)

	centre = s.P0.Add(v.Scale(T(0.5)))
	dir = v.Scale(1 / length)
	extent = length / 2

	return centre, dir, extent, nil
}

// Triangle is three non-colinear points.
type Triangle[T constraints.Float, V Vector[V, T]] struct {
	P0, P1, P2 V
}

// NewTriangle builds a triangle, failing when one side length equals
// the sum of the other two.
func NewTriangle[T constraints.Float, V Vector[V, T]](p0, p1, p2 V) (Triangle[T, V], liberr.Error) {
	var res Triangle[T, V]

	res.P0 = p0
	res.P1 = p1
	res.P2 = p2

	s := sortLowToHigh(res.SideLengths())
	if IsZero(s[2] - (s[0] + s[1])) {
		return Triangle[T, V]{}, liberr.CodeFailure.Error(nil)
	}

	return res, nil
}

// SideLengths returns |p0-p1|, |p0-p2|, |p1-p2|.
func (t Triangle[T, V]) SideLengths() [3]T {
	return [3]T{
		Mag[T](t.P0.Sub(t.P1)),
		Mag[T](t.P0.Sub(t.P2)),
		Mag[T](t.P1.Sub(t.P2)),
	}
}

// Area computes the area with Heron's formula. The factors are floored
// at zero to tolerate floating point underflow near degeneracy.
func (t Triangle[T, V]) Area() T {
	s := t.SideLengths()
	p := (s[0] + s[1] + s[2]) / 2

	a := p - s[0]
	if a <= 0 {
		return 0
	}

	b := p - s[1]
	if b <= 0 {
		return 0
	}

	c := p - s[2]
	if c <= 0 {
		return 0
	}

	return Sqrt(p * a * b * c)
}

// HyperSphere is a centre and a strictly positive radius; a circle in
// two dimensions, a sphere in three.
type HyperSphere[T constraints.Float, V Vector[V, T]] struct {
	Centre V
	Radius T
}

// NewHyperSphere builds a hypersphere, failing on a radius below the
// precision tolerance.
func NewHyperSphere[T constraints.Float, V Vector[V, T]](centre V, radius T) (HyperSphere[T, V], liberr.Error) {
	var res HyperSphere[T, V]

	if radius < Epsilon[T]() {
		return res, liberr.CodeFailure.Error(nil)
	}

	res.Centre = centre
	res.Radius = radius
	return res, nil
}
