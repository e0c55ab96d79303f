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

// FISegmentPlaneResult carries the clamped segment parameter and the
// intersection point.
type FISegmentPlaneResult[T constraints.Float] struct {
	Code  Code
	U     T
	Point Vec3[T]
}

// FISegmentPlane intersects a segment with a plane. A parallel segment
// reports Overlapping when its origin lies on the plane, otherwise
// NotIntersecting; parameters outside [0,1] clamp and report
// NotIntersecting.
func FISegmentPlane[T constraints.Float](seg Segment[T, Vec3[T]], plane Plane[T]) FISegmentPlaneResult[T] {
	var res FISegmentPlaneResult[T]

	denom := plane.Normal.Dot(seg.Direction())

	if IsZero(denom) {
		res.U = 0

		if IsZero(Abs(plane.SignedDistance(seg.P0))) {
			res.Code = Overlapping
		} else {
			res.Code = NotIntersecting
		}
	} else {
		res.U = -(seg.P0.Dot(plane.Normal) + plane.Offset) / denom

		if res.U < 0 {
			res.U = 0
			res.Code = NotIntersecting
		} else if res.U > 1 {
			res.U = 1
			res.Code = NotIntersecting
		} else {
			res.Code = Intersecting
		}
	}

	res.Point = seg.P0.Add(seg.Direction().Scale(res.U))
	return res
}

// FIRayPlaneResult carries the ray parameter and the intersection
// point.
type FIRayPlaneResult[T constraints.Float] struct {
	Code  Code
	U     T
	Point Vec3[T]
}

// FIRayPlane intersects a ray with a plane, one-sided: a ray pointing
// away from the plane reports NotIntersecting with the parameter
// clamped to zero. A parallel ray on the plane reports Coincident.
func FIRayPlane[T constraints.Float](ray Ray[T, Vec3[T]], plane Plane[T]) FIRayPlaneResult[T] {
	var res FIRayPlaneResult[T]

	denom := plane.Normal.Dot(ray.Direction)

	if IsZero(denom) {
		res.U = 0

		if IsZero(plane.SignedDistance(ray.Origin)) {
			res.Code = Coincident
		} else {
			res.Code = NotIntersecting
		}
	} else {
		res.U = -(ray.Origin.Dot(plane.Normal) + plane.Offset) / denom

		if res.U < 0 {
			res.U = 0
			res.Code = NotIntersecting
		} else {
			res.Code = Intersecting
		}
	}

	res.Point = ray.Origin.Add(ray.Direction.Scale(res.U))
	return res
}

// FISegmentTriangleResult carries the intersection point when the
// query reports Intersecting.
type FISegmentTriangleResult[T constraints.Float] struct {
	Code  Code
	Point Vec3[T]
}

// FISegmentTriangle intersects a segment with a triangle through sign
// agreement of the three edge scalar triple products, after Ericson
// p184. Only the line through the segment is tested, so a hit beyond
// either endpoint still reports Intersecting. A segment lying in the
// triangle's plane fails; the documented
// intersecting-with-endpoints behaviour awaits a canonical decision.
func FISegmentTriangle[T constraints.Float](seg Segment[T, Vec3[T]], tri Triangle[T, Vec3[T]]) (FISegmentTriangleResult[T], liberr.Error) {
	var res FISegmentTriangleResult[T]

	var (
		s0s1 = seg.P1.Sub(seg.P0)
		s0t0 = tri.P0.Sub(seg.P0)
		s0t1 = tri.P1.Sub(seg.P0)
		s0t2 = tri.P2.Sub(seg.P0)

		u = ScalarTripleProduct(s0s1, s0t2, s0t1)
		v = ScalarTripleProduct(s0s1, s0t0, s0t2)
		w = ScalarTripleProduct(s0s1, s0t1, s0t0)
	)

	if IsZero(u) && IsZero(v) && IsZero(w) {
		return res, liberr.CodeFailure.Error(nil)
	}

	sign := 0
	if u < 0 {
		sign |= 1
	}
	if v < 0 {
		sign |= 2
	}
	if w < 0 {
		sign |= 4
	}

	if sign > 0 && sign < 7 {
		res.Code = NotIntersecting
		return res, nil
	}

	denom := 1 / (u + v + w)
	u *= denom
	v *= denom
	w *= denom

	res.Point = tri.P0.Scale(u).Add(tri.P1.Scale(v)).Add(tri.P2.Scale(w))
	res.Code = Intersecting

	return res, nil
}
