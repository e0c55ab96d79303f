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

// The closest-point formulations follow Van Verth and Bishop,
// 'Essential Mathematics for Games and Interactive Applications',
// second edition; the point-triangle query follows Ericson, 'Real Time
// Collision Detection' p141.

// CPPointPlane returns the closest point on the plane to the point.
func CPPointPlane[T constraints.Float](point Vec3[T], plane Plane[T]) Vec3[T] {
	return point.Sub(plane.Normal.Scale(plane.SignedDistance(point)))
}

// CPPointLineResult carries the unbounded line parameter and the
// closest point.
type CPPointLineResult[T constraints.Float, V Vector[V, T]] struct {
	U     T
	Point V
}

// CPPointLine projects the point onto the line.
func CPPointLine[T constraints.Float, V Vector[V, T]](point V, line Line[T, V]) CPPointLineResult[T, V] {
	var res CPPointLineResult[T, V]

	res.U = point.Sub(line.Origin).Dot(line.Direction)
	res.Point = line.Origin.Add(line.Direction.Scale(res.U))

	return res
}

// CPPointSegmentResult carries the segment parameter clamped to [0,1]
// and the closest point.
type CPPointSegmentResult[T constraints.Float, V Vector[V, T]] struct {
	U     T
	Point V
}

// CPPointSegment projects the point onto the segment, clamping to the
// endpoints.
func CPPointSegment[T constraints.Float, V Vector[V, T]](point V, seg Segment[T, V]) CPPointSegmentResult[T, V] {
	var res CPPointSegmentResult[T, V]

	var (
		w    = point.Sub(seg.P0)
		axis = seg.P1.Sub(seg.P0)
		proj = w.Dot(axis)
	)

	if proj <= 0 {
		res.U = 0
	} else if vsq := MagSq[T](axis); proj >= vsq {
		res.U = 1
	} else {
		res.U = proj / vsq
	}

	res.Point = seg.P0.Add(axis.Scale(res.U))
	return res
}

// CPLineLineResult carries both line parameters and closest points.
type CPLineLineResult[T constraints.Float, V Vector[V, T]] struct {
	Code     Code
	UA, UB   T
	CPA, CPB V
}

// CPLineLine finds the closest points of two lines. Parallel lines
// report Parallel, and additionally Coincident when the representative
// points coincide within tolerance.
func CPLineLine[T constraints.Float, V Vector[V, T]](la, lb Line[T, V]) CPLineLineResult[T, V] {
	var res CPLineLineResult[T, V]

	var (
		w0 = la.Origin.Sub(lb.Origin)
		a  = la.Direction.Dot(lb.Direction)
		b  = la.Direction.Dot(w0)
		c  = lb.Direction.Dot(w0)
		d  = 1 - a*a
	)

	if IsZero(d) {
		res.UA = 0
		res.UB = c
		res.Code = Parallel
	} else {
		res.UA = (a*c - b) / d
		res.UB = (c - a*b) / d
		res.Code = Success
	}

	res.CPA = la.Origin.Add(la.Direction.Scale(res.UA))
	res.CPB = lb.Origin.Add(lb.Direction.Scale(res.UB))

	if res.Code == Parallel && VecEqual[T](res.CPA, res.CPB) {
		res.Code = Coincident
	}

	return res
}

// CPLineSegmentResult carries the line parameter, the clamped segment
// parameter and the closest points.
type CPLineSegmentResult[T constraints.Float, V Vector[V, T]] struct {
	Code     Code
	US, UL   T
	CPS, CPL V
}

// CPLineSegment finds the closest points of a line and a segment. The
// segment parameter is clamped to [0,1]; a degenerate denominator
// reports Parallel.
func CPLineSegment[T constraints.Float, V Vector[V, T]](line Line[T, V], seg Segment[T, V]) CPLineSegmentResult[T, V] {
	var res CPLineSegmentResult[T, V]

	var (
		segDir = seg.Direction()
		w0     = seg.P0.Sub(line.Origin)
		a      = segDir.Dot(segDir)
		b      = segDir.Dot(line.Direction)
		c      = segDir.Dot(w0)
		d      = line.Direction.Dot(w0)
		denom  = a - b*b
	)

	if IsZero(denom) {
		res.US = 0
		res.UL = d
		res.Code = Parallel
	} else {
		res.Code = Success

		sn := b*d - c

		if sn < 0 {
			res.US = 0
			res.UL = d
		} else if sn > denom {
			res.US = 1
			res.UL = d + b
		} else {
			res.US = sn / denom
			res.UL = (a*d - b*c) / denom
		}
	}

	res.CPS = seg.P0.Add(segDir.Scale(res.US))
	res.CPL = line.Origin.Add(line.Direction.Scale(res.UL))

	if res.Code == Parallel && VecEqual[T](res.CPL, res.CPS) {
		res.Code = Coincident
	}

	return res
}

// CPSegmentSegmentResult carries both clamped parameters and closest
// points.
type CPSegmentSegmentResult[T constraints.Float, V Vector[V, T]] struct {
	Code     Code
	UA, UB   T
	CPA, CPB V
}

// CPSegmentSegment finds the closest points of two segments with
// explicit clamp branches in both parameters. Parallel overlapping
// input reports Overlapping with a representative pair on the overlap.
func CPSegmentSegment[T constraints.Float, V Vector[V, T]](segA, segB Segment[T, V]) CPSegmentSegmentResult[T, V] {
	var res CPSegmentSegmentResult[T, V]

	res.Code = Success

	var (
		da = segA.Direction()
		db = segB.Direction()
		w0 = segA.P0.Sub(segB.P0)

		a = da.Dot(da)
		b = da.Dot(db)
		c = db.Dot(db)
		d = da.Dot(w0)
		e = db.Dot(w0)

		denom = a*c - b*b

		sn, sd, tn, td T
	)

	if IsZero(denom) {
		// parallel: fall back to closest point on B to A's origin
		sd, td = c, c
		sn = 0
		tn = e

		// sign agreement of the four projections detects an overlap
		var (
			w1  = segA.P0.Add(da).Sub(segB.P0)
			w2  = segA.P0.Sub(segB.P0.Add(db))
			w3  = segA.P0.Add(da).Sub(segB.P0.Add(db))
			bse = e < 0
		)

		if !(bse == (w1.Dot(db) < 0) && bse == (w2.Dot(db) < 0) && bse == (w3.Dot(db) < 0)) {
			res.Code = Overlapping
		}
	} else {
		sd, td = denom, denom
		sn = b*e - c*d
		tn = a*e - b*d

		if sn < 0 {
			sn = 0
			tn = e
			td = c
		} else if sn > sd {
			sn = sd
			tn = e + b
			td = c
		}
	}

	if tn < 0 {
		res.UB = 0

		if -d < 0 {
			res.UA = 0
		} else if -d > a {
			res.UA = 1
		} else {
			res.UA = -d / a
		}
	} else if tn > td {
		res.UB = 1

		if (-d + b) < 0 {
			res.UA = 0
		} else if (-d + b) > a {
			res.UA = 1
		} else {
			res.UA = (-d + b) / a
		}
	} else {
		res.UB = tn / td
		res.UA = sn / sd
	}

	res.CPA = segA.P0.Add(da.Scale(res.UA))
	res.CPB = segB.P0.Add(db.Scale(res.UB))

	return res
}

// CPPointTriangle returns the closest point on the triangle using the
// Voronoi region early-outs for the three vertex and three edge
// regions, falling back to the barycentric interior.
func CPPointTriangle[T constraints.Float, V Vector[V, T]](point V, tri Triangle[T, V]) V {
	var (
		v01 = tri.P1.Sub(tri.P0)
		v02 = tri.P2.Sub(tri.P0)
		v0p = point.Sub(tri.P0)

		d1 = v01.Dot(v0p)
		d2 = v02.Dot(v0p)
	)

	if d1 <= 0 && d2 <= 0 {
		return tri.P0
	}

	var (
		v1p = point.Sub(tri.P1)
		d3  = v01.Dot(v1p)
		d4  = v02.Dot(v1p)
	)

	if d3 >= 0 && d4 <= d3 {
		return tri.P1
	}

	if vc := d1*d4 - d3*d2; vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return tri.P0.Add(v01.Scale(v))
	}

	var (
		v2p = point.Sub(tri.P2)
		d5  = v01.Dot(v2p)
		d6  = v02.Dot(v2p)
	)

	if d6 >= 0 && d5 <= d6 {
		return tri.P2
	}

	if vb := d5*d2 - d1*d6; vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return tri.P0.Add(v02.Scale(w))
	}

	var (
		va = d3*d6 - d5*d4
	)

	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return tri.P1.Add(tri.P2.Sub(tri.P1).Scale(w))
	}

	var (
		vb    = d5*d2 - d1*d6
		vc    = d1*d4 - d3*d2
		denom = 1 / (va + vb + vc)
		v     = vb * denom
		w     = vc * denom
	)

	return tri.P0.Add(v01.Scale(v)).Add(v02.Scale(w))
}

// Barycentric returns the weights (u, v, w) of the point with respect
// to the triangle, summing to one. A zero-area triangle fails.
func Barycentric[T constraints.Float, V Vector[V, T]](tri Triangle[T, V], p V) (Vec3[T], liberr.Error) {
	var (
		v0 = tri.P1.Sub(tri.P0)
		v1 = tri.P2.Sub(tri.P0)
		v2 = p.Sub(tri.P0)

		d00 = v0.Dot(v0)
		d01 = v0.Dot(v1)
		d11 = v1.Dot(v1)
		d20 = v2.Dot(v0)
		d21 = v2.Dot(v1)

		denom = d00*d11 - d01*d01
	)

	if IsZero(denom) {
		return Vec3[T]{}, liberr.CodeFailure.Error(nil)
	}

	var uvw Vec3[T]
	uvw.Y = (d11*d20 - d01*d21) / denom
	uvw.Z = (d00*d21 - d01*d20) / denom
	uvw.X = 1 - uvw.Y - uvw.Z

	return uvw, nil
}
