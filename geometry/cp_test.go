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

package geometry_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libgeo "github.com/nabbar/udstk/geometry"
)

var _ = Describe("Closest Point Queries", func() {
	Context("point to line", func() {
		It("should project with an unbounded parameter", func() {
			line := mustLine(v3{}, v3{X: 1})

			r := libgeo.CPPointLine[float64](v3{X: -5, Y: 3}, line)
			Expect(r.U).To(BeNumerically("~", -5, 1e-12))
			Expect(r.Point).To(Equal(v3{X: -5}))
		})
	})

	Context("point to segment", func() {
		seg := libgeo.Segment[float64, v3]{P0: v3{X: 2}, P1: v3{X: 6}}

		It("should clamp below the start", func() {
			r := libgeo.CPPointSegment[float64](v3{X: 0, Y: 1}, seg)
			Expect(r.U).To(BeZero())
			Expect(r.Point).To(Equal(v3{X: 2}))
		})

		It("should clamp past the end", func() {
			r := libgeo.CPPointSegment[float64](v3{X: 9}, seg)
			Expect(r.U).To(BeEquivalentTo(1))
			Expect(r.Point).To(Equal(v3{X: 6}))
		})

		It("should project inside", func() {
			r := libgeo.CPPointSegment[float64](v3{X: 3, Y: 4}, seg)
			Expect(r.U).To(BeNumerically("~", 0.25, 1e-12))
			Expect(r.Point).To(Equal(v3{X: 3}))
		})
	})

	Context("line to line", func() {
		It("should solve skew lines", func() {
			la := mustLine(v3{}, v3{X: 1})
			lb := mustLine(v3{Y: 2, Z: 1}, v3{Z: 1})

			r := libgeo.CPLineLine[float64](la, lb)
			Expect(r.Code).To(Equal(libgeo.Success))
			Expect(r.CPA).To(Equal(v3{}))
			Expect(r.CPB).To(Equal(v3{Y: 2}))
		})

		It("should flag parallel lines", func() {
			la := mustLine(v3{}, v3{X: 1})
			lb := mustLine(v3{Y: 3}, v3{X: 1})

			r := libgeo.CPLineLine[float64](la, lb)
			Expect(r.Code).To(Equal(libgeo.Parallel))
		})

		It("should flag coincident lines", func() {
			la := mustLine(v3{}, v3{X: 1})
			lb := mustLine(v3{X: 4}, v3{X: 1})

			r := libgeo.CPLineLine[float64](la, lb)
			Expect(r.Code).To(Equal(libgeo.Coincident))
		})
	})

	Context("line to segment", func() {
		It("should clamp the segment parameter", func() {
			line := mustLine(v3{}, v3{X: 1})
			seg := mustSeg(v3{X: 3, Y: 1, Z: 0}, v3{X: 3, Y: 4, Z: 0})

			r := libgeo.CPLineSegment[float64](line, seg)
			Expect(r.Code).To(Equal(libgeo.Success))
			Expect(r.US).To(BeZero())
			Expect(r.CPS).To(Equal(v3{X: 3, Y: 1}))
			Expect(r.CPL).To(Equal(v3{X: 3}))
		})

		It("should flag a parallel segment", func() {
			line := mustLine(v3{}, v3{X: 1})
			seg := mustSeg(v3{X: 1, Y: 2, Z: 0}, v3{X: 5, Y: 2, Z: 0})

			r := libgeo.CPLineSegment[float64](line, seg)
			Expect(r.Code).To(Equal(libgeo.Parallel))
		})
	})

	Context("segment to segment", func() {
		It("should resolve the reference fixture at the origins", func() {
			a := mustSeg(v3{X: 2}, v3{X: 6})
			b := mustSeg(v3{X: -1, Y: -4, Z: 12}, v3{X: -5, Y: -4, Z: 12})

			r := libgeo.CPSegmentSegment[float64](a, b)
			Expect(r.Code).To(Equal(libgeo.Success))
			Expect(r.UA).To(BeZero())
			Expect(r.UB).To(BeZero())
			Expect(r.CPA).To(Equal(v3{X: 2}))
			Expect(r.CPB).To(Equal(v3{X: -1, Y: -4, Z: 12}))
		})

		It("should be symmetric in its closest pair", func() {
			a := mustSeg(v3{X: 1, Y: 1, Z: 1}, v3{X: 4, Y: 2, Z: 0})
			b := mustSeg(v3{X: -2, Y: 3, Z: 5}, v3{X: 0, Y: -1, Z: 2})

			r1 := libgeo.CPSegmentSegment[float64](a, b)
			r2 := libgeo.CPSegmentSegment[float64](b, a)

			Expect(r1.CPA.X).To(BeNumerically("~", r2.CPB.X, 1e-12))
			Expect(r1.CPA.Y).To(BeNumerically("~", r2.CPB.Y, 1e-12))
			Expect(r1.CPA.Z).To(BeNumerically("~", r2.CPB.Z, 1e-12))
			Expect(r1.CPB.X).To(BeNumerically("~", r2.CPA.X, 1e-12))
		})

		It("should report distance consistent with the closest pair", func() {
			a := mustSeg(v3{X: 0, Y: 0, Z: 0}, v3{X: 2, Y: 0, Z: 0})
			b := mustSeg(v3{X: 1, Y: 3, Z: 4}, v3{X: 1, Y: 3, Z: -4})

			r := libgeo.CPSegmentSegment[float64](a, b)
			d := r.CPA.Sub(r.CPB)
			Expect(libgeo.MagSq[float64](d)).To(BeNumerically("~", 9, 1e-9))
		})

		It("should detect parallel overlapping segments", func() {
			a := mustSeg(v3{X: 0}, v3{X: 4})
			b := mustSeg(v3{X: 2}, v3{X: 6})

			r := libgeo.CPSegmentSegment[float64](a, b)
			Expect(r.Code).To(Equal(libgeo.Overlapping))
			Expect(libgeo.MagSq[float64](r.CPA.Sub(r.CPB))).To(BeNumerically("~", 0, 1e-12))
		})

		It("should keep disjoint parallel segments as success", func() {
			a := mustSeg(v3{X: 0}, v3{X: 1})
			b := mustSeg(v3{X: 5}, v3{X: 9})

			r := libgeo.CPSegmentSegment[float64](a, b)
			Expect(r.Code).To(Equal(libgeo.Success))
			Expect(r.CPA).To(Equal(v3{X: 1}))
			Expect(r.CPB).To(Equal(v3{X: 5}))
		})
	})

	Context("point to triangle", func() {
		tri := libgeo.Triangle[float64, v3]{
			P0: v3{X: 0, Y: 0, Z: 0},
			P1: v3{X: 4, Y: 0, Z: 0},
			P2: v3{X: 0, Y: 4, Z: 0},
		}

		It("should find the vertex regions", func() {
			Expect(libgeo.CPPointTriangle[float64](v3{X: -1, Y: -1, Z: 2}, tri)).To(Equal(tri.P0))
			Expect(libgeo.CPPointTriangle[float64](v3{X: 6, Y: -1, Z: 0}, tri)).To(Equal(tri.P1))
			Expect(libgeo.CPPointTriangle[float64](v3{X: -1, Y: 6, Z: 0}, tri)).To(Equal(tri.P2))
		})

		It("should find the edge regions", func() {
			p := libgeo.CPPointTriangle[float64](v3{X: 2, Y: -3, Z: 0}, tri)
			Expect(p).To(Equal(v3{X: 2}))

			p = libgeo.CPPointTriangle[float64](v3{X: -3, Y: 2, Z: 0}, tri)
			Expect(p).To(Equal(v3{Y: 2}))
		})

		It("should project the interior onto the plane", func() {
			p := libgeo.CPPointTriangle[float64](v3{X: 1, Y: 1, Z: 5}, tri)
			Expect(p.X).To(BeNumerically("~", 1, 1e-12))
			Expect(p.Y).To(BeNumerically("~", 1, 1e-12))
			Expect(p.Z).To(BeNumerically("~", 0, 1e-12))
		})
	})

	Context("point to plane", func() {
		It("should drop the point along the normal", func() {
			plane := mustPlane(v3{}, v3{Z: 1})
			p := libgeo.CPPointPlane(v3{X: 2, Y: 3, Z: 7}, plane)
			Expect(p).To(Equal(v3{X: 2, Y: 3}))
		})
	})
})

var _ = Describe("Barycentric Helper", func() {
	tri := libgeo.Triangle[float64, v3]{
		P0: v3{X: 0, Y: 0},
		P1: v3{X: 2, Y: 0},
		P2: v3{X: 0, Y: 2},
	}

	It("should return weights summing to one", func() {
		uvw, err := libgeo.Barycentric[float64](tri, v3{X: 0.5, Y: 0.5})
		Expect(err).ToNot(HaveOccurred())
		Expect(uvw.X + uvw.Y + uvw.Z).To(BeNumerically("~", 1, 1e-12))
	})

	It("should pin the vertices", func() {
		uvw, err := libgeo.Barycentric[float64](tri, tri.P1)
		Expect(err).ToNot(HaveOccurred())
		Expect(uvw.Y).To(BeNumerically("~", 1, 1e-12))
	})

	It("should fail on a zero-area triangle", func() {
		degenerate := libgeo.Triangle[float64, v3]{
			P0: v3{}, P1: v3{X: 1}, P2: v3{X: 2},
		}

		_, err := libgeo.Barycentric[float64](degenerate, v3{X: 1})
		Expect(err).To(HaveOccurred())
	})
})
