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

var _ = Describe("Intersection Tests", func() {
	Context("point against box", func() {
		box, _ := libgeo.NewAABB[float64](v3{}, v3{X: 2, Y: 2, Z: 2})

		It("should accept inside points and boundary points", func() {
			Expect(libgeo.TIPointAABB[float64](v3{X: 1, Y: 1, Z: 1}, box)).To(Equal(libgeo.Intersecting))
			Expect(libgeo.TIPointAABB[float64](v3{X: 2, Y: 2, Z: 2}, box)).To(Equal(libgeo.Intersecting))
		})

		It("should reject outside points", func() {
			Expect(libgeo.TIPointAABB[float64](v3{X: 3, Y: 1, Z: 1}, box)).To(Equal(libgeo.NotIntersecting))
		})
	})

	Context("box against box", func() {
		a, _ := libgeo.NewAABB[float64](v3{}, v3{X: 2, Y: 2, Z: 2})
		b, _ := libgeo.NewAABB[float64](v3{X: 1, Y: 1, Z: 1}, v3{X: 3, Y: 3, Z: 3})
		c, _ := libgeo.NewAABB[float64](v3{X: 5, Y: 5, Z: 5}, v3{X: 6, Y: 6, Z: 6})

		It("should be reflexive", func() {
			Expect(libgeo.TIAABBAABB[float64](a, a)).To(Equal(libgeo.Intersecting))
		})

		It("should be symmetric", func() {
			Expect(libgeo.TIAABBAABB[float64](a, b)).To(Equal(libgeo.TIAABBAABB[float64](b, a)))
			Expect(libgeo.TIAABBAABB[float64](a, c)).To(Equal(libgeo.TIAABBAABB[float64](c, a)))
		})

		It("should separate disjoint boxes", func() {
			Expect(libgeo.TIAABBAABB[float64](a, c)).To(Equal(libgeo.NotIntersecting))
		})
	})

	Context("point against polygon", func() {
		square := []v2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}

		It("should classify an interior point", func() {
			code, err := libgeo.TIPointPolygon(v2{X: 2, Y: 2}, square)
			Expect(err).ToNot(HaveOccurred())
			Expect(code).To(Equal(libgeo.CompletelyInside))
		})

		It("should classify an exterior point", func() {
			code, err := libgeo.TIPointPolygon(v2{X: 7, Y: 2}, square)
			Expect(err).ToNot(HaveOccurred())
			Expect(code).To(Equal(libgeo.CompletelyOutside))
		})

		It("should short-circuit an edge point to the boundary", func() {
			code, err := libgeo.TIPointPolygon(v2{X: 2, Y: 0}, square)
			Expect(err).ToNot(HaveOccurred())
			Expect(code).To(Equal(libgeo.OnBoundary))
		})

		It("should classify a vertex as on the boundary", func() {
			code, err := libgeo.TIPointPolygon(v2{X: 4, Y: 4}, square)
			Expect(err).ToNot(HaveOccurred())
			Expect(code).To(Equal(libgeo.OnBoundary))
		})

		It("should reject degenerate polygons", func() {
			_, err := libgeo.TIPointPolygon(v2{}, []v2{{X: 1}, {X: 2}})
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("Find Intersection Queries", func() {
	plane, _ := libgeo.NewPlaneFromPointNormal(v3{}, v3{Z: 1})

	Context("segment against plane", func() {
		It("should intersect a crossing segment", func() {
			seg := mustSeg(v3{Z: -2}, v3{Z: 2})

			r := libgeo.FISegmentPlane(seg, plane)
			Expect(r.Code).To(Equal(libgeo.Intersecting))
			Expect(r.U).To(BeNumerically("~", 0.5, 1e-12))
			Expect(r.Point).To(Equal(v3{}))
		})

		It("should clamp a segment stopping short", func() {
			seg := mustSeg(v3{Z: 2}, v3{Z: 1})

			r := libgeo.FISegmentPlane(seg, plane)
			Expect(r.Code).To(Equal(libgeo.NotIntersecting))
			Expect(r.U).To(BeEquivalentTo(1))
		})

		It("should report an on-plane parallel segment as overlapping", func() {
			seg := mustSeg(v3{X: 1}, v3{X: 4})

			r := libgeo.FISegmentPlane(seg, plane)
			Expect(r.Code).To(Equal(libgeo.Overlapping))
		})

		It("should report an off-plane parallel segment as not intersecting", func() {
			seg := mustSeg(v3{X: 1, Z: 2}, v3{X: 4, Z: 2})

			r := libgeo.FISegmentPlane(seg, plane)
			Expect(r.Code).To(Equal(libgeo.NotIntersecting))
		})
	})

	Context("ray against plane", func() {
		It("should intersect a ray pointing at the plane", func() {
			ray, err := libgeo.NewRayFromDirection[float64](v3{Z: 3}, v3{Z: -1})
			Expect(err).ToNot(HaveOccurred())

			r := libgeo.FIRayPlane(ray, plane)
			Expect(r.Code).To(Equal(libgeo.Intersecting))
			Expect(r.U).To(BeNumerically("~", 3, 1e-12))
			Expect(r.Point).To(Equal(v3{}))
		})

		It("should miss a ray pointing away", func() {
			ray, err := libgeo.NewRayFromDirection[float64](v3{Z: 3}, v3{Z: 1})
			Expect(err).ToNot(HaveOccurred())

			r := libgeo.FIRayPlane(ray, plane)
			Expect(r.Code).To(Equal(libgeo.NotIntersecting))
			Expect(r.U).To(BeZero())
		})

		It("should report a coincident parallel ray", func() {
			ray, err := libgeo.NewRayFromDirection[float64](v3{X: 1}, v3{Y: 1})
			Expect(err).ToNot(HaveOccurred())

			r := libgeo.FIRayPlane(ray, plane)
			Expect(r.Code).To(Equal(libgeo.Coincident))
		})
	})

	Context("segment against triangle", func() {
		tri := libgeo.Triangle[float64, v3]{
			P0: v3{X: -2, Y: -2},
			P1: v3{X: 4, Y: -2},
			P2: v3{X: 0, Y: 4},
		}

		It("should find a piercing segment", func() {
			seg := mustSeg(v3{Z: -3}, v3{Z: 3})

			r, err := libgeo.FISegmentTriangle(seg, tri)
			Expect(err).ToNot(HaveOccurred())
			Expect(r.Code).To(Equal(libgeo.Intersecting))
			Expect(r.Point.X).To(BeNumerically("~", 0, 1e-12))
			Expect(r.Point.Y).To(BeNumerically("~", 0, 1e-12))
			Expect(r.Point.Z).To(BeNumerically("~", 0, 1e-12))
		})

		It("should miss a segment beside the triangle", func() {
			seg := mustSeg(v3{X: 9, Z: -3}, v3{X: 9, Z: 3})

			r, err := libgeo.FISegmentTriangle(seg, tri)
			Expect(err).ToNot(HaveOccurred())
			Expect(r.Code).To(Equal(libgeo.NotIntersecting))
		})

		It("should fail for a coplanar segment", func() {
			seg := mustSeg(v3{X: -1}, v3{X: 1})

			_, err := libgeo.FISegmentTriangle(seg, tri)
			Expect(err).To(HaveOccurred())
		})
	})
})
