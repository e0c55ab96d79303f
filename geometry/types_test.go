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
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libgeo "github.com/nabbar/udstk/geometry"
)

var _ = Describe("Constructors", func() {
	It("should reject a zero-length segment", func() {
		_, err := libgeo.NewSegment[float64](v3{X: 1}, v3{X: 1})
		Expect(err).To(HaveOccurred())
	})

	It("should reject a colinear triangle", func() {
		_, err := libgeo.NewTriangle[float64](v3{}, v3{X: 1}, v3{X: 2})
		Expect(err).To(HaveOccurred())
	})

	It("should reject a zero direction", func() {
		_, err := libgeo.NewLineFromDirection[float64](v3{}, v3{})
		Expect(err).To(HaveOccurred())

		_, err = libgeo.NewRayFromDirection[float64](v3{}, v3{})
		Expect(err).To(HaveOccurred())
	})

	It("should reject an inverted box", func() {
		_, err := libgeo.NewAABB[float64](v3{X: 2}, v3{X: 1})
		Expect(err).To(HaveOccurred())
	})

	It("should reject a zero radius", func() {
		_, err := libgeo.NewHyperSphere[float64](v3{}, 0)
		Expect(err).To(HaveOccurred())
	})

	It("should reject a degenerate plane", func() {
		_, err := libgeo.NewPlaneFromPoints(v3{}, v3{X: 1}, v3{X: 2})
		Expect(err).To(HaveOccurred())
	})

	It("should normalise directions and plane normals", func() {
		l, err := libgeo.NewLineFromDirection[float64](v3{}, v3{X: 10})
		Expect(err).ToNot(HaveOccurred())
		Expect(libgeo.Mag[float64](l.Direction)).To(BeNumerically("~", 1, 1e-12))

		p, err := libgeo.NewPlaneFromPointNormal(v3{Z: 2}, v3{Z: 5})
		Expect(err).ToNot(HaveOccurred())
		Expect(libgeo.Mag[float64](p.Normal)).To(BeNumerically("~", 1, 1e-12))
		Expect(p.SignedDistance(v3{Z: 5})).To(BeNumerically("~", 3, 1e-12))
	})

	It("should derive the centered form from the endpoints", func() {
		seg := mustSeg(v3{X: 1}, v3{X: 5})

		centre, dir, extent, err := seg.CenteredForm()
		Expect(err).ToNot(HaveOccurred())
		Expect(centre).To(Equal(v3{X: 3}))
		Expect(dir).To(Equal(v3{X: 1}))
		Expect(extent).To(BeEquivalentTo(2))
	})

	It("should also build at single precision", func() {
		s, err := libgeo.NewSegment[float32](libgeo.Vec3[float32]{X: 1}, libgeo.Vec3[float32]{X: 4})
		Expect(err).ToNot(HaveOccurred())
		Expect(s.Direction()).To(Equal(libgeo.Vec3[float32]{X: 3}))

		r := libgeo.CPPointSegment[float32](libgeo.Vec3[float32]{X: 9}, s)
		Expect(r.U).To(BeEquivalentTo(1))
	})

	It("should build two-dimensional primitives", func() {
		s, err := libgeo.NewSegment[float64](v2{X: 1}, v2{X: 3})
		Expect(err).ToNot(HaveOccurred())

		r := libgeo.CPPointSegment[float64](v2{X: 2, Y: 4}, s)
		Expect(r.Point).To(Equal(v2{X: 2}))
	})
})

var _ = Describe("Triangle Area", func() {
	It("should match Heron's formula", func() {
		tri := mustTri(v3{}, v3{X: 3}, v3{Y: 4})
		Expect(tri.Area()).To(BeNumerically("~", 6, 1e-9))
	})

	It("should floor near-degenerate factors at zero", func() {
		tri := libgeo.Triangle[float64, v3]{
			P0: v3{},
			P1: v3{X: 1},
			P2: v3{X: 2, Y: 1e-300},
		}

		Expect(tri.Area()).To(BeZero())
	})
})

var _ = Describe("Box Merge", func() {
	It("should enclose both boxes", func() {
		a, _ := libgeo.NewAABB[float64](v3{}, v3{X: 1, Y: 1, Z: 1})
		b, _ := libgeo.NewAABB[float64](v3{X: -2, Y: 0, Z: 0}, v3{X: 0, Y: 3, Z: 1})

		a.Merge(b)
		Expect(a.Min).To(Equal(v3{X: -2}))
		Expect(a.Max).To(Equal(v3{X: 1, Y: 3, Z: 1}))
	})
})

var _ = Describe("Orientation Utilities", func() {
	Context("perpendicular", func() {
		It("should be orthogonal to the axis", func() {
			for _, axis := range []v3{{X: 1, Y: 2, Z: 3}, {X: -4, Y: 0.5, Z: 0}, {Z: 9}} {
				perp := libgeo.Perpendicular3(axis)
				Expect(axis.Dot(perp)).To(BeNumerically("~", 0, 1e-12))
				Expect(libgeo.MagSq[float64](perp)).To(BeNumerically(">", 0))
			}
		})

		It("should map zero to zero", func() {
			Expect(libgeo.Perpendicular3(v3{})).To(Equal(v3{}))
		})
	})

	Context("axis-aligned rotation check", func() {
		extents := v3{X: 1, Y: 2, Z: 3}

		It("should accept a quarter turn around a basis axis", func() {
			q := libgeo.QuatFromAxisAngle(v3{Z: 1}, math.Pi/2)

			out, ok := libgeo.IsRotatedAxisStillAxisAligned(q, extents, 1e-9)
			Expect(ok).To(BeTrue())

			// x maps to y, y maps to -x
			Expect(out.Y).To(BeNumerically("~", 1, 1e-9))
			Expect(out.X).To(BeNumerically("~", -2, 1e-9))
			Expect(out.Z).To(BeNumerically("~", 3, 1e-9))
		})

		It("should accept the identity", func() {
			q := libgeo.Quaternion[float64]{W: 1}

			out, ok := libgeo.IsRotatedAxisStillAxisAligned(q, extents, 1e-9)
			Expect(ok).To(BeTrue())
			Expect(out).To(Equal(extents))
		})

		It("should reject an oblique rotation", func() {
			q := libgeo.QuatFromAxisAngle(v3{Z: 1}, math.Pi/5)

			_, ok := libgeo.IsRotatedAxisStillAxisAligned(q, extents, 1e-9)
			Expect(ok).To(BeFalse())
		})
	})
})
