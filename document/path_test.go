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

package document_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libdoc "github.com/nabbar/udstk/document"
)

var _ = Describe("Path Expressions", func() {
	Context("building a tree with Set", func() {
		var v *libdoc.Value

		BeforeEach(func() {
			v = libdoc.New()
		})

		It("should auto-create intermediate objects", func() {
			Expect(v.Set("Settings.Inside.Count = 5")).ToNot(HaveOccurred())
			Expect(v.Get("Settings.Inside.Count").AsInt(0)).To(BeEquivalentTo(5))
		})

		It("should assign every literal kind", func() {
			Expect(v.Set(`s = 'single'`)).ToNot(HaveOccurred())
			Expect(v.Set(`d = "double"`)).ToNot(HaveOccurred())
			Expect(v.Set(`b = true`)).ToNot(HaveOccurred())
			Expect(v.Set(`n = null`)).ToNot(HaveOccurred())
			Expect(v.Set(`i = 42`)).ToNot(HaveOccurred())
			Expect(v.Set(`f = 1.5`)).ToNot(HaveOccurred())
			Expect(v.Set(`a = []`)).ToNot(HaveOccurred())
			Expect(v.Set(`o = { 'x': 1, 'y': [2, 3] }`)).ToNot(HaveOccurred())

			Expect(v.Get("s").AsString("")).To(Equal("single"))
			Expect(v.Get("d").AsString("")).To(Equal("double"))
			Expect(v.Get("b").IsBool()).To(BeTrue())
			Expect(v.Get("n").IsNull()).To(BeTrue())
			Expect(v.Get("i").IsInt()).To(BeTrue())
			Expect(v.Get("f").IsDouble()).To(BeTrue())
			Expect(v.Get("a").IsArray()).To(BeTrue())
			Expect(v.Get("a").ArrayLength()).To(BeZero())
			Expect(v.Get("o.y[1]").AsInt(0)).To(BeEquivalentTo(3))
		})

		It("should handle escaped quotes in literals", func() {
			// an errant quote fails the parse
			Expect(v.Set(`s = 'has ' quote'`)).To(HaveOccurred())

			Expect(v.Set(`s = 'has \' quote'`)).ToNot(HaveOccurred())
			Expect(v.Get("s").AsString("")).To(Equal("has ' quote"))
		})

		It("should append with empty brackets", func() {
			Expect(v.Set("arr[] = 0")).ToNot(HaveOccurred())
			Expect(v.Set("arr[] = 1")).ToNot(HaveOccurred())
			Expect(v.Set("arr[2] = 2")).ToNot(HaveOccurred())

			Expect(v.Get("arr").ArrayLength()).To(Equal(3))
			for i := 0; i < 3; i++ {
				Expect(v.Get(fmt.Sprintf("arr[%d]", i)).AsInt(-1)).To(BeEquivalentTo(i))
			}
		})

		It("should only create explicit indexes at the current length", func() {
			Expect(v.Set("arr[] = 0")).ToNot(HaveOccurred())

			err := v.Set("arr[5] = 1")
			Expect(err).To(HaveOccurred())
		})

		It("should append a void element without a literal", func() {
			Expect(v.Set("arr[]")).ToNot(HaveOccurred())
			Expect(v.Get("arr").ArrayLength()).To(Equal(1))
		})

		It("should refuse appending to a non-array", func() {
			Expect(v.Set("notarray = 1")).ToNot(HaveOccurred())

			err := v.Set("notarray[] = 2")
			Expect(err).To(HaveOccurred())
		})

		It("should accept bracketed member names", func() {
			Expect(v.Set(`Settings['TerrainIndex'] = 2`)).ToNot(HaveOccurred())
			Expect(v.Set(`Settings[Other] = 3`)).ToNot(HaveOccurred())

			Expect(v.Get("Settings.TerrainIndex").AsInt(0)).To(BeEquivalentTo(2))
			Expect(v.Get("Settings['TerrainIndex']").AsInt(0)).To(BeEquivalentTo(2))
			Expect(v.Get("Settings[Other]").AsInt(0)).To(BeEquivalentTo(3))
		})

		It("should append objects at the root", func() {
			for i := 0; i < 3; i++ {
				Expect(v.Set(fmt.Sprintf("[] = { 'name': 'Room %d' }", i))).ToNot(HaveOccurred())
			}

			Expect(v.ArrayLength()).To(Equal(3))
			Expect(v.Get("[1].name").AsString("")).To(Equal("Room 1"))
		})

		It("should refuse positional subscripts on writes", func() {
			Expect(v.Set("Settings.TerrainIndex = 2")).ToNot(HaveOccurred())

			err := v.Set("Settings[,0] = 3")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("get and set round trip", func() {
		It("should read back whatever was set", func() {
			v := libdoc.New()

			Expect(v.Set("a.b[0].c = 'deep'")).ToNot(HaveOccurred())
			Expect(v.Get("a.b[0].c").AsString("")).To(Equal("deep"))

			r, err := v.GetErr("a.b[0].c")
			Expect(err).ToNot(HaveOccurred())
			Expect(r.AsString("")).To(Equal("deep"))
		})
	})

	Context("deletion", func() {
		It("should delete the addressed key with an empty assignment", func() {
			v := libdoc.New()

			Expect(v.Set("Settings.Temp = 1")).ToNot(HaveOccurred())
			Expect(v.Set("Settings.Temp")).ToNot(HaveOccurred())
			Expect(v.Get("Settings.Temp").IsVoid()).To(BeTrue())
		})

		It("should succeed deleting a missing key", func() {
			v := libdoc.New()

			Expect(v.Set("Settings.Keep = 1")).ToNot(HaveOccurred())
			Expect(v.Set("Settings.Missing")).ToNot(HaveOccurred())
			Expect(v.Set("Nowhere.Missing")).ToNot(HaveOccurred())
		})
	})

	Context("malformed expressions", func() {
		It("should report parse errors", func() {
			v := libdoc.New()

			for _, bad := range []string{"", "a[", "a[1", "a[0 1]=1", "=1"} {
				Expect(v.Set(bad)).To(HaveOccurred(), bad)
			}
		})
	})
})

var _ = Describe("Coercions", func() {
	It("should pad a 3x3 matrix into a 4x4 identity frame", func() {
		v := libdoc.New()
		Expect(v.Set("m = [1,2,3,4,5,6,7,8,9]")).ToNot(HaveOccurred())

		m := v.Get("m").AsDoubleArray(16)
		Expect(m).To(Equal([]float64{
			1, 2, 3, 0,
			4, 5, 6, 0,
			7, 8, 9, 0,
			0, 0, 0, 1,
		}))
	})

	It("should zero-pad short arrays", func() {
		v := libdoc.New()
		Expect(v.Set("m = [1,2]")).ToNot(HaveOccurred())
		Expect(v.Get("m").AsDoubleArray(4)).To(Equal([]float64{1, 2, 0, 0}))
	})

	It("should coerce between scalar kinds", func() {
		v := libdoc.New()
		Expect(v.Set("i = 2")).ToNot(HaveOccurred())
		Expect(v.Set("s = '3.5'")).ToNot(HaveOccurred())
		Expect(v.Set("b = true")).ToNot(HaveOccurred())

		Expect(v.Get("i").AsDouble(0)).To(BeEquivalentTo(2))
		Expect(v.Get("i").AsString("")).To(Equal("2"))
		Expect(v.Get("s").AsDouble(0)).To(BeEquivalentTo(3.5))
		Expect(v.Get("b").AsInt(0)).To(BeEquivalentTo(1))
	})
})
