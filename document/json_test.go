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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libdoc "github.com/nabbar/udstk/document"
)

const settingsJSON = `{"Settings":{"ProjectsPath":"C:\\Temp&\\","ImportAtFullScale":true,"TerrainIndex":2,"TestArray":[0,1,2]}}`

var _ = Describe("JSON Codec", func() {
	Context("parsing the settings sample", func() {
		var v *libdoc.Value

		BeforeEach(func() {
			var err error
			v, err = libdoc.ParseJSON([]byte(settingsJSON))
			Expect(err).ToNot(HaveOccurred())
		})

		It("should read scalars through path expressions", func() {
			Expect(v.Get("Settings.ProjectsPath").AsString("")).To(Equal("C:\\Temp&\\"))
			Expect(v.Get("Settings.ImportAtFullScale").AsBool(false)).To(BeTrue())
			Expect(v.Get("Settings.TerrainIndex").AsInt(0)).To(BeEquivalentTo(2))
		})

		It("should support negative array indexes", func() {
			Expect(v.Get("Settings.TestArray[-1]").AsInt(-1)).To(BeEquivalentTo(2))
			Expect(v.Get("Settings.TestArray[-2]").AsInt(-1)).To(BeEquivalentTo(1))
			Expect(v.Get("Settings.TestArray[-3]").AsInt(-1)).To(BeEquivalentTo(0))
			Expect(v.Get("Settings.TestArray[-4]").IsVoid()).To(BeTrue())
		})

		It("should answer positional subscripts on objects for reads", func() {
			Expect(v.Get("Settings[,0]").AsString("")).To(Equal("C:\\Temp&\\"))
			Expect(v.Get("Settings[,1]").AsBool(false)).To(BeTrue())
			Expect(v.Get("Settings[0]").AsString("")).To(Equal("C:\\Temp&\\"))
		})

		It("should report NotFound for missing members", func() {
			_, err := v.GetErr("Settings.DoesntExist")
			Expect(err).To(HaveOccurred())
		})

		It("should be byte-identical through a round trip", func() {
			out := libdoc.ExportJSON(v)
			Expect(string(out)).To(Equal(settingsJSON))
		})
	})

	Context("numbers", func() {
		It("should keep integral numbers as ints", func() {
			v, err := libdoc.ParseJSON([]byte(`{"a":42,"b":-7}`))
			Expect(err).ToNot(HaveOccurred())
			Expect(v.Get("a").IsInt()).To(BeTrue())
			Expect(v.Get("b").AsInt(0)).To(BeEquivalentTo(-7))
		})

		It("should parse fractions and exponents as doubles", func() {
			v, err := libdoc.ParseJSON([]byte(`{"a":1.5,"b":2e3,"c":1.25e-2}`))
			Expect(err).ToNot(HaveOccurred())
			Expect(v.Get("a").IsDouble()).To(BeTrue())
			Expect(v.Get("b").AsDouble(0)).To(BeEquivalentTo(2000))
			Expect(v.Get("c").AsDouble(0)).To(BeEquivalentTo(0.0125))
		})

		It("should emit the shortest round-trippable decimals", func() {
			v, err := libdoc.ParseJSON([]byte(`{"a":0.1}`))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(libdoc.ExportJSON(v))).To(Equal(`{"a":0.1}`))
		})
	})

	Context("strings", func() {
		It("should decode the escape set", func() {
			v, err := libdoc.ParseJSON([]byte(`{"s":"a\"b\\c\/d\b\f\n\r\t"}`))
			Expect(err).ToNot(HaveOccurred())
			Expect(v.Get("s").AsString("")).To(Equal("a\"b\\c/d\b\f\n\r\t"))
		})

		It("should decode unicode escapes including surrogate pairs", func() {
			v, err := libdoc.ParseJSON([]byte(`{"s":"\u00e9\ud83d\ude00"}`))
			Expect(err).ToNot(HaveOccurred())
			Expect(v.Get("s").AsString("")).To(Equal("é😀"))
		})

		It("should preserve UTF-8 bytes through the emitter", func() {
			src := `{"s":"héllo wörld"}`
			v, err := libdoc.ParseJSON([]byte(src))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(libdoc.ExportJSON(v))).To(Equal(src))
		})

		It("should escape control bytes on emit", func() {
			v := libdoc.New()
			Expect(v.Set(`s = '` + "\x01" + `'`)).ToNot(HaveOccurred())
			Expect(string(libdoc.ExportJSON(v))).To(Equal(`{"s":"\u0001"}`))
		})
	})

	Context("structure", func() {
		It("should keep object keys in parse order", func() {
			v, err := libdoc.ParseJSON([]byte(`{"z":1,"a":2,"m":3}`))
			Expect(err).ToNot(HaveOccurred())
			Expect(v.MemberName(0)).To(Equal("z"))
			Expect(v.MemberName(1)).To(Equal("a"))
			Expect(v.MemberName(2)).To(Equal("m"))
		})

		It("should overwrite duplicate keys", func() {
			v, err := libdoc.ParseJSON([]byte(`{"a":1,"a":2}`))
			Expect(err).ToNot(HaveOccurred())
			Expect(v.MemberCount()).To(Equal(1))
			Expect(v.Get("a").AsInt(0)).To(BeEquivalentTo(2))
		})

		It("should reject malformed input", func() {
			for _, bad := range []string{`{`, `{"a"}`, `[1,]`, `{"a":1,}`, `tru`, `"unterminated`} {
				_, err := libdoc.ParseJSON([]byte(bad))
				Expect(err).To(HaveOccurred(), bad)
			}
		})
	})
})

var _ = Describe("CBOR Codec", func() {
	It("should round-trip a tree preserving types and order", func() {
		v, err := libdoc.ParseJSON([]byte(settingsJSON))
		Expect(err).ToNot(HaveOccurred())

		bin, err := libdoc.ExportCBOR(v)
		Expect(err).ToNot(HaveOccurred())

		back, err := libdoc.ParseCBOR(bin)
		Expect(err).ToNot(HaveOccurred())

		Expect(back.Equals(v)).To(BeTrue())
		Expect(string(libdoc.ExportJSON(back))).To(Equal(settingsJSON))
	})

	It("should reject corrupt input", func() {
		_, err := libdoc.ParseCBOR([]byte{0xFF, 0x00, 0x01})
		Expect(err).To(HaveOccurred())
	})
})
