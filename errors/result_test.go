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

package errors_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	liberr "github.com/nabbar/udstk/errors"
)

var _ = Describe("Result Taxonomy", func() {
	Context("enumerating every variant", func() {
		It("should round-trip code -> name -> code for the whole taxonomy", func() {
			for i := 0; i < liberr.ResultCount(); i++ {
				c := liberr.CodeError(i)
				n := liberr.ResultString(c)

				Expect(n).ToNot(BeEmpty(), fmt.Sprintf("code %d has no name", i))

				p, ok := liberr.ParseResult(n)
				Expect(ok).To(BeTrue())
				Expect(p).To(Equal(c))
			}
		})

		It("should expose a registered message for every failure code", func() {
			for i := 1; i < liberr.ResultCount(); i++ {
				c := liberr.CodeError(i)
				Expect(c.Message()).ToNot(Equal(liberr.UnknownMessage))
			}
		})

		It("should keep names unique", func() {
			seen := make(map[string]bool)
			for i := 0; i < liberr.ResultCount(); i++ {
				n := liberr.ResultString(liberr.CodeError(i))
				Expect(seen[n]).To(BeFalse(), n)
				seen[n] = true
			}
		})
	})

	Context("outside the taxonomy", func() {
		It("should return an empty name", func() {
			Expect(liberr.ResultString(liberr.CodeError(liberr.ResultCount()))).To(BeEmpty())
		})

		It("should not parse an unknown name", func() {
			_, ok := liberr.ParseResult("NotAResult")
			Expect(ok).To(BeFalse())
		})
	})

	Context("error creation from a code", func() {
		It("should carry code, message and parents", func() {
			p := fmt.Errorf("root cause")
			e := liberr.CodeBufferTooSmall.Error(p)

			Expect(e.IsCode(liberr.CodeBufferTooSmall)).To(BeTrue())
			Expect(e.HasParent()).To(BeTrue())
			Expect(e.StringError()).To(Equal("buffer too small"))
			Expect(e.ContainsString("root cause")).To(BeTrue())
		})

		It("should find a code through the parent chain", func() {
			e := liberr.CodeOpenFailure.Error(liberr.CodeNotFound.Error(nil))

			Expect(liberr.Has(e, liberr.CodeNotFound)).To(BeTrue())
			Expect(liberr.Has(e, liberr.CodeSocketError)).To(BeFalse())
		})

		It("should return nil from IfError without any parent", func() {
			Expect(liberr.CodeReadFailure.IfError(nil, nil)).To(BeNil())
		})
	})
})
