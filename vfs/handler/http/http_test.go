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

package http_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libvfs "github.com/nabbar/udstk/vfs"
	vfshttp "github.com/nabbar/udstk/vfs/handler/http"
)

var _ = Describe("HTTP Handler", func() {
	It("should discover the length with a HEAD request", func() {
		f, err := libvfs.Open(srv.URL+"/payload.bin", libvfs.FlagRead)
		Expect(err).ToNot(HaveOccurred())

		defer func() { _ = f.Close() }()

		Expect(f.Length()).To(BeEquivalentTo(len(payload)))
	})

	It("should read ranges with GET requests", func() {
		f, err := libvfs.Open(srv.URL+"/payload.bin", libvfs.FlagRead)
		Expect(err).ToNot(HaveOccurred())

		defer func() { _ = f.Close() }()

		buf := make([]byte, 100)
		Expect(f.ReadFull(buf, 512, libvfs.SeekSet)).ToNot(HaveOccurred())
		Expect(buf).To(Equal(payload[512:612]))

		// sequential continuation
		Expect(f.ReadFull(buf, 0, libvfs.SeekCur)).ToNot(HaveOccurred())
		Expect(buf).To(Equal(payload[612:712]))
	})

	It("should serve multiple reads over the kept-alive socket", func() {
		f, err := libvfs.Open(srv.URL+"/payload.bin", libvfs.FlagRead)
		Expect(err).ToNot(HaveOccurred())

		defer func() { _ = f.Close() }()

		for i := 0; i < 5; i++ {
			buf := make([]byte, 64)
			off := int64(i * 700)

			Expect(f.ReadFull(buf, off, libvfs.SeekSet)).ToNot(HaveOccurred())
			Expect(buf).To(Equal(payload[off : off+64]))
		}
	})

	It("should complete a pipelined read through the token", func() {
		f, err := libvfs.Open(srv.URL+"/payload.bin", libvfs.FlagRead)
		Expect(err).ToNot(HaveOccurred())

		defer func() { _ = f.Close() }()

		var (
			tok libvfs.PipelinedRequest
			buf = make([]byte, 256)
		)

		Expect(f.ReadPipelined(buf, 1024, libvfs.SeekSet, &tok)).ToNot(HaveOccurred())

		n, berr := f.BlockPipelined(&tok)
		Expect(berr).ToNot(HaveOccurred())
		Expect(n).To(Equal(256))
		Expect(buf).To(Equal(payload[1024:1280]))
	})

	It("should support the multithread open flag", func() {
		f, err := libvfs.Open(srv.URL+"/payload.bin", libvfs.FlagRead|libvfs.FlagMultithread)
		Expect(err).ToNot(HaveOccurred())

		defer func() { _ = f.Close() }()

		buf := make([]byte, 16)
		Expect(f.ReadFull(buf, 0, libvfs.SeekSet)).ToNot(HaveOccurred())
		Expect(buf).To(Equal(payload[:16]))
	})

	It("should refuse write mode", func() {
		_, err := libvfs.Open(srv.URL+"/payload.bin", libvfs.FlagWrite)
		Expect(err).To(HaveOccurred())
	})

	It("should validate registration options", func() {
		err := vfshttp.RegisterWithOptions(vfshttp.Options{})
		Expect(err).To(HaveOccurred())
	})
})
