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

package vfs_test

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	liberr "github.com/nabbar/udstk/errors"
	libvfs "github.com/nabbar/udstk/vfs"
)

// buildZipFixture writes an archive with one stored and one deflated
// entry, plus a nested path, and returns its location.
func buildZipFixture(dir string) string {
	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)

	hdr := &zip.FileHeader{Name: "stored.txt", Method: zip.Store}
	w, e := zw.CreateHeader(hdr)
	Expect(e).ToNot(HaveOccurred())
	_, e = w.Write([]byte(pangram))
	Expect(e).ToNot(HaveOccurred())

	w, e = zw.Create("deflated.txt")
	Expect(e).ToNot(HaveOccurred())
	_, e = w.Write([]byte(strings.Repeat(pangram+"\n", 100)))
	Expect(e).ToNot(HaveOccurred())

	w, e = zw.Create("nested/inner.txt")
	Expect(e).ToNot(HaveOccurred())
	_, e = w.Write([]byte("nested content"))
	Expect(e).ToNot(HaveOccurred())

	Expect(zw.Close()).ToNot(HaveOccurred())

	p := filepath.Join(dir, "fixture.zip")
	Expect(os.WriteFile(p, buf.Bytes(), 0644)).ToNot(HaveOccurred())
	return p
}

var _ = Describe("Zip Handler", func() {
	var zipPath string

	BeforeEach(func() {
		zipPath = buildZipFixture(GinkgoT().TempDir())
	})

	It("should expose the listing without a subfile", func() {
		buf, _, err := libvfs.Load("zip://" + zipPath)
		Expect(err).ToNot(HaveOccurred())

		toc := string(buf)
		Expect(toc).To(ContainSubstring("stored.txt\n"))
		Expect(toc).To(ContainSubstring("deflated.txt\n"))
		Expect(toc).To(ContainSubstring("nested/inner.txt\n"))
	})

	It("should read a stored entry through the seek base", func() {
		f, err := libvfs.Open("zip://"+zipPath+":stored.txt", libvfs.FlagRead)
		Expect(err).ToNot(HaveOccurred())

		defer func() { _ = f.Close() }()

		Expect(f.Length()).To(BeEquivalentTo(len(pangram)))

		buf := make([]byte, len(pangram))
		Expect(f.ReadFull(buf, 0, libvfs.SeekSet)).ToNot(HaveOccurred())
		Expect(string(buf)).To(Equal(pangram))

		// random access inside the entry
		part := make([]byte, 5)
		Expect(f.ReadFull(part, 4, libvfs.SeekSet)).ToNot(HaveOccurred())
		Expect(string(part)).To(Equal(pangram[4:9]))
	})

	It("should inflate a deflated entry in the background", func() {
		expected := strings.Repeat(pangram+"\n", 100)

		f, err := libvfs.Open("zip://"+zipPath+":deflated.txt", libvfs.FlagRead)
		Expect(err).ToNot(HaveOccurred())

		defer func() { _ = f.Close() }()

		Expect(f.Length()).To(BeEquivalentTo(len(expected)))

		buf := make([]byte, len(expected))
		Expect(f.ReadFull(buf, 0, libvfs.SeekSet)).ToNot(HaveOccurred())
		Expect(string(buf)).To(Equal(expected))

		// reads at the tail block until the inflate passes them
		tail := make([]byte, 10)
		Expect(f.ReadFull(tail, -10, libvfs.SeekEnd)).ToNot(HaveOccurred())
		Expect(string(tail)).To(Equal(expected[len(expected)-10:]))
	})

	It("should tolerate the other separator flavour", func() {
		f, err := libvfs.Open("zip://"+zipPath+":nested\\inner.txt", libvfs.FlagRead)
		Expect(err).ToNot(HaveOccurred())

		defer func() { _ = f.Close() }()

		buf := make([]byte, f.Length())
		Expect(f.ReadFull(buf, 0, libvfs.SeekSet)).ToNot(HaveOccurred())
		Expect(string(buf)).To(Equal("nested content"))
	})

	It("should switch entries without reopening", func() {
		f, err := libvfs.Open("zip://"+zipPath+":stored.txt", libvfs.FlagRead)
		Expect(err).ToNot(HaveOccurred())

		defer func() { _ = f.Close() }()

		n, serr := f.SetSubFilename("nested/inner.txt")
		Expect(serr).ToNot(HaveOccurred())
		Expect(n).To(BeEquivalentTo(len("nested content")))

		buf := make([]byte, n)
		Expect(f.ReadFull(buf, 0, libvfs.SeekSet)).ToNot(HaveOccurred())
		Expect(string(buf)).To(Equal("nested content"))
	})

	It("should fail on a missing entry", func() {
		_, err := libvfs.Open("zip://"+zipPath+":missing.txt", libvfs.FlagRead)
		Expect(err).To(HaveOccurred())
		Expect(err.IsCode(liberr.CodeOpenFailure)).To(BeTrue())
	})

	It("should refuse write mode", func() {
		_, err := libvfs.Open("zip://"+zipPath, libvfs.FlagWrite)
		Expect(err).To(HaveOccurred())
	})
})
