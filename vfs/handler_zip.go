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

package vfs

import (
	"archive/zip"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	kpflate "github.com/klauspost/compress/flate"

	liberr "github.com/nabbar/udstk/errors"
)

// The zip:// scheme exposes entries of an archive as virtual files:
// zip://<outer>[:<subfile>]. The outer file is itself opened through the
// registry, so archives inside raw:// or http:// locations work. Without
// a subfile the exposed content is a newline-separated entry listing.
//
// Stored entries bypass decompression: the seek base is set past the
// local file header and reads delegate to the outer file. Deflated
// entries are inflated by a background task into a buffer guarded by a
// read-write lock; readers sleep-poll for sequential availability.

const zipPrefix = "zip://"

type zipBackend struct {
	outer File
	zr    *zip.Reader

	data []byte // listing or inflated entry
	lng  int64
	base int64

	lengthRead   atomic.Int64
	readComplete atomic.Bool
	abortRead    atomic.Bool
	mu           sync.RWMutex
}

// fileReaderAt adapts a virtual file to io.ReaderAt for the central
// directory parser.
type fileReaderAt struct {
	f File
}

func (r fileReaderAt) ReadAt(p []byte, off int64) (int, error) {
	n, err := r.f.ReadAt(p, off, SeekSet)

	if err != nil {
		return n, err
	} else if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}

// splitZipName separates the outer filename from the optional subfile.
// Colons before the first folder delimiter are not separators, so drive
// letters and nested schemes survive.
func splitZipName(name string) (outer string, sub string, hasSub bool) {
	tail := name
	if i := strings.IndexAny(name, "/\\"); i >= 0 {
		tail = name[i:]
	}

	if j := strings.LastIndexByte(tail, ':'); j >= 0 {
		cut := len(name) - len(tail) + j
		return name[:cut], name[cut+1:], true
	}

	return name, "", false
}

func openZipBackend(filename string, flags OpenFlags) (Backend, liberr.Error) {
	if flags&FlagWrite != 0 {
		return nil, liberr.CodeOpenFailure.Error(nil)
	}

	outerName, sub, hasSub := splitZipName(filename[len(zipPrefix):])

	outer, err := openFile(outerName, FlagRead)
	if err != nil {
		return nil, err
	}

	zr, e := zip.NewReader(fileReaderAt{f: outer}, outer.Length())
	if e != nil {
		_ = outer.Close()
		return nil, liberr.CodeOpenFailure.Error(e)
	}

	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return kpflate.NewReader(r)
	})

	b := &zipBackend{
		outer: outer,
		zr:    zr,
	}
	b.readComplete.Store(true)

	if !hasSub {
		// no subfile: synthesise the directory listing
		var toc strings.Builder

		for _, f := range zr.File {
			if f.FileInfo().IsDir() {
				continue
			}
			toc.WriteString(f.Name)
			toc.WriteByte('\n')
		}

		b.data = append([]byte(toc.String()), 0)
		b.lng = int64(len(b.data))
		b.lengthRead.Store(b.lng)
	} else if len(sub) > 0 {
		if _, _, err = b.SetSubFilename(sub); err != nil {
			_ = outer.Close()
			return nil, err
		}
	}

	return b, nil
}

// abortAndWait stops any in-flight decompression and drops the buffer.
func (o *zipBackend) abortAndWait() {
	for o.data != nil && !o.readComplete.Load() {
		log.Debug("waiting for read of zip to abort")
		o.abortRead.Store(true)
		time.Sleep(time.Millisecond)
	}

	if o.data != nil {
		o.mu.Lock()
		o.data = nil
		o.mu.Unlock()
	}

	o.abortRead.Store(false)
}

func (o *zipBackend) locate(name string) *zip.File {
	find := func(n string) *zip.File {
		for _, f := range o.zr.File {
			if f.Name == n {
				return f
			}
		}
		return nil
	}

	if f := find(name); f != nil {
		return f
	}

	if !strings.ContainsAny(name, "/\\") {
		return nil
	}

	// The archive can be created on a platform with the other separator
	// flavour; try both before giving up.
	if f := find(strings.ReplaceAll(name, "\\", "/")); f != nil {
		return f
	}

	return find(strings.ReplaceAll(name, "/", "\\"))
}

func (o *zipBackend) SetSubFilename(name string) (int64, int64, liberr.Error) {
	o.abortAndWait()
	o.lng = 0
	o.base = 0

	// legal to unset the sub filename
	if len(name) < 1 {
		return 0, 0, nil
	}

	entry := o.locate(name)
	if entry == nil {
		return 0, 0, liberr.CodeOpenFailure.Error(nil)
	}

	o.lng = int64(entry.UncompressedSize64)

	if entry.Method == zip.Store {
		// stored entry: skip the local header and let the seek base
		// machinery auto-offset reads into the outer file
		off, e := entry.DataOffset()
		if e != nil {
			return 0, 0, liberr.CodeCorruptData.Error(e)
		}

		o.base = off
		o.readComplete.Store(true)

		return o.lng, o.base, nil
	}

	// deflated entry: inflate on a background task into the buffer
	o.mu.Lock()
	o.data = make([]byte, o.lng)
	o.mu.Unlock()

	o.lengthRead.Store(0)
	o.readComplete.Store(false)

	go o.inflateEntry(entry)

	return o.lng, 0, nil
}

func (o *zipBackend) inflateEntry(entry *zip.File) {
	// on any error lengthRead stays short of the length, which readers
	// surface as a read failure
	defer o.readComplete.Store(true)

	rc, e := entry.Open()
	if e != nil {
		log.Debugf("zip inflate open: %v", e)
		return
	}

	defer func() {
		_ = rc.Close()
	}()

	var (
		chunk [contentLoadChunkSize]byte
		wrote int64
	)

	for wrote < o.lng {
		if o.abortRead.Load() {
			return
		}

		n, re := rc.Read(chunk[:])

		if n > 0 {
			if wrote+int64(n) > o.lng {
				return // overrun
			}

			o.mu.Lock()
			if o.data != nil {
				copy(o.data[wrote:], chunk[:n])
			}
			o.mu.Unlock()

			wrote += int64(n)
			o.lengthRead.Store(wrote)
		}

		if re == io.EOF {
			return
		} else if re != nil {
			log.Debugf("zip inflate read: %v", re)
			return
		}
	}
}

func (o *zipBackend) ReadAt(p []byte, off int64) (int, liberr.Error) {
	if o.data == nil {
		// stored entry: the pipeline translated against the seek base,
		// delegate straight to the outer file
		return o.outer.ReadAt(p, off, SeekSet)
	}

	if off < 0 || off >= o.lng {
		return 0, liberr.CodeInvalidParameter.Error(nil)
	}

	want := int64(len(p))
	if off+want > o.lng {
		want = o.lng - off
	}

	// passive wait for the background inflate to pass our window
	for !o.readComplete.Load() && o.lengthRead.Load() < off+want {
		if o.abortRead.Load() {
			return 0, liberr.CodeReadFailure.Error(nil)
		}
		time.Sleep(time.Millisecond)
	}

	avail := o.lengthRead.Load()
	if avail <= off {
		return 0, liberr.CodeReadFailure.Error(nil)
	}

	actual := want
	if avail-off < actual {
		actual = avail - off
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.data == nil {
		return 0, liberr.CodeReadFailure.Error(nil)
	}

	copy(p, o.data[off:off+actual])
	return int(actual), nil
}

func (o *zipBackend) Length() int64 {
	return o.lng
}

func (o *zipBackend) SeekBase() int64 {
	return o.base
}

func (o *zipBackend) Close() liberr.Error {
	o.abortAndWait()

	if o.outer != nil {
		err := o.outer.Close()
		o.outer = nil
		return err
	}

	return nil
}
