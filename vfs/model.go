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
	"time"

	libcpt "github.com/nabbar/udstk/crypt"
	liberr "github.com/nabbar/udstk/errors"
)

// When loading an entire file of unknown size, the buffer starts at this
// many bytes and doubles each time a read fills it.
const contentLoadChunkSize = 65536

type file struct {
	n string    // canonical filename
	b Backend   // handler backend
	f OpenFlags // original open flags
	l int64     // logical length
	p int64     // current position, absolute underlying offset
	s int64     // seek base

	c libcpt.Cipher // optional cipher stage
	o int64         // cipher counter offset

	closed bool

	// performance counters, single caller assumed
	totalBytes int64
	mbPerSec   float64
	inFlight   int32
	msAccum    int64
}

// PipelinedRequest is the caller-owned scratch of a pipelined read.
// It must be consumed exactly once by a matching BlockPipelined call.
type PipelinedRequest struct {
	buf  []byte
	gen  uint64
	n    int64
	sync bool
}

// Stash parks the continuation state of a native pipelined read.
// Handlers call it from their ReadPipelined implementation.
func (t *PipelinedRequest) Stash(buf []byte, gen uint64) {
	t.buf = buf
	t.gen = gen
	t.sync = false
}

// State returns the continuation state parked by Stash.
func (t *PipelinedRequest) State() (buf []byte, gen uint64) {
	return t.buf, t.gen
}

func (o *file) Name() string {
	return o.n
}

func (o *file) Length() int64 {
	return o.l
}

func (o *file) translate(offset int64, whence Whence) (int64, liberr.Error) {
	switch whence {
	case SeekSet:
		return offset + o.s, nil
	case SeekCur:
		return o.p + offset, nil
	case SeekEnd:
		return o.l + offset + o.s, nil
	}

	return 0, liberr.CodeInvalidParameter.Error(nil)
}

func (o *file) begin() {
	o.inFlight++
	o.msAccum -= time.Now().UnixMilli()
}

func (o *file) done(actual int) {
	o.msAccum += time.Now().UnixMilli()
	o.totalBytes += int64(actual)

	if o.inFlight--; o.inFlight == 0 && o.msAccum > 0 {
		o.mbPerSec = (float64(o.totalBytes) / 1048576.0) / (float64(o.msAccum) / 1000.0)
	}
}

func (o *file) Read(p []byte) (int, liberr.Error) {
	return o.ReadAt(p, 0, SeekCur)
}

func (o *file) ReadAt(p []byte, offset int64, whence Whence) (int, liberr.Error) {
	off, err := o.translate(offset, whence)
	if err != nil {
		return 0, err
	}

	o.begin()

	var actual int

	if o.c != nil {
		actual, err = o.readCipher(p, off)
	} else {
		actual, err = o.b.ReadAt(p, off)
	}

	o.p = off + int64(actual)
	o.done(actual)

	return actual, err
}

// readCipher widens the request to block alignment on both sides,
// decrypts in place and copies out the inner slice.
func (o *file) readCipher(p []byte, off int64) (int, liberr.Error) {
	var (
		inset   = int(off & (libcpt.BlockSize - 1))
		padding = (libcpt.BlockSize - int((off+int64(len(p)))&(libcpt.BlockSize-1))) & (libcpt.BlockSize - 1)
		aligned = off - int64(inset)
	)

	buf := p
	if inset != 0 || padding != 0 {
		buf = make([]byte, inset+len(p)+padding)
	}

	actual, err := o.b.ReadAt(buf, aligned)
	if err != nil {
		return 0, err
	}

	// the counter derives from the requested offset relative to the seek
	// base, not from the aligned one; they differ on unaligned bases
	block := (off - o.s) / libcpt.BlockSize
	if block < 0 {
		return 0, liberr.CodeAlignmentRequired.Error(nil)
	}

	o.c.Apply(buf[:actual], uint64(block+o.o))

	if actual <= inset {
		return 0, nil
	}

	n := actual - inset
	if n > len(p) {
		n = len(p)
	}

	if n > 0 && (inset != 0 || padding != 0) {
		copy(p, buf[inset:inset+n])
	}

	return n, nil
}

func (o *file) ReadFull(p []byte, offset int64, whence Whence) liberr.Error {
	n, err := o.ReadAt(p, offset, whence)
	if err != nil {
		return err
	}

	if n != len(p) {
		return liberr.CodeReadFailure.Error(nil)
	}

	return nil
}

func (o *file) ReadPipelined(p []byte, offset int64, whence Whence, tok *PipelinedRequest) liberr.Error {
	if tok == nil {
		return liberr.CodeInvalidParameter.Error(nil)
	}

	pl, ok := o.b.(BackendPipeliner)
	if ok && o.c == nil {
		off, err := o.translate(offset, whence)
		if err != nil {
			return err
		}

		o.begin()

		if err = pl.ReadPipelined(p, off, tok); err != nil {
			o.done(0)
			return err
		}

		// position reflects the issuing call, being optimistic
		o.p = off + int64(len(p))
		return nil
	}

	// no native pipelining: perform the read now, park the result
	n, err := o.ReadAt(p, offset, whence)
	if err != nil {
		return err
	}

	tok.n = int64(n)
	tok.sync = true
	return nil
}

func (o *file) BlockPipelined(tok *PipelinedRequest) (int, liberr.Error) {
	if tok == nil {
		return 0, liberr.CodeInvalidParameter.Error(nil)
	}

	if tok.sync {
		return int(tok.n), nil
	}

	pl, ok := o.b.(BackendPipeliner)
	if !ok {
		return 0, liberr.CodeInvalidConfiguration.Error(nil)
	}

	n, err := pl.BlockPipelined(tok)
	o.done(n)

	return n, err
}

func (o *file) Write(p []byte) (int, liberr.Error) {
	return o.WriteAt(p, 0, SeekCur)
}

func (o *file) WriteAt(p []byte, offset int64, whence Whence) (int, liberr.Error) {
	w, ok := o.b.(BackendWriter)
	if !ok {
		return 0, liberr.CodeInvalidConfiguration.Error(nil)
	}

	off, err := o.translate(offset, whence)
	if err != nil {
		return 0, err
	}

	o.begin()

	actual, err := w.WriteAt(p, off)

	o.p = off + int64(actual)
	if o.p > o.l {
		o.l = o.p
	}

	o.done(actual)

	if err != nil {
		return actual, err
	}

	if actual != len(p) {
		return actual, liberr.CodeWriteFailure.Error(nil)
	}

	return actual, nil
}

func (o *file) SetSeekBase(seekBase int64, newLength int64) {
	o.s = seekBase
	if newLength != 0 {
		o.l = newLength
	}
	// move the position to the base in case a SeekCur read is issued
	o.p = seekBase
}

func (o *file) SetEncryption(key []byte, nonce [libcpt.NonceSize]byte, counterOffset int64) liberr.Error {
	if o.f&FlagWrite != 0 {
		return liberr.CodeInvalidConfiguration.Error(nil)
	}

	c, err := libcpt.New(key, nonce)
	if err != nil {
		return err
	}

	o.c = c
	o.o = counterOffset
	return nil
}

func (o *file) SetSubFilename(name string) (int64, liberr.Error) {
	s, ok := o.b.(BackendSubFile)
	if !ok {
		return 0, liberr.CodeInvalidConfiguration.Error(nil)
	}

	length, seekBase, err := s.SetSubFilename(name)
	if err != nil {
		return 0, err
	}

	o.l = length
	o.SetSeekBase(seekBase, 0)

	return o.l, nil
}

func (o *file) Performance() Performance {
	return Performance{
		TotalBytes:       o.totalBytes,
		MBPerSec:         o.mbPerSec,
		RequestsInFlight: o.inFlight,
	}
}

func (o *file) Load() ([]byte, int64, liberr.Error) {
	if ld, ok := o.b.(BackendLoader); ok {
		return ld.Load()
	}

	if o.l > 0 {
		buf := make([]byte, o.l+1)

		if err := o.ReadFull(buf[:o.l], 0, SeekCur); err != nil {
			return nil, 0, err
		}

		buf[o.l] = 0
		return buf, o.l, nil
	}

	log.Debugf("vfs load: %s open succeeded, length unknown", o.n)

	var (
		buf     = make([]byte, 0)
		already int64
		length  = int64(contentLoadChunkSize)
	)

	for {
		if already > length {
			length *= 2
		}

		grown := make([]byte, length+1)
		copy(grown, buf[:already])
		buf = grown

		// attempt one extra byte so EOF is detected
		attempt := length + 1 - already

		actual, err := o.ReadAt(buf[already:already+attempt], 0, SeekCur)
		if err != nil {
			return nil, 0, err
		}

		already += int64(actual)

		if int64(actual) != attempt {
			break
		}
	}

	out := make([]byte, already+1)
	copy(out, buf[:already])
	out[already] = 0

	return out, already, nil
}

func (o *file) Release() liberr.Error {
	return nil
}

func (o *file) Close() liberr.Error {
	if o.closed {
		// already closed, no error condition
		return nil
	}

	o.closed = true

	var regenErr liberr.Error

	if r, ok := o.b.(BackendRegen); ok && o.f&FlagWrite != 0 {
		var name string

		if name, regenErr = r.Regenerate(); regenErr == nil {
			o.n = name
		}
	}

	o.c = nil

	if err := o.b.Close(); err != nil {
		return err
	}

	return regenErr
}
