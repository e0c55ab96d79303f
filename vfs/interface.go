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

// Package vfs provides the pluggable virtual file layer of the library.
//
// Filenames are dispatched to registered handlers by prefix: the registry
// is an ordered table scanned from the most recently registered entry
// down, taking the first whose prefix matches case-sensitively. The
// built-in handlers (plain files, raw://, zip://, data:) are registered
// statically; the http(s):// handler opts in through its own Register
// call.
//
// Every opened file goes through the same pipeline: position translation
// against a seek base, an optional counter-mode cipher stage, performance
// counters, and pipelined request tokens. Handlers supply only a backend
// capability set; the pipeline owns the rest.
//
// Open and Close on distinct files are independent; calls on a single
// file must be serialised by the caller unless the handler documents
// otherwise.
package vfs

import (
	"github.com/sirupsen/logrus"

	libcpt "github.com/nabbar/udstk/crypt"
	liberr "github.com/nabbar/udstk/errors"
)

// MaxHandlers bounds the registry size.
const MaxHandlers = 16

// OpenFlags controls how a file is opened. A file is opened either
// read-capable or write-capable; handlers supporting in-place update
// accept both bits.
type OpenFlags uint8

const (
	FlagRead OpenFlags = 1 << iota
	FlagWrite
	FlagCreate
	// FlagFastOpen is advisory: the file handler still asks for the size,
	// and with this flag an open whose size cannot be read succeeds with
	// length 0.
	FlagFastOpen
	// FlagMultithread asks the handler to guard its own state; only the
	// http handler honours it.
	FlagMultithread
)

// Whence anchors a seek offset.
type Whence uint8

const (
	SeekSet Whence = iota
	SeekCur
	SeekEnd
)

// Performance is the per-file counter snapshot.
type Performance struct {
	// TotalBytes is the cumulative payload moved through the file.
	TotalBytes int64
	// MBPerSec is computed each time the in-flight count returns to zero.
	MBPerSec float64
	// RequestsInFlight counts issued but uncompleted operations.
	RequestsInFlight int32
}

// OpenFunc opens a backend for the given filename. The filename still
// carries the prefix the handler registered.
type OpenFunc func(filename string, flags OpenFlags) (Backend, liberr.Error)

// Backend is the minimum capability set a handler returns. Optional
// capabilities are discovered by interface assertion: BackendWriter,
// BackendLoader, BackendSubFile, BackendPipeliner, BackendRegen.
type Backend interface {
	// ReadAt copies bytes at the absolute backend offset. Short reads
	// are reported through n without error.
	ReadAt(p []byte, off int64) (n int, err liberr.Error)

	// Length returns the current logical length, or 0 when unknown.
	Length() int64

	// SeekBase returns the bytes to skip at the beginning of the
	// underlying stream. Non-zero only for framing backends.
	SeekBase() int64

	// Close releases handler-owned resources. It must succeed in
	// releasing even on error paths.
	Close() liberr.Error
}

// BackendWriter is implemented by write-capable backends.
type BackendWriter interface {
	WriteAt(p []byte, off int64) (n int, err liberr.Error)
}

// BackendLoader overrides the generic whole-file load.
type BackendLoader interface {
	Load() ([]byte, int64, liberr.Error)
}

// BackendSubFile switches the exposed entry of a container backend
// without reopening it. It returns the new length and seek base.
type BackendSubFile interface {
	SetSubFilename(name string) (length int64, seekBase int64, err liberr.Error)
}

// BackendPipeliner is implemented by backends with native pipelining.
type BackendPipeliner interface {
	// ReadPipelined issues the request and parks its continuation state
	// in the token.
	ReadPipelined(p []byte, off int64, tok *PipelinedRequest) liberr.Error
	// BlockPipelined consumes the token and returns the actual read.
	BlockPipelined(tok *PipelinedRequest) (n int, err liberr.Error)
}

// BackendRegen is implemented by backends that re-encode their state
// into a new filename at close (the raw:// handler).
type BackendRegen interface {
	Regenerate() (string, liberr.Error)
}

// File is an open virtual file.
type File interface {
	// Name returns the canonical filename. After closing a writable
	// raw:// file it returns the re-encoded filename.
	Name() string

	// Length returns the current logical length.
	Length() int64

	// Read reads at the current position.
	Read(p []byte) (n int, err liberr.Error)

	// ReadAt reads at the given offset anchored by whence, relative to
	// the seek base. Short reads are reported through n without error.
	ReadAt(p []byte, offset int64, whence Whence) (n int, err liberr.Error)

	// ReadFull is ReadAt escalating short reads to a ReadFailure.
	ReadFull(p []byte, offset int64, whence Whence) liberr.Error

	// ReadPipelined issues a read consumed later by BlockPipelined.
	// Position reflects the issuing call, not the completion.
	ReadPipelined(p []byte, offset int64, whence Whence, tok *PipelinedRequest) liberr.Error

	// BlockPipelined consumes a token exactly once.
	BlockPipelined(tok *PipelinedRequest) (n int, err liberr.Error)

	// Write writes at the current position.
	Write(p []byte) (n int, err liberr.Error)

	// WriteAt writes at the given offset anchored by whence. The length
	// grows when a write extends the file.
	WriteAt(p []byte, offset int64, whence Whence) (n int, err liberr.Error)

	// SetSeekBase adjusts the framing base; position moves to the base.
	// A non-zero newLength replaces the logical length.
	SetSeekBase(seekBase int64, newLength int64)

	// SetEncryption installs the counter-mode cipher stage. Fails with
	// InvalidConfiguration on write-capable files.
	SetEncryption(key []byte, nonce [libcpt.NonceSize]byte, counterOffset int64) liberr.Error

	// SetSubFilename switches the exposed entry of a container backend
	// and returns the new length.
	SetSubFilename(name string) (int64, liberr.Error)

	// Performance returns the counter snapshot.
	Performance() Performance

	// Load reads the whole file, returning the content with a trailing
	// NUL byte appended, and the content length without it.
	Load() ([]byte, int64, liberr.Error)

	// Release lets the backend drop transient resources.
	Release() liberr.Error

	// Close destroys the file. Closing twice is a no-op success.
	Close() liberr.Error
}

// Open dispatches the filename to the registry and wraps the backend in
// the pipeline.
func Open(filename string, flags OpenFlags) (File, liberr.Error) {
	return openFile(filename, flags)
}

// Load opens the file read-only and loads its whole content; see
// File.Load for the trailing NUL convention.
func Load(filename string) ([]byte, int64, liberr.Error) {
	f, err := openFile(filename, FlagRead|FlagFastOpen)
	if err != nil {
		return nil, 0, err
	}

	defer func() {
		_ = f.Close()
	}()

	return f.Load()
}

// Save writes the whole buffer to a newly created file.
func Save(filename string, data []byte) liberr.Error {
	f, err := openFile(filename, FlagWrite|FlagCreate)
	if err != nil {
		return err
	}

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}

	// close errors are important when writing
	return f.Close()
}

// RegisterHandler appends a handler to the registry. Registration must
// happen before concurrent opens begin.
func RegisterHandler(fn OpenFunc, prefix string) liberr.Error {
	return registerHandler(fn, prefix)
}

// DeregisterHandler removes a previously registered handler.
func DeregisterHandler(fn OpenFunc) liberr.Error {
	return deregisterHandler(fn)
}

// SetLogger replaces the package logger. The default discards.
func SetLogger(l *logrus.Entry) {
	if l != nil {
		log = l
	}
}
