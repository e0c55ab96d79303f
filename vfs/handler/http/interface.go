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

// Package http provides the http(s):// handler of the virtual file layer.
//
// The handler keeps one socket per file: a HEAD request at open time
// discovers the length, reads issue GET requests with a byte-range
// header. It is the only built-in with native pipelining: a read can be
// issued and consumed later by a blocking call, and a token remembers
// the socket generation it was issued on so that a reconnect invalidates
// stale requests.
//
// The handler is optional and networking-dependent, so it opts into the
// registry through Register instead of being statically installed.
package http

import (
	"time"

	valid "github.com/go-playground/validator/v10"

	liberr "github.com/nabbar/udstk/errors"
	libvfs "github.com/nabbar/udstk/vfs"
)

// Options configures the handler at registration time.
type Options struct {
	// UserAgent identifies the stack on the wire.
	UserAgent string `validate:"required"`
	// DialTimeout bounds connection establishment; zero means the
	// platform default.
	DialTimeout time.Duration `validate:"min=0"`
	// InsecureSkipVerify disables certificate verification for https.
	InsecureSkipVerify bool
}

// DefaultOptions returns the options used by Register.
func DefaultOptions() Options {
	return Options{
		UserAgent:   "udstk/1.0",
		DialTimeout: 30 * time.Second,
	}
}

// Validate checks the options.
func (o Options) Validate() liberr.Error {
	if e := valid.New(valid.WithRequiredStructEnabled()).Struct(o); e != nil {
		return liberr.CodeInvalidConfiguration.Error(e)
	}

	return nil
}

// Register installs the handler for the http: and https: prefixes with
// the default options.
func Register() liberr.Error {
	return RegisterWithOptions(DefaultOptions())
}

// RegisterWithOptions installs the handler with the given options.
func RegisterWithOptions(opt Options) liberr.Error {
	if err := opt.Validate(); err != nil {
		return err
	}

	fn := func(filename string, flags libvfs.OpenFlags) (libvfs.Backend, liberr.Error) {
		return openHTTPBackend(filename, flags, opt)
	}

	if err := libvfs.RegisterHandler(fn, "http:"); err != nil {
		return err
	}

	return libvfs.RegisterHandler(fn, "https:")
}
