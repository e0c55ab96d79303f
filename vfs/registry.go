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
	"io"
	"os"
	"reflect"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"

	liberr "github.com/nabbar/udstk/errors"
)

var log = newDiscardLogger()

func newDiscardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type handlerEntry struct {
	fn OpenFunc
	px string
}

// The registry is process-wide and not re-entrant: register and
// deregister before concurrent opens begin.
var handlers []handlerEntry

func init() {
	handlers = []handlerEntry{
		{fn: openFSBackend, px: ""},
		{fn: openRawBackend, px: "raw://"},
		{fn: openZipBackend, px: "zip://"},
		{fn: openDataBackend, px: "data:"},
	}
}

func registerHandler(fn OpenFunc, prefix string) liberr.Error {
	if fn == nil {
		return liberr.CodeInvalidParameter.Error(nil)
	}

	if len(handlers) >= MaxHandlers {
		return liberr.CodeCountExceeded.Error(nil)
	}

	handlers = append(handlers, handlerEntry{fn: fn, px: prefix})
	return nil
}

func deregisterHandler(fn OpenFunc) liberr.Error {
	if fn == nil {
		return liberr.CodeInvalidParameter.Error(nil)
	}

	p := reflect.ValueOf(fn).Pointer()

	for i := range handlers {
		if reflect.ValueOf(handlers[i].fn).Pointer() == p {
			handlers = append(handlers[:i], handlers[i+1:]...)
			return nil
		}
	}

	return liberr.CodeNotFound.Error(nil)
}

func openFile(filename string, flags OpenFlags) (File, liberr.Error) {
	if len(filename) < 1 {
		return nil, liberr.CodeInvalidParameter.Error(nil)
	}

	for i := len(handlers) - 1; i >= 0; i-- {
		h := handlers[i]

		if !strings.HasPrefix(filename, h.px) {
			continue
		}

		b, err := h.fn(filename, flags)
		if err != nil {
			return nil, err
		}

		f := &file{
			n: filename,
			b: b,
			f: flags,
			l: b.Length(),
		}

		f.SetSeekBase(b.SeekBase(), 0)

		return f, nil
	}

	return nil, liberr.CodeOpenFailure.Error(nil)
}

// TranslatePath expands a leading "~" or "~/" to the current user home
// directory. Paths without the marker report NotFound.
func TranslatePath(path string) (string, liberr.Error) {
	if len(path) < 1 {
		return "", liberr.CodeInvalidParameter.Error(nil)
	}

	if path[0] != '~' || (len(path) > 1 && path[1] != '/' && path[1] != '\\') {
		return "", liberr.CodeNotFound.Error(nil)
	}

	home, e := homedir.Dir()
	if e != nil || len(home) < 1 {
		return "", liberr.CodeNotFound.Error(e)
	}

	return home + path[1:], nil
}

// CreateDir creates the directory chain for the given path. When an
// existing non-directory blocks the chain the call fails immediately.
func CreateDir(path string) liberr.Error {
	if fi, e := os.Stat(path); e == nil {
		if fi.IsDir() {
			return nil
		}
		// an existing file blocks creation, never retry
		return liberr.CodeOpenFailure.Error(nil)
	}

	if e := os.MkdirAll(path, 0755); e != nil {
		return liberr.CodeOpenFailure.Error(e)
	}

	return nil
}
