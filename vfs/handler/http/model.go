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

package http

import (
	"bufio"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"

	encurl "github.com/nabbar/udstk/encoding/urlcode"
	liberr "github.com/nabbar/udstk/errors"
	libvfs "github.com/nabbar/udstk/vfs"
)

const (
	headFormat = "HEAD %s HTTP/1.1\r\nHost: %s\r\nConnection: Keep-Alive\r\nUser-Agent: %s\r\n\r\n"
	getFormat  = "GET %s HTTP/1.1\r\nHost: %s\r\nUser-Agent: %s\r\nConnection: Keep-Alive\r\nRange: bytes=%d-%d\r\n\r\n"
)

type httpBackend struct {
	u   encurl.URL
	s   bool // https
	o   Options
	m   *sync.Mutex // non-nil only with FlagMultithread
	c   net.Conn
	r   *bufio.Reader
	gen uint64 // bumped on every socket close so stale tokens are detected
	lng int64
}

func openHTTPBackend(filename string, flags libvfs.OpenFlags, opt Options) (libvfs.Backend, liberr.Error) {
	// writing over http can never work
	if flags&(libvfs.FlagWrite|libvfs.FlagCreate) != 0 {
		return nil, liberr.CodeOpenFailure.Error(nil)
	}

	u, err := encurl.Split(filename)
	if err != nil {
		return nil, err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, liberr.CodeOpenFailure.Error(nil)
	}

	b := &httpBackend{
		u: u,
		s: u.Scheme == "https",
		o: opt,
	}

	if flags&libvfs.FlagMultithread != 0 {
		b.m = new(sync.Mutex)
	}

	req := fmt.Sprintf(headFormat, u.Path, u.Host, opt.UserAgent)

	if err = b.sendRequest(req); err != nil {
		b.closeSocket()
		return nil, err
	}

	if _, err = b.recvResponse(nil); err != nil {
		b.closeSocket()
		return nil, err
	}

	return b, nil
}

func (o *httpBackend) lock() {
	if o.m != nil {
		o.m.Lock()
	}
}

func (o *httpBackend) unlock() {
	if o.m != nil {
		o.m.Unlock()
	}
}

func (o *httpBackend) openSocket() liberr.Error {
	if o.c != nil {
		return nil
	}

	addr := net.JoinHostPort(o.u.Host, strconv.Itoa(o.u.Port))

	c, e := net.DialTimeout("tcp", addr, o.o.DialTimeout)
	if e != nil {
		return liberr.CodeSocketError.Error(e)
	}

	if o.s {
		tc := tls.Client(c, &tls.Config{
			ServerName:         o.u.Host,
			InsecureSkipVerify: o.o.InsecureSkipVerify,
		})

		if e = tc.Handshake(); e != nil {
			_ = c.Close()
			return liberr.CodeSocketError.Error(e)
		}

		c = tc
	}

	o.c = c
	o.r = bufio.NewReader(c)
	return nil
}

func (o *httpBackend) closeSocket() {
	if o.c != nil {
		_ = o.c.Close()
		o.c = nil
		o.r = nil
	}
	o.gen++
}

func (o *httpBackend) sendRequest(req string) liberr.Error {
	if err := o.openSocket(); err != nil {
		return err
	}

	if _, e := io.WriteString(o.c, req); e != nil {
		// on error, try closing and re-opening the socket once before
		// giving up
		o.closeSocket()

		if err := o.openSocket(); err != nil {
			return err
		}

		if _, e = io.WriteString(o.c, req); e != nil {
			o.closeSocket()
			return liberr.CodeSocketError.Error(e)
		}
	}

	return nil
}

// recvResponse parses the status line and headers, then fills p with the
// payload when p is non-nil. A nil p records the Content-Length as the
// file length instead (HEAD response).
func (o *httpBackend) recvResponse(p []byte) (int, liberr.Error) {
	if err := o.openSocket(); err != nil {
		return 0, err
	}

	var (
		code          int
		closeConn     bool
		contentLength int64 = -1
	)

	status, e := o.r.ReadString('\n')
	if e != nil {
		return 0, liberr.CodeSocketError.Error(e)
	}

	if _, e = fmt.Sscanf(status, "HTTP/1.1 %d", &code); e != nil || (code != 200 && code != 206) {
		o.closeSocket()
		return 0, liberr.CodeSocketError.Error(e)
	}

	for {
		line, le := o.r.ReadString('\n')
		if le != nil {
			o.closeSocket()
			return 0, liberr.CodeSocketError.Error(le)
		}

		line = strings.TrimRight(line, "\r\n")
		if len(line) < 1 {
			break
		}

		if k, v, ok := strings.Cut(line, ":"); ok {
			v = strings.TrimSpace(v)

			switch {
			case strings.EqualFold(k, "Content-Length"):
				contentLength, _ = strconv.ParseInt(v, 10, 64)
			case strings.EqualFold(k, "Connection") && strings.EqualFold(v, "close"):
				closeConn = true
			}
		}
	}

	if contentLength < 0 {
		o.closeSocket()
		return 0, liberr.CodeSocketError.Error(nil)
	}

	var actual int

	if p == nil {
		// HEAD response carries no body
		o.lng = contentLength
	} else {
		if contentLength > int64(len(p)) {
			o.closeSocket()
			return 0, liberr.CodeSocketError.Error(nil)
		}

		if actual, e = io.ReadFull(o.r, p[:contentLength]); e != nil {
			o.closeSocket()
			return actual, liberr.CodeSocketError.Error(e)
		}
	}

	if closeConn {
		o.closeSocket()
	}

	return actual, nil
}

func (o *httpBackend) get(p []byte, off int64) liberr.Error {
	req := fmt.Sprintf(getFormat, o.u.Path, o.u.Host, o.o.UserAgent, off, off+int64(len(p))-1)
	return o.sendRequest(req)
}

func (o *httpBackend) ReadAt(p []byte, off int64) (int, liberr.Error) {
	o.lock()
	defer o.unlock()

	if err := o.get(p, off); err != nil {
		return 0, err
	}

	return o.recvResponse(p)
}

func (o *httpBackend) ReadPipelined(p []byte, off int64, tok *libvfs.PipelinedRequest) liberr.Error {
	o.lock()
	defer o.unlock()

	if err := o.get(p, off); err != nil {
		return err
	}

	tok.Stash(p, o.gen)
	return nil
}

func (o *httpBackend) BlockPipelined(tok *libvfs.PipelinedRequest) (int, liberr.Error) {
	o.lock()
	defer o.unlock()

	buf, gen := tok.State()

	if gen != o.gen {
		// the socket was closed and reopened since the request was issued
		return 0, liberr.CodeSocketError.Error(nil)
	}

	return o.recvResponse(buf)
}

func (o *httpBackend) Length() int64 {
	return o.lng
}

func (o *httpBackend) SeekBase() int64 {
	return 0
}

func (o *httpBackend) Close() liberr.Error {
	o.lock()
	defer o.unlock()

	o.closeSocket()
	return nil
}
