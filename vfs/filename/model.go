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

package filename

import "strings"

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func (f *Filename) calculateIndices() {
	f.qi = len(f.p)

	if hasFoldPrefix(f.p, "http://") || hasFoldPrefix(f.p, "https://") {
		if q := strings.IndexByte(f.p, '?'); q >= 0 {
			f.qi = q
		}
	}

	f.fi = -1
	f.ei = f.qi // no extension points past the name

	for i := f.qi - 1; i >= 0 && (f.fi == -1 || f.ei == f.qi); i-- {
		if f.ei == f.qi && f.p[i] == '.' {
			f.ei = i
		}

		if f.fi == -1 && (f.p[i] == '/' || f.p[i] == '\\' || f.p[i] == ':') {
			f.fi = i + 1
		}
	}

	// without a separator the filename starts the path
	if f.fi == -1 {
		f.fi = 0
	}

	// a dot inside the folder part is not an extension
	if f.ei < f.fi {
		f.ei = f.qi
	}
}
