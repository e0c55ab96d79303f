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

// Package filename decomposes paths into folder, name and extension.
//
// Scanning goes from the right: the extension begins at the last dot,
// the filename after the last '/', '\' or ':'. For http(s) locations the
// query part is trimmed before extension detection, so
// "https://host/b.json?v=2" still has the ".json" extension.
package filename

// Filename is a decomposed path. The zero value is an empty path.
type Filename struct {
	p  string
	fi int // index of the filename component
	ei int // index of the extension (or qi when none)
	qi int // index of the query part (or len when none)
}

// New decomposes the given path.
func New(path string) *Filename {
	f := &Filename{}
	f.SetFromFullPath(path)
	return f
}

// Path returns the full path.
func (f *Filename) Path() string {
	return f.p
}

// Folder returns everything up to and including the last separator.
func (f *Filename) Folder() string {
	return f.p[:f.fi]
}

// NameNoExt returns the filename without its extension.
func (f *Filename) NameNoExt() string {
	return f.p[f.fi:f.ei]
}

// Ext returns the extension including the leading dot, or an empty
// string.
func (f *Filename) Ext() string {
	return f.p[f.ei:f.qi]
}

// NameWithExt returns the filename with its extension, query trimmed.
func (f *Filename) NameWithExt() string {
	return f.p[f.fi:f.qi]
}

// SetFromFullPath replaces the whole path and recomputes the indices.
func (f *Filename) SetFromFullPath(path string) {
	f.p = path
	f.calculateIndices()
}

// SetFolder replaces the folder part, keeping name and extension.
func (f *Filename) SetFolder(folder string) {
	if n := len(folder); n > 0 && folder[n-1] != '/' && folder[n-1] != '\\' && folder[n-1] != ':' {
		folder += "/"
	}

	f.SetFromFullPath(folder + f.p[f.fi:])
}

// SetFilenameNoExt replaces the name part, keeping folder and extension.
func (f *Filename) SetFilenameNoExt(name string) {
	f.SetFromFullPath(f.p[:f.fi] + name + f.p[f.ei:])
}

// SetFilenameWithExt replaces name and extension, keeping the folder.
func (f *Filename) SetFilenameWithExt(name string) {
	f.SetFromFullPath(f.p[:f.fi] + name)
}

// SetExtension replaces the extension, keeping folder and name.
func (f *Filename) SetExtension(ext string) {
	f.SetFromFullPath(f.p[:f.ei] + ext + f.p[f.qi:])
}
