/*
 *  MIT License
 *
 *  Copyright (c) 2025 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

package compress

import (
	"bytes"
	"image"
	"image/png"

	liberr "github.com/nabbar/udstk/errors"
)

// WritePNG encodes a raw raster into a PNG buffer. Accepted channel
// counts are 4 (RGBA) and 3 (RGB, opaque alpha supplied).
func WritePNG(raster []byte, width, height, channels int) ([]byte, liberr.Error) {
	if channels != 3 && channels != 4 {
		return nil, liberr.CodeInvalidConfiguration.Error(nil)
	}

	if width < 1 || height < 1 || len(raster) != width*height*channels {
		return nil, liberr.CodeInvalidParameter.Error(nil)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	if channels == 4 {
		copy(img.Pix, raster)
	} else {
		for s, d := 0, 0; s < len(raster); s, d = s+3, d+4 {
			img.Pix[d+0] = raster[s+0]
			img.Pix[d+1] = raster[s+1]
			img.Pix[d+2] = raster[s+2]
			img.Pix[d+3] = 0xFF
		}
	}

	var buf bytes.Buffer
	if e := png.Encode(&buf, img); e != nil {
		return nil, liberr.CodeInvalidConfiguration.Error(e)
	}

	return buf.Bytes(), nil
}
