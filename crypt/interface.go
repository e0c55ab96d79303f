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
 */

// Package crypt provides the counter-mode cipher capability consumed by
// the virtual file pipeline.
//
// A Cipher is an AES block keyed at construction with an 8-byte nonce.
// The keystream position is addressed by a block index: the pipeline
// derives it from the file offset as (offset-seekBase)/16 plus the
// counter offset of the file, so that random access reads decrypt
// without streaming state.
//
// CTR mode is symmetric: Apply both encrypts and decrypts.
package crypt

import (
	liberr "github.com/nabbar/udstk/errors"
)

// BlockSize is the cipher block granularity of the pipeline.
const BlockSize = 16

// NonceSize is the fixed nonce length prefixed to the derived IV.
const NonceSize = 8

// Cipher applies a counter-mode keystream at arbitrary block positions.
type Cipher interface {
	// Apply XORs the keystream into p in place. The slice must start on
	// the block boundary addressed by blockIndex.
	Apply(p []byte, blockIndex uint64)
}

// New creates a Cipher from an AES key (16, 24 or 32 bytes) and a nonce.
func New(key []byte, nonce [NonceSize]byte) (Cipher, liberr.Error) {
	return newCipher(key, nonce)
}

// GenKey returns a random 32-byte key and a random nonce.
func GenKey() ([]byte, [NonceSize]byte, liberr.Error) {
	return genKey()
}
