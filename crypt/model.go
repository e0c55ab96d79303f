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

package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"io"

	liberr "github.com/nabbar/udstk/errors"
)

type ctr struct {
	b cipher.Block
	n [NonceSize]byte
}

func newCipher(key []byte, nonce [NonceSize]byte) (Cipher, liberr.Error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, liberr.CodeDecryptionKeyRequired.Error(nil)
	}

	b, e := aes.NewCipher(key)
	if e != nil {
		return nil, liberr.CodeInternalCryptoError.Error(e)
	}

	return &ctr{
		b: b,
		n: nonce,
	}, nil
}

func genKey() ([]byte, [NonceSize]byte, liberr.Error) {
	var (
		key   = make([]byte, 32)
		nonce [NonceSize]byte
	)

	// Never reuse more than 2^32 random nonces with a given key because
	// of the risk of a repeat.
	if _, e := io.ReadFull(rand.Reader, key); e != nil {
		return nil, nonce, liberr.CodeInternalCryptoError.Error(e)
	}

	if _, e := io.ReadFull(rand.Reader, nonce[:]); e != nil {
		return nil, nonce, liberr.CodeInternalCryptoError.Error(e)
	}

	return key, nonce, nil
}

func (o *ctr) Apply(p []byte, blockIndex uint64) {
	if len(p) < 1 {
		return
	}

	var iv [BlockSize]byte

	copy(iv[:NonceSize], o.n[:])
	binary.BigEndian.PutUint64(iv[NonceSize:], blockIndex)

	cipher.NewCTR(o.b, iv[:]).XORKeyStream(p, p)
}
