// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package ctrmode implements the CTR keystream generation GCM layers
// its confidentiality on. Unlike a general-purpose CTR mode with a
// caller-chosen nonce/counter split, GCM mandates one fixed shape: a
// 16-byte counter block whose last 4 bytes increment big-endian and
// whose first 12 bytes never change within a call.
package ctrmode

import "github.com/TheMapleseed/AES-GCM-512/internal/block"

// Block is a GCM counter block: a 12-byte prefix (derived from the
// IV) concatenated with a 32-bit big-endian counter in the last 4
// bytes.
type Block [16]byte

// Inc32 increments only the trailing 32 bits of b, wrapping on
// overflow with no carry into byte index 11.
func Inc32(b *Block) {
	for i := 15; i >= 12; i-- {
		b[i]++
		if b[i] != 0 {
			break
		}
	}
}

// XORKeyStream XORs src into dst using the keystream produced by
// encrypting successive counter blocks starting at counter. counter is
// taken by value: the caller's own copy of the initial counter (e.g.
// inc32(J0) for GCM) is never mutated by this call. dst and src may be
// the same slice (in-place XOR), but must be equal length.
func XORKeyStream(c *block.Cipher, counter Block, dst, src []byte) {
	for len(src) > 0 {
		var keystream [16]byte
		cb := [16]byte(counter)
		c.Encrypt(&keystream, &cb)

		n := 16
		if len(src) < n {
			n = len(src)
		}

		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ keystream[i]
		}

		Inc32(&counter)
		dst = dst[n:]
		src = src[n:]
	}
}
