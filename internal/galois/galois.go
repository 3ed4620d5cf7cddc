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

// Package galois implements GF(2^8) arithmetic for AES's MixColumns
// step and key-schedule Rcon generation. GF(2^128) arithmetic for
// GHASH lives separately in package ghash: the two fields use
// different reduction polynomials and bit orderings and have nothing
// in common beyond both being binary fields.
package galois

// Add is addition in GF(2^8), which is XOR since the field has
// characteristic 2.
func Add(a, b byte) byte {
	return a ^ b
}

// Xtime multiplies a by the polynomial x (the byte 0x02) modulo the
// AES reduction polynomial x^8+x^4+x^3+x+1 (0x11b).
func Xtime(a byte) byte {
	hiBitSet := a&0x80 != 0
	a <<= 1
	if hiBitSet {
		a ^= 0x1b
	}
	return a
}

// Mul multiplies a and b in GF(2^8) via the standard shift-and-add-
// with-reduction (peasant multiplication) algorithm.
func Mul(a, b byte) byte {
	var p byte

	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		a = Xtime(a)
		b >>= 1
	}

	return p
}

// XorBlocks XORs two equal-length byte slices into a freshly
// allocated result.
func XorBlocks(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
