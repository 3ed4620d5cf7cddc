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

// Package sbox computes the Rijndael substitution table used by
// SubBytes and by the key schedule's SubWord step.
package sbox

// Box is the 256-entry forward S-box. GCM never runs the cipher in
// reverse, so no inverse box is computed anywhere in this module.
type Box [256]byte

func rotL8(x byte, shift uint) byte {
	return byte((x << shift) | (x >> (8 - shift)))
}

// New derives the Rijndael S-box from the multiplicative inverse over
// GF(2^8) followed by the affine transform, using the classic
// log-free loop over the generator (3, generator-order 255) so the
// whole table is produced without a division or an inversion routine.
//
// https://en.wikipedia.org/wiki/Rijndael_S-box
func New() *Box {
	box := new(Box)

	var p byte = 1
	var q byte = 1

	for {
		if p&0x80 != 0 {
			p = p ^ (p << 1) ^ 0x1b
		} else {
			p = p ^ (p << 1)
		}

		q ^= q << 1
		q ^= q << 2
		q ^= q << 4

		if q&0x80 != 0 {
			q ^= 0x09
		}

		xformed := q ^ rotL8(q, 1) ^ rotL8(q, 2) ^ rotL8(q, 3) ^ rotL8(q, 4)
		box[p] = xformed ^ 0x63

		if p == 1 {
			break
		}
	}

	box[0] = 0x63
	return box
}

// cached is computed once; the S-box has no per-key dependence so
// every Cipher in the process can share the same table.
var cached = New()

// Shared returns the process-wide S-box instance.
func Shared() *Box {
	return cached
}
