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

// This package's Rcon/RotWord/SubWord shape has been heavily inspired
// by Sam Trenholme's blog:
// https://www.samiam.org/key-schedule.html

// Package keyschedule expands a raw AES key into the full round-key
// schedule, for any of the four supported Nk widths.
package keyschedule

import (
	"github.com/TheMapleseed/AES-GCM-512/internal/galois"
	"github.com/TheMapleseed/AES-GCM-512/internal/sbox"
	"github.com/TheMapleseed/AES-GCM-512/internal/sizes"
)

// Rcon computes the round constant for schedule index idx by
// repeated doubling in GF(2^8), rather than indexing a fixed table,
// so it is total for any idx. Expand itself asks for idx = i/Nk, which
// peaks at 10 for AES-128, 8 for AES-192, 7 for AES-256 and 5 for the
// 512-bit width.
func Rcon(idx int) byte {
	if idx <= 0 {
		return 0
	}

	var rcon byte = 1
	for i := 1; i < idx; i++ {
		rcon = galois.Xtime(rcon)
	}

	return rcon
}

func rotWord(word [sizes.WordSize]byte) [sizes.WordSize]byte {
	var rotated [sizes.WordSize]byte
	for i := 0; i < sizes.WordSize-1; i++ {
		rotated[i] = word[i+1]
	}
	rotated[sizes.WordSize-1] = word[0]
	return rotated
}

func subWord(word [sizes.WordSize]byte, box *sbox.Box) [sizes.WordSize]byte {
	var out [sizes.WordSize]byte
	for i := 0; i < sizes.WordSize; i++ {
		out[i] = box[word[i]]
	}
	return out
}

// Expand produces the Nb*(Nr+1) expanded round-key bytes for key,
// whose length must already have been resolved to p via
// sizes.Lookup. The caller (the GCM driver, via sizes.Lookup) is
// responsible for key-length validation; Expand is total over any key
// of length 4*p.Nk.
func Expand(key []byte, p sizes.Params) []byte {
	box := sbox.Shared()
	out := make([]byte, p.RoundKeySize())
	copy(out, key)

	var temp [sizes.WordSize]byte
	totalWords := p.RoundKeySize() / sizes.WordSize

	for i := p.Nk; i < totalWords; i++ {
		copy(temp[:], out[(i-1)*sizes.WordSize:i*sizes.WordSize])

		switch {
		case i%p.Nk == 0:
			temp = rotWord(temp)
			temp = subWord(temp, box)
			temp[0] ^= Rcon(i / p.Nk)
		case p.Nk > 6 && i%p.Nk == 4:
			temp = subWord(temp, box)
		}

		for b := 0; b < sizes.WordSize; b++ {
			out[i*sizes.WordSize+b] = out[(i-p.Nk)*sizes.WordSize+b] ^ temp[b]
		}
	}

	return out
}

// Zero overwrites a round-key buffer in place. Used by Context.Close
// to scrub key material before the buffer is released to the garbage
// collector.
func Zero(roundKeys []byte) {
	for i := range roundKeys {
		roundKeys[i] = 0
	}
}
