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

package block

import (
	"github.com/TheMapleseed/AES-GCM-512/internal/galois"
	"github.com/TheMapleseed/AES-GCM-512/internal/sbox"
)

// encryptGeneric is the portable scalar AES forward cipher. It is
// mandatory regardless of what acceleration is available: the 512-bit
// extension always runs this path (see New in cipher.go), and every
// architecture without an accelerated path runs nothing else.
//
// state is a 4x4 matrix in column-major order: the byte at row r,
// column c lives at offset 4*c+r.
func encryptGeneric(dst, src *[16]byte, roundKeys []byte, nr int) {
	var state [16]byte
	state = *src

	addRoundKey(&state, roundKeys, 0)

	for round := 1; round < nr; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, roundKeys, round)
	}

	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, roundKeys, nr)

	*dst = state
}

func subBytes(state *[16]byte) {
	box := sbox.Shared()
	for i := range state {
		state[i] = box[state[i]]
	}
}

// shiftRows rotates row r left by r positions. Because the state is
// stored column-major, new[r][c] = old[r][(c+r) mod 4], expressed here
// directly in flat byte offsets (4*c+r).
func shiftRows(state *[16]byte) {
	var shifted [16]byte
	shifted[0] = state[0]
	shifted[4] = state[4]
	shifted[8] = state[8]
	shifted[12] = state[12]

	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			shifted[r+4*c] = state[r+4*((r+c)%4)]
		}
	}

	*state = shifted
}

// mixColumns multiplies each column by the fixed MDS matrix
// {{02,03,01,01},{01,02,03,01},{01,01,02,03},{03,01,01,02}} over
// GF(2^8).
func mixColumns(state *[16]byte) {
	var mixed [16]byte

	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := state[4*c+0], state[4*c+1], state[4*c+2], state[4*c+3]

		mixed[4*c+0] = galois.Mul(0x02, a0) ^ galois.Mul(0x03, a1) ^ a2 ^ a3
		mixed[4*c+1] = a0 ^ galois.Mul(0x02, a1) ^ galois.Mul(0x03, a2) ^ a3
		mixed[4*c+2] = a0 ^ a1 ^ galois.Mul(0x02, a2) ^ galois.Mul(0x03, a3)
		mixed[4*c+3] = galois.Mul(0x03, a0) ^ a1 ^ a2 ^ galois.Mul(0x02, a3)
	}

	*state = mixed
}

func addRoundKey(state *[16]byte, roundKeys []byte, round int) {
	rk := roundKeys[round*16 : (round+1)*16]
	for i := range state {
		state[i] ^= rk[i]
	}
}
