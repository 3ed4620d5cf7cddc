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

// Package sizes resolves a raw AES key length to the Nk/Nr parameters
// of the Rijndael key schedule it drives. Width selection is a runtime
// parameter of the key, not a build-time switch: a single binary
// serves 128/192/256-bit AES plus the non-standard 512-bit extension.
package sizes

const (
	// BlockSize is the width of the AES state in bytes, fixed by the
	// standard regardless of key width.
	BlockSize = 16

	// WordSize is the width of one key-schedule word in bytes.
	WordSize = 4

	// Nb is the number of 32-bit columns in the state, always 4.
	Nb = 4
)

// Params describes the Nk/Nr pair a key width selects, and the
// resulting size of the expanded round-key buffer.
type Params struct {
	Nk int // key length in 32-bit words
	Nr int // number of rounds
}

// RoundKeySize is the number of bytes the expanded schedule occupies:
// Nb * 4 bytes per round key, one round key per round plus the
// whitening key at round 0.
func (p Params) RoundKeySize() int {
	return BlockSize * (p.Nr + 1)
}

// widths maps a raw key length in bytes to its Nk/Nr pair. Nr follows
// the standard Nr = Nk + 6 pattern for all four widths, including the
// non-standard 512-bit extension that continues the Rijndael pattern
// beyond the three standardized sizes.
var widths = map[int]Params{
	16: {Nk: 4, Nr: 10},
	24: {Nk: 6, Nr: 12},
	32: {Nk: 8, Nr: 14},
	64: {Nk: 16, Nr: 22},
}

// Lookup resolves a key length in bytes to its Nk/Nr parameters. ok is
// false for any length outside {16, 24, 32, 64}.
func Lookup(keyLen int) (p Params, ok bool) {
	p, ok = widths[keyLen]
	return p, ok
}

// Is512 reports whether p describes the non-standard 512-bit
// extension, whose security is unanalyzed.
func (p Params) Is512() bool {
	return p.Nk == 16
}
