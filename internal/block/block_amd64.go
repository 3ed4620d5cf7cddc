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

//go:build amd64

package block

import "github.com/klauspost/cpuid/v2"

// encryptAESNI is implemented in block_amd64.s: one AESENC per round
// 1..nr-1 against roundKeys, then AESENCLAST for round nr.
//
//go:noescape
func encryptAESNI(dst, src *[16]byte, roundKeys *byte, nr int)

func init() {
	if cpuid.CPU.Supports(cpuid.AESNI) {
		platformEncrypt = encryptAESNILoop
	}
}

func encryptAESNILoop(dst, src *[16]byte, roundKeys []byte, nr int) {
	encryptAESNI(dst, src, &roundKeys[0], nr)
}
