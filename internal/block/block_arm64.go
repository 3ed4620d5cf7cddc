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

//go:build arm64

package block

import "github.com/klauspost/cpuid/v2"

// encryptARMCrypto is implemented in block_arm64.s using the ARMv8-A
// cryptographic extension's AESE/AESMC pair per round, finished with
// one AESE plus a plain XOR against the last round key.
//
//go:noescape
func encryptARMCrypto(dst, src *[16]byte, roundKeys *byte, nr int)

func init() {
	if cpuid.CPU.Supports(cpuid.AESARM) {
		platformEncrypt = encryptARMCryptoLoop
	}
}

func encryptARMCryptoLoop(dst, src *[16]byte, roundKeys []byte, nr int) {
	encryptARMCrypto(dst, src, &roundKeys[0], nr)
}
