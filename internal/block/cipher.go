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

// Package block implements the AES forward cipher with a pluggable
// scalar / AES-NI / ARM-crypto encryptor, selected once per Cipher at
// construction time. Only the forward direction exists: GCM is
// CTR-mode-only and never runs AES in reverse.
package block

// maxAcceleratedRounds caps the accelerated paths at the standard
// AES round counts (Nr <= 14, i.e. up to AES-256). The 512-bit
// extension (Nr=22) always runs the scalar path: an accelerated
// routine built and reasoned about for the standard round counts has
// no business running past them.
const maxAcceleratedRounds = 14

// encryptFunc is the shape of any forward-cipher implementation:
// encrypt the 16-byte block at src into dst under the expanded
// round-key schedule of nr+1 round keys.
type encryptFunc func(dst, src *[16]byte, roundKeys []byte, nr int)

// platformEncrypt is populated by an architecture-specific init()
// (block_amd64.go, block_arm64.go) when the running CPU supports the
// relevant extensions. It stays nil on every other architecture and
// on CPUs lacking the feature bits, in which case Cipher always runs
// encryptGeneric.
var platformEncrypt encryptFunc

// Cipher holds an expanded round-key schedule and the chosen
// encryptor for it.
type Cipher struct {
	roundKeys   []byte
	nr          int
	encrypt     encryptFunc
	accelerated bool
}

// New wraps an already-expanded round-key schedule (see package
// keyschedule) of nr+1 round keys. The accelerated path is selected
// here, once, rather than re-probed on every Encrypt call.
func New(roundKeys []byte, nr int) *Cipher {
	c := &Cipher{roundKeys: roundKeys, nr: nr, encrypt: encryptGeneric}

	if platformEncrypt != nil && nr <= maxAcceleratedRounds {
		c.encrypt = platformEncrypt
		c.accelerated = true
	}

	return c
}

// Encrypt runs the forward AES cipher on one 16-byte block.
func (c *Cipher) Encrypt(dst, src *[16]byte) {
	c.encrypt(dst, src, c.roundKeys, c.nr)
}

// Accelerated reports whether c picked an AES-NI/ARM-crypto path over
// the scalar fallback. Exposed for tests that want to assert the host
// CPU's capabilities were actually put to use.
func (c *Cipher) Accelerated() bool {
	return c.accelerated
}
