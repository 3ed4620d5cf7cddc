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

// Package aesgcm512 implements authenticated encryption and decryption
// under AES-GCM (NIST SP 800-38D) for 128/192/256-bit keys plus a
// non-standard 512-bit extension of the Rijndael key-schedule pattern.
//
// The primitive is one-shot over full buffers: there is no streaming
// API, no key wrapping, and no nonce management — callers own IV
// uniqueness. Only 128-bit tags are supported. The 512-bit width is
// explicitly unstandardized and its security unanalyzed; it exists so
// the key schedule's doubling pattern can be exercised past the three
// sizes NIST defines, not as a security recommendation.
package aesgcm512

import (
	"runtime"

	"github.com/TheMapleseed/AES-GCM-512/internal/block"
	"github.com/TheMapleseed/AES-GCM-512/internal/ctrmode"
	"github.com/TheMapleseed/AES-GCM-512/internal/ghash"
	"github.com/TheMapleseed/AES-GCM-512/internal/keyschedule"
	"github.com/TheMapleseed/AES-GCM-512/internal/sizes"
)

const (
	// TagSize is the only authentication tag length this module
	// supports.
	TagSize = 16

	standardIVSize = 12

	// maxPlaintextBytes enforces SP 800-38D §5.2.1.1's limit on a
	// single GCM invocation: the 32-bit counter subfield can address
	// at most 2^32-2 blocks of keystream before it would wrap, so a
	// call is capped at 2^39-256 *bits* of plaintext.
	maxPlaintextBytes = (1<<39 - 256) / 8
)

// Context owns an expanded AES round-key schedule. It is immutable
// once constructed and safe for concurrent Seal/Open calls — each
// call's GHASH accumulator, counter block, H and EK0 live entirely on
// that call's stack, never shared across calls.
type Context struct {
	params    sizes.Params
	roundKeys []byte
	cipher    *block.Cipher
}

// NewContext expands key into a round-key schedule. key must be 16,
// 24, 32, or 64 bytes; any other length is ErrInvalidKeySize. The key
// width selects Nk/Nr as a runtime parameter of the key, not a
// compile-time configuration.
func NewContext(key []byte) (*Context, error) {
	p, ok := sizes.Lookup(len(key))
	if !ok {
		return nil, ErrInvalidKeySize
	}

	roundKeys := keyschedule.Expand(key, p)
	invariant(len(roundKeys) == p.RoundKeySize(), "expanded schedule size does not match RoundKeySize for this key width")

	ctx := &Context{
		params:    p,
		roundKeys: roundKeys,
		cipher:    block.New(roundKeys, p.Nr),
	}

	// Belt-and-suspenders zeroization: Close is the primary release
	// path, the finalizer is a safety net for callers that forget it,
	// standing in for a deterministic destructor Go doesn't have.
	runtime.SetFinalizer(ctx, (*Context).finalize)

	return ctx, nil
}

func (c *Context) finalize() {
	keyschedule.Zero(c.roundKeys)
}

// Close zeroizes the round-key buffer. The Context must not be used
// again afterward.
func (c *Context) Close() {
	runtime.SetFinalizer(c, nil)
	keyschedule.Zero(c.roundKeys)
}

// Is512 reports whether this context was built from the non-standard
// 512-bit extension.
func (c *Context) Is512() bool {
	return c.params.Is512()
}

// hashSubkey computes H = cipher(0^128), fresh per call — cheap
// enough that no cross-call caching is needed, and caching would be
// one more piece of mutable state to keep thread-safe.
func (c *Context) hashSubkey() [16]byte {
	var zero, h [16]byte
	c.cipher.Encrypt(&h, &zero)
	return h
}

// deriveJ0 derives the pre-counter block J0 from the hash subkey and
// an IV of any length. A 96-bit IV gets the cheap concatenation form;
// anything else (zero length is rejected by the caller before this is
// reached) goes through GHASH. The two branches are intentionally not
// aliases of each other even when they'd describe "the same" logical
// IV — a 96-bit IV never takes the GHASH path, by construction.
func deriveJ0(h [16]byte, iv []byte) ctrmode.Block {
	if len(iv) == standardIVSize {
		var j0 ctrmode.Block
		copy(j0[:standardIVSize], iv)
		j0[15] = 1
		return j0
	}

	gh := ghash.New(h)
	gh.Write(iv)
	lengthBlock := ghash.LengthBlock(0, len(iv))
	gh.Write(lengthBlock[:])
	return ctrmode.Block(gh.Sum())
}

// tag computes GHASH(AAD || pad || C || pad || lengths) XOR EK0.
func (c *Context) tag(h [16]byte, ek0 [16]byte, aad, ciphertext []byte) [16]byte {
	gh := ghash.New(h)
	gh.Write(aad)
	gh.Write(ciphertext)
	lengthBlock := ghash.LengthBlock(len(aad), len(ciphertext))
	gh.Write(lengthBlock[:])

	s := gh.Sum()

	var out [16]byte
	for i := range out {
		out[i] = s[i] ^ ek0[i]
	}
	return out
}

// Seal encrypts plaintext under iv, authenticating aad alongside it,
// and returns the ciphertext (same length as plaintext) and a 16-byte
// tag. iv must be at least one byte; aad and plaintext may be empty.
func (c *Context) Seal(iv, aad, plaintext []byte) (ciphertext, tag []byte, err error) {
	if len(iv) == 0 {
		return nil, nil, ErrInvalidArgument
	}
	if len(plaintext) > maxPlaintextBytes {
		return nil, nil, ErrInvalidArgument
	}

	h := c.hashSubkey()
	j0 := deriveJ0(h, iv)

	var j0Bytes, ek0 [16]byte
	j0Bytes = [16]byte(j0)
	c.cipher.Encrypt(&ek0, &j0Bytes)

	ciphertext = make([]byte, len(plaintext))
	counter := j0
	ctrmode.Inc32(&counter)
	ctrmode.XORKeyStream(c.cipher, counter, ciphertext, plaintext)

	tagBytes := c.tag(h, ek0, aad, ciphertext)
	return ciphertext, tagBytes[:], nil
}

// Open authenticates ciphertext and tag against iv and aad, and on
// success decrypts ciphertext into plaintext. On a tag mismatch it
// returns ErrAuthFailure and an all-zero buffer of len(ciphertext) —
// the zeroed return, not just the error, is part of the contract:
// callers must not be able to read stale partial plaintext out of a
// failed Open.
func (c *Context) Open(iv, aad, ciphertext, tag []byte) (plaintext []byte, err error) {
	if len(iv) == 0 {
		return nil, ErrInvalidArgument
	}
	if len(tag) != TagSize {
		return nil, ErrInvalidArgument
	}
	if len(ciphertext) > maxPlaintextBytes {
		return nil, ErrInvalidArgument
	}

	h := c.hashSubkey()
	j0 := deriveJ0(h, iv)

	var j0Bytes, ek0 [16]byte
	j0Bytes = [16]byte(j0)
	c.cipher.Encrypt(&ek0, &j0Bytes)

	expected := c.tag(h, ek0, aad, ciphertext)
	plaintext = make([]byte, len(ciphertext))

	if !constantTimeEqual(expected[:], tag) {
		return plaintext, ErrAuthFailure
	}

	counter := j0
	ctrmode.Inc32(&counter)
	ctrmode.XORKeyStream(c.cipher, counter, plaintext, ciphertext)

	return plaintext, nil
}

// constantTimeEqual accumulates the XOR of every byte pair into a
// single accumulator and branches on it exactly once, at the end — the
// loop runs len(a) iterations regardless of where (or whether) a and b
// first differ. Callers always invoke this with len(a) == len(b) ==
// TagSize; it does not itself special-case a length mismatch because
// one can't occur here.
func constantTimeEqual(a, b []byte) bool {
	var v byte
	for i := 0; i < len(a); i++ {
		v |= a[i] ^ b[i]
	}
	return v == 0
}
