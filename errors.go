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

package aesgcm512

import "errors"

// The only three error kinds this package returns. AuthFailure
// deliberately carries no input-dependent detail, so a caller logging
// it can never build a timing or log-based oracle out of the message.
var (
	// ErrInvalidKeySize is returned by NewContext for any key whose
	// length isn't 16, 24, 32, or 64 bytes.
	ErrInvalidKeySize = errors.New("aesgcm512: invalid key size")

	// ErrInvalidArgument covers every syntactic precondition failure
	// other than key size: a zero-length IV, a tag of the wrong
	// length, or a plaintext longer than SP 800-38D §5.2.1.1 permits
	// for a single call.
	ErrInvalidArgument = errors.New("aesgcm512: invalid argument")

	// ErrAuthFailure is returned exclusively for a GCM tag mismatch.
	ErrAuthFailure = errors.New("aesgcm512: authentication failed")
)

// invariant panics if cond is false. It guards conditions that would
// indicate a bug inside this package rather than caller misuse. These
// can never occur under correct use, so they are fail-stop rather than
// returned as an error when they do.
func invariant(cond bool, msg string) {
	if !cond {
		panic("aesgcm512: internal inconsistency: " + msg)
	}
}
