package aesgcm512

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// TestNISTCase2 is NIST SP 800-38D Test Case 2: all-zero key and IV,
// empty AAD, one block of zero plaintext.
func TestNISTCase2(t *testing.T) {
	key := hexBytes(t, "00000000000000000000000000000000")[:16]
	iv := hexBytes(t, "000000000000000000000000")
	pt := hexBytes(t, "00000000000000000000000000000000")[:16]

	ctx, err := NewContext(key)
	require.NoError(t, err)
	defer ctx.Close()

	ct, tag, err := ctx.Seal(iv, nil, pt)
	require.NoError(t, err)

	assert.Equal(t, "0388dace60b6a392f328c2b971b2fe78", hex.EncodeToString(ct))
	assert.Equal(t, "ab6e47d42cec13bdf53a67b21257bddf", hex.EncodeToString(tag))

	recovered, err := ctx.Open(iv, nil, ct, tag)
	require.NoError(t, err)
	assert.Equal(t, pt, recovered)
}

// TestNISTCase3 is NIST SP 800-38D Test Case 3: non-trivial key/IV,
// empty AAD, multi-block plaintext.
func TestNISTCase3(t *testing.T) {
	key := hexBytes(t, "feffe9928665731c6d6a8f9467308308")
	iv := hexBytes(t, "cafebabefacedbaddecaf888")
	pt := hexBytes(t, "d9313225f88406e5a55909c5aff5269a86a7a9531534f7da2e4c303d8a318a721c3c0c95956809532fcf0e2449a6b525b16aedf5aa0de657ba637b391aafd255")

	ctx, err := NewContext(key)
	require.NoError(t, err)
	defer ctx.Close()

	_, tag, err := ctx.Seal(iv, nil, pt)
	require.NoError(t, err)
	assert.Equal(t, "4d5c2af327cd64a62cf35abd2ba6fab4", hex.EncodeToString(tag))
}

// TestNISTCase4 is NIST SP 800-38D Test Case 4: same key/IV as case 3,
// with AAD and a plaintext four bytes shorter than case 3's.
func TestNISTCase4(t *testing.T) {
	key := hexBytes(t, "feffe9928665731c6d6a8f9467308308")
	iv := hexBytes(t, "cafebabefacedbaddecaf888")
	aad := hexBytes(t, "feedfacedeadbeeffeedfacedeadbeefabaddad2")
	pt := hexBytes(t, "d9313225f88406e5a55909c5aff5269a86a7a9531534f7da2e4c303d8a318a721c3c0c95956809532fcf0e2449a6b525b16aedf5aa0de657ba637b39")

	ctx, err := NewContext(key)
	require.NoError(t, err)
	defer ctx.Close()

	_, tag, err := ctx.Seal(iv, aad, pt)
	require.NoError(t, err)
	assert.Equal(t, "5bc94fbc3221a5db94fae95ae7121a47", hex.EncodeToString(tag))
}

// TestEmptyPlaintext checks that an empty plaintext still produces a
// 16-byte tag derived purely from AAD and lengths.
func TestEmptyPlaintext(t *testing.T) {
	key := make([]byte, 32)
	iv := make([]byte, 12)
	iv[0] = 0x7

	ctx, err := NewContext(key)
	require.NoError(t, err)
	defer ctx.Close()

	ct, tag, err := ctx.Seal(iv, []byte("header"), nil)
	require.NoError(t, err)
	assert.Empty(t, ct)
	assert.Len(t, tag, TagSize)

	pt, err := ctx.Open(iv, []byte("header"), ct, tag)
	require.NoError(t, err)
	assert.Empty(t, pt)
}

// TestAuthFailureZeroesOutput checks that flipping a tag bit fails
// decryption and that the returned plaintext is all zero, never a
// partially-decrypted buffer.
func TestAuthFailureZeroesOutput(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 12)
	iv[0] = 1

	ctx, err := NewContext(key)
	require.NoError(t, err)
	defer ctx.Close()

	ct, tag, err := ctx.Seal(iv, nil, []byte("attack at dawn"))
	require.NoError(t, err)

	tag[0] ^= 0x01

	pt, err := ctx.Open(iv, nil, ct, tag)
	assert.ErrorIs(t, err, ErrAuthFailure)
	for _, b := range pt {
		assert.Zero(t, b)
	}
}

// TestTagSensitivity checks that a single flipped bit anywhere in
// ciphertext, AAD, tag, or IV breaks authentication.
func TestTagSensitivity(t *testing.T) {
	key := make([]byte, 24)
	iv := []byte("unique-iv-12")
	aad := []byte("associated-data")
	pt := []byte("the quick brown fox jumps")

	ctx, err := NewContext(key)
	require.NoError(t, err)
	defer ctx.Close()

	ct, tag, err := ctx.Seal(iv, aad, pt)
	require.NoError(t, err)

	t.Run("ciphertext bit flip", func(t *testing.T) {
		corrupt := append([]byte{}, ct...)
		corrupt[0] ^= 0x01
		_, err := ctx.Open(iv, aad, corrupt, tag)
		assert.ErrorIs(t, err, ErrAuthFailure)
	})

	t.Run("aad bit flip", func(t *testing.T) {
		corrupt := append([]byte{}, aad...)
		corrupt[0] ^= 0x01
		_, err := ctx.Open(iv, corrupt, ct, tag)
		assert.ErrorIs(t, err, ErrAuthFailure)
	})

	t.Run("tag bit flip", func(t *testing.T) {
		corrupt := append([]byte{}, tag...)
		corrupt[0] ^= 0x01
		_, err := ctx.Open(iv, aad, ct, corrupt)
		assert.ErrorIs(t, err, ErrAuthFailure)
	})

	t.Run("iv bit flip", func(t *testing.T) {
		corruptIV := append([]byte{}, iv...)
		corruptIV[0] ^= 0x01
		_, err := ctx.Open(corruptIV, aad, ct, tag)
		assert.ErrorIs(t, err, ErrAuthFailure)
	})
}

// TestIVLengthBranchesDiverge checks that a 96-bit IV is not an alias
// for the same bytes run through the GHASH-based J0 path.
func TestIVLengthBranchesDiverge(t *testing.T) {
	key := make([]byte, 16)
	pt := []byte("payload")

	ctx, err := NewContext(key)
	require.NoError(t, err)
	defer ctx.Close()

	iv96 := make([]byte, 12)
	for i := range iv96 {
		iv96[i] = byte(i)
	}

	// Same 12 content bytes, but padded out to a non-96-bit length so
	// it takes the GHASH branch instead of the direct-concatenation
	// branch.
	ivPadded := append(append([]byte{}, iv96...), 0, 0, 0, 0)

	_, tag96, err := ctx.Seal(iv96, nil, pt)
	require.NoError(t, err)

	_, tagPadded, err := ctx.Seal(ivPadded, nil, pt)
	require.NoError(t, err)

	assert.NotEqual(t, tag96, tagPadded)
}

// TestEmptyAADEquivalence checks that passing nil AAD and passing an
// explicit empty slice are indistinguishable, and that two runs with
// identical inputs produce identical output.
func TestEmptyAADEquivalence(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 12)
	pt := []byte("same every time")

	ctx, err := NewContext(key)
	require.NoError(t, err)
	defer ctx.Close()

	ct1, tag1, err := ctx.Seal(iv, nil, pt)
	require.NoError(t, err)

	ct2, tag2, err := ctx.Seal(iv, []byte{}, pt)
	require.NoError(t, err)

	assert.Equal(t, ct1, ct2)
	assert.Equal(t, tag1, tag2)
}

// TestLengthCorrectness checks that ciphertext length always equals
// plaintext length and the tag is always TagSize bytes.
func TestLengthCorrectness(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 12)
	pt := make([]byte, 137)

	ctx, err := NewContext(key)
	require.NoError(t, err)
	defer ctx.Close()

	ct, tag, err := ctx.Seal(iv, nil, pt)
	require.NoError(t, err)
	assert.Len(t, ct, len(pt))
	assert.Len(t, tag, TagSize)
}

func TestConstantTimeCompareRunsFixedIterationCount(t *testing.T) {
	equal := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	differsAtStart := append([]byte{}, equal...)
	differsAtStart[0] ^= 1
	differsAtEnd := append([]byte{}, equal...)
	differsAtEnd[15] ^= 1

	assert.True(t, constantTimeEqual(equal, equal))
	assert.False(t, constantTimeEqual(equal, differsAtStart))
	assert.False(t, constantTimeEqual(equal, differsAtEnd))

	// A compare that stopped at the first differing byte would never
	// index b[15]. With b one byte short and differing at byte 0, the
	// out-of-range panic shows the loop still ran all len(a) iterations.
	assert.Panics(t, func() { constantTimeEqual(equal, differsAtStart[:15]) })
}

// TestAllKeyWidthsRoundTrip round-trips every supported width,
// including AES-192, AES-256, and the non-standard 512-bit extension,
// none of which the NIST vectors above exercise (they're all AES-128).
func TestAllKeyWidthsRoundTrip(t *testing.T) {
	for _, keyLen := range []int{16, 24, 32, 64} {
		key := make([]byte, keyLen)
		for i := range key {
			key[i] = byte(i * 7)
		}

		iv := make([]byte, 12)
		iv[0] = byte(keyLen)
		aad := []byte("metadata")
		pt := []byte("round trip across every supported key width")

		ctx, err := NewContext(key)
		require.NoError(t, err, "keyLen=%d", keyLen)

		ct, tag, err := ctx.Seal(iv, aad, pt)
		require.NoError(t, err, "keyLen=%d", keyLen)

		recovered, err := ctx.Open(iv, aad, ct, tag)
		require.NoError(t, err, "keyLen=%d", keyLen)
		assert.Equal(t, pt, recovered, "keyLen=%d", keyLen)

		ctx.Close()
	}
}

func TestNewContextRejectsInvalidKeySize(t *testing.T) {
	_, err := NewContext(make([]byte, 20))
	assert.ErrorIs(t, err, ErrInvalidKeySize)
}

func TestSealRejectsEmptyIV(t *testing.T) {
	ctx, err := NewContext(make([]byte, 16))
	require.NoError(t, err)
	defer ctx.Close()

	_, _, err = ctx.Seal(nil, nil, []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOpenRejectsWrongTagLength(t *testing.T) {
	ctx, err := NewContext(make([]byte, 16))
	require.NoError(t, err)
	defer ctx.Close()

	_, err = ctx.Open(make([]byte, 12), nil, []byte("x"), make([]byte, 8))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCloseZeroizesRoundKeys(t *testing.T) {
	ctx, err := NewContext(make([]byte, 16))
	require.NoError(t, err)

	ctx.Close()

	for _, b := range ctx.roundKeys {
		assert.Zero(t, b)
	}
}
