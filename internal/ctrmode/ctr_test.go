package ctrmode

import (
	"testing"

	"github.com/TheMapleseed/AES-GCM-512/internal/block"
	"github.com/TheMapleseed/AES-GCM-512/internal/keyschedule"
	"github.com/TheMapleseed/AES-GCM-512/internal/sizes"
)

func TestInc32WrapsWithoutCarryingPastByte11(t *testing.T) {
	var b Block
	for i := 12; i < 16; i++ {
		b[i] = 0xff
	}
	b[11] = 0x42

	Inc32(&b)

	for i := 12; i < 16; i++ {
		if b[i] != 0 {
			t.Fatalf("counter subfield = %x, want all zero after wraparound", b[12:16])
		}
	}
	if b[11] != 0x42 {
		t.Fatalf("byte 11 = %x, want unchanged at 0x42 (no carry past the counter subfield)", b[11])
	}
}

func TestInc32OnlyTouchesLastFourBytes(t *testing.T) {
	var b Block
	copy(b[:12], []byte("prefix123456"))

	Inc32(&b)

	if string(b[:12]) != "prefix123456" {
		t.Fatalf("Inc32 modified the 12-byte prefix: %q", b[:12])
	}
	if b[15] != 1 {
		t.Fatalf("counter = %d, want 1", b[15])
	}
}

func TestXORKeyStreamRoundTrips(t *testing.T) {
	key := make([]byte, 16)
	p, _ := sizes.Lookup(16)
	roundKeys := keyschedule.Expand(key, p)
	c := block.New(roundKeys, p.Nr)

	var counter Block
	counter[15] = 1

	plaintext := []byte("a message that is not block aligned!!")
	ciphertext := make([]byte, len(plaintext))
	XORKeyStream(c, counter, ciphertext, plaintext)

	recovered := make([]byte, len(ciphertext))
	XORKeyStream(c, counter, recovered, ciphertext)

	if string(recovered) != string(plaintext) {
		t.Fatalf("round-trip failed: got %q, want %q", recovered, plaintext)
	}
}

func TestXORKeyStreamDoesNotMutateCallersCounter(t *testing.T) {
	key := make([]byte, 16)
	p, _ := sizes.Lookup(16)
	roundKeys := keyschedule.Expand(key, p)
	c := block.New(roundKeys, p.Nr)

	var counter Block
	counter[15] = 1
	original := counter

	buf := make([]byte, 64)
	XORKeyStream(c, counter, buf, buf)

	if counter != original {
		t.Fatal("XORKeyStream must take counter by value and never mutate the caller's copy")
	}
}
