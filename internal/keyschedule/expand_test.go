package keyschedule

import (
	"encoding/hex"
	"testing"

	"github.com/TheMapleseed/AES-GCM-512/internal/sizes"
)

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decoding %q: %v", s, err)
	}
	return b
}

// TestExpandAES128FirstRoundKey checks the schedule against the
// well-known FIPS-197 Appendix C.1 worked example.
func TestExpandAES128FirstRoundKey(t *testing.T) {
	key := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	p, ok := sizes.Lookup(len(key))
	if !ok {
		t.Fatal("unexpected: 16-byte key not recognized")
	}

	expanded := Expand(key, p)
	if len(expanded) != p.RoundKeySize() {
		t.Fatalf("round key size = %d, want %d", len(expanded), p.RoundKeySize())
	}

	round1 := expanded[16:32]
	want := mustDecode(t, "d6aa74fdd2af72fadaa678f1d6ab76fe")

	for i := range want {
		if round1[i] != want[i] {
			t.Fatalf("round key 1 = %x, want %x", round1, want)
		}
	}
}

func TestExpandSizePerWidth(t *testing.T) {
	cases := []struct {
		keyLen int
		nr     int
		size   int
	}{
		{16, 10, 176},
		{24, 12, 208},
		{32, 14, 240},
		{64, 22, 368},
	}

	for _, c := range cases {
		p, ok := sizes.Lookup(c.keyLen)
		if !ok {
			t.Fatalf("key length %d not recognized", c.keyLen)
		}
		if p.Nr != c.nr {
			t.Fatalf("keyLen=%d: Nr = %d, want %d", c.keyLen, p.Nr, c.nr)
		}

		key := make([]byte, c.keyLen)
		expanded := Expand(key, p)
		if len(expanded) != c.size {
			t.Fatalf("keyLen=%d: expanded size = %d, want %d", c.keyLen, len(expanded), c.size)
		}
	}
}

func TestRconTotalBeyondTabulatedRange(t *testing.T) {
	// Rcon must remain total for indices beyond a typical 11-entry
	// table (0..10) instead of panicking or indexing out of bounds.
	for idx := 1; idx <= 16; idx++ {
		_ = Rcon(idx)
	}
}

func TestZero(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	Zero(buf)
	for _, b := range buf {
		if b != 0 {
			t.Fatalf("Zero left non-zero byte: %v", buf)
		}
	}
}
