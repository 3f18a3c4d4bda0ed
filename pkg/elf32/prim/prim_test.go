package prim

import "testing"

func TestEncodeDecodeUintRoundTrip(t *testing.T) {
	widths := []Width{Width8, Width16, Width24, Width32, Width64}
	for _, w := range widths {
		max := uint64(1)<<(8*uint(w)) - 1
		if w == Width64 {
			max = ^uint64(0)
		}
		for _, little := range []bool{true, false} {
			for _, x := range []uint64{0, 1, max, max / 2} {
				enc := EncodeUint(x, w, little)
				if len(enc) != int(w) {
					t.Fatalf("width %d: encoded length %d", w, len(enc))
				}
				got, rest, err := DecodeUint(append(enc, 0xAB, 0xCD), w, little)
				if err != nil {
					t.Fatalf("width %d: decode error: %v", w, err)
				}
				if got != x {
					t.Fatalf("width %d little=%v: got %d want %d", w, little, got, x)
				}
				if len(rest) != 2 || rest[0] != 0xAB || rest[1] != 0xCD {
					t.Fatalf("width %d: rest mismatch: %v", w, rest)
				}
			}
		}
	}
}

func TestDecodeUintShortInput(t *testing.T) {
	_, _, err := DecodeUint([]byte{1, 2}, Width32, true)
	if err == nil {
		t.Fatal("expected error for short input")
	}
}

func TestAlign(t *testing.T) {
	b := []byte{1, 2, 3}
	got := Align(b, 4)
	if len(got)%4 != 0 {
		t.Fatalf("length %d not aligned", len(got))
	}
	for i, v := range b {
		if got[i] != v {
			t.Fatalf("byte %d mismatch: got %d want %d", i, got[i], v)
		}
	}
	if Align(b, 1) == nil {
		t.Fatal("unexpected nil")
	}
}

func TestAlignIdempotent(t *testing.T) {
	b := Align([]byte{1, 2, 3, 4, 5}, 4)
	if len(b) != 8 {
		t.Fatalf("got %d want 8", len(b))
	}
	if len(Align(b, 4)) != 8 {
		t.Fatal("re-aligning an aligned buffer changed its length")
	}
}

func TestUnalign(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5, 6}
	got := Unalign(b, 4)
	want := []byte{5, 6}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestXOR(t *testing.T) {
	a := []byte{0x0F, 0xF0}
	b := []byte{0xFF, 0x0F}
	got := XOR(a, b)
	want := []byte{0xF0, 0xFF}
	if got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestPlaceAt(t *testing.T) {
	dst := make([]byte, 8)
	PlaceAt(dst, 2, []byte{1, 2, 3})
	want := []byte{0, 0, 1, 2, 3, 0, 0, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("byte %d: got %d want %d", i, dst[i], want[i])
		}
	}
}
