package enum

import (
	"errors"
	"testing"

	"github.com/orizon-lang/elf32/pkg/elf32/elferr"
)

func TestELFCLASSRoundTrip(t *testing.T) {
	for _, little := range []bool{true, false} {
		for _, v := range []ELFCLASS{ELFCLASSNONE, ELFCLASS32, ELFCLASS64} {
			enc := v.Encode(little)
			if len(enc) != v.FieldWidth() {
				t.Fatalf("encoded length %d != field width %d", len(enc), v.FieldWidth())
			}
			got, rest, err := DecodeELFCLASS(append(enc, 0xAA), little)
			if err != nil {
				t.Fatalf("decode error: %v", err)
			}
			if got != v {
				t.Fatalf("got %v want %v", got, v)
			}
			if len(rest) != 1 || rest[0] != 0xAA {
				t.Fatalf("rest mismatch: %v", rest)
			}
		}
	}
}

func TestETUnknownValuePreserved(t *testing.T) {
	v := ET(0x1234)
	if v.IsKnown() {
		t.Fatal("expected unknown")
	}
	enc := v.Encode(false)
	got, _, err := DecodeET(enc, false)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got != v {
		t.Fatalf("got %v want %v", got, v)
	}
	if got.String() != "ET(0x1234)" {
		t.Fatalf("unexpected string: %s", got.String())
	}
}

func TestParseETUnknownName(t *testing.T) {
	_, err := ParseET("ET_BOGUS")
	if !errors.Is(err, elferr.ErrUnknownEnumName) {
		t.Fatalf("expected ErrUnknownEnumName, got %v", err)
	}
}

func TestParseETKnownName(t *testing.T) {
	v, err := ParseET("ET_EXEC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ET_EXEC {
		t.Fatalf("got %v want ET_EXEC", v)
	}
}

func TestELFOSABIAlias(t *testing.T) {
	v, err := ParseELFOSABI("ELFOSABI_LINUX")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ELFOSABI_GNU {
		t.Fatalf("ELFOSABI_LINUX should equal ELFOSABI_GNU, got %v", v)
	}
	if v.String() != "ELFOSABI_GNU" {
		t.Fatalf("expected canonical name ELFOSABI_GNU, got %s", v.String())
	}
}

func TestEMFieldWidthIsTwoBytes(t *testing.T) {
	if EM_NONE.FieldWidth() != 2 {
		t.Fatalf("expected EM field width 2, got %d", EM_NONE.FieldWidth())
	}
}

func TestEMOpenriscAlias(t *testing.T) {
	if EM_OPENRISC != EM_OR1K {
		t.Fatal("EM_OPENRISC should equal EM_OR1K")
	}
}

func TestPFBitmask(t *testing.T) {
	v := PF_R | PF_X
	if !v.Has(PF_R) || !v.Has(PF_X) {
		t.Fatal("expected both PF_R and PF_X set")
	}
	if v.Has(PF_W) {
		t.Fatal("did not expect PF_W set")
	}
}

func TestDTUsesPtr(t *testing.T) {
	if !DT_STRTAB.UsesPtr() {
		t.Fatal("DT_STRTAB should use d_ptr")
	}
	if DT_STRSZ.UsesPtr() {
		t.Fatal("DT_STRSZ should use d_val")
	}
}

func TestPackUnpackInfo(t *testing.T) {
	info := PackInfo(STB_GLOBAL, STT_FUNC)
	bind, typ := UnpackInfo(info)
	if bind != STB_GLOBAL || typ != STT_FUNC {
		t.Fatalf("got bind=%v type=%v", bind, typ)
	}
}
