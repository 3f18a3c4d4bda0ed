package record

import (
	"testing"

	"github.com/orizon-lang/elf32/pkg/elf32/enum"
)

func TestIdentRoundTrip(t *testing.T) {
	for _, little := range []bool{true, false} {
		data := enum.ELFDATA2MSB
		if little {
			data = enum.ELFDATA2LSB
		}
		id := NewIdent(data, enum.ELFOSABI_LINUX)
		enc := id.Encode()
		if len(enc) != 16 {
			t.Fatalf("expected 16 bytes, got %d", len(enc))
		}
		got, rest, err := DecodeIdent(append(enc, 0xFF))
		if err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if !got.Equal(id) {
			t.Fatalf("got %+v want %+v", got, id)
		}
		if len(rest) != 1 || rest[0] != 0xFF {
			t.Fatalf("rest mismatch: %v", rest)
		}
	}
}

func TestDecodeIdentWrongMagic(t *testing.T) {
	b := make([]byte, 16)
	copy(b, []byte{0, 0, 0, 0})
	if _, _, err := DecodeIdent(b); err == nil {
		t.Fatal("expected error for missing magic")
	}
}

func TestEhdrRoundTrip(t *testing.T) {
	h := Ehdr{
		Ident:     NewIdent(enum.ELFDATA2LSB, enum.ELFOSABI_NONE),
		Type:      enum.ET_EXEC,
		Machine:   enum.EM_X86_64,
		Version:   1,
		Entry:     0x400000,
		Phoff:     52,
		Shoff:     1000,
		Flags:     0,
		Ehsize:    EhdrSize,
		Phentsize: PhdrSize,
		Phnum:     1,
		Shentsize: ShdrSize,
		Shnum:     3,
		Shstrndx:  2,
	}
	enc := h.Encode()
	if len(enc) != EhdrSize {
		t.Fatalf("expected %d bytes, got %d", EhdrSize, len(enc))
	}
	got, rest, err := DecodeEhdr(append(enc, 1, 2, 3))
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !got.Equal(h) {
		t.Fatalf("got %+v want %+v", got, h)
	}
	if len(rest) != 3 {
		t.Fatalf("rest mismatch: %v", rest)
	}
}

func TestPhdrRoundTrip(t *testing.T) {
	for _, little := range []bool{true, false} {
		h := Phdr{
			Type: enum.PT_LOAD, Offset: 0x54, Vaddr: 0x1000, Paddr: 0x1000,
			Filesz: 0x200, Memsz: 0x300, Flags: enum.PF_R | enum.PF_X, Align: 0x1000,
		}
		enc := h.Encode(little)
		if len(enc) != PhdrSize {
			t.Fatalf("expected %d bytes, got %d", PhdrSize, len(enc))
		}
		got, _, err := DecodePhdr(enc, little)
		if err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if !got.Equal(h) {
			t.Fatalf("got %+v want %+v", got, h)
		}
	}
}

func TestShdrRoundTrip(t *testing.T) {
	for _, little := range []bool{true, false} {
		h := Shdr{
			Name: 1, Type: enum.SHT_PROGBITS, Flags: enum.SHF_ALLOC | enum.SHF_EXECINSTR,
			Addr: 0x1000, Offset: 0x54, Size: 0x200, Link: 0, Info: 0, Addralign: 4, Entsize: 0,
		}
		enc := h.Encode(little)
		if len(enc) != ShdrSize {
			t.Fatalf("expected %d bytes, got %d", ShdrSize, len(enc))
		}
		got, _, err := DecodeShdr(enc, little)
		if err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if !got.Equal(h) {
			t.Fatalf("got %+v want %+v", got, h)
		}
	}
}

func TestSymRoundTrip(t *testing.T) {
	for _, little := range []bool{true, false} {
		s := Sym{
			Name: 5, Value: 0x400100, Size: 16,
			Bind: enum.STB_GLOBAL, Type: enum.STT_FUNC, Other: enum.STV_DEFAULT,
			Shndx: enum.SHN(1),
		}
		enc := s.Encode(little)
		if len(enc) != SymSize {
			t.Fatalf("expected %d bytes, got %d", SymSize, len(enc))
		}
		got, _, err := DecodeSym(enc, little)
		if err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if !got.Equal(s) {
			t.Fatalf("got %+v want %+v", got, s)
		}
	}
}

func TestDynRoundTripVal(t *testing.T) {
	for _, little := range []bool{true, false} {
		d := NewDynVal(enum.DT_STRSZ, 1234)
		enc := d.Encode(little)
		if len(enc) != DynSize {
			t.Fatalf("expected %d bytes, got %d", DynSize, len(enc))
		}
		got, _, err := DecodeDyn(enc, little)
		if err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if !got.Equal(d) {
			t.Fatalf("got %+v want %+v", got, d)
		}
	}
}

func TestDynRoundTripPtr(t *testing.T) {
	for _, little := range []bool{true, false} {
		d := NewDynPtr(enum.DT_STRTAB, 0x2000)
		enc := d.Encode(little)
		got, _, err := DecodeDyn(enc, little)
		if err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if !got.Equal(d) {
			t.Fatalf("got %+v want %+v", got, d)
		}
	}
}

func TestDecodeEhdrShortInput(t *testing.T) {
	if _, _, err := DecodeEhdr([]byte{0x7f, 'E', 'L', 'F'}); err == nil {
		t.Fatal("expected error for short input")
	}
}
