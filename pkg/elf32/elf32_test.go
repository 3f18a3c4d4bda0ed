package elf32

import (
	"bytes"
	"testing"

	"github.com/orizon-lang/elf32/pkg/elf32/enum"
	"github.com/orizon-lang/elf32/pkg/elf32/record"
)

func TestEmptyExecutableHeaderBytes(t *testing.T) {
	c := New(enum.ELFDATA2LSB, enum.ET_EXEC, enum.EM_NONE)
	out, err := c.Serialize()
	if err != nil {
		t.Fatalf("serialize error: %v", err)
	}
	if !bytes.Equal(out[:4], []byte{0x7F, 0x45, 0x4C, 0x46}) {
		t.Fatalf("bad magic: % X", out[:4])
	}
	if out[4] != 0x01 {
		t.Fatalf("expected class byte 0x01, got 0x%02X", out[4])
	}
	if out[5] != 0x01 {
		t.Fatalf("expected data byte 0x01, got 0x%02X", out[5])
	}
	if out[16] != 0x02 || out[17] != 0x00 {
		t.Fatalf("expected e_type EXEC little-endian at 16..18, got % X", out[16:18])
	}
	if out[40] != 0x34 || out[41] != 0x00 {
		t.Fatalf("expected e_ehsize=0x34 at 40..42, got % X", out[40:42])
	}
	shstrndxOff := record.EhdrSize - 2
	if out[shstrndxOff] != 0x01 || out[shstrndxOff+1] != 0x00 {
		t.Fatalf("expected e_shstrndx=1 in the last 2 header bytes, got % X", out[shstrndxOff:record.EhdrSize])
	}
}

func TestDynRoundTripEndianness(t *testing.T) {
	little := record.NewDynVal(enum.DT_ENCODING, 0x04030201)
	enc := little.Encode(true)
	want := []byte{0x20, 0, 0, 0, 0x01, 0x02, 0x03, 0x04}
	if !bytes.Equal(enc, want) {
		t.Fatalf("got % X want % X", enc, want)
	}

	big := record.NewDynVal(enum.DT_ENCODING, 0x04030201)
	encBig := big.Encode(false)
	wantBig := []byte{0, 0, 0, 0x20, 0x04, 0x03, 0x02, 0x01}
	if !bytes.Equal(encBig, wantBig) {
		t.Fatalf("got % X want % X", encBig, wantBig)
	}

	for _, tc := range []struct {
		enc    []byte
		little bool
	}{{enc, true}, {encBig, false}} {
		got, _, err := record.DecodeDyn(tc.enc, tc.little)
		if err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if got.Tag != enum.DT_ENCODING || got.Val != 0x04030201 {
			t.Fatalf("got %+v", got)
		}
	}
}

func TestAppendSectionLittleEndianHeaderPrefix(t *testing.T) {
	c := New(enum.ELFDATA2LSB, enum.ET_EXEC, enum.EM_NONE)
	payload := []byte{0x20, 0, 0, 0, 1, 2, 3, 4, 0, 0, 0, 5, 0x37, 0x13, 0, 0}
	if _, err := c.AppendSection(".dynamic", payload, 0x1337); err != nil {
		t.Fatalf("append section error: %v", err)
	}
	out, err := c.Serialize()
	if err != nil {
		t.Fatalf("serialize error: %v", err)
	}

	want := []byte{
		0x7f, 'E', 'L', 'F', 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, // ident
		0x02, 0x00, // e_type EXEC
		0x00, 0x00, // e_machine NONE
		0x01, 0x00, 0x00, 0x00, // e_version
		0x00, 0x00, 0x00, 0x00, // e_entry
		0x34, 0x00, 0x00, 0x00, // e_phoff
		0x54, 0x00, 0x00, 0x00, // e_shoff
		0x00, 0x00, 0x00, 0x00, // e_flags
		0x34, 0x00, // e_ehsize
		0x20, 0x00, // e_phentsize
		0x01, 0x00, // e_phnum
		0x28, 0x00, // e_shentsize
		0x03, 0x00, // e_shnum
		0x01, 0x00, // e_shstrndx
	}
	if !bytes.Equal(out[:len(want)], want) {
		t.Fatalf("header mismatch:\ngot  % X\nwant % X", out[:len(want)], want)
	}
}

func TestAppendSymbolScenario(t *testing.T) {
	c := New(enum.ELFDATA2LSB, enum.ET_EXEC, enum.EM_NONE)
	textIdx, err := c.AppendSection(".text", make([]byte, 16), 0)
	if err != nil {
		t.Fatalf("append section error: %v", err)
	}

	symIdx, err := c.AppendSymbol("main", enum.SHN(uint32(textIdx)), 0, 16, enum.STB_GLOBAL, enum.STT_FUNC, enum.STV_DEFAULT)
	if err != nil {
		t.Fatalf("append symbol error: %v", err)
	}
	if symIdx != 1 {
		t.Fatalf("expected symbol index 1, got %d", symIdx)
	}

	strtabIdx, err := c.SectionIndexByName(".strtab")
	if err != nil {
		t.Fatalf("strtab lookup error: %v", err)
	}
	strtab, err := c.StringTableAt(strtabIdx)
	if err != nil {
		t.Fatalf("strtab upgrade error: %v", err)
	}
	if !bytes.Equal(strtab.Bytes(true), []byte("\x00main\x00")) {
		t.Fatalf("unexpected strtab contents: %q", strtab.Bytes(true))
	}

	symtabIdx, err := c.SectionIndexByName(".symtab")
	if err != nil {
		t.Fatalf("symtab lookup error: %v", err)
	}
	symtab, err := c.SymbolTableAt(symtabIdx)
	if err != nil {
		t.Fatalf("symtab upgrade error: %v", err)
	}
	if symtab.Count() != 2 {
		t.Fatalf("expected 2 symtab entries, got %d", symtab.Count())
	}
	main := symtab.At(1)
	if main.Name != 1 || main.Value != 0 || main.Size != 16 {
		t.Fatalf("unexpected symbol: %+v", main)
	}
	if enum.PackInfo(main.Bind, main.Type) != 0x12 {
		t.Fatalf("expected st_info 0x12, got 0x%02X", enum.PackInfo(main.Bind, main.Type))
	}
	if main.Shndx != enum.SHN(uint32(textIdx)) {
		t.Fatalf("expected st_shndx=%d, got %v", textIdx, main.Shndx)
	}
	if c.Shdrs[symtabIdx].Info != 2 {
		t.Fatalf("expected symtab sh_info=2, got %d", c.Shdrs[symtabIdx].Info)
	}
}

func TestSegmentBindsToSectionOffset(t *testing.T) {
	c := New(enum.ELFDATA2LSB, enum.ET_EXEC, enum.EM_NONE)
	textIdx, err := c.AppendSection(".text", make([]byte, 16), 0)
	if err != nil {
		t.Fatalf("append section error: %v", err)
	}
	if _, err := c.AppendSymbol("main", enum.SHN(uint32(textIdx)), 0, 16, enum.STB_GLOBAL, enum.STT_FUNC, enum.STV_DEFAULT); err != nil {
		t.Fatalf("append symbol error: %v", err)
	}

	vaddr := uint32(0xDEADBEEF)
	memSize := uint32(16)
	segIdx, err := c.AppendSegment(textIdx, &vaddr, &memSize, enum.PF_R|enum.PF_X)
	if err != nil {
		t.Fatalf("append segment error: %v", err)
	}

	placeholder := c.Phdrs[0]
	if placeholder.Type != enum.PT_LOAD || placeholder.Vaddr != 0 {
		t.Fatalf("placeholder segment changed: %+v", placeholder)
	}

	seg := c.Phdrs[segIdx]
	if seg.Vaddr != 0xDEADBEEF || seg.Filesz != 16 || seg.Memsz != 16 {
		t.Fatalf("unexpected segment: %+v", seg)
	}
	if seg.Flags != (enum.PF_R | enum.PF_X) {
		t.Fatalf("expected flags R|X, got %v", seg.Flags)
	}

	if _, err := c.Serialize(); err != nil {
		t.Fatalf("serialize error: %v", err)
	}
	if c.Shdrs[textIdx].Offset != c.Phdrs[segIdx].Offset {
		t.Fatalf(".text sh_offset=%d != bound segment p_offset=%d", c.Shdrs[textIdx].Offset, c.Phdrs[segIdx].Offset)
	}
}

func TestDeserializeReserializeIdentical(t *testing.T) {
	prefix := []byte{0x7F, 0x45, 0x4C, 0x46, 0x01, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	id, rest, err := record.DecodeIdent(prefix)
	if err != nil {
		t.Fatalf("decode ident error: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("expected no remainder, got %d bytes", len(rest))
	}
	if !bytes.Equal(id.Encode(), prefix) {
		t.Fatalf("re-encoded ident differs: got % X want % X", id.Encode(), prefix)
	}
}

func TestContainerRoundTripWithOpaquePayload(t *testing.T) {
	c := New(enum.ELFDATA2MSB, enum.ET_REL, enum.EM_386)
	if _, err := c.AppendSection(".text", []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0x1000); err != nil {
		t.Fatalf("append section error: %v", err)
	}
	out, err := c.Serialize()
	if err != nil {
		t.Fatalf("serialize error: %v", err)
	}

	got, err := Deserialize(out)
	if err != nil {
		t.Fatalf("deserialize error: %v", err)
	}
	if !got.Ehdr.Equal(c.Ehdr) {
		t.Fatalf("header mismatch:\ngot  %+v\nwant %+v", got.Ehdr, c.Ehdr)
	}
	if len(got.Shdrs) != len(c.Shdrs) {
		t.Fatalf("section count mismatch: got %d want %d", len(got.Shdrs), len(c.Shdrs))
	}
	textIdx, err := got.SectionIndexByName(".text")
	if err != nil {
		t.Fatalf("section lookup error: %v", err)
	}
	if _, ok := got.Sections[textIdx].(RawSection); !ok {
		t.Fatalf("expected .text to decode as RawSection before typed access, got %T", got.Sections[textIdx])
	}
	if !bytes.Equal(got.Sections[textIdx].Bytes(false), []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Fatalf("payload mismatch: % X", got.Sections[textIdx].Bytes(false))
	}

	out2, err := got.Serialize()
	if err != nil {
		t.Fatalf("re-serialize error: %v", err)
	}
	if !bytes.Equal(out, out2) {
		t.Fatalf("round trip not byte-identical")
	}
}

func TestWithoutPlaceholderSegment(t *testing.T) {
	c := New(enum.ELFDATA2LSB, enum.ET_EXEC, enum.EM_NONE, WithoutPlaceholderSegment())
	if len(c.Phdrs) != 0 {
		t.Fatalf("expected no placeholder segment, got %d", len(c.Phdrs))
	}
}

func TestAppendSpecialSectionUnsupportedName(t *testing.T) {
	c := New(enum.ELFDATA2LSB, enum.ET_REL, enum.EM_NONE)
	if _, err := c.AppendSpecialSection(".bogus"); err == nil {
		t.Fatal("expected error for unsupported special section name")
	}
}

func TestAppendSegmentWrongElfType(t *testing.T) {
	c := New(enum.ELFDATA2LSB, enum.ET_REL, enum.EM_NONE)
	idx, err := c.AppendSection(".text", []byte{1}, 0)
	if err != nil {
		t.Fatalf("append section error: %v", err)
	}
	if _, err := c.AppendSegment(idx, nil, nil, enum.PF_R); err == nil {
		t.Fatal("expected error appending segment to a non-executable/shared object")
	}
}
