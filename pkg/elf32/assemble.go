package elf32

import (
	"fmt"

	"github.com/orizon-lang/elf32/pkg/elf32/elferr"
	"github.com/orizon-lang/elf32/pkg/elf32/enum"
	"github.com/orizon-lang/elf32/pkg/elf32/prim"
	"github.com/orizon-lang/elf32/pkg/elf32/record"
)

// Serialize assembles the container into a byte-exact ELF32 file image.
// It is a two-pass process, grounded on the offset-computation pattern in
// internal/debug's ELF writer: the first pass lays out the program header
// table, the section header table, and each section's payload in turn,
// recording every offset; the second pass binds any segment that is
// bound to a section (AppendSegment) to that section's now-known
// sh_offset, then emits the final concatenation.
func (c *Container) Serialize() ([]byte, error) {
	if len(c.Shdrs) != len(c.Sections) {
		return nil, elferr.ErrInconsistentContainer
	}
	little := c.Little()

	cursor := uint32(record.EhdrSize)

	if len(c.Phdrs) > 0 {
		c.Ehdr.Phoff = cursor
		c.Ehdr.Phentsize = record.PhdrSize
		c.Ehdr.Phnum = uint16(len(c.Phdrs))
		cursor += uint32(len(c.Phdrs)) * record.PhdrSize
	} else {
		c.Ehdr.Phoff = 0
		c.Ehdr.Phentsize = 0
		c.Ehdr.Phnum = 0
	}

	if len(c.Shdrs) > 0 {
		c.Ehdr.Shoff = cursor
		c.Ehdr.Shentsize = record.ShdrSize
		c.Ehdr.Shnum = uint16(len(c.Shdrs))
		cursor += uint32(len(c.Shdrs)) * record.ShdrSize
	} else {
		c.Ehdr.Shoff = 0
		c.Ehdr.Shentsize = 0
		c.Ehdr.Shnum = 0
	}

	for i := range c.Shdrs {
		size := uint32(c.Sections[i].Len(little))
		c.Shdrs[i].Offset = cursor
		c.Shdrs[i].Size = size
		cursor += size
	}

	for i, bound := range c.segBound {
		if bound < 0 {
			continue
		}
		c.Phdrs[i].Offset = c.Shdrs[bound].Offset
	}

	out := make([]byte, cursor)
	prim.PlaceAt(out, 0, c.Ehdr.Encode())
	for i, phdr := range c.Phdrs {
		prim.PlaceAt(out, int(c.Ehdr.Phoff)+i*record.PhdrSize, phdr.Encode(little))
	}
	for i, shdr := range c.Shdrs {
		prim.PlaceAt(out, int(c.Ehdr.Shoff)+i*record.ShdrSize, shdr.Encode(little))
	}
	for i, shdr := range c.Shdrs {
		prim.PlaceAt(out, int(shdr.Offset), c.Sections[i].Bytes(little))
	}

	return out, nil
}

// Deserialize rebuilds a Container from a byte-exact ELF32 file image.
// Every section payload comes back as RawSection, per spec: upgrading a
// section to its typed view (StringTable, SymbolTable, DynamicArray) is a
// caller-driven operation performed lazily on first access (see
// Container.StringTableAt / SymbolTableAt / DynamicArrayAt), never guessed
// from sh_type at decode time. This keeps an unrecognized or
// intentionally malformed section's bytes bit-exact through a
// deserialize/serialize cycle that never touches it.
func Deserialize(b []byte) (*Container, error) {
	ehdr, _, err := record.DecodeEhdr(b)
	if err != nil {
		return nil, err
	}
	little := ehdr.Ident.Little()

	c := &Container{Ehdr: ehdr}

	for i := 0; i < int(ehdr.Phnum); i++ {
		off := int(ehdr.Phoff) + i*int(ehdr.Phentsize)
		if off+record.PhdrSize > len(b) {
			return nil, fmt.Errorf("%w: program header %d out of range", elferr.ErrShortInput, i)
		}
		phdr, _, err := record.DecodePhdr(b[off:off+record.PhdrSize], little)
		if err != nil {
			return nil, err
		}
		c.Phdrs = append(c.Phdrs, phdr)
		c.segBound = append(c.segBound, -1)
	}

	for i := 0; i < int(ehdr.Shnum); i++ {
		off := int(ehdr.Shoff) + i*int(ehdr.Shentsize)
		if off+record.ShdrSize > len(b) {
			return nil, fmt.Errorf("%w: section header %d out of range", elferr.ErrShortInput, i)
		}
		shdr, _, err := record.DecodeShdr(b[off:off+record.ShdrSize], little)
		if err != nil {
			return nil, err
		}
		c.Shdrs = append(c.Shdrs, shdr)
	}

	for i, shdr := range c.Shdrs {
		start := int(shdr.Offset)
		end := start + int(shdr.Size)
		if shdr.Type == enum.SHT_NOBITS {
			end = start
		}
		if end > len(b) || start > end {
			return nil, fmt.Errorf("%w: section %d body out of range", elferr.ErrShortInput, i)
		}
		c.Sections = append(c.Sections, RawSection(append([]byte(nil), b[start:end]...)))
	}

	return c, nil
}
