package elf32

import (
	"fmt"

	"github.com/orizon-lang/elf32/pkg/elf32/elferr"
	"github.com/orizon-lang/elf32/pkg/elf32/enum"
	"github.com/orizon-lang/elf32/pkg/elf32/record"
)

// Container is the in-memory model of an ELF32 object file: a header, a
// parallel program-header and segment-binding list, and a parallel
// section-header and payload list. Every append keeps each pair of
// parallel lists the same length. AppendSection and Serialize check that
// Shdrs and Sections match and report a mismatch (a caller bypassed the
// helpers) as ErrInconsistentContainer.
type Container struct {
	Ehdr record.Ehdr

	Phdrs    []record.Phdr
	segBound []int // parallel to Phdrs; index into Sections this Phdr is bound to, or -1

	Shdrs    []record.Shdr
	Sections []Payload
}

// Little reports the endianness this container serializes with.
func (c *Container) Little() bool { return c.Ehdr.Ident.Little() }

// AppendSection appends a raw-byte section, registering its name in
// .shstrtab. It returns the new section's index.
func (c *Container) AppendSection(name string, data []byte, addr uint32) (int, error) {
	return c.appendSection(name, RawSection(data), addr, enum.SHT_PROGBITS, 0, 0, 1, 0)
}

func (c *Container) appendSection(name string, payload Payload, addr uint32, typ enum.SHT, flags enum.SHF, link, align, entsize uint32) (int, error) {
	if len(c.Shdrs) != len(c.Sections) {
		return 0, elferr.ErrInconsistentContainer
	}
	shstrtab, err := c.shstrtab()
	if err != nil {
		return 0, err
	}
	nameOff, err := shstrtab.Append(name)
	if err != nil {
		return 0, err
	}
	shdr := record.Shdr{
		Name:      nameOff,
		Type:      typ,
		Flags:     flags,
		Addr:      addr,
		Size:      uint32(payload.Len(c.Little())),
		Link:      link,
		Addralign: align,
		Entsize:   entsize,
	}
	idx := len(c.Shdrs)
	c.Shdrs = append(c.Shdrs, shdr)
	c.Sections = append(c.Sections, payload)
	return idx, nil
}

// AppendSpecialSection appends one of the structured special sections
// (.strtab, .symtab, .dynamic). It mirrors the original implementation's
// append_special_section, including .symtab's dependency on .strtab
// already existing.
func (c *Container) AppendSpecialSection(name string) (int, error) {
	switch name {
	case ".strtab":
		return c.appendSection(name, NewStringTable(), 0, enum.SHT_STRTAB, 0, 0, 1, 0)
	case ".symtab":
		strtabIdx, err := c.SectionIndexByName(".strtab")
		if err != nil {
			return 0, err
		}
		return c.appendSection(name, NewSymbolTable(), 0, enum.SHT_SYMTAB, 0, uint32(strtabIdx), 4, record.SymSize)
	case ".dynamic":
		return c.appendSection(name, NewDynamicArray(), 0, enum.SHT_DYNAMIC, enum.SHF_ALLOC|enum.SHF_WRITE, 0, 4, record.DynSize)
	default:
		return 0, fmt.Errorf("%w: %q", elferr.ErrUnsupportedSpecialSection, name)
	}
}

// SectionIndexByName finds a section by the name recorded in .shstrtab.
func (c *Container) SectionIndexByName(name string) (int, error) {
	shstrtabIdx := int(c.Ehdr.Shstrndx)
	if shstrtabIdx < 0 || shstrtabIdx >= len(c.Shdrs) {
		return 0, fmt.Errorf("%w: e_shstrndx %d out of range", elferr.ErrCorrupted, shstrtabIdx)
	}
	shstrtab, err := c.StringTableAt(shstrtabIdx)
	if err != nil {
		return 0, err
	}
	nameOff, ok := shstrtab.Find(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", elferr.ErrSectionNotFound, name)
	}
	for i, shdr := range c.Shdrs {
		if shdr.Name == nameOff {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q found in .shstrtab but no matching section header", elferr.ErrCorrupted, name)
}

// GetSectionByName returns the header and payload of the named section.
func (c *Container) GetSectionByName(name string) (record.Shdr, Payload, error) {
	idx, err := c.SectionIndexByName(name)
	if err != nil {
		return record.Shdr{}, nil, err
	}
	return c.Shdrs[idx], c.Sections[idx], nil
}

func (c *Container) shstrtab() (*StringTable, error) {
	idx := int(c.Ehdr.Shstrndx)
	if idx < 0 || idx >= len(c.Sections) {
		return nil, fmt.Errorf("%w: e_shstrndx %d out of range", elferr.ErrCorrupted, idx)
	}
	return c.StringTableAt(idx)
}

// StringTableAt returns the section at idx as a *StringTable, converting
// it from RawSection and caching the conversion in place on first access.
// This is the lazy opaque-to-typed upgrade spec.md §9 calls for: decode
// never guesses a section's structured meaning from sh_type, so a caller
// that wants to read or extend a string table asks for it explicitly.
func (c *Container) StringTableAt(idx int) (*StringTable, error) {
	if idx < 0 || idx >= len(c.Sections) {
		return nil, fmt.Errorf("%w: section index %d out of range", elferr.ErrCorrupted, idx)
	}
	switch t := c.Sections[idx].(type) {
	case *StringTable:
		return t, nil
	case RawSection:
		upgraded := stringTableFromBytes(t)
		c.Sections[idx] = upgraded
		return upgraded, nil
	default:
		return nil, fmt.Errorf("%w: section %d is not a string table", elferr.ErrCorrupted, idx)
	}
}

// SymbolTableAt returns the section at idx as a *SymbolTable, upgrading
// and caching it in place on first access.
func (c *Container) SymbolTableAt(idx int) (*SymbolTable, error) {
	if idx < 0 || idx >= len(c.Sections) {
		return nil, fmt.Errorf("%w: section index %d out of range", elferr.ErrCorrupted, idx)
	}
	switch t := c.Sections[idx].(type) {
	case *SymbolTable:
		return t, nil
	case RawSection:
		upgraded, err := symbolTableFromBytes(t, c.Little())
		if err != nil {
			return nil, err
		}
		c.Sections[idx] = upgraded
		return upgraded, nil
	default:
		return nil, fmt.Errorf("%w: section %d is not a symbol table", elferr.ErrCorrupted, idx)
	}
}

// DynamicArrayAt returns the section at idx as a *DynamicArray, upgrading
// and caching it in place on first access.
func (c *Container) DynamicArrayAt(idx int) (*DynamicArray, error) {
	if idx < 0 || idx >= len(c.Sections) {
		return nil, fmt.Errorf("%w: section index %d out of range", elferr.ErrCorrupted, idx)
	}
	switch t := c.Sections[idx].(type) {
	case *DynamicArray:
		return t, nil
	case RawSection:
		upgraded, err := dynamicArrayFromBytes(t, c.Little())
		if err != nil {
			return nil, err
		}
		c.Sections[idx] = upgraded
		return upgraded, nil
	default:
		return nil, fmt.Errorf("%w: section %d is not a dynamic array", elferr.ErrCorrupted, idx)
	}
}

// AppendSegment appends a program header of type PT_LOAD describing the
// section at sectionIdx, mirroring the sectionIdx's sh_addr/sh_size
// unless overridden, and binds the segment so Serialize fixes up
// p_offset from the section's computed sh_offset.
func (c *Container) AppendSegment(sectionIdx int, vaddr *uint32, memSize *uint32, flags enum.PF) (int, error) {
	if c.Ehdr.Type != enum.ET_EXEC && c.Ehdr.Type != enum.ET_DYN {
		return 0, fmt.Errorf("%w: e_type is %s", elferr.ErrWrongElfType, c.Ehdr.Type)
	}
	if sectionIdx < 0 || sectionIdx >= len(c.Shdrs) {
		return 0, fmt.Errorf("%w: section index %d out of range", elferr.ErrCorrupted, sectionIdx)
	}
	shdr := c.Shdrs[sectionIdx]
	addr := shdr.Addr
	if vaddr != nil {
		addr = *vaddr
	}
	msz := shdr.Size
	if memSize != nil {
		msz = *memSize
	}
	phdr := record.Phdr{
		Type:   enum.PT_LOAD,
		Vaddr:  addr,
		Paddr:  0,
		Filesz: shdr.Size,
		Memsz:  msz,
		Flags:  flags,
		Align:  1,
	}
	idx := len(c.Phdrs)
	c.Phdrs = append(c.Phdrs, phdr)
	c.segBound = append(c.segBound, sectionIdx)
	return idx, nil
}

// appendRawSegment appends a program header with no section binding, used
// for the placeholder PT_LOAD segment New() inserts for executables and
// shared objects.
func (c *Container) appendRawSegment(phdr record.Phdr) int {
	idx := len(c.Phdrs)
	c.Phdrs = append(c.Phdrs, phdr)
	c.segBound = append(c.segBound, -1)
	return idx
}

// AppendSymbol adds a symbol to .symtab (creating .strtab and .symtab if
// absent) and returns its index, mirroring append_symbol's side effect of
// setting .symtab's sh_info to the new symbol's index plus one, whatever
// the symbol's binding.
func (c *Container) AppendSymbol(name string, section enum.SHN, offset, size uint32, bind enum.STB, typ enum.STT, vis enum.STV) (int, error) {
	strtabIdx, err := c.SectionIndexByName(".strtab")
	if err != nil {
		strtabIdx, err = c.AppendSpecialSection(".strtab")
		if err != nil {
			return 0, err
		}
	}
	symtabIdx, err := c.SectionIndexByName(".symtab")
	if err != nil {
		symtabIdx, err = c.AppendSpecialSection(".symtab")
		if err != nil {
			return 0, err
		}
	}

	strtab, err := c.StringTableAt(strtabIdx)
	if err != nil {
		return 0, err
	}
	var nameOff uint32
	if name != "" {
		nameOff, err = strtab.Append(name)
		if err != nil {
			return 0, err
		}
	}

	symtab, err := c.SymbolTableAt(symtabIdx)
	if err != nil {
		return 0, err
	}
	sym := record.Sym{
		Name:  nameOff,
		Value: offset,
		Size:  size,
		Bind:  bind,
		Type:  typ,
		Other: vis,
		Shndx: section,
	}
	idx := symtab.Append(sym)
	c.Shdrs[symtabIdx].Info = uint32(idx) + 1
	return idx, nil
}
