package elf32

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/orizon-lang/elf32/pkg/elf32/elferr"
	"github.com/orizon-lang/elf32/pkg/elf32/record"
)

// Payload is the content of one section: something that can be measured
// and serialized. RawSection, StringTable, SymbolTable, and DynamicArray
// all implement it, so Container.Sections can hold a mix of opaque and
// structured section bodies behind one interface.
type Payload interface {
	Bytes(little bool) []byte
	Len(little bool) int
}

// RawSection is an opaque section body: bytes the codec never interprets,
// e.g. .text or .data.
type RawSection []byte

func (r RawSection) Bytes(little bool) []byte { return []byte(r) }
func (r RawSection) Len(little bool) int      { return len(r) }

// StringTable is the payload of an SHT_STRTAB section: a NUL-terminated
// string blob, always starting with a leading NUL so offset 0 denotes the
// empty name.
type StringTable struct {
	blob []byte
}

// NewStringTable returns a string table containing only the leading NUL.
func NewStringTable() *StringTable {
	return &StringTable{blob: []byte{0}}
}

// Append adds name, NUL-terminated, to the end of the blob and returns
// its byte offset. It rejects names containing an interior NUL.
func (t *StringTable) Append(name string) (uint32, error) {
	if strings.IndexByte(name, 0) != -1 {
		return 0, fmt.Errorf("%w: %q", elferr.ErrInvalidString, name)
	}
	off := uint32(len(t.blob))
	t.blob = append(t.blob, name...)
	t.blob = append(t.blob, 0)
	return off, nil
}

// Find returns the byte offset of the first occurrence of name followed by
// a NUL, the boolean is false if there is none. The match may be the tail
// of a longer entry (".text" inside ".rel.text"), not only a whole entry.
func (t *StringTable) Find(name string) (uint32, bool) {
	needle := append([]byte(name), 0)
	idx := bytes.Index(t.blob, needle)
	if idx == -1 {
		return 0, false
	}
	return uint32(idx), true
}

// StringAt returns the NUL-terminated string starting at off.
func (t *StringTable) StringAt(off uint32) (string, error) {
	if int(off) >= len(t.blob) {
		return "", fmt.Errorf("%w: string offset %d out of range", elferr.ErrCorrupted, off)
	}
	end := bytes.IndexByte(t.blob[off:], 0)
	if end == -1 {
		return "", fmt.Errorf("%w: unterminated string at offset %d", elferr.ErrCorrupted, off)
	}
	return string(t.blob[off : int(off)+end]), nil
}

func (t *StringTable) Bytes(little bool) []byte { return append([]byte(nil), t.blob...) }
func (t *StringTable) Len(little bool) int      { return len(t.blob) }

// stringTableFromBytes wraps a raw blob decoded from a file back into a
// StringTable, preserving whatever content it already had.
func stringTableFromBytes(b []byte) *StringTable {
	return &StringTable{blob: append([]byte(nil), b...)}
}

// SymbolTable is the payload of an SHT_SYMTAB section: an ordered list of
// Sym entries, conventionally starting with the STN_UNDEF zero entry.
type SymbolTable struct {
	syms []record.Sym
}

// NewSymbolTable returns a table containing only the STN_UNDEF entry.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{syms: []record.Sym{{}}}
}

// Append adds a symbol and returns its index.
func (t *SymbolTable) Append(s record.Sym) int {
	t.syms = append(t.syms, s)
	return len(t.syms) - 1
}

// Count returns the number of entries (including STN_UNDEF).
func (t *SymbolTable) Count() int { return len(t.syms) }

// At returns the entry at index i.
func (t *SymbolTable) At(i int) record.Sym { return t.syms[i] }

func (t *SymbolTable) Bytes(little bool) []byte {
	b := make([]byte, 0, len(t.syms)*record.SymSize)
	for _, s := range t.syms {
		b = append(b, s.Encode(little)...)
	}
	return b
}

func (t *SymbolTable) Len(little bool) int { return len(t.syms) * record.SymSize }

func symbolTableFromBytes(b []byte, little bool) (*SymbolTable, error) {
	var syms []record.Sym
	for len(b) > 0 {
		var s record.Sym
		var err error
		s, b, err = record.DecodeSym(b, little)
		if err != nil {
			return nil, err
		}
		syms = append(syms, s)
	}
	if len(syms) == 0 {
		syms = []record.Sym{{}}
	}
	return &SymbolTable{syms: syms}, nil
}

// DynamicArray is the payload of an SHT_DYNAMIC section: an ordered list
// of Dyn entries, conventionally terminated by a DT_NULL entry.
type DynamicArray struct {
	entries []record.Dyn
}

// NewDynamicArray returns an empty dynamic array (callers append entries
// and a terminating DT_NULL themselves, per spec.md §3).
func NewDynamicArray() *DynamicArray { return &DynamicArray{} }

// Append adds an entry and returns its index.
func (d *DynamicArray) Append(entry record.Dyn) int {
	d.entries = append(d.entries, entry)
	return len(d.entries) - 1
}

func (d *DynamicArray) Count() int { return len(d.entries) }

func (d *DynamicArray) At(i int) record.Dyn { return d.entries[i] }

func (d *DynamicArray) Bytes(little bool) []byte {
	b := make([]byte, 0, len(d.entries)*record.DynSize)
	for _, e := range d.entries {
		b = append(b, e.Encode(little)...)
	}
	return b
}

func (d *DynamicArray) Len(little bool) int { return len(d.entries) * record.DynSize }

func dynamicArrayFromBytes(b []byte, little bool) (*DynamicArray, error) {
	var entries []record.Dyn
	for len(b) > 0 {
		var e record.Dyn
		var err error
		e, b, err = record.DecodeDyn(b, little)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return &DynamicArray{entries: entries}, nil
}
