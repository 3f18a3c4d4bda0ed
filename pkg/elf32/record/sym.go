package record

import (
	"github.com/orizon-lang/elf32/pkg/elf32/enum"
	"github.com/orizon-lang/elf32/pkg/elf32/prim"
)

// SymSize is the on-disk size of a Sym.
const SymSize = 16

// Sym is a symbol table entry.
type Sym struct {
	Name  uint32 // byte offset into the linked string table
	Value uint32
	Size  uint32
	Bind  enum.STB
	Type  enum.STT
	Other enum.STV
	Shndx enum.SHN
}

// Encode serializes the entry in the requested byte order. Bind and Type
// are packed into a single st_info byte and Other occupies st_other, per
// the ELF32_ST_INFO convention.
func (s Sym) Encode(little bool) []byte {
	b := prim.EncodeUint(uint64(s.Name), prim.Width32, little)
	b = append(b, prim.EncodeUint(uint64(s.Value), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(s.Size), prim.Width32, little)...)
	b = append(b, enum.PackInfo(s.Bind, s.Type))
	b = append(b, byte(s.Other))
	b = append(b, s.Shndx.Encode(little)...)
	return b
}

// DecodeSym consumes SymSize bytes of b.
func DecodeSym(b []byte, little bool) (Sym, []byte, error) {
	name, rest, err := prim.DecodeUint(b, prim.Width32, little)
	if err != nil {
		return Sym{}, nil, err
	}
	value, rest, err := prim.DecodeUint(rest, prim.Width32, little)
	if err != nil {
		return Sym{}, nil, err
	}
	size, rest, err := prim.DecodeUint(rest, prim.Width32, little)
	if err != nil {
		return Sym{}, nil, err
	}
	info, rest, err := prim.DecodeUint(rest, prim.Width8, little)
	if err != nil {
		return Sym{}, nil, err
	}
	other, rest, err := prim.DecodeUint(rest, prim.Width8, little)
	if err != nil {
		return Sym{}, nil, err
	}
	shndx, rest, err := enum.DecodeSHN(rest, little)
	if err != nil {
		return Sym{}, nil, err
	}
	bind, typ := enum.UnpackInfo(byte(info))
	return Sym{
		Name:  uint32(name),
		Value: uint32(value),
		Size:  uint32(size),
		Bind:  bind,
		Type:  typ,
		Other: enum.STV(other),
		Shndx: shndx,
	}, rest, nil
}

// Equal compares two entries field by field.
func (s Sym) Equal(other Sym) bool {
	return s.Name == other.Name && s.Value == other.Value && s.Size == other.Size &&
		s.Bind == other.Bind && s.Type == other.Type && s.Other == other.Other &&
		s.Shndx == other.Shndx
}
