package record

import (
	"github.com/orizon-lang/elf32/pkg/elf32/enum"
	"github.com/orizon-lang/elf32/pkg/elf32/prim"
)

// ShdrSize is the on-disk size of a Shdr.
const ShdrSize = 40

// Shdr is a section header: one entry in the section header table.
type Shdr struct {
	Name      uint32 // byte offset into .shstrtab
	Type      enum.SHT
	Flags     enum.SHF
	Addr      uint32
	Offset    uint32
	Size      uint32
	Link      uint32
	Info      uint32
	Addralign uint32
	Entsize   uint32
}

// Encode serializes the header in the requested byte order. sh_flags is
// written as a plain 4-byte field regardless of SHF's computed field
// width, matching every other ELF32 structure field that merely happens
// to hold a bitmask domain value.
func (h Shdr) Encode(little bool) []byte {
	b := prim.EncodeUint(uint64(h.Name), prim.Width32, little)
	b = append(b, h.Type.Encode(little)...)
	b = append(b, prim.EncodeUint(uint64(h.Flags), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Addr), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Offset), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Size), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Link), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Info), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Addralign), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Entsize), prim.Width32, little)...)
	return b
}

// DecodeShdr consumes ShdrSize bytes of b.
func DecodeShdr(b []byte, little bool) (Shdr, []byte, error) {
	name, rest, err := prim.DecodeUint(b, prim.Width32, little)
	if err != nil {
		return Shdr{}, nil, err
	}
	typ, rest, err := enum.DecodeSHT(rest, little)
	if err != nil {
		return Shdr{}, nil, err
	}
	var vals [8]uint64
	for i := range vals {
		var v uint64
		v, rest, err = prim.DecodeUint(rest, prim.Width32, little)
		if err != nil {
			return Shdr{}, nil, err
		}
		vals[i] = v
	}
	return Shdr{
		Name:      uint32(name),
		Type:      typ,
		Flags:     enum.SHF(vals[0]),
		Addr:      uint32(vals[1]),
		Offset:    uint32(vals[2]),
		Size:      uint32(vals[3]),
		Link:      uint32(vals[4]),
		Info:      uint32(vals[5]),
		Addralign: uint32(vals[6]),
		Entsize:   uint32(vals[7]),
	}, rest, nil
}

// Equal compares two headers field by field.
func (h Shdr) Equal(other Shdr) bool {
	return h.Name == other.Name && h.Type == other.Type && h.Flags == other.Flags &&
		h.Addr == other.Addr && h.Offset == other.Offset && h.Size == other.Size &&
		h.Link == other.Link && h.Info == other.Info &&
		h.Addralign == other.Addralign && h.Entsize == other.Entsize
}
