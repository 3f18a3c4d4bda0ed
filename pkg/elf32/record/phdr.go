package record

import (
	"github.com/orizon-lang/elf32/pkg/elf32/enum"
	"github.com/orizon-lang/elf32/pkg/elf32/prim"
)

// PhdrSize is the on-disk size of a Phdr.
const PhdrSize = 32

// Phdr is a program header: one entry in the segment table.
type Phdr struct {
	Type   enum.PT
	Offset uint32
	Vaddr  uint32
	Paddr  uint32
	Filesz uint32
	Memsz  uint32
	Flags  enum.PF
	Align  uint32
}

// Encode serializes the header in the requested byte order.
func (h Phdr) Encode(little bool) []byte {
	b := h.Type.Encode(little)
	b = append(b, prim.EncodeUint(uint64(h.Offset), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Vaddr), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Paddr), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Filesz), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Memsz), prim.Width32, little)...)
	b = append(b, h.Flags.Encode(little)...)
	b = append(b, prim.EncodeUint(uint64(h.Align), prim.Width32, little)...)
	return b
}

// DecodePhdr consumes PhdrSize bytes of b.
func DecodePhdr(b []byte, little bool) (Phdr, []byte, error) {
	typ, rest, err := enum.DecodePT(b, little)
	if err != nil {
		return Phdr{}, nil, err
	}
	var vals [5]uint64
	for i := range vals {
		var v uint64
		v, rest, err = prim.DecodeUint(rest, prim.Width32, little)
		if err != nil {
			return Phdr{}, nil, err
		}
		vals[i] = v
	}
	flags, rest, err := enum.DecodePF(rest, little)
	if err != nil {
		return Phdr{}, nil, err
	}
	align, rest, err := prim.DecodeUint(rest, prim.Width32, little)
	if err != nil {
		return Phdr{}, nil, err
	}
	return Phdr{
		Type:   typ,
		Offset: uint32(vals[0]),
		Vaddr:  uint32(vals[1]),
		Paddr:  uint32(vals[2]),
		Filesz: uint32(vals[3]),
		Memsz:  uint32(vals[4]),
		Flags:  flags,
		Align:  uint32(align),
	}, rest, nil
}

// Equal compares two headers field by field.
func (h Phdr) Equal(other Phdr) bool {
	return h.Type == other.Type && h.Offset == other.Offset &&
		h.Vaddr == other.Vaddr && h.Paddr == other.Paddr &&
		h.Filesz == other.Filesz && h.Memsz == other.Memsz &&
		h.Flags == other.Flags && h.Align == other.Align
}
