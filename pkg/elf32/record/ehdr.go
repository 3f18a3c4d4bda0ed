package record

import (
	"fmt"

	"github.com/orizon-lang/elf32/pkg/elf32/elferr"
	"github.com/orizon-lang/elf32/pkg/elf32/enum"
	"github.com/orizon-lang/elf32/pkg/elf32/prim"
)

// EhdrSize is the on-disk size of an Ehdr, including its 16-byte Ident.
const EhdrSize = 52

// Ehdr is the ELF file header.
type Ehdr struct {
	Ident     Ident
	Type      enum.ET
	Machine   enum.EM
	Version   uint32
	Entry     uint32
	Phoff     uint32
	Shoff     uint32
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

// Encode serializes the header using the endianness carried by Ident.
func (h Ehdr) Encode() []byte {
	little := h.Ident.Little()
	b := h.Ident.Encode()
	b = append(b, h.Type.Encode(little)...)
	b = append(b, h.Machine.Encode(little)...)
	b = append(b, prim.EncodeUint(uint64(h.Version), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Entry), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Phoff), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Shoff), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Flags), prim.Width32, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Ehsize), prim.Width16, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Phentsize), prim.Width16, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Phnum), prim.Width16, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Shentsize), prim.Width16, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Shnum), prim.Width16, little)...)
	b = append(b, prim.EncodeUint(uint64(h.Shstrndx), prim.Width16, little)...)
	return b
}

// DecodeEhdr reads the identification prefix first to learn the file's
// declared endianness, then decodes the remainder of the header against
// it, per the original implementation's "rely only on the ELF header
// regarding endianness" rule.
func DecodeEhdr(b []byte) (Ehdr, []byte, error) {
	ident, rest, err := DecodeIdent(b)
	if err != nil {
		return Ehdr{}, nil, err
	}
	little := ident.Little()

	typ, rest, err := enum.DecodeET(rest, little)
	if err != nil {
		return Ehdr{}, nil, err
	}
	machine, rest, err := enum.DecodeEM(rest, little)
	if err != nil {
		return Ehdr{}, nil, err
	}

	fields := make([]uint64, 5)
	widths := []prim.Width{prim.Width32, prim.Width32, prim.Width32, prim.Width32, prim.Width32}
	for i, w := range widths {
		var v uint64
		v, rest, err = prim.DecodeUint(rest, w, little)
		if err != nil {
			return Ehdr{}, nil, fmt.Errorf("%w: ehdr field %d: %v", elferr.ErrShortInput, i, err)
		}
		fields[i] = v
	}

	shortFields := make([]uint64, 6)
	for i := range shortFields {
		var v uint64
		v, rest, err = prim.DecodeUint(rest, prim.Width16, little)
		if err != nil {
			return Ehdr{}, nil, fmt.Errorf("%w: ehdr short field %d: %v", elferr.ErrShortInput, i, err)
		}
		shortFields[i] = v
	}

	return Ehdr{
		Ident:     ident,
		Type:      typ,
		Machine:   machine,
		Version:   uint32(fields[0]),
		Entry:     uint32(fields[1]),
		Phoff:     uint32(fields[2]),
		Shoff:     uint32(fields[3]),
		Flags:     uint32(fields[4]),
		Ehsize:    uint16(shortFields[0]),
		Phentsize: uint16(shortFields[1]),
		Phnum:     uint16(shortFields[2]),
		Shentsize: uint16(shortFields[3]),
		Shnum:     uint16(shortFields[4]),
		Shstrndx:  uint16(shortFields[5]),
	}, rest, nil
}

// Equal compares two headers field by field, comparing the identification
// prefixes with Ident.Equal.
func (h Ehdr) Equal(other Ehdr) bool {
	return h.Ident.Equal(other.Ident) &&
		h.Type == other.Type &&
		h.Machine == other.Machine &&
		h.Version == other.Version &&
		h.Entry == other.Entry &&
		h.Phoff == other.Phoff &&
		h.Shoff == other.Shoff &&
		h.Flags == other.Flags &&
		h.Ehsize == other.Ehsize &&
		h.Phentsize == other.Phentsize &&
		h.Phnum == other.Phnum &&
		h.Shentsize == other.Shentsize &&
		h.Shnum == other.Shnum &&
		h.Shstrndx == other.Shstrndx
}
