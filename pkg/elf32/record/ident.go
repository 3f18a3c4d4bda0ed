// Package record implements the fixed-layout ELF32 structures: the
// identification prefix, the file/program/section headers, the symbol
// table entry, and the dynamic array entry. Each type carries an Encode
// method that serializes it standalone and a package-level DecodeXXX
// function that is its exact inverse, per the round-trip contract of
// spec.md §3 and §6.
package record

import (
	"fmt"

	"github.com/orizon-lang/elf32/pkg/elf32/elferr"
	"github.com/orizon-lang/elf32/pkg/elf32/enum"
	"github.com/orizon-lang/elf32/pkg/elf32/prim"
)

// identMagic is the fixed four-byte prefix every ELF file opens with.
var identMagic = [4]byte{0x7f, 'E', 'L', 'F'}

// Ident is the 16-byte e_ident identification prefix.
type Ident struct {
	Class   enum.ELFCLASS
	Data    enum.ELFDATA
	Version enum.EV
	OSABI   enum.ELFOSABI
}

// NewIdent builds an identification prefix for a 32-bit object with the
// given endianness and OS/ABI, at version EV_CURRENT.
func NewIdent(data enum.ELFDATA, osabi enum.ELFOSABI) Ident {
	return Ident{
		Class:   enum.ELFCLASS32,
		Data:    data,
		Version: enum.EV_CURRENT,
		OSABI:   osabi,
	}
}

// Little reports whether the prefix declares little-endian encoding.
func (id Ident) Little() bool { return id.Data.Little() }

// Encode serializes the prefix, right-padded with zero bytes to the
// standard 16-byte EI_NIDENT length.
func (id Ident) Encode() []byte {
	little := id.Little()
	b := append([]byte{}, identMagic[:]...)
	b = append(b, id.Class.Encode(little)...)
	b = append(b, id.Data.Encode(little)...)
	b = append(b, id.Version.Encode(little)...)
	b = append(b, id.OSABI.Encode(little)...)
	return prim.Align(b, 16)
}

// DecodeIdent consumes exactly 16 bytes and reconstructs the
// identification prefix. It returns ErrWrongType if the magic prefix is
// absent and ErrUnsupportedClass if the class is not ELFCLASS32.
func DecodeIdent(b []byte) (Ident, []byte, error) {
	if len(b) < 16 {
		return Ident{}, nil, fmt.Errorf("%w: ident needs 16 bytes, have %d", elferr.ErrShortInput, len(b))
	}
	if b[0] != identMagic[0] || b[1] != identMagic[1] || b[2] != identMagic[2] || b[3] != identMagic[3] {
		return Ident{}, nil, fmt.Errorf("%w: missing ELF magic prefix", elferr.ErrWrongType)
	}
	rest := b[4:]
	class, rest, err := enum.DecodeELFCLASS(rest, false)
	if err != nil {
		return Ident{}, nil, err
	}
	data, rest, err := enum.DecodeELFDATA(rest, false)
	if err != nil {
		return Ident{}, nil, err
	}
	version, rest, err := enum.DecodeEV(rest, false)
	if err != nil {
		return Ident{}, nil, err
	}
	osabi, _, err := enum.DecodeELFOSABI(rest, false)
	if err != nil {
		return Ident{}, nil, err
	}
	if class != enum.ELFCLASS32 {
		return Ident{}, nil, fmt.Errorf("%w: %s", elferr.ErrUnsupportedClass, class)
	}
	return Ident{Class: class, Data: data, Version: version, OSABI: osabi}, b[16:], nil
}

// Equal compares two identification prefixes field by field.
func (id Ident) Equal(other Ident) bool {
	return id.Class == other.Class && id.Data == other.Data &&
		id.Version == other.Version && id.OSABI == other.OSABI
}
