// Package elf32 implements a round-trip codec, editor, and assembly
// engine for 32-bit ELF object files: decode an existing file into an
// in-memory Container, edit it with the high-level append helpers, and
// serialize it back to a byte-exact image.
package elf32

import (
	"os"

	"github.com/orizon-lang/elf32/pkg/elf32/enum"
	"github.com/orizon-lang/elf32/pkg/elf32/record"
)

// Option configures New.
type Option func(*newConfig)

type newConfig struct {
	skipPlaceholderSegment bool
}

// WithoutPlaceholderSegment suppresses the default PT_LOAD placeholder
// segment New() otherwise inserts for ET_EXEC/ET_DYN objects, for callers
// who will describe their own segments from scratch.
func WithoutPlaceholderSegment() Option {
	return func(c *newConfig) { c.skipPlaceholderSegment = true }
}

// New builds an empty container: an ELF header, the mandatory SHN_UNDEF
// section entry, and a .shstrtab section holding its own name. For
// ET_EXEC/ET_DYN objects it also inserts a placeholder PT_LOAD segment,
// matching the reference implementation's constructor, unless
// WithoutPlaceholderSegment is given.
func New(data enum.ELFDATA, typ enum.ET, machine enum.EM, opts ...Option) *Container {
	cfg := newConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	ident := record.NewIdent(data, enum.ELFOSABI_NONE)
	c := &Container{
		Ehdr: record.Ehdr{
			Ident:   ident,
			Type:    typ,
			Machine: machine,
			Version: uint32(enum.EV_CURRENT),
			Ehsize:  record.EhdrSize,
		},
	}

	// SHN_UNDEF section entry, index 0.
	c.Shdrs = append(c.Shdrs, record.Shdr{})
	c.Sections = append(c.Sections, RawSection(nil))

	shstrtab := NewStringTable()
	nameOff, _ := shstrtab.Append(".shstrtab")
	c.Shdrs = append(c.Shdrs, record.Shdr{Name: nameOff, Type: enum.SHT_STRTAB, Addralign: 1})
	c.Sections = append(c.Sections, shstrtab)
	c.Ehdr.Shstrndx = uint16(len(c.Shdrs) - 1)

	if !cfg.skipPlaceholderSegment && (typ == enum.ET_EXEC || typ == enum.ET_DYN) {
		c.appendRawSegment(record.Phdr{
			Type:  enum.PT_LOAD,
			Flags: enum.PF_R | enum.PF_X,
			Align: 1,
		})
	}

	return c
}

// DialectDefaults is the subset of a resolved internal/elfdialect.Profile
// NewWithDialect needs: OSABI, machine, and endianness are dialect-chosen,
// everything else about the container stays caller-controlled.
type DialectDefaults struct {
	OSABI   enum.ELFOSABI
	Machine enum.EM
	Data    enum.ELFDATA
}

// NewWithDialect builds an empty container the way New does, but takes
// its OSABI/machine/endianness from a resolved dialect profile instead
// of individual parameters, so callers select a vendor profile by name
// (see internal/elfdialect.Resolve) instead of hand-picking enum values.
func NewWithDialect(d DialectDefaults, typ enum.ET, opts ...Option) *Container {
	c := New(d.Data, typ, d.Machine, opts...)
	c.Ehdr.Ident.OSABI = d.OSABI
	return c
}

// FromBytes deserializes a container from an in-memory byte-exact image.
func FromBytes(b []byte) (*Container, error) {
	return Deserialize(b)
}

// FromFile reads filename and deserializes its contents.
func FromFile(filename string) (*Container, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return FromBytes(b)
}
