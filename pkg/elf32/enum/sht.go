package enum

// SHT is the sh_type field: the kind of data a section header describes.
type SHT uint32

const (
	SHT_NULL          SHT = 0
	SHT_PROGBITS      SHT = 1
	SHT_SYMTAB        SHT = 2
	SHT_STRTAB        SHT = 3
	SHT_RELA          SHT = 4
	SHT_HASH          SHT = 5
	SHT_DYNAMIC       SHT = 6
	SHT_NOTE          SHT = 7
	SHT_NOBITS        SHT = 8
	SHT_REL           SHT = 9
	SHT_SHLIB         SHT = 10
	SHT_DYNSYM        SHT = 11
	SHT_INIT_ARRAY    SHT = 14
	SHT_FINI_ARRAY    SHT = 15
	SHT_PREINIT_ARRAY SHT = 16
	SHT_GROUP         SHT = 17
	SHT_SYMTAB_SHNDX  SHT = 18
	SHT_LOOS          SHT = 0x60000000
	SHT_HIOS          SHT = 0x6fffffff
	SHT_LOPROC        SHT = 0x70000000
	SHT_HIPROC        SHT = 0x7fffffff
	SHT_LOUSER        SHT = 0x80000000
	SHT_HIUSER        SHT = 0xffffffff
	SHT_RENESAS_INFO  SHT = 0xa0000000
)

var shtNames = map[SHT]string{
	SHT_NULL:          "SHT_NULL",
	SHT_PROGBITS:      "SHT_PROGBITS",
	SHT_SYMTAB:        "SHT_SYMTAB",
	SHT_STRTAB:        "SHT_STRTAB",
	SHT_RELA:          "SHT_RELA",
	SHT_HASH:          "SHT_HASH",
	SHT_DYNAMIC:       "SHT_DYNAMIC",
	SHT_NOTE:          "SHT_NOTE",
	SHT_NOBITS:        "SHT_NOBITS",
	SHT_REL:           "SHT_REL",
	SHT_SHLIB:         "SHT_SHLIB",
	SHT_DYNSYM:        "SHT_DYNSYM",
	SHT_INIT_ARRAY:    "SHT_INIT_ARRAY",
	SHT_FINI_ARRAY:    "SHT_FINI_ARRAY",
	SHT_PREINIT_ARRAY: "SHT_PREINIT_ARRAY",
	SHT_GROUP:         "SHT_GROUP",
	SHT_SYMTAB_SHNDX:  "SHT_SYMTAB_SHNDX",
	SHT_LOOS:          "SHT_LOOS",
	SHT_HIOS:          "SHT_HIOS",
	SHT_LOPROC:        "SHT_LOPROC",
	SHT_HIPROC:        "SHT_HIPROC",
	SHT_LOUSER:        "SHT_LOUSER",
	SHT_HIUSER:        "SHT_HIUSER",
	SHT_RENESAS_INFO:  "SHT_RENESAS_INFO",
}

var shtByName = invert(shtNames)

var shtWidth = fieldWidthFor(maxValue([]SHT{SHT_HIUSER}))

func (v SHT) FieldWidth() int           { return int(shtWidth) }
func (v SHT) Encode(little bool) []byte { return encodeGeneric(v, shtWidth, little) }
func (v SHT) IsKnown() bool             { _, ok := lookupName(shtNames, v); return ok }

func (v SHT) String() string {
	if s, ok := lookupName(shtNames, v); ok {
		return s
	}
	return unknownString("SHT", uint32(v))
}

func DecodeSHT(b []byte, little bool) (SHT, []byte, error) {
	return decodeGeneric[SHT](b, shtWidth, little)
}

func ParseSHT(name string) (SHT, error) { return parseName(shtByName, name) }

// SHN enumerates the reserved special section indices used in place of a
// real section-header index, e.g. in st_shndx.
type SHN uint32

const (
	SHN_UNDEF     SHN = 0
	SHN_LORESERVE SHN = 0xff00
	SHN_LOPROC    SHN = 0xff00 // alias of SHN_LORESERVE
	SHN_HIPROC    SHN = 0xff1f
	SHN_LOOS      SHN = 0xff20
	SHN_HIOS      SHN = 0xff3f
	SHN_ABS       SHN = 0xfff1
	SHN_COMMON    SHN = 0xfff2
	SHN_XINDEX    SHN = 0xffff
	SHN_HIRESERVE SHN = 0xffff // alias of SHN_XINDEX
)

var shnNames = map[SHN]string{
	SHN_UNDEF:     "SHN_UNDEF",
	SHN_LORESERVE: "SHN_LORESERVE",
	SHN_HIPROC:    "SHN_HIPROC",
	SHN_LOOS:      "SHN_LOOS",
	SHN_HIOS:      "SHN_HIOS",
	SHN_ABS:       "SHN_ABS",
	SHN_COMMON:    "SHN_COMMON",
	SHN_XINDEX:    "SHN_XINDEX",
}

var shnByName = func() map[string]SHN {
	m := invert(shnNames)
	m["SHN_LOPROC"] = SHN_LOPROC
	m["SHN_HIRESERVE"] = SHN_HIRESERVE
	return m
}()

var shnWidth = fieldWidthFor(maxValue([]SHN{SHN_XINDEX}))

func (v SHN) FieldWidth() int           { return int(shnWidth) }
func (v SHN) Encode(little bool) []byte { return encodeGeneric(v, shnWidth, little) }
func (v SHN) IsKnown() bool             { _, ok := lookupName(shnNames, v); return ok }

func (v SHN) String() string {
	if s, ok := lookupName(shnNames, v); ok {
		return s
	}
	return unknownString("SHN", uint32(v))
}

func DecodeSHN(b []byte, little bool) (SHN, []byte, error) {
	return decodeGeneric[SHN](b, shnWidth, little)
}

func ParseSHN(name string) (SHN, error) { return parseName(shnByName, name) }

// SHF is the sh_flags bitmask field: section attributes.
type SHF uint32

const (
	SHF_WRITE            SHF = 0x1
	SHF_ALLOC            SHF = 0x2
	SHF_EXECINSTR        SHF = 0x4
	SHF_MERGE            SHF = 0x10
	SHF_STRINGS          SHF = 0x20
	SHF_INFO_LINK        SHF = 0x40
	SHF_LINK_ORDER       SHF = 0x80
	SHF_OS_NONCONFORMING SHF = 0x100
	SHF_GROUP            SHF = 0x200
	SHF_TLS              SHF = 0x400
	SHF_MASKOS           SHF = 0x0ff00000
	SHF_MASKPROC         SHF = 0xf0000000
)

var shfNames = map[SHF]string{
	SHF_WRITE:            "SHF_WRITE",
	SHF_ALLOC:            "SHF_ALLOC",
	SHF_EXECINSTR:        "SHF_EXECINSTR",
	SHF_MERGE:            "SHF_MERGE",
	SHF_STRINGS:          "SHF_STRINGS",
	SHF_INFO_LINK:        "SHF_INFO_LINK",
	SHF_LINK_ORDER:       "SHF_LINK_ORDER",
	SHF_OS_NONCONFORMING: "SHF_OS_NONCONFORMING",
	SHF_GROUP:            "SHF_GROUP",
	SHF_TLS:              "SHF_TLS",
	SHF_MASKOS:           "SHF_MASKOS",
	SHF_MASKPROC:         "SHF_MASKPROC",
}

var shfByName = invert(shfNames)

var shfWidth = fieldWidthFor(maxValue([]SHF{SHF_MASKPROC}))

func (v SHF) FieldWidth() int           { return int(shfWidth) }
func (v SHF) Encode(little bool) []byte { return encodeGeneric(v, shfWidth, little) }
func (v SHF) IsKnown() bool             { _, ok := lookupName(shfNames, v); return ok }

// Has reports whether all bits of mask are set in v.
func (v SHF) Has(mask SHF) bool { return v&mask == mask }

func (v SHF) String() string {
	if s, ok := lookupName(shfNames, v); ok {
		return s
	}
	return unknownString("SHF", uint32(v))
}

func DecodeSHF(b []byte, little bool) (SHF, []byte, error) {
	return decodeGeneric[SHF](b, shfWidth, little)
}

func ParseSHF(name string) (SHF, error) { return parseName(shfByName, name) }
