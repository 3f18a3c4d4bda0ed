package enum

// PT is the p_type field: the kind of segment a program header describes.
type PT uint32

const (
	PT_NULL    PT = 0
	PT_LOAD    PT = 1
	PT_DYNAMIC PT = 2
	PT_INTERP  PT = 3
	PT_NOTE    PT = 4
	PT_SHLIB   PT = 5
	PT_PHDR    PT = 6
	PT_TLS     PT = 7
	PT_LOOS    PT = 0x60000000
	PT_HIOS    PT = 0x6fffffff
	PT_LOPROC  PT = 0x70000000
	PT_HIPROC  PT = 0x7fffffff

	// Vendor and platform extensions. Several share a numeric value across
	// architectures; the name map below keeps one canonical name per value
	// and ParsePT accepts every alias.
	PT_GNU_EH_FRAME    PT = 0x6474e550
	PT_SUNW_EH_FRAME   PT = 0x6474e550 // alias of PT_GNU_EH_FRAME
	PT_GNU_STACK       PT = 0x6474e551
	PT_GNU_RELRO       PT = 0x6474e552
	PT_ARM_ARCHEXT     PT = 0x70000000 // alias of PT_LOPROC
	PT_ARM_EXIDX       PT = 0x70000001
	PT_MIPS_REGINFO    PT = 0x70000000 // alias of PT_LOPROC
	PT_MIPS_RTPROC     PT = 0x70000001 // alias of PT_ARM_EXIDX
	PT_MIPS_OPTIONS    PT = 0x70000002
	PT_MIPS_ABIFLAGS   PT = 0x70000003
	PT_AARCH64_ARCHEXT PT = 0x70000000 // alias of PT_LOPROC
	PT_AARCH64_UNWIND  PT = 0x70000001 // alias of PT_ARM_EXIDX
	PT_S390_PGSTE      PT = 0x70000000 // alias of PT_LOPROC
)

// ptNames holds one canonical name per distinct value; many vendor
// extensions share a numeric value with PT_LOPROC or PT_ARM_EXIDX because
// their meaning is architecture-specific and the ELF header's e_machine
// disambiguates which interpretation applies.
var ptNames = map[PT]string{
	PT_NULL:         "PT_NULL",
	PT_LOAD:         "PT_LOAD",
	PT_DYNAMIC:      "PT_DYNAMIC",
	PT_INTERP:       "PT_INTERP",
	PT_NOTE:         "PT_NOTE",
	PT_SHLIB:        "PT_SHLIB",
	PT_PHDR:         "PT_PHDR",
	PT_TLS:          "PT_TLS",
	PT_LOOS:         "PT_LOOS",
	PT_HIOS:         "PT_HIOS",
	PT_LOPROC:       "PT_LOPROC",
	PT_HIPROC:       "PT_HIPROC",
	PT_GNU_EH_FRAME: "PT_GNU_EH_FRAME",
	PT_GNU_STACK:    "PT_GNU_STACK",
	PT_GNU_RELRO:    "PT_GNU_RELRO",
	PT_ARM_EXIDX:    "PT_ARM_EXIDX",
	PT_MIPS_OPTIONS: "PT_MIPS_OPTIONS",
	PT_MIPS_ABIFLAGS: "PT_MIPS_ABIFLAGS",
}

var ptByName = func() map[string]PT {
	m := invert(ptNames)
	m["PT_SUNW_EH_FRAME"] = PT_SUNW_EH_FRAME
	m["PT_ARM_ARCHEXT"] = PT_ARM_ARCHEXT
	m["PT_MIPS_REGINFO"] = PT_MIPS_REGINFO
	m["PT_MIPS_RTPROC"] = PT_MIPS_RTPROC
	m["PT_AARCH64_ARCHEXT"] = PT_AARCH64_ARCHEXT
	m["PT_AARCH64_UNWIND"] = PT_AARCH64_UNWIND
	m["PT_S390_PGSTE"] = PT_S390_PGSTE
	return m
}()

var ptWidth = fieldWidthFor(maxValue([]PT{PT_HIPROC}))

func (v PT) FieldWidth() int           { return int(ptWidth) }
func (v PT) Encode(little bool) []byte { return encodeGeneric(v, ptWidth, little) }
func (v PT) IsKnown() bool             { _, ok := lookupName(ptNames, v); return ok }

func (v PT) String() string {
	if s, ok := lookupName(ptNames, v); ok {
		return s
	}
	return unknownString("PT", uint32(v))
}

func DecodePT(b []byte, little bool) (PT, []byte, error) { return decodeGeneric[PT](b, ptWidth, little) }

func ParsePT(name string) (PT, error) { return parseName(ptByName, name) }

// PF is the p_flags bitmask field: segment access permissions.
type PF uint32

const (
	PF_X        PF = 0x01
	PF_W        PF = 0x02
	PF_R        PF = 0x04
	PF_MASKOS   PF = 0x0ff00000
	PF_MASKPROC PF = 0xf0000000
)

var pfNames = map[PF]string{
	PF_X:        "PF_X",
	PF_W:        "PF_W",
	PF_R:        "PF_R",
	PF_MASKOS:   "PF_MASKOS",
	PF_MASKPROC: "PF_MASKPROC",
}

var pfByName = invert(pfNames)

var pfWidth = fieldWidthFor(maxValue([]PF{PF_MASKPROC}))

func (v PF) FieldWidth() int           { return int(pfWidth) }
func (v PF) Encode(little bool) []byte { return encodeGeneric(v, pfWidth, little) }
func (v PF) IsKnown() bool             { _, ok := lookupName(pfNames, v); return ok }

// Has reports whether all bits of mask are set in v. PF is a bitmask
// domain, so unlike the other enum types its values are frequently
// combined with bitwise OR rather than matched against a single constant.
func (v PF) Has(mask PF) bool { return v&mask == mask }

func (v PF) String() string {
	if s, ok := lookupName(pfNames, v); ok {
		return s
	}
	return unknownString("PF", uint32(v))
}

func DecodePF(b []byte, little bool) (PF, []byte, error) { return decodeGeneric[PF](b, pfWidth, little) }

func ParsePF(name string) (PF, error) { return parseName(pfByName, name) }
