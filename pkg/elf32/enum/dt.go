package enum

// DT is the d_tag field of a dynamic array entry.
type DT uint32

const (
	DT_NULL     DT = 0
	DT_NEEDED   DT = 1
	DT_PLTRELSZ DT = 2
	DT_PLTGOT   DT = 3
	DT_HASH     DT = 4
	DT_STRTAB   DT = 5
	DT_SYMTAB   DT = 6
	DT_RELA     DT = 7
	DT_RELASZ   DT = 8
	DT_RELAENT  DT = 9
	DT_STRSZ    DT = 10
	DT_SYMENT   DT = 11
	DT_INIT     DT = 12
	DT_FINI     DT = 13
	DT_SONAME   DT = 14
	DT_RPATH    DT = 15
	DT_SYMBOLIC DT = 16
	DT_REL      DT = 17
	DT_RELSZ    DT = 18
	DT_RELENT   DT = 19
	DT_PLTREL   DT = 20
	DT_DEBUG    DT = 21
	DT_TEXTREL  DT = 22
	DT_JMPREL   DT = 23
	DT_BIND_NOW DT = 24

	DT_INIT_ARRAY      DT = 25
	DT_FINI_ARRAY      DT = 26
	DT_INIT_ARRAYSZ    DT = 27
	DT_FINI_ARRAYSZ    DT = 28
	DT_RUNPATH         DT = 29
	DT_FLAGS           DT = 30

	// DT_ENCODING marks the start of a d_tag numbering convention (even
	// tags use d_ptr, odd tags use d_val) rather than naming a real
	// dynamic entry; it shares its value with DT_PREINIT_ARRAY.
	DT_ENCODING        DT = 32
	DT_PREINIT_ARRAY   DT = 32
	DT_PREINIT_ARRAYSZ DT = 33

	DT_LOOS   DT = 0x6000000d
	DT_HIOS   DT = 0x6ffff000
	DT_LOPROC DT = 0x70000000
	DT_HIPROC DT = 0x7fffffff
)

var dtNames = map[DT]string{
	DT_NULL:            "DT_NULL",
	DT_NEEDED:          "DT_NEEDED",
	DT_PLTRELSZ:        "DT_PLTRELSZ",
	DT_PLTGOT:          "DT_PLTGOT",
	DT_HASH:            "DT_HASH",
	DT_STRTAB:          "DT_STRTAB",
	DT_SYMTAB:          "DT_SYMTAB",
	DT_RELA:            "DT_RELA",
	DT_RELASZ:          "DT_RELASZ",
	DT_RELAENT:         "DT_RELAENT",
	DT_STRSZ:           "DT_STRSZ",
	DT_SYMENT:          "DT_SYMENT",
	DT_INIT:            "DT_INIT",
	DT_FINI:            "DT_FINI",
	DT_SONAME:          "DT_SONAME",
	DT_RPATH:           "DT_RPATH",
	DT_SYMBOLIC:        "DT_SYMBOLIC",
	DT_REL:             "DT_REL",
	DT_RELSZ:           "DT_RELSZ",
	DT_RELENT:          "DT_RELENT",
	DT_PLTREL:          "DT_PLTREL",
	DT_DEBUG:           "DT_DEBUG",
	DT_TEXTREL:         "DT_TEXTREL",
	DT_JMPREL:          "DT_JMPREL",
	DT_BIND_NOW:        "DT_BIND_NOW",
	DT_INIT_ARRAY:      "DT_INIT_ARRAY",
	DT_FINI_ARRAY:      "DT_FINI_ARRAY",
	DT_INIT_ARRAYSZ:    "DT_INIT_ARRAYSZ",
	DT_FINI_ARRAYSZ:    "DT_FINI_ARRAYSZ",
	DT_RUNPATH:         "DT_RUNPATH",
	DT_FLAGS:           "DT_FLAGS",
	DT_PREINIT_ARRAY:   "DT_PREINIT_ARRAY", // also covers DT_ENCODING (same value)
	DT_PREINIT_ARRAYSZ: "DT_PREINIT_ARRAYSZ",
	DT_LOOS:            "DT_LOOS",
	DT_HIOS:            "DT_HIOS",
	DT_LOPROC:          "DT_LOPROC",
	DT_HIPROC:          "DT_HIPROC",
}

var dtByName = func() map[string]DT {
	m := invert(dtNames)
	m["DT_ENCODING"] = DT_ENCODING
	return m
}()

var dtWidth = fieldWidthFor(maxValue([]DT{DT_HIPROC}))

func (v DT) FieldWidth() int           { return int(dtWidth) }
func (v DT) Encode(little bool) []byte { return encodeGeneric(v, dtWidth, little) }
func (v DT) IsKnown() bool             { _, ok := lookupName(dtNames, v); return ok }

func (v DT) String() string {
	if s, ok := lookupName(dtNames, v); ok {
		return s
	}
	return unknownString("DT", uint32(v))
}

func DecodeDT(b []byte, little bool) (DT, []byte, error) { return decodeGeneric[DT](b, dtWidth, little) }

func ParseDT(name string) (DT, error) { return parseName(dtByName, name) }

// UsesPtr reports whether a dynamic entry's d_un union is conventionally
// interpreted as a d_ptr (an address) rather than a d_val (an integer).
// It is a fixed table of the named address-carrying tags; any other tag,
// including unnamed even tags at or above DT_ENCODING, reports false. Both fields
// of Dyn are always populated with the same raw value on decode; UsesPtr
// exists only to tell a caller which field name is the semantically
// meaningful one to read.
func (v DT) UsesPtr() bool {
	switch v {
	case DT_PLTGOT, DT_HASH, DT_STRTAB, DT_SYMTAB, DT_RELA, DT_INIT, DT_FINI,
		DT_REL, DT_DEBUG, DT_JMPREL, DT_INIT_ARRAY, DT_FINI_ARRAY, DT_PREINIT_ARRAY:
		return true
	default:
		return false
	}
}
