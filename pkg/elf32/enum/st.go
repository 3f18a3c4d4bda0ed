package enum

// STB is the binding component of a symbol's st_info byte.
type STB uint32

const (
	STB_LOCAL   STB = 0
	STB_GLOBAL  STB = 1
	STB_WEAK    STB = 2
	STB_LOOS    STB = 10
	STB_HIOS    STB = 12
	STB_LOPROC  STB = 13
	STB_HIPROC  STB = 15
)

var stbNames = map[STB]string{
	STB_LOCAL:  "STB_LOCAL",
	STB_GLOBAL: "STB_GLOBAL",
	STB_WEAK:   "STB_WEAK",
	STB_LOOS:   "STB_LOOS",
	STB_HIOS:   "STB_HIOS",
	STB_LOPROC: "STB_LOPROC",
	STB_HIPROC: "STB_HIPROC",
}

var stbByName = invert(stbNames)

var stbWidth = fieldWidthFor(maxValue([]STB{STB_HIPROC}))

func (v STB) FieldWidth() int           { return int(stbWidth) }
func (v STB) Encode(little bool) []byte { return encodeGeneric(v, stbWidth, little) }
func (v STB) IsKnown() bool             { _, ok := lookupName(stbNames, v); return ok }

func (v STB) String() string {
	if s, ok := lookupName(stbNames, v); ok {
		return s
	}
	return unknownString("STB", uint32(v))
}

func DecodeSTB(b []byte, little bool) (STB, []byte, error) {
	return decodeGeneric[STB](b, stbWidth, little)
}

func ParseSTB(name string) (STB, error) { return parseName(stbByName, name) }

// STT is the type component of a symbol's st_info byte.
type STT uint32

const (
	STT_NOTYPE  STT = 0
	STT_OBJECT  STT = 1
	STT_FUNC    STT = 2
	STT_SECTION STT = 3
	STT_FILE    STT = 4
	STT_COMMON  STT = 5
	STT_TLS     STT = 6
	STT_LOOS    STT = 10
	STT_HIOS    STT = 12
	STT_LOPROC  STT = 13
	STT_HIPROC  STT = 15
)

var sttNames = map[STT]string{
	STT_NOTYPE:  "STT_NOTYPE",
	STT_OBJECT:  "STT_OBJECT",
	STT_FUNC:    "STT_FUNC",
	STT_SECTION: "STT_SECTION",
	STT_FILE:    "STT_FILE",
	STT_COMMON:  "STT_COMMON",
	STT_TLS:     "STT_TLS",
	STT_LOOS:    "STT_LOOS",
	STT_HIOS:    "STT_HIOS",
	STT_LOPROC:  "STT_LOPROC",
	STT_HIPROC:  "STT_HIPROC",
}

var sttByName = invert(sttNames)

var sttWidth = fieldWidthFor(maxValue([]STT{STT_HIPROC}))

func (v STT) FieldWidth() int           { return int(sttWidth) }
func (v STT) Encode(little bool) []byte { return encodeGeneric(v, sttWidth, little) }
func (v STT) IsKnown() bool             { _, ok := lookupName(sttNames, v); return ok }

func (v STT) String() string {
	if s, ok := lookupName(sttNames, v); ok {
		return s
	}
	return unknownString("STT", uint32(v))
}

func DecodeSTT(b []byte, little bool) (STT, []byte, error) {
	return decodeGeneric[STT](b, sttWidth, little)
}

func ParseSTT(name string) (STT, error) { return parseName(sttByName, name) }

// STV is the visibility component of a symbol's st_other byte.
type STV uint32

const (
	STV_DEFAULT   STV = 0
	STV_INTERNAL  STV = 1
	STV_HIDDEN    STV = 2
	STV_PROTECTED STV = 3
)

var stvNames = map[STV]string{
	STV_DEFAULT:   "STV_DEFAULT",
	STV_INTERNAL:  "STV_INTERNAL",
	STV_HIDDEN:    "STV_HIDDEN",
	STV_PROTECTED: "STV_PROTECTED",
}

var stvByName = invert(stvNames)

var stvWidth = fieldWidthFor(maxValue([]STV{STV_PROTECTED}))

func (v STV) FieldWidth() int           { return int(stvWidth) }
func (v STV) Encode(little bool) []byte { return encodeGeneric(v, stvWidth, little) }
func (v STV) IsKnown() bool             { _, ok := lookupName(stvNames, v); return ok }

func (v STV) String() string {
	if s, ok := lookupName(stvNames, v); ok {
		return s
	}
	return unknownString("STV", uint32(v))
}

func DecodeSTV(b []byte, little bool) (STV, []byte, error) {
	return decodeGeneric[STV](b, stvWidth, little)
}

func ParseSTV(name string) (STV, error) { return parseName(stvByName, name) }

// PackInfo combines a binding and type into the single st_info byte, per
// the standard ELF32_ST_INFO macro: (bind << 4) | (type & 0xf).
func PackInfo(bind STB, typ STT) byte {
	return byte(uint32(bind)<<4 | (uint32(typ) & 0xf))
}

// UnpackInfo splits an st_info byte back into its binding and type.
func UnpackInfo(info byte) (STB, STT) {
	return STB(info >> 4), STT(info & 0xf)
}
