package enum

// ET is the e_type field: the object file's category.
type ET uint32

const (
	ET_NONE   ET = 0
	ET_REL    ET = 1
	ET_EXEC   ET = 2
	ET_DYN    ET = 3
	ET_CORE   ET = 4
	ET_LOOS   ET = 0xfe00
	ET_HIOS   ET = 0xfeff
	ET_LOPROC ET = 0xff00
	ET_HIPROC ET = 0xffff
)

var etNames = map[ET]string{
	ET_NONE:   "ET_NONE",
	ET_REL:    "ET_REL",
	ET_EXEC:   "ET_EXEC",
	ET_DYN:    "ET_DYN",
	ET_CORE:   "ET_CORE",
	ET_LOOS:   "ET_LOOS",
	ET_HIOS:   "ET_HIOS",
	ET_LOPROC: "ET_LOPROC",
	ET_HIPROC: "ET_HIPROC",
}

var etByName = invert(etNames)

var etWidth = fieldWidthFor(maxValue([]ET{ET_HIPROC}))

func (v ET) FieldWidth() int           { return int(etWidth) }
func (v ET) Encode(little bool) []byte { return encodeGeneric(v, etWidth, little) }
func (v ET) IsKnown() bool             { _, ok := lookupName(etNames, v); return ok }

func (v ET) String() string {
	if s, ok := lookupName(etNames, v); ok {
		return s
	}
	return unknownString("ET", uint32(v))
}

func DecodeET(b []byte, little bool) (ET, []byte, error) { return decodeGeneric[ET](b, etWidth, little) }

func ParseET(name string) (ET, error) { return parseName(etByName, name) }
