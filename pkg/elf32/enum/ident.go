package enum

// ELFCLASS is the EI_CLASS identification byte: the file's pointer/offset
// width.
type ELFCLASS uint32

const (
	ELFCLASSNONE ELFCLASS = 0
	ELFCLASS32   ELFCLASS = 1
	ELFCLASS64   ELFCLASS = 2
)

var elfclassNames = map[ELFCLASS]string{
	ELFCLASSNONE: "ELFCLASSNONE",
	ELFCLASS32:   "ELFCLASS32",
	ELFCLASS64:   "ELFCLASS64",
}

var elfclassByName = invert(elfclassNames)

var elfclassWidth = fieldWidthFor(maxValue([]ELFCLASS{ELFCLASSNONE, ELFCLASS32, ELFCLASS64}))

func (v ELFCLASS) FieldWidth() int      { return int(elfclassWidth) }
func (v ELFCLASS) Encode(little bool) []byte { return encodeGeneric(v, elfclassWidth, little) }
func (v ELFCLASS) IsKnown() bool        { _, ok := lookupName(elfclassNames, v); return ok }

func (v ELFCLASS) String() string {
	if s, ok := lookupName(elfclassNames, v); ok {
		return s
	}
	return unknownString("ELFCLASS", uint32(v))
}

// DecodeELFCLASS consumes the domain's fixed width from b.
func DecodeELFCLASS(b []byte, little bool) (ELFCLASS, []byte, error) {
	return decodeGeneric[ELFCLASS](b, elfclassWidth, little)
}

// ParseELFCLASS looks up a variant by name (construction contract (d)).
func ParseELFCLASS(name string) (ELFCLASS, error) { return parseName(elfclassByName, name) }

// ELFDATA is the EI_DATA identification byte: the file's endianness.
type ELFDATA uint32

const (
	ELFDATANONE ELFDATA = 0
	ELFDATA2LSB ELFDATA = 1 // little-endian
	ELFDATA2MSB ELFDATA = 2 // big-endian
)

var elfdataNames = map[ELFDATA]string{
	ELFDATANONE: "ELFDATANONE",
	ELFDATA2LSB: "ELFDATA2LSB",
	ELFDATA2MSB: "ELFDATA2MSB",
}

var elfdataByName = invert(elfdataNames)

var elfdataWidth = fieldWidthFor(maxValue([]ELFDATA{ELFDATANONE, ELFDATA2LSB, ELFDATA2MSB}))

func (v ELFDATA) FieldWidth() int          { return int(elfdataWidth) }
func (v ELFDATA) Encode(little bool) []byte { return encodeGeneric(v, elfdataWidth, little) }
func (v ELFDATA) IsKnown() bool            { _, ok := lookupName(elfdataNames, v); return ok }

// Little reports whether this EI_DATA value denotes little-endian encoding.
func (v ELFDATA) Little() bool { return v == ELFDATA2LSB }

func (v ELFDATA) String() string {
	if s, ok := lookupName(elfdataNames, v); ok {
		return s
	}
	return unknownString("ELFDATA", uint32(v))
}

func DecodeELFDATA(b []byte, little bool) (ELFDATA, []byte, error) {
	return decodeGeneric[ELFDATA](b, elfdataWidth, little)
}

func ParseELFDATA(name string) (ELFDATA, error) { return parseName(elfdataByName, name) }

// EV is the EI_VERSION / e_version identification byte: the ELF format
// version.
type EV uint32

const (
	EV_NONE    EV = 0
	EV_CURRENT EV = 1
)

var evNames = map[EV]string{
	EV_NONE:    "EV_NONE",
	EV_CURRENT: "EV_CURRENT",
}

var evByName = invert(evNames)

var evWidth = fieldWidthFor(maxValue([]EV{EV_NONE, EV_CURRENT}))

func (v EV) FieldWidth() int          { return int(evWidth) }
func (v EV) Encode(little bool) []byte { return encodeGeneric(v, evWidth, little) }
func (v EV) IsKnown() bool            { _, ok := lookupName(evNames, v); return ok }

func (v EV) String() string {
	if s, ok := lookupName(evNames, v); ok {
		return s
	}
	return unknownString("EV", uint32(v))
}

func DecodeEV(b []byte, little bool) (EV, []byte, error) { return decodeGeneric[EV](b, evWidth, little) }

func ParseEV(name string) (EV, error) { return parseName(evByName, name) }

// ELFOSABI is the EI_OSABI identification byte.
type ELFOSABI uint32

const (
	ELFOSABI_NONE       ELFOSABI = 0
	ELFOSABI_HPUX       ELFOSABI = 1
	ELFOSABI_NETBSD     ELFOSABI = 2
	ELFOSABI_GNU        ELFOSABI = 3
	ELFOSABI_LINUX      ELFOSABI = 3 // alias for ELFOSABI_GNU
	ELFOSABI_SOLARIS    ELFOSABI = 6
	ELFOSABI_AIX        ELFOSABI = 7
	ELFOSABI_IRIX       ELFOSABI = 8
	ELFOSABI_FREEBSD    ELFOSABI = 9
	ELFOSABI_TRU64      ELFOSABI = 10
	ELFOSABI_MODESTO    ELFOSABI = 11
	ELFOSABI_OPENBSD    ELFOSABI = 12
	ELFOSABI_OPENVMS    ELFOSABI = 13
	ELFOSABI_NSK        ELFOSABI = 14
	ELFOSABI_AROS       ELFOSABI = 15
	ELFOSABI_ARM        ELFOSABI = 97
	ELFOSABI_STANDALONE ELFOSABI = 255
)

var elfosabiNames = map[ELFOSABI]string{
	ELFOSABI_NONE:       "ELFOSABI_NONE",
	ELFOSABI_HPUX:       "ELFOSABI_HPUX",
	ELFOSABI_NETBSD:     "ELFOSABI_NETBSD",
	ELFOSABI_GNU:        "ELFOSABI_GNU", // also covers ELFOSABI_LINUX (same value)
	ELFOSABI_SOLARIS:    "ELFOSABI_SOLARIS",
	ELFOSABI_AIX:        "ELFOSABI_AIX",
	ELFOSABI_IRIX:       "ELFOSABI_IRIX",
	ELFOSABI_FREEBSD:    "ELFOSABI_FREEBSD",
	ELFOSABI_TRU64:      "ELFOSABI_TRU64",
	ELFOSABI_MODESTO:    "ELFOSABI_MODESTO",
	ELFOSABI_OPENBSD:    "ELFOSABI_OPENBSD",
	ELFOSABI_OPENVMS:    "ELFOSABI_OPENVMS",
	ELFOSABI_NSK:        "ELFOSABI_NSK",
	ELFOSABI_AROS:       "ELFOSABI_AROS",
	ELFOSABI_ARM:        "ELFOSABI_ARM",
	ELFOSABI_STANDALONE: "ELFOSABI_STANDALONE",
}

var elfosabiByName = func() map[string]ELFOSABI {
	m := invert(elfosabiNames)
	m["ELFOSABI_LINUX"] = ELFOSABI_LINUX
	return m
}()

var elfosabiWidth = fieldWidthFor(maxValue([]ELFOSABI{ELFOSABI_STANDALONE}))

func (v ELFOSABI) FieldWidth() int          { return int(elfosabiWidth) }
func (v ELFOSABI) Encode(little bool) []byte { return encodeGeneric(v, elfosabiWidth, little) }
func (v ELFOSABI) IsKnown() bool            { _, ok := lookupName(elfosabiNames, v); return ok }

func (v ELFOSABI) String() string {
	if s, ok := lookupName(elfosabiNames, v); ok {
		return s
	}
	return unknownString("ELFOSABI", uint32(v))
}

func DecodeELFOSABI(b []byte, little bool) (ELFOSABI, []byte, error) {
	return decodeGeneric[ELFOSABI](b, elfosabiWidth, little)
}

func ParseELFOSABI(name string) (ELFOSABI, error) { return parseName(elfosabiByName, name) }
