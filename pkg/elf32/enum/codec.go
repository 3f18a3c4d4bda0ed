// Package enum implements the tagged enumeration domains of the ELF ABI:
// class, data, version, OSABI, object type, machine, segment type/flags,
// section type/flags, special section indices, dynamic tag, and symbol
// binding/type/visibility.
//
// Every domain is its own named uint32 type. Each carries a fixed
// serialized width, computed once from the domain's maximum defined
// constant, per spec.md §4.2. Values outside the known constant set are
// preserved verbatim (construction contract (c)) rather than rejected;
// IsKnown reports whether a value matches a named constant.
package enum

import (
	"fmt"

	"github.com/orizon-lang/elf32/pkg/elf32/elferr"
	"github.com/orizon-lang/elf32/pkg/elf32/prim"
)

type kind interface {
	~uint32
}

func maxValue[T kind](known []T) uint32 {
	var max uint32
	for _, k := range known {
		if v := uint32(k); v > max {
			max = v
		}
	}
	return max
}

func fieldWidthFor(maxVal uint32) prim.Width {
	switch {
	case maxVal <= 0xFF:
		return prim.Width8
	case maxVal <= 0xFFFF:
		return prim.Width16
	case maxVal <= 0xFFFFFF:
		return prim.Width24
	default:
		return prim.Width32
	}
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// encodeGeneric serializes v in the domain's natural big-endian order,
// then reverses it if the caller wants the little-endian placement the
// structure codec uses when embedding the value in a little-endian record.
func encodeGeneric[T kind](v T, width prim.Width, little bool) []byte {
	b := prim.EncodeUint(uint64(v), width, false)
	if little {
		reverseBytes(b)
	}
	return b
}

// decodeGeneric consumes width leading bytes of b and reconstructs a
// domain value of type T, undoing the little-endian byte reversal first.
func decodeGeneric[T kind](b []byte, width prim.Width, little bool) (T, []byte, error) {
	if len(b) < int(width) {
		return T(0), nil, fmt.Errorf("%w: enum needs %d bytes, have %d", elferr.ErrShortInput, width, len(b))
	}
	raw := append([]byte(nil), b[:width]...)
	if little {
		reverseBytes(raw)
	}
	val, _, err := prim.DecodeUint(raw, width, false)
	if err != nil {
		return T(0), nil, err
	}
	return T(val), b[width:], nil
}

func lookupName[T kind](names map[T]string, v T) (string, bool) {
	s, ok := names[v]
	return s, ok
}

func parseName[T kind](byName map[string]T, name string) (T, error) {
	if v, ok := byName[name]; ok {
		return v, nil
	}
	return T(0), fmt.Errorf("%w: %q", elferr.ErrUnknownEnumName, name)
}

// invert builds the name-to-value map each domain's ParseXXX function needs
// from the value-to-name map used for String/IsKnown. That map is keyed by
// value, so it holds one name per value; domains with aliased constants (two
// names sharing one value) add the alias names back explicitly after calling
// invert.
func invert[T kind](names map[T]string) map[string]T {
	out := make(map[string]T, len(names))
	for v, s := range names {
		out[s] = v
	}
	return out
}

// unknownString formats a value that doesn't match any named constant in its
// domain, e.g. "EM(0x1234)".
func unknownString(domain string, v uint32) string {
	return fmt.Sprintf("%s(0x%X)", domain, v)
}
