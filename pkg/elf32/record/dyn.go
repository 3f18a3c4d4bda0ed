package record

import (
	"github.com/orizon-lang/elf32/pkg/elf32/enum"
	"github.com/orizon-lang/elf32/pkg/elf32/prim"
)

// DynSize is the on-disk size of a Dyn.
const DynSize = 8

// Dyn is a .dynamic section entry. d_tag is always written as a full
// 4-byte field; Val and Ptr are two views of the same underlying union
// slot (d_un), populated identically on decode since the wire format
// carries no way to tell which interpretation the producer intended.
// Tag.UsesPtr reports which name is the conventionally meaningful one to
// read for a given tag.
type Dyn struct {
	Tag enum.DT
	Val uint32
	Ptr uint32
}

// NewDynVal builds an entry whose value is a plain integer.
func NewDynVal(tag enum.DT, val uint32) Dyn { return Dyn{Tag: tag, Val: val, Ptr: val} }

// NewDynPtr builds an entry whose value is a virtual address.
func NewDynPtr(tag enum.DT, ptr uint32) Dyn { return Dyn{Tag: tag, Val: ptr, Ptr: ptr} }

// Encode serializes the entry in the requested byte order.
func (d Dyn) Encode(little bool) []byte {
	b := prim.EncodeUint(uint64(d.Tag), prim.Width32, little)
	v := d.Val
	if d.Tag.UsesPtr() {
		v = d.Ptr
	}
	b = append(b, prim.EncodeUint(uint64(v), prim.Width32, little)...)
	return b
}

// DecodeDyn consumes DynSize bytes of b. Per the reference implementation,
// the decoded union value is mirrored into both Val and Ptr.
func DecodeDyn(b []byte, little bool) (Dyn, []byte, error) {
	tag, rest, err := prim.DecodeUint(b, prim.Width32, little)
	if err != nil {
		return Dyn{}, nil, err
	}
	val, rest, err := prim.DecodeUint(rest, prim.Width32, little)
	if err != nil {
		return Dyn{}, nil, err
	}
	return Dyn{Tag: enum.DT(tag), Val: uint32(val), Ptr: uint32(val)}, rest, nil
}

// Equal compares two entries by tag and the semantically active field.
func (d Dyn) Equal(other Dyn) bool {
	if d.Tag != other.Tag {
		return false
	}
	if d.Tag.UsesPtr() {
		return d.Ptr == other.Ptr
	}
	return d.Val == other.Val
}
