// Package elferr defines the error taxonomy shared by every layer of the
// elf32 codec, from the primitive decoders up through the façade.
package elferr

import "errors"

// Sentinel errors. Callers compare with errors.Is; every returned error
// wraps one of these with fmt.Errorf("%w: ...", ...) for context.
var (
	// ErrWrongType is raised when an input is not one of the accepted
	// representations (e.g. an image whose first four bytes are not the ELF
	// magic).
	ErrWrongType = errors.New("elf32: wrong type")

	// ErrUnknownEnumName is raised when an enum value is named but the name
	// does not exist in that enum's domain.
	ErrUnknownEnumName = errors.New("elf32: unknown enum name")

	// ErrUnsupportedClass is raised for ELFCLASS64 or ELFCLASSNONE, since
	// only 32-bit is implemented.
	ErrUnsupportedClass = errors.New("elf32: unsupported ELF class")

	// ErrWrongElfType is raised when a segment append is requested on a
	// non-executable, non-shared object.
	ErrWrongElfType = errors.New("elf32: wrong ELF type for this operation")

	// ErrSectionNotFound is raised when a section name is absent from
	// .shstrtab.
	ErrSectionNotFound = errors.New("elf32: section not found")

	// ErrInconsistentContainer is raised when the section-header list and
	// the payload list have different lengths at the point of an append.
	ErrInconsistentContainer = errors.New("elf32: section header and payload lists are inconsistent")

	// ErrCorrupted is raised when a name is found in .shstrtab but no
	// section header refers to that offset.
	ErrCorrupted = errors.New("elf32: container internally inconsistent")

	// ErrUnsupportedSpecialSection is raised when AppendSpecialSection is
	// called with an unrecognized name.
	ErrUnsupportedSpecialSection = errors.New("elf32: unsupported special section name")

	// ErrShortInput is raised when the deserializer cannot consume the
	// number of bytes a record requires.
	ErrShortInput = errors.New("elf32: short input")

	// ErrInvalidString is raised when a string appended to a string table
	// payload contains an interior NUL byte.
	ErrInvalidString = errors.New("elf32: string contains interior NUL")

	// ErrWrongEnumType names the case of a symbol binding, type, or
	// visibility that is not an instance of its enum. AppendSymbol takes
	// enum.STB/STT/STV parameters, so no function in this module returns it.
	ErrWrongEnumType = errors.New("elf32: wrong enum type")
)
