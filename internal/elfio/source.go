// Package elfio provides byte-array source/sink helpers around pkg/elf32:
// reading a file into memory, mmapping one read-only, and watching a
// directory of build outputs so each write is re-validated against the
// round-trip codec.
package elfio

import (
	"os"

	"github.com/orizon-lang/elf32/pkg/elf32"
)

// Source supplies the bytes of a candidate ELF32 image. FileSource and
// MappedSource (from OpenMapped) both satisfy it; tests substitute a mock
// (see source_mock.go).
type Source interface {
	Read() ([]byte, error)
}

// FileSource reads its file fresh on every call to Read.
type FileSource struct {
	Path string
}

func (s FileSource) Read() ([]byte, error) {
	return os.ReadFile(s.Path)
}

// Load reads src and decodes it into a Container. The watcher uses it so
// its reads go through the Source abstraction; elfctl reads files with
// elf32.FromFile instead.
func Load(src Source) (*elf32.Container, error) {
	b, err := src.Read()
	if err != nil {
		return nil, err
	}
	return elf32.FromBytes(b)
}
