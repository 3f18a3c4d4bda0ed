package elfio

import (
	"os"

	"golang.org/x/sys/unix"
)

// MappedSource is a read-only mmap of a file's full contents, an
// alternate Source to FileSource for callers decoding large images
// without a heap copy. Grounded on the mmap-then-slice pattern used to
// read ELF section bodies in aclements/go-obj's reader: map PROT_READ
// MAP_SHARED, return the slice, and unmap on Close.
type MappedSource struct {
	data []byte
}

// OpenMapped mmaps path read-only and returns a Source over it. The
// caller must call Close when done to release the mapping.
func OpenMapped(path string) (*MappedSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &MappedSource{data: nil}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &MappedSource{data: data}, nil
}

// Read returns the mapped bytes. It never re-reads the file; the mapping
// is established once, at OpenMapped.
func (m *MappedSource) Read() ([]byte, error) {
	return m.data, nil
}

// Close unmaps the file.
func (m *MappedSource) Close() error {
	if m.data == nil {
		return nil
	}
	return unix.Munmap(m.data)
}
