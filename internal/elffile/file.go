package elffile

import (
	"bytes"
	"fmt"

	"github.com/es02/kabi-dw/internal/buf"
	"github.com/es02/kabi-dw/internal/mmfile"
)

// File is an opened 64-bit ELF object. The section header table and the
// section-name string table are located and validated at open time; section
// payloads are resolved lazily per lookup.
type File struct {
	data      []byte
	unmap     func() error
	bigEndian bool

	shoff     int
	shentsize int
	shnum     int
	shstrtab  []byte
}

// Open maps the object at path and validates its header. A file that is not
// an ELF object at all fails with ErrNotElf so callers can treat it as an
// unsupported container rather than a corrupt one.
func Open(path string) (*File, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("open object: %w", err)
	}
	f, err := OpenBytes(data, unmap)
	if err != nil {
		if unmap != nil {
			_ = unmap()
		}
		return nil, err
	}
	return f, nil
}

// OpenBytes validates an in-memory ELF image. unmap may be nil.
func OpenBytes(data []byte, unmap func() error) (*File, error) {
	if len(data) < IdentSize || !bytes.Equal(data[:len(Magic)], Magic) {
		return nil, ErrNotElf
	}
	if class := data[IdentClass]; class != Class64 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedClass, class)
	}

	f := &File{data: data, unmap: unmap}
	switch data[IdentData] {
	case Data2LSB:
		f.bigEndian = false
	case Data2MSB:
		f.bigEndian = true
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadEncoding, data[IdentData])
	}

	if len(data) < HeaderSize {
		return nil, fmt.Errorf("file header: %w", ErrTruncated)
	}

	f.shoff = int(f.u64(data[OffShOff:]))
	f.shentsize = int(f.u16(data[OffShEntSize:]))
	f.shnum = int(f.u16(data[OffShNum:]))
	shstrndx := int(f.u16(data[OffShStrNdx:]))

	if f.shoff == 0 {
		return nil, fmt.Errorf("no section header table: %w", ErrTruncated)
	}
	if f.shentsize < SectionHeaderSize {
		return nil, fmt.Errorf("section header entry size %d: %w", f.shentsize, ErrTruncated)
	}

	// Extended numbering stashes the real counts in section header 0.
	if f.shnum == 0 || shstrndx == ShStrNdxXIndex {
		hdr, err := f.sectionHeaderAt(0)
		if err != nil {
			return nil, err
		}
		if f.shnum == 0 {
			f.shnum = int(hdr.size)
		}
		if shstrndx == ShStrNdxXIndex {
			shstrndx = int(hdr.link)
		}
	}

	if _, err := buf.CheckTableBounds(len(data), f.shoff, f.shnum, f.shentsize); err != nil {
		return nil, fmt.Errorf("section header table: %w", ErrTruncated)
	}

	if shstrndx < 0 || shstrndx >= f.shnum {
		return nil, fmt.Errorf("section name table index %d: %w", shstrndx, ErrTruncated)
	}
	hdr, err := f.sectionHeaderAt(shstrndx)
	if err != nil {
		return nil, err
	}
	strtab, err := f.sectionData(hdr)
	if err != nil {
		return nil, fmt.Errorf("section name table: %w", err)
	}
	f.shstrtab = strtab

	return f, nil
}

// Close releases the underlying mapping. Safe to call more than once.
func (f *File) Close() error {
	if f.unmap == nil {
		return nil
	}
	unmap := f.unmap
	f.unmap = nil
	return unmap()
}

// BigEndian reports whether multi-byte fields use the big-endian encoding.
func (f *File) BigEndian() bool { return f.bigEndian }

// NumSections returns the number of section header entries.
func (f *File) NumSections() int { return f.shnum }

func (f *File) u16(b []byte) uint16 {
	if f.bigEndian {
		return buf.U16BE(b)
	}
	return buf.U16LE(b)
}

func (f *File) u32(b []byte) uint32 {
	if f.bigEndian {
		return buf.U32BE(b)
	}
	return buf.U32LE(b)
}

func (f *File) u64(b []byte) uint64 {
	if f.bigEndian {
		return buf.U64BE(b)
	}
	return buf.U64LE(b)
}

// sectionHeader is the decoded subset of an ELF64 section header the reader
// cares about.
type sectionHeader struct {
	nameOff uint32
	typ     uint32
	offset  uint64
	size    uint64
	link    uint32
}

func (f *File) sectionHeaderAt(i int) (sectionHeader, error) {
	off, ok := buf.AddOverflowSafe(f.shoff, i*f.shentsize)
	if !ok {
		return sectionHeader{}, fmt.Errorf("section header %d: %w", i, ErrTruncated)
	}
	b, ok := buf.Slice(f.data, off, SectionHeaderSize)
	if !ok {
		return sectionHeader{}, fmt.Errorf("section header %d: %w", i, ErrTruncated)
	}
	return sectionHeader{
		nameOff: f.u32(b[OffSecName:]),
		typ:     f.u32(b[OffSecType:]),
		offset:  f.u64(b[OffSecOffset:]),
		size:    f.u64(b[OffSecSize:]),
		link:    f.u32(b[OffSecLink:]),
	}, nil
}

// sectionName resolves a header's name from the section-name string table.
func (f *File) sectionName(hdr sectionHeader) string {
	off := int(hdr.nameOff)
	if off < 0 || off >= len(f.shstrtab) {
		return ""
	}
	end := bytes.IndexByte(f.shstrtab[off:], 0)
	if end < 0 {
		return ""
	}
	return string(f.shstrtab[off : off+end])
}

// sectionData returns a header's payload bytes with stripped and empty
// sections rejected.
func (f *File) sectionData(hdr sectionHeader) ([]byte, error) {
	if hdr.typ == SecTypeNobits {
		return nil, ErrSectionStripped
	}
	if hdr.size == 0 {
		return nil, ErrSectionEmpty
	}
	b, ok := buf.Slice(f.data, int(hdr.offset), int(hdr.size))
	if !ok {
		return nil, ErrTruncated
	}
	return b, nil
}

// findSection scans the section header table for a section of the given name.
// The scan is forward and restarted per call; kernel objects carry a small,
// fixed section count.
func (f *File) findSection(name string) (sectionHeader, error) {
	for i := 1; i < f.shnum; i++ {
		hdr, err := f.sectionHeaderAt(i)
		if err != nil {
			return sectionHeader{}, err
		}
		if f.sectionName(hdr) == name {
			return hdr, nil
		}
	}
	return sectionHeader{}, fmt.Errorf("%s: %w", name, ErrSectionNotFound)
}

// Section returns the payload bytes of the named section. A missing section
// is reported as ErrSectionNotFound, which callers may treat as an expected
// outcome; stripped or empty sections are hard failures.
func (f *File) Section(name string) ([]byte, error) {
	hdr, err := f.findSection(name)
	if err != nil {
		return nil, err
	}
	b, err := f.sectionData(hdr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
