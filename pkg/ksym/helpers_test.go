package ksym

import (
	"encoding/binary"

	"github.com/es02/kabi-dw/internal/elffile"
)

// testSection describes one section of a synthetic little-endian ELF image.
type testSection struct {
	name   string
	typ    uint32
	link   uint32
	data   []byte
	nobits bool
}

// buildELF assembles a minimal ELF64 image: file header, section payloads,
// an auto-generated .shstrtab, then the section header table.
func buildELF(secs []testSection) []byte {
	ord := binary.LittleEndian

	shstrtab := []byte{0}
	nameOff := make([]uint32, len(secs))
	for i, s := range secs {
		nameOff[i] = uint32(len(shstrtab))
		shstrtab = append(shstrtab, s.name...)
		shstrtab = append(shstrtab, 0)
	}
	shstrtabNameOff := uint32(len(shstrtab))
	shstrtab = append(shstrtab, ".shstrtab"...)
	shstrtab = append(shstrtab, 0)

	img := make([]byte, elffile.HeaderSize)

	secOff := make([]uint64, len(secs))
	for i, s := range secs {
		secOff[i] = uint64(len(img))
		if !s.nobits {
			img = append(img, s.data...)
		}
	}
	shstrtabOff := uint64(len(img))
	img = append(img, shstrtab...)

	shoff := uint64(len(img))
	shnum := len(secs) + 2

	putShdr := func(nameOff, typ uint32, off, size uint64, link uint32) {
		hdr := make([]byte, elffile.SectionHeaderSize)
		ord.PutUint32(hdr[elffile.OffSecName:], nameOff)
		ord.PutUint32(hdr[elffile.OffSecType:], typ)
		ord.PutUint64(hdr[elffile.OffSecOffset:], off)
		ord.PutUint64(hdr[elffile.OffSecSize:], size)
		ord.PutUint32(hdr[elffile.OffSecLink:], link)
		img = append(img, hdr...)
	}

	putShdr(0, 0, 0, 0, 0)
	for i, s := range secs {
		putShdr(nameOff[i], s.typ, secOff[i], uint64(len(s.data)), s.link)
	}
	putShdr(shstrtabNameOff, elffile.SecTypeStrtab, shstrtabOff, uint64(len(shstrtab)), 0)

	copy(img, elffile.Magic)
	img[elffile.IdentClass] = elffile.Class64
	img[elffile.IdentData] = elffile.Data2LSB
	img[elffile.IdentVersion] = elffile.CurrentVersion
	ord.PutUint64(img[elffile.OffShOff:], shoff)
	ord.PutUint16(img[elffile.OffShEntSize:], elffile.SectionHeaderSize)
	ord.PutUint16(img[elffile.OffShNum:], uint16(shnum))
	ord.PutUint16(img[elffile.OffShStrNdx:], uint16(shnum-1))

	return img
}

// buildSym encodes one symbol table record.
func buildSym(nameIdx uint32, bind elffile.Binding, value uint64) []byte {
	b := make([]byte, elffile.SymSize)
	binary.LittleEndian.PutUint32(b[elffile.OffSymName:], nameIdx)
	b[elffile.OffSymInfo] = byte(bind) << 4
	binary.LittleEndian.PutUint64(b[elffile.OffSymValue:], value)
	return b
}
