package elffile

import "encoding/binary"

// synthSection describes one section of a synthetic ELF image.
type synthSection struct {
	name   string
	typ    uint32
	link   uint32
	data   []byte
	nobits bool
}

// synthELF assembles a minimal ELF64 image: file header, section payloads,
// an auto-generated .shstrtab, then the section header table. Section 0 is
// the mandatory null entry.
func synthELF(bigEndian bool, secs []synthSection) []byte {
	var ord binary.ByteOrder = binary.LittleEndian
	encoding := byte(Data2LSB)
	if bigEndian {
		ord = binary.BigEndian
		encoding = Data2MSB
	}

	// Section-name string table: leading NUL, then each name NUL-terminated.
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

	img := make([]byte, HeaderSize)

	// Section payloads.
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
	shnum := len(secs) + 2 // null + sections + .shstrtab

	putShdr := func(nameOff, typ uint32, off, size uint64, link uint32) {
		hdr := make([]byte, SectionHeaderSize)
		ord.PutUint32(hdr[OffSecName:], nameOff)
		ord.PutUint32(hdr[OffSecType:], typ)
		ord.PutUint64(hdr[OffSecOffset:], off)
		ord.PutUint64(hdr[OffSecSize:], size)
		ord.PutUint32(hdr[OffSecLink:], link)
		img = append(img, hdr...)
	}

	putShdr(0, 0, 0, 0, 0) // null section
	for i, s := range secs {
		putShdr(nameOff[i], s.typ, secOff[i], uint64(len(s.data)), s.link)
	}
	putShdr(shstrtabNameOff, SecTypeStrtab, shstrtabOff, uint64(len(shstrtab)), 0)

	// File header.
	copy(img, Magic)
	img[IdentClass] = Class64
	img[IdentData] = encoding
	img[IdentVersion] = CurrentVersion
	ord.PutUint64(img[OffShOff:], shoff)
	ord.PutUint16(img[OffShEntSize:], SectionHeaderSize)
	ord.PutUint16(img[OffShNum:], uint16(shnum))
	ord.PutUint16(img[OffShStrNdx:], uint16(shnum-1))

	return img
}

// synthSym encodes one symbol table record.
func synthSym(bigEndian bool, nameIdx uint32, bind Binding, value uint64) []byte {
	var ord binary.ByteOrder = binary.LittleEndian
	if bigEndian {
		ord = binary.BigEndian
	}
	b := make([]byte, SymSize)
	ord.PutUint32(b[OffSymName:], nameIdx)
	b[OffSymInfo] = byte(bind) << 4
	ord.PutUint64(b[OffSymValue:], value)
	return b
}
