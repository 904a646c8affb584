// Package elffile houses a low-level reader for 64-bit ELF kernel objects.
// The goal is to keep the decoding focused and allocation-free where possible
// so higher-level packages can orchestrate the data in a more ergonomic form.
// Only the pieces a kernel-ABI inspector needs are decoded: the file header,
// the section header table, and the symbol table records.
package elffile

var (
	// Magic is the four-byte signature at the start of every ELF object.
	// Layout:
	//   0x00  0x7f 'E' 'L' 'F'
	Magic = []byte{0x7f, 'E', 'L', 'F'}
)

// e_ident layout. The ident block is endian-independent.
const (
	IdentSize    = 16
	IdentClass   = 4 // 1 = 32-bit, 2 = 64-bit
	IdentData    = 5 // 1 = little-endian, 2 = big-endian
	IdentVersion = 6

	Class64        = 2
	Data2LSB       = 1
	Data2MSB       = 2
	CurrentVersion = 1
)

// ELF64 file header. Multi-byte fields follow the encoding declared at
// IdentData.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------
//	 0x00    16   e_ident
//	 0x10     2   e_type
//	 0x12     2   e_machine
//	 0x14     4   e_version
//	 0x18     8   e_entry
//	 0x20     8   e_phoff
//	 0x28     8   e_shoff    section header table offset
//	 0x30     4   e_flags
//	 0x34     2   e_ehsize
//	 0x36     2   e_phentsize
//	 0x38     2   e_phnum
//	 0x3A     2   e_shentsize
//	 0x3C     2   e_shnum    0 means extended numbering
//	 0x3E     2   e_shstrndx 0xffff means extended numbering
const (
	HeaderSize = 64

	OffShOff       = 0x28
	OffShEntSize   = 0x3A
	OffShNum       = 0x3C
	OffShStrNdx    = 0x3E
	ShStrNdxXIndex = 0xffff
)

// ELF64 section header.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------
//	 0x00     4   sh_name    index into the section-name string table
//	 0x04     4   sh_type
//	 0x08     8   sh_flags
//	 0x10     8   sh_addr
//	 0x18     8   sh_offset
//	 0x20     8   sh_size
//	 0x28     4   sh_link
//	 0x2C     4   sh_info
//	 0x30     8   sh_addralign
//	 0x38     8   sh_entsize
const (
	SectionHeaderSize = 64

	OffSecName   = 0x00
	OffSecType   = 0x04
	OffSecOffset = 0x18
	OffSecSize   = 0x20
	OffSecLink   = 0x28
)

// Section types the reader distinguishes.
const (
	SecTypeSymtab = 2
	SecTypeStrtab = 3
	SecTypeNobits = 8
)

// ELF64 symbol table record.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------
//	 0x00     4   st_name    index into the linked string table
//	 0x04     1   st_info    binding in the high nibble
//	 0x05     1   st_other
//	 0x06     2   st_shndx
//	 0x08     8   st_value
//	 0x10     8   st_size
const (
	SymSize = 24

	OffSymName  = 0x00
	OffSymInfo  = 0x04
	OffSymValue = 0x08
)

// Binding is the ELF symbol binding class stored in the high nibble of
// st_info. Only global and weak symbols are externally visible.
type Binding uint8

const (
	BindLocal  Binding = 0
	BindGlobal Binding = 1
	BindWeak   Binding = 2
)

func (b Binding) String() string {
	switch b {
	case BindLocal:
		return "local"
	case BindGlobal:
		return "global"
	case BindWeak:
		return "weak"
	default:
		return "unknown"
	}
}

// Exported reports whether the binding class marks a symbol as externally
// visible.
func (b Binding) Exported() bool {
	return b == BindGlobal || b == BindWeak
}
