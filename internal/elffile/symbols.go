package elffile

import (
	"fmt"

	"github.com/es02/kabi-dw/internal/buf"
)

// SymtabSection and its conventional string table.
const (
	SymtabSection = ".symtab"
	StrtabSection = ".strtab"
)

// Sym is one decoded symbol table record.
type Sym struct {
	NameIndex uint32
	Info      uint8
	Value     uint64
}

// Binding extracts the binding class from the high nibble of st_info.
func (s Sym) Binding() Binding {
	return Binding(s.Info >> 4)
}

// Symtab locates the symbol table and the string table its sh_link field
// names. When the object carries no .symtab the miss is reported as
// ErrSectionNotFound.
func (f *File) Symtab() (syms []byte, strtab []byte, err error) {
	hdr, err := f.findSection(SymtabSection)
	if err != nil {
		return nil, nil, err
	}
	syms, err = f.sectionData(hdr)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", SymtabSection, err)
	}

	link := int(hdr.link)
	if link <= 0 || link >= f.shnum {
		return nil, nil, fmt.Errorf("%s: string table link %d: %w", SymtabSection, link, ErrTruncated)
	}
	strHdr, err := f.sectionHeaderAt(link)
	if err != nil {
		return nil, nil, err
	}
	strtab, err = f.sectionData(strHdr)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", f.sectionName(strHdr), err)
	}
	return syms, strtab, nil
}

// NumSyms returns how many fixed-size records the table bytes hold.
func NumSyms(table []byte) int {
	return len(table) / SymSize
}

// SymAt decodes record i of a symbol table.
func (f *File) SymAt(table []byte, i int) (Sym, error) {
	if _, err := buf.CheckTableBounds(len(table), 0, i+1, SymSize); err != nil {
		return Sym{}, fmt.Errorf("symbol %d: %w", i, ErrTruncated)
	}
	b := table[i*SymSize:]
	return Sym{
		NameIndex: f.u32(b[OffSymName:]),
		Info:      b[OffSymInfo],
		Value:     f.u64(b[OffSymValue:]),
	}, nil
}
