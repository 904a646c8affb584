package elffile

import "errors"

var (
	// ErrNotElf indicates the file is not an ELF object at all. Callers treat
	// this as "not a supported container" rather than a hard failure.
	ErrNotElf = errors.New("elffile: not an ELF object")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("elffile: truncated object")
	// ErrUnsupportedClass indicates a 32-bit object; only the 64-bit class is supported.
	ErrUnsupportedClass = errors.New("elffile: unsupported ELF class")
	// ErrBadEncoding indicates an unknown value in the data-encoding ident byte.
	ErrBadEncoding = errors.New("elffile: unknown data encoding")
	// ErrSectionNotFound indicates no section of the requested name exists.
	ErrSectionNotFound = errors.New("elffile: section not found")
	// ErrSectionStripped indicates the section exists but its bytes were
	// stripped out (SHT_NOBITS). Seen on modules from debuginfo packages,
	// which carry only .debug* payloads; those objects are unsupported.
	ErrSectionStripped = errors.New("elffile: section stripped to NOBITS")
	// ErrSectionEmpty indicates a located section carries no data.
	ErrSectionEmpty = errors.New("elffile: section empty")
	// ErrNameOutOfRange indicates a symbol's name index points past the end
	// of its string table.
	ErrNameOutOfRange = errors.New("elffile: symbol name index out of range")
)
