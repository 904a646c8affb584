package ksym

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/encoding/charmap"

	"github.com/es02/kabi-dw/internal/elffile"
)

// KsymtabStrings is the section EXPORT_SYMBOL() fills with the NUL-separated
// names of everything the object exports.
const KsymtabStrings = "__ksymtab_strings"

// ErrMalformedPool indicates the string pool did not end with the required
// NUL terminator.
var ErrMalformedPool = errors.New("ksym: malformed " + KsymtabStrings + " section")

// VisitFunc receives one enumerated symbol-table entry.
type VisitFunc func(name string, value uint64, binding elffile.Binding)

// ReadOptions controls Read.
type ReadOptions struct {
	// Logger receives debug-level trace output. nil discards.
	Logger *slog.Logger
	// Visit replaces the default symbol-table visitor, which logs each
	// exported symbol through Logger.
	Visit VisitFunc
}

// ParseStringPool scans a string pool left to right and inserts every
// non-empty NUL-terminated name into a fresh set. Ordinals are dense and
// assigned in scan order; empty runs of NUL bytes neither produce entries
// nor consume ordinals.
func ParseStringPool(data []byte) (*Ksymtab, error) {
	if len(data) == 0 || data[len(data)-1] != 0 {
		return nil, ErrMalformedPool
	}
	t := New()
	ordinal := uint64(0)
	start := 0
	for i, b := range data {
		if b != 0 {
			continue
		}
		if i > start {
			t.Add(decodeName(data[start:i]), ordinal)
			ordinal++
		}
		start = i + 1
	}
	return t, nil
}

// ForEachExported walks the object's symbol table and invokes visit for
// every externally-bound entry: global or weak binding, non-zero name
// index. The mandatory reserved first record is skipped. A name index past
// the end of the linked string table aborts the walk.
func ForEachExported(f *elffile.File, visit VisitFunc) error {
	syms, strtab, err := f.Symtab()
	if err != nil {
		return err
	}
	n := elffile.NumSyms(syms)
	for i := 1; i < n; i++ {
		s, err := f.SymAt(syms, i)
		if err != nil {
			return err
		}
		if !s.Binding().Exported() {
			continue
		}
		if s.NameIndex == 0 {
			continue
		}
		if int64(s.NameIndex) >= int64(len(strtab)) {
			return fmt.Errorf("symbol %d: %w", i, elffile.ErrNameOutOfRange)
		}
		visit(decodeName(cstring(strtab[s.NameIndex:])), s.Value, s.Binding())
	}
	return nil
}

// Read builds the set of names a kernel object exports.
//
// A file that is not an ELF object, or one lacking the export string pool,
// yields (nil, nil): nothing exported, nothing to report. When the pool is
// present the symbol table is additionally walked with the configured
// visitor so callers can cross-reference addresses and bindings.
func Read(path string, opts ReadOptions) (*Ksymtab, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	f, err := elffile.Open(path)
	if err != nil {
		if errors.Is(err, elffile.ErrNotElf) {
			log.Debug("not a supported container", "path", path)
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	pool, err := f.Section(KsymtabStrings)
	if err != nil {
		if errors.Is(err, elffile.ErrSectionNotFound) {
			log.Debug("no exported symbols", "path", path)
			return nil, nil
		}
		return nil, err
	}

	t, err := ParseStringPool(pool)
	if err != nil {
		return nil, err
	}

	visit := opts.Visit
	if visit == nil {
		visit = func(name string, value uint64, binding elffile.Binding) {
			log.Debug("symbol", "name", name, "value", fmt.Sprintf("%#x", value), "binding", binding.String())
		}
	}
	if err := ForEachExported(f, visit); err != nil {
		if errors.Is(err, elffile.ErrSectionNotFound) {
			// No .symtab at all; the export pool alone still stands.
			log.Debug("no symbol table", "path", path)
			return t, nil
		}
		return nil, err
	}
	return t, nil
}

// cstring returns the bytes before the first NUL, or all of b when no NUL
// follows.
func cstring(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

// decodeName converts raw string-table bytes to a string. Plain ASCII stays
// as-is; anything else goes through the Latin-1 decoder.
func decodeName(b []byte) string {
	ascii := true
	for _, c := range b {
		if c >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}
