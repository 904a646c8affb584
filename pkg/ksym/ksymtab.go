package ksym

// Ksym is one symbol entry. Entries are created by their owning Ksymtab and
// mutated only through it; the mark is one-way.
type Ksym struct {
	name   string
	value  uint64
	alias  string
	marked bool
	owner  *Ksymtab
}

// Name returns the symbol name, the entry's unique key within its set.
func (s *Ksym) Name() string { return s.name }

// Value returns the ordinal position (string-pool entries) or binary
// address (symbol-table entries) stored on the entry.
func (s *Ksym) Value() uint64 { return s.value }

// Alias returns the optional alias string, empty when unset. Its business
// meaning belongs to the comparison logic that sets it.
func (s *Ksym) Alias() string { return s.alias }

// SetAlias replaces the alias; an empty string clears it.
func (s *Ksym) SetAlias(alias string) { s.alias = alias }

// IsMarked reports whether Mark has been called on the entry.
func (s *Ksym) IsMarked() bool { return s.marked }

// Mark flags the entry. Idempotent: only the first call bumps the owning
// set's marked count. Marking an entry evicted by a duplicate Add flags
// the stale handle only; the live set's count is untouched.
func (s *Ksym) Mark() {
	if !s.marked && s.owner != nil {
		s.owner.markCount++
	}
	s.marked = true
}

// Ksymtab owns a set of symbol entries keyed by name and keeps a live count
// of marked entries.
type Ksymtab struct {
	syms      map[string]*Ksym
	markCount int
}

// New returns an empty symbol set.
func New() *Ksymtab {
	return &Ksymtab{syms: make(map[string]*Ksym)}
}

// Add creates an entry and inserts it, returning the new entry. Adding a
// name that already exists replaces the old entry; if the replaced entry
// was marked the marked count drops with it.
func (t *Ksymtab) Add(name string, value uint64) *Ksym {
	if old, ok := t.syms[name]; ok {
		if old.marked {
			t.markCount--
		}
		// Detach so a retained handle can no longer touch the set.
		old.owner = nil
	}
	s := &Ksym{name: name, value: value, owner: t}
	t.syms[name] = s
	return s
}

// Copy inserts a new entry into t duplicating another entry's name, value,
// and alias. The mark does not travel.
func (t *Ksymtab) Copy(src *Ksym) *Ksym {
	s := t.Add(src.name, src.value)
	s.alias = src.alias
	return s
}

// Find returns the entry for name, or nil when absent.
func (t *Ksymtab) Find(name string) *Ksym {
	if t == nil || name == "" {
		return nil
	}
	return t.syms[name]
}

// Len returns the number of entries. A nil set is empty.
func (t *Ksymtab) Len() int {
	if t == nil {
		return 0
	}
	return len(t.syms)
}

// MarkCount returns how many entries are currently marked.
func (t *Ksymtab) MarkCount() int {
	if t == nil {
		return 0
	}
	return t.markCount
}

// ForEach visits every entry in unspecified order.
func (t *Ksymtab) ForEach(fn func(*Ksym)) {
	if t == nil {
		return
	}
	for _, s := range t.syms {
		fn(s)
	}
}

// ForEachUnmarked visits every entry whose mark is unset, passing the name
// and stored value.
func (t *Ksymtab) ForEachUnmarked(fn func(name string, value uint64)) {
	t.ForEach(func(s *Ksym) {
		if !s.marked {
			fn(s.name, s.value)
		}
	})
}
