// Package ksym builds the registry of symbols a compiled kernel object
// actually exports.
//
// The EXPORT_SYMBOL() machinery leaves every exported name in the object's
// __ksymtab_strings section as a NUL-terminated string pool. Read locates
// that section and turns it into a Ksymtab: a name-keyed set of entries,
// each carrying a value (the name's ordinal within the pool, or a binary
// address when entries come from the symbol table) and a one-way mark used
// by callers to cross off symbols they have matched against something else.
//
// A kernel object without the section simply exports nothing; Read reports
// that as an absent result, not an error. Objects from debuginfo packages,
// whose allocated sections are stripped to NOBITS, are rejected outright.
package ksym
