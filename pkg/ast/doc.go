// Package ast provides the in-memory abstract syntax tree for kABI
// declaration files.
//
// Each parsed file yields exactly one Decl root describing a single kernel
// type or symbol: a struct, union, enum, function, typedef, or variable.
// Nested types hang off the root as Type nodes, so the whole declaration is
// one plain tree with no back-references; dropping the root releases
// everything.
//
// The node set is a closed sum: every variant implements Node, type-position
// variants additionally implement Type, and root-capable variants implement
// Decl. Consumers dispatch with a type switch; the compiler, not a tag
// field, decides which fields exist on which node.
//
// References to types defined in other declaration files (the "@" syntax)
// stay unresolved as ExternRef nodes. Resolving them is the business of
// whoever owns the whole dump directory, not of a single tree.
package ast
