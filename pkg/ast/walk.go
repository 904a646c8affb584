package ast

// File is one fully parsed declaration file: the two header lines plus the
// single declaration root.
type File struct {
	CU      string // compile unit path from the CU header line
	SrcRef  string // source file reference from the File line
	SrcLine uint64 // line number within the source file

	Decl Decl
}

// Walk traverses the tree rooted at n in pre-order. fn is invoked for every
// node; returning false skips that node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Ptr:
		Walk(n.Elem, fn)
	case *Array:
		Walk(n.Elem, fn)
	case *Qualified:
		Walk(n.Inner, fn)
	case *Struct:
		for _, m := range n.Members {
			Walk(m, fn)
		}
	case *StructMember:
		Walk(n.Type, fn)
	case *Field:
		Walk(n.Type, fn)
	case *Union:
		for _, m := range n.Members {
			Walk(m, fn)
		}
	case *Enum:
		for _, m := range n.Members {
			Walk(m, fn)
		}
	case *Func:
		Walk(n.Return, fn)
		for _, a := range n.Args {
			Walk(a, fn)
		}
	case *Typedef:
		Walk(n.Type, fn)
	case *Var:
		Walk(n.Type, fn)
	}
}
