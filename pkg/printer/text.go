package printer

import (
	"fmt"
	"strings"

	"github.com/es02/kabi-dw/pkg/ast"
)

func (p *Printer) printText(f *ast.File) error {
	if p.opts.ShowHeader {
		fmt.Fprintf(p.writer, "CU %q\n", f.CU)
		fmt.Fprintf(p.writer, "File %s : %d\n", f.SrcRef, f.SrcLine)
	}
	p.printNode(f.Decl, 0)
	fmt.Fprintln(p.writer)
	return nil
}

func (p *Printer) indent(depth int) string {
	return strings.Repeat(" ", depth*p.opts.IndentSize)
}

// printNode renders a declaration or nested aggregate across lines.
func (p *Printer) printNode(n ast.Node, depth int) {
	ind := p.indent(depth)
	switch n := n.(type) {
	case *ast.Struct:
		fmt.Fprintf(p.writer, "%sstruct %s {", ind, n.Name)
		for _, m := range n.Members {
			fmt.Fprintf(p.writer, "\n%s", p.indent(depth+1))
			if m.Bits != nil {
				fmt.Fprintf(p.writer, "%d:%d-%d %s ", m.Offset, m.Bits.First, m.Bits.Last, m.Name)
			} else {
				fmt.Fprintf(p.writer, "%d %s ", m.Offset, m.Name)
			}
			p.printType(m.Type, depth+1)
		}
		if len(n.Members) > 0 {
			fmt.Fprintf(p.writer, "\n%s}", ind)
		} else {
			fmt.Fprint(p.writer, " }")
		}
	case *ast.Union:
		fmt.Fprintf(p.writer, "%sunion %s {", ind, n.Name)
		for _, m := range n.Members {
			fmt.Fprintf(p.writer, "\n%s%s ", p.indent(depth+1), m.Name)
			p.printType(m.Type, depth+1)
		}
		if len(n.Members) > 0 {
			fmt.Fprintf(p.writer, "\n%s}", ind)
		} else {
			fmt.Fprint(p.writer, " }")
		}
	case *ast.Enum:
		fmt.Fprintf(p.writer, "%senum %s {", ind, n.Name)
		for _, c := range n.Members {
			fmt.Fprintf(p.writer, "\n%s%s = %d", p.indent(depth+1), c.Name, c.Value)
		}
		fmt.Fprintf(p.writer, "\n%s}", ind)
	case *ast.Func:
		if ref, ok := n.Return.(*ast.ExternRef); ok && n.Name == "" {
			fmt.Fprintf(p.writer, "%sfunc @%s", ind, ref.Path)
			return
		}
		fmt.Fprintf(p.writer, "%sfunc %s (", ind, n.Name)
		for _, a := range n.Args {
			fmt.Fprintf(p.writer, "\n%s%s ", p.indent(depth+1), a.Name)
			p.printType(a.Type, depth+1)
		}
		if n.Variadic {
			fmt.Fprintf(p.writer, "\n%sarg ...", p.indent(depth+1))
		}
		if len(n.Args) > 0 || n.Variadic {
			fmt.Fprintf(p.writer, "\n%s)\n%s", ind, ind)
		} else {
			fmt.Fprint(p.writer, " ) ")
		}
		p.printType(n.Return, depth)
	case *ast.Typedef:
		fmt.Fprintf(p.writer, "%stypedef %s ", ind, n.Name)
		p.printType(n.Type, depth)
	case *ast.Var:
		fmt.Fprintf(p.writer, "%svar %s ", ind, n.Name)
		p.printType(n.Type, depth)
	}
}

// printType renders a type inline; nested aggregates open their own lines.
func (p *Printer) printType(t ast.Type, depth int) {
	switch t := t.(type) {
	case *ast.Base:
		fmt.Fprint(p.writer, t.Name)
	case *ast.ExternRef:
		fmt.Fprintf(p.writer, "@%q", t.Path)
	case *ast.Ptr:
		fmt.Fprint(p.writer, "*")
		p.printType(t.Elem, depth)
	case *ast.Array:
		fmt.Fprintf(p.writer, "[%d]", t.Size)
		p.printType(t.Elem, depth)
	case *ast.Qualified:
		fmt.Fprintf(p.writer, "%s ", t.Qual)
		p.printType(t.Inner, depth)
	case *ast.Struct, *ast.Union, *ast.Enum, *ast.Func:
		// Aggregates defined inline restart block layout at this depth.
		fmt.Fprintln(p.writer)
		p.printNode(t, depth)
	}
}
