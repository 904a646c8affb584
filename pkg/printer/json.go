package printer

import (
	"encoding/json"
	"fmt"

	"github.com/es02/kabi-dw/pkg/ast"
)

// jsonFile is the top-level JSON document.
type jsonFile struct {
	CU      string   `json:"cu"`
	SrcRef  string   `json:"src"`
	SrcLine uint64   `json:"line"`
	Decl    jsonNode `json:"decl"`
}

// jsonNode is a uniform rendition of any AST node. Kind discriminates;
// only the fields meaningful for that kind are populated.
type jsonNode struct {
	Kind     string     `json:"kind"`
	Name     string     `json:"name,omitempty"`
	Path     string     `json:"path,omitempty"`
	Qual     string     `json:"qualifier,omitempty"`
	Offset   *uint64    `json:"offset,omitempty"`
	Bits     string     `json:"bits,omitempty"`
	Size     uint64     `json:"size,omitempty"`
	Value    *uint64    `json:"value,omitempty"`
	Type     *jsonNode  `json:"type,omitempty"`
	Members  []jsonNode `json:"members,omitempty"`
	Args     []jsonNode `json:"args,omitempty"`
	Return   *jsonNode  `json:"return,omitempty"`
	Variadic bool       `json:"variadic,omitempty"`
}

func (p *Printer) printJSON(f *ast.File) error {
	doc := jsonFile{CU: f.CU, SrcRef: f.SrcRef, SrcLine: f.SrcLine, Decl: toJSON(f.Decl)}
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func toJSON(n ast.Node) jsonNode {
	switch n := n.(type) {
	case *ast.Base:
		return jsonNode{Kind: "base", Name: n.Name}
	case *ast.ExternRef:
		return jsonNode{Kind: "reference", Path: n.Path}
	case *ast.Ptr:
		t := toJSON(n.Elem)
		return jsonNode{Kind: "pointer", Type: &t}
	case *ast.Array:
		t := toJSON(n.Elem)
		return jsonNode{Kind: "array", Size: n.Size, Type: &t}
	case *ast.Qualified:
		t := toJSON(n.Inner)
		return jsonNode{Kind: "qualified", Qual: n.Qual.String(), Type: &t}
	case *ast.Struct:
		out := jsonNode{Kind: "struct", Name: n.Name, Members: []jsonNode{}}
		for _, m := range n.Members {
			out.Members = append(out.Members, toJSON(m))
		}
		return out
	case *ast.StructMember:
		t := toJSON(n.Type)
		off := n.Offset
		out := jsonNode{Kind: "member", Name: n.Name, Offset: &off, Type: &t}
		if n.Bits != nil {
			out.Bits = fmt.Sprintf("%d-%d", n.Bits.First, n.Bits.Last)
		}
		return out
	case *ast.Field:
		t := toJSON(n.Type)
		return jsonNode{Kind: "field", Name: n.Name, Type: &t}
	case *ast.Union:
		out := jsonNode{Kind: "union", Name: n.Name, Members: []jsonNode{}}
		for _, m := range n.Members {
			out.Members = append(out.Members, toJSON(m))
		}
		return out
	case *ast.Constant:
		v := n.Value
		return jsonNode{Kind: "constant", Name: n.Name, Value: &v}
	case *ast.Enum:
		out := jsonNode{Kind: "enum", Name: n.Name, Members: []jsonNode{}}
		for _, m := range n.Members {
			out.Members = append(out.Members, toJSON(m))
		}
		return out
	case *ast.Func:
		ret := toJSON(n.Return)
		out := jsonNode{Kind: "func", Name: n.Name, Return: &ret, Variadic: n.Variadic}
		for _, a := range n.Args {
			out.Args = append(out.Args, toJSON(a))
		}
		return out
	case *ast.Typedef:
		t := toJSON(n.Type)
		return jsonNode{Kind: "typedef", Name: n.Name, Type: &t}
	case *ast.Var:
		t := toJSON(n.Type)
		return jsonNode{Kind: "var", Name: n.Name, Type: &t}
	default:
		return jsonNode{Kind: "unknown"}
	}
}
