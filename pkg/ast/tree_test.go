package ast

import "testing"

func TestRootVariantsImplementDecl(t *testing.T) {
	roots := []Decl{
		&Struct{Name: "task_struct"},
		&Union{Name: "sigval"},
		&Enum{Name: "pid_type"},
		&Func{Name: "printk", Return: &Base{Name: "int"}},
		&Typedef{Name: "atomic_t", Type: &Base{Name: "int"}},
		&Var{Name: "jiffies", Type: &Base{Name: "u64"}},
	}
	for _, r := range roots {
		if r == nil {
			t.Fatal("nil root")
		}
	}
}

func TestWalkPreOrder(t *testing.T) {
	decl := &Struct{
		Name: "device",
		Members: []*StructMember{
			{Name: "parent", Offset: 0, Type: &Ptr{Elem: &Base{Name: "struct device"}}},
			{Name: "name", Offset: 8, Type: &Array{Size: 32, Elem: &Base{Name: "char"}}},
			{Name: "flags", Offset: 40, Bits: &BitRange{First: 0, Last: 3}, Type: &Base{Name: "u32"}},
		},
	}

	var names []string
	Walk(decl, func(n Node) bool {
		switch n := n.(type) {
		case *Struct:
			names = append(names, "struct:"+n.Name)
		case *StructMember:
			names = append(names, "member:"+n.Name)
		case *Base:
			names = append(names, "base:"+n.Name)
		}
		return true
	})

	want := []string{
		"struct:device",
		"member:parent", "base:struct device",
		"member:name", "base:char",
		"member:flags", "base:u32",
	}
	if len(names) != len(want) {
		t.Fatalf("walk order %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("walk order %v, want %v", names, want)
		}
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	decl := &Typedef{Name: "cb_t", Type: &Ptr{Elem: &Func{
		Return: &Base{Name: "void"},
		Args:   []*Field{{Name: "arg", Type: &Base{Name: "int"}}},
	}}}

	visited := 0
	Walk(decl, func(n Node) bool {
		visited++
		_, isPtr := n.(*Ptr)
		return !isPtr // stop below the pointer
	})
	if visited != 2 { // typedef + ptr only
		t.Fatalf("visited %d nodes, want 2", visited)
	}
}

func TestQualifierString(t *testing.T) {
	if QualConst.String() != "const" || QualVolatile.String() != "volatile" {
		t.Fatal("qualifier names wrong")
	}
}
