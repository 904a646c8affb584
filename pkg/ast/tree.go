package ast

// Node is implemented by every AST variant.
type Node interface{ isNode() }

// Type is any node usable where the declaration grammar expects a type.
type Type interface {
	Node
	isType()
}

// Decl is a node that may stand as the single root of a declaration file.
type Decl interface {
	Node
	isDecl()
}

// Base is a named primitive or opaque type, identified only by its name.
type Base struct {
	Name string
}

// ExternRef is an unresolved reference to a type fully defined in another
// declaration file. Path is the referenced file as written in the dump.
type ExternRef struct {
	Path string
}

// Ptr wraps its pointee type.
type Ptr struct {
	Elem Type
}

// Array is one array dimension. Multi-dimensional arrays nest Array nodes,
// terminating in a non-array element type.
type Array struct {
	Size uint64
	Elem Type
}

// Qualifier is a type qualifier keyword.
type Qualifier int

const (
	QualConst Qualifier = iota
	QualVolatile
)

func (q Qualifier) String() string {
	switch q {
	case QualConst:
		return "const"
	case QualVolatile:
		return "volatile"
	default:
		return "qualifier?"
	}
}

// Qualified prefixes another type with const or volatile.
type Qualified struct {
	Qual  Qualifier
	Inner Type
}

// BitRange is the bit span `[First, Last]` of a bit-field member within its
// byte offset. Always 0 <= First <= Last <= 255.
type BitRange struct {
	First uint8
	Last  uint8
}

// StructMember is one member line of a struct. Bits is nil for plain
// members and set for bit fields.
type StructMember struct {
	Name   string
	Type   Type
	Offset uint64
	Bits   *BitRange
}

// Struct is an aggregate with offset-carrying members in declaration order.
type Struct struct {
	Name    string
	Members []*StructMember
}

// Field is a plain name/type pair: a union member or a function argument.
type Field struct {
	Name string
	Type Type
}

// Union is an aggregate whose members all start at offset zero, so member
// lines carry no offsets.
type Union struct {
	Name    string
	Members []*Field
}

// Constant is one enumerator.
type Constant struct {
	Name  string
	Value uint64
}

// Enum is an enumeration with its constants in declaration order.
type Enum struct {
	Name    string
	Members []*Constant
}

// Func is a function prototype.
//
// The `func @ref` form, used when a prototype is itself defined as a typedef
// elsewhere, yields Name == "", Return holding the ExternRef, and Args nil.
// A parenthesized empty argument list yields a non-nil empty Args slice, so
// the two cases stay distinguishable.
type Func struct {
	Name     string
	Return   Type
	Args     []*Field
	Variadic bool
}

// Typedef names an aliased type.
type Typedef struct {
	Name string
	Type Type
}

// Var is a variable declaration.
type Var struct {
	Name string
	Type Type
}

func (*Base) isNode()         {}
func (*ExternRef) isNode()    {}
func (*Ptr) isNode()          {}
func (*Array) isNode()        {}
func (*Qualified) isNode()    {}
func (*Struct) isNode()       {}
func (*StructMember) isNode() {}
func (*Field) isNode()        {}
func (*Union) isNode()        {}
func (*Constant) isNode()     {}
func (*Enum) isNode()         {}
func (*Func) isNode()         {}
func (*Typedef) isNode()      {}
func (*Var) isNode()          {}

func (*Base) isType()      {}
func (*ExternRef) isType() {}
func (*Ptr) isType()       {}
func (*Array) isType()     {}
func (*Qualified) isType() {}
func (*Struct) isType()    {}
func (*Union) isType()     {}
func (*Enum) isType()      {}
func (*Func) isType()      {}

func (*Struct) isDecl()  {}
func (*Union) isDecl()   {}
func (*Enum) isDecl()    {}
func (*Func) isDecl()    {}
func (*Typedef) isDecl() {}
func (*Var) isDecl()     {}
