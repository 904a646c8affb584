package declfile

import "fmt"

// Kind classifies a scanned token.
type Kind int

const (
	EOF Kind = iota
	Newline
	Ident   // bare name: member, type, or reserved word checked literally
	String  // quoted string, quotes stripped
	FileRef // unquoted source-file reference such as include/linux/fs.h
	Int     // unsigned decimal constant

	LBrace   // {
	RBrace   // }
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	Star     // *
	Colon    // :
	Minus    // -
	Assign   // =
	Ellipsis // ...
	At       // @

	KwStruct
	KwUnion
	KwEnum
	KwFunc
	KwTypedef
	KwConst
	KwVolatile
)

var kindNames = map[Kind]string{
	EOF:        "end of input",
	Newline:    "newline",
	Ident:      "identifier",
	String:     "string",
	FileRef:    "file reference",
	Int:        "integer",
	LBrace:     "'{'",
	RBrace:     "'}'",
	LParen:     "'('",
	RParen:     "')'",
	LBracket:   "'['",
	RBracket:   "']'",
	Star:       "'*'",
	Colon:      "':'",
	Minus:      "'-'",
	Assign:     "'='",
	Ellipsis:   "'...'",
	At:         "'@'",
	KwStruct:   "'struct'",
	KwUnion:    "'union'",
	KwEnum:     "'enum'",
	KwFunc:     "'func'",
	KwTypedef:  "'typedef'",
	KwConst:    "'const'",
	KwVolatile: "'volatile'",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Token is one classified token with its position for diagnostics.
type Token struct {
	Kind Kind
	Text string // identifier/string/fileref text, quotes stripped
	Num  uint64 // value of an Int token
	Line int    // 1-based input line
}

var keywords = map[string]Kind{
	kwStruct:   KwStruct,
	kwUnion:    KwUnion,
	kwEnum:     KwEnum,
	kwFunc:     KwFunc,
	kwTypedef:  KwTypedef,
	kwConst:    KwConst,
	kwVolatile: KwVolatile,
}
