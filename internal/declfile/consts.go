// Package declfile parses kABI declaration dumps: one textual kernel
// type/symbol declaration per file, produced by the debug-info extractor.
// The scanner turns raw bytes into classified tokens and the parser builds
// the ast tree from them with one token of lookahead.
package declfile

// Reserved words checked literally against identifier tokens. Case matters;
// a header spelled "cu" is rejected.
const (
	HeaderKeyword = "CU"   // first line: CU "<compile-unit>"
	SourceKeyword = "File" // second line: File <ref> : <line>
	VarKeyword    = "var"  // variable declaration
)

// Keywords the scanner classifies as dedicated token kinds.
const (
	kwStruct   = "struct"
	kwUnion    = "union"
	kwEnum     = "enum"
	kwFunc     = "func"
	kwTypedef  = "typedef"
	kwConst    = "const"
	kwVolatile = "volatile"
)

// MaxBit is the largest representable bit position of a bit-field member.
const MaxBit = 255
