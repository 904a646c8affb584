package declfile

import "errors"

var (
	// ErrSyntax indicates the token stream did not match the declaration
	// grammar. The parser stops at the first mismatch; no tree is returned.
	ErrSyntax = errors.New("declfile: syntax error")
	// ErrHeader indicates the CU or File line did not start with its
	// reserved keyword.
	ErrHeader = errors.New("declfile: malformed header")
	// ErrBitRange indicates a bit-field member whose range violates
	// 0 <= first <= last <= 255.
	ErrBitRange = errors.New("declfile: bit-field range out of bounds")
	// ErrUnterminatedString indicates a quoted string ran into a newline or
	// the end of input.
	ErrUnterminatedString = errors.New("declfile: unterminated string")
	// ErrBadChar indicates a byte no token can start with.
	ErrBadChar = errors.New("declfile: unexpected character")
)
