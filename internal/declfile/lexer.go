package declfile

import (
	"fmt"
	"strconv"
)

// lexer scans a declaration dump into tokens. Words are maximal runs of
// [A-Za-z0-9_./]; a run of digits is an integer, a run containing '.' or '/'
// is a file reference, anything else is an identifier or keyword. '-' is
// always punctuation so bit ranges like 3-9 split cleanly.
type lexer struct {
	src  []byte
	pos  int
	line int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src, line: 1}
}

var punct = map[byte]Kind{
	'{': LBrace,
	'}': RBrace,
	'(': LParen,
	')': RParen,
	'[': LBracket,
	']': RBracket,
	'*': Star,
	':': Colon,
	'-': Minus,
	'=': Assign,
	'@': At,
}

func isWordByte(c byte) bool {
	return c == '_' || c == '.' || c == '/' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// next returns the next token or an error. EOF is a regular token so the
// parser's one-token lookahead never runs dry.
func (l *lexer) next() (Token, error) {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == ' ' || c == '\t' || c == '\r' {
			l.pos++
			continue
		}
		break
	}
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Line: l.line}, nil
	}

	c := l.src[l.pos]
	line := l.line

	if c == '\n' {
		l.pos++
		l.line++
		return Token{Kind: Newline, Line: line}, nil
	}

	if c == '.' && l.pos+2 < len(l.src) && l.src[l.pos+1] == '.' && l.src[l.pos+2] == '.' {
		l.pos += 3
		return Token{Kind: Ellipsis, Line: line}, nil
	}

	if k, ok := punct[c]; ok {
		l.pos++
		return Token{Kind: k, Line: line}, nil
	}

	if c == '"' {
		return l.scanString()
	}

	if isWordByte(c) {
		return l.scanWord()
	}

	return Token{}, fmt.Errorf("line %d: %q: %w", line, c, ErrBadChar)
}

func (l *lexer) scanString() (Token, error) {
	line := l.line
	l.pos++ // opening quote
	start := l.pos
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '"':
			text := string(l.src[start:l.pos])
			l.pos++
			return Token{Kind: String, Text: text, Line: line}, nil
		case '\n':
			return Token{}, fmt.Errorf("line %d: %w", line, ErrUnterminatedString)
		}
		l.pos++
	}
	return Token{}, fmt.Errorf("line %d: %w", line, ErrUnterminatedString)
}

func (l *lexer) scanWord() (Token, error) {
	line := l.line
	start := l.pos
	digitsOnly := true
	fileRef := false
	for l.pos < len(l.src) && isWordByte(l.src[l.pos]) {
		c := l.src[l.pos]
		if !isDigit(c) {
			digitsOnly = false
		}
		if c == '.' || c == '/' {
			fileRef = true
		}
		l.pos++
	}
	text := string(l.src[start:l.pos])

	switch {
	case digitsOnly:
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return Token{}, fmt.Errorf("line %d: constant %q: %w", line, text, ErrSyntax)
		}
		return Token{Kind: Int, Text: text, Num: n, Line: line}, nil
	case fileRef:
		return Token{Kind: FileRef, Text: text, Line: line}, nil
	default:
		if k, ok := keywords[text]; ok {
			return Token{Kind: k, Text: text, Line: line}, nil
		}
		return Token{Kind: Ident, Text: text, Line: line}, nil
	}
}
