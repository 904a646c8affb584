package declfile

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/es02/kabi-dw/pkg/ast"
)

// Options controls parsing behavior.
type Options struct {
	// Logger receives debug-level trace output. nil discards.
	Logger *slog.Logger
}

// Parse consumes one declaration dump and returns its tree. The grammar
// needs a single token of lookahead; the first mismatch aborts the parse
// with no partial tree.
func Parse(data []byte, opts Options) (*ast.File, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := &parser{lx: newLexer(data), log: log}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	f, err := p.parseFile()
	if err != nil {
		return nil, err
	}
	log.Debug("parsed declaration", "cu", f.CU, "src", f.SrcRef, "line", f.SrcLine)
	return f, nil
}

// ParseFile reads and parses the declaration dump at path.
func ParseFile(path string, opts Options) (*ast.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read declaration file: %w", err)
	}
	return Parse(data, opts)
}

type parser struct {
	lx          *lexer
	curt, nextt Token
	log         *slog.Logger
}

func (p *parser) advance() error {
	p.curt = p.nextt
	t, err := p.lx.next()
	if err != nil {
		return err
	}
	p.nextt = t
	return nil
}

func (p *parser) expect(k Kind) (Token, error) {
	tok := p.curt
	if tok.Kind != k {
		return Token{}, fmt.Errorf("line %d: expected %s, got %s: %w", tok.Line, k, tok.Kind, ErrSyntax)
	}
	return tok, p.advance()
}

// acceptNewline consumes one newline if present.
func (p *parser) acceptNewline() error {
	if p.curt.Kind == Newline {
		return p.advance()
	}
	return nil
}

// fileRef accepts either an unquoted file reference or a quoted string in
// file-reference position.
func (p *parser) fileRef() (Token, error) {
	tok := p.curt
	if tok.Kind != FileRef && tok.Kind != String {
		return Token{}, fmt.Errorf("line %d: expected file reference, got %s: %w", tok.Line, tok.Kind, ErrSyntax)
	}
	return tok, p.advance()
}

// keywordLine checks the literal reserved word opening a header line.
func (p *parser) keywordLine(word string) error {
	tok := p.curt
	if tok.Kind != Ident || tok.Text != word {
		return fmt.Errorf("line %d: expected %q keyword: %w", tok.Line, word, ErrHeader)
	}
	return p.advance()
}

func (p *parser) parseFile() (*ast.File, error) {
	f := &ast.File{}

	// CU "<compile-unit-path>"
	if err := p.keywordLine(HeaderKeyword); err != nil {
		return nil, err
	}
	cu, err := p.expect(String)
	if err != nil {
		return nil, err
	}
	f.CU = cu.Text
	if _, err := p.expect(Newline); err != nil {
		return nil, err
	}

	// File <ref> : <line>
	if err := p.keywordLine(SourceKeyword); err != nil {
		return nil, err
	}
	ref, err := p.fileRef()
	if err != nil {
		return nil, err
	}
	f.SrcRef = ref.Text
	if _, err := p.expect(Colon); err != nil {
		return nil, err
	}
	n, err := p.expect(Int)
	if err != nil {
		return nil, err
	}
	f.SrcLine = n.Num
	if _, err := p.expect(Newline); err != nil {
		return nil, err
	}

	decl, err := p.parseDecl()
	if err != nil {
		return nil, err
	}
	f.Decl = decl

	// Trailing line terminator, then nothing.
	if _, err := p.expect(Newline); err != nil {
		return nil, err
	}
	if _, err := p.expect(EOF); err != nil {
		return nil, err
	}
	return f, nil
}

func (p *parser) parseDecl() (ast.Decl, error) {
	switch p.curt.Kind {
	case KwStruct:
		return p.parseStruct()
	case KwUnion:
		return p.parseUnion()
	case KwEnum:
		return p.parseEnum()
	case KwFunc:
		return p.parseFunc()
	case KwTypedef:
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.expect(Ident)
		if err != nil {
			return nil, err
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.Typedef{Name: name.Text, Type: t}, nil
	case Ident:
		if p.curt.Text != VarKeyword {
			return nil, fmt.Errorf("line %d: expected %q keyword, got %q: %w",
				p.curt.Line, VarKeyword, p.curt.Text, ErrHeader)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.expect(Ident)
		if err != nil {
			return nil, err
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.Var{Name: name.Text, Type: t}, nil
	default:
		return nil, fmt.Errorf("line %d: expected declaration, got %s: %w",
			p.curt.Line, p.curt.Kind, ErrSyntax)
	}
}

func (p *parser) parseStruct() (*ast.Struct, error) {
	if _, err := p.expect(KwStruct); err != nil {
		return nil, err
	}
	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}
	s := &ast.Struct{Name: name.Text}

	if _, err := p.expect(LBrace); err != nil {
		return nil, err
	}
	if err := p.acceptNewline(); err != nil {
		return nil, err
	}
	for p.curt.Kind != RBrace {
		m, err := p.parseStructMember()
		if err != nil {
			return nil, err
		}
		s.Members = append(s.Members, m)
		if p.curt.Kind != Newline {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(RBrace); err != nil {
		return nil, err
	}
	return s, nil
}

// parseStructMember parses `OFFSET NAME TYPE` or the bit-field form
// `OFFSET : FIRST - LAST NAME TYPE`.
func (p *parser) parseStructMember() (*ast.StructMember, error) {
	off, err := p.expect(Int)
	if err != nil {
		return nil, err
	}
	m := &ast.StructMember{Offset: off.Num}

	if p.curt.Kind == Colon {
		if err := p.advance(); err != nil {
			return nil, err
		}
		first, err := p.expect(Int)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(Minus); err != nil {
			return nil, err
		}
		last, err := p.expect(Int)
		if err != nil {
			return nil, err
		}
		if last.Num > MaxBit || first.Num > last.Num {
			return nil, fmt.Errorf("line %d: offset %d bits %d-%d: %w",
				first.Line, off.Num, first.Num, last.Num, ErrBitRange)
		}
		m.Bits = &ast.BitRange{First: uint8(first.Num), Last: uint8(last.Num)}
	}

	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}
	m.Name = name.Text
	m.Type, err = p.parseType()
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (p *parser) parseUnion() (*ast.Union, error) {
	if _, err := p.expect(KwUnion); err != nil {
		return nil, err
	}
	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}
	u := &ast.Union{Name: name.Text}

	if _, err := p.expect(LBrace); err != nil {
		return nil, err
	}
	if err := p.acceptNewline(); err != nil {
		return nil, err
	}
	for p.curt.Kind != RBrace {
		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		u.Members = append(u.Members, f)
		if p.curt.Kind != Newline {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(RBrace); err != nil {
		return nil, err
	}
	return u, nil
}

// parseField parses a plain `NAME TYPE` element.
func (p *parser) parseField() (*ast.Field, error) {
	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.Field{Name: name.Text, Type: t}, nil
}

func (p *parser) parseEnum() (*ast.Enum, error) {
	if _, err := p.expect(KwEnum); err != nil {
		return nil, err
	}
	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}
	e := &ast.Enum{Name: name.Text}

	if _, err := p.expect(LBrace); err != nil {
		return nil, err
	}
	if err := p.acceptNewline(); err != nil {
		return nil, err
	}
	for p.curt.Kind != RBrace {
		cName, err := p.expect(Ident)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(Assign); err != nil {
			return nil, err
		}
		val, err := p.expect(Int)
		if err != nil {
			return nil, err
		}
		e.Members = append(e.Members, &ast.Constant{Name: cName.Text, Value: val.Num})
		if p.curt.Kind != Newline {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(RBrace); err != nil {
		return nil, err
	}
	if len(e.Members) == 0 {
		return nil, fmt.Errorf("line %d: enum %s has no members: %w", name.Line, e.Name, ErrSyntax)
	}
	return e, nil
}

func (p *parser) parseFunc() (*ast.Func, error) {
	if _, err := p.expect(KwFunc); err != nil {
		return nil, err
	}

	// `func @ref`: the prototype lives in another file as a typedef.
	if p.curt.Kind == At {
		if err := p.advance(); err != nil {
			return nil, err
		}
		ref, err := p.fileRef()
		if err != nil {
			return nil, err
		}
		return &ast.Func{Return: &ast.ExternRef{Path: ref.Text}}, nil
	}

	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}
	fn := &ast.Func{Name: name.Text, Args: []*ast.Field{}}

	if _, err := p.expect(LParen); err != nil {
		return nil, err
	}
	if err := p.acceptNewline(); err != nil {
		return nil, err
	}
	for p.curt.Kind != RParen {
		if fn.Variadic {
			return nil, fmt.Errorf("line %d: argument after variadic marker: %w", p.curt.Line, ErrSyntax)
		}
		argName, err := p.expect(Ident)
		if err != nil {
			return nil, err
		}
		if p.curt.Kind == Ellipsis {
			if err := p.advance(); err != nil {
				return nil, err
			}
			fn.Variadic = true
		} else {
			t, err := p.parseType()
			if err != nil {
				return nil, err
			}
			fn.Args = append(fn.Args, &ast.Field{Name: argName.Text, Type: t})
		}
		if p.curt.Kind != Newline {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(RParen); err != nil {
		return nil, err
	}
	// The return type conventionally sits on the line after ')'.
	if err := p.acceptNewline(); err != nil {
		return nil, err
	}

	fn.Return, err = p.parseType()
	if err != nil {
		return nil, err
	}
	return fn, nil
}

// parseType parses the recursive type grammar: a bare name, an external
// reference, a nested definition, a pointer, an array dimension, or a
// qualifier prefixing another type.
func (p *parser) parseType() (ast.Type, error) {
	switch p.curt.Kind {
	case Ident:
		t := &ast.Base{Name: p.curt.Text}
		return t, p.advance()
	case At:
		if err := p.advance(); err != nil {
			return nil, err
		}
		ref, err := p.fileRef()
		if err != nil {
			return nil, err
		}
		return &ast.ExternRef{Path: ref.Text}, nil
	case Star:
		if err := p.advance(); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.Ptr{Elem: elem}, nil
	case LBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		size, err := p.expect(Int)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RBracket); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.Array{Size: size.Num, Elem: elem}, nil
	case KwConst, KwVolatile:
		qual := ast.QualConst
		if p.curt.Kind == KwVolatile {
			qual = ast.QualVolatile
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.Qualified{Qual: qual, Inner: inner}, nil
	case KwStruct:
		return p.parseStruct()
	case KwUnion:
		return p.parseUnion()
	case KwEnum:
		return p.parseEnum()
	case KwFunc:
		return p.parseFunc()
	default:
		return nil, fmt.Errorf("line %d: expected type, got %s: %w", p.curt.Line, p.curt.Kind, ErrSyntax)
	}
}
