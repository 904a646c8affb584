// Package printer renders parsed declaration trees for human inspection,
// as indented text or as JSON.
package printer

import (
	"fmt"
	"io"

	"github.com/es02/kabi-dw/pkg/ast"
)

const DefaultIndentSize = 2

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// ShowHeader includes the CU and source-file lines.
	// Default: false
	ShowHeader bool
}

// Printer writes a declaration tree to an io.Writer.
type Printer struct {
	writer io.Writer
	opts   Options
}

// New creates a Printer with defaults filled in.
func New(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{writer: w, opts: opts}
}

// Print renders one parsed declaration file.
func (p *Printer) Print(f *ast.File) error {
	switch p.opts.Format {
	case FormatText:
		return p.printText(f)
	case FormatJSON:
		return p.printJSON(f)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}
