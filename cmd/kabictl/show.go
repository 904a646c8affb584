package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/es02/kabi-dw/internal/declfile"
	"github.com/es02/kabi-dw/internal/writer"
	"github.com/es02/kabi-dw/pkg/printer"
)

func init() {
	rootCmd.AddCommand(newShowCmd())
}

func newShowCmd() *cobra.Command {
	var (
		indentSize int
		noHeader   bool
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "show <declfile>...",
		Short: "Parse declaration files and pretty-print them",
		Long: `The show command parses one or more kernel declaration dump files
and prints the declaration they contain, either as indented text or as JSON.

Example:
  kabictl show var--jiffies.txt
  kabictl show func--printk.txt --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args, indentSize, noHeader, outPath)
		},
	}

	cmd.Flags().IntVar(&indentSize, "indent", printer.DefaultIndentSize, "Spaces per indent level")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the CU and source-file lines")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write output to a file instead of stdout")
	return cmd
}

func runShow(paths []string, indentSize int, noHeader bool, outPath string) error {
	format := printer.FormatText
	if jsonOut {
		format = printer.FormatJSON
	}

	var out io.Writer = os.Stdout
	var buf bytes.Buffer
	if outPath != "" {
		out = &buf
	}

	p := printer.New(out, printer.Options{
		Format:     format,
		IndentSize: indentSize,
		ShowHeader: !noHeader && !jsonOut,
	})
	opts := declfile.Options{Logger: logger()}

	for _, path := range paths {
		printVerbose("Parsing %s\n", path)
		f, err := declfile.ParseFile(path, opts)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if err := p.Print(f); err != nil {
			return fmt.Errorf("failed to print %s: %w", path, err)
		}
	}

	if outPath != "" {
		w := &writer.FileWriter{Path: outPath}
		if err := w.WriteDump(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
	}
	return nil
}
