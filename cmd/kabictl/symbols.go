package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/es02/kabi-dw/pkg/ksym"
)

func init() {
	rootCmd.AddCommand(newSymbolsCmd())
}

func newSymbolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbols <object>...",
		Short: "List the symbols kernel objects export",
		Long: `The symbols command reads the export string pool out of one or more
kernel object files and lists every exported symbol name. Files that are not
ELF objects, or that export nothing, are skipped.

Example:
  kabictl symbols vmlinux.o
  kabictl symbols drivers/net/*.ko --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSymbols(args)
		},
	}
	return cmd
}

type symbolReport struct {
	File    string   `json:"file"`
	Symbols []string `json:"symbols"`
}

func runSymbols(paths []string) error {
	reports := []symbolReport{}

	for _, path := range paths {
		printVerbose("Reading %s\n", path)
		t, err := ksym.Read(path, ksym.ReadOptions{Logger: logger()})
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if t == nil {
			printVerbose("Skipping %s: no exported symbols\n", path)
			continue
		}

		names := make([]string, 0, t.Len())
		t.ForEach(func(s *ksym.Ksym) {
			names = append(names, s.Name())
		})
		sort.Strings(names)
		reports = append(reports, symbolReport{File: path, Symbols: names})
	}

	if jsonOut {
		return printJSON(reports)
	}

	for _, r := range reports {
		printInfo("%s:\n", r.File)
		for _, name := range r.Symbols {
			printInfo("  %s\n", name)
		}
	}
	return nil
}
