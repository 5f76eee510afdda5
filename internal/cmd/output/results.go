package output

import (
	"fmt"
	"io"

	"github.com/docforge/modmap/internal/cmd/globals"
	"github.com/docforge/modmap/internal/cmd/table"
	"github.com/docforge/modmap/internal/treeio"
	"github.com/docforge/modmap/pkg/reflection"
	"github.com/docforge/modmap/pkg/remap"
)

// FormatResult handles the common pattern of formatting a mapping
// result for output. This encapsulates the switch logic for different
// output formats.
func FormatResult(w io.Writer, result *remap.Result, globalFlags *globals.Flags) error {
	format, err := ParseFormat(globalFlags.Output)
	if err != nil {
		return err
	}

	switch format {
	case FormatTable, FormatWide, "":
		return writeResultTables(w, result, format == FormatWide, globalFlags.Quiet)
	default:
		return NewFormatter(format).Format(w, result)
	}
}

// FormatTree renders the top level of a reflection tree.
func FormatTree(w io.Writer, project *reflection.Project, globalFlags *globals.Flags) error {
	format, err := ParseFormat(globalFlags.Output)
	if err != nil {
		return err
	}

	switch format {
	case FormatTable, FormatWide, "":
		return NewFormatter(format).Format(w, table.TreeToData(project))
	default:
		return NewFormatter(format).Format(w, treeio.ToDocument(project))
	}
}

// FormatAny handles the common pattern of formatting any data type for
// output. This is useful for commands with custom data structures.
func FormatAny(w io.Writer, data any, globalFlags *globals.Flags) error {
	format, err := ParseFormat(globalFlags.Output)
	if err != nil {
		return err
	}
	return NewFormatter(format).Format(w, data)
}

// writeResultTables renders the human-readable result view: summary
// line, package table, then any warnings.
func writeResultTables(w io.Writer, result *remap.Result, wide, quiet bool) error {
	fmt.Fprintln(w, result.Summary())
	if quiet {
		return nil
	}

	if len(result.Packages) > 0 {
		fmt.Fprintln(w)
		formatter := &TableFormatter{Wide: wide}
		if err := formatter.Format(w, table.PackagesToData(result.Packages, wide)); err != nil {
			return err
		}
	}

	if !result.IsClean() {
		fmt.Fprintln(w)
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "warning: %s\n", warning)
		}
	}

	return nil
}
