package table

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/docforge/modmap/pkg/reflection"
	"github.com/docforge/modmap/pkg/remap"
)

// memberPreview caps how many member files a package row lists before
// collapsing to a count.
const memberPreview = 3

// PackagesToData converts package results to table format. Wide output
// lists full member paths instead of base names.
func PackagesToData(packages []remap.PackageResult, wide bool) Data {
	headers := []string{"Package", "ID", "Members", "Readme"}

	rows := make([][]string, 0, len(packages))
	for _, pkg := range packages {
		rows = append(rows, []string{
			pkg.Name,
			fmt.Sprintf("%d", pkg.ID),
			FormatMembers(pkg.Members, wide),
			FormatPath(pkg.ReadmePath),
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignLeft, AlignLeft},
	}
}

// ResultToData converts run counters and metadata to a key-value table.
func ResultToData(result *remap.Result) Data {
	rows := [][]string{
		{"Pattern", formatPattern(result.Metadata.Pattern)},
		{"Files Matched", fmt.Sprintf("%d", result.FilesMatched)},
		{"Renamed", fmt.Sprintf("%d", result.Renamed)},
		{"Merged", fmt.Sprintf("%d", result.Merged)},
		{"Children Relocated", fmt.Sprintf("%d", result.ChildrenRelocated)},
		{"Packages Annotated", fmt.Sprintf("%d", result.PackagesAnnotated)},
		{"Readmes Attached", fmt.Sprintf("%d", result.ReadmesAttached)},
		{"Described", fmt.Sprintf("%d", result.Described)},
		{"Warnings", fmt.Sprintf("%d", len(result.Warnings))},
		{"Duration", result.Metadata.Duration.String()},
	}

	return Data{
		Headers: []string{"Field", "Value"},
		Rows:    rows,
	}
}

// TreeToData converts the top level of a reflection tree to table format.
func TreeToData(project *reflection.Project) Data {
	headers := []string{"Kind", "Name", "Children", "Source"}

	roots := project.Roots()
	rows := make([][]string, 0, len(roots))
	for _, root := range roots {
		rows = append(rows, []string{
			root.KindLabel(),
			root.Name,
			fmt.Sprintf("%d", len(root.Children)),
			FormatPath(sourceOf(root)),
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignLeft},
	}
}

// FormatMembers renders a package's member files for a table cell.
func FormatMembers(members []string, wide bool) string {
	if len(members) == 0 {
		return "-"
	}
	if wide {
		return strings.Join(members, ", ")
	}
	if len(members) > memberPreview {
		return fmt.Sprintf("%d files", len(members))
	}

	names := make([]string, len(members))
	for i, member := range members {
		names[i] = filepath.Base(member)
	}
	return strings.Join(names, ", ")
}

// FormatPath renders an optional file path for a table cell.
func FormatPath(path string) string {
	if path == "" {
		return "-"
	}
	return path
}

func formatPattern(pattern string) string {
	if pattern == "" {
		return "-"
	}
	return pattern
}

// sourceOf reports where a reflection came from, when it still points
// at a file that differs from its display name.
func sourceOf(r *reflection.Reflection) string {
	if r.OriginalName == r.Name {
		return ""
	}
	return r.OriginalName
}
