// Package report renders mapping results as markdown documents.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/docforge/modmap/pkg/constants"
	"github.com/docforge/modmap/pkg/errors"
	"github.com/docforge/modmap/pkg/remap"
)

// timeFormat is the layout used for run timestamps.
const timeFormat = "2006-01-02 15:04:05 UTC"

// memberPreviewLimit caps how many member files a package row lists
// before collapsing to a count.
const memberPreviewLimit = 3

// Render returns the report for result as a markdown string.
func Render(result *remap.Result) (string, error) {
	buffer := &strings.Builder{}
	if err := Write(buffer, result); err != nil {
		return "", err
	}
	return buffer.String(), nil
}

// Write renders the report for result to w.
func Write(w io.Writer, result *remap.Result) error {
	if result == nil {
		return &errors.ValidationError{Field: "result", Message: "cannot be nil"}
	}

	doc := md.NewMarkdown(w)

	doc.H1("Module Mapping Report").LF()
	doc.PlainText(result.Summary()).LF().LF()

	writeRun(doc, result)
	writeCounters(doc, result)
	writePackages(doc, result)
	writeWarnings(doc, result)

	return doc.Build()
}

// Save renders the report for result and writes it to path, creating
// parent directories as needed.
func Save(path string, result *remap.Result) error {
	content, err := Render(result)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create directory", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// writeRun renders the run metadata table.
func writeRun(doc *md.Markdown, result *remap.Result) {
	doc.H2("Run").LF()

	pattern := "—"
	if result.Metadata.Pattern != "" {
		pattern = md.Code(result.Metadata.Pattern)
	}

	rows := [][]string{
		{"**Pattern**", pattern},
		{"**Started**", result.Metadata.StartedAt.Format(timeFormat)},
		{"**Finished**", result.Metadata.FinishedAt.Format(timeFormat)},
		{"**Duration**", result.Metadata.Duration.String()},
	}
	if result.Metadata.Disabled {
		rows = append(rows, []string{"**Disabled**", "yes"})
	}

	doc.Table(md.TableSet{
		Header: []string{"Field", "Value"},
		Rows:   rows,
	}).LF()
}

// writeCounters renders the counter table.
func writeCounters(doc *md.Markdown, result *remap.Result) {
	doc.H2("Counters").LF()

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Files matched", fmt.Sprintf("%d", result.FilesMatched)},
			{"Modules renamed", fmt.Sprintf("%d", result.Renamed)},
			{"Modules merged", fmt.Sprintf("%d", result.Merged)},
			{"Children relocated", fmt.Sprintf("%d", result.ChildrenRelocated)},
			{"Packages annotated", fmt.Sprintf("%d", result.PackagesAnnotated)},
			{"Readmes attached", fmt.Sprintf("%d", result.ReadmesAttached)},
			{"Descriptions generated", fmt.Sprintf("%d", result.Described)},
		},
	}).LF()
}

// writePackages renders one row per logical package. Packages arrive
// already sorted by name from Finalize.
func writePackages(doc *md.Markdown, result *remap.Result) {
	if len(result.Packages) == 0 {
		return
	}

	doc.H2("Packages").LF()

	var rows [][]string
	for _, pkg := range result.Packages {
		rows = append(rows, []string{
			md.Bold(pkg.Name),
			memberCell(pkg.Members),
			readmeCell(pkg.ReadmePath),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"Package", "Members", "Description File"},
		Rows:   rows,
	}).LF()
}

// writeWarnings renders the warning list, if any warnings were recorded.
func writeWarnings(doc *md.Markdown, result *remap.Result) {
	if result.IsClean() {
		return
	}

	doc.H2("Warnings").LF()
	doc.BulletList(result.Warnings...).LF()
}

// memberCell lists up to memberPreviewLimit member file names, falling
// back to a count for larger packages.
func memberCell(members []string) string {
	if len(members) == 0 {
		return "—"
	}
	if len(members) > memberPreviewLimit {
		return fmt.Sprintf("%d files", len(members))
	}

	names := make([]string, len(members))
	for i, member := range members {
		names[i] = md.Code(filepath.Base(member))
	}
	return strings.Join(names, ", ")
}

func readmeCell(path string) string {
	if path == "" {
		return "—"
	}
	return md.Code(path)
}
