package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docforge/modmap/pkg/reflection"
	"github.com/docforge/modmap/pkg/remap"
)

func TestPackagesToData(t *testing.T) {
	packages := []remap.PackageResult{
		{
			Name:       "core",
			ID:         1,
			Members:    []string{"/work/src/core/index.ts", "/work/src/core/util.ts"},
			ReadmePath: "/work/src/core/readme.md",
		},
		{
			Name: "extras",
			ID:   7,
		},
	}

	data := PackagesToData(packages, false)
	assert.Equal(t, []string{"Package", "ID", "Members", "Readme"}, data.Headers)
	assert.Equal(t, []string{"core", "1", "index.ts, util.ts", "/work/src/core/readme.md"}, data.Rows[0])
	assert.Equal(t, []string{"extras", "7", "-", "-"}, data.Rows[1])

	wide := PackagesToData(packages, true)
	assert.Equal(t, "/work/src/core/index.ts, /work/src/core/util.ts", wide.Rows[0][2])
}

func TestFormatMembers(t *testing.T) {
	tests := []struct {
		name     string
		members  []string
		wide     bool
		expected string
	}{
		{"empty", nil, false, "-"},
		{"few", []string{"/a/one.ts", "/a/two.ts"}, false, "one.ts, two.ts"},
		{"many", []string{"/a/1.ts", "/a/2.ts", "/a/3.ts", "/a/4.ts"}, false, "4 files"},
		{"wide keeps paths", []string{"/a/1.ts", "/a/2.ts", "/a/3.ts", "/a/4.ts"}, true, "/a/1.ts, /a/2.ts, /a/3.ts, /a/4.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMembers(tt.members, tt.wide))
		})
	}
}

func TestResultToData(t *testing.T) {
	result := remap.NewResult()
	result.FilesMatched = 3
	result.Renamed = 1
	result.Metadata.Pattern = `^src/([^/]+)/`
	result.Finalize()

	data := ResultToData(result)
	assert.Equal(t, []string{"Field", "Value"}, data.Headers)
	assert.Contains(t, data.Rows, []string{"Pattern", `^src/([^/]+)/`})
	assert.Contains(t, data.Rows, []string{"Files Matched", "3"})
	assert.Contains(t, data.Rows, []string{"Renamed", "1"})
}

func TestTreeToData(t *testing.T) {
	project := reflection.NewProject()
	pkg := project.Create(reflection.KindModule, "/work/src/core/index.ts", reflection.None)
	pkg.Name = "core"
	pkg.Package = true
	project.Create(reflection.KindFunction, "open", pkg.ID)
	project.Create(reflection.KindModule, "extras", reflection.None)

	data := TreeToData(project)
	assert.Equal(t, []string{"Kind", "Name", "Children", "Source"}, data.Headers)
	assert.Len(t, data.Rows, 2)
	assert.Equal(t, []string{reflection.PackageLabel, "core", "1", "/work/src/core/index.ts"}, data.Rows[0])
	assert.Equal(t, []string{"Module", "extras", "0", "-"}, data.Rows[1])
}
