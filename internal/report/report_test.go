package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/modmap/pkg/errors"
	"github.com/docforge/modmap/pkg/remap"
)

func sampleResult() *remap.Result {
	result := remap.NewResult()
	result.FilesMatched = 3
	result.Renamed = 1
	result.Merged = 2
	result.ChildrenRelocated = 2
	result.PackagesAnnotated = 2
	result.ReadmesAttached = 1
	result.Metadata.Pattern = `^src/([^/]+)/`
	result.Packages = append(result.Packages,
		remap.PackageResult{
			Name:       "zeta",
			ID:         5,
			Members:    []string{"/work/src/zeta/index.ts"},
			ReadmePath: "",
		},
		remap.PackageResult{
			Name:       "alpha",
			ID:         1,
			Members:    []string{"/work/src/alpha/index.ts", "/work/src/alpha/util.ts"},
			ReadmePath: "/work/src/alpha/readme.md",
		},
	)
	result.Finalize()
	return result
}

func TestWriteRendersSections(t *testing.T) {
	out, err := Render(sampleResult())
	require.NoError(t, err)

	assert.Contains(t, out, "# Module Mapping Report")
	assert.Contains(t, out, "Mapped 3 files into 2 packages (1 renamed, 2 merged, 2 children relocated).")
	assert.Contains(t, out, "## Run")
	assert.Contains(t, out, "## Counters")
	assert.Contains(t, out, "## Packages")
	assert.Contains(t, out, "Files matched")
	assert.Contains(t, out, "Descriptions generated")
	assert.NotContains(t, out, "## Warnings")
	assert.NotContains(t, out, "**Disabled**")
}

func TestWriteRunTable(t *testing.T) {
	result := sampleResult()
	result.Metadata.FinishedAt = utc.Time{Time: time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)}
	result.Metadata.Duration = 1500 * time.Microsecond

	out, err := Render(result)
	require.NoError(t, err)

	assert.Contains(t, out, "**Pattern**")
	assert.Contains(t, out, "`^src/([^/]+)/`")
	assert.Contains(t, out, "2026-08-25 10:30:00 UTC")
	assert.Contains(t, out, "1.5ms")
}

func TestWritePackageRows(t *testing.T) {
	out, err := Render(sampleResult())
	require.NoError(t, err)

	assert.Contains(t, out, "**alpha**")
	assert.Contains(t, out, "**zeta**")
	assert.Contains(t, out, "`index.ts`, `util.ts`")
	assert.Contains(t, out, "`/work/src/alpha/readme.md`")

	// Finalize orders packages by name.
	assert.Less(t, strings.Index(out, "**alpha**"), strings.Index(out, "**zeta**"))
}

func TestWriteWarnings(t *testing.T) {
	result := sampleResult()
	result.Warnf("no description found for package %s", "zeta")

	out, err := Render(result)
	require.NoError(t, err)

	assert.Contains(t, out, "## Warnings")
	assert.Contains(t, out, "no description found for package zeta")
}

func TestWriteDisabledRun(t *testing.T) {
	result := remap.NewResult()
	result.Metadata.Disabled = true
	result.Finalize()

	out, err := Render(result)
	require.NoError(t, err)

	assert.Contains(t, out, "Module mapping disabled. Tree unchanged.")
	assert.Contains(t, out, "**Disabled**")
	assert.NotContains(t, out, "## Packages")
}

func TestWriteNilResult(t *testing.T) {
	err := Write(&strings.Builder{}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestMemberCell(t *testing.T) {
	tests := []struct {
		name     string
		members  []string
		expected string
	}{
		{"empty", nil, "—"},
		{"single", []string{"/work/src/core/index.ts"}, "`index.ts`"},
		{"few", []string{"/a/one.ts", "/a/two.ts"}, "`one.ts`, `two.ts`"},
		{"many", []string{"/a/1.ts", "/a/2.ts", "/a/3.ts", "/a/4.ts"}, "4 files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, memberCell(tt.members))
		})
	}
}

func TestSaveWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.md")

	require.NoError(t, Save(path, sampleResult()))
	assert.FileExists(t, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Module Mapping Report")
}
