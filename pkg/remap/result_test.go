package remap

import (
	"strings"
	"testing"
)

// TestResultSummary tests the human-readable summaries.
func TestResultSummary(t *testing.T) {
	disabled := NewResult()
	disabled.Metadata.Disabled = true
	if got := disabled.Summary(); got != "Module mapping disabled. Tree unchanged." {
		t.Errorf("Summary() = %q", got)
	}

	r := NewResult()
	r.FilesMatched = 3
	r.Renamed = 1
	r.Merged = 2
	r.ChildrenRelocated = 5
	r.Packages = append(r.Packages, PackageResult{Name: "core"})
	got := r.Summary()
	if !strings.Contains(got, "3 files") || !strings.Contains(got, "1 packages") {
		t.Errorf("Summary() = %q, want file and package counts", got)
	}
	if strings.Contains(got, "warnings") {
		t.Errorf("Summary() = %q, mentions warnings on a clean run", got)
	}

	r.Warnf("no description found for package %s", "core")
	if got := r.Summary(); !strings.Contains(got, "1 warnings") {
		t.Errorf("Summary() = %q, want warning count", got)
	}
}

// TestResultWarnf tests warning accumulation.
func TestResultWarnf(t *testing.T) {
	r := NewResult()
	if !r.IsClean() {
		t.Error("new result not clean")
	}

	r.Warnf("pending rename to %s skipped", "core")
	r.Warnf("no description found for package %s", "auth")

	if r.IsClean() || len(r.Warnings) != 2 {
		t.Fatalf("warnings = %v, want 2", r.Warnings)
	}
	if r.Warnings[0] != "pending rename to core skipped" {
		t.Errorf("warnings[0] = %q", r.Warnings[0])
	}
}

// TestResultClone tests that clones share nothing with the original.
func TestResultClone(t *testing.T) {
	r := NewResult()
	r.FilesMatched = 2
	r.Packages = append(r.Packages, PackageResult{
		Name:    "core",
		ID:      1,
		Members: []string{"/work/src/core/index.ts"},
	})
	r.Warnf("no description found for package %s", "core")

	clone := r.Clone()
	clone.FilesMatched = 99
	clone.Packages[0].Name = "renamed"
	clone.Packages[0].Members[0] = "/elsewhere.ts"
	clone.Warnings[0] = "rewritten"

	if r.FilesMatched != 2 {
		t.Errorf("FilesMatched = %d, want 2", r.FilesMatched)
	}
	if r.Packages[0].Name != "core" || r.Packages[0].Members[0] != "/work/src/core/index.ts" {
		t.Errorf("original package mutated: %+v", r.Packages[0])
	}
	if r.Warnings[0] != "no description found for package core" {
		t.Errorf("original warning mutated: %q", r.Warnings[0])
	}

	var nilResult *Result
	if nilResult.Clone() != nil {
		t.Error("Clone() of nil result != nil")
	}
}

// TestResultFinalize tests duration accounting and package ordering.
func TestResultFinalize(t *testing.T) {
	r := NewResult()
	r.Packages = []PackageResult{{Name: "zeta"}, {Name: "alpha"}, {Name: "mid"}}

	r.Finalize()

	if r.Metadata.FinishedAt.Time.Before(r.Metadata.StartedAt.Time) {
		t.Error("FinishedAt before StartedAt")
	}
	if r.Metadata.Duration < 0 {
		t.Errorf("Duration = %v, want non-negative", r.Metadata.Duration)
	}

	names := []string{r.Packages[0].Name, r.Packages[1].Name, r.Packages[2].Name}
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("package order = %v, want %v", names, want)
		}
	}
}
