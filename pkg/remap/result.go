package remap

import (
	"fmt"
	"sort"
	"time"

	"github.com/agentstation/utc"

	"github.com/docforge/modmap/pkg/reflection"
)

// Result represents the outcome of a remapping run.
type Result struct {
	// Counters
	FilesMatched      int `json:"files_matched" yaml:"files_matched"`           // source files the pattern matched
	Renamed           int `json:"renamed" yaml:"renamed"`                       // reflections renamed in place
	Merged            int `json:"merged" yaml:"merged"`                         // reflections folded into an earlier target
	ChildrenRelocated int `json:"children_relocated" yaml:"children_relocated"` // members moved during merges
	PackagesAnnotated int `json:"packages_annotated" yaml:"packages_annotated"` // reflections flagged as packages
	ReadmesAttached   int `json:"readmes_attached" yaml:"readmes_attached"`     // packages that picked up a readme comment
	Described         int `json:"described" yaml:"described"`                   // packages described by an enhancer

	// Per-package outcomes, sorted by name once finalized
	Packages []PackageResult `json:"packages" yaml:"packages"`

	// Issues
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Metadata
	Metadata ResultMetadata `json:"metadata" yaml:"metadata"`
}

// PackageResult describes a single logical package after resolution.
type PackageResult struct {
	Name       string        `json:"name" yaml:"name"`                                   // logical package name
	ID         reflection.ID `json:"id" yaml:"id"`                                       // surviving reflection
	Members    []string      `json:"members,omitempty" yaml:"members,omitempty"`         // source files mapped into the package
	ReadmePath string        `json:"readme_path,omitempty" yaml:"readme_path,omitempty"` // description file, if one was found
}

// ResultMetadata contains metadata about the remapping run.
type ResultMetadata struct {
	// StartedAt when the run began
	StartedAt utc.Time `json:"started_at" yaml:"started_at"`

	// FinishedAt when the run completed
	FinishedAt utc.Time `json:"finished_at" yaml:"finished_at"`

	// Duration of the run
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Pattern that was configured, when it was a string
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Disabled indicates the run left the tree untouched
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// IsClean returns true if the run produced no warnings.
func (r *Result) IsClean() bool {
	return len(r.Warnings) == 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	if r.Metadata.Disabled {
		return "Module mapping disabled. Tree unchanged."
	}

	summary := fmt.Sprintf("Mapped %d files into %d packages (%d renamed, %d merged, %d children relocated).",
		r.FilesMatched, len(r.Packages), r.Renamed, r.Merged, r.ChildrenRelocated)

	if !r.IsClean() {
		return fmt.Sprintf("%s %d warnings.", summary, len(r.Warnings))
	}
	return summary
}

// Warnf records a formatted warning on the result.
func (r *Result) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// NewResult creates a new result with defaults.
func NewResult() *Result {
	return &Result{
		Packages: []PackageResult{},
		Warnings: []string{},
		Metadata: ResultMetadata{
			StartedAt: utc.Now(),
		},
	}
}

// Finalize calculates duration, orders packages by name, and marks
// completion.
func (r *Result) Finalize() {
	r.Metadata.FinishedAt = utc.Now()
	r.Metadata.Duration = r.Metadata.FinishedAt.Time.Sub(r.Metadata.StartedAt.Time)
	sort.Slice(r.Packages, func(i, j int) bool {
		return r.Packages[i].Name < r.Packages[j].Name
	})
}

// Clone returns a deep copy of the result.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Packages = make([]PackageResult, len(r.Packages))
	for i, pkg := range r.Packages {
		pkg.Members = append([]string(nil), pkg.Members...)
		clone.Packages[i] = pkg
	}
	clone.Warnings = append([]string(nil), r.Warnings...)
	return &clone
}
