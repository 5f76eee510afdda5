package modmap

import (
	"reflect"
	"sync"

	"github.com/docforge/modmap/pkg/remap"
)

// Hook function types for package events
type (
	// PackageMappedHook is called when a run maps a package that was not
	// present in the previous run
	PackageMappedHook func(pkg remap.PackageResult)

	// PackageChangedHook is called when a package's mapping differs from
	// the previous run
	PackageChangedHook func(old, new remap.PackageResult)

	// PackageRemovedHook is called when a previously mapped package is
	// missing from the latest run
	PackageRemovedHook func(pkg remap.PackageResult)

	// WarningHook is called for each warning a run records
	WarningHook func(warning string)
)

// Compile-time interface check to ensure proper implementation.
var _ Hooks = (*mapper)(nil)

// Hooks provides access to event callback registration.
type Hooks interface {
	// OnPackageMapped registers a callback for newly mapped packages
	OnPackageMapped(fn PackageMappedHook)

	// OnPackageChanged registers a callback for packages whose mapping changed
	OnPackageChanged(fn PackageChangedHook)

	// OnPackageRemoved registers a callback for packages missing from the latest run
	OnPackageRemoved(fn PackageRemovedHook)

	// OnWarning registers a callback for run warnings
	OnWarning(fn WarningHook)
}

// OnPackageMapped registers a callback for newly mapped packages.
func (m *mapper) OnPackageMapped(fn PackageMappedHook) { m.hooks.OnPackageMapped(fn) }

// OnPackageChanged registers a callback for packages whose mapping changed.
func (m *mapper) OnPackageChanged(fn PackageChangedHook) { m.hooks.OnPackageChanged(fn) }

// OnPackageRemoved registers a callback for packages missing from the latest run.
func (m *mapper) OnPackageRemoved(fn PackageRemovedHook) { m.hooks.OnPackageRemoved(fn) }

// OnWarning registers a callback for run warnings.
func (m *mapper) OnWarning(fn WarningHook) { m.hooks.OnWarning(fn) }

// hooks manages event callbacks for mapping runs
type hooks struct {
	mu               sync.RWMutex
	onPackageMapped  []PackageMappedHook
	onPackageChanged []PackageChangedHook
	onPackageRemoved []PackageRemovedHook
	onWarning        []WarningHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnPackageMapped registers a callback for when packages are mapped
func (h *hooks) OnPackageMapped(fn PackageMappedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPackageMapped = append(h.onPackageMapped, fn)
}

// OnPackageChanged registers a callback for when package mappings change
func (h *hooks) OnPackageChanged(fn PackageChangedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPackageChanged = append(h.onPackageChanged, fn)
}

// OnPackageRemoved registers a callback for when packages disappear
func (h *hooks) OnPackageRemoved(fn PackageRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPackageRemoved = append(h.onPackageRemoved, fn)
}

// OnWarning registers a callback for run warnings
func (h *hooks) OnWarning(fn WarningHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onWarning = append(h.onWarning, fn)
}

// triggerRunUpdate compares the previous and latest run results and
// triggers the appropriate hooks
func (h *hooks) triggerRunUpdate(oldResult, newResult *remap.Result) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if newResult == nil {
		return
	}

	// Create maps for efficient lookup
	oldPackages := make(map[string]remap.PackageResult)
	if oldResult != nil {
		for _, pkg := range oldResult.Packages {
			oldPackages[pkg.Name] = pkg
		}
	}

	newPackages := make(map[string]remap.PackageResult)
	for _, pkg := range newResult.Packages {
		newPackages[pkg.Name] = pkg
	}

	// Detect changes and trigger hooks
	for _, pkg := range newResult.Packages {
		if old, exists := oldPackages[pkg.Name]; exists {
			// Check if the package mapping changed
			if packageChanged(old, pkg) {
				for _, hook := range h.onPackageChanged {
					hook(old, pkg)
				}
			}
		} else {
			// Package was mapped for the first time
			for _, hook := range h.onPackageMapped {
				hook(pkg)
			}
		}
	}

	// Check for removed packages
	if oldResult != nil {
		for _, pkg := range oldResult.Packages {
			if _, exists := newPackages[pkg.Name]; !exists {
				for _, hook := range h.onPackageRemoved {
					hook(pkg)
				}
			}
		}
	}

	// Warnings are per-run events, not diffed
	for _, warning := range newResult.Warnings {
		for _, hook := range h.onWarning {
			hook(warning)
		}
	}
}

// packageChanged reports whether a package's mapping differs between
// runs. Arena ids are ignored, they depend on walk order and shift when
// unrelated files appear.
func packageChanged(old, new remap.PackageResult) bool {
	old.ID, new.ID = 0, 0
	return !reflect.DeepEqual(old, new)
}
