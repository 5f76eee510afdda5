// Package modmap provides the main entry point for the modmap module
// mapping system. It offers a high-level interface for reworking
// analyzer reflection trees so that file-path modules surface as
// logical packages, with pattern matching, merge reconciliation, and
// event hooks.
//
// Modmap wraps the underlying mapping pipeline with additional features
// including:
// - Source tree scanning and analyzer export loading
// - Event hooks for package changes (mapped, changed, removed)
// - Thread-safe tree access with copy-on-read semantics
// - Flexible configuration through functional options
// - Optional automatic re-mapping on an interval
//
// Example usage:
//
//	// Create a mapper for a source tree
//	m, err := modmap.New(
//	    modmap.WithRoot("./src"),
//	    modmap.WithPattern(`^.*/src/([^/]+)/`),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.RefreshOff()
//
//	// Register event hooks
//	m.OnPackageMapped(func(pkg remap.PackageResult) {
//	    log.Printf("New package: %s", pkg.Name)
//	})
//
//	// Run the mapping pipeline
//	result, err := m.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
//
//	// Get the mapped tree (returns a copy for thread safety)
//	project := m.Project()
//	for _, root := range project.Roots() {
//	    fmt.Printf("Package: %s\n", root.Name)
//	}
//
//	// Persist the mapped tree
//	if err := m.Save("./docs/tree.json"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Configure with custom options
//	m, err = modmap.New(
//	    modmap.WithTreeFile("./export.json"),
//	    modmap.WithReadmeName("README.md"),
//	    modmap.WithRefreshInterval(30*time.Minute),
//	)
package modmap

import (
	"context"
	"sync"
	"time"

	"github.com/docforge/modmap/pkg/reflection"
	"github.com/docforge/modmap/pkg/remap"
)

// Compile-time interface check to ensure proper implementation.
var _ Tree = (*mapper)(nil)

// Tree provides copy-on-read access to the mapped reflection tree.
type Tree interface {
	// Project returns a copy of the most recently mapped tree
	Project() *reflection.Project

	// Result returns a copy of the most recent run outcome
	Result() *remap.Result
}

// Project returns a copy of the most recently mapped tree, or nil when
// no run has completed yet.
func (m *mapper) Project() *reflection.Project {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.project == nil {
		return nil
	}
	return m.project.Copy()
}

// Result returns a copy of the most recent run outcome, or nil when no
// run has completed yet.
func (m *mapper) Result() *remap.Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.result.Clone()
}

// Mapper manages a reflection tree with pattern mapping, persistence,
// and event hooks.
type Mapper interface {

	// Tree provides copy-on-read access to the mapped tree
	Tree

	// Runner executes the mapping pipeline
	Runner

	// Persistence handles tree persistence operations
	Persistence

	// AutoRefresher provides access to automatic re-mapping controls
	AutoRefresher

	// Hooks provides access to event callback registration
	Hooks
}

// mapper is the internal implementation of the Mapper interface.
type mapper struct {

	// options are the configured options for the mapper
	options *options

	// remapper keeps per-run state, so runs are serialized by runMu
	runMu    sync.Mutex
	remapper remap.Remapper

	// latest mapped tree and run outcome
	mu      sync.RWMutex
	project *reflection.Project
	result  *remap.Result

	// auto refresh state
	refreshTicker *time.Ticker       // ticker that triggers re-mapping runs
	stopCh        chan struct{}      // stop channel to stop auto-refresh
	refreshCancel context.CancelFunc // cancel function for the refresh goroutine
	hooks         *hooks             // event hooks for package changes
}

// New creates a new Mapper instance with the given options.
func New(opts ...Option) (Mapper, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	// the pipeline validates the pattern lazily, but readme and
	// enhancer options are checked here
	remapper, err := remap.New(
		remap.WithPattern(options.pattern),
		remap.WithReadmeName(options.readmeName),
		remap.WithEnhancers(options.enhancers...),
	)
	if err != nil {
		return nil, err
	}

	m := &mapper{
		options:  options,
		remapper: remapper,
		stopCh:   make(chan struct{}),
		hooks:    newHooks(),
	}

	// start auto-refresh if enabled
	if options.autoRefresh {
		if err := m.RefreshOn(); err != nil {
			return nil, err
		}
	}

	return m, nil
}
