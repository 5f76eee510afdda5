// Package remap reworks an analyzer's reflection tree so that source
// files matched by a configurable pattern surface as logical packages.
// It renames matched reflections, folds duplicates into the earliest
// declaration, relocates their members, and annotates the survivors
// with descriptions found next to their sources.
//
// A Remapper binds to the host's lifecycle in three steps: Begin before
// any reflection exists, NodeCreated once per reflection, and Resolve
// once the tree is complete. Resolution never fails the host run;
// problems surface as warnings on the Result.
package remap

import (
	"context"

	"github.com/docforge/modmap/pkg/enhance"
	"github.com/docforge/modmap/pkg/logging"
	"github.com/docforge/modmap/pkg/reflection"
)

// Remapper is the main interface for reworking a reflection tree.
type Remapper interface {
	// Begin prepares a new run. It compiles the configured pattern and
	// resets any state collected by a previous run.
	Begin()

	// NodeCreated records a freshly created reflection and the source
	// file path it came from, when the host knows one.
	NodeCreated(r *reflection.Reflection, filePath string)

	// Resolve reconciles the completed tree and annotates packages.
	Resolve(ctx context.Context, project *reflection.Project) *Result
}

// remapper is the default implementation of Remapper.
type remapper struct {
	pattern    any
	readmeName string
	enhancers  *enhance.Pipeline

	// Per-run state, rebuilt by Begin
	matcher   *matcher
	collector *collector
	result    *Result
}

// New creates a new Remapper with options.
func New(opts ...Option) (Remapper, error) {
	// Create options with defaults
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	// Create remapper from options
	m := &remapper{
		pattern:    options.pattern,
		readmeName: options.readmeName,
		enhancers:  enhance.NewPipeline(options.enhancers...),
	}
	return m, nil
}

// Begin prepares a new run.
func (m *remapper) Begin() {
	logger := logging.Default()

	m.matcher = newMatcher(m.pattern, logger)
	m.collector = newCollector(m.matcher, logger)
	m.result = NewResult()
	if pattern, ok := m.pattern.(string); ok {
		m.result.Metadata.Pattern = pattern
	}
	m.result.Metadata.Disabled = !m.matcher.enabled
}

// NodeCreated records a reflection for later resolution. Calls before
// Begin are ignored.
func (m *remapper) NodeCreated(r *reflection.Reflection, filePath string) {
	if m.collector == nil {
		return
	}
	m.collector.observe(r, filePath)
}

// Resolve performs resolution with clean step-by-step flow.
func (m *remapper) Resolve(ctx context.Context, project *reflection.Project) *Result {
	logger := logging.FromContext(ctx)

	// Resolving without Begin yields an inert, disabled result.
	if m.result == nil {
		m.result = NewResult()
		m.result.Metadata.Disabled = true
	}
	result := m.result

	if result.Metadata.Disabled || project == nil || m.collector == nil {
		result.Finalize()
		logger.Debug().Msg("Module mapping disabled, tree unchanged")
		return result
	}

	// Step 1: Apply pending renames and merge duplicate modules
	result.FilesMatched = len(m.collector.renames)
	rec := &reconciler{project: project, logger: logger, result: result}
	rec.run(m.collector.renames)

	// Step 2: Flag surviving packages and attach readme descriptions
	ann := &annotator{project: project, readmeName: m.readmeName, logger: logger, result: result}
	ann.run(m.collector.names, m.collector.matched)

	// Step 3: Run description enhancers over annotated packages
	if m.enhancers.Len() > 0 && result.PackagesAnnotated > 0 {
		described, warnings := m.enhancers.Packages(ctx, project)
		result.Described = described
		result.Warnings = append(result.Warnings, warnings...)
	}

	result.Finalize()
	logger.Info().
		Int("files_matched", result.FilesMatched).
		Int("packages", len(result.Packages)).
		Int("renamed", result.Renamed).
		Int("merged", result.Merged).
		Int("warnings", len(result.Warnings)).
		Msg("Module mapping resolved")
	return result
}
