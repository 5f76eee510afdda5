package modmap

import (
	"context"
	"path/filepath"

	"github.com/docforge/modmap/internal/scan"
	"github.com/docforge/modmap/internal/treeio"
	"github.com/docforge/modmap/pkg/reflection"
	"github.com/docforge/modmap/pkg/remap"
)

// Compile-time interface check to ensure proper implementation.
var _ Runner = (*mapper)(nil)

// Runner executes the mapping pipeline against the configured source.
type Runner interface {
	// Run loads the source tree, maps it, and stores the outcome
	Run(ctx context.Context) (*remap.Result, error)
}

// Run loads the configured source, offers every file-backed module to
// the mapping pipeline, and resolves the tree. The mapped project and
// result replace those of the previous run, and hooks fire for packages
// that were added, changed, or removed since then.
func (m *mapper) Run(ctx context.Context) (*remap.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	m.runMu.Lock()
	defer m.runMu.Unlock()

	project, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	m.remapper.Begin()
	project.ForEach(func(r *reflection.Reflection) bool {
		// only modules still named by a file path are mapped,
		// logical modules pass through untouched
		if r.Kind == reflection.KindModule && filepath.IsAbs(r.OriginalName) {
			m.remapper.NodeCreated(r, r.OriginalName)
		}
		return true
	})
	result := m.remapper.Resolve(ctx, project)

	m.mu.Lock()
	previous := m.result
	m.project = project
	m.result = result
	m.mu.Unlock()

	m.hooks.triggerRunUpdate(previous, result)

	return result, nil
}

// load materializes the source tree for a run. A provided project wins
// over a tree file, which wins over scanning the root directory.
func (m *mapper) load(ctx context.Context) (*reflection.Project, error) {
	switch {
	case m.options.project != nil:
		// a fresh copy each run keeps the caller's arena untouched
		// and makes every run start from the same tree
		return m.options.project.Copy(), nil
	case m.options.treeFile != "":
		return treeio.Load(m.options.treeFile)
	default:
		var opts []scan.Option
		if len(m.options.extensions) > 0 {
			opts = append(opts, scan.WithExtensions(m.options.extensions...))
		}
		if len(m.options.skipDirs) > 0 {
			opts = append(opts, scan.WithSkipDirs(m.options.skipDirs...))
		}
		return scan.New(opts...).Tree(ctx, m.options.root)
	}
}
