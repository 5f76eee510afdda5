// Package enhance enriches package reflections with descriptions from
// pluggable sources. Enhancers run after reconciliation and annotation,
// so they only ever see the final shape of the tree.
package enhance

import (
	"context"
	"fmt"

	"github.com/docforge/modmap/pkg/logging"
	"github.com/docforge/modmap/pkg/reflection"
)

// Enhancer defines the interface for package description enrichment.
type Enhancer interface {
	// Name returns the enhancer name used in logs and reports.
	Name() string

	// CanEnhance checks if this enhancer applies to a specific reflection.
	CanEnhance(r *reflection.Reflection) bool

	// Enhance produces a comment for the reflection. A nil comment with a
	// nil error means the enhancer had nothing to contribute.
	Enhance(ctx context.Context, r *reflection.Reflection) (*reflection.Comment, error)
}

// Pipeline manages a chain of enhancers applied to package reflections.
type Pipeline struct {
	enhancers []Enhancer
}

// NewPipeline creates a new enhancer pipeline. Enhancers run in
// registration order.
func NewPipeline(enhancers ...Enhancer) *Pipeline {
	return &Pipeline{
		enhancers: enhancers,
	}
}

// Len returns the number of registered enhancers.
func (p *Pipeline) Len() int {
	if p == nil {
		return 0
	}
	return len(p.enhancers)
}

// Packages applies all enhancers to every package reflection in the
// project, in creation order. It returns the number of reflections that
// received a comment and any warnings collected along the way. Enhancer
// failures are logged and recorded but never abort the run.
func (p *Pipeline) Packages(ctx context.Context, project *reflection.Project) (int, []string) {
	if p.Len() == 0 || project == nil {
		return 0, nil
	}

	logger := logging.FromContext(ctx)
	applied := 0
	var warnings []string

	project.ForEach(func(r *reflection.Reflection) bool {
		if !r.Package {
			return true
		}
		for _, enhancer := range p.enhancers {
			if !enhancer.CanEnhance(r) {
				continue
			}

			comment, err := enhancer.Enhance(ctx, r)
			if err != nil {
				// Log and continue with other enhancers
				logger.Warn().
					Err(err).
					Str("enhancer", enhancer.Name()).
					Str("package", r.Name).
					Msg("Enhancer failed for package")
				warnings = append(warnings, fmt.Sprintf("enhancer %s failed for package %s: %v", enhancer.Name(), r.Name, err))
				continue
			}
			if comment.IsEmpty() {
				continue
			}

			r.Comment = comment
			applied++
			logger.Debug().
				Str("enhancer", enhancer.Name()).
				Str("package", r.Name).
				Msg("Package description enhanced")
		}
		return true
	})

	return applied, warnings
}

// Func adapts a plain function into an Enhancer. Useful for small static
// description sources and in tests.
type Func struct {
	EnhancerName string
	Applies      func(r *reflection.Reflection) bool
	Run          func(ctx context.Context, r *reflection.Reflection) (*reflection.Comment, error)
}

// Name returns the enhancer name.
func (f *Func) Name() string {
	return f.EnhancerName
}

// CanEnhance checks if the adapted function applies to the reflection.
func (f *Func) CanEnhance(r *reflection.Reflection) bool {
	if f.Applies == nil {
		return false
	}
	return f.Applies(r)
}

// Enhance runs the adapted function.
func (f *Func) Enhance(ctx context.Context, r *reflection.Reflection) (*reflection.Comment, error) {
	if f.Run == nil {
		return nil, nil
	}
	return f.Run(ctx, r)
}
