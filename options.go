package modmap

import (
	"time"

	"github.com/docforge/modmap/pkg/constants"
	"github.com/docforge/modmap/pkg/enhance"
	"github.com/docforge/modmap/pkg/errors"
	"github.com/docforge/modmap/pkg/reflection"
)

// options configures a Mapper.
type options struct {
	// source selection, first non-zero wins: project, treeFile, root
	root     string
	treeFile string
	project  *reflection.Project

	// mapping pipeline
	pattern    any
	readmeName string
	enhancers  []enhance.Enhancer

	// directory scanning
	extensions []string
	skipDirs   []string

	// auto refresh
	autoRefresh     bool
	refreshInterval time.Duration
}

func defaultOptions() *options {
	return &options{
		root:            ".",
		readmeName:      constants.DefaultReadmeName,
		refreshInterval: constants.DefaultRefreshInterval,
	}
}

// Option is a function that configures a Mapper.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns mapper options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithRoot sets the source directory scanned on each run.
func WithRoot(root string) Option {
	return func(o *options) error {
		if root == "" {
			return &errors.ValidationError{
				Field:   "root",
				Message: "cannot be empty",
			}
		}
		o.root = root
		return nil
	}
}

// WithTreeFile sets an analyzer tree export loaded on each run instead
// of scanning a directory.
func WithTreeFile(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{
				Field:   "treeFile",
				Message: "cannot be empty",
			}
		}
		o.treeFile = path
		return nil
	}
}

// WithProject sets an existing project used as the run source, taking
// precedence over tree files and directory scanning. A copy is mapped
// on each run, the provided project is never mutated.
func WithProject(project *reflection.Project) Option {
	return func(o *options) error {
		if project == nil {
			return &errors.ValidationError{
				Field:   "project",
				Message: "cannot be nil",
			}
		}
		o.project = project
		return nil
	}
}

// WithPattern sets the raw mapping pattern value. Any value is
// accepted; non-string values and patterns that fail to compile disable
// mapping at run time instead of failing construction.
func WithPattern(value any) Option {
	return func(o *options) error {
		o.pattern = value
		return nil
	}
}

// WithReadmeName sets the description file name looked up next to
// package sources.
func WithReadmeName(name string) Option {
	return func(o *options) error {
		o.readmeName = name
		return nil
	}
}

// WithEnhancers adds package description enhancers to the pipeline.
func WithEnhancers(enhancers ...enhance.Enhancer) Option {
	return func(o *options) error {
		o.enhancers = enhancers
		return nil
	}
}

// WithExtensions replaces the source file extensions scanned when the
// source is a directory.
func WithExtensions(exts ...string) Option {
	return func(o *options) error {
		o.extensions = exts
		return nil
	}
}

// WithSkipDirs replaces the directory names excluded from directory
// scans.
func WithSkipDirs(dirs ...string) Option {
	return func(o *options) error {
		o.skipDirs = dirs
		return nil
	}
}

// WithAutoRefresh configures whether automatic re-mapping starts when
// the mapper is created.
func WithAutoRefresh(enabled bool) Option {
	return func(o *options) error {
		o.autoRefresh = enabled
		return nil
	}
}

// WithRefreshInterval configures how often an auto-refreshing mapper
// re-runs the pipeline.
func WithRefreshInterval(interval time.Duration) Option {
	return func(o *options) error {
		o.refreshInterval = interval
		return nil
	}
}
