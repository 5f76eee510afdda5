package remap

import (
	"github.com/docforge/modmap/pkg/constants"
	"github.com/docforge/modmap/pkg/enhance"
	"github.com/docforge/modmap/pkg/errors"
)

// options configures a remapper.
type options struct {
	pattern    any    // raw configured pattern value, compiled at Begin
	readmeName string // description file name looked up during the walk
	enhancers  []enhance.Enhancer
}

func defaultOptions() *options {
	return &options{
		readmeName: constants.DefaultReadmeName,
		enhancers:  []enhance.Enhancer{},
	}
}

// Option is a function that configures a Remapper.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns remapper options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithPattern sets the raw mapping pattern value. Any value is accepted;
// non-string values and patterns that fail to compile disable mapping at
// run time instead of failing construction.
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
		if name == "" {
			return &errors.ValidationError{
				Field:   "readmeName",
				Message: "cannot be empty",
			}
		}
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
