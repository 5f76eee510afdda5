// Package scan builds synthetic reflection trees from source
// directories. Each discovered source file becomes a root module
// reflection named by its absolute path, which is exactly the shape an
// analyzer hands to the resolver before any renaming happens.
package scan

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"

	"github.com/docforge/modmap/pkg/constants"
	"github.com/docforge/modmap/pkg/errors"
	"github.com/docforge/modmap/pkg/logging"
	"github.com/docforge/modmap/pkg/reflection"
)

// DefaultExtensions are the source file extensions scanned when none are
// configured.
var DefaultExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".mts", ".cts"}

// DefaultSkipDirs are directory names never descended into.
var DefaultSkipDirs = []string{"node_modules", ".git", "dist", "build", "coverage"}

// Scanner discovers source files and turns them into module reflections.
type Scanner struct {
	extensions map[string]struct{}
	skipDirs   map[string]struct{}
	maxFiles   int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithExtensions replaces the scanned file extensions.
func WithExtensions(exts ...string) Option {
	return func(s *Scanner) {
		s.extensions = make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			s.extensions[strings.ToLower(ext)] = struct{}{}
		}
	}
}

// WithSkipDirs replaces the directory names excluded from the walk.
func WithSkipDirs(dirs ...string) Option {
	return func(s *Scanner) {
		s.skipDirs = make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			s.skipDirs[dir] = struct{}{}
		}
	}
}

// New creates a Scanner with defaults applied.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		maxFiles: constants.MaxProjectReflections,
	}
	WithExtensions(DefaultExtensions...)(s)
	WithSkipDirs(DefaultSkipDirs...)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tree walks root and returns a project with one module reflection per
// discovered source file, in lexical walk order.
func (s *Scanner) Tree(ctx context.Context, root string) (*reflection.Project, error) {
	logger := logging.FromContext(ctx)

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.WrapIO("resolve", root, err)
	}

	project := reflection.NewProject()
	walkErr := godirwalk.Walk(abs, &godirwalk.Options{
		FollowSymbolicLinks: false,
		Unsorted:            false,
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				if _, skip := s.skipDirs[de.Name()]; skip && path != abs {
					return filepath.SkipDir
				}
				return nil
			}
			if !de.IsRegular() {
				return nil
			}
			if _, ok := s.extensions[strings.ToLower(filepath.Ext(path))]; !ok {
				return nil
			}
			if project.Len() >= s.maxFiles {
				return &errors.ValidationError{
					Field:   "root",
					Value:   root,
					Message: "source tree exceeds the reflection limit",
				}
			}

			project.Create(reflection.KindModule, path, reflection.None)
			logger.Debug().Str("file", path).Msg("Discovered source module")
			return nil
		},
		ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
			// Callback errors route through here as well; the limit error
			// must stop the walk instead of skipping the file.
			if errors.IsValidationError(err) {
				return godirwalk.Halt
			}
			logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable path")
			return godirwalk.SkipNode
		},
	})
	if walkErr != nil {
		if errors.IsValidationError(walkErr) {
			return nil, walkErr
		}
		return nil, errors.WrapIO("walk", abs, walkErr)
	}

	logger.Debug().
		Str("root", abs).
		Int("modules", project.Len()).
		Msg("Source scan complete")
	return project, nil
}
