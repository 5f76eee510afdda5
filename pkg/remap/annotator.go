package remap

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/docforge/modmap/pkg/constants"
	"github.com/docforge/modmap/pkg/reflection"
)

// annotator flags surviving logical packages and attaches descriptions
// discovered next to their sources.
type annotator struct {
	project    *reflection.Project
	readmeName string
	logger     *zerolog.Logger
	result     *Result
}

// run processes logical names in first-seen order. Names with no
// surviving reflection in the tree are skipped.
func (a *annotator) run(names []string, members map[string][]string) {
	for _, name := range names {
		ref := a.find(name)
		if ref == nil {
			continue
		}

		ref.Package = true
		a.result.PackagesAnnotated++

		pkg := PackageResult{
			Name:    name,
			ID:      ref.ID,
			Members: members[name],
		}

		if path, text, ok := a.discoverReadme(name, ref.OriginalName); ok {
			ref.Comment = &reflection.Comment{Text: text}
			pkg.ReadmePath = path
			a.result.ReadmesAttached++
			a.logger.Debug().
				Str("package", name).
				Str("path", path).
				Msg("Attached package description")
		} else {
			a.logger.Warn().
				Str("package", name).
				Msg("No description found for package")
			a.result.Warnf("no description found for package %s", name)
		}

		a.result.Packages = append(a.result.Packages, pkg)
	}
}

// find returns the first reflection, in creation order, that carries the
// logical name and still knows the absolute source path it came from.
func (a *annotator) find(name string) *reflection.Reflection {
	var found *reflection.Reflection
	a.project.ForEach(func(r *reflection.Reflection) bool {
		if r.Name == name && filepath.IsAbs(r.OriginalName) {
			found = r
			return false
		}
		return true
	})
	return found
}

// discoverReadme walks up from the package's source directory looking for
// a directory named after the package that contains the description file.
// Unreadable candidates are logged and the walk continues upward.
func (a *annotator) discoverReadme(name, originalName string) (string, string, bool) {
	dir := filepath.Dir(originalName)

	for depth := 0; depth < constants.MaxReadmeWalkDepth; depth++ {
		if filepath.Base(dir) == name {
			candidate := filepath.Join(dir, a.readmeName)
			data, err := os.ReadFile(candidate)
			if err == nil {
				return candidate, string(data), true
			}
			a.logger.Debug().
				Str("package", name).
				Str("path", candidate).
				Err(err).
				Msg("Description file not readable, continuing walk")
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", "", false
}
